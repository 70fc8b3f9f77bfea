package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	roomdomain "github.com/pawhaus/boarding/internal/room/domain"
)

func (s *Server) CreateRoom(c *gin.Context) {
	var req roomdomain.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.roomSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListRooms(c *gin.Context) {
	resp, err := s.roomSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetRoomByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.roomSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateRoom(c *gin.Context) {
	var req roomdomain.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.roomSvc.Update(c.Request.Context(), id, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isRoomValidationError(err error) bool {
	switch {
	case errors.Is(err, roomdomain.ErrInvalidOrganization),
		errors.Is(err, roomdomain.ErrInvalidRoomNumber),
		errors.Is(err, roomdomain.ErrInvalidRoomType),
		errors.Is(err, roomdomain.ErrInvalidArea),
		errors.Is(err, roomdomain.ErrInvalidID):
		return true
	default:
		return false
	}
}
