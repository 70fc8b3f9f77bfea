package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	specialdomain "github.com/pawhaus/boarding/internal/specialdate/domain"
)

func (s *Server) CreateSpecialDate(c *gin.Context) {
	var req specialdomain.CreateSpecialDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.specialSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListSpecialDates(c *gin.Context) {
	resp, err := s.specialSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateSpecialDate(c *gin.Context) {
	var req specialdomain.UpdateSpecialDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.specialSvc.Update(c.Request.Context(), id, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteSpecialDate(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.specialSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}

func isSpecialDateValidationError(err error) bool {
	switch {
	case errors.Is(err, specialdomain.ErrInvalidOrganization),
		errors.Is(err, specialdomain.ErrInvalidName),
		errors.Is(err, specialdomain.ErrInvalidDate),
		errors.Is(err, specialdomain.ErrInvalidMultiplier),
		errors.Is(err, specialdomain.ErrInvalidID):
		return true
	default:
		return false
	}
}
