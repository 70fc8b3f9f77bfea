package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	seasondomain "github.com/pawhaus/boarding/internal/season/domain"
)

func (s *Server) CreateSeason(c *gin.Context) {
	var req seasondomain.CreateSeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.seasonSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListSeasons(c *gin.Context) {
	resp, err := s.seasonSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateSeason(c *gin.Context) {
	var req seasondomain.UpdateSeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.seasonSvc.Update(c.Request.Context(), id, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteSeason(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.seasonSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}

func isSeasonValidationError(err error) bool {
	switch {
	case errors.Is(err, seasondomain.ErrInvalidOrganization),
		errors.Is(err, seasondomain.ErrInvalidName),
		errors.Is(err, seasondomain.ErrInvalidDateRange),
		errors.Is(err, seasondomain.ErrInvalidMultiplier),
		errors.Is(err, seasondomain.ErrInvalidID):
		return true
	default:
		return false
	}
}
