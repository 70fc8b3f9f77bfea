package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	addondomain "github.com/pawhaus/boarding/internal/addon/domain"
)

func (s *Server) CreateAddon(c *gin.Context) {
	var req addondomain.CreateAddonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.addonSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListAddons(c *gin.Context) {
	resp, err := s.addonSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetAddonByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.addonSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateAddon(c *gin.Context) {
	var req addondomain.UpdateAddonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.addonSvc.Update(c.Request.Context(), id, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteAddon(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.addonSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}

func isAddonValidationError(err error) bool {
	switch {
	case errors.Is(err, addondomain.ErrInvalidOrganization),
		errors.Is(err, addondomain.ErrInvalidName),
		errors.Is(err, addondomain.ErrInvalidPrice),
		errors.Is(err, addondomain.ErrInvalidID):
		return true
	default:
		return false
	}
}
