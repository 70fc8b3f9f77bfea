package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	discountdomain "github.com/pawhaus/boarding/internal/discount/domain"
)

func (s *Server) CreateDiscount(c *gin.Context) {
	var req discountdomain.CreateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.discountSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListDiscounts(c *gin.Context) {
	if raw := strings.TrimSpace(c.Query("owner_id")); raw != "" {
		ownerID, err := snowflake.ParseString(raw)
		if err != nil {
			AbortWithError(c, newValidationError("owner_id", "invalid_owner", "malformed owner_id"))
			return
		}
		resp, err := s.discountSvc.ListByOwner(c.Request.Context(), ownerID)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": resp})
		return
	}

	resp, err := s.discountSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateDiscount(c *gin.Context) {
	var req discountdomain.UpdateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.discountSvc.Update(c.Request.Context(), id, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteDiscount(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.discountSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}

func isDiscountValidationError(err error) bool {
	switch {
	case errors.Is(err, discountdomain.ErrInvalidOrganization),
		errors.Is(err, discountdomain.ErrInvalidOwner),
		errors.Is(err, discountdomain.ErrInvalidName),
		errors.Is(err, discountdomain.ErrInvalidValue),
		errors.Is(err, discountdomain.ErrInvalidID):
		return true
	default:
		return false
	}
}
