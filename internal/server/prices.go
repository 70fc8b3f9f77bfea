package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	pricedomain "github.com/pawhaus/boarding/internal/price/domain"
)

func (s *Server) CreatePrice(c *gin.Context) {
	var req pricedomain.CreatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.priceSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListPrices(c *gin.Context) {
	resp, err := s.priceSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdatePrice(c *gin.Context) {
	var req pricedomain.UpdatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.priceSvc.Update(c.Request.Context(), id, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeletePrice(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.priceSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}

func isPriceValidationError(err error) bool {
	switch {
	case errors.Is(err, pricedomain.ErrInvalidOrganization),
		errors.Is(err, pricedomain.ErrInvalidDogSize),
		errors.Is(err, pricedomain.ErrInvalidPriceType),
		errors.Is(err, pricedomain.ErrInvalidPrice),
		errors.Is(err, pricedomain.ErrInvalidID):
		return true
	default:
		return false
	}
}
