package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	pricingdomain "github.com/pawhaus/boarding/internal/pricing/domain"
)

type quoteStayRequest struct {
	DogID    string   `json:"dog_id"`
	CheckIn  string   `json:"check_in"`
	CheckOut string   `json:"check_out"`
	AddonIDs []string `json:"addon_ids"`
}

func (s *Server) QuoteStay(c *gin.Context) {
	var req quoteStayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	checkIn, ok := parseTimestamp(req.CheckIn)
	if !ok {
		AbortWithError(c, newValidationError("check_in", "invalid_date_range", "malformed check_in"))
		return
	}
	checkOut, ok := parseTimestamp(req.CheckOut)
	if !ok {
		AbortWithError(c, newValidationError("check_out", "invalid_date_range", "malformed check_out"))
		return
	}

	resp, err := s.pricingSvc.Quote(c.Request.Context(), pricingdomain.QuoteRequest{
		DogID:    strings.TrimSpace(req.DogID),
		CheckIn:  checkIn,
		CheckOut: checkOut,
		AddonIDs: req.AddonIDs,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":            resp,
		"final_price_sek": pricingdomain.FormatSEK(resp.FinalPrice),
	})
}

func isPricingValidationError(err error) bool {
	switch {
	case errors.Is(err, pricingdomain.ErrInvalidOrganization),
		errors.Is(err, pricingdomain.ErrInvalidDog),
		errors.Is(err, pricingdomain.ErrInvalidDateRange):
		return true
	default:
		return false
	}
}
