package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	capacitydomain "github.com/pawhaus/boarding/internal/capacity/domain"
)

func (s *Server) CheckRoomCapacity(c *gin.Context) {
	start, ok := parseDate(c.Query("start_date"))
	if !ok {
		AbortWithError(c, newValidationError("start_date", "invalid_date_range", "malformed start_date"))
		return
	}
	end, ok := parseDate(c.Query("end_date"))
	if !ok {
		AbortWithError(c, newValidationError("end_date", "invalid_date_range", "malformed end_date"))
		return
	}

	resp, err := s.capacitySvc.Check(c.Request.Context(), capacitydomain.CheckRequest{
		RoomID:           strings.TrimSpace(c.Param("id")),
		DogID:            strings.TrimSpace(c.Query("dog_id")),
		StartDate:        start,
		EndDate:          end,
		ExcludeBookingID: strings.TrimSpace(c.Query("exclude_booking_id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetRoomOccupancy(c *gin.Context) {
	date, ok := parseDate(c.Query("date"))
	if !ok {
		AbortWithError(c, newValidationError("date", "invalid_date_range", "malformed date"))
		return
	}

	resp, err := s.capacitySvc.RoomOccupancy(c.Request.Context(), strings.TrimSpace(c.Param("id")), date)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isCapacityValidationError(err error) bool {
	switch {
	case errors.Is(err, capacitydomain.ErrInvalidOrganization),
		errors.Is(err, capacitydomain.ErrInvalidRoom),
		errors.Is(err, capacitydomain.ErrInvalidDog),
		errors.Is(err, capacitydomain.ErrInvalidDateRange):
		return true
	default:
		return false
	}
}
