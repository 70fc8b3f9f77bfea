package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	bookingdomain "github.com/pawhaus/boarding/internal/booking/domain"
)

type createBookingRequest struct {
	DogID         string   `json:"dog_id"`
	RoomID        string   `json:"room_id"`
	CheckIn       string   `json:"check_in"`
	CheckOut      string   `json:"check_out"`
	AddonIDs      []string `json:"addon_ids"`
	Notes         string   `json:"notes"`
	ForceCapacity bool     `json:"force_capacity"`
}

func (s *Server) CreateBooking(c *gin.Context) {
	var req createBookingRequest
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

	resp, err := s.bookingSvc.Create(c.Request.Context(), bookingdomain.CreateBookingRequest{
		DogID:         strings.TrimSpace(req.DogID),
		RoomID:        strings.TrimSpace(req.RoomID),
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		AddonIDs:      req.AddonIDs,
		Notes:         req.Notes,
		ForceCapacity: req.ForceCapacity,
	})
	if err != nil {
		if errors.Is(err, bookingdomain.ErrRoomFull) {
			c.JSON(http.StatusConflict, gin.H{
				"error": gin.H{
					"type":    "conflict",
					"message": resp.Capacity.Message,
				},
				"capacity": resp.Capacity,
			})
			return
		}
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListBookings(c *gin.Context) {
	resp, err := s.bookingSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetBookingByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.bookingSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateBooking(c *gin.Context) {
	var req bookingdomain.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.bookingSvc.Update(c.Request.Context(), id, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) CancelBooking(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.bookingSvc.Cancel(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isBookingValidationError(err error) bool {
	switch {
	case errors.Is(err, bookingdomain.ErrInvalidOrganization),
		errors.Is(err, bookingdomain.ErrInvalidDog),
		errors.Is(err, bookingdomain.ErrInvalidRoom),
		errors.Is(err, bookingdomain.ErrInvalidDateRange),
		errors.Is(err, bookingdomain.ErrInvalidStatus),
		errors.Is(err, bookingdomain.ErrInvalidID):
		return true
	default:
		return false
	}
}
