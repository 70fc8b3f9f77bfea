package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	dogdomain "github.com/pawhaus/boarding/internal/dog/domain"
	"github.com/pawhaus/boarding/pkg/db/pagination"
)

type createDogRequest struct {
	OwnerID        string     `json:"owner_id"`
	Name           string     `json:"name"`
	Breed          string     `json:"breed"`
	HeightCm       *float64   `json:"height_cm"`
	VaccinationDHP *time.Time `json:"vaccination_dhp"`
	VaccinationPI  *time.Time `json:"vaccination_pi"`
}

func (s *Server) CreateDog(c *gin.Context) {
	var req createDogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.dogSvc.Create(c.Request.Context(), dogdomain.CreateDogRequest{
		OwnerID:        strings.TrimSpace(req.OwnerID),
		Name:           req.Name,
		Breed:          req.Breed,
		HeightCm:       req.HeightCm,
		VaccinationDHP: req.VaccinationDHP,
		VaccinationPI:  req.VaccinationPI,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListDogs(c *gin.Context) {
	var query pagination.Pagination
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.dogSvc.List(c.Request.Context(), dogdomain.ListDogsRequest{
		PageToken: query.PageToken,
		PageSize:  query.PageSize,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetDogByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.dogSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateDog(c *gin.Context) {
	var req dogdomain.UpdateDogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.dogSvc.Update(c.Request.Context(), id, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetDogVaccinations(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.dogSvc.Vaccinations(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isDogValidationError(err error) bool {
	switch {
	case errors.Is(err, dogdomain.ErrInvalidOrganization),
		errors.Is(err, dogdomain.ErrInvalidOwner),
		errors.Is(err, dogdomain.ErrInvalidName),
		errors.Is(err, dogdomain.ErrInvalidID):
		return true
	default:
		return false
	}
}
