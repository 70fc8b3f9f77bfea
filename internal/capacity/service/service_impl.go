package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	bookingdomain "github.com/pawhaus/boarding/internal/booking/domain"
	"github.com/pawhaus/boarding/internal/capacity/domain"
	"github.com/pawhaus/boarding/internal/config"
	dogdomain "github.com/pawhaus/boarding/internal/dog/domain"
	roomdomain "github.com/pawhaus/boarding/internal/room/domain"
	"github.com/pawhaus/boarding/pkg/repository"
	"github.com/pawhaus/boarding/pkg/tenantctx"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	Defaults *config.PricingDefaultsHolder
	Bookings bookingdomain.Repository
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	defaults *config.PricingDefaultsHolder
	bookings bookingdomain.Repository
	rooms    repository.Repository[roomdomain.Room]
	dogs     repository.Repository[dogdomain.Dog]
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("capacity.service"),
		defaults: p.Defaults,
		bookings: p.Bookings,
		rooms:    repository.ProvideStore[roomdomain.Room](p.DB),
		dogs:     repository.ProvideStore[dogdomain.Dog](p.DB),
	}
}

func (s *Service) Check(ctx context.Context, req domain.CheckRequest) (domain.CheckResult, error) {
	orgID, ok := tenantctx.OrgIDFromContext(ctx)
	if !ok || orgID == 0 {
		return domain.CheckResult{}, domain.ErrInvalidOrganization
	}

	roomID, err := snowflake.ParseString(strings.TrimSpace(req.RoomID))
	if err != nil {
		return domain.CheckResult{}, domain.ErrInvalidRoom
	}
	dogID, err := snowflake.ParseString(strings.TrimSpace(req.DogID))
	if err != nil {
		return domain.CheckResult{}, domain.ErrInvalidDog
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() || req.EndDate.Before(req.StartDate) {
		return domain.CheckResult{}, domain.ErrInvalidDateRange
	}

	var excludeID snowflake.ID
	if raw := strings.TrimSpace(req.ExcludeBookingID); raw != "" {
		excludeID, err = snowflake.ParseString(raw)
		if err != nil {
			return domain.CheckResult{}, domain.ErrInvalidRoom
		}
	}

	room, err := s.rooms.FindOne(ctx, &roomdomain.Room{ID: roomID, OrgID: orgID})
	if err != nil {
		return domain.CheckResult{}, err
	}
	if room == nil {
		return domain.CheckResult{}, domain.ErrRoomNotFound
	}

	dog, err := s.dogs.FindOne(ctx, &dogdomain.Dog{ID: dogID, OrgID: orgID})
	if err != nil {
		return domain.CheckResult{}, err
	}
	if dog == nil {
		return domain.CheckResult{}, domain.ErrDogNotFound
	}

	occupants, err := s.bookings.OverlappingStays(ctx, orgID, roomID, req.StartDate, req.EndDate, excludeID)
	if err != nil {
		return domain.CheckResult{}, err
	}

	result := domain.Evaluate(*room, occupants, dog.HeightCm, s.defaults.Get())
	if !result.Allowed {
		s.log.Info("capacity check refused",
			zap.String("org_id", orgID.String()),
			zap.String("room_id", roomID.String()),
			zap.String("dog_id", dogID.String()),
			zap.String("reason", result.Message),
		)
	}
	return result, nil
}

func (s *Service) RoomOccupancy(ctx context.Context, roomID string, date time.Time) (domain.Occupancy, error) {
	orgID, ok := tenantctx.OrgIDFromContext(ctx)
	if !ok || orgID == 0 {
		return domain.Occupancy{}, domain.ErrInvalidOrganization
	}

	id, err := snowflake.ParseString(strings.TrimSpace(roomID))
	if err != nil {
		return domain.Occupancy{}, domain.ErrInvalidRoom
	}
	if date.IsZero() {
		return domain.Occupancy{}, domain.ErrInvalidDateRange
	}

	room, err := s.rooms.FindOne(ctx, &roomdomain.Room{ID: id, OrgID: orgID})
	if err != nil {
		return domain.Occupancy{}, err
	}
	if room == nil {
		return domain.Occupancy{}, domain.ErrRoomNotFound
	}

	occupants, err := s.bookings.OverlappingStays(ctx, orgID, id, date, date, 0)
	if err != nil {
		return domain.Occupancy{}, err
	}

	defaults := s.defaults.Get()
	heights := make([]float64, 0, len(occupants))
	for _, o := range occupants {
		if o.HeightCm != nil {
			heights = append(heights, *o.HeightCm)
		} else {
			heights = append(heights, defaults.AssumedDogHeightCm)
		}
	}

	roomArea := domain.RoomArea(*room, defaults)
	groupRequired := domain.GroupRequiredArea(heights, defaults)
	pct, compliance, message := domain.OccupancyCompliance(roomArea, groupRequired)

	return domain.Occupancy{
		RoomID:            id,
		Date:              date,
		RoomArea:          roomArea,
		UsedArea:          domain.UsedArea(occupants, defaults),
		GroupRequiredArea: groupRequired,
		UtilizationPct:    pct,
		Compliance:        compliance,
		Message:           message,
		CurrentDogs:       len(occupants),
		MaxDogs:           domain.MaxDogs(*room, defaults),
	}, nil
}
