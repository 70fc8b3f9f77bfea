package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/pawhaus/boarding/internal/booking/domain"
	capacitydomain "github.com/pawhaus/boarding/internal/capacity/domain"
	"github.com/pawhaus/boarding/internal/clock"
	"github.com/pawhaus/boarding/internal/config"
	dogdomain "github.com/pawhaus/boarding/internal/dog/domain"
	pricingdomain "github.com/pawhaus/boarding/internal/pricing/domain"
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
	GenID    *snowflake.Node
	Clock    clock.Clock
	Defaults *config.PricingDefaultsHolder
	Repo     domain.Repository
	Pricing  pricingdomain.Service
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	clock    clock.Clock
	defaults *config.PricingDefaultsHolder
	repo     domain.Repository
	pricing  pricingdomain.Service
	rooms    repository.Repository[roomdomain.Room]
	dogs     repository.Repository[dogdomain.Dog]
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("booking.service"),
		genID:    p.GenID,
		clock:    p.Clock,
		defaults: p.Defaults,
		repo:     p.Repo,
		pricing:  p.Pricing,
		rooms:    repository.ProvideStore[roomdomain.Room](p.DB),
		dogs:     repository.ProvideStore[dogdomain.Dog](p.DB),
	}
}

// Create quotes the stay, then inserts the booking inside one
// transaction that re-runs the capacity check against the
// transaction's view, so two concurrent bookings cannot both squeeze
// into the last free square meters.
func (s *Service) Create(ctx context.Context, req domain.CreateBookingRequest) (domain.BookingResult, error) {
	orgID, ok := tenantctx.OrgIDFromContext(ctx)
	if !ok || orgID == 0 {
		return domain.BookingResult{}, domain.ErrInvalidOrganization
	}

	dogID, err := snowflake.ParseString(strings.TrimSpace(req.DogID))
	if err != nil {
		return domain.BookingResult{}, domain.ErrInvalidDog
	}
	roomID, err := snowflake.ParseString(strings.TrimSpace(req.RoomID))
	if err != nil {
		return domain.BookingResult{}, domain.ErrInvalidRoom
	}
	if req.CheckIn.IsZero() || req.CheckOut.IsZero() || !req.CheckOut.After(req.CheckIn) {
		return domain.BookingResult{}, domain.ErrInvalidDateRange
	}

	dog, err := s.dogs.FindOne(ctx, &dogdomain.Dog{ID: dogID, OrgID: orgID})
	if err != nil {
		return domain.BookingResult{}, err
	}
	if dog == nil {
		return domain.BookingResult{}, domain.ErrInvalidDog
	}
	room, err := s.rooms.FindOne(ctx, &roomdomain.Room{ID: roomID, OrgID: orgID})
	if err != nil {
		return domain.BookingResult{}, err
	}
	if room == nil {
		return domain.BookingResult{}, domain.ErrInvalidRoom
	}

	breakdown, err := s.pricing.Quote(ctx, pricingdomain.QuoteRequest{
		DogID:    req.DogID,
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		AddonIDs: req.AddonIDs,
	})
	if err != nil {
		return domain.BookingResult{}, err
	}

	breakdownJSON, err := json.Marshal(breakdown)
	if err != nil {
		return domain.BookingResult{}, err
	}

	now := s.clock.Now()
	booking := domain.Booking{
		ID:             s.genID.Generate(),
		OrgID:          orgID,
		DogID:          dogID,
		RoomID:         roomID,
		StartDate:      req.CheckIn,
		EndDate:        req.CheckOut,
		Status:         domain.StatusConfirmed,
		TotalPrice:     breakdown.FinalPrice,
		PriceBreakdown: breakdownJSON,
		Notes:          req.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	var verdict capacitydomain.CheckResult
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		occupants, err := repo.OverlappingStays(ctx, orgID, roomID, req.CheckIn, req.CheckOut, 0)
		if err != nil {
			return err
		}
		verdict = capacitydomain.Evaluate(*room, occupants, dog.HeightCm, s.defaults.Get())
		if !verdict.Allowed && !req.ForceCapacity {
			return domain.ErrRoomFull
		}

		return repo.Create(ctx, &booking)
	})
	if err != nil {
		if errors.Is(err, domain.ErrRoomFull) {
			s.log.Info("booking refused by capacity check",
				zap.String("org_id", orgID.String()),
				zap.String("room_id", roomID.String()),
				zap.String("reason", verdict.Message),
			)
			return domain.BookingResult{Capacity: verdict, Breakdown: breakdown}, domain.ErrRoomFull
		}
		return domain.BookingResult{}, err
	}

	return domain.BookingResult{
		Booking:   booking,
		Capacity:  verdict,
		Breakdown: breakdown,
	}, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Booking, error) {
	orgID, ok := tenantctx.OrgIDFromContext(ctx)
	if !ok || orgID == 0 {
		return nil, domain.ErrInvalidOrganization
	}
	return s.repo.Find(ctx, orgID)
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Booking, error) {
	booking, err := s.find(ctx, id)
	if err != nil {
		return domain.Booking{}, err
	}
	return *booking, nil
}

func (s *Service) Update(ctx context.Context, id string, req domain.UpdateBookingRequest) (domain.Booking, error) {
	booking, err := s.find(ctx, id)
	if err != nil {
		return domain.Booking{}, err
	}

	if req.Status != nil {
		if !req.Status.Valid() {
			return domain.Booking{}, domain.ErrInvalidStatus
		}
		booking.Status = *req.Status
	}
	if req.Notes != nil {
		booking.Notes = *req.Notes
	}
	booking.UpdatedAt = s.clock.Now()

	if err := s.repo.Save(ctx, booking); err != nil {
		return domain.Booking{}, err
	}
	return *booking, nil
}

func (s *Service) Cancel(ctx context.Context, id string) (domain.Booking, error) {
	booking, err := s.find(ctx, id)
	if err != nil {
		return domain.Booking{}, err
	}

	booking.Status = domain.StatusCancelled
	booking.UpdatedAt = s.clock.Now()

	if err := s.repo.Save(ctx, booking); err != nil {
		return domain.Booking{}, err
	}
	return *booking, nil
}

func (s *Service) find(ctx context.Context, id string) (*domain.Booking, error) {
	orgID, ok := tenantctx.OrgIDFromContext(ctx)
	if !ok || orgID == 0 {
		return nil, domain.ErrInvalidOrganization
	}

	bookingID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	booking, err := s.repo.FindOne(ctx, orgID, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, domain.ErrNotFound
	}
	return booking, nil
}
