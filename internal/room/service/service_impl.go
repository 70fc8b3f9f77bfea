package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/pawhaus/boarding/internal/clock"
	"github.com/pawhaus/boarding/internal/room/domain"
	"github.com/pawhaus/boarding/pkg/db"
	"github.com/pawhaus/boarding/pkg/db/option"
	"github.com/pawhaus/boarding/pkg/repository"
	"github.com/pawhaus/boarding/pkg/tenantctx"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  repository.Repository[domain.Room]
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("room.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  repository.ProvideStore[domain.Room](p.DB),
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRoomRequest) (domain.Room, error) {
	orgID, ok := tenantctx.OrgIDFromContext(ctx)
	if !ok || orgID == 0 {
		return domain.Room{}, domain.ErrInvalidOrganization
	}

	number := strings.TrimSpace(req.RoomNumber)
	if number == "" {
		return domain.Room{}, domain.ErrInvalidRoomNumber
	}

	roomType := req.RoomType
	if roomType == "" {
		roomType = domain.RoomTypeStandard
	}
	switch roomType {
	case domain.RoomTypeStandard, domain.RoomTypePremium, domain.RoomTypeSuite:
	default:
		return domain.Room{}, domain.ErrInvalidRoomType
	}

	if req.AreaSqm != nil && *req.AreaSqm <= 0 {
		return domain.Room{}, domain.ErrInvalidArea
	}

	now := s.clock.Now()
	room := domain.Room{
		ID:              s.genID.Generate(),
		OrgID:           orgID,
		RoomNumber:      number,
		RoomType:        roomType,
		Capacity:        req.Capacity,
		AreaSqm:         req.AreaSqm,
		MaxDogsOverride: req.MaxDogsOverride,
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, &room); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Room{}, domain.ErrDuplicateRoomNumber
		}
		return domain.Room{}, err
	}

	return room, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Room, error) {
	orgID, ok := tenantctx.OrgIDFromContext(ctx)
	if !ok || orgID == 0 {
		return nil, domain.ErrInvalidOrganization
	}

	rows, err := s.repo.Find(ctx, &domain.Room{OrgID: orgID}, option.WithOrder("room_number asc"))
	if err != nil {
		return nil, err
	}

	rooms := make([]domain.Room, 0, len(rows))
	for _, row := range rows {
		rooms = append(rooms, *row)
	}
	return rooms, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Room, error) {
	room, err := s.find(ctx, id)
	if err != nil {
		return domain.Room{}, err
	}
	return *room, nil
}

func (s *Service) Update(ctx context.Context, id string, req domain.UpdateRoomRequest) (domain.Room, error) {
	room, err := s.find(ctx, id)
	if err != nil {
		return domain.Room{}, err
	}

	if req.RoomNumber != nil {
		number := strings.TrimSpace(*req.RoomNumber)
		if number == "" {
			return domain.Room{}, domain.ErrInvalidRoomNumber
		}
		room.RoomNumber = number
	}
	if req.RoomType != nil {
		switch *req.RoomType {
		case domain.RoomTypeStandard, domain.RoomTypePremium, domain.RoomTypeSuite:
			room.RoomType = *req.RoomType
		default:
			return domain.Room{}, domain.ErrInvalidRoomType
		}
	}
	if req.Capacity != nil {
		room.Capacity = req.Capacity
	}
	if req.AreaSqm != nil {
		if *req.AreaSqm <= 0 {
			return domain.Room{}, domain.ErrInvalidArea
		}
		room.AreaSqm = req.AreaSqm
	}
	if req.MaxDogsOverride != nil {
		room.MaxDogsOverride = req.MaxDogsOverride
	}
	if req.Active != nil {
		room.Active = *req.Active
	}
	room.UpdatedAt = s.clock.Now()

	if err := s.db.WithContext(ctx).Save(room).Error; err != nil {
		return domain.Room{}, err
	}

	return *room, nil
}

func (s *Service) find(ctx context.Context, id string) (*domain.Room, error) {
	orgID, ok := tenantctx.OrgIDFromContext(ctx)
	if !ok || orgID == 0 {
		return nil, domain.ErrInvalidOrganization
	}

	roomID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	room, err := s.repo.FindOne(ctx, &domain.Room{ID: roomID, OrgID: orgID})
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, domain.ErrNotFound
	}
	return room, nil
}
