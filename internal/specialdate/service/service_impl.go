package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/pawhaus/boarding/internal/clock"
	"github.com/pawhaus/boarding/internal/specialdate/domain"
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
	repo  repository.Repository[domain.SpecialDate]
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("specialdate.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  repository.ProvideStore[domain.SpecialDate](p.DB),
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateSpecialDateRequest) (domain.SpecialDate, error) {
	orgID, ok := tenantctx.OrgIDFromContext(ctx)
	if !ok || orgID == 0 {
		return domain.SpecialDate{}, domain.ErrInvalidOrganization
	}

	name := strings.TrimSpace(req.DateName)
	if name == "" {
		return domain.SpecialDate{}, domain.ErrInvalidName
	}
	if req.DateValue.IsZero() {
		return domain.SpecialDate{}, domain.ErrInvalidDate
	}

	multiplier := req.PriceMultiplier
	if multiplier == 0 {
		multiplier = 1.0
	}
	if multiplier < 0 {
		return domain.SpecialDate{}, domain.ErrInvalidMultiplier
	}

	date := domain.SpecialDate{
		ID:              s.genID.Generate(),
		OrgID:           orgID,
		DateName:        name,
		DateValue:       req.DateValue,
		PriceMultiplier: multiplier,
		PriceAddition:   req.PriceAddition,
		RecurringYearly: req.RecurringYearly,
		Active:          true,
		CreatedAt:       s.clock.Now(),
	}

	if err := s.repo.Create(ctx, &date); err != nil {
		return domain.SpecialDate{}, err
	}

	return date, nil
}

func (s *Service) List(ctx context.Context) ([]domain.SpecialDate, error) {
	orgID, ok := tenantctx.OrgIDFromContext(ctx)
	if !ok || orgID == 0 {
		return nil, domain.ErrInvalidOrganization
	}

	rows, err := s.repo.Find(ctx, &domain.SpecialDate{OrgID: orgID}, option.WithOrder("date_value asc"))
	if err != nil {
		return nil, err
	}

	dates := make([]domain.SpecialDate, 0, len(rows))
	for _, row := range rows {
		dates = append(dates, *row)
	}
	return dates, nil
}

func (s *Service) Update(ctx context.Context, id string, req domain.UpdateSpecialDateRequest) (domain.SpecialDate, error) {
	date, err := s.find(ctx, id)
	if err != nil {
		return domain.SpecialDate{}, err
	}

	if req.DateName != nil {
		name := strings.TrimSpace(*req.DateName)
		if name == "" {
			return domain.SpecialDate{}, domain.ErrInvalidName
		}
		date.DateName = name
	}
	if req.DateValue != nil {
		if req.DateValue.IsZero() {
			return domain.SpecialDate{}, domain.ErrInvalidDate
		}
		date.DateValue = *req.DateValue
	}
	if req.PriceMultiplier != nil {
		if *req.PriceMultiplier < 0 {
			return domain.SpecialDate{}, domain.ErrInvalidMultiplier
		}
		date.PriceMultiplier = *req.PriceMultiplier
	}
	if req.PriceAddition != nil {
		date.PriceAddition = *req.PriceAddition
	}
	if req.RecurringYearly != nil {
		date.RecurringYearly = *req.RecurringYearly
	}
	if req.Active != nil {
		date.Active = *req.Active
	}

	if err := s.db.WithContext(ctx).Save(date).Error; err != nil {
		return domain.SpecialDate{}, err
	}

	return *date, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	date, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, date.ID.String())
}

func (s *Service) find(ctx context.Context, id string) (*domain.SpecialDate, error) {
	orgID, ok := tenantctx.OrgIDFromContext(ctx)
	if !ok || orgID == 0 {
		return nil, domain.ErrInvalidOrganization
	}

	dateID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	date, err := s.repo.FindOne(ctx, &domain.SpecialDate{ID: dateID, OrgID: orgID})
	if err != nil {
		return nil, err
	}
	if date == nil {
		return nil, domain.ErrNotFound
	}
	return date, nil
}
