package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/pawhaus/boarding/internal/clock"
	"github.com/pawhaus/boarding/internal/season/domain"
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
	repo  repository.Repository[domain.PricingSeason]
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("season.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  repository.ProvideStore[domain.PricingSeason](p.DB),
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateSeasonRequest) (domain.PricingSeason, error) {
	orgID, ok := tenantctx.OrgIDFromContext(ctx)
	if !ok || orgID == 0 {
		return domain.PricingSeason{}, domain.ErrInvalidOrganization
	}

	name := strings.TrimSpace(req.SeasonName)
	if name == "" {
		return domain.PricingSeason{}, domain.ErrInvalidName
	}
	if req.EndDate.Before(req.StartDate) {
		return domain.PricingSeason{}, domain.ErrInvalidDateRange
	}

	multiplier := req.PriceMultiplier
	if multiplier == 0 {
		multiplier = 1.0
	}
	if multiplier < 0 {
		return domain.PricingSeason{}, domain.ErrInvalidMultiplier
	}

	seasonType := req.SeasonType
	if seasonType == "" {
		seasonType = domain.SeasonNormal
	}

	now := s.clock.Now()
	season := domain.PricingSeason{
		ID:              s.genID.Generate(),
		OrgID:           orgID,
		SeasonName:      name,
		SeasonType:      seasonType,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		PriceMultiplier: multiplier,
		PriceAddition:   req.PriceAddition,
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, &season); err != nil {
		return domain.PricingSeason{}, err
	}

	return season, nil
}

func (s *Service) List(ctx context.Context) ([]domain.PricingSeason, error) {
	orgID, ok := tenantctx.OrgIDFromContext(ctx)
	if !ok || orgID == 0 {
		return nil, domain.ErrInvalidOrganization
	}

	rows, err := s.repo.Find(ctx, &domain.PricingSeason{OrgID: orgID}, option.WithOrder("start_date asc"))
	if err != nil {
		return nil, err
	}

	seasons := make([]domain.PricingSeason, 0, len(rows))
	for _, row := range rows {
		seasons = append(seasons, *row)
	}
	return seasons, nil
}

func (s *Service) Update(ctx context.Context, id string, req domain.UpdateSeasonRequest) (domain.PricingSeason, error) {
	season, err := s.find(ctx, id)
	if err != nil {
		return domain.PricingSeason{}, err
	}

	if req.SeasonName != nil {
		name := strings.TrimSpace(*req.SeasonName)
		if name == "" {
			return domain.PricingSeason{}, domain.ErrInvalidName
		}
		season.SeasonName = name
	}
	if req.StartDate != nil {
		season.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		season.EndDate = *req.EndDate
	}
	if season.EndDate.Before(season.StartDate) {
		return domain.PricingSeason{}, domain.ErrInvalidDateRange
	}
	if req.PriceMultiplier != nil {
		if *req.PriceMultiplier < 0 {
			return domain.PricingSeason{}, domain.ErrInvalidMultiplier
		}
		season.PriceMultiplier = *req.PriceMultiplier
	}
	if req.PriceAddition != nil {
		season.PriceAddition = *req.PriceAddition
	}
	if req.Active != nil {
		season.Active = *req.Active
	}
	season.UpdatedAt = s.clock.Now()

	if err := s.db.WithContext(ctx).Save(season).Error; err != nil {
		return domain.PricingSeason{}, err
	}

	return *season, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	season, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, season.ID.String())
}

func (s *Service) find(ctx context.Context, id string) (*domain.PricingSeason, error) {
	orgID, ok := tenantctx.OrgIDFromContext(ctx)
	if !ok || orgID == 0 {
		return nil, domain.ErrInvalidOrganization
	}

	seasonID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	season, err := s.repo.FindOne(ctx, &domain.PricingSeason{ID: seasonID, OrgID: orgID})
	if err != nil {
		return nil, err
	}
	if season == nil {
		return nil, domain.ErrNotFound
	}
	return season, nil
}
