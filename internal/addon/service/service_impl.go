package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/pawhaus/boarding/internal/addon/domain"
	"github.com/pawhaus/boarding/internal/clock"
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
	repo  repository.Repository[domain.AddonService]
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("addon.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  repository.ProvideStore[domain.AddonService](p.DB),
	}
}

func validatePrices(prices ...*float64) error {
	for _, price := range prices {
		if price != nil && *price < 0 {
			return domain.ErrInvalidPrice
		}
	}
	return nil
}

func (s *Service) Create(ctx context.Context, req domain.CreateAddonRequest) (domain.AddonService, error) {
	orgID, ok := tenantctx.OrgIDFromContext(ctx)
	if !ok || orgID == 0 {
		return domain.AddonService{}, domain.ErrInvalidOrganization
	}

	name := strings.TrimSpace(req.ServiceName)
	if name == "" {
		return domain.AddonService{}, domain.ErrInvalidName
	}
	if err := validatePrices(req.PriceSmall, req.PriceMedium, req.PriceLarge, req.PriceFlat); err != nil {
		return domain.AddonService{}, err
	}

	now := s.clock.Now()
	addon := domain.AddonService{
		ID:              s.genID.Generate(),
		OrgID:           orgID,
		ServiceName:     name,
		ServiceCategory: strings.TrimSpace(req.ServiceCategory),
		Description:     strings.TrimSpace(req.Description),
		PriceSmall:      req.PriceSmall,
		PriceMedium:     req.PriceMedium,
		PriceLarge:      req.PriceLarge,
		PriceFlat:       req.PriceFlat,
		IsPerDay:        req.IsPerDay,
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, &addon); err != nil {
		return domain.AddonService{}, err
	}

	return addon, nil
}

func (s *Service) List(ctx context.Context) ([]domain.AddonService, error) {
	orgID, ok := tenantctx.OrgIDFromContext(ctx)
	if !ok || orgID == 0 {
		return nil, domain.ErrInvalidOrganization
	}

	rows, err := s.repo.Find(ctx, &domain.AddonService{OrgID: orgID}, option.WithOrder("service_name asc"))
	if err != nil {
		return nil, err
	}

	addons := make([]domain.AddonService, 0, len(rows))
	for _, row := range rows {
		addons = append(addons, *row)
	}
	return addons, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.AddonService, error) {
	addon, err := s.find(ctx, id)
	if err != nil {
		return domain.AddonService{}, err
	}
	return *addon, nil
}

func (s *Service) Update(ctx context.Context, id string, req domain.UpdateAddonRequest) (domain.AddonService, error) {
	addon, err := s.find(ctx, id)
	if err != nil {
		return domain.AddonService{}, err
	}

	if req.ServiceName != nil {
		name := strings.TrimSpace(*req.ServiceName)
		if name == "" {
			return domain.AddonService{}, domain.ErrInvalidName
		}
		addon.ServiceName = name
	}
	if req.ServiceCategory != nil {
		addon.ServiceCategory = strings.TrimSpace(*req.ServiceCategory)
	}
	if req.Description != nil {
		addon.Description = strings.TrimSpace(*req.Description)
	}
	if err := validatePrices(req.PriceSmall, req.PriceMedium, req.PriceLarge, req.PriceFlat); err != nil {
		return domain.AddonService{}, err
	}
	if req.PriceSmall != nil {
		addon.PriceSmall = req.PriceSmall
	}
	if req.PriceMedium != nil {
		addon.PriceMedium = req.PriceMedium
	}
	if req.PriceLarge != nil {
		addon.PriceLarge = req.PriceLarge
	}
	if req.PriceFlat != nil {
		addon.PriceFlat = req.PriceFlat
	}
	if req.IsPerDay != nil {
		addon.IsPerDay = *req.IsPerDay
	}
	if req.Active != nil {
		addon.Active = *req.Active
	}
	addon.UpdatedAt = s.clock.Now()

	if err := s.db.WithContext(ctx).Save(addon).Error; err != nil {
		return domain.AddonService{}, err
	}

	return *addon, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	addon, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, addon.ID.String())
}

func (s *Service) find(ctx context.Context, id string) (*domain.AddonService, error) {
	orgID, ok := tenantctx.OrgIDFromContext(ctx)
	if !ok || orgID == 0 {
		return nil, domain.ErrInvalidOrganization
	}

	addonID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	addon, err := s.repo.FindOne(ctx, &domain.AddonService{ID: addonID, OrgID: orgID})
	if err != nil {
		return nil, err
	}
	if addon == nil {
		return nil, domain.ErrNotFound
	}
	return addon, nil
}
