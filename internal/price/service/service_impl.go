package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/pawhaus/boarding/internal/clock"
	"github.com/pawhaus/boarding/internal/price/domain"
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
	repo  repository.Repository[domain.BoardingPrice]
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("price.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  repository.ProvideStore[domain.BoardingPrice](p.DB),
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreatePriceRequest) (domain.BoardingPrice, error) {
	orgID, ok := tenantctx.OrgIDFromContext(ctx)
	if !ok || orgID == 0 {
		return domain.BoardingPrice{}, domain.ErrInvalidOrganization
	}

	if !req.DogSize.Valid() {
		return domain.BoardingPrice{}, domain.ErrInvalidDogSize
	}
	if !req.PriceType.Valid() {
		return domain.BoardingPrice{}, domain.ErrInvalidPriceType
	}
	if req.PricePerNight < 0 {
		return domain.BoardingPrice{}, domain.ErrInvalidPrice
	}

	now := s.clock.Now()
	price := domain.BoardingPrice{
		ID:            s.genID.Generate(),
		OrgID:         orgID,
		DogSize:       req.DogSize,
		PriceType:     req.PriceType,
		PricePerNight: req.PricePerNight,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, &price); err != nil {
		return domain.BoardingPrice{}, err
	}

	return price, nil
}

func (s *Service) List(ctx context.Context) ([]domain.BoardingPrice, error) {
	orgID, ok := tenantctx.OrgIDFromContext(ctx)
	if !ok || orgID == 0 {
		return nil, domain.ErrInvalidOrganization
	}

	rows, err := s.repo.Find(ctx, &domain.BoardingPrice{OrgID: orgID}, option.WithOrder("dog_size asc, price_type asc"))
	if err != nil {
		return nil, err
	}

	prices := make([]domain.BoardingPrice, 0, len(rows))
	for _, row := range rows {
		prices = append(prices, *row)
	}
	return prices, nil
}

func (s *Service) Update(ctx context.Context, id string, req domain.UpdatePriceRequest) (domain.BoardingPrice, error) {
	price, err := s.find(ctx, id)
	if err != nil {
		return domain.BoardingPrice{}, err
	}

	if req.PricePerNight != nil {
		if *req.PricePerNight < 0 {
			return domain.BoardingPrice{}, domain.ErrInvalidPrice
		}
		price.PricePerNight = *req.PricePerNight
	}
	if req.Active != nil {
		price.Active = *req.Active
	}
	price.UpdatedAt = s.clock.Now()

	if err := s.db.WithContext(ctx).Save(price).Error; err != nil {
		return domain.BoardingPrice{}, err
	}

	return *price, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	price, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, price.ID.String())
}

func (s *Service) find(ctx context.Context, id string) (*domain.BoardingPrice, error) {
	orgID, ok := tenantctx.OrgIDFromContext(ctx)
	if !ok || orgID == 0 {
		return nil, domain.ErrInvalidOrganization
	}

	priceID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	price, err := s.repo.FindOne(ctx, &domain.BoardingPrice{ID: priceID, OrgID: orgID})
	if err != nil {
		return nil, err
	}
	if price == nil {
		return nil, domain.ErrNotFound
	}
	return price, nil
}
