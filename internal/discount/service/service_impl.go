package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/pawhaus/boarding/internal/clock"
	"github.com/pawhaus/boarding/internal/discount/domain"
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
	repo  repository.Repository[domain.CustomerDiscount]
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("discount.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  repository.ProvideStore[domain.CustomerDiscount](p.DB),
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateDiscountRequest) (domain.CustomerDiscount, error) {
	orgID, ok := tenantctx.OrgIDFromContext(ctx)
	if !ok || orgID == 0 {
		return domain.CustomerDiscount{}, domain.ErrInvalidOrganization
	}

	ownerID, err := snowflake.ParseString(strings.TrimSpace(req.OwnerID))
	if err != nil {
		return domain.CustomerDiscount{}, domain.ErrInvalidOwner
	}
	name := strings.TrimSpace(req.DiscountName)
	if name == "" {
		return domain.CustomerDiscount{}, domain.ErrInvalidName
	}
	if req.DiscountPercentage == nil && req.DiscountAmount == nil {
		return domain.CustomerDiscount{}, domain.ErrInvalidValue
	}
	if req.DiscountPercentage != nil && (*req.DiscountPercentage < 0 || *req.DiscountPercentage > 100) {
		return domain.CustomerDiscount{}, domain.ErrInvalidValue
	}
	if req.DiscountAmount != nil && *req.DiscountAmount < 0 {
		return domain.CustomerDiscount{}, domain.ErrInvalidValue
	}

	discount := domain.CustomerDiscount{
		ID:                 s.genID.Generate(),
		OrgID:              orgID,
		OwnerID:            ownerID,
		DiscountType:       strings.TrimSpace(req.DiscountType),
		DiscountName:       name,
		DiscountPercentage: req.DiscountPercentage,
		DiscountAmount:     req.DiscountAmount,
		ValidFrom:          req.ValidFrom,
		ValidUntil:         req.ValidUntil,
		MinNights:          req.MinNights,
		Active:             true,
		CreatedAt:          s.clock.Now(),
	}

	if err := s.repo.Create(ctx, &discount); err != nil {
		return domain.CustomerDiscount{}, err
	}

	return discount, nil
}

func (s *Service) List(ctx context.Context) ([]domain.CustomerDiscount, error) {
	orgID, ok := tenantctx.OrgIDFromContext(ctx)
	if !ok || orgID == 0 {
		return nil, domain.ErrInvalidOrganization
	}
	return s.list(ctx, &domain.CustomerDiscount{OrgID: orgID})
}

func (s *Service) ListByOwner(ctx context.Context, ownerID snowflake.ID) ([]domain.CustomerDiscount, error) {
	orgID, ok := tenantctx.OrgIDFromContext(ctx)
	if !ok || orgID == 0 {
		return nil, domain.ErrInvalidOrganization
	}
	if ownerID == 0 {
		return nil, domain.ErrInvalidOwner
	}
	return s.list(ctx, &domain.CustomerDiscount{OrgID: orgID, OwnerID: ownerID})
}

func (s *Service) list(ctx context.Context, filter *domain.CustomerDiscount) ([]domain.CustomerDiscount, error) {
	rows, err := s.repo.Find(ctx, filter, option.WithOrder("created_at asc"))
	if err != nil {
		return nil, err
	}

	discounts := make([]domain.CustomerDiscount, 0, len(rows))
	for _, row := range rows {
		discounts = append(discounts, *row)
	}
	return discounts, nil
}

func (s *Service) Update(ctx context.Context, id string, req domain.UpdateDiscountRequest) (domain.CustomerDiscount, error) {
	discount, err := s.find(ctx, id)
	if err != nil {
		return domain.CustomerDiscount{}, err
	}

	if req.DiscountType != nil {
		discount.DiscountType = strings.TrimSpace(*req.DiscountType)
	}
	if req.DiscountName != nil {
		name := strings.TrimSpace(*req.DiscountName)
		if name == "" {
			return domain.CustomerDiscount{}, domain.ErrInvalidName
		}
		discount.DiscountName = name
	}
	if req.DiscountPercentage != nil {
		if *req.DiscountPercentage < 0 || *req.DiscountPercentage > 100 {
			return domain.CustomerDiscount{}, domain.ErrInvalidValue
		}
		discount.DiscountPercentage = req.DiscountPercentage
	}
	if req.DiscountAmount != nil {
		if *req.DiscountAmount < 0 {
			return domain.CustomerDiscount{}, domain.ErrInvalidValue
		}
		discount.DiscountAmount = req.DiscountAmount
	}
	if req.ValidFrom != nil {
		discount.ValidFrom = req.ValidFrom
	}
	if req.ValidUntil != nil {
		discount.ValidUntil = req.ValidUntil
	}
	if req.MinNights != nil {
		discount.MinNights = req.MinNights
	}
	if req.Active != nil {
		discount.Active = *req.Active
	}

	if err := s.db.WithContext(ctx).Save(discount).Error; err != nil {
		return domain.CustomerDiscount{}, err
	}

	return *discount, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	discount, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, discount.ID.String())
}

func (s *Service) find(ctx context.Context, id string) (*domain.CustomerDiscount, error) {
	orgID, ok := tenantctx.OrgIDFromContext(ctx)
	if !ok || orgID == 0 {
		return nil, domain.ErrInvalidOrganization
	}

	discountID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	discount, err := s.repo.FindOne(ctx, &domain.CustomerDiscount{ID: discountID, OrgID: orgID})
	if err != nil {
		return nil, err
	}
	if discount == nil {
		return nil, domain.ErrNotFound
	}
	return discount, nil
}
