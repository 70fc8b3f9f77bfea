package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/pawhaus/boarding/internal/clock"
	"github.com/pawhaus/boarding/internal/dog/domain"
	"github.com/pawhaus/boarding/pkg/db/option"
	"github.com/pawhaus/boarding/pkg/db/pagination"
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
	repo  repository.Repository[domain.Dog]
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("dog.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  repository.ProvideStore[domain.Dog](p.DB),
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateDogRequest) (domain.Dog, error) {
	orgID, ok := tenantctx.OrgIDFromContext(ctx)
	if !ok || orgID == 0 {
		return domain.Dog{}, domain.ErrInvalidOrganization
	}

	ownerID, err := snowflake.ParseString(strings.TrimSpace(req.OwnerID))
	if err != nil {
		return domain.Dog{}, domain.ErrInvalidOwner
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Dog{}, domain.ErrInvalidName
	}

	now := s.clock.Now()
	dog := domain.Dog{
		ID:             s.genID.Generate(),
		OrgID:          orgID,
		OwnerID:        ownerID,
		Name:           name,
		Breed:          strings.TrimSpace(req.Breed),
		HeightCm:       req.HeightCm,
		VaccinationDHP: req.VaccinationDHP,
		VaccinationPI:  req.VaccinationPI,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, &dog); err != nil {
		return domain.Dog{}, err
	}

	return dog, nil
}

func (s *Service) List(ctx context.Context, req domain.ListDogsRequest) (domain.ListDogsResponse, error) {
	orgID, ok := tenantctx.OrgIDFromContext(ctx)
	if !ok || orgID == 0 {
		return domain.ListDogsResponse{}, domain.ErrInvalidOrganization
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	rows, err := s.repo.Find(ctx, &domain.Dog{OrgID: orgID},
		option.WithOrder("created_at desc, id desc"),
		option.ApplyPagination(pagination.Pagination{
			PageToken: req.PageToken,
			PageSize:  pageSize,
		}),
	)
	if err != nil {
		return domain.ListDogsResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(rows, pageSize, func(dog *domain.Dog) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        dog.ID.String(),
			CreatedAt: dog.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo.HasMore && len(rows) > pageSize {
		rows = rows[:pageSize]
	}

	dogs := make([]domain.Dog, 0, len(rows))
	for _, row := range rows {
		dogs = append(dogs, *row)
	}

	return domain.ListDogsResponse{PageInfo: *pageInfo, Dogs: dogs}, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Dog, error) {
	dog, err := s.find(ctx, id)
	if err != nil {
		return domain.Dog{}, err
	}
	return *dog, nil
}

func (s *Service) Update(ctx context.Context, id string, req domain.UpdateDogRequest) (domain.Dog, error) {
	dog, err := s.find(ctx, id)
	if err != nil {
		return domain.Dog{}, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.Dog{}, domain.ErrInvalidName
		}
		dog.Name = name
	}
	if req.Breed != nil {
		dog.Breed = strings.TrimSpace(*req.Breed)
	}
	if req.HeightCm != nil {
		dog.HeightCm = req.HeightCm
	}
	if req.VaccinationDHP != nil {
		dog.VaccinationDHP = req.VaccinationDHP
	}
	if req.VaccinationPI != nil {
		dog.VaccinationPI = req.VaccinationPI
	}
	if req.Active != nil {
		dog.Active = *req.Active
	}
	dog.UpdatedAt = s.clock.Now()

	if err := s.db.WithContext(ctx).Save(dog).Error; err != nil {
		return domain.Dog{}, err
	}

	return *dog, nil
}

func (s *Service) Vaccinations(ctx context.Context, id string) (domain.VaccinationReport, error) {
	dog, err := s.find(ctx, id)
	if err != nil {
		return domain.VaccinationReport{}, err
	}

	now := s.clock.Now()
	return domain.VaccinationReport{
		DogID: dog.ID.String(),
		DHP:   domain.EvaluateVaccination(truncateToDate(dog.VaccinationDHP), domain.DHPValidityYears, now),
		PI:    domain.EvaluateVaccination(truncateToDate(dog.VaccinationPI), domain.PIValidityYears, now),
	}, nil
}

func (s *Service) find(ctx context.Context, id string) (*domain.Dog, error) {
	orgID, ok := tenantctx.OrgIDFromContext(ctx)
	if !ok || orgID == 0 {
		return nil, domain.ErrInvalidOrganization
	}

	dogID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	dog, err := s.repo.FindOne(ctx, &domain.Dog{ID: dogID, OrgID: orgID})
	if err != nil {
		return nil, err
	}
	if dog == nil {
		return nil, domain.ErrNotFound
	}
	return dog, nil
}

func truncateToDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}
