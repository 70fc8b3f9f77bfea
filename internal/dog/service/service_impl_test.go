package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/pawhaus/boarding/internal/clock"
	"github.com/pawhaus/boarding/internal/dog/domain"
	"github.com/pawhaus/boarding/pkg/tenantctx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupDogTest(t *testing.T) (domain.Service, *snowflake.Node) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)

	err = db.AutoMigrate(&domain.Dog{})
	assert.NoError(t, err)

	node, _ := snowflake.NewNode(1)

	svc := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: clock.NewFakeClock(time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)),
	})

	return svc, node
}

func f(v float64) *float64 { return &v }

func d(y int, m time.Month, day int) *time.Time {
	t := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestCreateDog(t *testing.T) {
	svc, node := setupDogTest(t)
	ctx := tenantctx.WithOrgID(context.Background(), node.Generate())

	dog, err := svc.Create(ctx, domain.CreateDogRequest{
		OwnerID:  node.Generate().String(),
		Name:     "  Bella ",
		Breed:    "border collie",
		HeightCm: f(48),
	})
	assert.NoError(t, err)
	assert.Equal(t, "Bella", dog.Name)
	assert.True(t, dog.Active)

	got, err := svc.GetByID(ctx, dog.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, dog.ID, got.ID)
	assert.Equal(t, "border collie", got.Breed)
}

func TestCreateDog_Validation(t *testing.T) {
	svc, node := setupDogTest(t)
	ctx := tenantctx.WithOrgID(context.Background(), node.Generate())

	_, err := svc.Create(context.Background(), domain.CreateDogRequest{OwnerID: node.Generate().String(), Name: "Rex"})
	assert.ErrorIs(t, err, domain.ErrInvalidOrganization)

	_, err = svc.Create(ctx, domain.CreateDogRequest{OwnerID: "abc", Name: "Rex"})
	assert.ErrorIs(t, err, domain.ErrInvalidOwner)

	_, err = svc.Create(ctx, domain.CreateDogRequest{OwnerID: node.Generate().String(), Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidName)
}

func TestListDogs_ScopedToOrganization(t *testing.T) {
	svc, node := setupDogTest(t)
	orgA := tenantctx.WithOrgID(context.Background(), node.Generate())
	orgB := tenantctx.WithOrgID(context.Background(), node.Generate())

	_, err := svc.Create(orgA, domain.CreateDogRequest{OwnerID: node.Generate().String(), Name: "Bella"})
	assert.NoError(t, err)
	_, err = svc.Create(orgB, domain.CreateDogRequest{OwnerID: node.Generate().String(), Name: "Rex"})
	assert.NoError(t, err)

	resp, err := svc.List(orgA, domain.ListDogsRequest{})
	assert.NoError(t, err)
	assert.Len(t, resp.Dogs, 1)
	assert.Equal(t, "Bella", resp.Dogs[0].Name)
	assert.False(t, resp.HasMore)
}

func TestListDogs_Pagination(t *testing.T) {
	svc, node := setupDogTest(t)
	ctx := tenantctx.WithOrgID(context.Background(), node.Generate())

	for i := 0; i < 5; i++ {
		_, err := svc.Create(ctx, domain.CreateDogRequest{
			OwnerID: node.Generate().String(),
			Name:    "Dog",
		})
		assert.NoError(t, err)
	}

	first, err := svc.List(ctx, domain.ListDogsRequest{PageSize: 2})
	assert.NoError(t, err)
	assert.Len(t, first.Dogs, 2)
	assert.True(t, first.HasMore)
	assert.NotEmpty(t, first.NextPageToken)
}

func TestUpdateDog(t *testing.T) {
	svc, node := setupDogTest(t)
	ctx := tenantctx.WithOrgID(context.Background(), node.Generate())

	dog, err := svc.Create(ctx, domain.CreateDogRequest{OwnerID: node.Generate().String(), Name: "Rex"})
	assert.NoError(t, err)

	name := "Rexie"
	inactive := false
	updated, err := svc.Update(ctx, dog.ID.String(), domain.UpdateDogRequest{
		Name:     &name,
		HeightCm: f(52),
		Active:   &inactive,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Rexie", updated.Name)
	assert.Equal(t, 52.0, *updated.HeightCm)
	assert.False(t, updated.Active)

	empty := " "
	_, err = svc.Update(ctx, dog.ID.String(), domain.UpdateDogRequest{Name: &empty})
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = svc.Update(ctx, node.Generate().String(), domain.UpdateDogRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVaccinations(t *testing.T) {
	svc, node := setupDogTest(t)
	ctx := tenantctx.WithOrgID(context.Background(), node.Generate())

	// Clock is pinned at 2026-06-01. DHP given 2024-03-10 holds until
	// 2027-03-10; PI given 2025-06-15 expires 2026-06-15, inside the
	// 30-day warning window.
	dog, err := svc.Create(ctx, domain.CreateDogRequest{
		OwnerID:        node.Generate().String(),
		Name:           "Bella",
		VaccinationDHP: d(2024, time.March, 10),
		VaccinationPI:  d(2025, time.June, 15),
	})
	assert.NoError(t, err)

	report, err := svc.Vaccinations(ctx, dog.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, dog.ID.String(), report.DogID)
	assert.Equal(t, domain.VaccinationValid, report.DHP.Status)
	assert.Equal(t, domain.VaccinationExpiring, report.PI.Status)
	assert.True(t, report.PI.Valid)
}

func TestVaccinations_MissingAndExpired(t *testing.T) {
	svc, node := setupDogTest(t)
	ctx := tenantctx.WithOrgID(context.Background(), node.Generate())

	dog, err := svc.Create(ctx, domain.CreateDogRequest{
		OwnerID:       node.Generate().String(),
		Name:          "Rex",
		VaccinationPI: d(2025, time.January, 1),
	})
	assert.NoError(t, err)

	report, err := svc.Vaccinations(ctx, dog.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, domain.VaccinationMissing, report.DHP.Status)
	assert.Equal(t, domain.VaccinationExpired, report.PI.Status)
	assert.False(t, report.PI.Valid)
}
