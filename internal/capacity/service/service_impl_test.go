package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	bookingdomain "github.com/pawhaus/boarding/internal/booking/domain"
	bookingrepository "github.com/pawhaus/boarding/internal/booking/repository"
	"github.com/pawhaus/boarding/internal/capacity/domain"
	"github.com/pawhaus/boarding/internal/config"
	dogdomain "github.com/pawhaus/boarding/internal/dog/domain"
	roomdomain "github.com/pawhaus/boarding/internal/room/domain"
	"github.com/pawhaus/boarding/pkg/tenantctx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func f(v float64) *float64 { return &v }

func setupCapacityTest(t *testing.T) (*gorm.DB, *snowflake.Node, domain.Service) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)

	err = db.AutoMigrate(
		&dogdomain.Dog{},
		&roomdomain.Room{},
		&bookingdomain.Booking{},
	)
	assert.NoError(t, err)

	node, _ := snowflake.NewNode(1)

	svc := New(Params{
		DB:       db,
		Log:      zap.NewNop(),
		Defaults: config.NewStaticPricingDefaults(config.DefaultPricingDefaults()),
		Bookings: bookingrepository.New(db),
	})

	return db, node, svc
}

func seedDog(t *testing.T, db *gorm.DB, node *snowflake.Node, orgID snowflake.ID, height *float64) snowflake.ID {
	t.Helper()
	id := node.Generate()
	assert.NoError(t, db.Create(&dogdomain.Dog{
		ID:       id,
		OrgID:    orgID,
		OwnerID:  node.Generate(),
		Name:     "dog-" + id.String(),
		HeightCm: height,
		Active:   true,
	}).Error)
	return id
}

func seedBooking(t *testing.T, db *gorm.DB, node *snowflake.Node, orgID, roomID, dogID snowflake.ID, start, end time.Time, status bookingdomain.BookingStatus) snowflake.ID {
	t.Helper()
	id := node.Generate()
	assert.NoError(t, db.Create(&bookingdomain.Booking{
		ID:        id,
		OrgID:     orgID,
		DogID:     dogID,
		RoomID:    roomID,
		StartDate: start,
		EndDate:   end,
		Status:    status,
	}).Error)
	return id
}

func TestCheck_OverlappingStaysConsumeArea(t *testing.T) {
	db, node, svc := setupCapacityTest(t)

	orgID := node.Generate()
	ctx := tenantctx.WithOrgID(context.Background(), orgID)

	roomID := node.Generate()
	assert.NoError(t, db.Create(&roomdomain.Room{
		ID:         roomID,
		OrgID:      orgID,
		RoomNumber: "101",
		AreaSqm:    f(5.0),
		Active:     true,
	}).Error)

	resident := seedDog(t, db, node, orgID, f(50)) // uses 3.5
	newcomer := seedDog(t, db, node, orgID, f(30)) // needs 2.0

	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)
	seedBooking(t, db, node, orgID, roomID, resident, start, end, bookingdomain.StatusConfirmed)

	// Overlapping stay: 2.0 needed, only 1.5 left.
	result, err := svc.Check(ctx, domain.CheckRequest{
		RoomID:    roomID.String(),
		DogID:     newcomer.String(),
		StartDate: time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 7, 8, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Equal(t, 1, result.CurrentDogs)
	assert.InDelta(t, 3.5, result.UsedArea, 1e-9)

	// Disjoint dates leave the room empty.
	result, err = svc.Check(ctx, domain.CheckRequest{
		RoomID:    roomID.String(),
		DogID:     newcomer.String(),
		StartDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Equal(t, 0, result.CurrentDogs)
}

func TestCheck_IgnoresCancelledAndPending(t *testing.T) {
	db, node, svc := setupCapacityTest(t)

	orgID := node.Generate()
	ctx := tenantctx.WithOrgID(context.Background(), orgID)

	roomID := node.Generate()
	assert.NoError(t, db.Create(&roomdomain.Room{
		ID:         roomID,
		OrgID:      orgID,
		RoomNumber: "102",
		AreaSqm:    f(4.0),
		Active:     true,
	}).Error)

	resident := seedDog(t, db, node, orgID, f(50))
	newcomer := seedDog(t, db, node, orgID, f(30))

	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)
	seedBooking(t, db, node, orgID, roomID, resident, start, end, bookingdomain.StatusCancelled)
	seedBooking(t, db, node, orgID, roomID, resident, start, end, bookingdomain.StatusPending)

	result, err := svc.Check(ctx, domain.CheckRequest{
		RoomID:    roomID.String(),
		DogID:     newcomer.String(),
		StartDate: start,
		EndDate:   end,
	})
	assert.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Equal(t, 0, result.CurrentDogs)
}

func TestCheck_ExcludeBooking(t *testing.T) {
	db, node, svc := setupCapacityTest(t)

	orgID := node.Generate()
	ctx := tenantctx.WithOrgID(context.Background(), orgID)

	roomID := node.Generate()
	assert.NoError(t, db.Create(&roomdomain.Room{
		ID:         roomID,
		OrgID:      orgID,
		RoomNumber: "103",
		AreaSqm:    f(4.0),
		Active:     true,
	}).Error)

	dogID := seedDog(t, db, node, orgID, f(50))
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)
	bookingID := seedBooking(t, db, node, orgID, roomID, dogID, start, end, bookingdomain.StatusConfirmed)

	// Rebooking the same stay must not count itself.
	result, err := svc.Check(ctx, domain.CheckRequest{
		RoomID:           roomID.String(),
		DogID:            dogID.String(),
		StartDate:        start,
		EndDate:          end,
		ExcludeBookingID: bookingID.String(),
	})
	assert.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Equal(t, 0, result.CurrentDogs)
}

func TestCheck_UnknownHeightAssumption(t *testing.T) {
	db, node, svc := setupCapacityTest(t)

	orgID := node.Generate()
	ctx := tenantctx.WithOrgID(context.Background(), orgID)

	roomID := node.Generate()
	assert.NoError(t, db.Create(&roomdomain.Room{
		ID:         roomID,
		OrgID:      orgID,
		RoomNumber: "104",
		AreaSqm:    f(6.0),
		Active:     true,
	}).Error)

	// Resident with unknown height counts as a 40cm dog (2.5 sqm).
	resident := seedDog(t, db, node, orgID, nil)
	newcomer := seedDog(t, db, node, orgID, f(30))

	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)
	seedBooking(t, db, node, orgID, roomID, resident, start, end, bookingdomain.StatusConfirmed)

	result, err := svc.Check(ctx, domain.CheckRequest{
		RoomID:    roomID.String(),
		DogID:     newcomer.String(),
		StartDate: start,
		EndDate:   end,
	})
	assert.NoError(t, err)
	assert.InDelta(t, 2.5, result.UsedArea, 1e-9)
	assert.True(t, result.Allowed)
}

func TestRoomOccupancy(t *testing.T) {
	db, node, svc := setupCapacityTest(t)

	orgID := node.Generate()
	ctx := tenantctx.WithOrgID(context.Background(), orgID)

	roomID := node.Generate()
	assert.NoError(t, db.Create(&roomdomain.Room{
		ID:         roomID,
		OrgID:      orgID,
		RoomNumber: "105",
		AreaSqm:    f(10.0),
		Active:     true,
	}).Error)

	small := seedDog(t, db, node, orgID, f(20))
	large := seedDog(t, db, node, orgID, f(60))

	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)
	seedBooking(t, db, node, orgID, roomID, small, start, end, bookingdomain.StatusConfirmed)
	seedBooking(t, db, node, orgID, roomID, large, start, end, bookingdomain.StatusCheckedIn)

	occ, err := svc.RoomOccupancy(ctx, roomID.String(), time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err)
	assert.Equal(t, 2, occ.CurrentDogs)
	assert.InDelta(t, 10.0, occ.RoomArea, 1e-9)

	// Individual sums: 2.0 + 4.5.
	assert.InDelta(t, 6.5, occ.UsedArea, 1e-9)

	// Group housing: largest (4.5) plus supplement for the 20cm dog (1.0).
	assert.InDelta(t, 5.5, occ.GroupRequiredArea, 1e-9)
	assert.Equal(t, 55, occ.UtilizationPct)
	assert.Equal(t, domain.ComplianceCompliant, occ.Compliance)
}

func TestCheck_Validation(t *testing.T) {
	_, node, svc := setupCapacityTest(t)

	orgID := node.Generate()
	ctx := tenantctx.WithOrgID(context.Background(), orgID)
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.Check(context.Background(), domain.CheckRequest{
		RoomID:    node.Generate().String(),
		DogID:     node.Generate().String(),
		StartDate: start,
		EndDate:   start,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidOrganization)

	_, err = svc.Check(ctx, domain.CheckRequest{
		RoomID:    "nope",
		DogID:     node.Generate().String(),
		StartDate: start,
		EndDate:   start,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRoom)

	_, err = svc.Check(ctx, domain.CheckRequest{
		RoomID:    node.Generate().String(),
		DogID:     node.Generate().String(),
		StartDate: start,
		EndDate:   start,
	})
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}
