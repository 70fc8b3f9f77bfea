package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	addondomain "github.com/pawhaus/boarding/internal/addon/domain"
	"github.com/pawhaus/boarding/internal/booking/domain"
	bookingrepository "github.com/pawhaus/boarding/internal/booking/repository"
	"github.com/pawhaus/boarding/internal/clock"
	"github.com/pawhaus/boarding/internal/config"
	discountdomain "github.com/pawhaus/boarding/internal/discount/domain"
	dogdomain "github.com/pawhaus/boarding/internal/dog/domain"
	pricedomain "github.com/pawhaus/boarding/internal/price/domain"
	pricingdomain "github.com/pawhaus/boarding/internal/pricing/domain"
	pricingservice "github.com/pawhaus/boarding/internal/pricing/service"
	roomdomain "github.com/pawhaus/boarding/internal/room/domain"
	seasondomain "github.com/pawhaus/boarding/internal/season/domain"
	specialdomain "github.com/pawhaus/boarding/internal/specialdate/domain"
	"github.com/pawhaus/boarding/pkg/tenantctx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func f(v float64) *float64 { return &v }

type bookingTestEnv struct {
	db    *gorm.DB
	node  *snowflake.Node
	svc   domain.Service
	orgID snowflake.ID
	ctx   context.Context
}

func setupBookingTest(t *testing.T) *bookingTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)

	err = db.AutoMigrate(
		&dogdomain.Dog{},
		&roomdomain.Room{},
		&domain.Booking{},
		&pricedomain.BoardingPrice{},
		&seasondomain.PricingSeason{},
		&specialdomain.SpecialDate{},
		&addondomain.AddonService{},
		&discountdomain.CustomerDiscount{},
	)
	assert.NoError(t, err)

	node, _ := snowflake.NewNode(1)
	log := zap.NewNop()
	fake := clock.NewFakeClock(time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC))

	pricingSvc := pricingservice.New(pricingservice.Params{
		DB:    db,
		Log:   log,
		Clock: fake,
	})

	svc := New(Params{
		DB:       db,
		Log:      log,
		GenID:    node,
		Clock:    fake,
		Defaults: config.NewStaticPricingDefaults(config.DefaultPricingDefaults()),
		Repo:     bookingrepository.New(db),
		Pricing:  pricingSvc,
	})

	orgID := node.Generate()
	return &bookingTestEnv{
		db:    db,
		node:  node,
		svc:   svc,
		orgID: orgID,
		ctx:   tenantctx.WithOrgID(context.Background(), orgID),
	}
}

func (e *bookingTestEnv) seedDog(t *testing.T, height *float64) snowflake.ID {
	t.Helper()
	id := e.node.Generate()
	assert.NoError(t, e.db.Create(&dogdomain.Dog{
		ID:       id,
		OrgID:    e.orgID,
		OwnerID:  e.node.Generate(),
		Name:     "dog-" + id.String(),
		HeightCm: height,
		Active:   true,
	}).Error)
	return id
}

func (e *bookingTestEnv) seedRoom(t *testing.T, area float64) snowflake.ID {
	t.Helper()
	id := e.node.Generate()
	assert.NoError(t, e.db.Create(&roomdomain.Room{
		ID:         id,
		OrgID:      e.orgID,
		RoomNumber: "room-" + id.String(),
		AreaSqm:    &area,
		Active:     true,
	}).Error)
	return id
}

func (e *bookingTestEnv) seedWeekdayPrice(t *testing.T, size pricedomain.DogSize, price float64) {
	t.Helper()
	for _, pt := range []pricedomain.PriceType{pricedomain.PriceWeekday, pricedomain.PriceWeekend, pricedomain.PriceHoliday} {
		assert.NoError(t, e.db.Create(&pricedomain.BoardingPrice{
			ID:            e.node.Generate(),
			OrgID:         e.orgID,
			DogSize:       size,
			PriceType:     pt,
			PricePerNight: price,
			Active:        true,
		}).Error)
	}
}

func TestCreateBooking_StoresBreakdown(t *testing.T) {
	env := setupBookingTest(t)

	dogID := env.seedDog(t, f(30))
	roomID := env.seedRoom(t, 10.0)
	env.seedWeekdayPrice(t, pricedomain.SizeSmall, 250)

	result, err := env.svc.Create(env.ctx, domain.CreateBookingRequest{
		DogID:    dogID.String(),
		RoomID:   roomID.String(),
		CheckIn:  time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 6, 4, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, result.Booking.Status)
	assert.InDelta(t, 750.0, result.Booking.TotalPrice, 1e-9)
	assert.True(t, result.Capacity.Allowed)

	// The breakdown is persisted verbatim.
	var stored domain.Booking
	assert.NoError(t, env.db.First(&stored, "id = ?", result.Booking.ID).Error)
	var breakdown pricingdomain.PriceBreakdown
	assert.NoError(t, json.Unmarshal(stored.PriceBreakdown, &breakdown))
	assert.Equal(t, 3, breakdown.TotalNights)
	assert.InDelta(t, 750.0, breakdown.FinalPrice, 1e-9)
}

func TestCreateBooking_RefusedWhenRoomFull(t *testing.T) {
	env := setupBookingTest(t)

	first := env.seedDog(t, f(50))  // uses 3.5
	second := env.seedDog(t, f(30)) // needs 2.0
	roomID := env.seedRoom(t, 5.0)
	env.seedWeekdayPrice(t, pricedomain.SizeSmall, 250)
	env.seedWeekdayPrice(t, pricedomain.SizeMedium, 300)

	checkIn := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC)

	_, err := env.svc.Create(env.ctx, domain.CreateBookingRequest{
		DogID:    first.String(),
		RoomID:   roomID.String(),
		CheckIn:  checkIn,
		CheckOut: checkOut,
	})
	assert.NoError(t, err)

	// The second overlapping booking trips the in-transaction re-check.
	result, err := env.svc.Create(env.ctx, domain.CreateBookingRequest{
		DogID:    second.String(),
		RoomID:   roomID.String(),
		CheckIn:  checkIn,
		CheckOut: checkOut,
	})
	assert.ErrorIs(t, err, domain.ErrRoomFull)
	assert.False(t, result.Capacity.Allowed)
	assert.Contains(t, result.Capacity.Message, "room lacks space")

	// Nothing was inserted for the refused booking.
	var count int64
	assert.NoError(t, env.db.Model(&domain.Booking{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateBooking_ForceCapacity(t *testing.T) {
	env := setupBookingTest(t)

	first := env.seedDog(t, f(50))
	second := env.seedDog(t, f(30))
	roomID := env.seedRoom(t, 5.0)
	env.seedWeekdayPrice(t, pricedomain.SizeSmall, 250)
	env.seedWeekdayPrice(t, pricedomain.SizeMedium, 300)

	checkIn := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC)

	_, err := env.svc.Create(env.ctx, domain.CreateBookingRequest{
		DogID:    first.String(),
		RoomID:   roomID.String(),
		CheckIn:  checkIn,
		CheckOut: checkOut,
	})
	assert.NoError(t, err)

	// The verdict is advisory: staff can override it.
	result, err := env.svc.Create(env.ctx, domain.CreateBookingRequest{
		DogID:         second.String(),
		RoomID:        roomID.String(),
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		ForceCapacity: true,
	})
	assert.NoError(t, err)
	assert.False(t, result.Capacity.Allowed)
	assert.Equal(t, domain.StatusConfirmed, result.Booking.Status)
}

func TestCreateBooking_FreedAfterCancel(t *testing.T) {
	env := setupBookingTest(t)

	first := env.seedDog(t, f(50))
	second := env.seedDog(t, f(30))
	roomID := env.seedRoom(t, 5.0)
	env.seedWeekdayPrice(t, pricedomain.SizeSmall, 250)
	env.seedWeekdayPrice(t, pricedomain.SizeMedium, 300)

	checkIn := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC)

	created, err := env.svc.Create(env.ctx, domain.CreateBookingRequest{
		DogID:    first.String(),
		RoomID:   roomID.String(),
		CheckIn:  checkIn,
		CheckOut: checkOut,
	})
	assert.NoError(t, err)

	_, err = env.svc.Cancel(env.ctx, created.Booking.ID.String())
	assert.NoError(t, err)

	// The cancelled stay no longer blocks the room.
	_, err = env.svc.Create(env.ctx, domain.CreateBookingRequest{
		DogID:    second.String(),
		RoomID:   roomID.String(),
		CheckIn:  checkIn,
		CheckOut: checkOut,
	})
	assert.NoError(t, err)
}

func TestUpdateBooking_Status(t *testing.T) {
	env := setupBookingTest(t)

	dogID := env.seedDog(t, f(30))
	roomID := env.seedRoom(t, 10.0)
	env.seedWeekdayPrice(t, pricedomain.SizeSmall, 250)

	created, err := env.svc.Create(env.ctx, domain.CreateBookingRequest{
		DogID:    dogID.String(),
		RoomID:   roomID.String(),
		CheckIn:  time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 6, 4, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)

	checkedIn := domain.StatusCheckedIn
	updated, err := env.svc.Update(env.ctx, created.Booking.ID.String(), domain.UpdateBookingRequest{
		Status: &checkedIn,
	})
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusCheckedIn, updated.Status)

	bogus := domain.BookingStatus("vanished")
	_, err = env.svc.Update(env.ctx, created.Booking.ID.String(), domain.UpdateBookingRequest{
		Status: &bogus,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestCreateBooking_Validation(t *testing.T) {
	env := setupBookingTest(t)

	checkIn := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	_, err := env.svc.Create(env.ctx, domain.CreateBookingRequest{
		DogID:    "bad",
		RoomID:   env.node.Generate().String(),
		CheckIn:  checkIn,
		CheckOut: checkIn.AddDate(0, 0, 2),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDog)

	_, err = env.svc.Create(env.ctx, domain.CreateBookingRequest{
		DogID:    env.node.Generate().String(),
		RoomID:   env.node.Generate().String(),
		CheckIn:  checkIn,
		CheckOut: checkIn,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

	_, err = env.svc.Create(context.Background(), domain.CreateBookingRequest{
		DogID:    env.node.Generate().String(),
		RoomID:   env.node.Generate().String(),
		CheckIn:  checkIn,
		CheckOut: checkIn.AddDate(0, 0, 2),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidOrganization)
}
