package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/pawhaus/boarding/internal/booking/domain"
	capacitydomain "github.com/pawhaus/boarding/internal/capacity/domain"
	"gorm.io/gorm"
)

type bookingRepository struct {
	db *gorm.DB
}

func New(db *gorm.DB) domain.Repository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) WithTx(tx *gorm.DB) domain.Repository {
	return &bookingRepository{db: tx}
}

func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindOne(ctx context.Context, orgID, id snowflake.ID) (*domain.Booking, error) {
	var booking domain.Booking
	err := r.db.WithContext(ctx).
		Where("id = ? AND org_id = ?", id, orgID).
		First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Find(ctx context.Context, orgID snowflake.ID) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Order("start_date desc").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) Save(ctx context.Context, booking *domain.Booking) error {
	return r.db.WithContext(ctx).Save(booking).Error
}

// occupantRow is the scan target for the overlap join.
type occupantRow struct {
	BookingID snowflake.ID
	DogID     snowflake.ID
	HeightCm  *float64
	StartDate time.Time
	EndDate   time.Time
}

func (r *bookingRepository) OverlappingStays(ctx context.Context, orgID, roomID snowflake.ID, start, end time.Time, excludeID snowflake.ID) ([]capacitydomain.OccupantStay, error) {
	query := r.db.WithContext(ctx).
		Table("bookings").
		Select("bookings.id as booking_id, bookings.dog_id, dogs.height_cm, bookings.start_date, bookings.end_date").
		Joins("JOIN dogs ON dogs.id = bookings.dog_id").
		Where("bookings.org_id = ?", orgID).
		Where("bookings.room_id = ?", roomID).
		Where("bookings.status IN ?", []domain.BookingStatus{domain.StatusConfirmed, domain.StatusCheckedIn}).
		Where("bookings.start_date <= ? AND bookings.end_date >= ?", end, start)
	if excludeID != 0 {
		query = query.Where("bookings.id <> ?", excludeID)
	}

	var rows []occupantRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	stays := make([]capacitydomain.OccupantStay, 0, len(rows))
	for _, row := range rows {
		stays = append(stays, capacitydomain.OccupantStay{
			BookingID: row.BookingID,
			DogID:     row.DogID,
			HeightCm:  row.HeightCm,
			StartDate: row.StartDate,
			EndDate:   row.EndDate,
		})
	}
	return stays, nil
}
