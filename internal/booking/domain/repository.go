package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	capacitydomain "github.com/pawhaus/boarding/internal/capacity/domain"
	"gorm.io/gorm"
)

// Repository is the booking store. Besides plain persistence it
// answers the overlap query capacity decisions are built on: which
// confirmed stays occupy a room during a date range, joined with the
// height of the dog each stay houses.
type Repository interface {
	Create(ctx context.Context, booking *Booking) error
	FindOne(ctx context.Context, orgID, id snowflake.ID) (*Booking, error)
	Find(ctx context.Context, orgID snowflake.ID) ([]Booking, error)
	Save(ctx context.Context, booking *Booking) error

	// OverlappingStays returns confirmed (or checked-in) stays in the
	// room whose date range intersects [start, end], excluding the
	// booking with excludeID when non-zero.
	OverlappingStays(ctx context.Context, orgID, roomID snowflake.ID, start, end time.Time, excludeID snowflake.ID) ([]capacitydomain.OccupantStay, error)

	// WithTx returns a repository bound to the given transaction so
	// overlap checks and inserts share one consistent view.
	WithTx(tx *gorm.DB) Repository
}
