package option

import (
	"github.com/pawhaus/boarding/pkg/db/pagination"
	"gorm.io/gorm"
)

// QueryOption mutates a gorm statement before execution.
type QueryOption interface {
	Apply(stmt *gorm.DB) *gorm.DB
}

type optionFunc func(stmt *gorm.DB) *gorm.DB

func (f optionFunc) Apply(stmt *gorm.DB) *gorm.DB { return f(stmt) }

// WithLimit caps the result set size.
func WithLimit(limit int) QueryOption {
	return optionFunc(func(stmt *gorm.DB) *gorm.DB {
		if limit <= 0 {
			return stmt
		}
		return stmt.Limit(limit)
	})
}

// WithOffset skips the first n rows.
func WithOffset(offset int) QueryOption {
	return optionFunc(func(stmt *gorm.DB) *gorm.DB {
		if offset <= 0 {
			return stmt
		}
		return stmt.Offset(offset)
	})
}

// WithOrder appends an ORDER BY clause.
func WithOrder(order string) QueryOption {
	return optionFunc(func(stmt *gorm.DB) *gorm.DB {
		if order == "" {
			return stmt
		}
		return stmt.Order(order)
	})
}

// ApplyPagination translates a cursor page request into limit/keyset options.
func ApplyPagination(page pagination.Pagination) QueryOption {
	return optionFunc(func(stmt *gorm.DB) *gorm.DB {
		size := page.PageSize
		if size <= 0 {
			size = 10
		}
		if page.PageToken != "" {
			cursor, err := pagination.DecodeCursor(page.PageToken)
			if err == nil && cursor.CreatedAt != "" {
				stmt = stmt.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
			}
		}
		// Fetch one extra row so callers can detect another page.
		return stmt.Limit(size + 1)
	})
}
