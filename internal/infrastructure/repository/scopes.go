package repository

import (
	"github.com/pmoura/purchases-api/pkg/daterange"
	"gorm.io/gorm"
)

// DateRangeScope returns a GORM scope applying a half-open range predicate
// on the named column when the filter is set. Bounds are passed as bind
// parameters.
func DateRangeScope(column string, f daterange.Filter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		start, end, ok := f.Bounds()
		if !ok {
			return db
		}
		return db.Where(column+" >= ? AND "+column+" < ?", start, end)
	}
}

// orderClause builds an ORDER BY fragment from a sort column and direction.
// Column names must be allow-listed by the handler layer before they get
// here; direction is normalized to ASC/DESC.
func orderClause(sortBy, sortOrder, defaultSort string) string {
	if sortBy == "" {
		sortBy = defaultSort
	}
	dir := "ASC"
	if sortOrder == "DESC" || sortOrder == "desc" {
		dir = "DESC"
	}
	return sortBy + " " + dir
}
