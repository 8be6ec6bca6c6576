package repository

import "gorm.io/gorm"

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func applyPagination(db *gorm.DB, opts ListOptions) *gorm.DB {
	if opts.Page <= 0 && opts.PageSize <= 0 {
		return db
	}
	page := opts.Page
	if page <= 0 {
		page = 1
	}
	size := opts.PageSize
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return db.Offset((page - 1) * size).Limit(size)
}
