package service

import (
	"gorm.io/gorm"

	"github.com/pageza/fittrack/backend/internal/types"
)

// window restricts q to rows whose column falls inside the options' date range.
func window(q *gorm.DB, column string, opts types.ListOptions) *gorm.DB {
	if opts.From != nil {
		q = q.Where(column+" >= ?", opts.From.UTC())
	}
	switch {
	case opts.To != nil && opts.ToWholeDay:
		q = q.Where(column+" < ?", opts.To.UTC().AddDate(0, 0, 1))
	case opts.To != nil:
		q = q.Where(column+" <= ?", opts.To.UTC())
	}
	return q
}

// page counts the rows matched by q and then loads the requested page into dest.
func page(q *gorm.DB, opts types.ListOptions, order string, dest interface{}) (int64, error) {
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, err
	}
	if err := q.Order(order).Offset(opts.Offset()).Limit(opts.Limit).Find(dest).Error; err != nil {
		return 0, err
	}
	return total, nil
}
