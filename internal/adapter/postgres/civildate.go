package postgres

import (
	"time"

	"github.com/golang-sql/civil"
)

// DateToTime converts a civil.Date to a UTC midnight time.Time for binding
// to DATE columns.
func DateToTime(d civil.Date) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// TimeToDate converts a scanned DATE column value back to a civil.Date.
func TimeToDate(t time.Time) civil.Date {
	return civil.DateOf(t)
}

// TimeToDatePtr converts an optional DATE column value.
func TimeToDatePtr(t *time.Time) *civil.Date {
	if t == nil {
		return nil
	}
	d := civil.DateOf(*t)
	return &d
}

// DateToTimePtr converts an optional civil.Date for binding.
func DateToTimePtr(d *civil.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := DateToTime(*d)
	return &t
}
