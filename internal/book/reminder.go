package book

import (
	"fmt"
	"strings"
	"time"
)

// Bucket is a reporting group for upcoming birthdays: one per weekday,
// with Saturday and Sunday occurrences absorbed into "Next Monday".
type Bucket string

const (
	Monday     Bucket = "Monday"
	Tuesday    Bucket = "Tuesday"
	Wednesday  Bucket = "Wednesday"
	Thursday   Bucket = "Thursday"
	Friday     Bucket = "Friday"
	NextMonday Bucket = "Next Monday"
)

// BucketOrder is the fixed rendering order for reminder buckets.
var BucketOrder = []Bucket{Monday, Tuesday, Wednesday, Thursday, Friday, NextMonday}

// Reminder maps each bucket to the contact names whose birthdays fall in it.
// All six buckets are always present; empty ones are omitted only at render time.
type Reminder map[Bucket][]string

// UpcomingBirthdays reports birthdays falling within windowDays of today.
//
// The stored date is compared literally, year included: a birthday recorded
// with a past year will never be reported again. This matches the historical
// behavior; re-anchoring to the current year is a pending product decision
// (see DESIGN.md).
func (b *Book) UpcomingBirthdays(today time.Time, windowDays int) Reminder {
	rem := make(Reminder, len(BucketOrder))
	for _, bk := range BucketOrder {
		rem[bk] = nil
	}

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	for _, rec := range b.Records() {
		bd, ok := rec.Birthday()
		if !ok {
			continue
		}
		occurrence := bd.Date()
		delta := int(occurrence.Sub(day).Hours() / 24)
		if delta < 0 || delta >= windowDays {
			continue
		}
		bk := bucketFor(occurrence.Weekday())
		rem[bk] = append(rem[bk], rec.Name())
	}
	return rem
}

// bucketFor maps a weekday to its reminder bucket.
func bucketFor(wd time.Weekday) Bucket {
	switch wd {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	default:
		return NextMonday
	}
}

// Render returns one display line per non-empty bucket, in bucket order.
func (r Reminder) Render() []string {
	var lines []string
	for _, bk := range BucketOrder {
		names := r[bk]
		if len(names) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("Next %s: %s", bk, strings.Join(names, ", ")))
	}
	return lines
}
