// Package field provides validated, immutable contact field values.
//
// Each field type wraps a raw string that has passed its format check.
// Construction is the only way to obtain a value, so an instance in hand
// is always valid. String() returns the stored value unchanged.
package field

import (
	"errors"
	"fmt"
	"regexp"
	"time"
	"unicode"
	"unicode/utf8"
)

// ErrValidation indicates a raw value failed field validation.
// Constructor errors wrap it so callers can classify with errors.Is.
var ErrValidation = errors.New("field: invalid value")

// BirthdayLayout is the accepted birthday date layout (DD.MM.YYYY).
const BirthdayLayout = "02.01.2006"

// birthdayShape enforces two-digit day, two-digit month, four-digit year.
// time.Parse alone is lenient about leading zeros, so the shape is checked first.
var birthdayShape = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)

// Name is a contact name: alphabetic letters only, at least two of them.
type Name struct {
	value string
}

// NewName validates raw as a contact name.
func NewName(raw string) (Name, error) {
	if utf8.RuneCountInString(raw) < 2 {
		return Name{}, fmt.Errorf("%w: name must have at least 2 characters", ErrValidation)
	}
	for _, r := range raw {
		if !unicode.IsLetter(r) {
			return Name{}, fmt.Errorf("%w: name must contain only alphabetic characters", ErrValidation)
		}
	}
	return Name{value: raw}, nil
}

// String returns the stored name unchanged.
func (n Name) String() string { return n.value }

// Phone is a phone number of exactly ten decimal digits.
type Phone struct {
	value string
}

// NewPhone validates raw as a phone number.
func NewPhone(raw string) (Phone, error) {
	if len(raw) != 10 {
		return Phone{}, fmt.Errorf("%w: phone number must be a 10-digit number", ErrValidation)
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return Phone{}, fmt.Errorf("%w: phone number must contain only digits", ErrValidation)
		}
	}
	return Phone{value: raw}, nil
}

// String returns the stored number unchanged.
func (p Phone) String() string { return p.value }

// Birthday is a calendar-valid date in DD.MM.YYYY form.
type Birthday struct {
	value string
	date  time.Time
}

// NewBirthday validates raw as a birthday. The value must match the
// DD.MM.YYYY shape exactly and denote a real calendar date.
func NewBirthday(raw string) (Birthday, error) {
	if !birthdayShape.MatchString(raw) {
		return Birthday{}, fmt.Errorf("%w: birthday must be in the format DD.MM.YYYY", ErrValidation)
	}
	d, err := time.Parse(BirthdayLayout, raw)
	if err != nil {
		return Birthday{}, fmt.Errorf("%w: birthday %q is not a valid date", ErrValidation, raw)
	}
	return Birthday{value: raw, date: d}, nil
}

// String returns the stored value unchanged, leading zeros and all.
func (b Birthday) String() string { return b.value }

// Date returns the parsed calendar date (midnight UTC).
func (b Birthday) Date() time.Time { return b.date }
