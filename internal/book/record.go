// Package book implements the in-memory contact book: records aggregating
// a validated name, ordered phones, and an optional birthday, plus the
// weekly birthday reminder computation.
package book

import (
	"errors"
	"fmt"
	"strings"

	"github.com/smileynet/rolodex/internal/field"
)

// ErrNotFound indicates a lookup by contact name missed.
var ErrNotFound = errors.New("book: contact not found")

// noBirthday is rendered when a record has no birthday set.
const noBirthday = "Not specified"

// Record aggregates one contact: an immutable name, an ordered phone list
// (duplicates permitted), and at most one birthday.
type Record struct {
	name     field.Name
	phones   []field.Phone
	birthday *field.Birthday
}

// NewRecord creates a record for the given raw name.
// Phones and a birthday are added afterward by the owning caller.
func NewRecord(rawName string) (*Record, error) {
	n, err := field.NewName(rawName)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the contact's name value.
func (r *Record) Name() string { return r.name.String() }

// AddPhone validates raw and appends it to the phone list.
func (r *Record) AddPhone(raw string) error {
	p, err := field.NewPhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes the first phone equal to raw.
// An absent number is a silent no-op.
func (r *Record) RemovePhone(raw string) {
	for i, p := range r.phones {
		if p.String() == raw {
			r.phones = append(r.phones[:i], r.phones[i+1:]...)
			return
		}
	}
}

// EditPhone validates newRaw and replaces the first phone equal to oldRaw.
// An absent old number leaves the list unchanged without error.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	p, err := field.NewPhone(newRaw)
	if err != nil {
		return err
	}
	for i := range r.phones {
		if r.phones[i].String() == oldRaw {
			r.phones[i] = p
			return nil
		}
	}
	return nil
}

// FindPhone returns the first phone equal to raw and whether one was found.
func (r *Record) FindPhone(raw string) (field.Phone, bool) {
	for _, p := range r.phones {
		if p.String() == raw {
			return p, true
		}
	}
	return field.Phone{}, false
}

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []field.Phone {
	out := make([]field.Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// AddBirthday validates raw and sets it, overwriting any existing birthday.
func (r *Record) AddBirthday(raw string) error {
	b, err := field.NewBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// Birthday returns the birthday and whether one is set.
func (r *Record) Birthday() (field.Birthday, bool) {
	if r.birthday == nil {
		return field.Birthday{}, false
	}
	return *r.birthday, true
}

// String renders the record as a single display line.
func (r *Record) String() string {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = p.String()
	}
	bday := noBirthday
	if r.birthday != nil {
		bday = r.birthday.String()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s, birthday: %s",
		r.name, strings.Join(phones, "; "), bday)
}
