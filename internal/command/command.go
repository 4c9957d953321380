// Package command implements the assistant's command handlers and the
// boundary that translates errors into fixed user-facing replies.
//
// Handlers receive the already-tokenized arguments and the book, and return
// reply lines or an error. No error crosses Dispatch: validation failures,
// lookup misses, and wrong argument counts each map to a fixed message.
package command

import (
	"errors"
	"fmt"
	"time"

	"github.com/smileynet/rolodex/internal/book"
	"github.com/smileynet/rolodex/internal/field"
)

// Replies that form the observable contract of the assistant.
const (
	ReplyContactAdded   = "Contact added."
	ReplyContactUpdated = "Contact updated."
	ReplyBirthdayAdded  = "Birthday added."
	ReplyHello          = "How can I help you?"
	ReplyGoodbye        = "Good bye!"
	ReplyInvalidCommand = "Invalid command."
	ReplyNoBirthday     = "Contact not found or birthday not specified."
	ReplyHelp           = "Available commands: add, change, phone, all, add-birthday, show-birthday, birthdays, hello, close, exit"
)

// Fixed error translations, one per error kind.
const (
	msgValidation = "Give me name and phone please."
	msgNotFound   = "Contact not found."
	msgBadInput   = "Invalid input. Please provide the required information."
)

// ErrBadInput indicates a wrong argument count or otherwise unusable input.
var ErrBadInput = errors.New("command: invalid input")

// defaultWindowDays is the reminder lookahead when none is configured.
const defaultWindowDays = 7

// Handler executes one command against the book and returns reply lines.
type Handler func(args []string, bk *book.Book) ([]string, error)

// Registry maps command names to handlers.
// It is not safe for concurrent use; registration should happen at startup.
type Registry struct {
	handlers map[string]Handler
	window   int
	now      func() time.Time
}

// Option configures a Registry.
type Option func(*Registry)

// WithWindow sets the birthday reminder lookahead in days.
func WithWindow(days int) Option {
	return func(r *Registry) { r.window = days }
}

// WithClock sets the time source used by the birthdays command.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

// NewRegistry creates a Registry with all built-in commands registered.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		handlers: make(map[string]Handler),
		window:   defaultWindowDays,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.Register("add", handleAdd)
	r.Register("change", handleChange)
	r.Register("phone", handlePhone)
	r.Register("all", handleAll)
	r.Register("add-birthday", handleAddBirthday)
	r.Register("show-birthday", handleShowBirthday)
	r.Register("birthdays", r.handleBirthdays)
	r.Register("hello", handleHello)
	r.Register("help", handleHelp)

	return r
}

// Register adds a named handler. Overwrites if name already exists.
// Panics if name is empty or h is nil (programmer error).
func (r *Registry) Register(name string, h Handler) {
	if name == "" {
		panic("command: Register called with empty name")
	}
	if h == nil {
		panic("command: Register called with nil handler")
	}
	r.handlers[name] = h
}

// Dispatch runs the named command and returns its reply lines.
// Unknown commands and handler errors are converted to user-facing text.
func (r *Registry) Dispatch(name string, args []string, bk *book.Book) []string {
	h, ok := r.handlers[name]
	if !ok {
		return []string{ReplyInvalidCommand}
	}
	lines, err := h(args, bk)
	if err != nil {
		return []string{translate(err)}
	}
	return lines
}

// translate maps an error kind to its fixed user-facing message.
func translate(err error) string {
	switch {
	case errors.Is(err, field.ErrValidation):
		return msgValidation
	case errors.Is(err, book.ErrNotFound):
		return msgNotFound
	default:
		return msgBadInput
	}
}

// handleAdd creates a contact with one phone. An existing contact with the
// same name is replaced.
func handleAdd(args []string, bk *book.Book) ([]string, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("%w: add wants a name and a phone", ErrBadInput)
	}
	rec, err := book.NewRecord(args[0])
	if err != nil {
		return nil, err
	}
	if err := rec.AddPhone(args[1]); err != nil {
		return nil, err
	}
	bk.Add(rec)
	return []string{ReplyContactAdded}, nil
}

// handleChange replaces the contact's first stored phone.
func handleChange(args []string, bk *book.Book) ([]string, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("%w: change wants a name and a new phone", ErrBadInput)
	}
	rec, ok := bk.Find(args[0])
	if !ok {
		return nil, fmt.Errorf("%w: %s", book.ErrNotFound, args[0])
	}
	phones := rec.Phones()
	if len(phones) == 0 {
		return nil, fmt.Errorf("%w: %s has no phones to change", ErrBadInput, args[0])
	}
	if err := rec.EditPhone(phones[0].String(), args[1]); err != nil {
		return nil, err
	}
	return []string{ReplyContactUpdated}, nil
}

// handlePhone shows the contact's first stored phone.
func handlePhone(args []string, bk *book.Book) ([]string, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: phone wants a name", ErrBadInput)
	}
	rec, ok := bk.Find(args[0])
	if !ok {
		return nil, fmt.Errorf("%w: %s", book.ErrNotFound, args[0])
	}
	phones := rec.Phones()
	if len(phones) == 0 {
		return nil, fmt.Errorf("%w: %s has no phones", ErrBadInput, args[0])
	}
	return []string{phones[0].String()}, nil
}

// handleAll lists every contact, one line each, in insertion order.
func handleAll(_ []string, bk *book.Book) ([]string, error) {
	var lines []string
	for _, rec := range bk.Records() {
		lines = append(lines, rec.String())
	}
	return lines, nil
}

// handleAddBirthday sets a contact's birthday.
func handleAddBirthday(args []string, bk *book.Book) ([]string, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("%w: add-birthday wants a name and a date", ErrBadInput)
	}
	rec, ok := bk.Find(args[0])
	if !ok {
		return nil, fmt.Errorf("%w: %s", book.ErrNotFound, args[0])
	}
	if err := rec.AddBirthday(args[1]); err != nil {
		return nil, err
	}
	return []string{ReplyBirthdayAdded}, nil
}

// handleShowBirthday shows a contact's stored birthday. A missing contact
// and a missing birthday share one combined reply.
func handleShowBirthday(args []string, bk *book.Book) ([]string, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: show-birthday wants a name", ErrBadInput)
	}
	rec, ok := bk.Find(args[0])
	if !ok {
		return []string{ReplyNoBirthday}, nil
	}
	bd, ok := rec.Birthday()
	if !ok {
		return []string{ReplyNoBirthday}, nil
	}
	return []string{bd.String()}, nil
}

// handleBirthdays reports the upcoming week's birthdays by weekday bucket.
func (r *Registry) handleBirthdays(_ []string, bk *book.Book) ([]string, error) {
	return bk.UpcomingBirthdays(r.now(), r.window).Render(), nil
}

func handleHello(_ []string, _ *book.Book) ([]string, error) {
	return []string{ReplyHello}, nil
}

func handleHelp(_ []string, _ *book.Book) ([]string, error) {
	return []string{ReplyHelp}, nil
}
