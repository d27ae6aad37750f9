// Package store holds the authoritative row sequence of one table view.
//
// Rows are addressed by position. Removing a row shifts every later row down
// by one, so callers must take indexes from the current rendering.
package store

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/Makepad-fr/tablekit/internal/logging"
	"github.com/Makepad-fr/tablekit/internal/model"
	"github.com/Makepad-fr/tablekit/internal/validation"
)

var ErrIndexOutOfRange = errors.New("row index out of range")

// Status is how a Result should be presented.
type Status string

const (
	StatusSuccess Status = "success"
	StatusInfo    Status = "info"
	StatusError   Status = "error"
)

// Result is the notification produced by a mutation. The display layer
// decides how to show it.
type Result struct {
	Status      Status
	Title       string
	Description string
	Errors      map[string]string // field -> message, set on validation failure
}

// OK reports whether the mutation was applied.
func (r Result) OK() bool { return r.Status != StatusError }

var (
	addedResult = Result{
		Status:      StatusSuccess,
		Title:       "Row added.",
		Description: "The new row has been added successfully.",
	}
	removedResult = Result{
		Status:      StatusInfo,
		Title:       "Row removed.",
		Description: "The row has been removed successfully.",
	}
)

func rejectedResult(fields map[string]string) Result {
	return Result{
		Status:      StatusError,
		Title:       "Error",
		Description: "Please fill in all required fields.",
		Errors:      fields,
	}
}

// Store is an ordered in-memory sequence of rows. It is not safe for
// concurrent use; a table view owns it and mutates it from its event loop.
type Store[R model.Row[R]] struct {
	id        string
	rows      []R
	validator *validation.Validator
	log       *slog.Logger
}

type Option func(*options)

type options struct {
	validator *validation.Validator
	logger    *slog.Logger
	shape     string
}

// WithValidator shares a validator between stores.
func WithValidator(v *validation.Validator) Option {
	return func(o *options) { o.validator = v }
}

// WithLogger sets the base logger; the store adds shape and table_id.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithShape names the shape in log entries.
func WithShape(name string) Option {
	return func(o *options) { o.shape = name }
}

// New returns a store seeded with rows. Seed rows are normalized like any
// other write.
func New[R model.Row[R]](seed []R, opts ...Option) *Store[R] {
	o := options{}
	for _, fn := range opts {
		fn(&o)
	}
	if o.validator == nil {
		o.validator = validation.NewValidator()
	}
	if o.logger == nil {
		o.logger = logging.Discard()
	}

	id := uuid.NewString()
	rows := make([]R, 0, len(seed))
	for _, r := range seed {
		rows = append(rows, r.Normalize())
	}
	s := &Store[R]{
		id:        id,
		rows:      rows,
		validator: o.validator,
		log:       logging.ForTable(o.logger, o.shape, id),
	}
	s.log.Debug("table opened", "rows", len(rows))
	return s
}

// ID identifies this table instance in logs. It is not a row identifier.
func (s *Store[R]) ID() string { return s.id }

func (s *Store[R]) Len() int { return len(s.rows) }

// Rows returns a copy of the sequence.
func (s *Store[R]) Rows() []R { return slices.Clone(s.rows) }

func (s *Store[R]) At(index int) (R, error) {
	if err := s.checkIndex(index); err != nil {
		var zero R
		return zero, err
	}
	return s.rows[index], nil
}

// Add validates candidate and, when it has no field errors, appends its
// normalized form. A rejected candidate leaves the sequence untouched and
// returns a *validation.ValidationError.
func (s *Store[R]) Add(candidate R) (Result, error) {
	if fields := s.validator.Validate(candidate); len(fields) > 0 {
		s.log.Info("row rejected", "fields", fields)
		return rejectedResult(fields), &validation.ValidationError{Fields: fields}
	}
	s.rows = append(s.rows, candidate.Normalize())
	s.log.Debug("row added", "index", len(s.rows)-1, "rows", len(s.rows))
	return addedResult, nil
}

// Remove deletes the row at index.
func (s *Store[R]) Remove(index int) (Result, error) {
	if err := s.checkIndex(index); err != nil {
		return Result{}, err
	}
	s.rows = slices.Delete(s.rows, index, index+1)
	s.log.Debug("row removed", "index", index, "rows", len(s.rows))
	return removedResult, nil
}

// Update replaces the row at index with fn applied to it. The replacement is
// normalized and not re-validated.
func (s *Store[R]) Update(index int, fn func(R) R) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	s.rows[index] = fn(s.rows[index]).Normalize()
	s.log.Debug("row updated", "index", index)
	return nil
}

func (s *Store[R]) checkIndex(index int) error {
	if index < 0 || index >= len(s.rows) {
		return fmt.Errorf("%w: have %d, got %d", ErrIndexOutOfRange, len(s.rows), index)
	}
	return nil
}

// SetNameChecked sets the checked half of the name at index, leaving the
// label and every other field alone.
func SetNameChecked(s *Store[model.CheckRow], index int, checked bool) error {
	return s.Update(index, func(r model.CheckRow) model.CheckRow {
		r.Name.Checked = checked
		return r
	})
}
