package qbuilder

import (
	"github.com/maxshaw/qbuilder/qb"
	"github.com/rs/zerolog"
)

// Modeler is implemented by types that know the table they live in.
type Modeler interface {
	TableName() string
}

// Builder accumulates the clauses of a single SELECT statement.
//
// Configuration methods mutate the builder and return it for chaining. A
// Builder must not be shared between goroutines.
type Builder struct {
	logger zerolog.Logger

	table   string
	columns []string

	wheres []qb.Condition
	orders []qb.Order

	limit *uint64

	countsRow bool

	err error
}

// Option configures a Builder at construction time.
type Option func(*Builder)

// WithLogger makes the builder log rendered statements and rejected
// configuration calls to l.
func WithLogger(l zerolog.Logger) Option {
	return func(b *Builder) {
		b.logger = l
	}
}

func New(opts ...Option) *Builder {
	b := &Builder{
		logger:  zerolog.Nop(),
		columns: []string{"*"},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Builder) Table(name string) *Builder {
	b.table = name
	return b
}

// From sets the table to m.TableName().
func (b *Builder) From(m Modeler) *Builder {
	return b.Table(m.TableName())
}

// Select replaces the projected columns. Calling it without arguments leaves
// an empty projection.
func (b *Builder) Select(cols ...string) *Builder {
	b.columns = append([]string{}, cols...)
	return b
}

// Err returns the first configuration error recorded on the builder.
func (b *Builder) Err() error {
	return b.err
}

// Wheres returns a copy of the accumulated WHERE conditions.
func (b *Builder) Wheres() []qb.Condition {
	return append([]qb.Condition(nil), b.wheres...)
}

// Orders returns a copy of the accumulated ORDER BY terms.
func (b *Builder) Orders() []qb.Order {
	return append([]qb.Order(nil), b.orders...)
}

func (b *Builder) fail(field, msg string, cause error) *Builder {
	b.logger.Warn().Str("field", field).Err(cause).Msg(msg)

	if b.err == nil {
		b.err = &ValidationError{Field: field, Msg: msg, Underlying: cause}
	}
	return b
}
