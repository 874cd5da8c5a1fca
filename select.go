package qbuilder

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/maxshaw/qbuilder/qb"
	"github.com/samber/lo"
	"github.com/spf13/cast"
)

func (b *Builder) Where(field, op string, value any) *Builder {
	return b.where(qb.And, field, op, value)
}

// WhereEquals is Where with the "=" operator.
func (b *Builder) WhereEquals(field string, value any) *Builder {
	return b.add(qb.Eq(field, value))
}

func (b *Builder) OrWhere(field, op string, value any) *Builder {
	return b.where(qb.Or, field, op, value)
}

// OrWhereEquals is OrWhere with the "=" operator.
func (b *Builder) OrWhereEquals(field string, value any) *Builder {
	c := qb.Eq(field, value)
	c.Conjunction = qb.Or
	return b.add(c)
}

func (b *Builder) where(conj qb.Conjunction, field, op string, value any) *Builder {
	return b.add(qb.Condition{
		Field:       field,
		Operator:    op,
		Value:       value,
		Conjunction: conj,
	})
}

func (b *Builder) add(c qb.Condition) *Builder {
	b.wheres = append(b.wheres, c)
	return b
}

// OrderBy appends a term without a direction.
func (b *Builder) OrderBy(col string) *Builder {
	b.orders = append(b.orders, qb.Order{Column: col})
	return b
}

// OrderByDir appends a term sorted by dir, which must be ASC or DESC in any
// letter case.
func (b *Builder) OrderByDir(col, dir string) *Builder {
	d, err := qb.ParseDirection(dir)
	if err != nil {
		return b.fail("order", fmt.Sprintf("unsupported direction %q", dir), ErrInvalidOrderDirection)
	}

	b.orders = append(b.orders, qb.Order{Column: col, Direction: d})
	return b
}

// Limit caps the number of rows. n may be any integer, float or numeric
// string; fractional values are truncated toward zero.
func (b *Builder) Limit(n any) *Builder {
	limit, ok := toLimit(n)
	if !ok {
		return b.fail("limit", fmt.Sprintf("a non-negative numeric value was expected, got %v", n), ErrInvalidLimit)
	}

	b.limit = lo.ToPtr(limit)
	return b
}

func toLimit(n any) (uint64, bool) {
	rv := reflect.ValueOf(n)

	switch rv.Kind() {
	case reflect.Invalid, reflect.Bool:
		return 0, false

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if i := rv.Int(); i >= 0 {
			return uint64(i), true
		}
		return 0, false

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint(), true

	case reflect.String:
		s := rv.String()
		if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return u, true
		}
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return uint64(i), i >= 0
		}
		return truncLimit(s)

	case reflect.Float32, reflect.Float64:
		return truncLimit(rv.Float())
	}

	return truncLimit(n)
}

func truncLimit(n any) (uint64, bool) {
	f, err := cast.ToFloat64E(n)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	f = math.Trunc(f)
	if f < 0 || f >= math.MaxUint64 {
		return 0, false
	}
	return uint64(f), true
}

// Get renders the statement. The error is the first configuration error
// recorded on the builder, if any.
func (b *Builder) Get() (string, error) {
	if b.err != nil {
		return "", b.err
	}

	sq := b.String()
	b.logger.Debug().Str("query", sq).Msg("sql")

	return sq, nil
}

// Count switches the projection to count(*) and renders the statement. The
// builder stays in count mode afterwards.
func (b *Builder) Count() (string, error) {
	b.countsRow = true
	return b.Select("count(*)").Get()
}

// First limits the statement to one row and renders it.
func (b *Builder) First() (string, error) {
	return b.Limit(1).Get()
}

// String renders the statement from the current state, ignoring any recorded
// configuration error.
func (b *Builder) String() string {
	var sb strings.Builder

	sb.WriteString("SELECT ")

	if b.countsRow {
		sb.WriteString(strings.Join(b.columns, ", "))
	} else {
		sb.WriteString(qb.QuoteAll(b.columns))
	}

	sb.WriteString(" FROM ")
	sb.WriteString(qb.Quote(b.table))

	sb.WriteString(qb.RenderWhere(b.wheres))
	sb.WriteString(qb.RenderOrder(b.orders))

	if b.limit != nil {
		sb.WriteString(" LIMIT ")
		sb.WriteString(strconv.FormatUint(lo.FromPtr(b.limit), 10))
	}

	return sb.String()
}
