package qb

import (
	"errors"
	"strings"

	"github.com/samber/lo"
)

var ErrInvalidDirection = errors.New("order direction must be ASC or DESC")

// Direction of an ORDER BY term. The zero value renders nothing.
type Direction string

const (
	NoDirection Direction = ""
	Asc         Direction = "ASC"
	Desc        Direction = "DESC"
)

var directions = []Direction{Asc, Desc}

// ParseDirection upper-cases s and accepts only ASC or DESC.
func ParseDirection(s string) (Direction, error) {
	dir := Direction(strings.ToUpper(s))
	if !lo.Contains(directions, dir) {
		return NoDirection, ErrInvalidDirection
	}
	return dir, nil
}

// Order is one ORDER BY term.
type Order struct {
	Column    string
	Direction Direction
}

func (o Order) Render() string {
	if o.Direction == NoDirection {
		return Quote(o.Column)
	}
	return Quote(o.Column) + " " + string(o.Direction)
}

// RenderOrder returns " ORDER BY ..." for the given terms, or "" when there
// are none.
func RenderOrder(orders []Order) string {
	if len(orders) == 0 {
		return ""
	}

	terms := lo.Map(orders, func(o Order, _ int) string { return o.Render() })
	return " ORDER BY " + strings.Join(terms, ", ")
}
