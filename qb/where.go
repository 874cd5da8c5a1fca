package qb

import "strings"

// Conjunction joins a condition to the one before it.
type Conjunction string

const (
	And Conjunction = "AND"
	Or  Conjunction = "OR"
)

// Condition is one comparison of a WHERE clause.
type Condition struct {
	Field       string
	Operator    string
	Value       any
	Conjunction Conjunction
}

// Eq returns an AND-joined equality condition.
func Eq(field string, value any) Condition {
	return Condition{Field: field, Operator: "=", Value: value, Conjunction: And}
}

// Render writes the condition without a leading space. The conjunction is
// omitted for the first condition of a clause.
func (c Condition) Render(first bool) string {
	var sb strings.Builder

	if !first {
		sb.WriteString(string(c.Conjunction))
		sb.WriteString(" ")
	}

	sb.WriteString(Quote(c.Field))
	sb.WriteString(" ")
	sb.WriteString(c.Operator)
	sb.WriteString(" ")
	sb.WriteString(Literal(c.Value))

	return sb.String()
}

// RenderWhere returns " WHERE ..." for the given conditions, or "" when there
// are none.
func RenderWhere(conds []Condition) string {
	if len(conds) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(" WHERE")

	for i, c := range conds {
		sb.WriteString(" ")
		sb.WriteString(c.Render(i == 0))
	}

	return sb.String()
}
