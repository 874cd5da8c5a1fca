package qb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEq(t *testing.T) {
	assert.Equal(t, Condition{Field: "name", Operator: "=", Value: "Jhon Doe", Conjunction: And}, Eq("name", "Jhon Doe"))
	assert.Equal(t, "`name` = 'Jhon Doe'", Eq("name", "Jhon Doe").Render(true))
}

func TestCondition_Render(t *testing.T) {
	c := Condition{Field: "email", Operator: "=", Value: "test@database.com", Conjunction: Or}

	assert.Equal(t, "`email` = 'test@database.com'", c.Render(true))
	assert.Equal(t, "OR `email` = 'test@database.com'", c.Render(false))
}

func TestRenderWhere(t *testing.T) {
	assert.Equal(t, "", RenderWhere(nil))

	conds := []Condition{
		{Field: "name", Operator: "=", Value: "Jhon Doe", Conjunction: Or},
		{Field: "age", Operator: ">", Value: 18, Conjunction: And},
		{Field: "is_active", Operator: "=", Value: true, Conjunction: Or},
	}
	assert.Equal(t, " WHERE `name` = 'Jhon Doe' AND `age` > 18 OR `is_active` = 1", RenderWhere(conds))
}
