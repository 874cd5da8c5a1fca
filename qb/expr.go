package qb

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

// Quote wraps an identifier in backticks. The name is used verbatim.
func Quote(name string) string {
	return "`" + name + "`"
}

// QuoteAll joins names so that each one ends up backtick-quoted and comma
// separated. An empty list yields an empty quoted identifier.
func QuoteAll(names []string) string {
	return "`" + strings.Join(names, "`, `") + "`"
}

// Literal renders a where value inline.
//
// Text is single-quoted as is, booleans become 1 or 0, nil becomes NULL and
// everything else is written in its plain textual form. Pointers are rendered
// as the value they point to.
func Literal(v any) string {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "NULL"
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Invalid:
		return "NULL"
	case reflect.Bool:
		if rv.Bool() {
			return "1"
		}
		return "0"
	case reflect.String:
		return "'" + rv.String() + "'"
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return "'" + string(rv.Bytes()) + "'"
		}
	}

	val := rv.Interface()
	if s, err := cast.ToStringE(val); err == nil {
		return s
	}
	return fmt.Sprint(val)
}
