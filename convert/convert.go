// Package convert contains functions to convert any-typed values into concrete types.
package convert

import (
	"database/sql"
	"fmt"
	"strconv"
)

// unwrapNull resolves sql.Null* wrappers into their contained value.
// The second return is false if v is no such wrapper.
func unwrapNull(v any) (any, bool) {
	switch v := v.(type) {
	case sql.NullString:
		return v.String, true
	case sql.NullInt16:
		return v.Int16, true
	case sql.NullInt32:
		return v.Int32, true
	case sql.NullInt64:
		return v.Int64, true
	case sql.NullFloat64:
		return v.Float64, true
	case sql.NullBool:
		return v.Bool, true
	case sql.NullTime:
		return v.Time, true
	case *sql.NullString:
		return v.String, true
	case *sql.NullInt16:
		return v.Int16, true
	case *sql.NullInt32:
		return v.Int32, true
	case *sql.NullInt64:
		return v.Int64, true
	case *sql.NullFloat64:
		return v.Float64, true
	case *sql.NullBool:
		return v.Bool, true
	case *sql.NullTime:
		return v.Time, true
	default:
		return nil, false
	}
}

// String converts v into a string. Stringers are honored first.
func String(v any) string {
	if str, ok := v.(fmt.Stringer); ok {
		return str.String()
	}
	if uv, ok := unwrapNull(v); ok {
		return String(uv)
	}
	switch v := v.(type) {
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Int tries to convert v into an int.
func Int(v any) (int, bool) {
	if uv, ok := unwrapNull(v); ok {
		return Int(uv)
	}
	switch v := v.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		return int(v), true
	case float32:
		return int(v), true
	case float64:
		return int(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

// Float tries to convert v into a float64.
func Float(v any) (float64, bool) {
	if uv, ok := unwrapNull(v); ok {
		return Float(uv)
	}
	switch v := v.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Bool converts v into a bool. Values it cannot make sense of are false.
func Bool(v any) bool {
	if uv, ok := unwrapNull(v); ok {
		return Bool(uv)
	}
	switch v := v.(type) {
	case bool:
		return v
	case string:
		switch v {
		case "true", "True", "t", "T", "1", "on", "On", "yes", "Yes":
			return true
		default:
			return false
		}
	default:
		if n, ok := Int(v); ok {
			return n != 0
		}
		return false
	}
}
