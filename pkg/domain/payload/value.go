// Package payload provides total, read-only access to decoded JSON values whose shape
// is only known at runtime. No lookup in this package fails: a missing key, a wrong
// type or a broken intermediate structure all degrade to an absent Value.
package payload

import (
	"encoding/json"
	"math"
	"strconv"
)

// Kind identifies which variant of the JSON-like union a Value holds
type Kind int

const (
	KindAbsent Kind = iota
	KindString
	KindNumber
	KindBool
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "absent"
	}
}

// Value wraps anything produced by encoding/json decoding into `any`. JSON null and
// values of unsupported Go types are reported as KindAbsent.
type Value struct {
	raw any
}

// Of wraps a decoded value
func Of(raw any) Value {
	return Value{raw: raw}
}

// Raw returns the wrapped value as it was given
func (v Value) Raw() any {
	return v.raw
}

// Kind reports the variant held by v
func (v Value) Kind() Kind {
	switch v.raw.(type) {
	case string:
		return KindString
	case bool:
		return KindBool
	case map[string]any:
		return KindObject
	case []any:
		return KindArray
	}
	if _, ok := number(v.raw); ok {
		return KindNumber
	}
	return KindAbsent
}

// Exists is true for every variant except KindAbsent
func (v Value) Exists() bool {
	return v.Kind() != KindAbsent
}

// Field looks up key when v is an object
func (v Value) Field(key string) Value {
	m, ok := v.raw.(map[string]any)
	if !ok {
		return Value{}
	}
	return Value{raw: m[key]}
}

// Path follows keys through nested objects
func (v Value) Path(keys ...string) Value {
	cur := v
	for _, key := range keys {
		cur = cur.Field(key)
		if !cur.Exists() {
			return Value{}
		}
	}
	return cur
}

// Index returns the i-th element when v is an array
func (v Value) Index(i int) Value {
	arr, ok := v.raw.([]any)
	if !ok || i < 0 || i >= len(arr) {
		return Value{}
	}
	return Value{raw: arr[i]}
}

// Len is the number of elements of an array or entries of an object, 0 otherwise
func (v Value) Len() int {
	switch x := v.raw.(type) {
	case []any:
		return len(x)
	case map[string]any:
		return len(x)
	}
	return 0
}

// AsString returns the string held by v
func (v Value) AsString() (string, bool) {
	s, ok := v.raw.(string)
	return s, ok
}

// AsBool returns the bool held by v
func (v Value) AsBool() (bool, bool) {
	b, ok := v.raw.(bool)
	return b, ok
}

// AsInt returns the integer form of a number, truncating toward zero
func (v Value) AsInt() (int, bool) {
	f, ok := number(v.raw)
	if !ok {
		return 0, false
	}
	if f >= math.MaxInt || f < math.MinInt {
		return 0, false
	}
	return int(f), true
}

// StringPtr is AsString for optional record fields
func (v Value) StringPtr() *string {
	s, ok := v.AsString()
	if !ok {
		return nil
	}
	return &s
}

// IntOr returns the integer form of v or def
func (v Value) IntOr(def int) int {
	n, ok := v.AsInt()
	if !ok {
		return def
	}
	return n
}

// GetString returns container[key] only if container is an object and the value is a string
func GetString(container any, key string) *string {
	return Of(container).Field(key).StringPtr()
}

// GetInt returns the integer form of container[key], or 0 when it is missing or not a number
func GetInt(container any, key string) int {
	return Of(container).Field(key).IntOr(0)
}

func number(raw any) (float64, bool) {
	switch n := raw.(type) {
	case float64:
		return finite(n)
	case float32:
		return finite(float64(n))
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return float64(i), true
		}
		f, err := strconv.ParseFloat(n.String(), 64)
		if err != nil {
			return 0, false
		}
		return finite(f)
	}
	return 0, false
}

func finite(f float64) (float64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
