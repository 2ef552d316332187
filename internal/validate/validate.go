// Package validate holds argument checks shared by the point tables.
package validate

import "reflect"

// IsNil reports whether v is absent: a nil interface, or a nil pointer, map,
// slice, func, channel or interface value.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
