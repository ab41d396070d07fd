// Package identity provides the reference-identity comparison used to decide
// whether a state value "changed": reducers that return their input untouched
// must be observable as no-ops without deep comparison.
package identity

import "reflect"

// Same reports whether a and b are the same value by identity: equal
// comparable values, or reference types (pointers, maps, slices, funcs,
// channels) pointing at the same underlying data. Values of uncomparable,
// non-reference kinds are never considered the same.
func Same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	switch va.Kind() {
	case reflect.Slice:
		if va.IsNil() || vb.IsNil() {
			return va.IsNil() && vb.IsNil()
		}
		// Same backing array and same window.
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		if va.IsNil() || vb.IsNil() {
			return va.IsNil() && vb.IsNil()
		}
		return va.Pointer() == vb.Pointer()
	default:
		if va.Comparable() {
			return va.Equal(vb)
		}
		return false
	}
}
