package identity_test

import (
	"testing"

	"github.com/statekeep/statekeep/core/identity"
)

func TestSame(t *testing.T) {
	type point struct{ X, Y int }

	sharedMap := map[string]int{"a": 1}
	sharedSlice := []int{1, 2, 3}
	sharedPtr := &point{X: 1}
	fn := func() {}

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{name: "both nil", a: nil, b: nil, want: true},
		{name: "nil and value", a: nil, b: 1, want: false},
		{name: "equal ints", a: 1, b: 1, want: true},
		{name: "different ints", a: 1, b: 2, want: false},
		{name: "equal strings", a: "x", b: "x", want: true},
		{name: "equal structs", a: point{1, 2}, b: point{1, 2}, want: true},
		{name: "different types", a: 1, b: int64(1), want: false},
		{name: "same map", a: sharedMap, b: sharedMap, want: true},
		{name: "equal but distinct maps", a: map[string]int{"a": 1}, b: map[string]int{"a": 1}, want: false},
		{name: "same slice", a: sharedSlice, b: sharedSlice, want: true},
		{name: "same backing different window", a: sharedSlice, b: sharedSlice[:2], want: false},
		{name: "equal but distinct slices", a: []int{1}, b: []int{1}, want: false},
		{name: "same pointer", a: sharedPtr, b: sharedPtr, want: true},
		{name: "equal but distinct pointers", a: &point{X: 1}, b: &point{X: 1}, want: false},
		{name: "same func", a: fn, b: fn, want: true},
		{name: "nil maps", a: map[string]int(nil), b: map[string]int(nil), want: true},
		{name: "nil and non-nil slice", a: []int(nil), b: []int{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := identity.Same(tt.a, tt.b); got != tt.want {
				t.Errorf("Same(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
