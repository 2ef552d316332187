package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNil(t *testing.T) {
	var (
		nilPtr   *int
		nilMap   map[string]int
		nilSlice []byte
		nilFunc  func()
		nilErr   error
	)
	x := 0

	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"Untyped", nil, true},
		{"Pointer", nilPtr, true},
		{"Map", nilMap, true},
		{"Slice", nilSlice, true},
		{"Func", nilFunc, true},
		{"Interface", nilErr, true},
		{"Zero", 0, false},
		{"EmptyString", "", false},
		{"Struct", struct{}{}, false},
		{"NonNilPointer", &x, false},
		{"EmptySlice", []byte{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNil(tt.v))
		})
	}
}
