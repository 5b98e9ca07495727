package mmfile

import (
	"errors"
	"math"
	"testing"
)

func TestCheckSize(t *testing.T) {
	tests := []struct {
		name   string
		size   int64
		intMax int64
		ok     bool
	}{
		{"small", 64, math.MaxInt64, true},
		{"at document cap", MaxSize, math.MaxInt64, true},
		{"above document cap", MaxSize + 1, math.MaxInt64, false},
		{"fits 32-bit int", math.MaxInt32, math.MaxInt32, true},
		{"above 32-bit int", math.MaxInt32 + 1, math.MaxInt32, false},
		{"3 GiB on 32-bit", 3 << 30, math.MaxInt32, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkSize(tt.size, tt.intMax)
			if tt.ok {
				if err != nil {
					t.Fatalf("checkSize(%d, %d) = %v, want nil", tt.size, tt.intMax, err)
				}
				return
			}
			if !errors.Is(err, ErrTooLarge) {
				t.Fatalf("checkSize(%d, %d) = %v, want ErrTooLarge", tt.size, tt.intMax, err)
			}
		})
	}
	if err := checkSize(MaxSize, maxInt); maxInt >= MaxSize && err != nil {
		t.Fatalf("platform check rejected MaxSize: %v", err)
	}
}
