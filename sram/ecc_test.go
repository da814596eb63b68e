package sram_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sarchlab/sramgen/sram"
)

func TestCheckBits(t *testing.T) {
	tests := []struct {
		width     int
		checkBits int
	}{
		{4, 3},
		{8, 4},
		{16, 5},
		{32, 6},
		{64, 7},
		{128, 8},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.checkBits, sram.CheckBits(tt.width),
			"width %d", tt.width)
	}
}

func TestCheckBitsSatisfyHammingBound(t *testing.T) {
	for width := 1; width <= 256; width++ {
		p := sram.CheckBits(width)

		assert.GreaterOrEqual(t, 1<<p, width+p+1, "width %d", width)
		if p > 1 {
			assert.Less(t, 1<<(p-1), width+(p-1)+1, "width %d", width)
		}
	}
}
