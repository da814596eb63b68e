package sram

// CheckBits returns the number of Hamming check bits needed for
// single-error correction of a data word of the given width: the smallest
// p such that 2^p >= width + p + 1.
func CheckBits(width int) int {
	p := 1
	for (1 << p) < width+p+1 {
		p++
	}

	return p
}
