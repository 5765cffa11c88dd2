package math

import "math"

// AddUint64 returns a + b and whether the sum fits in a uint64
func AddUint64(a, b uint64) (sum uint64, ok bool) {
	if math.MaxUint64-a < b {
		return 0, false
	}
	return a + b, true
}

// MulUint64 returns a * b and whether the product fits in a uint64
func MulUint64(a, b uint64) (product uint64, ok bool) {
	if b > 0 && a > math.MaxUint64/b {
		return 0, false
	}
	return a * b, true
}

// MulAddUint64 returns acc + a*b and whether every intermediate result fits
// in a uint64
func MulAddUint64(acc, a, b uint64) (result uint64, ok bool) {
	product, ok := MulUint64(a, b)
	if !ok {
		return 0, false
	}
	return AddUint64(acc, product)
}
