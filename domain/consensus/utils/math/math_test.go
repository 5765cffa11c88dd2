package math

import (
	"math"
	"testing"
)

func TestAddUint64(t *testing.T) {
	tests := []struct {
		a, b        uint64
		expectedSum uint64
		expectedOK  bool
	}{
		{0, 0, 0, true},
		{1, 2, 3, true},
		{math.MaxUint64, 0, math.MaxUint64, true},
		{math.MaxUint64 - 1, 1, math.MaxUint64, true},
		{math.MaxUint64, 1, 0, false},
		{math.MaxUint64 / 2, math.MaxUint64/2 + 2, 0, false},
	}

	for _, test := range tests {
		sum, ok := AddUint64(test.a, test.b)
		if sum != test.expectedSum || ok != test.expectedOK {
			t.Errorf("TestAddUint64: %d+%d: expected (%d, %t) but got (%d, %t)",
				test.a, test.b, test.expectedSum, test.expectedOK, sum, ok)
		}
		reverseSum, reverseOK := AddUint64(test.b, test.a)
		if reverseSum != sum || reverseOK != ok {
			t.Errorf("TestAddUint64: %d+%d: expected the reverse order to give the same result", test.a, test.b)
		}
	}
}

func TestMulUint64(t *testing.T) {
	tests := []struct {
		a, b            uint64
		expectedProduct uint64
		expectedOK      bool
	}{
		{0, 0, 0, true},
		{0, math.MaxUint64, 0, true},
		{3, 4, 12, true},
		{math.MaxUint64, 1, math.MaxUint64, true},
		{math.MaxUint32 + 1, math.MaxUint32, (math.MaxUint32 + 1) * math.MaxUint32, true},
		{math.MaxUint32 + 1, math.MaxUint32 + 1, 0, false},
		{math.MaxUint64, 2, 0, false},
	}

	for _, test := range tests {
		product, ok := MulUint64(test.a, test.b)
		if product != test.expectedProduct || ok != test.expectedOK {
			t.Errorf("TestMulUint64: %d*%d: expected (%d, %t) but got (%d, %t)",
				test.a, test.b, test.expectedProduct, test.expectedOK, product, ok)
		}
		reverseProduct, reverseOK := MulUint64(test.b, test.a)
		if reverseProduct != product || reverseOK != ok {
			t.Errorf("TestMulUint64: %d*%d: expected the reverse order to give the same result", test.a, test.b)
		}
	}
}

func TestMulAddUint64(t *testing.T) {
	tests := []struct {
		acc, a, b      uint64
		expectedResult uint64
		expectedOK     bool
	}{
		{1000, 50, 12000, 601000, true},
		{0, 0, math.MaxUint64, 0, true},
		{1, math.MaxUint64, 1, 0, false},
		{0, math.MaxUint64, 2, 0, false},
	}

	for _, test := range tests {
		result, ok := MulAddUint64(test.acc, test.a, test.b)
		if result != test.expectedResult || ok != test.expectedOK {
			t.Errorf("TestMulAddUint64: %d+%d*%d: expected (%d, %t) but got (%d, %t)",
				test.acc, test.a, test.b, test.expectedResult, test.expectedOK, result, ok)
		}
	}
}
