// Package utils
package utils

import (
	"math"
	"slices"
	"testing"
	"time"
)

func TestPaginate(t *testing.T) {
	src := []int{1, 2, 3, 4, 5}
	tests := []struct {
		page, pageSize int
		expected       []int
	}{
		{1, 2, []int{1, 2}},
		{2, 2, []int{3, 4}},
		{3, 2, []int{5}},
		{4, 2, []int{}},
		{0, 2, []int{}},
		{1, 0, []int{}},
		{1, 10, []int{1, 2, 3, 4, 5}},
		{-1, 2, []int{}},
		{1 << 62, 4, []int{}},
		{math.MaxInt, math.MaxInt, []int{}},
		{2, math.MaxInt, []int{}},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		result := Paginate(src, test.page, test.pageSize)
		if !slices.Equal(result, test.expected) {
			fail++
			t.Errorf("Paginate(%v, %d, %d) = %v; expected %v", src, test.page, test.pageSize, result, test.expected)
			continue
		}
		pass++
	}
	t.Logf("TestPaginate: %d pass, %d fail", pass, fail)
}

func TestPageOffset(t *testing.T) {
	tests := []struct {
		page, pageSize int
		expected       int
		ok             bool
	}{
		{1, 10, 0, true},
		{3, 10, 20, true},
		{0, 10, 0, false},
		{1, 0, 0, false},
		{-2, 10, 0, false},
		{1 << 62, 4, 0, false},
		{math.MaxInt, 1, math.MaxInt - 1, true},
		{math.MaxInt/2 + 2, 2, 0, false},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		result, ok := PageOffset(test.page, test.pageSize)
		if result != test.expected || ok != test.ok {
			fail++
			t.Errorf("PageOffset(%d, %d) = %d, %v; expected %d, %v", test.page, test.pageSize, result, ok, test.expected, test.ok)
			continue
		}
		pass++
	}
	t.Logf("TestPageOffset: %d pass, %d fail", pass, fail)
}

func TestReverseForEach(t *testing.T) {
	result := make([]int, 0)
	ReverseForEach([]int{1, 2, 3}, func(_ int, value int) { result = append(result, value) })
	if !slices.Equal(result, []int{3, 2, 1}) {
		t.Errorf("ReverseForEach visited %v; expected [3 2 1]", result)
	}
}

func TestCachedValue(t *testing.T) {
	calls := 0
	cached := NewCachedValue(time.Hour, func() *int {
		calls++
		value := calls
		return &value
	})
	if *cached.GetValue() != 1 || *cached.GetValue() != 1 {
		t.Errorf("cached value recomputed before expiry")
	}
	cached.Invalidate()
	if *cached.GetValue() != 2 {
		t.Errorf("Invalidate did not force a recompute")
	}
}
