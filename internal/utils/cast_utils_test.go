// Package utils
package utils

import "testing"

func ExampleStrToInt() {
	StrToInt("1234", 0)
}

func TestStrToInt(t *testing.T) {
	tests := []struct {
		input        string
		defaultValue int
		expected     int
	}{
		{"1", 0, 1},
		{"4654132", 1, 4654132},
		{" 3 ", 0, 3},
		{"-2", 0, -2},
		{"ABCD", 0, 0},
		{"ABCD", 100, 100},
		{"", 9, 9},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		result := StrToInt(test.input, test.defaultValue)
		if result != test.expected {
			fail++
			t.Errorf("StrToInt(%q, %v) = %v; expected %v", test.input, test.defaultValue, result, test.expected)
			continue
		}
		pass++
	}
	t.Logf("TestStrToInt: %d pass, %d fail", pass, fail)
}
