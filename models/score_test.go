package models

import "testing"

func TestClampScore(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"above upper bound", 11.2, 10},
		{"below lower bound", -1, 0},
		{"rounds to one decimal", 7.36, 7.4},
		{"rounds down", 7.34, 7.3},
		{"exact value untouched", 8.5, 8.5},
		{"zero", 0, 0},
		{"upper bound", 10, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampScore(tc.in); got != tc.want {
				t.Fatalf("ClampScore(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
