package search

import "testing"

func TestParseVolume(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"$1.2m", 1_200_000},
		{"$500k", 500_000},
		{"$2b", 2_000_000_000},
		{"$2B", 2_000_000_000},
		{"340K", 340_000},
		{"$1,250,000", 1_250_000},
		{"95000", 95_000},
		{"  $95k  ", 95_000},
		{"", 0},
		{"$", 0},
		{"n/a", 0},
		{"$--k", 0},
	}

	for _, c := range cases {
		got := ParseVolume(c.in)
		if got != c.want {
			t.Errorf("ParseVolume(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
