package domain

import "testing"

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		power float64
		want  GensetStatus
	}{
		{0, StatusOffline},
		{0.001, StatusWarning},
		{5, StatusWarning},
		{9.999, StatusWarning},
		{10, StatusOnline},
		{15, StatusOnline},
		{250, StatusOnline},
	}

	for _, tc := range cases {
		if got := DeriveStatus(tc.power); got != tc.want {
			t.Errorf("DeriveStatus(%v) = %s, want %s", tc.power, got, tc.want)
		}
	}
}

func TestReadingStatus(t *testing.T) {
	r := Reading{StationCode: "GS-01", Power: 12.5}
	if r.Status() != StatusOnline {
		t.Fatalf("expected Online, got %s", r.Status())
	}
}
