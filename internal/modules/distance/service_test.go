package distance

import (
	"context"
	"errors"
	"testing"
)

type fakeRoad struct {
	km  float64
	err error
}

func (f fakeRoad) RoadDistanceKm(_ context.Context, _, _ string) (float64, error) {
	return f.km, f.err
}

func TestResolve_LiveDistance(t *testing.T) {
	svc := NewService(fakeRoad{km: 820})

	got := svc.Resolve(context.Background(), "Varanasi", "Delhi")
	if got.Km != 820 {
		t.Errorf("Km = %v, want 820", got.Km)
	}
	if got.Warning != "" {
		t.Errorf("unexpected warning %q for live distance", got.Warning)
	}
}

func TestResolve_NilSourceUsesTable(t *testing.T) {
	svc := NewService(nil)

	got := svc.Resolve(context.Background(), "Varanasi", "Hyderabad")
	if got.Km != 1200 {
		t.Errorf("Km = %v, want 1200 from static table", got.Km)
	}
	if got.Warning == "" {
		t.Error("estimate must carry a warning")
	}
	if got.Err != "" {
		t.Errorf("no upstream error expected, got %q", got.Err)
	}
}

func TestResolve_ErrorFallsBack(t *testing.T) {
	svc := NewService(fakeRoad{err: errors.New("quota exceeded")})

	got := svc.Resolve(context.Background(), "Varanasi", "Hyderabad")
	if got.Km != 1200 {
		t.Errorf("Km = %v, want table fallback 1200", got.Km)
	}
	if got.Warning == "" {
		t.Error("fallback must carry a warning")
	}
	if got.Err != "quota exceeded" {
		t.Errorf("Err = %q, want original error text", got.Err)
	}
}

func TestResolve_NonPositiveFallsBack(t *testing.T) {
	svc := NewService(fakeRoad{km: 0})

	got := svc.Resolve(context.Background(), "Nowhere", "Elsewhere")
	if got.Km != DefaultKm {
		t.Errorf("Km = %v, want DefaultKm for unknown pair", got.Km)
	}
	if got.Warning == "" {
		t.Error("fallback must carry a warning")
	}
}

func TestFallbackKm(t *testing.T) {
	tests := []struct {
		name        string
		pickup      string
		destination string
		want        float64
	}{
		{"known pair", "delhi", "mumbai", 1400},
		{"reversed lookup", "hyderabad", "varanasi", 1200},
		{"normalizes suffixes", "Varanasi, Uttar Pradesh, India", "Hyderabad Airport", 1200},
		{"mixed case and digits", "DELHI 110001", "Kolkata", 1500},
		{"unknown pair", "agartala", "shillong", DefaultKm},
		{"empty names", "", "", DefaultKm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fallbackKm(tt.pickup, tt.destination); got != tt.want {
				t.Errorf("fallbackKm(%q, %q) = %v, want %v", tt.pickup, tt.destination, got, tt.want)
			}
		})
	}
}

func TestNormalizeCity(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Varanasi, Uttar Pradesh", "varanasi"},
		{"  Delhi  ", "delhi"},
		{"Mumbai-400001", "mumbai"},
		{"123", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeCity(tt.in); got != tt.want {
			t.Errorf("NormalizeCity(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
