package zone

import (
	"testing"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return r
}

func TestRegistryLoadsAllZones(t *testing.T) {
	r := newTestRegistry(t)
	zones := r.All()
	if len(zones) != 7 {
		t.Fatalf("got %d zones, want 7", len(zones))
	}
	for i, z := range zones {
		if z.ID != Order[i] {
			t.Fatalf("zone %d is %s, want %s", i, z.ID, Order[i])
		}
		if len(z.Coverage) == 0 {
			t.Fatalf("zone %s has no coverage geometry", z.ID)
		}
		if len(z.Land) == 0 {
			t.Fatalf("zone %s has no land geometry", z.ID)
		}
		if len(z.LandXY) != len(z.Land) {
			t.Fatalf("zone %s: %d projected land rings, want %d", z.ID, len(z.LandXY), len(z.Land))
		}
	}
}

func TestLocate(t *testing.T) {
	r := newTestRegistry(t)
	cases := []struct {
		lon, lat float64
		want     ID
	}{
		{15.1, 45.3, EU},
		{10, 40, EU},
		{5, 50, EU},
		{-90.9, -1.2, SA},
		{-175.2, 66, AS},
		{0, -30, AF},
		{147.3, -42.9, OC},
	}
	for _, c := range cases {
		if got := r.Locate(c.lon, c.lat); got.ID != c.want {
			t.Fatalf("Locate(%g, %g) = %s, want %s", c.lon, c.lat, got.ID, c.want)
		}
	}
}

func TestLocateOpenOcean(t *testing.T) {
	// Points outside every coverage polygon fall back to the nearest
	// projection center.
	cases := []struct {
		lon, lat float64
		want     ID
	}{
		{-40, 25, SA},
		{-150, -50, AN},
	}
	r := newTestRegistry(t)
	for _, c := range cases {
		if got := r.Locate(c.lon, c.lat); got.ID != c.want {
			t.Fatalf("Locate(%g, %g) = %s, want %s", c.lon, c.lat, got.ID, c.want)
		}
	}
}

func TestZoneValid(t *testing.T) {
	for _, id := range Order {
		if !id.Valid() {
			t.Fatalf("%s reported invalid", id)
		}
	}
	if ID("XX").Valid() {
		t.Fatal("XX reported valid")
	}
}

func TestRegistryUnknownZone(t *testing.T) {
	r := newTestRegistry(t)
	if _, err := r.Zone("XX"); err == nil {
		t.Fatal("expected error for unknown zone")
	}
}
