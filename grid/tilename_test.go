package grid

import (
	"errors"
	"strings"
	"testing"

	"github.com/tuw-geo/equi7go/zone"
)

func TestDecodeTilename(t *testing.T) {
	got, err := DecodeTilename("EU500M_E042N006T6")
	if err != nil {
		t.Fatalf("DecodeTilename: %v", err)
	}
	want := Tile{Zone: zone.EU, Sampling: 500, Type: T6, OriginX: 4200000, OriginY: 600000}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	if got.Edge() != 600000 {
		t.Fatalf("got edge %d, want 600000", got.Edge())
	}

	got, err = DecodeTilename("OC010M_E085N091T1")
	if err != nil {
		t.Fatalf("DecodeTilename: %v", err)
	}
	want = Tile{Zone: zone.OC, Sampling: 10, Type: T1, OriginX: 8500000, OriginY: 9100000}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestDecodeTilenameRejects(t *testing.T) {
	cases := []string{
		"",
		"E042N006T6",          // short form has no zone or sampling
		"XX500M_E042N006T6",   // unknown zone
		"EU500M_E042N006T3",   // sampling implies T6
		"EU007M_E042N006T1",   // unsupported sampling
		"EU500M_E043N006T6",   // origin not tile-aligned
		"EU500M_E042N006T9",   // no such tile type
		"EU500ME042N006T6",    // missing separator
		"eu500M_E042N006T6",   // lowercase zone
		"EU500M_E042N006T6 ",  // trailing garbage
	}
	for _, name := range cases {
		_, err := DecodeTilename(name)
		if !errors.Is(err, ErrTileName) {
			t.Fatalf("DecodeTilename(%q) = %v, want ErrTileName", name, err)
		}
		if !strings.HasPrefix(err.Error(), `"tilename" is not properly defined!`) {
			t.Fatalf("DecodeTilename(%q) error %q lacks the canonical prefix", name, err)
		}
	}
}

func TestTileNames(t *testing.T) {
	tile := Tile{Zone: zone.EU, Sampling: 500, Type: T6, OriginX: 4200000, OriginY: 600000}
	if got := tile.Name(); got != "EU500M_E042N006T6" {
		t.Fatalf("Name() = %q", got)
	}
	if got := tile.ShortName(); got != "E042N006T6" {
		t.Fatalf("ShortName() = %q", got)
	}

	tile = Tile{Zone: zone.OC, Sampling: 10, Type: T1, OriginX: 8500000, OriginY: 9100000}
	if got := tile.Name(); got != "OC010M_E085N091T1" {
		t.Fatalf("Name() = %q", got)
	}
}
