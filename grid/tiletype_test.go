package grid

import (
	"errors"
	"testing"
)

func TestTileTypeForSampling(t *testing.T) {
	cases := []struct {
		sampling int
		want     TileType
	}{
		{10, T1},
		{20, T1},
		{25, T3},
		{40, T3},
		{75, T3},
		{80, T6},
		{500, T6},
	}
	for _, c := range cases {
		got, err := TileTypeForSampling(c.sampling)
		if err != nil {
			t.Fatalf("TileTypeForSampling(%d): %v", c.sampling, err)
		}
		if got != c.want {
			t.Fatalf("TileTypeForSampling(%d) = %s, want %s", c.sampling, got, c.want)
		}
	}
}

func TestTileTypeForSamplingRejects(t *testing.T) {
	for _, sampling := range []int{0, -10, 7, 13, 24, 26, 77, 600001} {
		_, err := TileTypeForSampling(sampling)
		if !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("TileTypeForSampling(%d) = %v, want ErrInvalidParameter", sampling, err)
		}
	}
}

func TestTileTypeEdge(t *testing.T) {
	if T1.Edge() != 100000 || T3.Edge() != 300000 || T6.Edge() != 600000 {
		t.Fatal("tile edge lengths wrong")
	}
	if TileType("T2").Valid() {
		t.Fatal("T2 reported valid")
	}
}
