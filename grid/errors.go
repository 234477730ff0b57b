package grid

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter marks calls rejected up front: unsupported sampling,
// misaligned tile origins, out-of-range coordinates, or conflicting search
// targets.
var ErrInvalidParameter = errors.New("invalid parameter")

// ErrTileName marks strings that do not parse as tilenames, or tilenames
// whose embedded sampling disagrees with the decoding tile system.
var ErrTileName = errors.New("invalid tilename")

func tileNameError(detail string) error {
	return fmt.Errorf(`"tilename" is not properly defined! %s: %w`, detail, ErrTileName)
}

func paramError(format string, args ...any) error {
	args = append(args, ErrInvalidParameter)
	return fmt.Errorf(format+": %w", args...)
}
