package gridcanvas

import "errors"

// Errors.
var (
	// ErrSurfaceNotFound is returned when a document has no surface with the
	// requested identifier. Lookups return it wrapped in *SurfaceNotFoundError.
	ErrSurfaceNotFound = errors.New("gridcanvas: surface not found")

	// ErrDuplicateSurface is returned when a surface identifier is already taken.
	ErrDuplicateSurface = errors.New("gridcanvas: duplicate surface id")

	// ErrInvalidCells is returned for a cell count below one.
	ErrInvalidCells = errors.New("gridcanvas: cell count must be positive")

	// ErrInvalidSize is returned for non-positive surface dimensions.
	ErrInvalidSize = errors.New("gridcanvas: surface size must be positive")

	// ErrCellOutOfRange is returned by CellState accessors for indices
	// outside the grid.
	ErrCellOutOfRange = errors.New("gridcanvas: cell out of range")

	// ErrInvalidColor is returned when a colour string cannot be parsed.
	ErrInvalidColor = errors.New("gridcanvas: invalid color")

	// ErrInvalidBorder is returned when a CSS border shorthand cannot be parsed.
	ErrInvalidBorder = errors.New("gridcanvas: invalid border")

	// ErrInvalidLineStyle is returned for unknown line cap or join names.
	ErrInvalidLineStyle = errors.New("gridcanvas: invalid line style")
)

// SurfaceNotFoundError reports a failed surface lookup.
type SurfaceNotFoundError struct {
	ID string
}

func (e *SurfaceNotFoundError) Error() string {
	return "gridcanvas: surface not found: " + e.ID
}

// Unwrap lets errors.Is match ErrSurfaceNotFound.
func (e *SurfaceNotFoundError) Unwrap() error {
	return ErrSurfaceNotFound
}
