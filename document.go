package gridcanvas

import (
	"fmt"
	"sort"
	"sync"
)

// Document is the host environment a grid renders into: a set of surfaces
// keyed by element identifier.
//
// Document is safe for concurrent use. The surfaces it holds are not.
type Document struct {
	mu       sync.RWMutex
	surfaces map[string]*Surface
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{
		surfaces: make(map[string]*Surface),
	}
}

// CreateSurface creates a default-sized surface and adds it under id.
func (d *Document) CreateSurface(id string) (*Surface, error) {
	s := NewSurface(id)
	if err := d.AddSurface(s); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

// AddSurface adds s under its identifier. The identifier must be non-empty
// and not already present.
func (d *Document) AddSurface(s *Surface) error {
	if s.ID() == "" {
		return fmt.Errorf("gridcanvas: surface id must not be empty")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.surfaces == nil {
		d.surfaces = make(map[string]*Surface)
	}
	if _, ok := d.surfaces[s.ID()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateSurface, s.ID())
	}
	d.surfaces[s.ID()] = s
	Logger().Debug("surface added", "id", s.ID())
	return nil
}

// GetSurface looks up a surface by identifier. A missing surface yields a
// *SurfaceNotFoundError.
func (d *Document) GetSurface(id string) (*Surface, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	s, ok := d.surfaces[id]
	if !ok {
		return nil, &SurfaceNotFoundError{ID: id}
	}
	return s, nil
}

// RemoveSurface removes and closes the surface with the given identifier.
// Removing an absent identifier is a no-op.
func (d *Document) RemoveSurface(id string) {
	d.mu.Lock()
	s, ok := d.surfaces[id]
	delete(d.surfaces, id)
	d.mu.Unlock()

	if !ok {
		return
	}
	if err := s.Close(); err != nil {
		Logger().Warn("closing surface", "id", id, "error", err)
	}
}

// IDs returns the identifiers of all surfaces, sorted.
func (d *Document) IDs() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	ids := make([]string, 0, len(d.surfaces))
	for id := range d.surfaces {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
