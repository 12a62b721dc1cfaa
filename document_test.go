package gridcanvas

import (
	"errors"
	"sync"
	"testing"
)

func TestDocumentCreateAndGet(t *testing.T) {
	doc := NewDocument()

	s, err := doc.CreateSurface("game")
	if err != nil {
		t.Fatalf("CreateSurface: %v", err)
	}
	got, err := doc.GetSurface("game")
	if err != nil {
		t.Fatalf("GetSurface: %v", err)
	}
	if got != s {
		t.Error("GetSurface returned a different surface")
	}
	if s.Width() != DefaultSurfaceWidth || s.Height() != DefaultSurfaceHeight {
		t.Errorf("new surface = %dx%d, want %dx%d",
			s.Width(), s.Height(), DefaultSurfaceWidth, DefaultSurfaceHeight)
	}
}

func TestDocumentDuplicate(t *testing.T) {
	doc := NewDocument()
	if _, err := doc.CreateSurface("a"); err != nil {
		t.Fatalf("CreateSurface: %v", err)
	}
	_, err := doc.CreateSurface("a")
	if !errors.Is(err, ErrDuplicateSurface) {
		t.Errorf("err = %v, want ErrDuplicateSurface", err)
	}
}

func TestDocumentEmptyID(t *testing.T) {
	doc := NewDocument()
	if _, err := doc.CreateSurface(""); err == nil {
		t.Error("empty id should be rejected")
	}
}

func TestDocumentNotFound(t *testing.T) {
	doc := NewDocument()
	_, err := doc.GetSurface("missing")

	var nf *SurfaceNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want *SurfaceNotFoundError", err)
	}
	if nf.ID != "missing" {
		t.Errorf("ID = %q, want missing", nf.ID)
	}
	if !errors.Is(err, ErrSurfaceNotFound) {
		t.Error("errors.Is(err, ErrSurfaceNotFound) = false")
	}
	if err.Error() != "gridcanvas: surface not found: missing" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestDocumentRemoveAndIDs(t *testing.T) {
	doc := NewDocument()
	for _, id := range []string{"c", "a", "b"} {
		if _, err := doc.CreateSurface(id); err != nil {
			t.Fatalf("CreateSurface(%q): %v", id, err)
		}
	}

	ids := doc.IDs()
	want := []string{"a", "b", "c"}
	if len(ids) != len(want) {
		t.Fatalf("IDs() = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("IDs()[%d] = %q, want %q", i, ids[i], want[i])
		}
	}

	doc.RemoveSurface("b")
	doc.RemoveSurface("nope")
	if _, err := doc.GetSurface("b"); !errors.Is(err, ErrSurfaceNotFound) {
		t.Errorf("removed surface still found, err = %v", err)
	}
	if len(doc.IDs()) != 2 {
		t.Errorf("len(IDs()) = %d, want 2", len(doc.IDs()))
	}
}

func TestDocumentZeroValue(t *testing.T) {
	var doc Document
	if err := doc.AddSurface(NewSurface("z")); err != nil {
		t.Fatalf("AddSurface on zero Document: %v", err)
	}
	if _, err := doc.GetSurface("z"); err != nil {
		t.Errorf("GetSurface: %v", err)
	}
}

func TestDocumentConcurrentLookup(t *testing.T) {
	doc := NewDocument()
	if _, err := doc.CreateSurface("game"); err != nil {
		t.Fatalf("CreateSurface: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, err := doc.GetSurface("game"); err != nil {
					t.Errorf("GetSurface: %v", err)
					return
				}
				_ = doc.IDs()
			}
		}()
	}
	wg.Wait()
}
