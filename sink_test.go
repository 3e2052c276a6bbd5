package capheight

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/capheight/raster"
)

// recordingSink counts displayed surfaces.
type recordingSink struct {
	surfaces []*raster.Surface
}

func (s *recordingSink) Display(surface *raster.Surface) {
	s.surfaces = append(s.surfaces, surface)
}

func TestDisplaySink(t *testing.T) {
	sink := &recordingSink{}
	m := New(WithSink(sink))

	if _, err := m.Calculate(FontProperties{}, "H"); err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if len(sink.surfaces) != 1 {
		t.Fatalf("sink received %d surfaces, want 1", len(sink.surfaces))
	}
	if sink.surfaces[0].Width() == 0 {
		t.Error("sink received an empty surface")
	}
}

func TestSinkNotCalledOnFailure(t *testing.T) {
	sink := &recordingSink{}
	m := New(WithSink(sink))

	if _, err := m.Calculate(FontProperties{Size: "0px"}, "H"); err == nil {
		t.Fatal("Calculate succeeded with invalid size")
	}
	if len(sink.surfaces) != 0 {
		t.Errorf("sink received %d surfaces after a failed measurement", len(sink.surfaces))
	}
}

func TestNilSinkSilentSkip(t *testing.T) {
	m := New()
	m.SetSink(nil)
	if _, err := m.Calculate(FontProperties{}, "H"); err != nil {
		t.Errorf("Calculate with nil sink: %v", err)
	}
}

func TestSetSinkReplaces(t *testing.T) {
	first := &recordingSink{}
	second := &recordingSink{}
	m := New(WithSink(first))
	m.SetSink(second)

	if _, err := m.Calculate(FontProperties{}, "H"); err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if len(first.surfaces) != 0 || len(second.surfaces) != 1 {
		t.Errorf("surfaces went to %d/%d, want 0/1", len(first.surfaces), len(second.surfaces))
	}
}

func TestDirSink(t *testing.T) {
	dir := t.TempDir()
	m := New(WithSink(NewDirSink(dir)))

	if _, err := m.Calculate(FontProperties{}, "H"); err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if _, err := m.Calculate(FontProperties{}, "x"); err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("wrote %d files, want 2", len(entries))
	}

	f, err := os.Open(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = f.Close() }()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("written file is not a decodable PNG: %v", err)
	}
}

func TestDirSinkBadDirectoryIsSilent(t *testing.T) {
	sink := NewDirSink(filepath.Join(t.TempDir(), "does", "not", "exist"))
	m := New(WithSink(sink))

	// Display failures must not affect the measurement.
	if _, err := m.Calculate(FontProperties{}, "H"); err != nil {
		t.Errorf("Calculate: %v", err)
	}
}
