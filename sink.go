package capheight

import (
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/gogpu/capheight/raster"
)

// Sink receives the rasterized surface of a successful measurement for
// visual inspection. Display must not retain the surface's pixel
// buffer past the call; copy it (for example via Surface.ToImage) if
// needed longer.
type Sink interface {
	Display(*raster.Surface)
}

// SetSink registers a display sink, replacing any previous one. Pass
// nil to disable display. The sink is stored atomically: the last
// writer wins. A SetSink racing an in-flight Calculate may or may not
// affect that call; sequencing is the caller's responsibility.
func (m *Measurer) SetSink(s Sink) {
	m.sink.store(s)
}

// display hands the surface to the registered sink, if any. A missing
// sink is a silent skip, never an error.
func (m *Measurer) display(s *raster.Surface) {
	if sink := m.sink.load(); sink != nil {
		sink.Display(s)
	}
}

// sinkHolder stores a Sink interface value atomically.
type sinkHolder struct {
	p atomic.Pointer[sinkBox]
}

type sinkBox struct {
	sink Sink
}

func (h *sinkHolder) store(s Sink) {
	if s == nil {
		h.p.Store(nil)
		return
	}
	h.p.Store(&sinkBox{sink: s})
}

func (h *sinkHolder) load() Sink {
	if b := h.p.Load(); b != nil {
		return b.sink
	}
	return nil
}

// DirSink writes every displayed surface as a numbered PNG file into a
// directory. Write failures are logged at warn level and otherwise
// ignored; display is a side effect, never part of the measurement.
type DirSink struct {
	dir string
	n   atomic.Int64
}

// NewDirSink creates a sink writing into dir. The directory must
// already exist.
func NewDirSink(dir string) *DirSink {
	return &DirSink{dir: dir}
}

// Display implements Sink.
func (d *DirSink) Display(s *raster.Surface) {
	n := d.n.Add(1)
	path := filepath.Join(d.dir, fmt.Sprintf("sample-%03d.png", n))
	if err := s.WritePNG(path); err != nil {
		Logger().Warn("display sink write failed", "path", path, "error", err)
	}
}
