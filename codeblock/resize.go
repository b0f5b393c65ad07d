package codeblock

// DefaultMinHeight is the collapsed height of a block, in host units.
const DefaultMinHeight = 440

// Resize configures the resize handle. MinHeight is the collapsed height.
// MaxHeight is the content height; it is refreshed after every render, and a
// persisted lineNumber seeds it.
type Resize struct {
	MinHeight int
	MaxHeight int
}

// Resizer tracks the visible height of a block.
//
// The height is the max-height applied to the viewport. Expanded means no
// limit: the whole content is shown.
type Resizer struct {
	cfg      Resize
	height   int
	expanded bool

	dragging bool
	lastY    int
}

func NewResizer(cfg Resize) *Resizer {
	if cfg.MinHeight <= 0 {
		cfg.MinHeight = DefaultMinHeight
	}
	r := &Resizer{cfg: cfg, height: cfg.MinHeight}
	if cfg.MaxHeight > cfg.MinHeight {
		r.height = cfg.MaxHeight
	}
	return r
}

func (r *Resizer) MinHeight() int { return r.cfg.MinHeight }

func (r *Resizer) ContentHeight() int { return r.cfg.MaxHeight }

// SetContentHeight records the rendered content height.
func (r *Resizer) SetContentHeight(h int) {
	if h < 0 {
		h = 0
	}
	r.cfg.MaxHeight = h
}

// HandleVisible reports whether the resize handle is shown: only when the
// content is taller than the collapsed height.
func (r *Resizer) HandleVisible() bool {
	return r.cfg.MaxHeight > r.cfg.MinHeight
}

func (r *Resizer) Expanded() bool { return r.expanded }

// Limit returns the viewport max-height, and false when it is unlimited.
func (r *Resizer) Limit() (int, bool) {
	if r.expanded {
		return 0, false
	}
	return r.height, true
}

// Visible returns the height actually shown: the content height capped by
// the limit.
func (r *Resizer) Visible() int {
	limit, ok := r.Limit()
	if !ok || r.cfg.MaxHeight < limit {
		return r.cfg.MaxHeight
	}
	return limit
}

// BeginDrag starts a drag at pointer row y.
func (r *Resizer) BeginDrag(y int) {
	r.dragging = true
	r.lastY = y
}

func (r *Resizer) Dragging() bool { return r.dragging }

// DragTo moves the limit by the pointer delta since the last call. Growing
// stops at the content height and shrinking at MinHeight. It reports whether
// the limit changed.
func (r *Resizer) DragTo(y int) bool {
	if !r.dragging {
		return false
	}
	delta := y - r.lastY
	r.lastY = y
	if delta == 0 {
		return false
	}

	cur := r.Visible()
	next := cur + delta
	if next > r.cfg.MaxHeight {
		next = r.cfg.MaxHeight
	}
	if next < r.cfg.MinHeight {
		next = r.cfg.MinHeight
	}
	if next == cur && !r.expanded {
		return false
	}
	r.expanded = false
	r.height = next
	return true
}

func (r *Resizer) EndDrag() { r.dragging = false }

// Toggle switches between collapsed (MinHeight) and expanded.
func (r *Resizer) Toggle() {
	if r.expanded {
		r.expanded = false
		r.height = r.cfg.MinHeight
		return
	}
	r.expanded = true
}
