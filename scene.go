package trifill

// Stats counts the triangles emitted for each layer of a frame.
type Stats struct {
	Backdrop int
	Decor    int
	Wide     int
	Narrow   int
}

// Total returns the number of triangles in the frame.
func (s Stats) Total() int {
	return s.Backdrop + s.Decor + s.Wide + s.Narrow
}

// Scene composes the layers of a frame over a fixed occupancy mask.
type Scene struct {
	cfg  Config
	mask *Mask
	art  *Artwork

	backdrop *Lattice
	wide     *Lattice
	narrow   *Lattice
}

// NewScene builds the mask of art and prepares the lattice passes.
func NewScene(cfg Config, art *Artwork) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m, err := art.Mask()
	if err != nil {
		return nil, err
	}
	s := newScene(cfg, m)
	s.art = art
	return s, nil
}

// NewSceneFromMask prepares a scene over an existing mask. The scene has no
// decorative triangles.
func NewSceneFromMask(cfg Config, m *Mask) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if m == nil || m.Width() <= 0 || m.Height() <= 0 {
		return nil, ErrInvalidCanvas
	}
	return newScene(cfg, m), nil
}

func newScene(cfg Config, m *Mask) *Scene {
	return &Scene{
		cfg:      cfg,
		mask:     m,
		backdrop: cfg.lattice(cfg.Backdrop, Background),
		wide:     cfg.lattice(cfg.Wide, Wide),
		narrow:   cfg.lattice(cfg.Narrow, Narrow),
	}
}

// Config returns the scene options.
func (s *Scene) Config() Config { return s.cfg }

// Mask returns the occupancy mask.
func (s *Scene) Mask() *Mask { return s.mask }

// Width returns the canvas width.
func (s *Scene) Width() int { return s.mask.Width() }

// Height returns the canvas height.
func (s *Scene) Height() int { return s.mask.Height() }

// Draw renders one frame at the given rotation angle: clear, backdrop
// lattice, decorative triangles, wide pass and narrow pass.
func (s *Scene) Draw(c Canvas, angle float64) Stats {
	var st Stats

	c.Clear(s.cfg.Background)

	c.SetFill(s.cfg.BackdropFill)
	st.Backdrop = s.pass(s.backdrop, angle, c)

	c.SetFill(s.cfg.Fill)
	if s.art != nil {
		st.Decor = s.art.DrawDecor(angle, c)
	}
	st.Wide = s.pass(s.wide, angle, c)
	st.Narrow = s.pass(s.narrow, angle, c)

	logger().Debug("frame drawn",
		"angle", angle,
		"backdrop", st.Backdrop, "decor", st.Decor,
		"wide", st.Wide, "narrow", st.Narrow)
	return st
}

func (s *Scene) pass(l *Lattice, angle float64, e Emitter) int {
	w, h := s.Width(), s.Height()
	if s.cfg.Workers == 1 {
		return l.Walk(s.mask, w, h, angle, e)
	}
	tris := l.Triangles(s.mask, w, h, angle, s.cfg.Workers)
	for _, t := range tris {
		e.Triangle(t)
	}
	return len(tris)
}
