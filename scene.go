package scenic

// Scene accumulates one frame of drawing commands.
//
// Scene is immediate-mode: the application rebuilds it from scratch every
// frame by drawing primitives and bracketing layers, and each call lowers
// directly into the backend using the global transform current at that
// moment. There is no separate compile pass and no retained diffing.
//
// Scene building is single-threaded; a Scene must not be shared across
// goroutines while it is being built.
type Scene struct {
	background RGBA
	width      int
	height     int
	global     Affine
	backend    Backend
	layerDepth int
}

// NewScene creates a scene for a canvas of the given size.
//
// By default the global transform centers the logical origin at the canvas
// midpoint and commands are recorded into a fresh Recorder; both can be
// overridden with options.
func NewScene(background RGBA, width, height int, opts ...SceneOption) *Scene {
	options := defaultSceneOptions(width, height)
	for _, opt := range opts {
		opt(&options)
	}

	backend := options.backend
	if backend == nil {
		backend = NewRecorder()
	}

	return &Scene{
		background: background,
		width:      width,
		height:     height,
		global:     options.global,
		backend:    backend,
	}
}

// Background returns the scene's background color.
func (s *Scene) Background() RGBA {
	return s.background
}

// Width returns the canvas width.
func (s *Scene) Width() int { return s.width }

// Height returns the canvas height.
func (s *Scene) Height() int { return s.height }

// Backend returns the backend the scene lowers into.
func (s *Scene) Backend() Backend {
	return s.backend
}

// Transform returns the global transform applied on top of every drawable's
// local transform.
func (s *Scene) Transform() Affine {
	return s.global
}

// SetTransform replaces the global transform for subsequent draws.
func (s *Scene) SetTransform(t Affine) {
	s.global = t
}

// Draw lowers a drawable into the scene under the current global transform.
func (s *Scene) Draw(d Drawable) {
	d.Draw(s)
}

// StartLayer pushes a compositing layer. Content drawn until the matching
// EndLayer is clipped to clip (whose transform is composed with the global
// transform, same as ordinary geometry) and composited with the given mix
// and composite modes at the given alpha.
//
// layerTransform is accepted for interface compatibility but unsupported:
// a non-nil value panics rather than being silently dropped, since dropping
// it would produce visually wrong output.
func (s *Scene) StartLayer(mix MixMode, composite CompositeMode, clip Shape, clipTransform Affine, layerTransform *Affine, alpha float64) {
	if layerTransform != nil {
		panic("scenic: per-layer transforms are not supported")
	}

	s.backend.PushLayer(mix, composite, alpha, s.global.Mul(clipTransform), clip)
	s.layerDepth++
}

// EndLayer pops the most recently pushed layer.
//
// EndLayer panics if no layer is open: an unbalanced pop is always a bug in
// the caller's push/pop pairing, and absorbing it would mask the bug.
func (s *Scene) EndLayer() {
	if s.layerDepth == 0 {
		panic("scenic: EndLayer without matching StartLayer")
	}
	s.backend.PopLayer()
	s.layerDepth--
}

// LayerDepth returns the number of currently open layers.
func (s *Scene) LayerDepth() int {
	return s.layerDepth
}

// DrawAlphaMask draws content through an alpha mask, both clipped to clip.
//
// It is built from exactly two nested layers: a (Normal, SourceOver) layer
// holding the content, and inside it a (Multiply, SourceIn) layer holding
// the mask. The SourceIn composite keeps mask pixels only where the content
// layer already has coverage, so the mask's alpha modulates the content's
// visibility: an opaque mask shows the content unmodified, a transparent
// mask suppresses it entirely.
func (s *Scene) DrawAlphaMask(content, mask func(*Scene), clip Shape, clipTransform Affine) {
	s.StartLayer(MixNormal, CompositeSourceOver, clip, clipTransform, nil, 1)
	content(s)

	s.StartLayer(MixMultiply, CompositeSourceIn, clip, clipTransform, nil, 1)
	mask(s)

	s.EndLayer()
	s.EndLayer()
}

// Finish checks that the scene is well formed at the end of the frame.
// It returns ErrUnbalancedLayers if any layer bracket is still open.
func (s *Scene) Finish() error {
	if s.layerDepth != 0 {
		Logger().Debug("scene finished with open layers", "depth", s.layerDepth)
		return ErrUnbalancedLayers
	}
	return nil
}
