package scenic

// Tag identifies one command in an Encoding's command stream.
type Tag uint8

// Command tags, one byte per command.
const (
	TagFill Tag = iota
	TagStroke
	TagPushLayer
	TagPopLayer
	TagGlyphRun
)

// String returns a human-readable name for the tag.
func (t Tag) String() string {
	switch t {
	case TagFill:
		return "Fill"
	case TagStroke:
		return "Stroke"
	case TagPushLayer:
		return "PushLayer"
	case TagPopLayer:
		return "PopLayer"
	case TagGlyphRun:
		return "GlyphRun"
	default:
		return unknownStr
	}
}

// fillOp holds the parameters of one recorded fill.
type fillOp struct {
	rule           FillRule
	transform      Affine
	brush          Brush
	brushTransform Affine
	hasBrushTrans  bool
	shape          Shape
}

// strokeOp holds the parameters of one recorded stroke.
type strokeOp struct {
	style          StrokeStyle
	transform      Affine
	brush          Brush
	brushTransform Affine
	hasBrushTrans  bool
	shape          Shape
}

// layerOp holds the parameters of one recorded layer bracket open.
type layerOp struct {
	mix           MixMode
	composite     CompositeMode
	alpha         float64
	clipTransform Affine
	clip          Shape
}

// Encoding is a recorded, frame-ready command stream: a tag stream plus
// per-kind parameter streams, in the order the commands were issued. It is
// the opaque value a Recorder produces for a frame and the unit of sub-scene
// embedding.
//
// An Encoding is cheap to replay and reusable across frames; Reset clears
// it without deallocating.
type Encoding struct {
	// tags is the command stream (1 byte per command).
	tags []Tag

	// Parameter streams, indexed in tag order per kind.
	fills     []fillOp
	strokes   []strokeOp
	layers    []layerOp
	glyphRuns []GlyphRun
}

// NewEncoding creates a new empty encoding.
func NewEncoding() *Encoding {
	return &Encoding{
		tags: make([]Tag, 0, 64),
	}
}

// Clone returns a deep copy of the encoding, detached from the original's
// backing arrays.
func (e *Encoding) Clone() *Encoding {
	return &Encoding{
		tags:      append([]Tag(nil), e.tags...),
		fills:     append([]fillOp(nil), e.fills...),
		strokes:   append([]strokeOp(nil), e.strokes...),
		layers:    append([]layerOp(nil), e.layers...),
		glyphRuns: append([]GlyphRun(nil), e.glyphRuns...),
	}
}

// Reset clears the encoding for reuse without deallocating memory.
func (e *Encoding) Reset() {
	e.tags = e.tags[:0]
	e.fills = e.fills[:0]
	e.strokes = e.strokes[:0]
	e.layers = e.layers[:0]
	e.glyphRuns = e.glyphRuns[:0]
}

// IsEmpty returns true if the encoding holds no commands.
func (e *Encoding) IsEmpty() bool {
	return len(e.tags) == 0
}

// Len returns the number of recorded commands.
func (e *Encoding) Len() int {
	return len(e.tags)
}

// Balanced reports whether every PushLayer has a matching PopLayer and no
// PopLayer underflows.
func (e *Encoding) Balanced() bool {
	depth := 0
	for _, tag := range e.tags {
		switch tag {
		case TagPushLayer:
			depth++
		case TagPopLayer:
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

// Replay issues every recorded command into b, with transform composed onto
// each command's transform (transform applied last). Brush transforms are
// relative to shape-local space and pass through unchanged.
//
// Replaying into a Recorder copies the stream; replaying into a rendering
// backend lowers it. Replay is how a pre-rendered scene is embedded into
// another scene.
func (e *Encoding) Replay(b Backend, transform Affine) {
	identity := transform.IsIdentity()
	compose := func(t Affine) Affine {
		if identity {
			return t
		}
		return transform.Mul(t)
	}

	var fi, si, li, gi int
	for _, tag := range e.tags {
		switch tag {
		case TagFill:
			op := e.fills[fi]
			fi++
			b.Fill(op.rule, compose(op.transform), op.brush, op.optBrushTransform(), op.shape)
		case TagStroke:
			op := e.strokes[si]
			si++
			style := op.style
			b.Stroke(&style, compose(op.transform), op.brush, op.optBrushTransform(), op.shape)
		case TagPushLayer:
			op := e.layers[li]
			li++
			b.PushLayer(op.mix, op.composite, op.alpha, compose(op.clipTransform), op.clip)
		case TagPopLayer:
			b.PopLayer()
		case TagGlyphRun:
			run := e.glyphRuns[gi]
			gi++
			run.Transform = compose(run.Transform)
			b.GlyphRun(run)
		}
	}
}

func (op fillOp) optBrushTransform() *Affine {
	if !op.hasBrushTrans {
		return nil
	}
	t := op.brushTransform
	return &t
}

func (op strokeOp) optBrushTransform() *Affine {
	if !op.hasBrushTrans {
		return nil
	}
	t := op.brushTransform
	return &t
}

// Recorder is the reference Backend: it records the command stream into an
// Encoding instead of rendering it. The resulting Encoding is handed to a
// real renderer, cached as a pre-rendered scene, or replayed into another
// backend.
//
// Recorder is not safe for concurrent use; scene building is
// single-threaded.
type Recorder struct {
	enc *Encoding
}

// NewRecorder creates a recorder with an empty encoding.
func NewRecorder() *Recorder {
	return &Recorder{enc: NewEncoding()}
}

// Encoding returns the recorded command stream.
func (r *Recorder) Encoding() *Encoding {
	return r.enc
}

// Reset clears the recorded stream for the next frame.
func (r *Recorder) Reset() {
	r.enc.Reset()
}

// Fill implements Backend.
func (r *Recorder) Fill(rule FillRule, transform Affine, brush Brush, brushTransform *Affine, shape Shape) {
	op := fillOp{
		rule:      rule,
		transform: transform,
		brush:     brush,
		shape:     shape,
	}
	if brushTransform != nil {
		op.brushTransform = *brushTransform
		op.hasBrushTrans = true
	}
	r.enc.tags = append(r.enc.tags, TagFill)
	r.enc.fills = append(r.enc.fills, op)
}

// Stroke implements Backend.
func (r *Recorder) Stroke(style *StrokeStyle, transform Affine, brush Brush, brushTransform *Affine, shape Shape) {
	if style == nil {
		style = DefaultStrokeStyle()
	}
	op := strokeOp{
		style:     *style,
		transform: transform,
		brush:     brush,
		shape:     shape,
	}
	if brushTransform != nil {
		op.brushTransform = *brushTransform
		op.hasBrushTrans = true
	}
	r.enc.tags = append(r.enc.tags, TagStroke)
	r.enc.strokes = append(r.enc.strokes, op)
}

// PushLayer implements Backend.
func (r *Recorder) PushLayer(mix MixMode, composite CompositeMode, alpha float64, clipTransform Affine, clip Shape) {
	r.enc.tags = append(r.enc.tags, TagPushLayer)
	r.enc.layers = append(r.enc.layers, layerOp{
		mix:           mix,
		composite:     composite,
		alpha:         clampAlpha(alpha),
		clipTransform: clipTransform,
		clip:          clip,
	})
}

// PopLayer implements Backend.
func (r *Recorder) PopLayer() {
	r.enc.tags = append(r.enc.tags, TagPopLayer)
}

// GlyphRun implements Backend.
func (r *Recorder) GlyphRun(run GlyphRun) {
	r.enc.tags = append(r.enc.tags, TagGlyphRun)
	r.enc.glyphRuns = append(r.enc.glyphRuns, run)
}

// Append implements Backend by replaying enc into the recorder, splicing its
// commands onto the end of the recorded stream under transform.
func (r *Recorder) Append(enc *Encoding, transform Affine) {
	if enc == nil || enc.IsEmpty() {
		return
	}
	enc.Replay(r, transform)
}

// clampAlpha clamps alpha to [0, 1] range.
func clampAlpha(alpha float64) float64 {
	if alpha < 0 {
		return 0
	}
	if alpha > 1 {
		return 1
	}
	return alpha
}
