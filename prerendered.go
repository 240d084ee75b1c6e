package scenic

// Prerendered embeds a previously built scene into another scene as a single
// drawable: a rasterized vector asset, an icon, a cached sub-scene. The
// embedded command stream is replayed under the composed transform without
// re-specifying its contents.
type Prerendered struct {
	// Encoding is the recorded command stream to embed.
	Encoding *Encoding

	// Transform places the embedded scene in the target scene's space.
	Transform Affine
}

// NewPrerendered captures a finished scene built over a Recorder backend.
// The scene's layer brackets must be balanced.
//
// The command stream is copied, so the recorder can be reset and reused for
// subsequent frames without touching the capture.
func NewPrerendered(s *Scene, transform Affine) (*Prerendered, error) {
	if err := s.Finish(); err != nil {
		return nil, err
	}
	rec, ok := s.Backend().(*Recorder)
	if !ok {
		return nil, ErrSceneNotRecording
	}
	return &Prerendered{
		Encoding:  rec.Encoding().Clone(),
		Transform: transform,
	}, nil
}

// Draw implements Drawable by appending the recorded stream to the target
// scene's backend under global.Mul(local), the same composition order as
// every other drawable.
func (p *Prerendered) Draw(s *Scene) {
	if p.Encoding == nil || p.Encoding.IsEmpty() {
		return
	}
	s.Backend().Append(p.Encoding, s.Transform().Mul(p.Transform))
}
