package scenic

// Origin selects where a scene places its logical origin.
type Origin int

const (
	// OriginCenter puts the origin at the canvas midpoint, so
	// application-authored coordinates are origin-centered. This is the
	// default.
	OriginCenter Origin = iota

	// OriginTopLeft puts the origin at the canvas top-left corner, the
	// conventional raster coordinate system.
	OriginTopLeft
)

// SceneOption configures a Scene during creation.
//
// Example:
//
//	// Centered origin, recording backend (defaults)
//	sc := scenic.NewScene(scenic.White, 800, 600)
//
//	// Top-left origin, custom backend
//	sc := scenic.NewScene(scenic.White, 800, 600,
//	    scenic.WithOrigin(scenic.OriginTopLeft),
//	    scenic.WithBackend(myBackend),
//	)
type SceneOption func(*sceneOptions)

// sceneOptions holds optional configuration for Scene creation.
type sceneOptions struct {
	backend Backend
	global  Affine
	width   int
	height  int
}

// defaultSceneOptions returns the default scene options for a canvas size.
func defaultSceneOptions(width, height int) sceneOptions {
	return sceneOptions{
		backend: nil, // Recorder is created if nil
		global:  centerOrigin(width, height),
		width:   width,
		height:  height,
	}
}

// centerOrigin is the global transform that puts the origin at the canvas
// midpoint.
func centerOrigin(width, height int) Affine {
	return Translate(float64(width)/2, float64(height)/2)
}

// WithBackend sets the backend the scene lowers commands into.
// Use this for dependency injection of a rendering backend; the default is
// a fresh Recorder.
func WithBackend(b Backend) SceneOption {
	return func(o *sceneOptions) {
		o.backend = b
	}
}

// WithOrigin selects the scene's coordinate origin. Both presets set the
// global transform explicitly, so options compose in any order.
func WithOrigin(origin Origin) SceneOption {
	return func(o *sceneOptions) {
		switch origin {
		case OriginTopLeft:
			o.global = Identity()
		default:
			o.global = centerOrigin(o.width, o.height)
		}
	}
}

// WithGlobalTransform replaces the scene's initial global transform
// entirely, for coordinate systems neither origin preset expresses.
func WithGlobalTransform(t Affine) SceneOption {
	return func(o *sceneOptions) {
		o.global = t
	}
}
