// Package scenic is a backend-agnostic 2D vector-graphics scene builder.
//
// # Overview
//
// scenic is an immediate-mode intermediate representation: an application
// populates a Scene every frame with drawable primitives (shapes, text,
// pre-rendered sub-scenes) and hands the accumulated command stream to an
// external rendering backend for tessellation, rasterization and
// presentation. scenic itself never touches pixels; its job is keeping the
// transform and layer-compositing model correct while the frame is built.
//
// # Quick Start
//
//	import "github.com/gogpu/scenic"
//
//	rec := scenic.NewRecorder()
//	sc := scenic.NewScene(scenic.Black, 800, 600, scenic.WithBackend(rec))
//
//	sc.Draw(&scenic.Geom{
//	    Style:     scenic.Fill{Rule: scenic.FillNonZero},
//	    Shape:     scenic.Circle{Radius: 100},
//	    Brush:     scenic.Solid(scenic.Red),
//	    Transform: scenic.Identity(),
//	})
//
//	if err := sc.Finish(); err != nil {
//	    log.Fatal(err)
//	}
//	enc := rec.Encoding() // hand to a renderer
//
// # Coordinate System
//
// X increases right, Y increases down, angles are in radians. By default the
// scene's global transform shifts the origin to the canvas center, so
// application coordinates are origin-centered; pass WithOrigin(OriginTopLeft)
// for conventional top-left coordinates.
//
// # Transform Composition
//
// Affine composition follows one fixed convention everywhere: a.Mul(b)
// applies b first, then a. A drawable's effective transform is
// global.Mul(local) — a point is mapped local-space, then global-space.
// Brush transforms are independent of object transforms: a brush stays in
// the shape's local space (or the image's pixel space) unless a brush
// transform says otherwise.
//
// # Layers
//
// StartLayer/EndLayer bracket a region with its own mix mode, composite
// mode, clip shape and opacity. Brackets nest arbitrarily and must balance
// before Finish. DrawAlphaMask builds soft masking on top of two nested
// layers.
//
// # Backends
//
// Everything below the Backend interface is external: GPU devices, shader
// compilation, glyph outline extraction, image decoding. The built-in
// Recorder backend records commands into an Encoding that can be replayed
// into any other backend, which is also how pre-rendered sub-scenes are
// embedded.
package scenic
