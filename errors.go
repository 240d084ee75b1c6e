package scenic

import "errors"

// Sentinel errors for the scenic package.
var (
	// ErrUnbalancedLayers is returned by Scene.Finish when a frame ends
	// with more StartLayer calls than EndLayer calls.
	ErrUnbalancedLayers = errors.New("scenic: unbalanced layer push/pop")

	// ErrSceneNotRecording is returned when a recorded command stream is
	// requested from a scene whose backend is not a Recorder.
	ErrSceneNotRecording = errors.New("scenic: scene backend is not a Recorder")
)
