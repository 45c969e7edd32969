package ocr

import "context"

// Engine extracts text from a captured screen frame. Model loading and
// ONNX execution live in the inference sidecar, not in this backend.
type Engine interface {
	Recognize(ctx context.Context, imagePath string) (string, error)
}
