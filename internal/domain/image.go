package domain

// Supported image MIME types
const (
	MIMETypeJPEG = "image/jpeg"
	MIMETypePNG  = "image/png"
)

// ImageArtifact holds generated image bytes until they are written to storage.
type ImageArtifact struct {
	Bytes    []byte
	MIMEType string
}

// Extension returns the file extension (with leading dot) for the artifact's
// MIME type, defaulting to ".jpg".
func (a *ImageArtifact) Extension() string {
	if a != nil && a.MIMEType == MIMETypePNG {
		return ".png"
	}
	return ".jpg"
}

// IsEmpty reports whether the artifact carries no image data.
func (a *ImageArtifact) IsEmpty() bool {
	return a == nil || len(a.Bytes) == 0
}
