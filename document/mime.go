// Package document knows which CV file types the service accepts and how to
// get text or page counts out of them.
package document

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const (
	MIMEPDF     = "application/pdf"
	MIMEJPEG    = "image/jpeg"
	MIMEPNG     = "image/png"
	MIMEDOCX    = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMEDOC     = "application/msword"
	MIMEUnknown = "application/octet-stream"
)

var mimeTypes = map[string]string{
	".pdf":  MIMEPDF,
	".jpg":  MIMEJPEG,
	".jpeg": MIMEJPEG,
	".png":  MIMEPNG,
	".docx": MIMEDOCX,
	".doc":  MIMEDOC,
}

// MIMEType returns the MIME type for a file name by extension, or
// application/octet-stream when the extension is not one we accept.
func MIMEType(filename string) string {
	if mime, ok := mimeTypes[strings.ToLower(filepath.Ext(filename))]; ok {
		return mime
	}
	return MIMEUnknown
}

// IsAllowed reports whether a file with this name may be uploaded.
func IsAllowed(filename string) bool {
	_, ok := mimeTypes[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// mimeOLE is the container of legacy Word files. Files saved by tools other
// than Word often carry no Word class id, so the container alone is accepted.
const mimeOLE = "application/x-ole-storage"

// MatchesContent reports whether data looks like a file of the given MIME
// type, judged by its magic bytes rather than its name.
func MatchesContent(mime string, data []byte) bool {
	for m := mimetype.Detect(data); m != nil; m = m.Parent() {
		if m.Is(mime) || (mime == MIMEDOC && m.Is(mimeOLE)) {
			return true
		}
	}
	return false
}

// InlineSupported reports whether the LLM accepts this type as inline data.
// Word documents must be converted to text first.
func InlineSupported(mime string) bool {
	switch mime {
	case MIMEPDF, MIMEJPEG, MIMEPNG:
		return true
	}
	return false
}
