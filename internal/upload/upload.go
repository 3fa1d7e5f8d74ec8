// Package upload validates browser-submitted files and persists them either
// through the KarirKit API upload endpoint or straight into object storage.
// The returned path is what forms store in fields such as logo or
// featured_image.
package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Kind groups the content types accepted for a field.
type Kind string

const (
	KindImage    Kind = "image"
	KindDocument Kind = "document"
)

// sniffLen is how many leading bytes are inspected to detect the type.
const sniffLen = 3072

var (
	ErrEmptyFile       = errors.New("file is empty")
	ErrTooLarge        = errors.New("file is too large")
	ErrUnsupportedType = errors.New("file type is not allowed")
	ErrUnknownKind     = errors.New("unknown upload kind")
)

var imageTypes = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}

var documentTypes = append([]string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}, imageTypes...)

// Allowed lists the content types accepted for kind.
func Allowed(kind Kind) []string {
	switch kind {
	case KindImage:
		return imageTypes
	case KindDocument:
		return documentTypes
	}
	return nil
}

// ParseKind maps the "type" form value to a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindImage, KindDocument:
		return k, nil
	case "":
		return KindImage, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// File is an incoming upload. Size is -1 when unknown.
type File struct {
	Kind        Kind
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Result describes the stored file.
type Result struct {
	Path        string `json:"path"`
	ContentType string `json:"mime_type"`
	Size        int64  `json:"size"`
	Filename    string `json:"filename"`
}

// Uploader persists a file and returns where it lives.
type Uploader interface {
	Upload(ctx context.Context, f File) (*Result, error)
}

// inspect checks size and sniffed content type. The declared ContentType of
// f is ignored; the returned file carries the detected one and a body that
// fails with ErrTooLarge once more than maxBytes are read.
func inspect(f File, maxBytes int64) (File, string, error) {
	allowed := Allowed(f.Kind)
	if allowed == nil {
		return File{}, "", fmt.Errorf("%w: %q", ErrUnknownKind, f.Kind)
	}
	if f.Size == 0 || f.Body == nil {
		return File{}, "", ErrEmptyFile
	}
	if maxBytes > 0 && f.Size > maxBytes {
		return File{}, "", ErrTooLarge
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f.Body, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return File{}, "", fmt.Errorf("read upload: %w", err)
	}
	if n == 0 {
		return File{}, "", ErrEmptyFile
	}
	head = head[:n]

	mt := mimetype.Detect(head)
	if !isAllowed(mt, allowed) {
		return File{}, "", fmt.Errorf("%w: %s", ErrUnsupportedType, mt.String())
	}

	ext := mt.Extension()
	if ext == "" {
		ext = strings.ToLower(filepath.Ext(f.Filename))
	}

	out := f
	out.ContentType = baseType(mt.String())
	out.Body = io.MultiReader(bytes.NewReader(head), f.Body)
	if maxBytes > 0 {
		out.Body = &limitedReader{r: out.Body, left: maxBytes}
	}
	return out, ext, nil
}

func isAllowed(mt *mimetype.MIME, allowed []string) bool {
	for _, a := range allowed {
		if mt.Is(a) {
			return true
		}
	}
	return false
}

func baseType(s string) string {
	if i := strings.IndexByte(s, ';'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}

// limitedReader is io.LimitReader that reports overflow instead of EOF.
type limitedReader struct {
	r    io.Reader
	left int64
}

func (l *limitedReader) Read(p []byte) (int, error) {
	n, err := l.r.Read(p)
	l.left -= int64(n)
	if l.left < 0 {
		return n, ErrTooLarge
	}
	return n, err
}

// exceeded reports whether r is a limitedReader that overflowed. Storage
// clients do not always wrap reader errors.
func exceeded(r io.Reader) bool {
	l, ok := r.(*limitedReader)
	return ok && l.left < 0
}

// BuildImageURL turns a stored path into a URL a browser can load. Absolute
// URLs (http, https, protocol-relative, data) are returned untouched.
func BuildImageURL(base, path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	lower := strings.ToLower(path)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "//") || strings.HasPrefix(lower, "data:") {
		return path
	}
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	return base + "/" + strings.TrimLeft(path, "/")
}
