package upload

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"karirkit/internal/apiclient"
	"karirkit/internal/config"
	"karirkit/internal/storage"
	"karirkit/internal/storage/mocks"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")

func pngFile(extra int) File {
	body := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, extra)...)
	return File{Kind: KindImage, Filename: "Logo.PNG", ContentType: "application/octet-stream", Size: int64(len(body)), Body: bytes.NewReader(body)}
}

type fakeBackend struct {
	kind, filename, contentType string
	body                        []byte
	err                         error
}

func (f *fakeBackend) Upload(_ context.Context, kind, filename, contentType string, r io.Reader) (*apiclient.UploadResult, error) {
	f.kind, f.filename, f.contentType = kind, filename, contentType
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	f.body = b
	if f.err != nil {
		return nil, f.err
	}
	return &apiclient.UploadResult{Path: "/uploads/abc.png", Size: int64(len(b))}, nil
}

func TestInspect(t *testing.T) {
	t.Run("sniffs content type and keeps the body intact", func(t *testing.T) {
		in := pngFile(10)
		out, ext, err := inspect(in, 1<<20)
		require.NoError(t, err)
		assert.Equal(t, "image/png", out.ContentType)
		assert.Equal(t, ".png", ext)

		b, err := io.ReadAll(out.Body)
		require.NoError(t, err)
		assert.Len(t, b, len(pngHeader)+10)
	})

	t.Run("rejects declared size above max", func(t *testing.T) {
		_, _, err := inspect(pngFile(100), 10)
		assert.ErrorIs(t, err, ErrTooLarge)
	})

	t.Run("rejects undeclared size above max while reading", func(t *testing.T) {
		f := pngFile(100)
		f.Size = -1
		out, _, err := inspect(f, 50)
		require.NoError(t, err)
		_, err = io.ReadAll(out.Body)
		assert.ErrorIs(t, err, ErrTooLarge)
	})

	t.Run("rejects text for images", func(t *testing.T) {
		f := File{Kind: KindImage, Filename: "x.png", Size: 5, Body: strings.NewReader("hello")}
		_, _, err := inspect(f, 0)
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("accepts pdf as document", func(t *testing.T) {
		f := File{Kind: KindDocument, Filename: "cv.pdf", Size: -1, Body: strings.NewReader("%PDF-1.4\n%âãÏÓ\n1 0 obj\n")}
		out, ext, err := inspect(f, 0)
		require.NoError(t, err)
		assert.Equal(t, "application/pdf", out.ContentType)
		assert.Equal(t, ".pdf", ext)
	})

	t.Run("rejects pdf as image", func(t *testing.T) {
		f := File{Kind: KindImage, Filename: "cv.pdf", Size: -1, Body: strings.NewReader("%PDF-1.4\n")}
		_, _, err := inspect(f, 0)
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("empty", func(t *testing.T) {
		_, _, err := inspect(File{Kind: KindImage, Size: 0, Body: strings.NewReader("")}, 0)
		assert.ErrorIs(t, err, ErrEmptyFile)

		_, _, err = inspect(File{Kind: KindImage, Size: -1, Body: strings.NewReader("")}, 0)
		assert.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, _, err := inspect(File{Kind: "video", Size: 1, Body: strings.NewReader("x")}, 0)
		assert.ErrorIs(t, err, ErrUnknownKind)
	})
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" Document ")
	require.NoError(t, err)
	assert.Equal(t, KindDocument, k)

	k, err = ParseKind("")
	require.NoError(t, err)
	assert.Equal(t, KindImage, k)

	_, err = ParseKind("audio")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestAPIUploader(t *testing.T) {
	b := &fakeBackend{}
	u := NewAPIUploader(b, 1<<20)

	res, err := u.Upload(context.Background(), pngFile(4))

	require.NoError(t, err)
	assert.Equal(t, "/uploads/abc.png", res.Path)
	assert.Equal(t, "image/png", res.ContentType)
	assert.Equal(t, "image", b.kind)
	assert.Equal(t, "image/png", b.contentType)
	assert.Len(t, b.body, len(pngHeader)+4)
}

func TestAPIUploader_RejectsBeforeCallingBackend(t *testing.T) {
	b := &fakeBackend{}
	u := NewAPIUploader(b, 1<<20)

	_, err := u.Upload(context.Background(), File{Kind: KindImage, Size: 3, Body: strings.NewReader("abc")})

	assert.ErrorIs(t, err, ErrUnsupportedType)
	assert.Empty(t, b.kind)
}

func TestObjectUploader(t *testing.T) {
	store := new(mocks.MockStorage)
	u := NewObjectUploader(store, 1<<20)
	u.newID = func() string { return "fixed-id" }

	store.On("Put", mock.Anything, "uploads/image/fixed-id.png", mock.Anything, mock.MatchedBy(func(o storage.PutObjectOptions) bool {
		return o.ContentType == "image/png" && o.Metadata["filename"] == "Logo.PNG" && o.Size == int64(len(pngHeader)+8)
	})).Return(func(_ context.Context, key string, r io.Reader, _ storage.PutObjectOptions) storage.ObjectInfo {
		b, _ := io.ReadAll(r)
		return storage.ObjectInfo{Key: key, Size: int64(len(b))}
	}, nil).Once()

	res, err := u.Upload(context.Background(), pngFile(8))

	require.NoError(t, err)
	assert.Equal(t, "/uploads/image/fixed-id.png", res.Path)
	assert.Equal(t, int64(len(pngHeader)+8), res.Size)
	store.AssertExpectations(t)
}

func TestObjectUploader_OverflowRemovesObject(t *testing.T) {
	store := new(mocks.MockStorage)
	u := NewObjectUploader(store, 40)
	u.newID = func() string { return "big" }

	f := pngFile(100)
	f.Size = -1

	store.On("Put", mock.Anything, "uploads/image/big.png", mock.Anything, mock.Anything).
		Return(func(_ context.Context, key string, r io.Reader, _ storage.PutObjectOptions) storage.ObjectInfo {
			_, _ = io.ReadAll(r)
			return storage.ObjectInfo{}
		}, errors.New("stream aborted")).Once()
	store.On("Delete", mock.Anything, "uploads/image/big.png").Return(nil).Once()

	_, err := u.Upload(context.Background(), f)

	assert.ErrorIs(t, err, ErrTooLarge)
	store.AssertExpectations(t)
}

func TestNew(t *testing.T) {
	up, err := New(config.UploadConfig{Driver: "api"}, &fakeBackend{}, nil)
	require.NoError(t, err)
	assert.IsType(t, &APIUploader{}, up)

	_, err = New(config.UploadConfig{Driver: "minio"}, &fakeBackend{}, nil)
	assert.Error(t, err)

	up, err = New(config.UploadConfig{Driver: "minio"}, nil, new(mocks.MockStorage))
	require.NoError(t, err)
	assert.IsType(t, &ObjectUploader{}, up)

	_, err = New(config.UploadConfig{Driver: "ftp"}, nil, nil)
	assert.EqualError(t, err, `unknown upload driver "ftp"`)
}

func TestBuildImageURL(t *testing.T) {
	tests := []struct {
		base, path, want string
	}{
		{"https://cdn.karirkit.id/", "/uploads/a.png", "https://cdn.karirkit.id/uploads/a.png"},
		{"https://cdn.karirkit.id", "uploads/a.png", "https://cdn.karirkit.id/uploads/a.png"},
		{"", "uploads/a.png", "/uploads/a.png"},
		{"https://cdn.karirkit.id", "https://img.example.com/a.png", "https://img.example.com/a.png"},
		{"https://cdn.karirkit.id", "//img.example.com/a.png", "//img.example.com/a.png"},
		{"https://cdn.karirkit.id", "data:image/png;base64,AAA", "data:image/png;base64,AAA"},
		{"https://cdn.karirkit.id", "  ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BuildImageURL(tt.base, tt.path), tt.path)
	}
}
