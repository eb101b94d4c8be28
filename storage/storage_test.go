package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCleanName(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "cv.pdf", want: "cv.pdf"},
		{in: "  cv.pdf ", want: "cv.pdf"},
		{in: "../../etc/passwd", want: "passwd"},
		{in: `C:\Users\me\cv.docx`, want: "cv.docx"},
		{in: "/abs/path/cv.png", want: "cv.png"},
		{in: "", wantErr: true},
		{in: "..", wantErr: true},
		{in: "/", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := CleanName(tc.in)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidName)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestLocalProvider(t *testing.T) {
	ctx := context.Background()
	p, err := NewLocalProvider(t.TempDir())
	require.NoError(t, err)

	ok, err := p.Exists(ctx, "cv.pdf")
	require.NoError(t, err)
	require.False(t, ok)

	_, err = p.Load(ctx, "cv.pdf")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, p.Save(ctx, "cv.pdf", []byte("%PDF-1.4"), "application/pdf"))

	ok, err = p.Exists(ctx, "cv.pdf")
	require.NoError(t, err)
	require.True(t, ok)

	data, err := p.Load(ctx, "../cv.pdf")
	require.NoError(t, err)
	require.Equal(t, []byte("%PDF-1.4"), data)

	// Overwrite.
	require.NoError(t, p.Save(ctx, "cv.pdf", []byte("v2"), ""))
	data, err = p.Load(ctx, "cv.pdf")
	require.NoError(t, err)
	require.Equal(t, []byte("v2"), data)

	require.ErrorIs(t, p.Save(ctx, "..", nil, ""), ErrInvalidName)
}

func TestNewProvider(t *testing.T) {
	p, err := New(context.Background(), Config{Dir: t.TempDir()})
	require.NoError(t, err)
	require.IsType(t, &LocalProvider{}, p)

	_, err = New(context.Background(), Config{Provider: ProviderS3})
	require.Error(t, err)

	_, err = New(context.Background(), Config{Provider: "ftp"})
	require.Error(t, err)
}
