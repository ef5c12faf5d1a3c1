package source

import (
	"context"
	"errors"
	"github.com/nj-eka/LetterStatsGo/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readAll(t *testing.T, s CharSource) string {
	t.Helper()
	var sb strings.Builder
	for !s.AtEnd() {
		r, err := s.ReadNextChar()
		if errors.Is(err, ErrEndOfInput) {
			break
		}
		require.NoError(t, err)
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestSourceReadsRunes(t *testing.T) {
	s := New("mem", strings.NewReader("Ёж, hi!"))
	require.NoError(t, s.Reset())

	assert.Equal(t, "Ёж, hi!", readAll(t, s))
	assert.True(t, s.AtEnd())
	assert.Equal(t, ReadStats{Runes: 7, Bytes: 9}, s.Stats())

	_, err := s.ReadNextChar()
	assert.ErrorIs(t, err, ErrEndOfInput)
}

func TestSourceReset(t *testing.T) {
	s := New("mem", strings.NewReader("abc"))
	require.NoError(t, s.Reset())
	r, err := s.ReadNextChar()
	require.NoError(t, err)
	assert.Equal(t, 'a', r)

	require.NoError(t, s.Reset())
	assert.False(t, s.AtEnd())
	assert.Equal(t, "abc", readAll(t, s))

	require.NoError(t, s.Reset())
	assert.Equal(t, "abc", readAll(t, s))
}

func TestSourceEmpty(t *testing.T) {
	s := New("empty", strings.NewReader(""))
	require.NoError(t, s.Reset())
	_, err := s.ReadNextChar()
	assert.ErrorIs(t, err, ErrEndOfInput)
	assert.True(t, s.AtEnd())
}

func TestSourceInvalidUTF8(t *testing.T) {
	s := New("bin", strings.NewReader("a\xffb"))
	require.NoError(t, s.Reset())
	assert.Equal(t, "a\uFFFDb", readAll(t, s))
}

type failingReader struct {
	data string
	pos  int
}

func (f *failingReader) Read(p []byte) (int, error) {
	if f.pos >= len(f.data) {
		return 0, io.ErrUnexpectedEOF
	}
	n := copy(p, f.data[f.pos:])
	f.pos += n
	return n, nil
}

func (f *failingReader) Seek(offset int64, whence int) (int64, error) {
	f.pos = 0
	return 0, nil
}

func TestSourceReadError(t *testing.T) {
	s := New("broken", &failingReader{data: "ab"})
	require.NoError(t, s.Reset())
	_, err := s.ReadNextChar()
	require.NoError(t, err)
	_, err = s.ReadNextChar()
	require.NoError(t, err)
	_, err = s.ReadNextChar()
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.False(t, errors.Is(err, ErrEndOfInput))
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("привет"), 0644))

	s, err := Open(context.Background(), path, nil)
	require.Nil(t, err)
	defer s.Close()

	assert.Equal(t, int64(12), s.Size())
	require.NoError(t, s.Reset())
	assert.Equal(t, "привет", readAll(t, s))
}

func TestOpenFailures(t *testing.T) {
	dir := t.TempDir()

	_, err := Open(context.Background(), filepath.Join(dir, "missing.txt"), nil)
	require.NotNil(t, err)
	assert.Equal(t, errs.KindOpenFile, err.Kind())
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Open(context.Background(), dir, nil)
	require.NotNil(t, err)
	assert.Equal(t, errs.KindOpenFile, err.Kind())
}
