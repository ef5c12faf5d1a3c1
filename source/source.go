// Package source provides a restartable stream of decoded UTF-8 characters.
package source

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	cu "github.com/nj-eka/LetterStatsGo/ctxutils"
	"github.com/nj-eka/LetterStatsGo/errs"
	"github.com/nj-eka/LetterStatsGo/fh"
	"github.com/nj-eka/LetterStatsGo/logging"
	"io"
	"os"
	"os/user"
)

// ErrEndOfInput is returned by ReadNextChar once the stream is exhausted.
var ErrEndOfInput = errors.New("end of input")

type CharSource interface {
	// Reset repositions the stream at its start and clears the end flag.
	Reset() error
	AtEnd() bool
	ReadNextChar() (rune, error)
}

type ReadStats struct {
	Runes int64
	Bytes int64
}

type Source struct {
	rs     io.ReadSeeker
	reader *bufio.Reader
	atEnd  bool
	stats  ReadStats
	name   string
}

func New(name string, rs io.ReadSeeker) *Source {
	return &Source{
		rs:     rs,
		reader: bufio.NewReader(rs),
		name:   name,
	}
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) Reset() error {
	if _, err := s.rs.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("seek [%s] to start failed: %w", s.name, err)
	}
	s.reader.Reset(s.rs)
	s.atEnd = false
	s.stats = ReadStats{}
	return nil
}

func (s *Source) AtEnd() bool {
	return s.atEnd
}

func (s *Source) ReadNextChar() (rune, error) {
	if s.atEnd {
		return 0, ErrEndOfInput
	}
	r, size, err := s.reader.ReadRune()
	if err != nil {
		if err == io.EOF {
			s.atEnd = true
			return 0, ErrEndOfInput
		}
		return 0, fmt.Errorf("read [%s] failed after %d bytes: %w", s.name, s.stats.Bytes, err)
	}
	s.stats.Runes++
	s.stats.Bytes += int64(size)
	return r, nil
}

// Stats returns counters of the current pass (since the last Reset).
func (s *Source) Stats() ReadStats {
	return s.stats
}

// FileSource is a Source over an open file; Close must be called by the owner.
type FileSource struct {
	*Source
	file *os.File
	size int64
}

func Open(ctx context.Context, path string, usr *user.User) (*FileSource, errs.Error) {
	ctx = cu.BuildContext(ctx, cu.AddContextOperation("open"))
	fullPath, err := fh.ResolvePath(path, usr)
	if err != nil {
		return nil, errs.E(ctx, errs.KindInvalidValue, fmt.Errorf("resolving file [%s] failed: %w", path, err))
	}
	if isDir, err := fh.IsDirectory(fullPath); err != nil {
		return nil, errs.E(ctx, errs.KindOpenFile, fmt.Errorf("< stat [%s] failed: %w", fullPath, err))
	} else if isDir {
		return nil, errs.E(ctx, errs.KindOpenFile, fmt.Errorf("< open [%s] failed: is a directory", fullPath))
	}
	file, err := os.Open(fullPath)
	if err != nil {
		return nil, errs.E(ctx, errs.KindOpenFile, fmt.Errorf("< open [%s] failed: %w", fullPath, err))
	}
	fileInfo, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, errs.E(ctx, errs.KindIO, fmt.Errorf("< stat [%s] failed: %w", fullPath, err))
	}
	logging.Msg(ctx).Debug("> open ", fullPath)
	return &FileSource{
		Source: New(fullPath, file),
		file:   file,
		size:   fileInfo.Size(),
	}, nil
}

func (s *FileSource) Size() int64 {
	return s.size
}

func (s *FileSource) Close() error {
	err := s.file.Close()
	logging.Msg().Debug("> close ", s.name, " with err: ", err)
	return err
}
