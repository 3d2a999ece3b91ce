// Package suite reads FEN and EPD position suites from plain or compressed
// files, one position per line.
package suite

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/inhies/go-bytesize"
)

var ErrUnsupportedFormat = errors.New("unsupported suite format")

type Source interface {
	Open() error
	Close() error
	Scan() bool
	Text() string
	Err() error
	// Size of the data, estimated from the compression ratio seen so far for archives.
	Size() bytesize.ByteSize
	// Decompressed bytes consumed so far.
	BytesRead() bytesize.ByteSize
}

type countingReader struct {
	reader    io.Reader
	bytesRead bytesize.ByteSize
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.reader.Read(p)
	cr.bytesRead += bytesize.ByteSize(uint64(n))
	return n, err
}

type closeFn func() error

func openFile(path string) (io.Reader, bytesize.ByteSize, closeFn, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, nil, err
	}
	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, 0, nil, err
	}
	return file, bytesize.ByteSize(stat.Size()), file.Close, nil
}

// FromPath picks a Source implementation by file extension. The source is
// not opened.
func FromPath(path string) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst":
		return NewZst(path), nil
	case ".bz2":
		return NewBzip2(path), nil
	case ".fen", ".epd", ".txt":
		return NewPlain(path), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}
