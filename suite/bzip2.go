package suite

import (
	"bufio"

	"github.com/dsnet/compress/bzip2"
	"github.com/inhies/go-bytesize"
)

type Bzip2 struct {
	reader  *bzip2.Reader
	scanner *bufio.Scanner
	close   closeFn
	path    string
	size    bytesize.ByteSize
}

func NewBzip2(path string) *Bzip2 {
	return &Bzip2{
		path: path,
	}
}

func (s *Bzip2) Open() error {
	reader, size, close, err := openFile(s.path)
	if err != nil {
		return err
	}

	s.reader, err = bzip2.NewReader(reader, nil)
	if err != nil {
		_ = close()
		return err
	}

	s.size = size
	s.close = close
	s.scanner = bufio.NewScanner(bufio.NewReader(s.reader))
	return nil
}

func (s *Bzip2) Close() error {
	if s.close == nil {
		return nil
	}
	_ = s.reader.Close()
	return s.close()
}

func (s *Bzip2) Scan() bool {
	return s.scanner.Scan()
}

func (s *Bzip2) Text() string {
	return s.scanner.Text()
}

func (s *Bzip2) Err() error {
	return s.scanner.Err()
}

func (s *Bzip2) Size() bytesize.ByteSize {
	if s.reader != nil && s.reader.InputOffset > 0 {
		return s.size * bytesize.ByteSize(s.reader.OutputOffset) / bytesize.ByteSize(s.reader.InputOffset)
	}
	return s.size
}

func (s *Bzip2) BytesRead() bytesize.ByteSize {
	if s.reader == nil {
		return 0
	}
	return bytesize.ByteSize(s.reader.OutputOffset)
}
