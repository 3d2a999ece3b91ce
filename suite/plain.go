package suite

import (
	"bufio"

	"github.com/inhies/go-bytesize"
)

type Plain struct {
	scanner *bufio.Scanner
	reader  *countingReader
	close   closeFn
	path    string
	size    bytesize.ByteSize
}

func NewPlain(path string) *Plain {
	return &Plain{
		path: path,
	}
}

func (s *Plain) Open() error {
	reader, size, close, err := openFile(s.path)
	if err != nil {
		return err
	}

	s.close = close
	s.reader = &countingReader{reader: reader}
	s.size = size
	s.scanner = bufio.NewScanner(bufio.NewReader(s.reader))
	return nil
}

func (s *Plain) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

func (s *Plain) Scan() bool {
	return s.scanner.Scan()
}

func (s *Plain) Text() string {
	return s.scanner.Text()
}

func (s *Plain) Err() error {
	return s.scanner.Err()
}

func (s *Plain) Size() bytesize.ByteSize {
	return s.size
}

func (s *Plain) BytesRead() bytesize.ByteSize {
	if s.reader == nil {
		return 0
	}
	return s.reader.bytesRead
}
