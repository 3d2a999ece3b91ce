package suite

import (
	"bufio"

	"github.com/inhies/go-bytesize"
	"github.com/klauspost/compress/zstd"
)

type Zst struct {
	path         string
	scanner      *bufio.Scanner
	decoder      *zstd.Decoder
	inputReader  *countingReader
	outputReader *countingReader
	size         bytesize.ByteSize
	close        closeFn
}

func NewZst(path string) *Zst {
	return &Zst{
		path: path,
	}
}

func (s *Zst) Open() error {
	reader, size, close, err := openFile(s.path)
	if err != nil {
		return err
	}
	// both ends are counted to estimate the decompressed size
	s.inputReader = &countingReader{reader: reader}
	s.decoder, err = zstd.NewReader(s.inputReader)
	if err != nil {
		_ = close()
		return err
	}

	s.outputReader = &countingReader{reader: s.decoder}
	s.close = close
	s.size = size
	s.scanner = bufio.NewScanner(bufio.NewReader(s.outputReader))
	return nil
}

func (s *Zst) Close() error {
	if s.close == nil {
		return nil
	}
	s.decoder.Close()
	return s.close()
}

func (s *Zst) Scan() bool {
	return s.scanner.Scan()
}

func (s *Zst) Text() string {
	return s.scanner.Text()
}

func (s *Zst) Err() error {
	return s.scanner.Err()
}

func (s *Zst) Size() bytesize.ByteSize {
	if s.inputReader != nil && s.inputReader.bytesRead > 0 {
		return s.size * s.outputReader.bytesRead / s.inputReader.bytesRead
	}
	return s.size
}

func (s *Zst) BytesRead() bytesize.ByteSize {
	if s.outputReader == nil {
		return 0
	}
	return s.outputReader.bytesRead
}
