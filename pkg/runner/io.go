package runner

import (
	"bufio"
	"context"
	"io"
	"sync"
)

// byteSource reads from an io.Reader in a goroutine, so that a blocked
// read never keeps the loop from noticing a cancelled context.
type byteSource struct {
	reader *bufio.Reader
	ch     chan []byte
	err    error
	once   sync.Once
	done   chan struct{}
}

func newByteSource(r io.Reader) *byteSource {
	return &byteSource{
		reader: bufio.NewReader(r),
		ch:     make(chan []byte),
		done:   make(chan struct{}),
	}
}

func (s *byteSource) start() {
	s.once.Do(func() { go s.pump() })
}

func (s *byteSource) pump() {
	defer close(s.ch)
	buf := make([]byte, 256)
	for {
		n, err := s.reader.Read(buf)
		if n > 0 {
			chunk := append([]byte(nil), buf[:n]...)
			select {
			case s.ch <- chunk:
			case <-s.done:
				return
			}
		}
		if err != nil {
			if err != io.EOF {
				s.err = err
			}
			return
		}
	}
}

// next returns the next chunk of input. It returns io.EOF at the end of
// the input, and the context error if ctx is cancelled first.
func (s *byteSource) next(ctx context.Context) ([]byte, error) {
	s.start()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case chunk, ok := <-s.ch:
		if !ok {
			if s.err != nil {
				return nil, s.err
			}
			return nil, io.EOF
		}
		return chunk, nil
	}
}

// stop releases the pump if it is waiting to deliver a chunk.
func (s *byteSource) stop() {
	select {
	case <-s.done:
	default:
		close(s.done)
	}
}
