package shell

import (
	"bufio"
	"context"
	"io"
	"strings"
)

// lineReader delivers input lines through a channel so that a pending read
// can be abandoned when the context is cancelled. Lines have no length
// limit; overlong answers reach the prompt's own validation.
type lineReader struct {
	lines chan string
	errc  chan error
	err   error
}

func newLineReader(ctx context.Context, r io.Reader) *lineReader {
	lr := &lineReader{
		lines: make(chan string),
		errc:  make(chan error, 1),
	}
	go func() {
		defer close(lr.lines)
		br := bufio.NewReader(r)
		for {
			line, err := br.ReadString('\n')
			if line != "" {
				select {
				case lr.lines <- strings.TrimRight(line, "\r\n"):
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				lr.errc <- err
				return
			}
		}
	}()
	return lr
}

// ReadLine blocks until a line arrives, input ends or ctx is done.
func (lr *lineReader) ReadLine(ctx context.Context) (string, error) {
	if lr.err != nil {
		return "", lr.err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-lr.lines:
		if ok {
			return line, nil
		}
		select {
		case lr.err = <-lr.errc:
		default:
			lr.err = ctx.Err()
		}
		return "", lr.err
	}
}
