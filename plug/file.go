package plug

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"
)

// ReadFile reads the entire named file as text.
// The name "-" reads standard input.
func ReadFile(ctx context.Context, name string) (string, error) {
	if name == "-" {
		return Read(ctx, os.Stdin)
	}

	f, err := os.Open(name)
	if err != nil {
		return "", err
	}
	defer f.Close()

	return Read(ctx, f)
}

// Read reads r to the end in chunks, stopping early if ctx is done.
func Read(ctx context.Context, r io.Reader) (string, error) {
	br := bufio.NewReader(r)
	buf := make([]byte, 32*1024)

	var sb strings.Builder
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
			n, err := br.Read(buf)
			if n > 0 {
				sb.Write(buf[:n])
			}
			if err != nil {
				if err == io.EOF {
					return sb.String(), nil
				}
				return "", err
			}
		}
	}
}
