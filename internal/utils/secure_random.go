package utils

import (
	"fmt"
	"io"
)

// RandomFromAlphabet draws n symbols of alphabet from source without modulo bias.
// Bytes that would bias the distribution are discarded and redrawn.
func RandomFromAlphabet(source io.Reader, alphabet string, n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("n must be positive")
	}
	size := len(alphabet)
	if size == 0 || size > 256 {
		return "", fmt.Errorf("alphabet must hold between 1 and 256 symbols")
	}
	limit := 256 - (256 % size)

	out := make([]byte, 0, n)
	buf := make([]byte, n)
	for len(out) < n {
		if _, err := io.ReadFull(source, buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			out = append(out, alphabet[int(b)%size])
			if len(out) == n {
				break
			}
		}
	}
	return string(out), nil
}
