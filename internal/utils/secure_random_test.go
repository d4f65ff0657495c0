package utils

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomFromAlphabet_Deterministic(t *testing.T) {
	source := bytes.NewReader([]byte{0, 1, 2, 31, 32, 33})
	s, err := RandomFromAlphabet(source, "0123456789ABCDEFGHJKMNPQRSTVWXYZ", 6)
	require.NoError(t, err)
	assert.Equal(t, "012Z01", s)
}

func TestRandomFromAlphabet_DiscardsBiasedBytes(t *testing.T) {
	// 256 % 10 == 6, so bytes 250..255 are rejected.
	source := bytes.NewReader([]byte{255, 250, 7, 12, 0, 0})
	s, err := RandomFromAlphabet(source, "0123456789", 2)
	require.NoError(t, err)
	assert.Equal(t, "72", s)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy pool empty") }

func TestRandomFromAlphabet_ReaderFailure(t *testing.T) {
	_, err := RandomFromAlphabet(failingReader{}, "AB", 4)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "entropy pool empty"))
}
