package refcode_test

import (
	"bytes"
	"regexp"
	"testing"
	"time"

	"github.com/SscSPs/hawala_settlement/internal/utils/refcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var codeFormat = regexp.MustCompile(`^HW[0-9A-HJKMNP-TV-Z]{14}$`)

func TestGenerate_NoCollisionsAndWellFormed(t *testing.T) {
	g, err := refcode.New()
	require.NoError(t, err)

	const n = 100000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		code, err := g.Generate()
		require.NoError(t, err)
		require.Regexp(t, codeFormat, code)
		require.True(t, g.Valid(code))
		_, dup := seen[code]
		require.False(t, dup, "collision on %s after %d codes", code, i)
		seen[code] = struct{}{}
	}
	assert.Len(t, seen, n)
}

func TestGenerate_DeterministicWithInjectedSources(t *testing.T) {
	fixed := time.Unix(0, 0).Add(33 * time.Hour) // hour bucket 33 -> "0011"
	random := bytes.NewReader([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 31})

	g, err := refcode.New(
		refcode.WithRandomSource(random),
		refcode.WithClock(func() time.Time { return fixed }),
	)
	require.NoError(t, err)

	code, err := g.Generate()
	require.NoError(t, err)
	assert.Equal(t, "HW0011012345678Z", code)
	assert.Equal(t, 16, g.Length())
}

func TestGenerate_RandomSourceExhausted(t *testing.T) {
	g, err := refcode.New(refcode.WithRandomSource(bytes.NewReader([]byte{1, 2})))
	require.NoError(t, err)

	_, err = g.Generate()
	assert.Error(t, err)
}

func TestNew_RejectsBadPrefix(t *testing.T) {
	_, err := refcode.New(refcode.WithPrefix(""))
	assert.Error(t, err)

	_, err = refcode.New(refcode.WithPrefix("H1"))
	assert.Error(t, err)

	g, err := refcode.New(refcode.WithPrefix("hwl"))
	require.NoError(t, err)
	assert.Equal(t, "HWL", g.Prefix())
	assert.Equal(t, 17, g.Length())
}

func TestNormalizeAndValid(t *testing.T) {
	g, err := refcode.New()
	require.NoError(t, err)

	assert.Equal(t, "HW00110123456789", refcode.Normalize("  hw0011 0123\t456789\n"))
	assert.True(t, g.Valid("HW00110123456789"))
	assert.False(t, g.Valid("NONEXISTENT"))
	assert.False(t, g.Valid("HW0011012345678I"), "I is not in the alphabet")
	assert.False(t, g.Valid("XX00110123456789"))
	assert.False(t, g.Valid("hw00110123456789"))
}
