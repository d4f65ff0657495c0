// Package refcode builds the public tracking codes handed to senders and receivers.
//
// A code is PREFIX + 4 hour-bucket symbols + 10 random symbols, all drawn from the
// Crockford base32 alphabet. The hour bucket lets operators roughly order codes
// without exposing exact creation times; the 50 random bits keep codes from being
// enumerable through the public tracking endpoint.
package refcode

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"

	"github.com/SscSPs/hawala_settlement/internal/core/domain"
	"github.com/SscSPs/hawala_settlement/internal/utils"
)

const (
	// Alphabet is Crockford base32: no I, L, O or U.
	Alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

	DefaultPrefix = "HW"
	TimeLength    = 4
	RandomLength  = 10
)

// Generator produces reference codes. It is safe for concurrent use when the
// configured random source is (crypto/rand.Reader is).
type Generator struct {
	prefix string
	random io.Reader
	clock  domain.Clock
}

// Option customizes a Generator.
type Option func(*Generator)

// WithPrefix overrides DefaultPrefix. The prefix is upper-cased.
func WithPrefix(prefix string) Option {
	return func(g *Generator) {
		g.prefix = strings.ToUpper(prefix)
	}
}

// WithRandomSource injects the entropy source, mainly for deterministic tests.
func WithRandomSource(r io.Reader) Option {
	return func(g *Generator) {
		g.random = r
	}
}

// WithClock injects the time source used for the hour bucket.
func WithClock(clock domain.Clock) Option {
	return func(g *Generator) {
		g.clock = clock
	}
}

// New returns a Generator backed by crypto/rand unless overridden.
func New(opts ...Option) (*Generator, error) {
	g := &Generator{
		prefix: DefaultPrefix,
		random: rand.Reader,
		clock:  domain.SystemClock,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.prefix == "" {
		return nil, fmt.Errorf("reference code prefix must not be empty")
	}
	for _, r := range g.prefix {
		if r < 'A' || r > 'Z' {
			return nil, fmt.Errorf("reference code prefix %q must be alphabetic", g.prefix)
		}
	}
	return g, nil
}

// Length is the fixed length of every generated code.
func (g *Generator) Length() int {
	return len(g.prefix) + TimeLength + RandomLength
}

// Prefix returns the configured prefix.
func (g *Generator) Prefix() string {
	return g.prefix
}

// Generate returns a fresh code.
func (g *Generator) Generate() (string, error) {
	suffix, err := utils.RandomFromAlphabet(g.random, Alphabet, RandomLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate reference code: %w", err)
	}

	var b strings.Builder
	b.Grow(g.Length())
	b.WriteString(g.prefix)
	b.WriteString(hourBucket(g.clock()))
	b.WriteString(suffix)
	return b.String(), nil
}

// Valid reports whether code has this generator's exact format.
func (g *Generator) Valid(code string) bool {
	if len(code) != g.Length() || !strings.HasPrefix(code, g.prefix) {
		return false
	}
	for i := len(g.prefix); i < len(code); i++ {
		if strings.IndexByte(Alphabet, code[i]) < 0 {
			return false
		}
	}
	return true
}

// Normalize strips all whitespace and upper-cases code, so " hw01 ab.. " matches.
func Normalize(code string) string {
	return strings.ToUpper(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, code))
}

// hourBucket encodes hours since the Unix epoch, wrapped to TimeLength symbols.
func hourBucket(t time.Time) string {
	hours := uint64(t.Unix() / 3600)
	buf := make([]byte, TimeLength)
	for i := TimeLength - 1; i >= 0; i-- {
		buf[i] = Alphabet[hours%32]
		hours /= 32
	}
	return string(buf)
}
