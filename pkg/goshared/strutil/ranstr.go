// Package strutil holds small string helpers: random strings, truncation and
// human-readable durations.
package strutil

import (
	"iter"
	"math/rand/v2"
)

// Character sets for RanStr.
const (
	AlphanumericChars    = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	AlphanumericExtChars = AlphanumericChars + "!#$%&()*+,-./:;<=>?@[]^_{|}~"
)

// RanOption configures RanStr and RanStrSeq.
type RanOption func(*ranConfig)

type ranConfig struct {
	maxLen int
	chars  []rune
}

// WithMaxLen picks the length uniformly from [minLen, n]. Values below
// minLen are ignored.
func WithMaxLen(n int) RanOption {
	return func(c *ranConfig) { c.maxLen = n }
}

// WithChars sets the characters to draw from. Default: AlphanumericChars.
func WithChars(chars string) RanOption {
	return func(c *ranConfig) {
		if chars != "" {
			c.chars = []rune(chars)
		}
	}
}

// RanStrSeq yields random characters. The length is minLen, or a random
// length in [minLen, max] when WithMaxLen is given.
func RanStrSeq(minLen int, opts ...RanOption) iter.Seq[rune] {
	cfg := ranConfig{chars: []rune(AlphanumericChars)}
	for _, opt := range opts {
		opt(&cfg)
	}

	n := max(minLen, 0)
	if cfg.maxLen > n {
		n += rand.IntN(cfg.maxLen - n + 1)
	}

	return func(yield func(rune) bool) {
		for range n {
			if !yield(cfg.chars[rand.IntN(len(cfg.chars))]) {
				return
			}
		}
	}
}

// RanStr returns a random string of minLen characters, or between minLen and
// the WithMaxLen bound.
func RanStr(minLen int, opts ...RanOption) string {
	var out []rune
	for r := range RanStrSeq(minLen, opts...) {
		out = append(out, r)
	}
	return string(out)
}
