package strutil

// TruncOption configures TruncStr.
type TruncOption func(*truncConfig)

type truncConfig struct {
	start    int
	end      int
	ellipsis string
}

// WithStart sets how many leading characters stay visible. Default: 3.
func WithStart(n int) TruncOption {
	return func(c *truncConfig) { c.start = max(n, 0) }
}

// WithEnd sets how many trailing characters stay visible. Default: 0.
func WithEnd(n int) TruncOption {
	return func(c *truncConfig) { c.end = max(n, 0) }
}

// WithEllipsis sets the marker placed where text was cut. Default: "...".
func WithEllipsis(s string) TruncOption {
	return func(c *truncConfig) { c.ellipsis = s }
}

// TruncStr shortens text to its first start characters, the ellipsis and
// its last end characters. Text no longer than start is returned as-is.
//
//	TruncStr("abcdefghijklmnopqrstuvwxyz", WithStart(5), WithEllipsis(""), WithEnd(5))
//	// "abcdevwxyz"
func TruncStr(text string, opts ...TruncOption) string {
	cfg := truncConfig{start: 3, ellipsis: "..."}
	for _, opt := range opts {
		opt(&cfg)
	}

	runes := []rune(text)
	if len(runes) <= cfg.start {
		return text
	}

	out := string(runes[:cfg.start]) + cfg.ellipsis
	if cfg.end > 0 {
		out += string(runes[max(len(runes)-cfg.end, 0):])
	}
	return out
}
