package repr

// Default templates and separator used by Describe.
const (
	DefaultFormat      = "<{obj_name} {attributes}>"
	ConstructorFormat  = "{obj_name}({attributes})"
	DefaultAttrFormat  = "{attr_name}={attr_repr}"
	DefaultJoin        = ", "
	DefaultMaxDepth    = 8
	truncatedValueText = "..."
)

// Option configures Describe.
type Option func(*config)

type config struct {
	join        string
	attrFormat  string
	format      string
	exclude     map[string]struct{}
	constructor bool
	maxDepth    int
}

func newConfig(opts []Option) *config {
	cfg := &config{
		join:       DefaultJoin,
		attrFormat: DefaultAttrFormat,
		format:     DefaultFormat,
		maxDepth:   DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.constructor {
		cfg.format = ConstructorFormat
	}
	return cfg
}

// WithJoin sets the separator placed between rendered attributes.
//
// Default: ", "
func WithJoin(sep string) Option {
	return func(c *config) {
		c.join = sep
	}
}

// WithAttrFormat sets the per-attribute template. It may reference
// {attr_name} and {attr_repr}.
//
// Default: "{attr_name}={attr_repr}"
func WithAttrFormat(tmpl string) Option {
	return func(c *config) {
		c.attrFormat = tmpl
	}
}

// WithFormat sets the whole-object template. It may reference {obj_name}
// and {attributes}. Ignored when WithConstructorStyle(true) is also given.
//
// Default: "<{obj_name} {attributes}>"
func WithFormat(tmpl string) Option {
	return func(c *config) {
		c.format = tmpl
	}
}

// WithExclude omits the named attributes. May be given more than once.
func WithExclude(names ...string) Option {
	return func(c *config) {
		if c.exclude == nil {
			c.exclude = make(map[string]struct{}, len(names))
		}
		for _, n := range names {
			c.exclude[n] = struct{}{}
		}
	}
}

// WithConstructorStyle renders "{obj_name}({attributes})" instead of the
// angle-bracket form.
func WithConstructorStyle(enabled bool) Option {
	return func(c *config) {
		c.constructor = enabled
	}
}

// WithMaxDepth bounds how deeply nested values are rendered. Values below
// the bound render as "...". Non-positive values keep the default.
//
// Default: 8
func WithMaxDepth(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxDepth = n
		}
	}
}
