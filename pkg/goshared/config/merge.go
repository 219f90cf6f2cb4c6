package config

import "github.com/randalmurphal/goshared/pkg/goshared/template"

// Merge returns a new Config with the overlays applied over base in order.
// Nested maps are merged key by key; any other value in a later overlay
// replaces the earlier one. The inputs are not modified.
func Merge(base Config, overlays ...Config) Config {
	out := cloneMap(base.data)
	for _, o := range overlays {
		mergeInto(out, o.data)
	}
	return New(out)
}

func mergeInto(dst, src map[string]any) {
	for k, v := range src {
		srcMap, srcIsMap := v.(map[string]any)
		dstMap, dstIsMap := dst[k].(map[string]any)
		if srcIsMap && dstIsMap {
			merged := cloneMap(dstMap)
			mergeInto(merged, srcMap)
			dst[k] = merged
			continue
		}
		if srcIsMap {
			dst[k] = cloneMap(srcMap)
			continue
		}
		dst[k] = v
	}
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if nested, ok := v.(map[string]any); ok {
			out[k] = cloneMap(nested)
			continue
		}
		out[k] = v
	}
	return out
}

// Expand returns a copy of c with ${var} and $var references in string
// values replaced from vars, recursing into nested maps and lists.
// Unknown references are left as written.
func (c Config) Expand(vars map[string]any) Config {
	return New(template.ExpandMap(c.data, vars))
}
