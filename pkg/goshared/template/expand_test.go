package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExpand_BraceStyle tests ${var} pattern expansion.
func TestExpand_BraceStyle(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		vars     map[string]any
		expected string
	}{
		{"simple variable", "Hello ${name}", map[string]any{"name": "World"}, "Hello World"},
		{"adjacent variables", "${a}${b}${c}", map[string]any{"a": "1", "b": "2", "c": "3"}, "123"},
		{"numeric value", "port: ${port}", map[string]any{"port": 8080}, "port: 8080"},
		{"boolean value", "enabled: ${enabled}", map[string]any{"enabled": true}, "enabled: true"},
		{"underscore in name", "${my_var}", map[string]any{"my_var": "value"}, "value"},
		{"missing kept", "Hello ${missing}", nil, "Hello ${missing}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Expand(tt.input, tt.vars))
		})
	}
}

// TestExpand_DollarStyle tests $var pattern expansion.
func TestExpand_DollarStyle(t *testing.T) {
	vars := map[string]any{"port": "8080", "portNumber": "9090", "name": "World"}

	assert.Equal(t, "World!", Expand("$name!", vars))
	assert.Equal(t, "8080 is different from 9090", Expand("$port is different from $portNumber", vars))
}

func TestExpand_MissingActions(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		exp := NewExpander(WithMissingAction(MissingEmpty))
		result, err := exp.Expand("Hello ${missing}!", nil)
		require.NoError(t, err)
		assert.Equal(t, "Hello !", result)
	})

	t.Run("error", func(t *testing.T) {
		exp := NewExpander(WithMissingAction(MissingError))
		_, err := exp.Expand("${a} ${b}", nil)
		require.Error(t, err)

		var undefined *UndefinedVariableError
		require.ErrorAs(t, err, &undefined)
		assert.Equal(t, []string{"a", "b"}, undefined.Names)
		assert.Equal(t, "undefined variables: a, b", err.Error())
	})
}

func TestExpand_DisabledStyles(t *testing.T) {
	exp := NewExpander(WithBraceStyle(false), WithDollarStyle(false))
	result, err := exp.Expand("${name} $name {name}", map[string]any{"name": "x"})
	require.NoError(t, err)
	assert.Equal(t, "${name} $name {name}", result)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		tmpl     string
		vars     map[string]any
		expected string
	}{
		{
			name:     "angle form",
			tmpl:     "<{obj_name} {attributes}>",
			vars:     map[string]any{"obj_name": "Point", "attributes": "X=1, Y=2"},
			expected: "<Point X=1, Y=2>",
		},
		{
			name:     "constructor form",
			tmpl:     "{obj_name}({attributes})",
			vars:     map[string]any{"obj_name": "Point", "attributes": "X=1"},
			expected: "Point(X=1)",
		},
		{
			name:     "escaped braces",
			tmpl:     "{{{attr_name}}}",
			vars:     map[string]any{"attr_name": "a"},
			expected: "{a}",
		},
		{
			name:     "values with braces are not rescanned",
			tmpl:     "{attr_name}={attr_repr}",
			vars:     map[string]any{"attr_name": "m", "attr_repr": "{\"k\": {x}}"},
			expected: "m={\"k\": {x}}",
		},
		{
			name:     "dollar signs are literal",
			tmpl:     "${attr_name}",
			vars:     map[string]any{"attr_name": "a"},
			expected: "$a",
		},
		{
			name:     "empty",
			tmpl:     "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.tmpl, tt.vars)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormat_Errors(t *testing.T) {
	t.Run("unknown placeholder", func(t *testing.T) {
		_, err := Format("{nope}", map[string]any{"obj_name": "x"})
		var undefined *UndefinedVariableError
		require.ErrorAs(t, err, &undefined)
		assert.Equal(t, []string{"nope"}, undefined.Names)
	})

	for _, tmpl := range []string{"<{obj_name", "obj}", "{}", "{bad name}", "{1x}"} {
		t.Run("syntax "+tmpl, func(t *testing.T) {
			_, err := Format(tmpl, map[string]any{"obj_name": "x"})
			var syntax *SyntaxError
			require.ErrorAs(t, err, &syntax)
			assert.Equal(t, tmpl, syntax.Template)
		})
	}
}

func TestFormat_MissingKeep(t *testing.T) {
	f := NewFormatter(WithMissingAction(MissingKeep))
	got, err := f.Expand("{a}-{b}", map[string]any{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, "1-{b}", got)
}

func TestMustExpand(t *testing.T) {
	exp := NewExpander(WithMissingAction(MissingError))
	assert.Equal(t, "ok", exp.MustExpand("${v}", map[string]any{"v": "ok"}))
	assert.Panics(t, func() { exp.MustExpand("${missing}", nil) })
}

func TestExpandAll(t *testing.T) {
	exp := NewExpander()
	got, err := exp.ExpandAll([]string{"${a}", "$b"}, map[string]any{"a": 1, "b": 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, got)

	got, err = exp.ExpandAll(nil, nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestExpandMap(t *testing.T) {
	vars := map[string]any{"env": "prod"}
	got := ExpandMap(map[string]any{
		"url":  "https://${env}.api.com",
		"port": 8080,
		"nested": map[string]any{
			"path": "/api/${env}",
		},
		"hosts": []any{"${env}-a", 3},
	}, vars)

	assert.Equal(t, "https://prod.api.com", got["url"])
	assert.Equal(t, 8080, got["port"])
	assert.Equal(t, "/api/prod", got["nested"].(map[string]any)["path"])
	assert.Equal(t, []any{"prod-a", 3}, got["hosts"])
}
