package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"0.0", true},
		{".0", true},
		{"123.3", true},
		{"00.001", true},
		{"123.", false},
		{"0.", false},
		{".", false},
		{"", false},
		{"123", false},
		{"1.2.3", false},
		{"-1.5", false},
		{"+1.5", false},
		{"1e5", false},
		{"1.5e3", false},
		{" 1.5", false},
		{"1,5", false},
		{"a.5", false},
		{"5.a", false},
		{"١.٢", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDecimal(tt.in))
		})
	}
}

func TestInfer(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"TRUE", true},
		{"False", false},
		{"yes", "yes"},
		{"on", "on"},
		{"007", 7},
		{"99999999999999999999999", "99999999999999999999999"},
		{"1.25", 1.25},
		{"1_000", "1_000"},
		{"0x10", "0x10"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Infer(tt.in))
		})
	}
}

func TestParseBoolErrorHasNoName(t *testing.T) {
	_, err := ParseBool("nah")
	assert.EqualError(t, err, `env: invalid boolean value: "nah"`)
}

func TestTargetName(t *testing.T) {
	assert.Equal(t, "int", targetName(Int))
	assert.Equal(t, "time.Duration", targetName(Duration))
	assert.Equal(t, "override type", targetName(CoercerFunc(func(string) (any, error) { return nil, nil })))
}
