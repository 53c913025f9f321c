package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepKeyword(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Given ", "Given"},
		{"  When", "When"},
		{"*", "And"},
		{"* ", "And"},
		{"But", "But"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StepKeyword(tt.in), "keyword %q", tt.in)
	}
}

func TestDescribe(t *testing.T) {
	assert.Nil(t, Describe(""))

	d := Describe("Some text")
	require.NotNil(t, d)
	assert.Equal(t, "Some text", *d)
}
