package auth

import (
	"strings"
	"testing"

	"medrep/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordGenerator_Generate(t *testing.T) {
	gen := NewPasswordGenerator(&config.Config{Auth: &config.AuthConfig{TempPasswordLength: 16}})

	first, err := gen.Generate()
	require.NoError(t, err)
	second, err := gen.Generate()
	require.NoError(t, err)

	assert.Len(t, first, 16)
	assert.NotEqual(t, first, second)
	for _, r := range first {
		assert.True(t, strings.ContainsRune(tempPasswordCharset, r))
	}
}

func TestPasswordGenerator_DefaultLength(t *testing.T) {
	gen := NewPasswordGenerator(nil)

	pw, err := gen.Generate()
	require.NoError(t, err)
	assert.Len(t, pw, 12)
}
