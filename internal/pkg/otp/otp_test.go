package otp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlphanumericGenerate(t *testing.T) {
	t.Run("DefaultLength", func(t *testing.T) {
		gen := NewAlphanumeric(0, nil)

		code := gen.Generate("628111111111")

		assert.Len(t, code, DefaultLength)
	})

	t.Run("CustomLength", func(t *testing.T) {
		gen := NewAlphanumeric(6, nil)

		code := gen.Generate("628111111111")

		assert.Len(t, code, 6)
	})

	t.Run("AlphabetOnly", func(t *testing.T) {
		gen := NewAlphanumeric(64, nil)

		code := gen.Generate("628111111111")

		for _, r := range code {
			assert.True(t, strings.ContainsRune(alphabet, r), "unexpected rune %q", r)
		}
	})

	t.Run("Randomized", func(t *testing.T) {
		gen := NewAlphanumeric(10, nil)

		first := gen.Generate("628111111111")
		second := gen.Generate("628111111111")

		assert.NotEqual(t, first, second)
	})

	t.Run("Override", func(t *testing.T) {
		gen := NewAlphanumeric(10, map[string]string{"628999999999": "fixedcode1"})

		assert.Equal(t, "fixedcode1", gen.Generate("628999999999"))
		assert.NotEqual(t, "fixedcode1", gen.Generate("628111111111"))
	})
}
