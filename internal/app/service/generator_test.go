package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeGenerator_Length(t *testing.T) {
	gen := NewCodeGenerator(8)

	for i := 0; i < 100; i++ {
		assert.Len(t, gen.Generate(), 8)
	}
}

func TestCodeGenerator_Alphabet(t *testing.T) {
	gen := NewCodeGenerator(14)

	for i := 0; i < 100; i++ {
		code := gen.Generate()
		for _, c := range code {
			assert.True(t, strings.ContainsRune(codeAlphabet, c), "unexpected character %q in %q", c, code)
		}
	}
}

func TestCodeGenerator_Distinct(t *testing.T) {
	gen := NewCodeGenerator(8)

	seen := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		code := gen.Generate()
		assert.False(t, seen[code], "duplicate code %q after %d generations", code, i)
		seen[code] = true
	}
}
