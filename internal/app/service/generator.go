// Package service holds the shortening, redirect and admin services built on
// top of the mapping store.
package service

import "crypto/rand"

// codeAlphabet has 64 URL-safe characters, so a random byte maps onto it
// without modulo bias.
const codeAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ-_"

// CodeGenerator produces random short codes. It does not check the store for
// uniqueness; the store's unique key does, and the shortener retries.
type CodeGenerator struct {
	length int
}

func NewCodeGenerator(length int) *CodeGenerator {
	return &CodeGenerator{length: length}
}

func (g *CodeGenerator) Generate() string {
	b := make([]byte, g.length)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing means the platform entropy source is broken.
		panic(err)
	}

	for i, v := range b {
		b[i] = codeAlphabet[int(v)%len(codeAlphabet)]
	}
	return string(b)
}
