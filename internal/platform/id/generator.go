package id

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Generator creates opaque IDs suitable for external references.
type Generator interface {
	NewID() (string, error)
}

// PrefixedGenerator issues random UUIDv4 values, optionally prefixed
// with a short resource tag such as "fx" or "pl".
type PrefixedGenerator struct {
	prefix string
}

func NewRandomGenerator() *PrefixedGenerator {
	return &PrefixedGenerator{}
}

func NewPrefixedGenerator(prefix string) *PrefixedGenerator {
	return &PrefixedGenerator{prefix: strings.Trim(strings.TrimSpace(prefix), "-")}
}

func (g *PrefixedGenerator) NewID() (string, error) {
	value, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	if g.prefix == "" {
		return value.String(), nil
	}
	return g.prefix + "-" + value.String(), nil
}
