package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

const (
	Letters = "QWERTYUIOPASDFGHJKLZXCVBNMqwertyuiopasdfghjklzxcvbnm"
	Digits  = "0123456789"
	Symbols = "!@#$%&"

	MinLength     = 6
	MaxLength     = 100
	DefaultLength = 8
)

var ErrEntropy = errors.New("entropy source failed")

// Configuration holds the user-editable generation parameters.
type Configuration struct {
	Length         int
	IncludeDigits  bool
	IncludeSymbols bool
}

// DefaultConfiguration returns the values the widget starts with: 8 letters only.
func DefaultConfiguration() Configuration {
	return Configuration{Length: DefaultLength}
}

// ClampLength bounds n to [MinLength, MaxLength].
func ClampLength(n int) int {
	if n < MinLength {
		return MinLength
	}
	if n > MaxLength {
		return MaxLength
	}
	return n
}

// Alphabet returns the characters eligible for sampling under cfg.
// Letters always come first, then digits, then symbols.
func Alphabet(cfg Configuration) string {
	alphabet := Letters
	if cfg.IncludeDigits {
		alphabet += Digits
	}
	if cfg.IncludeSymbols {
		alphabet += Symbols
	}
	return alphabet
}

// Source yields uniform integers in [0, n).
type Source interface {
	Intn(n int) (int, error)
}

// CryptoSource draws from crypto/rand.
type CryptoSource struct{}

// Intn returns a uniform random int in [0, n) using crypto/rand.
func (CryptoSource) Intn(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// Generator samples passwords from a Source.
type Generator struct {
	src Source
}

// NewGenerator creates a Generator. A nil src falls back to CryptoSource.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = CryptoSource{}
	}
	return &Generator{src: src}
}

// Generate draws cfg.Length characters independently and uniformly from the
// alphabet's character slots. A length below 1 yields an empty string.
// Nothing guarantees that every enabled class appears in the result.
func (g *Generator) Generate(cfg Configuration) (string, error) {
	alphabet := Alphabet(cfg)
	if cfg.Length < 1 {
		return "", nil
	}

	var sb strings.Builder
	sb.Grow(cfg.Length)

	for i := 0; i < cfg.Length; i++ {
		idx, err := g.src.Intn(len(alphabet))
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrEntropy, err)
		}
		sb.WriteByte(alphabet[idx])
	}

	return sb.String(), nil
}

var defaultGenerator = NewGenerator(nil)

// Generate creates a password for cfg using crypto/rand.
func Generate(cfg Configuration) (string, error) {
	return defaultGenerator.Generate(cfg)
}
