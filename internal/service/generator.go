package service

import (
	"errors"
	"fmt"

	"github.com/vaultpass/passgen-go/internal/generator"
	"github.com/vaultpass/passgen-go/internal/model"
)

var ErrLengthOutOfRange = fmt.Errorf("password length must be between %d and %d", generator.MinLength, generator.MaxLength)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	gen      *generator.Generator
	defaults generator.Configuration
}

// NewGeneratorService creates a new GeneratorService. A nil gen uses crypto/rand.
func NewGeneratorService(gen *generator.Generator, defaults generator.Configuration) *GeneratorService {
	if gen == nil {
		gen = generator.NewGenerator(nil)
	}
	return &GeneratorService{gen: gen, defaults: defaults}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	cfg := generator.Configuration{
		Length:         req.Length,
		IncludeDigits:  req.Numbers,
		IncludeSymbols: req.Symbols,
	}

	if cfg.Length == 0 {
		cfg.Length = s.defaults.Length
	}
	if cfg.Length < generator.MinLength || cfg.Length > generator.MaxLength {
		return model.GenerateResponse{}, ErrLengthOutOfRange
	}

	password, err := s.gen.Generate(cfg)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password:     password,
		Length:       len(password),
		AlphabetSize: len(generator.Alphabet(cfg)),
	}, nil
}

// IsValidationError reports whether err was caused by the request rather than the server.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrLengthOutOfRange)
}
