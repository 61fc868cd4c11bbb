package service

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
)

// MaxCount bounds how many passwords one request may produce.
const MaxCount = 100

var ErrCountTooLarge = fmt.Errorf("count must be at most %d", MaxCount)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	notices io.Writer
	hasher  *crypto.Hasher
	opts    []crypto.GeneratorOption
}

// NewGeneratorService creates a new GeneratorService. Length notices are
// written to notices; extra options are passed to every generator it builds.
func NewGeneratorService(notices io.Writer, opts ...crypto.GeneratorOption) *GeneratorService {
	if notices == nil {
		notices = io.Discard
	}
	return &GeneratorService{
		notices: notices,
		hasher:  crypto.NewHasher(crypto.DefaultHashParams(), nil),
		opts:    opts,
	}
}

// WithHasher replaces the argon2id hasher used when a request asks for hashes.
func (s *GeneratorService) WithHasher(h *crypto.Hasher) *GeneratorService {
	s.hasher = h
	return s
}

// Generate produces req.Count passwords (at least one).
func (s *GeneratorService) Generate(req model.GenerationRequest) (model.GenerateResponse, error) {
	count := req.Count
	if count < 1 {
		count = 1
	}
	if count > MaxCount {
		return model.GenerateResponse{}, ErrCountTooLarge
	}

	var adjusted bool
	opts := append([]crypto.GeneratorOption{
		crypto.WithLengthNotice(func(requested int, p crypto.LengthPolicy) {
			adjusted = true
			slog.Debug("password length replaced by default",
				"requested", requested, "min", p.Min, "max", p.Max, "default", p.Default)
			fmt.Fprintln(s.notices, p.Notice(requested))
		}),
	}, s.opts...)
	g := crypto.NewGenerator(opts...)

	length := g.ValidateLength(req.Length)
	genOpts := crypto.GeneratorOptions{
		Length:    length,
		Uppercase: req.Uppercase,
		Special:   req.Special,
		Numbers:   req.Numbers,
	}

	resp := model.GenerateResponse{
		Passwords: make([]model.GeneratedPassword, 0, count),
		Length:    length,
		Adjusted:  adjusted,
	}
	for i := 0; i < count; i++ {
		password, err := g.Generate(genOpts)
		if err != nil {
			return model.GenerateResponse{}, fmt.Errorf("generating password: %w", err)
		}

		entry := model.GeneratedPassword{Password: password}
		if req.Hash {
			entry.Hash, err = s.hasher.Hash(password)
			if err != nil {
				return model.GenerateResponse{}, fmt.Errorf("hashing password: %w", err)
			}
		}
		resp.Passwords = append(resp.Passwords, entry)
	}

	slog.Debug("passwords generated", "count", count, "length", length,
		"uppercase", req.Uppercase, "special", req.Special, "numbers", req.Numbers)

	return resp, nil
}

// IsValidationError reports whether err stems from the request rather than
// from the random source or hasher.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrCountTooLarge) ||
		errors.Is(err, crypto.ErrEmptyCharset) ||
		errors.Is(err, crypto.ErrLengthTooShortForCategories) ||
		errors.Is(err, crypto.ErrEmptyPassword)
}
