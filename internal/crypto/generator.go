package crypto

import (
	"errors"
	"fmt"
)

const (
	MinLength     = 8
	MaxLength     = 128
	DefaultLength = 16
)

var ErrLengthTooShortForCategories = errors.New("password length is shorter than the number of required character categories")

// LengthPolicy bounds the accepted password length.
type LengthPolicy struct {
	Min     int
	Max     int
	Default int
}

// DefaultLengthPolicy returns the 8..128 range with a default of 16.
func DefaultLengthPolicy() LengthPolicy {
	return LengthPolicy{Min: MinLength, Max: MaxLength, Default: DefaultLength}
}

// Validate returns requested when it lies within [Min, Max]. Anything else is
// replaced by Default, and corrected reports the substitution.
func (p LengthPolicy) Validate(requested int) (length int, corrected bool) {
	if requested >= p.Min && requested <= p.Max {
		return requested, false
	}
	return p.Default, true
}

// Notice describes a length substitution for display to the user.
func (p LengthPolicy) Notice(requested int) string {
	return fmt.Sprintf("password length %d is outside the valid range %d-%d; using default length %d",
		requested, p.Min, p.Max, p.Default)
}

// GeneratorOptions configures a single generation.
type GeneratorOptions struct {
	Length    int
	Uppercase bool
	Special   bool
	Numbers   bool
}

// DefaultOptions returns 16 lowercase-only characters.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{Length: DefaultLength}
}

// Generator produces passwords containing at least one character from every
// enabled category.
type Generator struct {
	alphabet Alphabet
	lengths  LengthPolicy
	src      RandomSource
	onAdjust func(requested int, policy LengthPolicy)
}

// GeneratorOption customizes a Generator.
type GeneratorOption func(*Generator)

// WithAlphabet replaces the category pools.
func WithAlphabet(a Alphabet) GeneratorOption {
	return func(g *Generator) { g.alphabet = a }
}

// WithLengthPolicy replaces the length bounds.
func WithLengthPolicy(p LengthPolicy) GeneratorOption {
	return func(g *Generator) { g.lengths = p }
}

// WithRandomSource replaces crypto/rand, mainly for tests.
func WithRandomSource(src RandomSource) GeneratorOption {
	return func(g *Generator) { g.src = src }
}

// WithLengthNotice registers a callback invoked whenever a requested length is
// replaced by the policy default.
func WithLengthNotice(fn func(requested int, policy LengthPolicy)) GeneratorOption {
	return func(g *Generator) { g.onAdjust = fn }
}

// NewGenerator returns a Generator using the default alphabet, length policy
// and crypto/rand unless overridden.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		alphabet: DefaultAlphabet(),
		lengths:  DefaultLengthPolicy(),
		src:      SecureSource{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ValidateLength applies the generator's length policy, firing the notice
// callback on substitution.
func (g *Generator) ValidateLength(requested int) int {
	length, corrected := g.lengths.Validate(requested)
	if corrected && g.onAdjust != nil {
		g.onAdjust(requested, g.lengths)
	}
	return length
}

// Generate creates a password: one mandatory draw per enabled category from
// that category's own pool, the rest from the merged pool, then a full
// Fisher-Yates shuffle.
func (g *Generator) Generate(opts GeneratorOptions) (string, error) {
	length := g.ValidateLength(opts.Length)

	cs, err := BuildCharset(g.alphabet, opts.Uppercase, opts.Special, opts.Numbers)
	if err != nil {
		return "", err
	}

	pools := cs.Pools()
	if length < len(pools) {
		return "", ErrLengthTooShortForCategories
	}

	result := make([]rune, 0, length)

	for _, pool := range pools {
		ch, err := randChar(g.src, []rune(pool))
		if err != nil {
			return "", err
		}
		result = append(result, ch)
	}

	merged := cs.Chars()
	for len(result) < length {
		ch, err := randChar(g.src, merged)
		if err != nil {
			return "", err
		}
		result = append(result, ch)
	}

	if err := shuffle(g.src, result); err != nil {
		return "", err
	}

	return string(result), nil
}

// Generate creates a password with the default generator.
func Generate(opts GeneratorOptions) (string, error) {
	return NewGenerator().Generate(opts)
}
