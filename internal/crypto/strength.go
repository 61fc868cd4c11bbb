package crypto

import (
	"errors"
	"math"
	"math/big"
	"unicode/utf8"
)

var ErrEmptyPassword = errors.New("password must not be empty")

// Strength is the qualitative label attached to a report.
type Strength string

const (
	StrengthWeak     Strength = "weak"
	StrengthModerate Strength = "moderate"
	StrengthStrong   Strength = "strong"
)

// StrengthPolicy holds the label thresholds. Both tiers require a minimum
// length and category count, so raising either never lowers the label.
type StrengthPolicy struct {
	ModerateLength     int
	ModerateCategories int
	StrongLength       int
	StrongCategories   int
}

// DefaultStrengthPolicy: strong at 4 categories and 16+ characters, moderate
// at 2+ categories and 12+ characters, weak otherwise.
func DefaultStrengthPolicy() StrengthPolicy {
	return StrengthPolicy{
		ModerateLength:     12,
		ModerateCategories: 2,
		StrongLength:       16,
		StrongCategories:   4,
	}
}

// Label classifies a password by its length and category count.
func (p StrengthPolicy) Label(length, categories int) Strength {
	switch {
	case categories >= p.StrongCategories && length >= p.StrongLength:
		return StrengthStrong
	case categories >= p.ModerateCategories && length >= p.ModerateLength:
		return StrengthModerate
	default:
		return StrengthWeak
	}
}

// StrengthReport is the result of analyzing one password.
type StrengthReport struct {
	Length        int
	Lowercase     bool
	Uppercase     bool
	Digits        bool
	Special       bool
	CategoryCount int
	// OtherChars counts distinct characters outside every category pool.
	OtherChars int
	PoolSize   int
	Keyspace   *big.Int
	Label      Strength
}

// EntropyBits returns log2 of the keyspace.
func (r StrengthReport) EntropyBits() float64 {
	if r.PoolSize == 0 {
		return 0
	}
	return float64(r.Length) * math.Log2(float64(r.PoolSize))
}

// Analyzer estimates password strength against the same category pools the
// generator draws from.
type Analyzer struct {
	alphabet Alphabet
	policy   StrengthPolicy
}

// NewAnalyzer returns an Analyzer for the given alphabet and policy.
func NewAnalyzer(a Alphabet, p StrengthPolicy) *Analyzer {
	return &Analyzer{alphabet: a, policy: p}
}

// Analyze reports category coverage, pool size, keyspace and a label. The
// pool only includes categories observed in the password, plus any distinct
// characters that fall outside all categories.
func (a *Analyzer) Analyze(password string) (StrengthReport, error) {
	if password == "" {
		return StrengthReport{}, ErrEmptyPassword
	}

	present := make(map[Category]bool, len(Categories))
	other := make(map[rune]struct{})
	for _, r := range password {
		if c, ok := a.alphabet.CategoryOf(r); ok {
			present[c] = true
			continue
		}
		other[r] = struct{}{}
	}

	report := StrengthReport{
		Length:     utf8.RuneCountInString(password),
		Lowercase:  present[Lowercase],
		Uppercase:  present[Uppercase],
		Digits:     present[Digit],
		Special:    present[Special],
		OtherChars: len(other),
	}

	for _, c := range Categories {
		if present[c] {
			report.CategoryCount++
			report.PoolSize += utf8.RuneCountInString(a.alphabet.Pool(c))
		}
	}
	report.PoolSize += report.OtherChars

	report.Keyspace = new(big.Int).Exp(big.NewInt(int64(report.PoolSize)), big.NewInt(int64(report.Length)), nil)
	report.Label = a.policy.Label(report.Length, report.CategoryCount)

	return report, nil
}

// Analyze runs the default analyzer.
func Analyze(password string) (StrengthReport, error) {
	return NewAnalyzer(DefaultAlphabet(), DefaultStrengthPolicy()).Analyze(password)
}
