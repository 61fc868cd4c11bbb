package crypto

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// scriptedSource replays fixed draws so the generator output is predictable.
type scriptedSource struct {
	vals []int
	pos  int
}

func (s *scriptedSource) Intn(n int) (int, error) {
	if s.pos >= len(s.vals) {
		return 0, fmt.Errorf("scripted source exhausted after %d draws", s.pos)
	}
	v := s.vals[s.pos]
	if v < 0 || v >= n {
		return 0, fmt.Errorf("scripted draw %d = %d out of range [0,%d)", s.pos, v, n)
	}
	s.pos++
	return v, nil
}

type failingSource struct{ err error }

func (f failingSource) Intn(int) (int, error) { return 0, f.err }

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		opts    GeneratorOptions
		wantLen int
	}{
		{name: "default options", opts: DefaultOptions(), wantLen: 16},
		{name: "all options enabled", opts: GeneratorOptions{Length: 32, Uppercase: true, Special: true, Numbers: true}, wantLen: 32},
		{name: "minimum length", opts: GeneratorOptions{Length: MinLength, Uppercase: true, Special: true, Numbers: true}, wantLen: MinLength},
		{name: "maximum length", opts: GeneratorOptions{Length: MaxLength, Uppercase: true}, wantLen: MaxLength},
		{name: "zero length uses default", opts: GeneratorOptions{Length: 0}, wantLen: DefaultLength},
		{name: "just below minimum uses default", opts: GeneratorOptions{Length: 7, Numbers: true}, wantLen: DefaultLength},
		{name: "just above maximum uses default", opts: GeneratorOptions{Length: 129, Special: true}, wantLen: DefaultLength},
		{name: "negative length uses default", opts: GeneratorOptions{Length: -5}, wantLen: DefaultLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Generate(tt.opts)
			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			if got := len([]rune(result)); got != tt.wantLen {
				t.Errorf("Generate() length = %d, want %d", got, tt.wantLen)
			}
		})
	}
}

func TestGenerateEveryValidLength(t *testing.T) {
	for length := MinLength; length <= MaxLength; length++ {
		result, err := Generate(GeneratorOptions{Length: length, Uppercase: true, Special: true, Numbers: true})
		if err != nil {
			t.Fatalf("Generate(%d) unexpected error: %v", length, err)
		}
		if len(result) != length {
			t.Errorf("Generate(%d) length = %d", length, len(result))
		}
	}
}

func TestGenerateContainsRequiredTypes(t *testing.T) {
	for mask := 0; mask < 8; mask++ {
		opts := GeneratorOptions{
			Length:    MinLength,
			Uppercase: mask&1 != 0,
			Special:   mask&2 != 0,
			Numbers:   mask&4 != 0,
		}
		t.Run(fmt.Sprintf("upper=%t,special=%t,numbers=%t", opts.Uppercase, opts.Special, opts.Numbers), func(t *testing.T) {
			for i := 0; i < 1000; i++ {
				password, err := Generate(opts)
				if err != nil {
					t.Fatalf("Generate() unexpected error: %v", err)
				}
				checkCategories(t, password, opts)
			}
		})
	}
}

func checkCategories(t *testing.T, password string, opts GeneratorOptions) {
	t.Helper()
	a := DefaultAlphabet()
	if !strings.ContainsAny(password, a.Lowercase) {
		t.Fatalf("password %q missing lowercase character", password)
	}
	if opts.Uppercase != strings.ContainsAny(password, a.Uppercase) {
		t.Fatalf("password %q uppercase presence = %t, want %t", password, !opts.Uppercase, opts.Uppercase)
	}
	if opts.Special != strings.ContainsAny(password, a.Special) {
		t.Fatalf("password %q special presence = %t, want %t", password, !opts.Special, opts.Special)
	}
	if opts.Numbers != strings.ContainsAny(password, a.Digits) {
		t.Fatalf("password %q digit presence = %t, want %t", password, !opts.Numbers, opts.Numbers)
	}
}

func TestGenerateLowercaseOnlyAtMinimum(t *testing.T) {
	password, err := Generate(GeneratorOptions{Length: 8})
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if len(password) != 8 {
		t.Fatalf("Generate() length = %d, want 8", len(password))
	}
	for _, ch := range password {
		if !strings.ContainsRune(lowercaseChars, ch) {
			t.Errorf("password contains unexpected character %q", string(ch))
		}
	}
}

func TestGenerateScriptedDraws(t *testing.T) {
	src := &scriptedSource{vals: []int{
		1, 0, 0, // mandatory: 'b' from "ab", 'C' from "CD", '9' from "9"
		3,       // fill: 'D' from "abCD9"
		0, 2, 0, // shuffle i=3..1
	}}
	g := NewGenerator(
		WithAlphabet(Alphabet{Lowercase: "ab", Uppercase: "CD", Special: "!", Digits: "9"}),
		WithLengthPolicy(LengthPolicy{Min: 4, Max: 8, Default: 6}),
		WithRandomSource(src),
	)

	got, err := g.Generate(GeneratorOptions{Length: 4, Uppercase: true, Numbers: true})
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if got != "CD9b" {
		t.Errorf("Generate() = %q, want %q", got, "CD9b")
	}
	if src.pos != len(src.vals) {
		t.Errorf("Generate() consumed %d draws, want %d", src.pos, len(src.vals))
	}
}

func TestGenerateLengthTooShortForCategories(t *testing.T) {
	g := NewGenerator(WithLengthPolicy(LengthPolicy{Min: 2, Max: 8, Default: 2}))

	_, err := g.Generate(GeneratorOptions{Length: 3, Uppercase: true, Special: true, Numbers: true})
	if !errors.Is(err, ErrLengthTooShortForCategories) {
		t.Errorf("Generate() error = %v, want %v", err, ErrLengthTooShortForCategories)
	}
}

func TestGenerateEmptyCharset(t *testing.T) {
	g := NewGenerator(WithAlphabet(Alphabet{Uppercase: uppercaseChars}))

	result, err := g.Generate(GeneratorOptions{Length: 12, Uppercase: true})
	if !errors.Is(err, ErrEmptyCharset) {
		t.Errorf("Generate() error = %v, want %v", err, ErrEmptyCharset)
	}
	if result != "" {
		t.Error("Generate() should return empty string on error")
	}
}

func TestGenerateRandomSourceFailure(t *testing.T) {
	boom := errors.New("entropy unavailable")
	g := NewGenerator(WithRandomSource(failingSource{err: boom}))

	if _, err := g.Generate(DefaultOptions()); !errors.Is(err, boom) {
		t.Errorf("Generate() error = %v, want %v", err, boom)
	}
}

func TestGenerateLengthNotice(t *testing.T) {
	var gotRequested int
	var calls int
	g := NewGenerator(WithLengthNotice(func(requested int, p LengthPolicy) {
		calls++
		gotRequested = requested
	}))

	if _, err := g.Generate(GeneratorOptions{Length: 200}); err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if _, err := g.Generate(GeneratorOptions{Length: 20}); err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}

	if calls != 1 {
		t.Errorf("notice called %d times, want 1", calls)
	}
	if gotRequested != 200 {
		t.Errorf("notice requested = %d, want 200", gotRequested)
	}
}

func TestGeneratePoolOrderIndependent(t *testing.T) {
	reversed := Alphabet{
		Lowercase: reverse(lowercaseChars),
		Uppercase: reverse(uppercaseChars),
		Special:   reverse(specialChars),
		Digits:    reverse(numberChars),
	}
	g := NewGenerator(WithAlphabet(reversed))
	opts := GeneratorOptions{Length: MinLength, Uppercase: true, Special: true, Numbers: true}

	for i := 0; i < 200; i++ {
		password, err := g.Generate(opts)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		checkCategories(t, password, opts)
	}
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

func TestLengthPolicyValidate(t *testing.T) {
	p := DefaultLengthPolicy()
	tests := []struct {
		requested     int
		wantLength    int
		wantCorrected bool
	}{
		{8, 8, false},
		{16, 16, false},
		{128, 128, false},
		{7, 16, true},
		{129, 16, true},
		{0, 16, true},
		{-1, 16, true},
	}

	for _, tt := range tests {
		length, corrected := p.Validate(tt.requested)
		if length != tt.wantLength || corrected != tt.wantCorrected {
			t.Errorf("Validate(%d) = (%d, %t), want (%d, %t)",
				tt.requested, length, corrected, tt.wantLength, tt.wantCorrected)
		}
	}
}

func TestLengthPolicyNotice(t *testing.T) {
	msg := DefaultLengthPolicy().Notice(300)
	for _, want := range []string{"300", "8-128", "16"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Notice() = %q, missing %q", msg, want)
		}
	}
}

func TestGenerateProducesUniquePasswords(t *testing.T) {
	opts := GeneratorOptions{Length: 16, Uppercase: true, Special: true, Numbers: true}
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		password, err := Generate(opts)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if seen[password] {
			t.Errorf("duplicate password generated: %q", password)
		}
		seen[password] = true
	}
}
