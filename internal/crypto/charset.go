package crypto

import "errors"

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	specialChars   = "!@#$%^&*_-+=<>?"
	numberChars    = "0123456789"
)

var ErrEmptyCharset = errors.New("character set is empty: the lowercase pool is required")

// Category is one of the character classes a password is composed from.
type Category int

const (
	Lowercase Category = iota
	Uppercase
	Special
	Digit
)

// Categories lists every category in charset build order.
var Categories = []Category{Lowercase, Uppercase, Special, Digit}

func (c Category) String() string {
	switch c {
	case Lowercase:
		return "lowercase"
	case Uppercase:
		return "uppercase"
	case Special:
		return "special"
	case Digit:
		return "digit"
	default:
		return "unknown"
	}
}

// Alphabet holds the character pool for each category. It is passed by value
// so callers cannot mutate a generator's pools after construction.
type Alphabet struct {
	Lowercase string
	Uppercase string
	Special   string
	Digits    string
}

// DefaultAlphabet returns the ASCII pools used by the CLI.
func DefaultAlphabet() Alphabet {
	return Alphabet{
		Lowercase: lowercaseChars,
		Uppercase: uppercaseChars,
		Special:   specialChars,
		Digits:    numberChars,
	}
}

// Pool returns the characters belonging to category c.
func (a Alphabet) Pool(c Category) string {
	switch c {
	case Lowercase:
		return a.Lowercase
	case Uppercase:
		return a.Uppercase
	case Special:
		return a.Special
	case Digit:
		return a.Digits
	default:
		return ""
	}
}

// CategoryOf reports which category pool contains r.
func (a Alphabet) CategoryOf(r rune) (Category, bool) {
	for _, c := range Categories {
		for _, p := range a.Pool(c) {
			if p == r {
				return c, true
			}
		}
	}
	return 0, false
}

// CharacterSet is the ordered list of enabled pools. Chars flattens them into
// the merged pool used for fill draws.
type CharacterSet struct {
	pools      []string
	categories []Category
}

// BuildCharset composes the character set: lowercase always, then uppercase,
// special and digit pools when enabled, in that order.
func BuildCharset(a Alphabet, uppercase, special, numbers bool) (CharacterSet, error) {
	if a.Lowercase == "" {
		return CharacterSet{}, ErrEmptyCharset
	}

	var cs CharacterSet
	cs.add(Lowercase, a.Lowercase)
	if uppercase {
		cs.add(Uppercase, a.Uppercase)
	}
	if special {
		cs.add(Special, a.Special)
	}
	if numbers {
		cs.add(Digit, a.Digits)
	}
	return cs, nil
}

func (cs *CharacterSet) add(c Category, pool string) {
	if pool == "" {
		return
	}
	cs.categories = append(cs.categories, c)
	cs.pools = append(cs.pools, pool)
}

// Categories returns the enabled categories in build order.
func (cs CharacterSet) Categories() []Category {
	out := make([]Category, len(cs.categories))
	copy(out, cs.categories)
	return out
}

// Pools returns the per-category pools in build order.
func (cs CharacterSet) Pools() []string {
	out := make([]string, len(cs.pools))
	copy(out, cs.pools)
	return out
}

// Chars returns every character of the set as one flat sequence.
func (cs CharacterSet) Chars() []rune {
	var out []rune
	for _, p := range cs.pools {
		out = append(out, []rune(p)...)
	}
	return out
}

func (cs CharacterSet) String() string {
	return string(cs.Chars())
}

// Len returns the number of characters in the merged pool.
func (cs CharacterSet) Len() int {
	return len(cs.Chars())
}
