package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// RandomSource yields uniform integers in [0, n).
type RandomSource interface {
	Intn(n int) (int, error)
}

// SecureSource draws from crypto/rand, which is seeded by the operating
// system and safe for concurrent use.
type SecureSource struct{}

func (SecureSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("random bound must be positive, got %d", n)
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("reading random source: %w", err)
	}
	return int(v.Int64()), nil
}

// randChar picks a uniformly random rune from pool.
func randChar(src RandomSource, pool []rune) (rune, error) {
	i, err := src.Intn(len(pool))
	if err != nil {
		return 0, err
	}
	return pool[i], nil
}

// shuffle performs a Fisher-Yates permutation of data.
func shuffle(src RandomSource, data []rune) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := src.Intn(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
