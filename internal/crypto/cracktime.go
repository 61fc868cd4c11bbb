package crypto

import (
	"context"
	"fmt"
	"math"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	// referenceBcryptRate is the offline guess rate of one current high-end GPU
	// against bcrypt at referenceBcryptCost.
	referenceBcryptRate = 184000.0
	referenceBcryptCost = 5

	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	secondsPerYear   = 365.25 * secondsPerDay
)

// ValidateBcryptCost rejects costs bcrypt itself would refuse.
func ValidateBcryptCost(cost int) error {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return bcrypt.InvalidCostError(cost)
	}
	return nil
}

// BcryptRate returns the reference guesses per second against bcrypt at cost.
// Each cost step doubles the work factor.
func BcryptRate(cost int) float64 {
	return referenceBcryptRate / math.Pow(2, float64(cost-referenceBcryptCost))
}

// CalibrateBcryptRate measures local bcrypt throughput at the minimum cost
// and scales it to cost.
func CalibrateBcryptRate(ctx context.Context, cost, samples int) (float64, error) {
	if err := ValidateBcryptCost(cost); err != nil {
		return 0, err
	}
	if samples < 1 {
		samples = 1
	}

	start := time.Now()
	for i := 0; i < samples; i++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if _, err := bcrypt.GenerateFromPassword([]byte("calibration"), bcrypt.MinCost); err != nil {
			return 0, fmt.Errorf("calibrating bcrypt: %w", err)
		}
	}
	elapsed := time.Since(start).Seconds()
	if elapsed <= 0 {
		elapsed = math.SmallestNonzeroFloat64
	}

	rate := float64(samples) / elapsed
	return rate / math.Pow(2, float64(cost-bcrypt.MinCost)), nil
}

// CrackEstimate is the average time to find a password by exhausting half of
// its keyspace at a fixed guess rate.
type CrackEstimate struct {
	Cost             int
	GuessesPerSecond float64
	Seconds          *big.Float
}

// EstimateCrackTime divides half the keyspace by guessesPerSecond.
func EstimateCrackTime(keyspace *big.Int, cost int, guessesPerSecond float64) CrackEstimate {
	seconds := new(big.Float).SetInt(keyspace)
	seconds.Quo(seconds, big.NewFloat(2*guessesPerSecond))
	return CrackEstimate{
		Cost:             cost,
		GuessesPerSecond: guessesPerSecond,
		Seconds:          seconds,
	}
}

// String renders the estimate in the largest sensible unit.
func (e CrackEstimate) String() string {
	return HumanDuration(e.Seconds)
}

// HumanDuration formats a possibly astronomical number of seconds.
func HumanDuration(seconds *big.Float) string {
	if seconds == nil || seconds.Cmp(big.NewFloat(1)) < 0 {
		return "less than a second"
	}

	years := new(big.Float).Quo(seconds, big.NewFloat(secondsPerYear))
	if years.Cmp(big.NewFloat(1e6)) >= 0 {
		return years.Text('e', 2) + " years"
	}

	s, _ := seconds.Float64()
	switch {
	case s < secondsPerMinute:
		return plural(s, "second")
	case s < secondsPerHour:
		return plural(s/secondsPerMinute, "minute")
	case s < secondsPerDay:
		return plural(s/secondsPerHour, "hour")
	case s < secondsPerYear:
		return plural(s/secondsPerDay, "day")
	default:
		return plural(s/secondsPerYear, "year")
	}
}

func plural(v float64, unit string) string {
	n := int64(math.Floor(v))
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
