package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
)

// AnalyzerService handles password strength analysis.
type AnalyzerService struct {
	analyzer   *crypto.Analyzer
	cost       int
	rate       float64
	calibrated bool
}

// NewAnalyzerService creates an AnalyzerService whose crack-time estimates
// assume bcrypt at the given cost.
func NewAnalyzerService(cost int) (*AnalyzerService, error) {
	if err := crypto.ValidateBcryptCost(cost); err != nil {
		return nil, err
	}
	return &AnalyzerService{
		analyzer: crypto.NewAnalyzer(crypto.DefaultAlphabet(), crypto.DefaultStrengthPolicy()),
		cost:     cost,
		rate:     crypto.BcryptRate(cost),
	}, nil
}

// Calibrate replaces the reference guess rate with one measured locally.
func (s *AnalyzerService) Calibrate(ctx context.Context, samples int) error {
	rate, err := crypto.CalibrateBcryptRate(ctx, s.cost, samples)
	if err != nil {
		return fmt.Errorf("calibrating crack rate: %w", err)
	}
	slog.Debug("bcrypt rate calibrated", "cost", s.cost, "reference", s.rate, "measured", rate)
	s.rate = rate
	s.calibrated = true
	return nil
}

// Analyze reports the strength of password.
func (s *AnalyzerService) Analyze(password string) (model.StrengthResponse, error) {
	report, err := s.analyzer.Analyze(password)
	if err != nil {
		return model.StrengthResponse{}, err
	}

	est := crypto.EstimateCrackTime(report.Keyspace, s.cost, s.rate)

	return model.StrengthResponse{
		Length: report.Length,
		Categories: model.CategoryCoverage{
			Lowercase: report.Lowercase,
			Uppercase: report.Uppercase,
			Digits:    report.Digits,
			Special:   report.Special,
			Count:     report.CategoryCount,
			Other:     report.OtherChars,
		},
		PoolSize:    report.PoolSize,
		Keyspace:    report.Keyspace.String(),
		EntropyBits: report.EntropyBits(),
		Strength:    string(report.Label),
		CrackTime: model.CrackTime{
			BcryptCost:       est.Cost,
			GuessesPerSecond: est.GuessesPerSecond,
			Calibrated:       s.calibrated,
			Seconds:          est.Seconds.Text('g', 6),
			Human:            est.String(),
		},
	}, nil
}
