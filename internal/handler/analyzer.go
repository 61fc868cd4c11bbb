package handler

import (
	"fmt"
	"io"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/prompt"
)

const calibrationSamples = 8

func newAnalyzeCommand(app *App) *cobra.Command {
	var (
		fromPrompt bool
		calibrate  bool
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <password>",
		Short: "Analyze the strength of a password",
		Args: func(cmd *cobra.Command, args []string) error {
			if fromPrompt {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var password string
			if fromPrompt {
				var err error
				password, err = prompt.ReadSecret(app.In, app.Err, "Password: ")
				if err != nil {
					return err
				}
			} else {
				password = args[0]
			}

			if calibrate {
				if err := app.Analyzer.Calibrate(cmd.Context(), calibrationSamples); err != nil {
					return err
				}
			}

			resp, err := app.Analyzer.Analyze(password)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(app.Out, resp)
			}
			return writeReport(app.Out, resp)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&fromPrompt, "prompt", "p", false, "read the password from stdin without echo")
	f.BoolVar(&calibrate, "calibrate", false, "measure local bcrypt speed for the crack-time estimate")
	f.BoolVar(&asJSON, "json", false, "print the report as JSON")

	return cmd
}

type reportRow struct {
	label string
	value string
}

func writeReport(w io.Writer, r model.StrengthResponse) error {
	rows := []reportRow{
		{"Length", fmt.Sprint(r.Length)},
		{"Lowercase", yesNo(r.Categories.Lowercase)},
		{"Uppercase", yesNo(r.Categories.Uppercase)},
		{"Digits", yesNo(r.Categories.Digits)},
		{"Special", yesNo(r.Categories.Special)},
		{"Categories", fmt.Sprintf("%d/4", r.Categories.Count)},
	}
	if r.Categories.Other > 0 {
		rows = append(rows, reportRow{"Other characters", fmt.Sprint(r.Categories.Other)})
	}

	source := "reference"
	if r.CrackTime.Calibrated {
		source = "measured"
	}
	rows = append(rows, []reportRow{
		{"Pool size", fmt.Sprint(r.PoolSize)},
		{"Keyspace", fmt.Sprintf("%s (%d^%d)", abbreviate(r.Keyspace), r.PoolSize, r.Length)},
		{"Entropy", fmt.Sprintf("%.2f bits", r.EntropyBits)},
		{"Crack time", fmt.Sprintf("%s (bcrypt cost %d, %.0f guesses/s %s)",
			r.CrackTime.Human, r.CrackTime.BcryptCost, r.CrackTime.GuessesPerSecond, source)},
		{"Strength", r.Strength},
	}...)

	if _, err := fmt.Fprintln(w, "Password Strength Analysis:"); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "  %-17s %s\n", row.label+":", row.value); err != nil {
			return err
		}
	}
	return nil
}

// abbreviate shortens decimal integers beyond 20 digits to scientific form.
func abbreviate(decimal string) string {
	if len(decimal) <= 20 {
		return decimal
	}
	f, ok := new(big.Float).SetString(decimal)
	if !ok {
		return decimal
	}
	return f.Text('e', 3)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

