package handler

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/prompt"
	"github.com/vaultpass/passgen-go/internal/service"
)

// App wires the services and streams the commands operate on.
type App struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	Generator *service.GeneratorService
	Analyzer  *service.AnalyzerService

	// Prompter opens an interactive prompt driver. It returns
	// prompt.ErrNotTerminal when no terminal is attached.
	Prompter func() (prompt.Driver, error)

	Version string
}

// NewRootCommand builds the passgen command tree.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "passgen",
		Short:         "Generate random passwords and analyze password strength",
		Version:       app.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(app.In)
	root.SetOut(app.Out)
	root.SetErr(app.Err)

	root.AddCommand(newGenerateCommand(app), newAnalyzeCommand(app))
	return root
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
