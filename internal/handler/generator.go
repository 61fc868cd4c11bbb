package handler

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/prompt"
)

func newGenerateCommand(app *App) *cobra.Command {
	var (
		req         model.GenerationRequest
		interactive bool
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				if app.Prompter == nil {
					return prompt.ErrNotTerminal
				}
				d, err := app.Prompter()
				if err != nil {
					return err
				}
				req, err = prompt.AskGenerationRequest(cmd.Context(), d, req)
				if err != nil {
					return err
				}
			}

			resp, err := app.Generator.Generate(req)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(app.Out, resp)
			}
			for _, p := range resp.Passwords {
				fmt.Fprintf(app.Out, "Generated Password: %s\n", p.Password)
				if p.Hash != "" {
					fmt.Fprintf(app.Out, "Argon2id Hash: %s\n", p.Hash)
				}
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVarP(&req.Length, "length", "l", crypto.DefaultLength,
		fmt.Sprintf("password length (%d-%d)", crypto.MinLength, crypto.MaxLength))
	f.BoolVarP(&req.Uppercase, "uppercase-chars", "u", false, "include uppercase letters (A-Z)")
	f.BoolVarP(&req.Special, "special-chars", "s", false, "include special characters (!@#$%^&*_-+=<>?)")
	f.BoolVarP(&req.Numbers, "numbers", "n", false, "include digits (0-9)")
	f.IntVarP(&req.Count, "count", "c", 1, "number of passwords to generate")
	f.BoolVar(&req.Hash, "hash", false, "also print the argon2id hash of each password")
	f.BoolVarP(&interactive, "interactive", "i", false, "prompt for the options")
	f.BoolVar(&asJSON, "json", false, "print the result as JSON")

	return cmd
}
