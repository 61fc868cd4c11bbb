package prompt

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
)

// AskGenerationRequest walks the user through the generate options, using
// defaults for the initial answers. Count and Hash are carried over as is.
func AskGenerationRequest(ctx context.Context, d Driver, defaults model.GenerationRequest) (model.GenerationRequest, error) {
	req := defaults

	raw, err := d.Input(ctx, InputConfig{
		Message:   "Password length:",
		Default:   strconv.Itoa(defaults.Length),
		Help:      fmt.Sprintf("Between %d and %d characters; anything else uses %d.", crypto.MinLength, crypto.MaxLength, crypto.DefaultLength),
		Validator: validateInt,
	})
	if err != nil {
		return model.GenerationRequest{}, err
	}
	req.Length, _ = strconv.Atoi(strings.TrimSpace(raw))

	questions := []struct {
		msg string
		dst *bool
	}{
		{"Include uppercase letters (A-Z)?", &req.Uppercase},
		{"Include special characters (!@#$%^&*_-+=<>?)?", &req.Special},
		{"Include numbers (0-9)?", &req.Numbers},
	}
	for _, q := range questions {
		v, err := d.Confirm(ctx, ConfirmConfig{Message: q.msg, Default: *q.dst})
		if err != nil {
			return model.GenerationRequest{}, err
		}
		*q.dst = v
	}

	return req, nil
}

func validateInt(s string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("%q is not a whole number", s)
	}
	return nil
}
