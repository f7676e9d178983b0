package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"zeroize/internal/handle"
)

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run the erasure self-check",
		RunE: func(cmd *cobra.Command, args []string) error {
			samples := []string{
				"my-secret-password",
				"",
				"пароль-パスワード-🔑",
				strings.Repeat("a", 1<<16),
			}
			for _, s := range samples {
				if err := checkSample(s); err != nil {
					return err
				}
			}
			fmt.Println("ok: erasure self-check passed")
			return nil
		},
	}
}

// checkSample drives one secret through the full handle lifecycle and
// verifies the container's observable contract at each step.
func checkSample(s string) error {
	vault := appCtx.Secrets

	h, err := vault.Open(s)
	if err != nil {
		return err
	}
	got, err := vault.Value(h)
	if err != nil {
		return err
	}
	if got != s {
		return fmt.Errorf("value mismatch before wipe (%d bytes)", len(s))
	}

	if err := vault.Zeroize(h); err != nil {
		return err
	}
	// A second wipe must be a harmless no-op.
	if err := vault.Zeroize(h); err != nil {
		return err
	}
	got, err = vault.Value(h)
	if err != nil {
		return err
	}
	if got != "" {
		return fmt.Errorf("value not empty after wipe (%d byte input)", len(s))
	}

	if err := vault.Release(h); err != nil {
		return err
	}
	if _, err := vault.Value(h); !errors.Is(err, handle.ErrUnknownHandle) {
		return fmt.Errorf("released handle still resolves")
	}
	return nil
}
