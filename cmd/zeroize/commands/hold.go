package commands

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"zeroize/internal/memzero"
	"zeroize/internal/secure"
)

func holdCmd() *cobra.Command {
	var secretFile string

	cmd := &cobra.Command{
		Use:   "hold",
		Short: "Read a secret and keep it in wipeable memory until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readSecret(secretFile)
			if err != nil {
				return err
			}
			buf, err := secure.NewFromBytes(raw)
			if err != nil {
				return err
			}
			fmt.Printf("Holding %d bytes. Interrupt to wipe and exit.\n", buf.Len())

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
			<-stop

			buf.Zeroize()
			fmt.Println("Wiped.")
			return nil
		},
	}

	cmd.Flags().StringVar(&secretFile, "secret-file", "", "read the secret from this file instead of prompting")
	return cmd
}

// readSecret fetches the secret bytes from the file, an interactive
// no-echo prompt, or piped stdin.
func readSecret(path string) ([]byte, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return trimWiped(data)
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprint(os.Stderr, "Secret: ")
		data, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return nil, err
		}
		return trimWiped(data)
	}
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return nil, fmt.Errorf("stdin is empty")
	}
	return trimWiped(scanner.Bytes())
}

// trimWiped trims surrounding whitespace, copies the result, and wipes
// the original so only the copy holds the secret.
func trimWiped(data []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(data)
	out := make([]byte, len(trimmed))
	copy(out, trimmed)
	memzero.Zero(data)
	if len(out) == 0 {
		return nil, fmt.Errorf("secret is empty")
	}
	return out, nil
}
