package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// copyToClipboard writes text to the system clipboard. Replaced in tests.
var copyToClipboard = clipboard.WriteAll

// readSecret reads a PIN or recovery key. Replaced in tests.
var readSecret = promptSecret

// promptSecret reads without echo from a terminal, or a line from the
// command's input otherwise.
func promptSecret(cmd *cobra.Command, prompt string) (string, error) {
	fmt.Fprint(cmd.ErrOrStderr(), prompt)
	if cmd.InOrStdin() == os.Stdin && term.IsTerminal(int(os.Stdin.Fd())) {
		secret, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return strings.TrimSpace(string(secret)), nil
	}
	return readLine(cmd)
}

// readLine reads one trimmed line from the command's input.
func readLine(cmd *cobra.Command) (string, error) {
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// confirm asks a yes/no question, defaulting to no.
func confirm(cmd *cobra.Command, question string) (bool, error) {
	cmd.Printf("%s [y/N]: ", question)
	answer, err := readLine(cmd)
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}

// readNewPIN asks for a PIN twice.
func readNewPIN(cmd *cobra.Command) (string, error) {
	pin, err := readSecret(cmd, "New PIN (6 digits): ")
	if err != nil {
		return "", err
	}
	again, err := readSecret(cmd, "Repeat PIN: ")
	if err != nil {
		return "", err
	}
	if pin != again {
		return "", errors.New("PINs do not match")
	}
	return pin, nil
}
