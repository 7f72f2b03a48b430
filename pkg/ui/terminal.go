package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// StdinIsTerminal reports whether stdin is attached to a terminal.
// When it is not (piped input, CI), prompts fall back to plain reads.
func StdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// PromptLine prints prompt and reads one line from r, trimmed.
func PromptLine(r *bufio.Reader, prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	if line == "" && err == io.EOF {
		return "", io.EOF
	}
	return strings.TrimSpace(line), nil
}

// PromptPassword prints prompt and reads a password without echoing when
// stdin is a terminal. With piped input it degrades to a plain line read
// so the command stays scriptable.
func PromptPassword(r *bufio.Reader, prompt string) (string, error) {
	if !StdinIsTerminal() {
		return PromptLine(r, prompt)
	}
	fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}
