package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/klabast/dono/internal/config"
)

var (
	// ErrEmptyToken is returned when no token was entered
	ErrEmptyToken = errors.New("token cannot be empty")
	// ErrTokenMismatch is returned when the confirmation differs
	ErrTokenMismatch = errors.New("tokens do not match")
	// ErrInterrupted is returned when the prompt is aborted with Ctrl+C
	ErrInterrupted = errors.New("interrupted")
)

// SetTokenOptions configures the set-token subcommand
type SetTokenOptions struct {
	// FromStdin reads a single line from Stdin without prompting
	FromStdin bool
	Stdin     *os.File
	Stdout    io.Writer
}

// SetToken reads a GitHub token and stores it in the config file at path
func SetToken(path string, opts SetTokenOptions) error {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	var (
		token string
		err   error
	)
	if opts.FromStdin || !term.IsTerminal(int(opts.Stdin.Fd())) {
		token, err = readLine(opts.Stdin)
	} else {
		token, err = promptToken(opts.Stdin, opts.Stdout)
	}
	if err != nil {
		return err
	}

	if err := config.SetToken(path, token); err != nil {
		return err
	}

	fmt.Fprintf(opts.Stdout, "✅ Token saved to %s\n", path)
	return nil
}

// readLine reads one token from a pipe or file
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("error reading token: %w", err)
	}
	token := strings.TrimSpace(line)
	if token == "" {
		return "", ErrEmptyToken
	}
	return token, nil
}

// promptToken asks for the token twice with masked input
func promptToken(in *os.File, out io.Writer) (string, error) {
	fmt.Fprintf(out, "Generate a personal access token at %s\n", config.TokenURL)

	token, err := readTokenWithMask(in, out, "Enter token:   ")
	if err != nil {
		return "", err
	}
	confirm, err := readTokenWithMask(in, out, "Confirm token: ")
	if err != nil {
		return "", err
	}

	if token == "" {
		return "", ErrEmptyToken
	}
	if token != confirm {
		return "", ErrTokenMismatch
	}
	return token, nil
}

// readTokenWithMask reads token input and displays asterisks
func readTokenWithMask(in *os.File, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	fd := int(in.Fd())

	// Raw mode; MakeRaw returns the state to restore
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		// Fallback to hidden input
		token, err := term.ReadPassword(fd)
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("error reading token: %w", err)
		}
		return strings.TrimSpace(string(token)), nil
	}
	defer term.Restore(fd, oldState)

	var token []byte
	reader := bufio.NewReader(in)

	for {
		char, _, err := reader.ReadRune()
		if err != nil {
			break
		}

		switch char {
		case '\n', '\r': // Enter key
			fmt.Fprint(out, "\r\n")
			return string(token), nil
		case 127, 8: // Backspace or Delete
			if len(token) > 0 {
				token = token[:len(token)-1]
				fmt.Fprint(out, "\b \b")
			}
		case 3: // Ctrl+C
			fmt.Fprint(out, "\r\n")
			return "", ErrInterrupted
		default:
			// Tokens are printable ASCII
			if char >= 32 && char <= 126 {
				token = append(token, byte(char))
				fmt.Fprint(out, "*")
			}
		}
	}

	fmt.Fprint(out, "\r\n")
	return string(token), nil
}
