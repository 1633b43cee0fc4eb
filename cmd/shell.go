// Package cmd contains the interactive shell of the xgrid command line tool.
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xitonix/xgrid/obfuscate"
)

// Command a shell command
type Command int8

const (
	// Exit stops the shell
	Exit Command = iota
	// Encrypt asks for a text and prints its ciphertext
	Encrypt
	// Decrypt asks for a ciphertext and prints the original text
	Decrypt
)

func (c Command) String() string {
	switch c {
	case Encrypt:
		return "encrypt"
	case Decrypt:
		return "decrypt"
	default:
		return "exit"
	}
}

// Shell reads the user's requests line by line and reports the results.
// The prompts are only printed in interactive mode.
type Shell struct {
	scanner     *bufio.Scanner
	out         io.Writer
	interactive bool
}

// NewShell creates a new shell on top of the provided input and output
func NewShell(in io.Reader, out io.Writer, interactive bool) *Shell {
	return &Shell{
		scanner:     bufio.NewScanner(in),
		out:         out,
		interactive: interactive,
	}
}

// RequestCommand asks the user for a command. Invalid commands are reported and the
// user is asked again. The end of the input is treated as Exit.
func (s *Shell) RequestCommand() (Command, error) {
	for {
		line, err := s.readLine("Enter a command (encrypt, decrypt, exit): ")
		if err != nil {
			if err == io.EOF {
				return Exit, nil
			}
			return Exit, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "encrypt":
			return Encrypt, nil
		case "decrypt":
			return Decrypt, nil
		case "exit":
			return Exit, nil
		}
		s.Report("Invalid command. Please enter 'encrypt', 'decrypt', or 'exit'.")
	}
}

// RequestText asks the user for the text to encrypt. The text is used as is.
func (s *Shell) RequestText() (string, error) {
	return s.readLine("Enter the text to encrypt: ")
}

// RequestDecryptParams asks the user for the ciphertext, the key and the grid width.
func (s *Shell) RequestDecryptParams() (string, int, int, error) {
	binary, err := s.readLine("Enter the encrypted binary text: ")
	if err != nil {
		return "", 0, 0, err
	}
	key, err := s.requestInt("Enter the key for decryption: ")
	if err != nil {
		return "", 0, 0, err
	}
	columns, err := s.requestInt("Enter the number of columns/rows for transposition: ")
	if err != nil {
		return "", 0, 0, err
	}
	return strings.TrimSpace(binary), key, columns, nil
}

// Report prints a message followed by a new line
func (s *Shell) Report(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format+"\n", args...)
}

func (s *Shell) requestInt(prompt string) (int, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		value, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil {
			return value, nil
		}
		s.Report("'%s' is not a valid number.", strings.TrimSpace(line))
	}
}

func (s *Shell) readLine(prompt string) (string, error) {
	if s.interactive {
		fmt.Fprint(s.out, prompt)
	}
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", errors.Wrap(err, "failed to read the input")
	}
	return "", io.EOF
}

// Run executes the user's commands until Exit is requested or the input is over.
// Encryption and decryption failures are reported and do not stop the shell.
func Run(shell *Shell) error {
	for {
		command, err := shell.RequestCommand()
		if err != nil {
			return err
		}

		switch command {
		case Encrypt:
			plain, err := shell.RequestText()
			if err != nil {
				return endOfInput(shell, err)
			}
			c, err := obfuscate.Encrypt(plain)
			if err != nil {
				shell.Report("Error: %s", err)
				continue
			}
			shell.Report("Encrypted text (binary): %s", c.Binary)
			shell.Report("Key for decryption: %d", c.Key)
			shell.Report("Number of columns/rows for transposition: %d", c.Columns)
		case Decrypt:
			binary, key, columns, err := shell.RequestDecryptParams()
			if err != nil {
				return endOfInput(shell, err)
			}
			plain, err := obfuscate.Decrypt(binary, key, columns)
			if err != nil {
				shell.Report("Error: %s", err)
				continue
			}
			shell.Report("Decrypted text: %s", plain)
		default:
			shell.Report("Exiting...")
			return nil
		}
	}
}

func endOfInput(shell *Shell, err error) error {
	if err == io.EOF {
		shell.Report("Exiting...")
		return nil
	}
	return err
}
