package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/chzyer/readline"
)

// ErrInterrupted is returned by a prompter when the user pressed Ctrl+C.
var ErrInterrupted = errors.New("interrupted")

// ReadlinePrompter reads input from a terminal with line editing and history.
type ReadlinePrompter struct {
	rl        *readline.Instance
	closeOnce sync.Once
	closeErr  error
}

// NewReadlinePrompter opens a line editor on the process's terminal.
// historyFile may be empty to disable history.
func NewReadlinePrompter(historyFile string) (*ReadlinePrompter, error) {
	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,

		Stdin:  readline.NewCancelableStdin(os.Stdin),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %w", err)
	}
	return &ReadlinePrompter{rl: rl}, nil
}

// Prompt implements commands.Prompter.
func (p *ReadlinePrompter) Prompt(label string) (string, error) {
	p.rl.SetPrompt(label)
	line, err := p.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", ErrInterrupted
	}
	if err != nil {
		return "", err
	}
	return line, nil
}

// Close restores the terminal. Later calls return the first result.
func (p *ReadlinePrompter) Close() error {
	p.closeOnce.Do(func() { p.closeErr = p.rl.Close() })
	return p.closeErr
}

// LinePrompter reads newline-terminated input from any reader.
// Used when stdin is not a terminal.
type LinePrompter struct {
	r   *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a prompter that writes labels to out and reads lines from r.
func NewLinePrompter(r io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{r: bufio.NewReader(r), out: out}
}

// Prompt implements commands.Prompter.
// A final line without a trailing newline is still returned; io.EOF follows on the next call.
func (p *LinePrompter) Prompt(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
