package testutil

import (
	"fmt"
	"io"
)

// ScriptedPrompter answers prompts from a fixed list of lines.
// Once the answers run out it returns io.EOF, like a closed stdin.
type ScriptedPrompter struct {
	answers []string

	// Labels records every prompt label in order.
	Labels []string

	// Echo, if set, receives each label followed by its answer, as a
	// terminal would show it.
	Echo io.Writer
}

// NewScriptedPrompter creates a prompter that returns answers in order.
func NewScriptedPrompter(answers ...string) *ScriptedPrompter {
	return &ScriptedPrompter{answers: answers}
}

// Prompt implements commands.Prompter.
func (p *ScriptedPrompter) Prompt(label string) (string, error) {
	p.Labels = append(p.Labels, label)
	if len(p.answers) == 0 {
		return "", io.EOF
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	if p.Echo != nil {
		fmt.Fprintf(p.Echo, "%s%s\n", label, answer)
	}
	return answer, nil
}

// Remaining returns the number of unused answers.
func (p *ScriptedPrompter) Remaining() int {
	return len(p.answers)
}
