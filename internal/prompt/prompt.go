// Package prompt wraps interactive terminal input for the setup flow.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
)

// Prompter interface wraps basic prompting functionality for testability.
type Prompter interface {
	Prompt(string) (string, error)
	Close() error
}

// LinerPrompter wraps liner.State to implement Prompter.
type LinerPrompter struct {
	*liner.State
}

// NewLinerPrompter creates a new liner-based prompter with Ctrl+C abort.
func NewLinerPrompter() Prompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &LinerPrompter{State: line}
}

// Confirm asks a yes/no question. Aborting the prompt (Ctrl+C or EOF)
// counts as no.
func Confirm(question string) (bool, error) {
	prompter := NewLinerPrompter()
	defer func() { _ = prompter.Close() }()
	return ConfirmWithPrompter(prompter, question)
}

// ConfirmWithPrompter asks a yes/no question using a custom prompter.
func ConfirmWithPrompter(prompter Prompter, question string) (bool, error) {
	coloredPrompt := color.CyanString(question + " [y/N] ")
	answer, err := prompter.Prompt(coloredPrompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, fmt.Errorf("confirm prompt failed: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
