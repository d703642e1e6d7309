// Package terminal implements the interactive surface of the wizard: prompts
// on stdin/stdout and the ranking output.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/gookit/color"
	"github.com/manifoldco/promptui"

	"github.com/riskibarqy/season-leaders/internal/usecase"
)

const defaultPageSize = 15

var (
	labelStyle    = color.New(color.FgGreen, color.OpBold)
	errInvalidNum = errors.New("Please enter a valid non-zero number")
)

type PrompterConfig struct {
	PageSize int
	Stdin    io.ReadCloser
	Stdout   io.WriteCloser
}

// Prompter asks questions on the terminal. Nil streams fall back to the
// process stdin and stdout.
type Prompter struct {
	pageSize int
	stdin    io.ReadCloser
	stdout   io.WriteCloser
}

func NewPrompter(cfg PrompterConfig) *Prompter {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Prompter{pageSize: pageSize, stdin: cfg.Stdin, stdout: cfg.Stdout}
}

func (p *Prompter) Select(label string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, crerr.Mark(crerr.Newf("%s nothing to choose from", label), usecase.ErrNoOptions)
	}

	prompt := promptui.Select{
		Label:  labelStyle.Sprint(label),
		Items:  options,
		Size:   min(p.pageSize, len(options)),
		Stdin:  p.stdin,
		Stdout: p.stdout,
	}
	idx, _, err := prompt.Run()
	if err != nil {
		return 0, mapPromptError(err)
	}
	return idx, nil
}

// Number asks for a positive integer, offering initial as the default.
func (p *Prompter) Number(label string, initial int) (int, error) {
	prompt := promptui.Prompt{
		Label:    labelStyle.Sprint(label),
		Validate: validatePositiveInt,
		Stdin:    p.stdin,
		Stdout:   p.stdout,
	}
	if initial > 0 {
		prompt.Default = strconv.Itoa(initial)
	}

	raw, err := prompt.Run()
	if err != nil {
		return 0, mapPromptError(err)
	}
	return parsePositiveInt(raw)
}

// Confirm returns false when the user answers no or just presses Enter.
func (p *Prompter) Confirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     labelStyle.Sprint(label),
		IsConfirm: true,
		Stdin:     p.stdin,
		Stdout:    p.stdout,
	}

	_, err := prompt.Run()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, promptui.ErrAbort):
		return false, nil
	default:
		return false, mapPromptError(err)
	}
}

func validatePositiveInt(raw string) error {
	_, err := parsePositiveInt(raw)
	return err
}

func parsePositiveInt(raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%w: %w", usecase.ErrInvalidInput, errInvalidNum)
	}
	return value, nil
}

func mapPromptError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return fmt.Errorf("%w: %v", usecase.ErrAborted, err)
	}
	return crerr.Wrap(err, "read terminal input")
}
