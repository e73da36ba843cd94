package tape

import (
	"context"
	"fmt"
	"time"
)

// Executor executes tape commands by directly manipulating the carousel state
type Executor interface {
	// CurrentSlide returns the index of the current slide
	CurrentSlide() int

	// Navigation
	Next() error
	Prev() error
	GoToDot(page int) error // zero-based page
	SelectSlide(index int) error
	GoTo(index int) error

	// Runtime configuration
	SetOption(name, value string) error
	SetAutoplay(on bool) error
}

// CommandExecutor dispatches parsed commands to an Executor
type CommandExecutor struct {
	executor Executor

	// SkipSleep turns Sleep into a no-op, for headless runs and tests
	SkipSleep bool
}

// NewCommandExecutor creates a new command executor
func NewCommandExecutor(executor Executor) *CommandExecutor {
	return &CommandExecutor{executor: executor}
}

// Execute executes a single command. Sleep is left to the caller; see Run.
func (ce *CommandExecutor) Execute(cmd *Command) error {
	if ce.executor == nil {
		return nil
	}

	switch cmd.Type {
	case CommandTypeNext:
		for range max(cmd.Count, 1) {
			if err := ce.executor.Next(); err != nil {
				return err
			}
		}

	case CommandTypePrev:
		for range max(cmd.Count, 1) {
			if err := ce.executor.Prev(); err != nil {
				return err
			}
		}

	case CommandTypeDot:
		return ce.executor.GoToDot(cmd.Count - 1)

	case CommandTypeSelect:
		return ce.executor.SelectSlide(cmd.Count)

	case CommandTypeGoto:
		return ce.executor.GoTo(cmd.Count)

	case CommandTypeSet:
		if len(cmd.Args) >= 2 {
			return ce.executor.SetOption(cmd.Args[0], cmd.Args[1])
		}

	case CommandTypeAutoplay:
		return ce.executor.SetAutoplay(cmd.On)

	case CommandTypeExpect:
		if got := ce.executor.CurrentSlide(); got != cmd.Count {
			return &ExpectationError{Line: cmd.Line, Want: cmd.Count, Got: got}
		}

	// Sleep is timing only
	default:
		return nil
	}

	return nil
}

// Run plays cmds in order, honouring Sleep unless SkipSleep is set.
// It stops at the first failing command or when ctx is done.
func (ce *CommandExecutor) Run(ctx context.Context, cmds []Command) error {
	for i := range cmds {
		cmd := &cmds[i]
		if cmd.Type == CommandTypeSleep {
			if ce.SkipSleep || cmd.Delay == 0 {
				continue
			}
			timer := time.NewTimer(cmd.Delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
			continue
		}

		if err := ctx.Err(); err != nil {
			return err
		}
		if err := ce.Execute(cmd); err != nil {
			return fmt.Errorf("%s (line %d): %w", cmd.Type, cmd.Line, err)
		}
	}
	return nil
}
