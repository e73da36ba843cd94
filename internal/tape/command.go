// Package tape parses and plays line-based carousel scripts.
//
// A script is one command per line; blank lines and lines starting with '#'
// are ignored:
//
//	# walk forward twice, then jump to the second page
//	Next 2
//	Sleep 500ms
//	Dot 2
//	Expect 3
package tape

import (
	"fmt"
	"strings"
	"time"
)

// CommandType names a tape command
type CommandType string

// Command types
const (
	CommandTypeNext     CommandType = "Next"
	CommandTypePrev     CommandType = "Prev"
	CommandTypeDot      CommandType = "Dot"
	CommandTypeSelect   CommandType = "Select"
	CommandTypeGoto     CommandType = "Goto"
	CommandTypeSleep    CommandType = "Sleep"
	CommandTypeSet      CommandType = "Set"
	CommandTypeExpect   CommandType = "Expect"
	CommandTypeAutoplay CommandType = "Autoplay"
)

// commandTypes indexes the command types by lowercased name
var commandTypes = map[string]CommandType{
	"next":     CommandTypeNext,
	"prev":     CommandTypePrev,
	"previous": CommandTypePrev,
	"dot":      CommandTypeDot,
	"select":   CommandTypeSelect,
	"goto":     CommandTypeGoto,
	"sleep":    CommandTypeSleep,
	"set":      CommandTypeSet,
	"expect":   CommandTypeExpect,
	"autoplay": CommandTypeAutoplay,
}

// CommandTypes returns the canonical command names, for help output
func CommandTypes() []CommandType {
	return []CommandType{
		CommandTypeNext, CommandTypePrev, CommandTypeDot, CommandTypeSelect, CommandTypeGoto,
		CommandTypeSleep, CommandTypeSet, CommandTypeExpect, CommandTypeAutoplay,
	}
}

// Command is one parsed script line
type Command struct {
	Type CommandType
	Args []string
	Line int

	// Count is the repeat count of Next/Prev and the index of Dot/Select/Goto/Expect
	Count int
	// Delay is the Sleep duration
	Delay time.Duration
	// On is the Autoplay state
	On bool
}

// String renders the command the way it would appear in a script
func (c Command) String() string {
	if len(c.Args) == 0 {
		return string(c.Type)
	}
	return string(c.Type) + " " + strings.Join(c.Args, " ")
}

// ParseError reports a bad script line
type ParseError struct {
	Line int
	Text string
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s (%q)", e.Line, e.Msg, e.Text)
}

// ExpectationError reports a failed Expect command
type ExpectationError struct {
	Line int
	Want int
	Got  int
}

func (e *ExpectationError) Error() string {
	return fmt.Sprintf("expected current slide %d, got %d", e.Want, e.Got)
}
