package tape

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// ParseFile parses the script at path
func ParseFile(path string) ([]Command, error) {
	// #nosec G304 - the script path is chosen by the user
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open tape file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Parse(f)
}

// ParseString parses a script held in memory
func ParseString(script string) ([]Command, error) {
	return Parse(strings.NewReader(script))
}

// Parse reads a script and returns its commands. Every bad line is reported;
// the returned error joins one *ParseError per line.
func Parse(r io.Reader) ([]Command, error) {
	var (
		cmds []Command
		errs []error
	)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		cmd, err := parseLine(line, text)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		cmds = append(cmds, cmd)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tape: %w", err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cmds, nil
}

func parseLine(line int, text string) (Command, error) {
	fields := strings.Fields(text)
	fail := func(format string, args ...any) (Command, error) {
		return Command{}, &ParseError{Line: line, Text: text, Msg: fmt.Sprintf(format, args...)}
	}

	typ, ok := commandTypes[strings.ToLower(fields[0])]
	if !ok {
		return fail("unknown command %q", fields[0])
	}
	cmd := Command{Type: typ, Args: fields[1:], Line: line}

	switch typ {
	case CommandTypeNext, CommandTypePrev:
		cmd.Count = 1
		if len(cmd.Args) > 1 {
			return fail("%s takes at most one count", typ)
		}
		if len(cmd.Args) == 1 {
			n, err := strconv.Atoi(cmd.Args[0])
			if err != nil || n < 1 {
				return fail("count must be a positive integer")
			}
			cmd.Count = n
		}

	case CommandTypeDot, CommandTypeSelect, CommandTypeGoto, CommandTypeExpect:
		if len(cmd.Args) != 1 {
			return fail("%s takes exactly one index", typ)
		}
		n, err := strconv.Atoi(cmd.Args[0])
		if err != nil {
			return fail("index must be an integer")
		}
		// Dots are numbered from 1 the way they are drawn
		if typ == CommandTypeDot && n < 1 {
			return fail("dot numbers start at 1")
		}
		cmd.Count = n

	case CommandTypeSleep:
		if len(cmd.Args) != 1 {
			return fail("Sleep takes exactly one duration")
		}
		d, err := parseDelay(cmd.Args[0])
		if err != nil {
			return fail("%v", err)
		}
		cmd.Delay = d

	case CommandTypeSet:
		if len(cmd.Args) != 2 {
			return fail("Set takes an option and a value")
		}

	case CommandTypeAutoplay:
		if len(cmd.Args) != 1 {
			return fail("Autoplay takes on or off")
		}
		switch strings.ToLower(cmd.Args[0]) {
		case "on", "true":
			cmd.On = true
		case "off", "false":
		default:
			return fail("Autoplay takes on or off")
		}
	}
	return cmd, nil
}

// parseDelay accepts Go durations ("1.5s", "200ms"); a bare number is milliseconds
func parseDelay(s string) (time.Duration, error) {
	if ms, err := strconv.Atoi(s); err == nil {
		if ms < 0 {
			return 0, fmt.Errorf("duration must not be negative")
		}
		return time.Duration(ms) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	if d < 0 {
		return 0, fmt.Errorf("duration must not be negative")
	}
	return d, nil
}
