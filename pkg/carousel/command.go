package carousel

import "fmt"

// Kind identifies what kind of control produced a Command.
type Kind int

const (
	// KindDots is sent by a pagination dot.
	KindDots Kind = iota
	// KindChildren is sent by a slide when focus-on-select is enabled.
	KindChildren
	// KindNext moves forward by one scroll step.
	KindNext
	// KindPrevious moves back by one scroll step.
	KindPrevious
	// KindIndex jumps straight to Index.
	KindIndex
)

// String returns the message name used in click payloads.
func (k Kind) String() string {
	switch k {
	case KindDots:
		return "dots"
	case KindChildren:
		return "children"
	case KindNext:
		return "next"
	case KindPrevious:
		return "previous"
	case KindIndex:
		return "index"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a message name back to its Kind.
func ParseKind(s string) (Kind, bool) {
	for k := KindDots; k <= KindIndex; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Command is the payload delivered to a Handler when a dot or slide is activated.
type Command struct {
	Kind           Kind `json:"message"`
	Index          int  `json:"index"`
	SlidesToScroll int  `json:"slidesToScroll"`
	CurrentSlide   int  `json:"currentSlide"`
}

// Handler receives activation commands. The orchestrator that owns the
// current slide implements it.
type Handler interface {
	HandleCommand(cmd Command)
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc func(cmd Command)

// HandleCommand calls f(cmd).
func (f HandlerFunc) HandleCommand(cmd Command) { f(cmd) }

func newCommand(kind Kind, index int, s Spec) Command {
	return Command{
		Kind:           kind,
		Index:          index,
		SlidesToScroll: s.SlidesToScroll,
		CurrentSlide:   s.CurrentSlide,
	}
}
