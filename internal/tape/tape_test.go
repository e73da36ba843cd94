package tape

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	script := `# demo
Next
next 3
Prev 2
Dot 2
Select 4
Goto -1
Sleep 250ms
Sleep 100
Set rtl true
Autoplay on
Expect 0
`
	cmds, err := ParseString(script)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []struct {
		typ   CommandType
		count int
		line  int
	}{
		{CommandTypeNext, 1, 2},
		{CommandTypeNext, 3, 3},
		{CommandTypePrev, 2, 4},
		{CommandTypeDot, 2, 5},
		{CommandTypeSelect, 4, 6},
		{CommandTypeGoto, -1, 7},
		{CommandTypeSleep, 0, 8},
		{CommandTypeSleep, 0, 9},
		{CommandTypeSet, 0, 10},
		{CommandTypeAutoplay, 0, 11},
		{CommandTypeExpect, 0, 12},
	}
	if len(cmds) != len(want) {
		t.Fatalf("got %d commands, want %d", len(cmds), len(want))
	}
	for i, w := range want {
		c := cmds[i]
		if c.Type != w.typ || c.Count != w.count || c.Line != w.line {
			t.Errorf("cmd %d = {%s %d line %d}, want {%s %d line %d}", i, c.Type, c.Count, c.Line, w.typ, w.count, w.line)
		}
	}
	if cmds[6].Delay != 250*time.Millisecond || cmds[7].Delay != 100*time.Millisecond {
		t.Errorf("sleep delays = %v, %v", cmds[6].Delay, cmds[7].Delay)
	}
	if !cmds[9].On {
		t.Error("Autoplay on should parse as On")
	}
	if got := cmds[8].String(); got != "Set rtl true" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		line   int
	}{
		{"unknown command", "Jump 3", 1},
		{"bad count", "\nNext zero", 2},
		{"negative count", "Next -2", 1},
		{"missing index", "Dot", 1},
		{"dot zero", "Dot 0", 1},
		{"bad duration", "Sleep soon", 1},
		{"set arity", "Set rtl", 1},
		{"autoplay value", "Autoplay maybe", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.script)
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %v", err)
			}
			if pe.Line != tt.line {
				t.Errorf("line = %d, want %d", pe.Line, tt.line)
			}
		})
	}
}

func TestParseReportsEveryBadLine(t *testing.T) {
	_, err := ParseString("Next\nJump\nDot x\n")
	if err == nil {
		t.Fatal("expected an error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "line 2") || !strings.Contains(msg, "line 3") {
		t.Errorf("error should mention both bad lines: %v", err)
	}
}

// fakeExecutor records calls against a plain counter
type fakeExecutor struct {
	current  int
	calls    []string
	autoplay bool
	failOn   string
}

func (f *fakeExecutor) CurrentSlide() int { return f.current }

func (f *fakeExecutor) record(call string) error {
	f.calls = append(f.calls, call)
	if call == f.failOn {
		return errors.New("boom")
	}
	return nil
}

func (f *fakeExecutor) Next() error                 { f.current++; return f.record("next") }
func (f *fakeExecutor) Prev() error                 { f.current--; return f.record("prev") }
func (f *fakeExecutor) GoToDot(page int) error      { f.current = page * 2; return f.record("dot") }
func (f *fakeExecutor) SelectSlide(i int) error     { f.current = i; return f.record("select") }
func (f *fakeExecutor) GoTo(i int) error            { f.current = i; return f.record("goto") }
func (f *fakeExecutor) SetOption(n, v string) error { return f.record("set " + n + "=" + v) }
func (f *fakeExecutor) SetAutoplay(on bool) error   { f.autoplay = on; return f.record("autoplay") }

func TestCommandExecutorRun(t *testing.T) {
	cmds, err := ParseString("Next 3\nPrev\nExpect 2\nDot 3\nExpect 4\nSleep 10s\nSet fade on\nAutoplay on\nSelect 1\nGoto 5\n")
	if err != nil {
		t.Fatal(err)
	}

	f := &fakeExecutor{}
	ce := NewCommandExecutor(f)
	ce.SkipSleep = true
	if err := ce.Run(context.Background(), cmds); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := "next next next prev dot set fade=on autoplay select goto"
	if got := strings.Join(f.calls, " "); got != want {
		t.Errorf("calls = %q, want %q", got, want)
	}
	if f.current != 5 || !f.autoplay {
		t.Errorf("final state current=%d autoplay=%v", f.current, f.autoplay)
	}
}

func TestCommandExecutorExpectationFailure(t *testing.T) {
	cmds, _ := ParseString("Next\nExpect 7\nNext\n")
	f := &fakeExecutor{}
	err := NewCommandExecutor(f).Run(context.Background(), cmds)

	var ee *ExpectationError
	if !errors.As(err, &ee) {
		t.Fatalf("expected *ExpectationError, got %v", err)
	}
	if ee.Line != 2 || ee.Want != 7 || ee.Got != 1 {
		t.Errorf("unexpected expectation error %+v", ee)
	}
	if len(f.calls) != 1 {
		t.Errorf("run should stop at the failure, calls = %v", f.calls)
	}
}

func TestCommandExecutorStopsOnError(t *testing.T) {
	cmds, _ := ParseString("Next\nGoto 3\nNext\n")
	f := &fakeExecutor{failOn: "goto"}
	err := NewCommandExecutor(f).Run(context.Background(), cmds)
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected failure on line 2, got %v", err)
	}
}

func TestCommandExecutorSleepHonoursContext(t *testing.T) {
	cmds, _ := ParseString("Sleep 1m\nNext\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := &fakeExecutor{}
	if err := NewCommandExecutor(f).Run(ctx, cmds); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(f.calls) != 0 {
		t.Error("no command should run after cancellation")
	}
}

func TestNilExecutor(t *testing.T) {
	if err := NewCommandExecutor(nil).Execute(&Command{Type: CommandTypeNext, Count: 1}); err != nil {
		t.Errorf("nil executor should be a no-op, got %v", err)
	}
}
