package chip8

import "fmt"

/// TraceLog is a trace sink that keeps executed instructions in a
/// scrollable line buffer. A debugger front end can render a window
/// of it while the user scrolls through execution history.
///
type TraceLog struct {
	/// buf contains one line per executed instruction.
	///
	buf []string

	/// pos is the current user read position within the log.
	///
	pos int
}

/// NewTraceLog creates an empty trace log.
///
func NewTraceLog() *TraceLog {
	return &TraceLog{
		buf: make([]string, 0, 100),
		pos: 0,
	}
}

/// Trace records an executed instruction as a disassembly line.
///
func (t *TraceLog) Trace(inst Instruction, vm *CHIP_8) {
	scroll := t.pos == len(t.buf)

	// add the new line
	t.buf = append(t.buf, fmt.Sprintf("%-18s ; PC=%04X", inst.String(), vm.PC))

	if scroll {
		t.pos = len(t.buf)
	}
}

/// Window returns up to n lines at the current read position.
///
func (t *TraceLog) Window(n int) []string {
	start := t.pos - n

	// don't scroll past the beginning
	if start < 0 {
		start = 0
	}

	if start+n >= len(t.buf) {
		return t.buf[start:]
	}

	return t.buf[start : start+n]
}

/// Home scrolls the log to the beginning.
///
func (t *TraceLog) Home() {
	t.pos = 0
}

/// End scrolls the log to the end.
///
func (t *TraceLog) End() {
	t.pos = len(t.buf)
}

/// ScrollUp scrolls the log back one position.
///
func (t *TraceLog) ScrollUp() {
	t.pos -= 1

	// clamp to home
	if t.pos < 0 {
		t.Home()
	}
}

/// ScrollDown scrolls the log forward one position.
///
func (t *TraceLog) ScrollDown(windowSize int) {
	t.pos += 1

	// if less than the window size, drop to it
	if t.pos <= windowSize {
		t.pos = windowSize + 1
	}

	// clamp to the end
	if t.pos >= len(t.buf) {
		t.End()
	}
}
