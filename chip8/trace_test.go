package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

type recordingTracer struct {
	insts []Instruction
	pcs   []uint16
}

func (r *recordingTracer) Trace(inst Instruction, vm *CHIP_8) {
	r.insts = append(r.insts, inst)
	r.pcs = append(r.pcs, vm.PC)
}

func TestTracerObservesPostState(t *testing.T) {
	rec := &recordingTracer{}

	vm := New()
	vm.Observe(rec)

	assert.NoError(t, vm.Execute(Decode(0x1ABC)))

	assert.Equal(t, 1, len(rec.insts))
	assert.Equal(t, Jp, rec.insts[0].Op)

	// the sink sees the state after mutation
	assert.Equal(t, uint16(0xABC), rec.pcs[0])
}

func TestTracerIsNotCalledOnFailure(t *testing.T) {
	rec := &recordingTracer{}

	vm := New()
	vm.Observe(rec)

	assert.True(t, vm.Execute(Decode(0x00E0)) != nil)
	assert.True(t, vm.Execute(Decode(0xFFFF)) != nil)

	assert.Equal(t, 0, len(rec.insts))
}

func TestObserveNilRestoresNopTracer(t *testing.T) {
	vm := New()
	vm.Observe(nil)

	assert.NoError(t, vm.Execute(Decode(0x6001)))
	assert.Equal(t, byte(1), vm.V[0])
}

func TestLogTracer(t *testing.T) {
	vm := New()
	vm.Observe(LogTracer{Logger: log.NewTestLogger(t)})

	assert.NoError(t, vm.Execute(Decode(0x6A42)))
	assert.Equal(t, byte(0x42), vm.V[0xA])
}

func TestTraceLogRecordsDisassembly(t *testing.T) {
	trace := NewTraceLog()

	vm := New()
	vm.Observe(trace)

	assert.NoError(t, vm.Execute(Decode(0x6A42)))
	assert.NoError(t, vm.Execute(Decode(0x1ABC)))

	lines := trace.Window(2)

	assert.Equal(t, 2, len(lines))
	assert.Equal(t, "LD     VA, #42     ; PC=0200", lines[0])
	assert.Equal(t, "JP     #0ABC       ; PC=0ABC", lines[1])
}

func TestTraceLogScrolling(t *testing.T) {
	trace := NewTraceLog()

	vm := New()
	vm.Observe(trace)

	for i := 0; i < 10; i++ {
		assert.NoError(t, vm.Execute(Decode(0x6001)))
	}

	assert.NoError(t, vm.Execute(Decode(0x1ABC)))

	// the tail follows new lines by default
	lines := trace.Window(3)
	assert.Equal(t, 3, len(lines))
	assert.Equal(t, "JP     #0ABC       ; PC=0ABC", lines[2])

	// scrolling back stops following
	trace.ScrollUp()
	lines = trace.Window(3)
	assert.Equal(t, "LD     V0, #01     ; PC=0200", lines[2])

	trace.Home()
	lines = trace.Window(3)
	assert.Equal(t, "LD     V0, #01     ; PC=0200", lines[0])

	trace.ScrollDown(3)
	assert.Equal(t, 3, len(trace.Window(3)))

	trace.End()
	lines = trace.Window(3)
	assert.Equal(t, "JP     #0ABC       ; PC=0ABC", lines[2])
}
