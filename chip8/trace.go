package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

/// Tracer observes execution. Trace is called once per successfully
/// executed instruction with the machine state after mutation. A
/// sink must not mutate the machine; it is an observability side
/// channel, not part of the state transition.
///
type Tracer interface {
	Trace(inst Instruction, vm *CHIP_8)
}

/// NopTracer is the default sink. It does nothing.
///
type NopTracer struct{}

func (NopTracer) Trace(Instruction, *CHIP_8) {}

/// LogTracer writes each executed instruction and the post-state to
/// a structured logger at debug level.
///
type LogTracer struct {
	Logger *log.Logger
}

/// Trace logs the instruction and the registers it may have touched.
///
func (t LogTracer) Trace(inst Instruction, vm *CHIP_8) {
	t.Logger.Debug("execute",
		log.String("inst", inst.String()),
		log.Uint16("opcode", inst.Opcode),
		log.Uint16("pc", vm.PC),
		log.Uint16("i", vm.I),
		log.String("v", fmt.Sprintf("% 02X", vm.V[:])),
	)
}
