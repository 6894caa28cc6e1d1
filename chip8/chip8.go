package chip8

/// CHIP_8 is the decode/execute core of the virtual machine. It owns
/// the machine state an instruction can touch: the virtual registers,
/// memory, the address register, the delay/sound timers, the call
/// stack, and the program counter.
///
/// The core does not run a fetch loop and does not keep wall-clock
/// time. An external driver fetches the opcode at PC, decodes it,
/// calls Execute once, and owns the PC auto-advance between
/// instructions as well as the 60 Hz timer decrement.
///
type CHIP_8 struct {
	/// V are the 16 virtual registers.
	///
	V Registers

	/// Memory addressable by CHIP-8. The first 512 bytes are
	/// conventionally reserved; programs load at 0x200.
	///
	Memory Memory

	/// I is the address register. It holds a 16-bit value but is
	/// treated as a 12-bit address once used to reference memory.
	///
	I uint16

	/// PC is the program counter. All programs begin at 0x200.
	///
	PC uint16

	/// DT is the delay timer register. The core only loads and
	/// stores it; decrementing at 60 Hz is the driver's job.
	///
	DT byte

	/// ST is the sound timer register. Same contract as DT.
	///
	ST byte

	/// Stack holds return addresses pushed by CALL. The original
	/// hardware bounded it to 16 entries; the core does not.
	///
	Stack []uint16

	/// rand is drawn from by the RND instruction.
	///
	rand Random

	/// trace observes each executed instruction.
	///
	trace Tracer
}

/// Base is the address programs are conventionally loaded at and
/// where the program counter starts.
///
const Base = 0x200

/// New creates a zeroed CHIP-8 core with the program counter at the
/// conventional base address.
///
func New() *CHIP_8 {
	return &CHIP_8{
		PC:    Base,
		Stack: make([]uint16, 0, 16),
		rand:  NewRandom(),
		trace: NopTracer{},
	}
}

/// WithRegisters creates a core with explicit initial register values.
/// Any registers beyond those given are left zero.
///
func WithRegisters(values ...byte) *CHIP_8 {
	vm := New()

	for i, b := range values {
		if i >= len(vm.V) {
			break
		}

		vm.V[i] = b
	}

	return vm
}

/// SeedRandom replaces the randomness source used by RND. Pass a
/// scripted source for deterministic tests.
///
func (vm *CHIP_8) SeedRandom(r Random) {
	vm.rand = r
}

/// Observe replaces the trace sink. A nil tracer restores the no-op
/// sink.
///
func (vm *CHIP_8) Observe(t Tracer) {
	if t == nil {
		t = NopTracer{}
	}

	vm.trace = t
}

/// Load copies a program image into memory at the base address. The
/// bytes are not validated; that is the ROM loader's concern.
///
func (vm *CHIP_8) Load(program []byte) {
	for i, b := range program {
		vm.Memory.Set(Base+i, b)
	}
}

/// ReadOpcode reads the 16-bit opcode word at the program counter,
/// big-endian. It does not advance PC.
///
func (vm *CHIP_8) ReadOpcode() uint16 {
	i := int(vm.PC) & 0xFFF

	// the second byte wraps at the top of memory
	return uint16(vm.Memory.Get(i))<<8 | uint16(vm.Memory.Get((i+1)&0xFFF))
}
