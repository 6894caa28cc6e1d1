package chip8

import "fmt"

/// Op identifies a decoded instruction.
///
type Op uint

/// Instruction opcodes understood by the core.
///
const (
	// an opcode that matched no pattern
	Unknown Op = iota

	// 0nnn / 00E0 - recognized but not implemented by this core
	Sys
	Cls

	// 00EE / 1nnn / 2nnn / Bnnn - flow control
	Ret
	Jp
	Call
	JpV0

	// 3xkk / 4xkk / 5xy0 / 9xy0 - conditional skips
	SeByte
	SneByte
	Se
	Sne

	// 6xkk / 7xkk - immediate loads
	LdByte
	AddByte

	// 8xy0..8xyE - register operations
	Ld
	Or
	And
	Xor
	Add
	Sub
	Shr
	Subn
	Shl

	// Annn / Cxkk - address register and randomness
	Ldi
	Rnd

	// Fx07 / Fx15 / Fx18 - timer loads
	LdVxDelay
	LdDelayVx
	LdSoundVx
)

/// Instruction is a single decoded opcode. Exactly one is produced
/// per 16-bit word and consumed immediately by Execute; it carries no
/// identity beyond that single step.
///
type Instruction struct {
	/// Op is the decoded operation.
	///
	Op Op

	/// X and Y are the register operands (always 0-15).
	///
	X, Y uint

	/// KK is the low byte operand; the mask for RND.
	///
	KK byte

	/// NNN is the 12-bit address operand.
	///
	NNN uint16

	/// Opcode is the raw word the instruction was decoded from.
	///
	Opcode uint16
}

/// Decode splits a 16-bit opcode word into nibbles and matches it
/// against the instruction table. An opcode matching no pattern
/// decodes to Unknown; Decode itself never fails.
///
func Decode(word uint16) Instruction {
	inst := Instruction{
		Op:     Unknown,
		X:      uint(word >> 8 & 0xF),
		Y:      uint(word >> 4 & 0xF),
		KK:     byte(word & 0xFF),
		NNN:    word & 0xFFF,
		Opcode: word,
	}

	switch {
	case word == 0x00E0:
		inst.Op = Cls
	case word == 0x00EE:
		inst.Op = Ret
	case word&0xF000 == 0x0000:
		inst.Op = Sys
	case word&0xF000 == 0x1000:
		inst.Op = Jp
	case word&0xF000 == 0x2000:
		inst.Op = Call
	case word&0xF000 == 0x3000:
		inst.Op = SeByte
	case word&0xF000 == 0x4000:
		inst.Op = SneByte
	case word&0xF00F == 0x5000:
		inst.Op = Se
	case word&0xF000 == 0x6000:
		inst.Op = LdByte
	case word&0xF000 == 0x7000:
		inst.Op = AddByte
	case word&0xF00F == 0x8000:
		inst.Op = Ld
	case word&0xF00F == 0x8001:
		inst.Op = Or
	case word&0xF00F == 0x8002:
		inst.Op = And
	case word&0xF00F == 0x8003:
		inst.Op = Xor
	case word&0xF00F == 0x8004:
		inst.Op = Add
	case word&0xF00F == 0x8005:
		inst.Op = Sub
	case word&0xF00F == 0x8006:
		inst.Op = Shr
	case word&0xF00F == 0x8007:
		inst.Op = Subn
	case word&0xF00F == 0x800E:
		inst.Op = Shl
	case word&0xF00F == 0x9000:
		inst.Op = Sne
	case word&0xF000 == 0xA000:
		inst.Op = Ldi
	case word&0xF000 == 0xB000:
		inst.Op = JpV0
	case word&0xF000 == 0xC000:
		inst.Op = Rnd
	case word&0xF0FF == 0xF007:
		inst.Op = LdVxDelay
	case word&0xF0FF == 0xF015:
		inst.Op = LdDelayVx
	case word&0xF0FF == 0xF018:
		inst.Op = LdSoundVx
	}

	return inst
}

/// String renders the instruction as assembly source.
///
func (inst Instruction) String() string {
	switch inst.Op {
	case Cls:
		return "CLS"
	case Ret:
		return "RET"
	case Sys:
		return fmt.Sprintf("SYS    #%04X", inst.NNN)
	case Jp:
		return fmt.Sprintf("JP     #%04X", inst.NNN)
	case Call:
		return fmt.Sprintf("CALL   #%04X", inst.NNN)
	case JpV0:
		return fmt.Sprintf("JP     V0, #%04X", inst.NNN)
	case SeByte:
		return fmt.Sprintf("SE     V%X, #%02X", inst.X, inst.KK)
	case SneByte:
		return fmt.Sprintf("SNE    V%X, #%02X", inst.X, inst.KK)
	case Se:
		return fmt.Sprintf("SE     V%X, V%X", inst.X, inst.Y)
	case Sne:
		return fmt.Sprintf("SNE    V%X, V%X", inst.X, inst.Y)
	case LdByte:
		return fmt.Sprintf("LD     V%X, #%02X", inst.X, inst.KK)
	case AddByte:
		return fmt.Sprintf("ADD    V%X, #%02X", inst.X, inst.KK)
	case Ld:
		return fmt.Sprintf("LD     V%X, V%X", inst.X, inst.Y)
	case Or:
		return fmt.Sprintf("OR     V%X, V%X", inst.X, inst.Y)
	case And:
		return fmt.Sprintf("AND    V%X, V%X", inst.X, inst.Y)
	case Xor:
		return fmt.Sprintf("XOR    V%X, V%X", inst.X, inst.Y)
	case Add:
		return fmt.Sprintf("ADD    V%X, V%X", inst.X, inst.Y)
	case Sub:
		return fmt.Sprintf("SUB    V%X, V%X", inst.X, inst.Y)
	case Shr:
		return fmt.Sprintf("SHR    V%X", inst.X)
	case Subn:
		return fmt.Sprintf("SUBN   V%X, V%X", inst.X, inst.Y)
	case Shl:
		return fmt.Sprintf("SHL    V%X", inst.X)
	case Ldi:
		return fmt.Sprintf("LD     I, #%04X", inst.NNN)
	case Rnd:
		return fmt.Sprintf("RND    V%X, #%02X", inst.X, inst.KK)
	case LdVxDelay:
		return fmt.Sprintf("LD     V%X, DT", inst.X)
	case LdDelayVx:
		return fmt.Sprintf("LD     DT, V%X", inst.X)
	case LdSoundVx:
		return fmt.Sprintf("LD     ST, V%X", inst.X)
	}

	// unknown instruction
	return "??"
}
