package chip8

import (
	"errors"
	"fmt"
)

var (
	/// ErrUnknownOpcode is returned when executing an instruction the
	/// decoder could not match. The driver owns the continuation
	/// policy: halt, log and skip, or treat as a bad ROM.
	///
	ErrUnknownOpcode = errors.New("unknown opcode")

	/// ErrNotImplemented is returned for opcodes that are recognized
	/// as architecturally valid but intentionally not implemented by
	/// this core (SYS, CLS). They are never silently absorbed.
	///
	ErrNotImplemented = errors.New("opcode not implemented")
)

/// Execute applies a single decoded instruction to the machine state.
/// A well-formed instruction never fails; Unknown and unimplemented
/// instructions return an error and leave the state untouched.
///
func (vm *CHIP_8) Execute(inst Instruction) error {
	switch inst.Op {
	case Unknown:
		return fmt.Errorf("%w: %04X", ErrUnknownOpcode, inst.Opcode)
	case Sys:
		return fmt.Errorf("%w: SYS #%04X", ErrNotImplemented, inst.NNN)
	case Cls:
		return fmt.Errorf("%w: CLS", ErrNotImplemented)
	case Ret:
		vm.ret()
	case Jp:
		vm.jump(inst.NNN)
	case Call:
		vm.call(inst.NNN)
	case JpV0:
		vm.jumpV0(inst.NNN)
	case SeByte:
		vm.skipIf(inst.X, inst.KK)
	case SneByte:
		vm.skipIfNot(inst.X, inst.KK)
	case Se:
		vm.skipIfXY(inst.X, inst.Y)
	case Sne:
		vm.skipIfNotXY(inst.X, inst.Y)
	case LdByte:
		vm.loadX(inst.X, inst.KK)
	case AddByte:
		vm.addX(inst.X, inst.KK)
	case Ld:
		vm.loadXY(inst.X, inst.Y)
	case Or:
		vm.or(inst.X, inst.Y)
	case And:
		vm.and(inst.X, inst.Y)
	case Xor:
		vm.xor(inst.X, inst.Y)
	case Add:
		vm.addXY(inst.X, inst.Y)
	case Sub:
		vm.subXY(inst.X, inst.Y)
	case Shr:
		vm.shr(inst.X)
	case Subn:
		vm.subYX(inst.X, inst.Y)
	case Shl:
		vm.shl(inst.X)
	case Ldi:
		vm.loadI(inst.NNN)
	case Rnd:
		vm.rnd(inst.X, inst.KK)
	case LdVxDelay:
		vm.loadXDT(inst.X)
	case LdDelayVx:
		vm.loadDTX(inst.X)
	case LdSoundVx:
		vm.loadSTX(inst.X)
	}

	// observe the instruction and the post-execution state
	vm.trace.Trace(inst, vm)

	return nil
}

/// return from subroutine. an empty stack is inert; no valid program
/// returns without a matching call.
///
func (vm *CHIP_8) ret() {
	if n := len(vm.Stack); n > 0 {
		vm.PC = vm.Stack[n-1] & 0xFFF
		vm.Stack = vm.Stack[:n-1]
	}
}

/// jump to address.
///
func (vm *CHIP_8) jump(address uint16) {
	vm.PC = address
}

/// jump to address + v0.
///
func (vm *CHIP_8) jumpV0(address uint16) {
	vm.PC = address + uint16(vm.V[0])
}

/// call a subroutine at address, pushing the program counter.
///
func (vm *CHIP_8) call(address uint16) {
	vm.Stack = append(vm.Stack, vm.PC)
	vm.PC = address & 0xFFF
}

/// skip next instruction if vx == kk.
///
func (vm *CHIP_8) skipIf(x uint, b byte) {
	if vm.V[x] == b {
		vm.PC += 2
	}
}

/// skip next instruction if vx != kk.
///
func (vm *CHIP_8) skipIfNot(x uint, b byte) {
	if vm.V[x] != b {
		vm.PC += 2
	}
}

/// skip next instruction if vx == vy.
///
func (vm *CHIP_8) skipIfXY(x, y uint) {
	if vm.V[x] == vm.V[y] {
		vm.PC += 2
	}
}

/// skip next instruction if vx != vy.
///
func (vm *CHIP_8) skipIfNotXY(x, y uint) {
	if vm.V[x] != vm.V[y] {
		vm.PC += 2
	}
}

/// load kk into vx.
///
func (vm *CHIP_8) loadX(x uint, b byte) {
	vm.V[x] = b
}

/// add kk to vx, wrapping. no flag is set; this is the deliberate
/// difference from the register-register add.
///
func (vm *CHIP_8) addX(x uint, b byte) {
	vm.V[x] += b
}

/// load vy into vx.
///
func (vm *CHIP_8) loadXY(x, y uint) {
	vm.V[x] = vm.V[y]
}

/// or vx with vy into vx. VF is left untouched.
///
func (vm *CHIP_8) or(x, y uint) {
	vm.V[x] |= vm.V[y]
}

/// and vx with vy into vx. VF is left untouched.
///
func (vm *CHIP_8) and(x, y uint) {
	vm.V[x] &= vm.V[y]
}

/// xor vx with vy into vx. VF is left untouched.
///
func (vm *CHIP_8) xor(x, y uint) {
	vm.V[x] ^= vm.V[y]
}

/// add vy to vx with carry in VF. operands are read before anything
/// is written so x or y being F still reads the stale value, and VF
/// is written last.
///
func (vm *CHIP_8) addXY(x, y uint) {
	sum := uint16(vm.V[x]) + uint16(vm.V[y])

	vm.V[x] = byte(sum & 0xFF)

	if sum > 0xFF {
		vm.V[0xF] = 1
	} else {
		vm.V[0xF] = 0
	}
}

/// subtract vy from vx, VF = not borrow.
///
func (vm *CHIP_8) subXY(x, y uint) {
	vx, vy := vm.V[x], vm.V[y]

	if vx > vy {
		vm.V[0xF] = 1
	} else {
		vm.V[0xF] = 0
	}

	vm.V[x] = vx - vy
}

/// subtract vx from vy into vx, VF = not borrow.
///
func (vm *CHIP_8) subYX(x, y uint) {
	vx, vy := vm.V[x], vm.V[y]

	if vy > vx {
		vm.V[0xF] = 1
	} else {
		vm.V[0xF] = 0
	}

	vm.V[x] = vy - vx
}

/// shr vx 1 bit, VF = LSB of vx before the shift.
///
func (vm *CHIP_8) shr(x uint) {
	vx := vm.V[x]

	vm.V[0xF] = vx & 1
	vm.V[x] = vx >> 1
}

/// shl vx 1 bit, VF = MSB of vx before the shift. the shifted-out
/// bit survives only in VF.
///
func (vm *CHIP_8) shl(x uint) {
	vx := vm.V[x]

	vm.V[0xF] = vx >> 7
	vm.V[x] = vx << 1
}

/// load the address register.
///
func (vm *CHIP_8) loadI(address uint16) {
	vm.I = address
}

/// load a random byte & kk into vx.
///
func (vm *CHIP_8) rnd(x uint, b byte) {
	vm.V[x] = vm.rand.Byte() & b
}

/// load the delay timer into vx.
///
func (vm *CHIP_8) loadXDT(x uint) {
	vm.V[x] = vm.DT
}

/// load vx into the delay timer.
///
func (vm *CHIP_8) loadDTX(x uint) {
	vm.DT = vm.V[x]
}

/// load vx into the sound timer.
///
func (vm *CHIP_8) loadSTX(x uint) {
	vm.ST = vm.V[x]
}
