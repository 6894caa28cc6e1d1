package chip8

import "fmt"

/// Disassemble the instruction in memory at the given address.
///
func (vm *CHIP_8) Disassemble(i uint) string {
	if int(i) >= len(vm.Memory)-1 {
		return ""
	}

	// fetch the instruction at this location
	word := uint16(vm.Memory[i])<<8 | uint16(vm.Memory[i+1])

	// end of program memory?
	if word == 0 {
		return fmt.Sprintf("%04X -", i)
	}

	return fmt.Sprintf("%04X - %s", i, Decode(word))
}
