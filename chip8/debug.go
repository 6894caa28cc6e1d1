package chip8

import "fmt"

/// DumpRegisters renders the current value of every register as text
/// lines a debugger front end can display next to the disassembly.
///
func (vm *CHIP_8) DumpRegisters() []string {
	lines := make([]string, 0, 22)

	for i := 0; i < 16; i++ {
		lines = append(lines, fmt.Sprintf("V%X - #%02X", i, vm.V[i]))
	}

	lines = append(lines, fmt.Sprintf("PC - #%04X", vm.PC))
	lines = append(lines, fmt.Sprintf("SP - #%04X", len(vm.Stack)))
	lines = append(lines, fmt.Sprintf("I  - #%04X", vm.I))
	lines = append(lines, fmt.Sprintf("DT - #%02X", vm.DT))
	lines = append(lines, fmt.Sprintf("ST - #%02X", vm.ST))

	return lines
}

/// DumpAssembly renders the disassembled instructions around the
/// program counter. The window tracks the PC so the current
/// instruction stays in view while stepping.
///
func (vm *CHIP_8) DumpAssembly(n int) []string {
	addr := uint(vm.PC) - 2

	// keep the window inside memory
	if addr > uint(len(vm.Memory))-2 {
		addr = 0
	}

	lines := make([]string, 0, n)

	for i := 0; i < n; i++ {
		s := vm.Disassemble(addr + uint(i*2))
		if s == "" {
			break
		}

		lines = append(lines, s)
	}

	return lines
}
