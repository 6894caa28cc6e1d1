package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDumpRegisters(t *testing.T) {
	vm := WithRegisters(0x42)
	vm.I = 0x300
	vm.DT = 9

	lines := vm.DumpRegisters()

	assert.Equal(t, 21, len(lines))
	assert.Equal(t, "V0 - #42", lines[0])
	assert.Equal(t, "VF - #00", lines[15])
	assert.Equal(t, "PC - #0200", lines[16])
	assert.Equal(t, "SP - #0000", lines[17])
	assert.Equal(t, "I  - #0300", lines[18])
	assert.Equal(t, "DT - #09", lines[19])
	assert.Equal(t, "ST - #00", lines[20])
}

func TestDumpAssembly(t *testing.T) {
	vm := New()
	vm.Load([]byte{0x6A, 0x42, 0x12, 0x00})
	vm.PC = Base + 2

	lines := vm.DumpAssembly(3)

	assert.Equal(t, 3, len(lines))
	assert.Equal(t, "0200 - LD     VA, #42", lines[0])
	assert.Equal(t, "0202 - JP     #0200", lines[1])
	assert.Equal(t, "0204 -", lines[2])
}
