package chip8

import "fmt"

/// Storage is the addressable-cell capability shared by the register
/// file and memory. Both expose the same get/set surface so code that
/// moves bytes around can work against either one.
///
type Storage interface {
	Get(i int) byte
	Set(i int, b byte)
}

/// Registers is the file of 16 virtual registers, V0-VF. VF doubles as
/// the flag register for carry, borrow, and shift-out bits.
///
type Registers [16]byte

/// Memory is the 4K of addressable CHIP-8 memory. The first 512 bytes
/// are conventionally reserved; programs load at 0x200.
///
type Memory [0x1000]byte

var (
	_ Storage = (*Registers)(nil)
	_ Storage = (*Memory)(nil)
)

/// Get a virtual register value.
///
func (r *Registers) Get(i int) byte {
	if i < 0 || i >= len(r) {
		panic(fmt.Errorf("register out of range: V%X", i))
	}

	return r[i]
}

/// Set a virtual register value.
///
func (r *Registers) Set(i int, b byte) {
	if i < 0 || i >= len(r) {
		panic(fmt.Errorf("register out of range: V%X", i))
	}

	r[i] = b
}

/// Get a byte of memory.
///
func (m *Memory) Get(i int) byte {
	if i < 0 || i >= len(m) {
		panic(fmt.Errorf("address out of range: #%04X", i))
	}

	return m[i]
}

/// Set a byte of memory.
///
func (m *Memory) Set(i int, b byte) {
	if i < 0 || i >= len(m) {
		panic(fmt.Errorf("address out of range: #%04X", i))
	}

	m[i] = b
}
