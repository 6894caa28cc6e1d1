package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestNewStartsZeroedAtBase(t *testing.T) {
	vm := New()

	assert.Equal(t, uint16(Base), vm.PC)
	assert.Equal(t, uint16(0), vm.I)
	assert.Equal(t, byte(0), vm.DT)
	assert.Equal(t, byte(0), vm.ST)
	assert.Equal(t, 0, len(vm.Stack))

	for i := range vm.V {
		assert.Equal(t, byte(0), vm.V[i])
	}
}

func TestWithRegisters(t *testing.T) {
	vm := WithRegisters(10, 15, 20)

	assert.Equal(t, byte(10), vm.V[0])
	assert.Equal(t, byte(15), vm.V[1])
	assert.Equal(t, byte(20), vm.V[2])
	assert.Equal(t, byte(0), vm.V[3])
}

func TestLoadProgramAtBase(t *testing.T) {
	vm := New()
	vm.Load([]byte{0x12, 0x34})

	assert.Equal(t, byte(0x12), vm.Memory.Get(Base))
	assert.Equal(t, byte(0x34), vm.Memory.Get(Base+1))
	assert.Equal(t, byte(0), vm.Memory.Get(Base+2))
}

func TestReadOpcodeIsBigEndian(t *testing.T) {
	vm := New()
	vm.Load([]byte{0x6A, 0x42})

	assert.Equal(t, uint16(0x6A42), vm.ReadOpcode())
}

func TestStorageCapability(t *testing.T) {
	vm := New()

	// registers and memory share the same get/set surface
	for _, s := range []Storage{&vm.V, &vm.Memory} {
		s.Set(0, 0x42)

		assert.Equal(t, byte(0x42), s.Get(0))
	}
}

func TestRegisterIndexOutOfRangePanics(t *testing.T) {
	vm := New()

	assertPanics(t, func() { vm.V.Get(16) })
	assertPanics(t, func() { vm.V.Set(-1, 0) })
}

func TestMemoryAddressOutOfRangePanics(t *testing.T) {
	vm := New()

	assertPanics(t, func() { vm.Memory.Get(0x1000) })
	assertPanics(t, func() { vm.Memory.Set(-1, 0) })
}

func TestInstancesAreIndependent(t *testing.T) {
	a := New()
	b := New()

	assert.NoError(t, a.Execute(Decode(0x60FF)))

	assert.Equal(t, byte(0xFF), a.V[0])
	assert.Equal(t, byte(0), b.V[0])
}

func assertPanics(t *testing.T, f func()) {
	t.Helper()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()

	f()
}
