package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestAssembleInstructions(t *testing.T) {
	tests := []struct {
		src  string
		want []byte
	}{
		{"\tCLS", []byte{0x00, 0xE0}},
		{"\tRET", []byte{0x00, 0xEE}},
		{"\tSYS #123", []byte{0x01, 0x23}},
		{"\tJP #2AB", []byte{0x12, 0xAB}},
		{"\tJP V0, #2AB", []byte{0xB2, 0xAB}},
		{"\tCALL #2AB", []byte{0x22, 0xAB}},
		{"\tSE V1, #42", []byte{0x31, 0x42}},
		{"\tSNE V1, #42", []byte{0x41, 0x42}},
		{"\tSE V1, V2", []byte{0x51, 0x20}},
		{"\tSNE V1, V2", []byte{0x91, 0x20}},
		{"\tLD V1, #42", []byte{0x61, 0x42}},
		{"\tLD V1, 66", []byte{0x61, 0x42}},
		{"\tLD V1, $.1....1.", []byte{0x61, 0x42}},
		{"\tADD V1, #42", []byte{0x71, 0x42}},
		{"\tLD V1, V2", []byte{0x81, 0x20}},
		{"\tOR V1, V2", []byte{0x81, 0x21}},
		{"\tAND V1, V2", []byte{0x81, 0x22}},
		{"\tXOR V1, V2", []byte{0x81, 0x23}},
		{"\tADD V1, V2", []byte{0x81, 0x24}},
		{"\tSUB V1, V2", []byte{0x81, 0x25}},
		{"\tSHR V1", []byte{0x81, 0x16}},
		{"\tSUBN V1, V2", []byte{0x81, 0x27}},
		{"\tSHL V1", []byte{0x81, 0x1E}},
		{"\tLD I, #2AB", []byte{0xA2, 0xAB}},
		{"\tRND V1, #42", []byte{0xC1, 0x42}},
		{"\tLD V1, DT", []byte{0xF1, 0x07}},
		{"\tLD DT, V1", []byte{0xF1, 0x15}},
		{"\tLD ST, V1", []byte{0xF1, 0x18}},
		{"\tBYTE #12, #34", []byte{0x12, 0x34}},
		{"\tWORD #1234", []byte{0x12, 0x34}},
	}

	for _, tt := range tests {
		out, err := Assemble([]byte(tt.src))

		assert.NoError(t, err)
		assert.Equal(t, tt.want, out.ROM)
	}
}

func TestAssembledInstructionsDecode(t *testing.T) {
	out, err := Assemble([]byte("\tLD VA, #42\n\tADD VA, VB\n\tRND V3, #0F"))
	assert.NoError(t, err)

	vm := New()
	vm.Load(out.ROM)

	inst := Decode(vm.ReadOpcode())
	assert.Equal(t, LdByte, inst.Op)
	assert.Equal(t, uint(0xA), inst.X)
	assert.Equal(t, byte(0x42), inst.KK)

	vm.PC += 2
	inst = Decode(vm.ReadOpcode())
	assert.Equal(t, Add, inst.Op)
	assert.Equal(t, uint(0xA), inst.X)
	assert.Equal(t, uint(0xB), inst.Y)

	vm.PC += 2
	inst = Decode(vm.ReadOpcode())
	assert.Equal(t, Rnd, inst.Op)
	assert.Equal(t, byte(0x0F), inst.KK)
}

func TestAssembleLabelReference(t *testing.T) {
	src := ".START\tLD V0, #01\n\tJP START"

	out, err := Assemble([]byte(src))

	assert.NoError(t, err)
	assert.Equal(t, []byte{0x60, 0x01, 0x12, 0x00}, out.ROM)
}

func TestAssembleForwardLabelReference(t *testing.T) {
	src := "\tJP DONE\n.DONE\tRET"

	out, err := Assemble([]byte(src))

	assert.NoError(t, err)
	assert.Equal(t, []byte{0x12, 0x02, 0x00, 0xEE}, out.ROM)
}

func TestAssembleWordForwardLabelReferences(t *testing.T) {
	src := "\tWORD A, B\n.A\tRET\n.B\tCLS"

	out, err := Assemble([]byte(src))

	// each word slot resolves to its own label address
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x04, 0x02, 0x06, 0x00, 0xEE, 0x00, 0xE0}, out.ROM)
}

func TestAssembleEquAndVar(t *testing.T) {
	src := ".SPEED\tEQU #42\n.TMP\tVAR VA\n\tLD TMP, SPEED"

	out, err := Assemble([]byte(src))

	assert.NoError(t, err)
	assert.Equal(t, []byte{0x6A, 0x42}, out.ROM)
}

func TestAssembleComments(t *testing.T) {
	src := "\tLD V0, #01 ; load the counter"

	out, err := Assemble([]byte(src))

	assert.NoError(t, err)
	assert.Equal(t, []byte{0x60, 0x01}, out.ROM)
}

func TestAssembleAlignAndPad(t *testing.T) {
	out, err := Assemble([]byte("\tBYTE #01\n\tALIGN 4\n\tBYTE #02"))

	assert.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x00, 0x00, 0x00, 0x02}, out.ROM)

	out, err = Assemble([]byte("\tBYTE #01\n\tPAD 3\n\tBYTE #02"))

	assert.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x00, 0x00, 0x00, 0x02}, out.ROM)
}

func TestAssembleByteString(t *testing.T) {
	out, err := Assemble([]byte("\tBYTE \"HI\""))

	assert.NoError(t, err)
	assert.Equal(t, []byte("HI"), out.ROM)
}

func TestAssembleUnresolvedLabelFails(t *testing.T) {
	_, err := Assemble([]byte("\tJP NOWHERE"))

	assert.True(t, err != nil)
}

func TestAssembleDuplicateLabelFails(t *testing.T) {
	_, err := Assemble([]byte(".A\tRET\n.A\tRET"))

	assert.True(t, err != nil)
}

func TestAssembleExcludedMnemonicFails(t *testing.T) {
	// draw and keypad instructions are outside this core's set
	_, err := Assemble([]byte("\tDRW V0, V1, 5"))

	assert.True(t, err != nil)
}

func TestAssembleIllegalOperandsFail(t *testing.T) {
	for _, src := range []string{
		"\tSHR V1, V2",
		"\tSUB V1, #02",
		"\tRND V1, V2",
		"\tCALL V1",
		"\tLD DT, #42",
	} {
		_, err := Assemble([]byte(src))

		assert.True(t, err != nil)
	}
}
