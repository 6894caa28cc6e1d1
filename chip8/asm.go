package chip8

import (
	"bufio"
	"bytes"
	"fmt"
)

/// Assembly is a completely assembled source file.
///
type Assembly struct {
	/// ROM is the final, assembled bytes to load.
	///
	ROM []byte

	/// Label mapping.
	///
	Labels map[string]token

	/// Addresses with unresolved labels.
	///
	Unresolved map[int]string

	/// Base address the ROM begins at.
	///
	Base int
}

/// Assemble an input CHIP-8 source code file. Only the instruction
/// set this core executes is accepted, plus the BYTE, WORD, ALIGN,
/// and PAD data directives.
///
func Assemble(program []byte) (out *Assembly, err error) {
	var line int

	// create an empty, return assembly
	out = &Assembly{
		ROM:        make([]byte, Base, 0x1000),
		Labels:     make(map[string]token),
		Unresolved: make(map[int]string),
		Base:       Base,
	}

	// no error
	err = nil

	// handle panics during assembly
	defer func() {
		if r := recover(); r != nil {
			if line > 0 {
				err = fmt.Errorf("line %d - %s", line, r)
			} else {
				err = fmt.Errorf("%s", r)
			}

			// return an empty ROM
			out = &Assembly{Base: Base}
		}
	}()

	// create simple line scanner over the file
	reader := bytes.NewReader(bytes.ToUpper(program))
	scanner := bufio.NewScanner(reader)

	// parse and assemble
	for line = 1; scanner.Scan(); line++ {
		out.assemble(&tokenScanner{bytes: scanner.Bytes()})
	}

	// resolve all label addresses
	for address, label := range out.Unresolved {
		if t, ok := out.Labels[label]; ok {
			if t.typ != TOKEN_LIT {
				panic("label does not resolve to address!")
			}

			msb := byte(t.val.(int) >> 8)
			lsb := byte(t.val.(int) & 0xFF)

			// labels are always addressed within 12 bits, so merging
			// the msb into the instruction nibble is safe; WORD data
			// defaulted to 0x0200 and is simply overwritten
			out.ROM[address] = msb | (out.ROM[address] & 0xF0)
			out.ROM[address+1] = lsb

			// delete the unresolved address
			delete(out.Unresolved, address)
		}
	}

	// clear the line number as we're done assembling
	line = 0

	// if there are any unresolved addresses, panic
	for _, label := range out.Unresolved {
		panic(fmt.Errorf("unresolved label: %s", label))
	}

	// drop the first 512 bytes from the rom
	out.ROM = out.ROM[Base:]

	// done
	return
}

/// Compile a single line into the assembly.
///
func (a *Assembly) assemble(s *tokenScanner) {
	t := s.scanToken()

	// assign labels
	if t.typ == TOKEN_LABEL {
		t = a.assembleLabel(t.val.(string), s)
	}

	// continue assembling
	switch {
	case t.typ == TOKEN_INSTRUCTION:
		a.assembleInstruction(t.val.(string), s)
	case t.typ != TOKEN_END:
		panic("unexpected token")
	}
}

/// Scan for a label and add it to the assembly.
///
func (a *Assembly) assembleLabel(label string, s *tokenScanner) token {
	if _, exists := a.Labels[label]; exists {
		panic("duplicate label")
	}

	// by default, the label is assigned the current address
	a.Labels[label] = token{typ: TOKEN_LIT, val: len(a.ROM)}

	// scan the next token
	t := s.scanToken()

	// if EQU or VAR, reassign the label
	if t.typ == TOKEN_EQU || t.typ == TOKEN_VAR {
		v := s.scanToken()

		// equ requires a literal, and var requires a v-register
		if (t.typ == TOKEN_EQU && v.typ == TOKEN_LIT) || (t.typ == TOKEN_VAR && v.typ == TOKEN_V) {
			a.Labels[label] = v

			// should be the final token
			if t = s.scanToken(); t.typ == TOKEN_END {
				return t
			}
		}

		panic("illegal label assignment")
	}

	return t
}

/// Compile a single instruction into the assembly.
///
func (a *Assembly) assembleInstruction(i string, s *tokenScanner) {
	tokens := s.scanOperands()

	switch i {
	case "CLS":
		a.ROM = append(a.ROM, a.assembleCLS(tokens)...)
	case "RET":
		a.ROM = append(a.ROM, a.assembleRET(tokens)...)
	case "SYS":
		a.ROM = append(a.ROM, a.assembleSYS(tokens)...)
	case "JP":
		a.ROM = append(a.ROM, a.assembleJP(tokens)...)
	case "CALL":
		a.ROM = append(a.ROM, a.assembleCALL(tokens)...)
	case "SE":
		a.ROM = append(a.ROM, a.assembleSE(tokens)...)
	case "SNE":
		a.ROM = append(a.ROM, a.assembleSNE(tokens)...)
	case "OR":
		a.ROM = append(a.ROM, a.assembleOR(tokens)...)
	case "AND":
		a.ROM = append(a.ROM, a.assembleAND(tokens)...)
	case "XOR":
		a.ROM = append(a.ROM, a.assembleXOR(tokens)...)
	case "SHR":
		a.ROM = append(a.ROM, a.assembleSHR(tokens)...)
	case "SHL":
		a.ROM = append(a.ROM, a.assembleSHL(tokens)...)
	case "ADD":
		a.ROM = append(a.ROM, a.assembleADD(tokens)...)
	case "SUB":
		a.ROM = append(a.ROM, a.assembleSUB(tokens)...)
	case "SUBN":
		a.ROM = append(a.ROM, a.assembleSUBN(tokens)...)
	case "RND":
		a.ROM = append(a.ROM, a.assembleRND(tokens)...)
	case "LD":
		a.ROM = append(a.ROM, a.assembleLD(tokens)...)
	case "BYTE":
		a.ROM = append(a.ROM, a.assembleBYTE(tokens)...)
	case "WORD":
		a.ROM = append(a.ROM, a.assembleWORD(tokens)...)
	case "ALIGN":
		a.ROM = append(a.ROM, a.assembleALIGN(tokens)...)
	case "PAD":
		a.ROM = append(a.ROM, a.assemblePAD(tokens)...)
	}
}

/// Assemble a single operand, expanding label references.
///
func (a *Assembly) assembleOperand(t token) token {
	return a.assembleOperandAt(t, len(a.ROM))
}

/// Expand a label reference whose value will be emitted at the given
/// address. Unknown labels are recorded there for the fixup pass, so
/// data directives must pass the slot they are about to fill, not the
/// current end of the ROM.
///
func (a *Assembly) assembleOperandAt(t token, address int) token {
	if t.typ == TOKEN_REF {
		label := t.val.(string)
		if v, exists := a.Labels[label]; exists {
			t = v
		} else {
			t = token{typ: TOKEN_LIT, val: Base}

			// add an unresolved address
			a.Unresolved[address] = label
		}
	}

	return t
}

/// Match the desired tokens with a list of tokens. Expand defines and labels.
///
func (a *Assembly) assembleOperands(tokens []token, m ...tokenType) ([]token, bool) {
	ops := make([]token, 0, 3)

	// the number of desired tokens should match
	if len(tokens) != len(m) {
		return nil, false
	}

	// expand and compare the token types
	for i, typ := range m {
		t := a.assembleOperand(tokens[i])

		// compare token types
		if t.typ != typ {
			return nil, false
		}

		// append the operand
		ops = append(ops, t)
	}

	return ops, true
}

/// Assemble a CLS instruction.
///
func (a *Assembly) assembleCLS(tokens []token) []byte {
	if len(tokens) == 0 {
		return []byte{0x00, 0xE0}
	}

	panic("illegal instruction")
}

/// Assemble a RET instruction.
///
func (a *Assembly) assembleRET(tokens []token) []byte {
	if len(tokens) == 0 {
		return []byte{0x00, 0xEE}
	}

	panic("illegal instruction")
}

/// Assemble a SYS instruction.
///
func (a *Assembly) assembleSYS(tokens []token) []byte {
	if ops, ok := a.assembleOperands(tokens, TOKEN_LIT); ok {
		n := ops[0].val.(int)

		if n < 0x1000 {
			return []byte{byte(n >> 8 & 0xF), byte(n & 0xFF)}
		}
	}

	panic("illegal instruction")
}

/// Assemble a JP instruction.
///
func (a *Assembly) assembleJP(tokens []token) []byte {
	if ops, ok := a.assembleOperands(tokens, TOKEN_LIT); ok {
		n := ops[0].val.(int)

		if n < 0x1000 {
			return []byte{0x10 | byte(n>>8&0xF), byte(n & 0xFF)}
		}
	}

	if ops, ok := a.assembleOperands(tokens, TOKEN_V, TOKEN_LIT); ok {
		v := ops[0].val.(int)
		n := ops[1].val.(int)

		if v == 0 && n < 0x1000 {
			return []byte{0xB0 | byte(n>>8&0xF), byte(n & 0xFF)}
		}
	}

	panic("illegal instruction")
}

/// Assemble a CALL instruction.
///
func (a *Assembly) assembleCALL(tokens []token) []byte {
	if ops, ok := a.assembleOperands(tokens, TOKEN_LIT); ok {
		n := ops[0].val.(int)

		if n < 0x1000 {
			return []byte{0x20 | byte(n>>8&0xF), byte(n & 0xFF)}
		}
	}

	panic("illegal instruction")
}

/// Assemble a SE instruction.
///
func (a *Assembly) assembleSE(tokens []token) []byte {
	if ops, ok := a.assembleOperands(tokens, TOKEN_V, TOKEN_LIT); ok {
		x := ops[0].val.(int)
		b := ops[1].val.(int)

		if b < 0x100 {
			return []byte{0x30 | byte(x), byte(b)}
		}
	}

	if ops, ok := a.assembleOperands(tokens, TOKEN_V, TOKEN_V); ok {
		x := ops[0].val.(int)
		y := ops[1].val.(int)

		return []byte{0x50 | byte(x), byte(y << 4)}
	}

	panic("illegal instruction")
}

/// Assemble a SNE instruction.
///
func (a *Assembly) assembleSNE(tokens []token) []byte {
	if ops, ok := a.assembleOperands(tokens, TOKEN_V, TOKEN_LIT); ok {
		x := ops[0].val.(int)
		b := ops[1].val.(int)

		if b < 0x100 {
			return []byte{0x40 | byte(x), byte(b)}
		}
	}

	if ops, ok := a.assembleOperands(tokens, TOKEN_V, TOKEN_V); ok {
		x := ops[0].val.(int)
		y := ops[1].val.(int)

		return []byte{0x90 | byte(x), byte(y << 4)}
	}

	panic("illegal instruction")
}

/// Assemble a OR instruction.
///
func (a *Assembly) assembleOR(tokens []token) []byte {
	if ops, ok := a.assembleOperands(tokens, TOKEN_V, TOKEN_V); ok {
		x := ops[0].val.(int)
		y := ops[1].val.(int)

		return []byte{0x80 | byte(x), byte(y<<4) | 0x01}
	}

	panic("illegal instruction")
}

/// Assemble a AND instruction.
///
func (a *Assembly) assembleAND(tokens []token) []byte {
	if ops, ok := a.assembleOperands(tokens, TOKEN_V, TOKEN_V); ok {
		x := ops[0].val.(int)
		y := ops[1].val.(int)

		return []byte{0x80 | byte(x), byte(y<<4) | 0x02}
	}

	panic("illegal instruction")
}

/// Assemble a XOR instruction.
///
func (a *Assembly) assembleXOR(tokens []token) []byte {
	if ops, ok := a.assembleOperands(tokens, TOKEN_V, TOKEN_V); ok {
		x := ops[0].val.(int)
		y := ops[1].val.(int)

		return []byte{0x80 | byte(x), byte(y<<4) | 0x03}
	}

	panic("illegal instruction")
}

/// Assemble a SHR instruction.
///
func (a *Assembly) assembleSHR(tokens []token) []byte {
	if ops, ok := a.assembleOperands(tokens, TOKEN_V); ok {
		x := ops[0].val.(int)

		return []byte{0x80 | byte(x), byte(x<<4) | 0x06}
	}

	panic("illegal instruction")
}

/// Assemble a SHL instruction.
///
func (a *Assembly) assembleSHL(tokens []token) []byte {
	if ops, ok := a.assembleOperands(tokens, TOKEN_V); ok {
		x := ops[0].val.(int)

		return []byte{0x80 | byte(x), byte(x<<4) | 0x0E}
	}

	panic("illegal instruction")
}

/// Assemble a ADD instruction.
///
func (a *Assembly) assembleADD(tokens []token) []byte {
	if ops, ok := a.assembleOperands(tokens, TOKEN_V, TOKEN_LIT); ok {
		x := ops[0].val.(int)
		b := ops[1].val.(int)

		if b < 0x100 {
			return []byte{0x70 | byte(x), byte(b)}
		}
	}

	if ops, ok := a.assembleOperands(tokens, TOKEN_V, TOKEN_V); ok {
		x := ops[0].val.(int)
		y := ops[1].val.(int)

		return []byte{0x80 | byte(x), byte(y<<4) | 0x04}
	}

	panic("illegal instruction")
}

/// Assemble a SUB instruction.
///
func (a *Assembly) assembleSUB(tokens []token) []byte {
	if ops, ok := a.assembleOperands(tokens, TOKEN_V, TOKEN_V); ok {
		x := ops[0].val.(int)
		y := ops[1].val.(int)

		return []byte{0x80 | byte(x), byte(y<<4) | 0x05}
	}

	panic("illegal instruction")
}

/// Assemble a SUBN instruction.
///
func (a *Assembly) assembleSUBN(tokens []token) []byte {
	if ops, ok := a.assembleOperands(tokens, TOKEN_V, TOKEN_V); ok {
		x := ops[0].val.(int)
		y := ops[1].val.(int)

		return []byte{0x80 | byte(x), byte(y<<4) | 0x07}
	}

	panic("illegal instruction")
}

/// Assemble a RND instruction.
///
func (a *Assembly) assembleRND(tokens []token) []byte {
	if ops, ok := a.assembleOperands(tokens, TOKEN_V, TOKEN_LIT); ok {
		x := ops[0].val.(int)
		b := ops[1].val.(int)

		if b < 0x100 {
			return []byte{0xC0 | byte(x), byte(b)}
		}
	}

	panic("illegal instruction")
}

/// Assemble a LD instruction.
///
func (a *Assembly) assembleLD(tokens []token) []byte {
	if ops, ok := a.assembleOperands(tokens, TOKEN_V, TOKEN_LIT); ok {
		x := ops[0].val.(int)
		b := ops[1].val.(int)

		if b < 0x100 {
			return []byte{0x60 | byte(x), byte(b)}
		}
	}

	if ops, ok := a.assembleOperands(tokens, TOKEN_V, TOKEN_V); ok {
		x := ops[0].val.(int)
		y := ops[1].val.(int)

		return []byte{0x80 | byte(x), byte(y << 4)}
	}

	if ops, ok := a.assembleOperands(tokens, TOKEN_I, TOKEN_LIT); ok {
		n := ops[1].val.(int)

		if n < 0x1000 {
			return []byte{0xA0 | byte(n>>8&0xF), byte(n & 0xFF)}
		}
	}

	if ops, ok := a.assembleOperands(tokens, TOKEN_V, TOKEN_DT); ok {
		x := ops[0].val.(int)

		return []byte{0xF0 | byte(x), 0x07}
	}

	if ops, ok := a.assembleOperands(tokens, TOKEN_DT, TOKEN_V); ok {
		x := ops[1].val.(int)

		return []byte{0xF0 | byte(x), 0x15}
	}

	if ops, ok := a.assembleOperands(tokens, TOKEN_ST, TOKEN_V); ok {
		x := ops[1].val.(int)

		return []byte{0xF0 | byte(x), 0x18}
	}

	panic("illegal instruction")
}

/// Assemble a BYTE instruction.
///
func (a *Assembly) assembleBYTE(tokens []token) []byte {
	b := make([]byte, 0)

	for _, t := range tokens {
		op := a.assembleOperandAt(t, len(a.ROM)+len(b))

		switch op.typ {
		case TOKEN_LIT:
			if op.val.(int) > 0xFF {
				panic("invalid byte")
			}

			b = append(b, byte(op.val.(int)))
		case TOKEN_TEXT:
			b = append(b, op.val.(string)...)
		}
	}

	return b
}

/// Assemble a WORD instruction.
///
func (a *Assembly) assembleWORD(tokens []token) []byte {
	b := make([]byte, 0)

	for _, t := range tokens {
		op := a.assembleOperandAt(t, len(a.ROM)+len(b))

		if op.typ != TOKEN_LIT || op.val.(int) > 0xFFFF {
			panic("invalid word")
		}

		msb := op.val.(int) >> 8 & 0xFF
		lsb := op.val.(int) & 0xFF

		// store msb first
		b = append(b, byte(msb), byte(lsb))
	}

	return b
}

/// Assemble an ALIGN instruction.
///
func (a *Assembly) assembleALIGN(tokens []token) []byte {
	if ops, ok := a.assembleOperands(tokens, TOKEN_LIT); ok {
		n := ops[0].val.(int)

		if n > 0 && n&(n-1) == 0 {
			offset := len(a.ROM) & (n - 1)

			// already aligned?
			if offset == 0 {
				return nil
			}

			// reserve bytes to meet alignment
			return make([]byte, n-offset)
		}
	}

	panic("illegal alignment")
}

/// Assemble a PAD instruction.
///
func (a *Assembly) assemblePAD(tokens []token) []byte {
	if ops, ok := a.assembleOperands(tokens, TOKEN_LIT); ok {
		n := ops[0].val.(int)

		if n >= 0 && n < 0x1000-len(a.ROM) {
			return make([]byte, n)
		}
	}

	panic("illegal size")
}
