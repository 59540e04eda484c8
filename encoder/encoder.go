package encoder

import (
	"strconv"

	"github.com/lookbusy1344/mips-assembler/parser"
)

// Encoder converts validated instruction records into MIPS machine words.
// It dispatches on the opcode tag assigned by the parser; every operand
// token is numeric or a register name by the time it arrives here.
type Encoder struct{}

// NewEncoder creates a new encoder instance
func NewEncoder() *Encoder {
	return &Encoder{}
}

// EncodeProgram encodes every instruction of a parsed program, in order.
func (e *Encoder) EncodeProgram(program *parser.Program) ([]Instruction, error) {
	instructions := make([]Instruction, 0, len(program.Instructions))
	for _, data := range program.Instructions {
		inst, err := e.Encode(data)
		if err != nil {
			return nil, err
		}
		instructions = append(instructions, inst)
	}
	return instructions, nil
}

// Encode converts a single instruction record into its machine word.
func (e *Encoder) Encode(data parser.InstructionData) (Instruction, error) {
	switch data.Opcode {
	case parser.OpRType:
		if data.Tokens[0] == "jr" {
			return NewJR(parser.RegisterNumber(data.Tokens[1])), nil
		}
		funct, ok := rtypeFuncts[data.Tokens[0]]
		if !ok {
			return nil, NewEncodingError(data.Pos, "unknown R-type mnemonic "+data.Tokens[0])
		}
		rd := parser.RegisterNumber(data.Tokens[1])
		rs := parser.RegisterNumber(data.Tokens[2])
		rt := parser.RegisterNumber(data.Tokens[3])
		return NewRType(rd, rs, rt, 0, funct), nil

	case parser.OpADDI, parser.OpSLTI, parser.OpANDI, parser.OpORI:
		// [mnem, rt, rs, imm]
		rt := parser.RegisterNumber(data.Tokens[1])
		rs := parser.RegisterNumber(data.Tokens[2])
		imm, err := e.parseImm16(data.Tokens[3], data.Pos)
		if err != nil {
			return nil, err
		}
		return NewIType(data.Opcode, rt, rs, imm), nil

	case parser.OpBEQ, parser.OpBNE:
		// [mnem, rs, rt, displacement]
		rs := parser.RegisterNumber(data.Tokens[1])
		rt := parser.RegisterNumber(data.Tokens[2])
		imm, err := e.parseImm16(data.Tokens[3], data.Pos)
		if err != nil {
			return nil, err
		}
		return NewIType(data.Opcode, rt, rs, imm), nil

	case parser.OpLW, parser.OpSW:
		// [mnem, rt, offset, base] after the parser's operand rewrite
		rt := parser.RegisterNumber(data.Tokens[1])
		imm, err := e.parseImm16(data.Tokens[2], data.Pos)
		if err != nil {
			return nil, err
		}
		rs := parser.RegisterNumber(data.Tokens[3])
		return NewIType(data.Opcode, rt, rs, imm), nil

	case parser.OpJ, parser.OpJAL:
		// [mnem, address]
		target, err := e.parseTarget(data.Tokens[1], data.Pos)
		if err != nil {
			return nil, err
		}
		return NewJType(data.Opcode, target), nil
	}

	return nil, NewEncodingError(data.Pos,
		"invalid opcode tag 0x"+strconv.FormatUint(uint64(data.Opcode), 16))
}

// parseImm16 parses a decimal or hex operand and truncates it to 16 bits.
// Negative displacements keep their two's-complement low bits.
func (e *Encoder) parseImm16(token string, pos parser.Position) (uint16, error) {
	digits, base := token, 10
	if len(token) > 2 && token[:2] == "0x" {
		digits, base = token[2:], 16
	}
	value, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		return 0, &EncodingError{Pos: pos, Message: "invalid immediate operand " + token, Wrapped: err}
	}
	return uint16(uint64(value) & Imm16Mask), nil
}

// parseTarget parses an absolute jump target and converts it to the 26-bit
// word-address field: (address >> 2) & 0x03FFFFFF.
func (e *Encoder) parseTarget(token string, pos parser.Position) (uint32, error) {
	digits, base := token, 10
	if len(token) > 2 && token[:2] == "0x" {
		digits, base = token[2:], 16
	}
	value, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return 0, &EncodingError{Pos: pos, Message: "invalid jump target " + token, Wrapped: err}
	}
	return uint32(value) >> 2 & Target26Mask, nil
}
