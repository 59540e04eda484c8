package encoder

import (
	"github.com/lookbusy1344/mips-assembler/parser"
)

// Instruction is a fully encoded 32-bit machine word. Encoding happens once
// at construction; Word returns the cached value.
type Instruction interface {
	Word() uint32
}

// RType is a register-format instruction:
// [opcode:6 | rs:5 | rt:5 | rd:5 | shamt:5 | funct:6], opcode zero.
type RType struct {
	Rs, Rt, Rd parser.Register
	Shamt      uint8
	Funct      uint8
	word       uint32
}

// NewRType builds an R-type instruction and encodes its word.
func NewRType(rd, rs, rt parser.Register, shamt, funct uint8) RType {
	word := parser.OpRType |
		uint32(rs)<<RsShift |
		uint32(rt)<<RtShift |
		uint32(rd)<<RdShift |
		uint32(shamt)<<ShamtShift |
		uint32(funct)
	return RType{Rs: rs, Rt: rt, Rd: rd, Shamt: shamt, Funct: funct, word: word}
}

// NewJR builds the jr special case: rs holds the target register, rt, rd
// and shamt are zero, funct is 0x08.
func NewJR(rs parser.Register) RType {
	return NewRType(parser.ZERO, rs, parser.ZERO, 0, FunctJR)
}

func (i RType) Word() uint32 { return i.word }

// IType is an immediate-format instruction, shared by arithmetic
// immediates, loads, stores and branches:
// [opcode:6 | rs:5 | rt:5 | imm:16].
// Branch displacements are signed; the 16-bit truncation happens here.
type IType struct {
	Opcode uint32
	Rs, Rt parser.Register
	Imm16  uint16
	word   uint32
}

// NewIType builds an I-type instruction and encodes its word.
func NewIType(opcode uint32, rt, rs parser.Register, imm16 uint16) IType {
	word := opcode |
		uint32(rs)<<RsShift |
		uint32(rt)<<RtShift |
		uint32(imm16)&Imm16Mask
	return IType{Opcode: opcode, Rs: rs, Rt: rt, Imm16: imm16, word: word}
}

func (i IType) Word() uint32 { return i.word }

// JType is a jump-format instruction: [opcode:6 | target:26]. The target is
// the already word-shifted 26-bit field.
type JType struct {
	Opcode   uint32
	Target26 uint32
	word     uint32
}

// NewJType builds a J-type instruction and encodes its word.
func NewJType(opcode uint32, target26 uint32) JType {
	word := opcode | target26&Target26Mask
	return JType{Opcode: opcode, Target26: target26, word: word}
}

func (i JType) Word() uint32 { return i.word }
