package encoder

// Field shift positions within a 32-bit instruction word.
const (
	RsShift    = 21 // bits 25-21: first source register
	RtShift    = 16 // bits 20-16: second source / target register
	RdShift    = 11 // bits 15-11: destination register (R-type)
	ShamtShift = 6  // bits 10-6: shift amount (R-type)
)

// Field masks.
const (
	Imm16Mask    = 0xFFFF     // low 16 bits: immediate / displacement
	Target26Mask = 0x03FFFFFF // low 26 bits: jump target
)

// funct codes selecting the R-type operation (low 6 bits of the word).
const (
	FunctJR  uint8 = 0x08
	FunctADD uint8 = 0x20
	FunctSUB uint8 = 0x22
	FunctAND uint8 = 0x24
	FunctOR  uint8 = 0x25
	FunctSLT uint8 = 0x2a
)

// rtypeFuncts maps an R-type mnemonic to its funct code.
var rtypeFuncts = map[string]uint8{
	"add": FunctADD,
	"sub": FunctSUB,
	"and": FunctAND,
	"or":  FunctOR,
	"slt": FunctSLT,
	"jr":  FunctJR,
}

// WordSize is the size of one MIPS instruction in bytes.
const WordSize = 4
