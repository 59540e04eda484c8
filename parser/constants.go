package parser

// CodeSegmentOffset is the base virtual address of the text segment.
// Instruction index * 4 is added to it to form an absolute PC.
const CodeSegmentOffset uint32 = 0x00400000

// Opcode tags. The tag is the upper byte of the final instruction word for
// I- and J-format instructions, and zero for every R-format mnemonic
// (including jr, which carries its identity in the funct field).
const (
	OpRType uint32 = 0x00000000
	OpADDI  uint32 = 0x20000000
	OpSLTI  uint32 = 0x28000000
	OpANDI  uint32 = 0x30000000
	OpORI   uint32 = 0x34000000
	OpBEQ   uint32 = 0x10000000
	OpBNE   uint32 = 0x14000000
	OpLW    uint32 = 0x8c000000
	OpSW    uint32 = 0xac000000
	OpJ     uint32 = 0x08000000
	OpJAL   uint32 = 0x0c000000
)

// opcodeTags maps each recognized mnemonic to its dispatch tag.
var opcodeTags = map[string]uint32{
	"add":  OpRType,
	"sub":  OpRType,
	"and":  OpRType,
	"or":   OpRType,
	"slt":  OpRType,
	"jr":   OpRType,
	"addi": OpADDI,
	"slti": OpSLTI,
	"andi": OpANDI,
	"ori":  OpORI,
	"beq":  OpBEQ,
	"bne":  OpBNE,
	"lw":   OpLW,
	"sw":   OpSW,
	"j":    OpJ,
	"jal":  OpJAL,
}

// OpcodeTag resolves a mnemonic to its dispatch tag.
func OpcodeTag(mnemonic string) (uint32, bool) {
	tag, ok := opcodeTags[mnemonic]
	return tag, ok
}
