package parser

// Register is one of the 32 MIPS general-purpose registers.
type Register uint8

const (
	ZERO Register = 0
	AT   Register = 1
	V0   Register = 2
	V1   Register = 3
	A0   Register = 4
	A1   Register = 5
	A2   Register = 6
	A3   Register = 7
	T0   Register = 8
	T1   Register = 9
	T2   Register = 10
	T3   Register = 11
	T4   Register = 12
	T5   Register = 13
	T6   Register = 14
	T7   Register = 15
	S0   Register = 16
	S1   Register = 17
	S2   Register = 18
	S3   Register = 19
	S4   Register = 20
	S5   Register = 21
	S6   Register = 22
	S7   Register = 23
	T8   Register = 24
	T9   Register = 25
	K0   Register = 26
	K1   Register = 27
	GP   Register = 28
	SP   Register = 29
	FP   Register = 30
	RA   Register = 31
)

var registerNumbers = map[string]Register{
	"$zero": ZERO,
	"$at":   AT,
	"$v0":   V0,
	"$v1":   V1,
	"$a0":   A0,
	"$a1":   A1,
	"$a2":   A2,
	"$a3":   A3,
	"$t0":   T0,
	"$t1":   T1,
	"$t2":   T2,
	"$t3":   T3,
	"$t4":   T4,
	"$t5":   T5,
	"$t6":   T6,
	"$t7":   T7,
	"$s0":   S0,
	"$s1":   S1,
	"$s2":   S2,
	"$s3":   S3,
	"$s4":   S4,
	"$s5":   S5,
	"$s6":   S6,
	"$s7":   S7,
	"$t8":   T8,
	"$t9":   T9,
	"$k0":   K0,
	"$k1":   K1,
	"$gp":   GP,
	"$sp":   SP,
	"$fp":   FP,
	"$ra":   RA,
}

var registerNames = [32]string{
	"$zero", "$at", "$v0", "$v1", "$a0", "$a1", "$a2", "$a3",
	"$t0", "$t1", "$t2", "$t3", "$t4", "$t5", "$t6", "$t7",
	"$s0", "$s1", "$s2", "$s3", "$s4", "$s5", "$s6", "$s7",
	"$t8", "$t9", "$k0", "$k1", "$gp", "$sp", "$fp", "$ra",
}

// RegisterNameToNumber converts a register name like "$t0" to its number.
func RegisterNameToNumber(name string) (Register, bool) {
	reg, ok := registerNumbers[name]
	return reg, ok
}

// RegisterNumber is the total conversion used after validation: names the
// parser has already accepted resolve normally, anything else falls back to
// ZERO. The parser rejects unknown register names before encoding, so the
// fallback is never reachable on a validated program.
func RegisterNumber(name string) Register {
	return registerNumbers[name]
}

// RegisterName converts a register number back to its canonical name.
func RegisterName(reg Register) string {
	return registerNames[reg&0x1f]
}

// IsRegister checks if a string is a valid register name
func IsRegister(name string) bool {
	_, ok := registerNumbers[name]
	return ok
}
