package parser

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// InstructionData is the validated interchange record handed to the encoder.
// Tokens[0] is the mnemonic; the remaining tokens are the operands, with
// symbolic label and function references already substituted by decimal
// strings of the resolved numeric operand.
type InstructionData struct {
	Opcode uint32 // dispatch tag
	Tokens []string
	Pos    Position
}

// Program is the result of parsing an assembly source.
type Program struct {
	Instructions []InstructionData
	Symbols      *SymbolTable
}

// Parser parses MIPS assembly source in two passes: pass 1 collects labels
// and function entry points, pass 2 validates each instruction and resolves
// symbolic operands to numbers.
type Parser struct {
	lexer   *Lexer
	lines   []string
	symbols *SymbolTable
	trace   io.Writer // nil disables progress tracing
}

// Options configures parsing.
type Options struct {
	// CodeSegmentOffset overrides the base text segment address.
	// Zero means the default (0x00400000).
	CodeSegmentOffset uint32
	// Trace receives pass-1/pass-2 progress lines when non-nil.
	Trace io.Writer
}

// NewParser creates a parser over the given source with default options.
// The source is split into lines once; both passes iterate the same slice.
func NewParser(source, filename string) *Parser {
	return NewParserWithOptions(source, filename, Options{})
}

// NewParserWithOptions creates a parser with explicit options.
func NewParserWithOptions(source, filename string, opts Options) *Parser {
	offset := opts.CodeSegmentOffset
	if offset == 0 {
		offset = CodeSegmentOffset
	}
	source = strings.ReplaceAll(source, "\r\n", "\n")
	return &Parser{
		lexer:   NewLexer(filename),
		lines:   strings.Split(source, "\n"),
		symbols: NewSymbolTable(offset),
		trace:   opts.Trace,
	}
}

// Parse runs both passes and returns the validated program.
func (p *Parser) Parse() (*Program, error) {
	if err := p.firstPass(); err != nil {
		return nil, err
	}
	instructions, err := p.secondPass()
	if err != nil {
		return nil, err
	}
	return &Program{Instructions: instructions, Symbols: p.symbols}, nil
}

func (p *Parser) tracef(format string, args ...any) {
	if p.trace != nil {
		fmt.Fprintf(p.trace, format+"\n", args...)
	}
}

// firstPass sweeps the source once, assigning each instruction a sequential
// index and recording label definitions and .end function boundaries. It
// does not tokenize operands.
func (p *Parser) firstPass() *Error {
	index := uint32(0)
	for n, text := range p.lines {
		line, err := p.lexer.Classify(text, n+1)
		if err != nil {
			return err
		}
		switch line.Kind {
		case LineBlank:
			// no index consumed
		case LineLabel:
			if err := p.symbols.DefineLabel(line.Label, index, line.Pos); err != nil {
				return err
			}
			p.tracef("label %s at instruction %d", line.Label, index)
			if line.Rest != "" {
				// an instruction shares the label's line
				index++
			}
		case LineEnd:
			tokens := SplitTokens(line.Text)
			if len(tokens) != 2 {
				return NewError(line.Pos, ErrorUnexpectedSymbol, line.Text,
					".end takes exactly one function name")
			}
			if err := p.symbols.EndFunction(tokens[1], line.Pos); err != nil {
				return err
			}
			p.tracef("function %s", tokens[1])
		case LineInstruction:
			index++
		}
	}
	return nil
}

// secondPass tokenizes each instruction line, validates it against its
// mnemonic's grammar, and resolves symbolic operands. Its instruction index
// advances with the same skip policy as pass 1.
func (p *Parser) secondPass() ([]InstructionData, *Error) {
	var instructions []InstructionData
	index := uint32(0)
	for n, text := range p.lines {
		line, err := p.lexer.Classify(text, n+1)
		if err != nil {
			return nil, err
		}
		stmt := line.Text
		if line.Kind == LineLabel && line.Rest != "" {
			stmt = line.Rest
		} else if line.Kind != LineInstruction {
			continue
		}
		tokens := SplitTokens(stmt)
		data, perr := p.processTokens(tokens, line.Pos, index)
		if perr != nil {
			return nil, perr
		}
		p.tracef("instruction %d: %s", index, strings.Join(data.Tokens, " "))
		instructions = append(instructions, data)
		index++
	}
	return instructions, nil
}

// processTokens dispatches an instruction line on its mnemonic.
func (p *Parser) processTokens(tokens []string, pos Position, index uint32) (InstructionData, *Error) {
	if len(tokens) == 0 {
		return InstructionData{}, NewError(pos, ErrorUnexpectedSymbol, "",
			"missing instruction mnemonic")
	}
	opcode, ok := OpcodeTag(tokens[0])
	if !ok {
		return InstructionData{}, NewError(pos, ErrorInvalidInstruction, tokens[0],
			"invalid instruction")
	}

	switch opcode {
	case OpRType:
		if tokens[0] == "jr" {
			return p.parseJR(opcode, tokens, pos)
		}
		return p.parseRType(opcode, tokens, pos)
	case OpADDI, OpSLTI, OpANDI, OpORI:
		return p.parseImmediate(opcode, tokens, pos)
	case OpBEQ, OpBNE:
		return p.parseBranch(opcode, tokens, pos, index)
	case OpLW, OpSW:
		return p.parseMemory(opcode, tokens, pos)
	case OpJ:
		return p.parseJump(opcode, tokens, pos)
	case OpJAL:
		return p.parseJAL(opcode, tokens, pos)
	}
	return InstructionData{}, NewError(pos, ErrorInvalidOpcode, tokens[0],
		"no parse rule for opcode tag")
}

// checkArity verifies the token count. Missing tokens report the last token
// present; surplus tokens are rejected.
func checkArity(tokens []string, want int, pos Position) *Error {
	if len(tokens) < want {
		last := ""
		if len(tokens) > 0 {
			last = tokens[len(tokens)-1]
		}
		return NewError(pos, ErrorUnexpectedSymbol, last, "missing operand")
	}
	if len(tokens) > want {
		return NewError(pos, ErrorUnexpectedSymbol, tokens[want], "unexpected symbol")
	}
	return nil
}

func expectRegister(token string, pos Position) *Error {
	if !IsRegister(token) {
		return NewError(pos, ErrorRegisterExpected, token, "expected register name")
	}
	return nil
}

// parseRType validates [mnem, rd, rs, rt].
func (p *Parser) parseRType(opcode uint32, tokens []string, pos Position) (InstructionData, *Error) {
	if err := checkArity(tokens, 4, pos); err != nil {
		return InstructionData{}, err
	}
	for _, tok := range tokens[1:4] {
		if err := expectRegister(tok, pos); err != nil {
			return InstructionData{}, err
		}
	}
	return InstructionData{Opcode: opcode, Tokens: tokens[:4], Pos: pos}, nil
}

// parseImmediate validates [mnem, rt, rs, imm].
func (p *Parser) parseImmediate(opcode uint32, tokens []string, pos Position) (InstructionData, *Error) {
	if err := checkArity(tokens, 4, pos); err != nil {
		return InstructionData{}, err
	}
	for _, tok := range tokens[1:3] {
		if err := expectRegister(tok, pos); err != nil {
			return InstructionData{}, err
		}
	}
	if !IsImmediateValue(tokens[3]) {
		return InstructionData{}, NewError(pos, ErrorUnexpectedSymbol, tokens[3],
			"expected immediate value")
	}
	return InstructionData{Opcode: opcode, Tokens: tokens[:4], Pos: pos}, nil
}

// parseBranch validates [mnem, rs, rt, target] where target is an immediate
// or a label. A label resolves to the PC-relative displacement in
// instructions, measured from the delay-slot successor.
func (p *Parser) parseBranch(opcode uint32, tokens []string, pos Position, index uint32) (InstructionData, *Error) {
	if err := checkArity(tokens, 4, pos); err != nil {
		return InstructionData{}, err
	}
	for _, tok := range tokens[1:3] {
		if err := expectRegister(tok, pos); err != nil {
			return InstructionData{}, err
		}
	}
	if !IsImmediateValue(tokens[3]) {
		label, ok := p.symbols.Label(tokens[3])
		if !ok {
			return InstructionData{}, NewError(pos, ErrorUnexpectedSymbol, tokens[3],
				"expected immediate value or label name")
		}
		displacement := int32(label.IndexPlusOne) - int32(index) - 2
		p.tracef("branch displacement to %s: %d", tokens[3], displacement)
		tokens[3] = strconv.FormatInt(int64(displacement), 10)
	}
	return InstructionData{Opcode: opcode, Tokens: tokens[:4], Pos: pos}, nil
}

// parseMemory validates [mnem, rt, offset(reg)] and rewrites the compound
// operand to [mnem, rt, offset, reg] so the encoder sees an I-type triple.
func (p *Parser) parseMemory(opcode uint32, tokens []string, pos Position) (InstructionData, *Error) {
	if err := checkArity(tokens, 3, pos); err != nil {
		return InstructionData{}, err
	}
	if err := expectRegister(tokens[1], pos); err != nil {
		return InstructionData{}, err
	}
	operand := tokens[2]
	open := strings.IndexByte(operand, '(')
	if open < 0 {
		return InstructionData{}, NewError(pos, ErrorUnexpectedSymbol, operand, `expected "("`)
	}
	closing := strings.IndexByte(operand, ')')
	if closing < 0 {
		return InstructionData{}, NewError(pos, ErrorUnexpectedSymbol, operand, `expected ")"`)
	}
	reg := operand[open+1 : closing]
	if !IsRegister(reg) {
		return InstructionData{}, NewError(pos, ErrorRegisterExpected, operand,
			"expected register name")
	}
	offset := "0"
	if open > 0 {
		offset = operand[:open]
	}
	rewritten := []string{tokens[0], tokens[1], offset, reg}
	return InstructionData{Opcode: opcode, Tokens: rewritten, Pos: pos}, nil
}

// parseJump validates [j, target]. A label target resolves through the
// labels map to its absolute address.
func (p *Parser) parseJump(opcode uint32, tokens []string, pos Position) (InstructionData, *Error) {
	if err := checkArity(tokens, 2, pos); err != nil {
		return InstructionData{}, err
	}
	if !IsImmediateValue(tokens[1]) {
		label, ok := p.symbols.Label(tokens[1])
		if !ok {
			return InstructionData{}, NewError(pos, ErrorUnexpectedSymbol, tokens[1],
				"expected immediate value or label name")
		}
		tokens[1] = strconv.FormatUint(uint64(label.Address), 10)
	}
	return InstructionData{Opcode: opcode, Tokens: tokens[:2], Pos: pos}, nil
}

// parseJAL validates [jal, target]. A symbolic target resolves through the
// functions map, which holds absolute addresses directly.
func (p *Parser) parseJAL(opcode uint32, tokens []string, pos Position) (InstructionData, *Error) {
	if err := checkArity(tokens, 2, pos); err != nil {
		return InstructionData{}, err
	}
	if !IsImmediateValue(tokens[1]) {
		addr, ok := p.symbols.Function(tokens[1])
		if !ok {
			return InstructionData{}, NewError(pos, ErrorUnexpectedSymbol, tokens[1],
				"expected immediate value or function name")
		}
		tokens[1] = strconv.FormatUint(uint64(addr), 10)
	}
	return InstructionData{Opcode: opcode, Tokens: tokens[:2], Pos: pos}, nil
}

// parseJR validates [jr, reg].
func (p *Parser) parseJR(opcode uint32, tokens []string, pos Position) (InstructionData, *Error) {
	if err := checkArity(tokens, 2, pos); err != nil {
		return InstructionData{}, err
	}
	if err := expectRegister(tokens[1], pos); err != nil {
		return InstructionData{}, err
	}
	return InstructionData{Opcode: opcode, Tokens: tokens[:2], Pos: pos}, nil
}

// IsImmediateValue reports whether value is a decimal number with optional
// leading '-', or a hex number 0x followed by lowercase hex digits.
func IsImmediateValue(value string) bool {
	if value == "" {
		return false
	}
	if strings.HasPrefix(value, "0x") {
		digits := value[2:]
		if digits == "" {
			return false
		}
		for i := 0; i < len(digits); i++ {
			c := digits[i]
			if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
				return false
			}
		}
		return true
	}
	digits := value
	if digits[0] == '-' {
		digits = digits[1:]
	}
	if digits == "" {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}
