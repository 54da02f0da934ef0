package parser

import (
	"fmt"
	"strings"

	"github.com/suarvid-edu/mips-simulator/encoder"
)

// ListingRow is one row of the assembly listing: the address an instruction
// was placed at, its original source text, and its hex encoding.
type ListingRow struct {
	Address uint32
	Source  string
	Hex     string
}

// Program is the result of a successful two-pass assembly: the encoded
// instruction stream, a listing for human inspection, and the resolved
// symbol table.
type Program struct {
	Instructions []*encoder.Instruction
	Listing      []ListingRow
	Symbols      *SymbolTable
}

// Assemble runs both passes over source and produces a Program, or the
// first fatal *Error encountered. A program longer than MaxInstructions is
// reported as a plain error rather than an *Error. filename is used only for
// diagnostics.
func Assemble(source, filename string) (*Program, error) {
	lines := strings.Split(source, "\n")

	symbols, err := BuildSymbolTable(lines, filename)
	if err != nil {
		return nil, err
	}

	instructions, listing, err := secondPass(lines, filename, symbols)
	if err != nil {
		return nil, err
	}

	if len(instructions) > MaxInstructions {
		return nil, fmt.Errorf("program has %d instructions, exceeding the %d limit", len(instructions), MaxInstructions)
	}

	return &Program{Instructions: instructions, Listing: listing, Symbols: symbols}, nil
}

// BuildSymbolTable is Pass 1: it walks the source once, assigning each
// instruction-bearing line the next 4-byte-aligned address and binding any
// label on that line to it. It does not validate instruction syntax.
func BuildSymbolTable(lines []string, filename string) (*SymbolTable, error) {
	symbols := NewSymbolTable()
	var address uint32

	for i, line := range lines {
		pos := Position{Filename: filename, Line: i + 1, Column: 1}

		withoutComment, ok := StripComment(line)
		if !ok {
			continue
		}

		if label, hasLabel := ExtractLabel(withoutComment); hasLabel {
			if label == "" {
				return nil, NewErrorWithContext(pos, ErrorSyntax, "empty label", line)
			}
			if err := symbols.Define(label, address, pos); err != nil {
				return nil, NewErrorWithContext(pos, ErrorDuplicateLabel, err.Error(), line)
			}
		}

		if HasInstruction(withoutComment) {
			address += 4
		}
	}

	return symbols, nil
}

// requiredArity reports the operand count an instruction form expects,
// keyed by its parsed mnemonic. Arity mismatch is a fatal error naming the
// mnemonic and the observed operand count.
func requiredArity(mnemonic string) (int, bool) {
	switch {
	case encoder.IsRType(mnemonic):
		return 3, true
	case encoder.IsShiftType(mnemonic):
		return 3, true
	case mnemonic == "beq":
		return 3, true
	case mnemonic == "addi", mnemonic == "ori":
		return 3, true
	case encoder.IsMemType(mnemonic):
		return 2, true
	case mnemonic == "j":
		return 1, true
	case mnemonic == "jr":
		return 1, true
	case mnemonic == "nop", mnemonic == "exit":
		return 0, true
	default:
		return 0, false
	}
}

// secondPass is Pass 2: it re-walks the source, this time parsing each
// instruction-bearing line's mnemonic and operands, resolving any label
// operand against symbols, and constructing the encoded instruction.
func secondPass(lines []string, filename string, symbols *SymbolTable) ([]*encoder.Instruction, []ListingRow, error) {
	var instructions []*encoder.Instruction
	var listing []ListingRow
	var address uint32

	for i, line := range lines {
		pos := Position{Filename: filename, Line: i + 1, Column: 1}

		withoutComment, ok := StripComment(line)
		if !ok {
			continue
		}
		text, ok := InstructionText(withoutComment)
		if !ok {
			continue
		}

		mnemonic, operands := Fields(text)
		wantArity, known := requiredArity(mnemonic)
		if !known {
			return nil, nil, NewErrorWithContext(pos, ErrorUnknownMnemonic, fmt.Sprintf("unknown mnemonic %q", mnemonic), line)
		}
		if len(operands) != wantArity {
			return nil, nil, NewErrorWithContext(pos, ErrorArityMismatch,
				fmt.Sprintf("%q expects %d operand(s), got %d", mnemonic, wantArity, len(operands)), line)
		}

		instr, err := buildInstruction(mnemonic, operands, address, pos, symbols)
		if err != nil {
			if perr, ok := err.(*Error); ok {
				return nil, nil, perr
			}
			return nil, nil, NewErrorWithContext(pos, ErrorInvalidOperand, err.Error(), line)
		}

		instructions = append(instructions, instr)
		listing = append(listing, ListingRow{Address: address, Source: strings.TrimSpace(line), Hex: instr.HexString()})
		address += 4
	}

	return instructions, listing, nil
}

func buildInstruction(mnemonic string, operands []string, address uint32, pos Position, symbols *SymbolTable) (*encoder.Instruction, error) {
	reg := func(operand string) (uint8, error) {
		n, ok := RegisterNumber(operand)
		if !ok {
			return 0, fmt.Errorf("%q is not a valid register", operand)
		}
		return n, nil
	}

	switch {
	case encoder.IsRType(mnemonic):
		rd, err := reg(operands[0])
		if err != nil {
			return nil, err
		}
		rs, err := reg(operands[1])
		if err != nil {
			return nil, err
		}
		rt, err := reg(operands[2])
		if err != nil {
			return nil, err
		}
		return encoder.NewR(mnemonic, rs, rt, rd)

	case encoder.IsShiftType(mnemonic):
		rd, err := reg(operands[0])
		if err != nil {
			return nil, err
		}
		rt, err := reg(operands[1])
		if err != nil {
			return nil, err
		}
		shamt, err := ParseInt(operands[2])
		if err != nil {
			return nil, fmt.Errorf("invalid shift amount %q: %w", operands[2], err)
		}
		return encoder.NewShift(mnemonic, rt, rd, uint8(shamt))

	case mnemonic == "beq":
		rs, err := reg(operands[0])
		if err != nil {
			return nil, err
		}
		rt, err := reg(operands[1])
		if err != nil {
			return nil, err
		}
		target, err := symbols.Address(operands[2])
		if err != nil {
			return nil, err
		}
		symbols.Reference(operands[2], pos)
		offsetBytes := int32(target) - int32(address+4)
		imm := offsetBytes >> 2
		return encoder.NewI(mnemonic, rs, rt, imm)

	case mnemonic == "addi", mnemonic == "ori":
		rt, err := reg(operands[0])
		if err != nil {
			return nil, err
		}
		rs, err := reg(operands[1])
		if err != nil {
			return nil, err
		}
		imm, err := ParseInt(operands[2])
		if err != nil {
			return nil, fmt.Errorf("invalid immediate %q: %w", operands[2], err)
		}
		return encoder.NewI(mnemonic, rs, rt, int32(imm))

	case encoder.IsMemType(mnemonic):
		rt, err := reg(operands[0])
		if err != nil {
			return nil, err
		}
		offset, baseName, ok := ParseMemOperand(operands[1])
		if !ok {
			return nil, fmt.Errorf("%q is not a valid memory operand, expected offset(base)", operands[1])
		}
		base, err := reg(baseName)
		if err != nil {
			return nil, err
		}
		return encoder.NewMem(mnemonic, rt, base, int32(offset))

	case mnemonic == "j":
		target, err := symbols.Address(operands[0])
		if err != nil {
			return nil, err
		}
		symbols.Reference(operands[0], pos)
		return encoder.NewJ(target)

	case mnemonic == "jr":
		rs, err := reg(operands[0])
		if err != nil {
			return nil, err
		}
		return encoder.NewJR(rs)

	case mnemonic == "nop":
		return encoder.NewNop(), nil

	case mnemonic == "exit":
		return encoder.NewTerminate(), nil

	default:
		return nil, fmt.Errorf("unhandled mnemonic %q", mnemonic)
	}
}
