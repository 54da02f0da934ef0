package vm

import "fmt"

// Signals is the 13-bit control vector the control unit derives from an
// instruction's opcode and funct field: exit, shift, jump_reg, jump,
// reg_dest, alu_src, mem_to_reg, reg_write, mem_read, mem_write, branch,
// alu_op1, alu_op0 (MSB to LSB).
type Signals struct {
	Exit      bool
	Shift     bool
	JumpReg   bool
	Jump      bool
	RegDest   bool
	AluSrc    bool
	MemToReg  bool
	RegWrite  bool
	MemRead   bool
	MemWrite  bool
	Branch    bool
	AluOp1    bool
	AluOp0    bool
}

// signalsFromPattern unpacks a 13-bit pattern into its named signal bits.
func signalsFromPattern(pattern uint16) Signals {
	return Signals{
		Exit:     pattern&4096 != 0,
		Shift:    pattern&2048 != 0,
		JumpReg:  pattern&1024 != 0,
		Jump:     pattern&512 != 0,
		RegDest:  pattern&256 != 0,
		AluSrc:   pattern&128 != 0,
		MemToReg: pattern&64 != 0,
		RegWrite: pattern&32 != 0,
		MemRead:  pattern&16 != 0,
		MemWrite: pattern&8 != 0,
		Branch:   pattern&4 != 0,
		AluOp1:   pattern&2 != 0,
		AluOp0:   pattern&1 != 0,
	}
}

// DecodeControl derives the control signals for the instruction identified
// by op and, for R-type/shift forms (op == 0), funct.
func DecodeControl(op, funct uint8) (Signals, error) {
	if op == 0 {
		switch funct {
		case 8: // jr
			return signalsFromPattern(1024), nil
		case 2, 3: // srl, sra
			return signalsFromPattern(2338), nil
		default: // add, sub, and, or, nor, slt
			return signalsFromPattern(290), nil
		}
	}

	switch op {
	case 35: // lw
		return signalsFromPattern(240), nil
	case 43: // sw
		return signalsFromPattern(136), nil
	case 4: // beq
		return signalsFromPattern(5), nil
	case 8: // addi
		return signalsFromPattern(160), nil
	case 13: // ori
		return signalsFromPattern(163), nil
	case 2: // j
		return signalsFromPattern(512), nil
	case 63: // exit
		return signalsFromPattern(4096), nil
	default:
		return Signals{}, fmt.Errorf("no control pattern defined for opcode %d", op)
	}
}
