// Package encoder turns a decoded MIPS instruction form into its 32-bit
// machine encoding. The FieldXxx accessors return the fields an Instruction
// was built with; there is no decoder from a 32-bit word back to an
// Instruction. Each instruction is a single tagged struct
// rather than a polymorphic interface: the Kind field selects which fields
// are meaningful, and Encode/field-accessors switch on it. This keeps the
// bit layouts explicit and lets a reader check exhaustiveness by eye.
package encoder

import (
	"fmt"
	"strings"
)

// Kind tags which of the MIPS instruction forms an Instruction represents.
type Kind int

const (
	KindR Kind = iota
	KindShift
	KindI
	KindMem
	KindJ
	KindJR
	KindNop
	KindTerminate
)

func (k Kind) String() string {
	switch k {
	case KindR:
		return "R"
	case KindShift:
		return "ShiftR"
	case KindI:
		return "I"
	case KindMem:
		return "Mem"
	case KindJ:
		return "J"
	case KindJR:
		return "JR"
	case KindNop:
		return "Nop"
	case KindTerminate:
		return "Terminate"
	default:
		return "Unknown"
	}
}

// Instruction is a single assembled MIPS instruction. Fields that do not
// apply to the instruction's Kind hold their zero value; use the FieldXxx
// accessors below to distinguish "zero" from "not applicable".
type Instruction struct {
	Kind     Kind
	Mnemonic string

	Op    uint8
	RS    uint8
	RT    uint8
	RD    uint8
	Shamt uint8
	Funct uint8
	Imm   int16  // signed immediate / branch offset / memory offset
	Base  uint8  // memory-access base register (aliases RS)
	Target uint32 // J-type: absolute byte address, pre-shift
}

// NewR constructs an add/sub/and/or/nor/slt instruction.
func NewR(mnemonic string, rs, rt, rd uint8) (*Instruction, error) {
	funct, ok := rTypeFunct[mnemonic]
	if !ok {
		return nil, fmt.Errorf("%q is not an R-type mnemonic", mnemonic)
	}
	for _, r := range []uint8{rs, rt, rd} {
		if err := checkRegister(int64(r)); err != nil {
			return nil, err
		}
	}
	return &Instruction{Kind: KindR, Mnemonic: mnemonic, Op: OpR, RS: rs, RT: rt, RD: rd, Funct: funct}, nil
}

// NewShift constructs an sll/srl/sra instruction. rs is always 0.
func NewShift(mnemonic string, rt, rd, shamt uint8) (*Instruction, error) {
	funct, ok := shiftFunct[mnemonic]
	if !ok {
		return nil, fmt.Errorf("%q is not a shift mnemonic", mnemonic)
	}
	if err := checkRegister(int64(rt)); err != nil {
		return nil, err
	}
	if err := checkRegister(int64(rd)); err != nil {
		return nil, err
	}
	if err := checkShamt(int64(shamt)); err != nil {
		return nil, err
	}
	return &Instruction{Kind: KindShift, Mnemonic: mnemonic, Op: OpR, RT: rt, RD: rd, Shamt: shamt, Funct: funct}, nil
}

// NewI constructs an addi/ori/beq instruction. imm is the already-resolved
// signed 16-bit field value (for beq, the word-scaled PC-relative offset).
func NewI(mnemonic string, rs, rt uint8, imm int32) (*Instruction, error) {
	op, ok := iTypeOpcode[mnemonic]
	if !ok {
		return nil, fmt.Errorf("%q is not an I-type mnemonic", mnemonic)
	}
	if err := checkRegister(int64(rs)); err != nil {
		return nil, err
	}
	if err := checkRegister(int64(rt)); err != nil {
		return nil, err
	}
	if err := checkImmediate16(int64(imm)); err != nil {
		return nil, err
	}
	return &Instruction{Kind: KindI, Mnemonic: mnemonic, Op: op, RS: rs, RT: rt, Imm: int16(imm)}, nil
}

// NewMem constructs an lw/sw instruction: `mnemonic rt, offset(base)`.
func NewMem(mnemonic string, rt, base uint8, offset int32) (*Instruction, error) {
	op, ok := memOpcode[mnemonic]
	if !ok {
		return nil, fmt.Errorf("%q is not a memory-access mnemonic", mnemonic)
	}
	if err := checkRegister(int64(rt)); err != nil {
		return nil, err
	}
	if err := checkRegister(int64(base)); err != nil {
		return nil, err
	}
	if err := checkImmediate16(int64(offset)); err != nil {
		return nil, err
	}
	return &Instruction{Kind: KindMem, Mnemonic: mnemonic, Op: op, RS: base, RT: rt, Base: base, Imm: int16(offset)}, nil
}

// NewJ constructs a j instruction. target is an absolute byte address.
func NewJ(target uint32) (*Instruction, error) {
	if err := checkJumpTarget(target); err != nil {
		return nil, err
	}
	return &Instruction{Kind: KindJ, Mnemonic: "j", Op: OpJ, Target: target}, nil
}

// NewJR constructs a jr instruction.
func NewJR(rs uint8) (*Instruction, error) {
	if err := checkRegister(int64(rs)); err != nil {
		return nil, err
	}
	return &Instruction{Kind: KindJR, Mnemonic: "jr", Op: 0, RS: rs, Funct: FunctJr}, nil
}

// NewNop constructs the literal all-zero word.
func NewNop() *Instruction {
	return &Instruction{Kind: KindNop, Mnemonic: "nop"}
}

// NewTerminate constructs the "exit" sentinel instruction.
func NewTerminate() *Instruction {
	return &Instruction{Kind: KindTerminate, Mnemonic: "exit", Op: OpExit}
}

// Encode produces the 32-bit machine word for the instruction.
func (i *Instruction) Encode() uint32 {
	switch i.Kind {
	case KindR:
		return uint32(i.Op)<<26 | uint32(i.RS)<<21 | uint32(i.RT)<<16 | uint32(i.RD)<<11 | uint32(i.Funct)
	case KindShift:
		return uint32(i.RT)<<16 | uint32(i.RD)<<11 | uint32(i.Shamt)<<6 | uint32(i.Funct)
	case KindI:
		return uint32(i.Op)<<26 | uint32(i.RS)<<21 | uint32(i.RT)<<16 | uint32(uint16(i.Imm))
	case KindMem:
		return uint32(i.Op)<<26 | uint32(i.Base)<<21 | uint32(i.RT)<<16 | uint32(uint16(i.Imm))
	case KindJ:
		return uint32(OpJ)<<26 | (i.Target>>2)&0x03FFFFFF
	case KindJR:
		return uint32(i.RS)<<21 | uint32(FunctJr)
	case KindNop:
		return 0x00000000
	case KindTerminate:
		return 0xFFFFFFFF
	default:
		panic(fmt.Sprintf("encoder: unknown instruction kind %v", i.Kind))
	}
}

// HexString renders the encoding as an 8-hex-digit string prefixed "0x".
func (i *Instruction) HexString() string {
	return fmt.Sprintf("0x%08x", i.Encode())
}

// BinString renders the encoding as a 32-character big-endian bit string.
func (i *Instruction) BinString() string {
	word := i.Encode()
	var sb strings.Builder
	for b := 31; b >= 0; b-- {
		if word&(1<<uint(b)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// FieldRS returns the rs field, or "not applicable".
func (i *Instruction) FieldRS() (int64, bool) {
	switch i.Kind {
	case KindR, KindI, KindJR:
		return int64(i.RS), true
	default:
		return 0, false
	}
}

// FieldRT returns the rt field, or "not applicable".
func (i *Instruction) FieldRT() (int64, bool) {
	switch i.Kind {
	case KindR, KindShift, KindI, KindMem:
		return int64(i.RT), true
	default:
		return 0, false
	}
}

// FieldRD returns the rd field, or "not applicable".
func (i *Instruction) FieldRD() (int64, bool) {
	switch i.Kind {
	case KindR, KindShift:
		return int64(i.RD), true
	default:
		return 0, false
	}
}

// FieldShamt returns the shamt field, or "not applicable".
func (i *Instruction) FieldShamt() (int64, bool) {
	if i.Kind == KindShift {
		return int64(i.Shamt), true
	}
	return 0, false
}

// FieldFunct returns the funct field, or "not applicable".
func (i *Instruction) FieldFunct() (int64, bool) {
	switch i.Kind {
	case KindR, KindShift, KindJR:
		return int64(i.Funct), true
	default:
		return 0, false
	}
}

// FieldImm returns the signed immediate/offset field, or "not applicable".
func (i *Instruction) FieldImm() (int64, bool) {
	switch i.Kind {
	case KindI, KindMem:
		return int64(i.Imm), true
	default:
		return 0, false
	}
}

// FieldBase returns the memory-access base register, or "not applicable".
func (i *Instruction) FieldBase() (int64, bool) {
	if i.Kind == KindMem {
		return int64(i.Base), true
	}
	return 0, false
}

// FieldTarget returns the unshifted jump target byte address, or "not applicable".
func (i *Instruction) FieldTarget() (int64, bool) {
	if i.Kind == KindJ {
		return int64(i.Target), true
	}
	return 0, false
}

// String renders a mnemonic-style view of the instruction for listings.
func (i *Instruction) String() string {
	switch i.Kind {
	case KindR:
		return fmt.Sprintf("%s $%d, $%d, $%d", i.Mnemonic, i.RD, i.RS, i.RT)
	case KindShift:
		return fmt.Sprintf("%s $%d, $%d, %d", i.Mnemonic, i.RD, i.RT, i.Shamt)
	case KindI:
		return fmt.Sprintf("%s $%d, $%d, %d", i.Mnemonic, i.RT, i.RS, i.Imm)
	case KindMem:
		return fmt.Sprintf("%s $%d, %d($%d)", i.Mnemonic, i.RT, i.Imm, i.Base)
	case KindJ:
		return fmt.Sprintf("j 0x%08x", i.Target)
	case KindJR:
		return fmt.Sprintf("jr $%d", i.RS)
	case KindNop:
		return "nop"
	case KindTerminate:
		return "exit"
	default:
		return "?"
	}
}
