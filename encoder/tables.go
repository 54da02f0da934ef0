package encoder

// Opcode values for the supported MIPS subset. R-type and shift-type
// instructions share opcode 0 and are distinguished by Funct.
const (
	OpR     = 0
	OpJ     = 2
	OpBeq   = 4
	OpAddi  = 8
	OpOri   = 13
	OpLw    = 35
	OpSw    = 43
	OpExit  = 63
)

// Funct values for R-type and shift-type instructions (op = 0).
const (
	FunctAdd = 32
	FunctSub = 34
	FunctAnd = 36
	FunctOr  = 37
	FunctNor = 39
	FunctSlt = 42
	FunctSll = 0
	FunctSrl = 2
	FunctSra = 3
	FunctJr  = 8
)

// rTypeFunct maps the mnemonics of the three-register R-type family to
// their funct field.
var rTypeFunct = map[string]uint8{
	"add": FunctAdd,
	"sub": FunctSub,
	"and": FunctAnd,
	"or":  FunctOr,
	"nor": FunctNor,
	"slt": FunctSlt,
}

// shiftFunct maps the shift-amount R-type family to their funct field.
var shiftFunct = map[string]uint8{
	"sll": FunctSll,
	"srl": FunctSrl,
	"sra": FunctSra,
}

// iTypeOpcode maps the two-register-plus-immediate family (excluding
// memory access) to their opcode.
var iTypeOpcode = map[string]uint8{
	"addi": OpAddi,
	"ori":  OpOri,
	"beq":  OpBeq,
}

// memOpcode maps the memory-access family to their opcode.
var memOpcode = map[string]uint8{
	"lw": OpLw,
	"sw": OpSw,
}

// IsRType reports whether mnemonic belongs to the three-register R-type family.
func IsRType(mnemonic string) bool {
	_, ok := rTypeFunct[mnemonic]
	return ok
}

// IsShiftType reports whether mnemonic belongs to the shift-amount R-type family.
func IsShiftType(mnemonic string) bool {
	_, ok := shiftFunct[mnemonic]
	return ok
}

// IsIType reports whether mnemonic belongs to the register/immediate I-type family.
func IsIType(mnemonic string) bool {
	_, ok := iTypeOpcode[mnemonic]
	return ok
}

// IsMemType reports whether mnemonic is a memory-access instruction.
func IsMemType(mnemonic string) bool {
	_, ok := memOpcode[mnemonic]
	return ok
}
