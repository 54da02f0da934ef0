package parser

// registerNames maps the canonical MIPS register mnemonic to its number.
var registerNames = map[string]uint8{
	"$zero": 0,
	"$at":   1,
	"$v0":   2, "$v1": 3,
	"$a0": 4, "$a1": 5, "$a2": 6, "$a3": 7,
	"$t0": 8, "$t1": 9, "$t2": 10, "$t3": 11, "$t4": 12, "$t5": 13, "$t6": 14, "$t7": 15,
	"$s0": 16, "$s1": 17, "$s2": 18, "$s3": 19, "$s4": 20, "$s5": 21, "$s6": 22, "$s7": 23,
	"$t8": 24, "$t9": 25,
	"$k0": 26, "$k1": 27,
	"$gp": 28, "$sp": 29, "$fp": 30, "$ra": 31,
}

var registerNumbers = func() map[uint8]string {
	m := make(map[uint8]string, len(registerNames))
	for name, num := range registerNames {
		m[num] = name
	}
	return m
}()

// RegisterNumber resolves a register mnemonic (including bare "$N" form) to
// its number 0..31.
func RegisterNumber(name string) (uint8, bool) {
	if n, ok := registerNames[name]; ok {
		return n, true
	}
	if len(name) > 1 && name[0] == '$' {
		if n, ok := parseUintStrict(name[1:]); ok && n < 32 {
			return uint8(n), true
		}
	}
	return 0, false
}

// RegisterName returns the canonical mnemonic for a register number.
func RegisterName(num uint8) string {
	if name, ok := registerNumbers[num]; ok {
		return name
	}
	return "$?"
}

// MaxInstructions is a generous ceiling on program size, guarding against
// runaway input rather than reflecting any architectural limit.
const MaxInstructions = 4096
