package encoder

import "fmt"

// signExtend16 sign-extends the low 16 bits of v into an int32.
func signExtend16(v uint32) int32 {
	return int32(int16(uint16(v)))
}

// fitsSigned reports whether v fits in a signed field of the given width.
func fitsSigned(v int64, bits uint) bool {
	lo := -(int64(1) << (bits - 1))
	hi := int64(1)<<(bits-1) - 1
	return v >= lo && v <= hi
}

// fitsUnsigned reports whether v fits in an unsigned field of the given width.
func fitsUnsigned(v int64, bits uint) bool {
	return v >= 0 && v < int64(1)<<bits
}

// checkImmediate16 validates a signed 16-bit immediate or branch offset.
func checkImmediate16(v int64) error {
	if !fitsSigned(v, 16) {
		return fmt.Errorf("immediate %d does not fit in a signed 16-bit field", v)
	}
	return nil
}

// checkShamt validates a 5-bit unsigned shift amount.
func checkShamt(v int64) error {
	if !fitsUnsigned(v, 5) {
		return fmt.Errorf("shift amount %d does not fit in 5 bits", v)
	}
	return nil
}

// checkRegister validates a 5-bit register number.
func checkRegister(v int64) error {
	if !fitsUnsigned(v, 5) {
		return fmt.Errorf("register number %d out of range 0..31", v)
	}
	return nil
}

// checkJumpTarget validates that a word-aligned byte address, once shifted
// right by 2, fits in 26 bits.
func checkJumpTarget(byteAddr uint32) error {
	if byteAddr%4 != 0 {
		return fmt.Errorf("jump target 0x%08x is not word-aligned", byteAddr)
	}
	if !fitsUnsigned(int64(byteAddr>>2), 26) {
		return fmt.Errorf("jump target 0x%08x does not fit in 26 bits after shifting", byteAddr)
	}
	return nil
}
