package vm

import "fmt"

// dataMemorySize is the fixed size, in bytes, of the simulated data memory.
const dataMemorySize = 1000

// DataMemory is a byte-addressable, big-endian data memory. Word access
// requires the address to be a multiple of 4.
type DataMemory struct {
	bytes [dataMemorySize]byte
}

// NewDataMemory returns a zero-initialized 1000-byte data memory.
func NewDataMemory() *DataMemory {
	return &DataMemory{}
}

// ReadByte returns the byte at idx, or ok=false if idx is out of range.
func (m *DataMemory) ReadByte(idx uint32) (byte, bool) {
	if idx >= dataMemorySize {
		return 0, false
	}
	return m.bytes[idx], true
}

// ReadWord returns the big-endian word at addr when enable is true and addr
// is word-aligned and in range; otherwise ok is false and no error occurs
// (an unaligned or disabled read is simply not performed, per the control
// signal that gates it).
func (m *DataMemory) ReadWord(addr uint32, enable bool) (int32, bool) {
	if !enable || addr%4 != 0 || addr >= dataMemorySize {
		return 0, false
	}
	word := uint32(m.bytes[addr])<<24 | uint32(m.bytes[addr+1])<<16 | uint32(m.bytes[addr+2])<<8 | uint32(m.bytes[addr+3])
	return int32(word), true
}

// WriteWord stores value as a big-endian word at addr when enable is true.
// A misaligned address is a recoverable error. Writing past the end of
// memory panics: it indicates a bug in the simulated program or assembler,
// not a condition the caller can sensibly recover from.
func (m *DataMemory) WriteWord(addr uint32, value int32, enable bool) error {
	if !enable {
		return nil
	}
	if addr%4 != 0 {
		return fmt.Errorf("write to unaligned address 0x%x", addr)
	}
	if addr+4 > dataMemorySize {
		panic(fmt.Sprintf("vm: write at 0x%x exceeds %d-byte data memory", addr, dataMemorySize))
	}
	word := uint32(value)
	m.bytes[addr] = byte(word >> 24)
	m.bytes[addr+1] = byte(word >> 16)
	m.bytes[addr+2] = byte(word >> 8)
	m.bytes[addr+3] = byte(word)
	return nil
}

// Reset zeroes every byte of memory.
func (m *DataMemory) Reset() {
	for i := range m.bytes {
		m.bytes[i] = 0
	}
}

// Dump returns every (index, byte) pair in the memory, for display.
func (m *DataMemory) Dump() []MemoryCell {
	cells := make([]MemoryCell, dataMemorySize)
	for i, b := range m.bytes {
		cells[i] = MemoryCell{Address: uint32(i), Value: b}
	}
	return cells
}

// MemoryCell is a single byte of data memory paired with its address, used
// when rendering a memory dump.
type MemoryCell struct {
	Address uint32
	Value   byte
}
