package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolTableDefineAndLookup(t *testing.T) {
	st := NewSymbolTable()
	pos := Position{Filename: "t.asm", Line: 1}
	assert.NoError(t, st.Define("loop", 8, pos))

	addr, err := st.Address("loop")
	assert.NoError(t, err)
	assert.Equal(t, uint32(8), addr)
}

func TestSymbolTableDuplicateLabelIsError(t *testing.T) {
	st := NewSymbolTable()
	pos := Position{Filename: "t.asm", Line: 1}
	assert.NoError(t, st.Define("loop", 0, pos))
	assert.Error(t, st.Define("loop", 4, pos))
}

func TestSymbolTableWhitespaceLabelIsError(t *testing.T) {
	st := NewSymbolTable()
	assert.Error(t, st.Define("bad label", 0, Position{}))
}

func TestSymbolTableUndefinedAddressIsError(t *testing.T) {
	st := NewSymbolTable()
	_, err := st.Address("missing")
	assert.Error(t, err)
}

func TestSymbolTableUnused(t *testing.T) {
	st := NewSymbolTable()
	pos := Position{Filename: "t.asm", Line: 1}
	assert.NoError(t, st.Define("used", 0, pos))
	assert.NoError(t, st.Define("unused", 4, pos))
	st.Reference("used", pos)

	unused := st.Unused()
	assert.Len(t, unused, 1)
	assert.Equal(t, "unused", unused[0].Name)
}
