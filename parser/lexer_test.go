package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripComment(t *testing.T) {
	text, ok := StripComment("add $t0, $t1, $t2 # sum")
	assert.True(t, ok)
	assert.Equal(t, "add $t0, $t1, $t2 ", text)

	_, ok = StripComment("   # just a comment")
	assert.False(t, ok)

	text, ok = StripComment("add $t0, $t1, $t2")
	assert.True(t, ok)
	assert.Equal(t, "add $t0, $t1, $t2", text)
}

func TestExtractLabel(t *testing.T) {
	label, ok := ExtractLabel("loop: addi $t0, $t0, 1")
	assert.True(t, ok)
	assert.Equal(t, "loop", label)

	_, ok = ExtractLabel("addi $t0, $t0, 1")
	assert.False(t, ok)

	_, ok = ExtractLabel("# a comment with a : in it")
	assert.False(t, ok)
}

func TestStripLabel(t *testing.T) {
	rest, ok := StripLabel("loop: addi $t0, $t0, 1")
	assert.True(t, ok)
	assert.Equal(t, " addi $t0, $t0, 1", rest)

	_, ok = StripLabel("loop:")
	assert.False(t, ok)

	rest, ok = StripLabel("addi $t0, $t0, 1")
	assert.True(t, ok)
	assert.Equal(t, "addi $t0, $t0, 1", rest)
}

func TestHasInstruction(t *testing.T) {
	assert.True(t, HasInstruction("loop: addi $t0, $t0, 1"))
	assert.False(t, HasInstruction("loop:"))
	assert.False(t, HasInstruction("   # nothing here"))
	assert.False(t, HasInstruction(""))
}

func TestFields(t *testing.T) {
	mnemonic, operands := Fields("add $t0, $t1, $t2")
	assert.Equal(t, "add", mnemonic)
	assert.Equal(t, []string{"$t0", "$t1", "$t2"}, operands)

	mnemonic, operands = Fields("nop")
	assert.Equal(t, "nop", mnemonic)
	assert.Nil(t, operands)
}

func TestParseMemOperand(t *testing.T) {
	offset, base, ok := ParseMemOperand("-4($sp)")
	assert.True(t, ok)
	assert.Equal(t, int64(-4), offset)
	assert.Equal(t, "$sp", base)

	offset, base, ok = ParseMemOperand("8($zero)")
	assert.True(t, ok)
	assert.Equal(t, int64(8), offset)
	assert.Equal(t, "$zero", base)

	_, _, ok = ParseMemOperand("$t0")
	assert.False(t, ok)
}

func TestParseIntHexAndDecimal(t *testing.T) {
	v, err := ParseInt("0x1F")
	assert.NoError(t, err)
	assert.Equal(t, int64(31), v)

	v, err = ParseInt("-100")
	assert.NoError(t, err)
	assert.Equal(t, int64(-100), v)
}
