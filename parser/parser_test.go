package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssembleSubProgram(t *testing.T) {
	source := `
addi $t1, $zero, 100
addi $t2, $zero, 300
sub  $t0, $t1, $t2
`
	prog, err := Assemble(source, "sub.asm")
	assert.NoError(t, err)
	assert.Len(t, prog.Instructions, 3)
	assert.Equal(t, "0x20090064", prog.Instructions[0].HexString())
	assert.Equal(t, "0x200a012c", prog.Instructions[1].HexString())
	assert.Equal(t, "0x012a4022", prog.Instructions[2].HexString())
}

func TestAssembleResolvesForwardLabel(t *testing.T) {
	source := `
    beq $zero, $zero, done
    addi $t0, $zero, 1
done:
    exit
`
	prog, err := Assemble(source, "branch.asm")
	assert.NoError(t, err)
	assert.Len(t, prog.Instructions, 3)

	addr, err := prog.Symbols.Address("done")
	assert.NoError(t, err)
	assert.Equal(t, uint32(8), addr)

	// beq at address 0, target 8: offset_bytes = 8 - (0+4) = 4, imm = 4>>2 = 1
	imm, ok := prog.Instructions[0].FieldImm()
	assert.True(t, ok)
	assert.Equal(t, int64(1), imm)
}

func TestAssembleUndefinedLabelIsFatal(t *testing.T) {
	source := "j nowhere\n"
	_, err := Assemble(source, "bad.asm")
	assert.Error(t, err)
}

func TestAssembleDuplicateLabelIsFatal(t *testing.T) {
	source := "loop: nop\nloop: nop\n"
	_, err := Assemble(source, "dup.asm")
	assert.Error(t, err)
}

func TestAssembleArityMismatchIsFatal(t *testing.T) {
	source := "add $t0, $t1\n"
	_, err := Assemble(source, "arity.asm")
	assert.Error(t, err)
}

func TestAssembleUnknownMnemonicIsFatal(t *testing.T) {
	source := "frobnicate $t0\n"
	_, err := Assemble(source, "unknown.asm")
	assert.Error(t, err)
}

func TestAssembleListingRecordsSourceAndAddress(t *testing.T) {
	source := "add $t0, $t1, $t2\n"
	prog, err := Assemble(source, "listing.asm")
	assert.NoError(t, err)
	assert.Len(t, prog.Listing, 1)
	assert.Equal(t, uint32(0), prog.Listing[0].Address)
	assert.Equal(t, "0x012a4020", prog.Listing[0].Hex)
}
