package encoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeAdd(t *testing.T) {
	instr, err := NewR("add", 9, 10, 8) // add $t0, $t1, $t2
	assert.NoError(t, err)
	assert.Equal(t, "0x012a4020", instr.HexString())
	assert.Equal(t, "00000001001010100100000000100000", instr.BinString())
}

func TestEncodeAddiWithZero(t *testing.T) {
	instr, err := NewI("addi", 0, 9, 1) // addi $t1, $zero, 1
	assert.NoError(t, err)
	assert.Equal(t, "0x20090001", instr.HexString())
}

func TestEncodeAddiNegativeImmediates(t *testing.T) {
	cases := []struct {
		imm  int32
		want string
	}{
		{-10, "0x2128fff6"},
		{-20, "0x2128ffec"},
		{-100, "0x2128ff9c"},
	}
	for _, c := range cases {
		instr, err := NewI("addi", 9, 8, c.imm) // addi $t0, $t1, imm
		assert.NoError(t, err)
		assert.Equal(t, c.want, instr.HexString())
	}
}

func TestEncodeMemoryAccess(t *testing.T) {
	lw, err := NewMem("lw", 8, 9, 5) // lw $t0, 5($t1)
	assert.NoError(t, err)
	assert.Equal(t, "0x8d280005", lw.HexString())

	lwNeg, err := NewMem("lw", 8, 9, -8)
	assert.NoError(t, err)
	assert.Equal(t, "0x8d28fff8", lwNeg.HexString())

	sw, err := NewMem("sw", 8, 9, -8)
	assert.NoError(t, err)
	assert.Equal(t, "0xad28fff8", sw.HexString())
}

func TestEncodeJRAndJAndShift(t *testing.T) {
	jr, err := NewJR(8) // jr $t0
	assert.NoError(t, err)
	assert.Equal(t, "0x01000008", jr.HexString())

	j, err := NewJ(12)
	assert.NoError(t, err)
	assert.Equal(t, "0x08000003", j.HexString())

	sll, err := NewShift("sll", 9, 8, 1) // sll $t0, $t1, 1
	assert.NoError(t, err)
	assert.Equal(t, "0x00094040", sll.HexString())
}

func TestNopAndTerminate(t *testing.T) {
	assert.Equal(t, uint32(0x00000000), NewNop().Encode())
	assert.Equal(t, uint32(0xFFFFFFFF), NewTerminate().Encode())
}

func TestFieldAccessorsNotApplicable(t *testing.T) {
	instr, err := NewJ(4)
	assert.NoError(t, err)

	_, ok := instr.FieldRS()
	assert.False(t, ok)
	_, ok = instr.FieldRT()
	assert.False(t, ok)
	target, ok := instr.FieldTarget()
	assert.True(t, ok)
	assert.Equal(t, int64(4), target)
}

func TestRegisterOutOfRangeIsRejected(t *testing.T) {
	_, err := NewR("add", 32, 0, 0)
	assert.Error(t, err)
}

func TestImmediateOutOfRangeIsRejected(t *testing.T) {
	_, err := NewI("addi", 0, 8, 40000)
	assert.Error(t, err)
}
