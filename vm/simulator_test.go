package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/suarvid-edu/mips-simulator/encoder"
)

func mustR(t *testing.T, mnemonic string, rs, rt, rd uint8) *encoder.Instruction {
	t.Helper()
	instr, err := encoder.NewR(mnemonic, rs, rt, rd)
	assert.NoError(t, err)
	return instr
}

func mustI(t *testing.T, mnemonic string, rs, rt uint8, imm int32) *encoder.Instruction {
	t.Helper()
	instr, err := encoder.NewI(mnemonic, rs, rt, imm)
	assert.NoError(t, err)
	return instr
}

func mustMem(t *testing.T, mnemonic string, rt, base uint8, offset int32) *encoder.Instruction {
	t.Helper()
	instr, err := encoder.NewMem(mnemonic, rt, base, offset)
	assert.NoError(t, err)
	return instr
}

// Registers: $t0=8, $t1=9, $t2=10, $zero=0.
const (
	regZero = 0
	regT0   = 8
	regT1   = 9
	regT2   = 10
)

func TestSimulatorSubProgram(t *testing.T) {
	instrs := []*encoder.Instruction{
		mustI(t, "addi", regZero, regT1, 100),
		mustI(t, "addi", regZero, regT2, 300),
		mustR(t, "sub", regT1, regT2, regT0),
	}
	sim := NewSimulator(instrs)

	for i := 0; i < 3; i++ {
		res := sim.Step()
		assert.Equal(t, Success, res, sim.Err())
	}
	assert.Equal(t, int32(-200), sim.Registers.Read(regT0))
	assert.Equal(t, Completed, sim.Step())
}

func TestSimulatorStoreLoadRoundTrip(t *testing.T) {
	instrs := []*encoder.Instruction{
		mustI(t, "addi", regZero, regT1, -100),
		mustMem(t, "sw", regT1, regZero, 8),
		mustMem(t, "lw", regT1, regZero, 8),
	}
	sim := NewSimulator(instrs)

	for i := 0; i < 3; i++ {
		assert.Equal(t, Success, sim.Step())
	}
	assert.Equal(t, int32(-100), sim.Registers.Read(regT1))

	b8, _ := sim.Memory.ReadByte(8)
	b9, _ := sim.Memory.ReadByte(9)
	b10, _ := sim.Memory.ReadByte(10)
	b11, _ := sim.Memory.ReadByte(11)
	assert.Equal(t, []byte{255, 255, 255, 156}, []byte{b8, b9, b10, b11})
}

func TestSimulatorBranchNotTakenAdvancesSequentially(t *testing.T) {
	instrs := []*encoder.Instruction{
		mustI(t, "addi", regZero, regT0, 1),
		{}, // placeholder, replaced below
	}
	beq, err := encoder.NewI("beq", regT0, regZero, 2) // t0 != zero, branch not taken
	assert.NoError(t, err)
	instrs[1] = beq

	sim := NewSimulator(instrs)
	sim.Step()
	sim.Step()
	assert.Equal(t, uint32(8), sim.PC())
}

func TestSimulatorJRJumpsToRegisterValue(t *testing.T) {
	instrs := []*encoder.Instruction{
		mustI(t, "addi", regZero, regT0, 16),
	}
	jr, err := encoder.NewJR(regT0)
	assert.NoError(t, err)
	instrs = append(instrs, jr)

	sim := NewSimulator(instrs)
	sim.Step()
	sim.Step()
	assert.Equal(t, uint32(16), sim.PC())
}

func TestSimulatorResetClearsStateButKeepsProgram(t *testing.T) {
	instrs := []*encoder.Instruction{mustI(t, "addi", regZero, regT0, 5)}
	sim := NewSimulator(instrs)
	sim.Step()
	assert.Equal(t, int32(5), sim.Registers.Read(regT0))

	sim.Reset()
	assert.Equal(t, int32(0), sim.Registers.Read(regT0))
	assert.Equal(t, uint32(0), sim.PC())
	assert.Len(t, sim.instructions, 1)
}
