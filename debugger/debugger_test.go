package debugger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/suarvid-edu/mips-simulator/loader"
	"github.com/suarvid-edu/mips-simulator/parser"
	"github.com/suarvid-edu/mips-simulator/vm"
)

const loopSource = `
	addi $t1, $zero, 3
	addi $t0, $zero, 0
loop:
	beq  $t1, $zero, end
	addi $t0, $t0, 1
	addi $t1, $t1, -1
	j    loop
end:
	exit
`

func newLoopDebugger(t *testing.T) *Debugger {
	t.Helper()
	program, err := parser.Assemble(loopSource, "loop.asm")
	assert.NoError(t, err)
	sim := loader.LoadSimulator(program)
	return NewDebugger(sim, program)
}

func TestDebuggerStepAdvancesPC(t *testing.T) {
	dbg := newLoopDebugger(t)
	assert.NoError(t, dbg.ExecuteCommand("step"))
	assert.Equal(t, uint32(4), dbg.Sim.PC())
}

func TestDebuggerBreakpointStopsRun(t *testing.T) {
	dbg := newLoopDebugger(t)
	addr, err := dbg.Symbols.Address("loop")
	assert.NoError(t, err)

	assert.NoError(t, dbg.ExecuteCommand("break loop"))
	assert.Equal(t, 1, dbg.Breakpoints.Count())

	for i := 0; i < 2; i++ {
		assert.NoError(t, dbg.ExecuteCommand("step"))
	}
	assert.Equal(t, addr, dbg.Sim.PC())

	shouldBreak, reason := dbg.ShouldBreak()
	assert.True(t, shouldBreak)
	assert.Contains(t, reason, "breakpoint")
}

func TestDebuggerPrintRegister(t *testing.T) {
	dbg := newLoopDebugger(t)
	assert.NoError(t, dbg.ExecuteCommand("step"))
	assert.NoError(t, dbg.ExecuteCommand("print $t1"))
	assert.Contains(t, dbg.GetOutput(), "0x00000003")
}

func TestDebuggerRunsToCompletion(t *testing.T) {
	dbg := newLoopDebugger(t)
	var result vm.RunResult
	for i := 0; i < 64; i++ {
		result = dbg.Sim.Step()
		if result != vm.Success {
			break
		}
	}
	assert.Equal(t, vm.Completed, result)
	assert.Equal(t, int32(3), dbg.Sim.Registers.Read(8))
}

func TestDebuggerSetRegister(t *testing.T) {
	dbg := newLoopDebugger(t)
	assert.NoError(t, dbg.ExecuteCommand("set $t0 = 42"))
	assert.Equal(t, int32(42), dbg.Sim.Registers.Read(8))
}

func TestDebuggerResetClearsState(t *testing.T) {
	dbg := newLoopDebugger(t)
	assert.NoError(t, dbg.ExecuteCommand("step"))
	assert.NoError(t, dbg.ExecuteCommand("reset"))
	assert.Equal(t, uint32(0), dbg.Sim.PC())
	assert.False(t, dbg.Running)
}
