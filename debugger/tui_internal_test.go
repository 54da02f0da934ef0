package debugger

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/suarvid-edu/mips-simulator/loader"
	"github.com/suarvid-edu/mips-simulator/parser"
)

func newTestDebugger(t *testing.T) *Debugger {
	t.Helper()
	program, err := parser.Assemble("add $t0, $t1, $t2\nexit\n", "test.asm")
	if err != nil {
		t.Fatalf("failed to assemble fixture program: %v", err)
	}
	sim := loader.LoadSimulator(program)
	return NewDebugger(sim, program)
}

// TestExecuteCommandAsync verifies executeCommand doesn't block.
func TestExecuteCommandAsync(t *testing.T) {
	dbg := newTestDebugger(t)
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	defer screen.Fini()

	tui := NewTUIWithScreen(dbg, screen)

	done := make(chan bool, 1)
	go func() {
		tui.executeCommand("help")
		done <- true
	}()

	select {
	case <-done:
	case <-time.After(time.Second * 2):
		t.Fatal("executeCommand blocked for more than 2 seconds - deadlock detected")
	}
}

// TestHandleCommandAsync verifies handleCommand returns promptly.
func TestHandleCommandAsync(t *testing.T) {
	dbg := newTestDebugger(t)
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	defer screen.Fini()

	tui := NewTUIWithScreen(dbg, screen)
	tui.CommandInput.SetText("help")

	done := make(chan bool, 1)
	go func() {
		tui.handleCommand(tcell.KeyEnter)
		done <- true
	}()

	select {
	case <-done:
	case <-time.After(time.Millisecond * 500):
		t.Fatal("handleCommand blocked - should return immediately")
	}
}
