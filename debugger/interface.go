package debugger

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/suarvid-edu/mips-simulator/vm"
)

// RunCLI runs the line-oriented command-line debugger interface.
func RunCLI(dbg *Debugger) error {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("(mips-dbg) ")

		if !scanner.Scan() {
			break
		}

		cmdLine := strings.TrimSpace(scanner.Text())

		if cmdLine == "quit" || cmdLine == "q" || cmdLine == "exit" {
			fmt.Println("Exiting debugger...")
			break
		}

		if err := dbg.ExecuteCommand(cmdLine); err != nil {
			fmt.Printf("Error: %v\n", err)
		}

		if output := dbg.GetOutput(); output != "" {
			fmt.Print(output)
		}

		if dbg.Running {
			for dbg.Running {
				if shouldBreak, reason := dbg.ShouldBreak(); shouldBreak {
					dbg.Running = false
					fmt.Printf("Stopped: %s at PC=0x%08x\n", reason, dbg.Sim.PC())
					break
				}

				result := dbg.Sim.Step()
				dbg.LastResult = result
				dbg.Stepped = true

				if result != vm.Success {
					dbg.Running = false
					if result == vm.Failure {
						fmt.Printf("Runtime error: %v\n", dbg.Sim.Err())
					} else {
						fmt.Printf("Program completed at PC=0x%08x\n", dbg.Sim.PC())
					}
					break
				}
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("input error: %w", err)
	}

	return nil
}

// RunTUI runs the full-screen tview/tcell debugger.
func RunTUI(dbg *Debugger, tickMillis int) error {
	tui := NewTUI(dbg, tickMillis)
	return tui.Run()
}
