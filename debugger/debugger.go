package debugger

import (
	"fmt"
	"strings"

	"github.com/suarvid-edu/mips-simulator/parser"
	"github.com/suarvid-edu/mips-simulator/vm"
)

// Debugger wraps a vm.Simulator with breakpoints, command history, and a
// line-oriented command interpreter shared by the CLI and the TUI.
type Debugger struct {
	Sim *vm.Simulator

	Breakpoints *BreakpointManager
	History     *CommandHistory

	Running bool
	Stepped bool // true once Step has been called at least once; reset and run do not clear it

	Symbols *parser.SymbolTable

	// Listing maps instruction address to its source line, for "list".
	Listing map[uint32]string

	LastCommand string
	LastResult  vm.RunResult

	Output strings.Builder
}

// NewDebugger creates a debugger around a vm.Simulator built from an
// assembled program.
func NewDebugger(sim *vm.Simulator, program *parser.Program) *Debugger {
	listing := make(map[uint32]string, len(program.Listing))
	for _, row := range program.Listing {
		listing[row.Address] = row.Source
	}

	return &Debugger{
		Sim:         sim,
		Breakpoints: NewBreakpointManager(),
		History:     NewCommandHistory(),
		Symbols:     program.Symbols,
		Listing:     listing,
	}
}

// ResolveAddress resolves a label or a numeric literal (hex or decimal) to
// a byte address.
func (d *Debugger) ResolveAddress(addrStr string) (uint32, error) {
	addr, _, err := d.resolveAddressAndLabel(addrStr)
	return addr, err
}

// resolveAddressAndLabel is ResolveAddress plus the label name addrStr
// resolved to, if it was a label rather than a numeric literal.
func (d *Debugger) resolveAddressAndLabel(addrStr string) (uint32, string, error) {
	if addr, err := d.Symbols.Address(addrStr); err == nil {
		return addr, addrStr, nil
	}

	var addr uint32
	if strings.HasPrefix(addrStr, "0x") || strings.HasPrefix(addrStr, "0X") {
		if _, err := fmt.Sscanf(addrStr, "0x%x", &addr); err != nil {
			return 0, "", fmt.Errorf("invalid address: %s", addrStr)
		}
		return addr, "", nil
	}

	if _, err := fmt.Sscanf(addrStr, "%d", &addr); err != nil {
		return 0, "", fmt.Errorf("invalid address: %s", addrStr)
	}
	return addr, "", nil
}

// ExecuteCommand parses and runs one debugger command line.
func (d *Debugger) ExecuteCommand(cmdLine string) error {
	cmdLine = strings.TrimSpace(cmdLine)

	if cmdLine == "" {
		cmdLine = d.LastCommand
	}
	if cmdLine != "" {
		d.History.Add(cmdLine, d.Sim.Cycles())
		d.LastCommand = cmdLine
	}

	parts := strings.Fields(cmdLine)
	if len(parts) == 0 {
		return nil
	}

	return d.handleCommand(strings.ToLower(parts[0]), parts[1:])
}

func (d *Debugger) handleCommand(cmd string, args []string) error {
	switch cmd {
	case "run", "r":
		return d.cmdRun(args)
	case "continue", "c", "g":
		return d.cmdContinue(args)
	case "step", "s":
		return d.cmdStep(args)

	case "break", "b":
		return d.cmdBreak(args)
	case "tbreak", "tb":
		return d.cmdTBreak(args)
	case "delete", "d":
		return d.cmdDelete(args)
	case "enable":
		return d.cmdEnable(args)
	case "disable":
		return d.cmdDisable(args)

	case "print", "p":
		return d.cmdPrint(args)
	case "x":
		return d.cmdExamine(args)
	case "info", "i":
		return d.cmdInfo(args)
	case "list", "l":
		return d.cmdList(args)

	case "set":
		return d.cmdSet(args)

	case "reset":
		return d.cmdReset(args)

	case "help", "h", "?":
		return d.cmdHelp(args)

	default:
		return fmt.Errorf("unknown command: %s (type 'help' for available commands)", cmd)
	}
}

// ShouldBreak reports whether execution should pause at the current PC,
// checking breakpoints before the next Step call.
func (d *Debugger) ShouldBreak() (bool, string) {
	pc := d.Sim.PC()

	bp := d.Breakpoints.GetBreakpoint(pc)
	if bp == nil || !bp.Enabled {
		return false, ""
	}

	processed := d.Breakpoints.ProcessHit(pc)
	if processed.Temporary {
		return true, fmt.Sprintf("temporary breakpoint %d", processed.ID)
	}
	return true, fmt.Sprintf("breakpoint %d", processed.ID)
}

// GetOutput returns and clears the output buffer.
func (d *Debugger) GetOutput() string {
	output := d.Output.String()
	d.Output.Reset()
	return output
}

func (d *Debugger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(&d.Output, format, args...)
}

func (d *Debugger) Println(args ...interface{}) {
	fmt.Fprintln(&d.Output, args...)
}
