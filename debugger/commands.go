package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/suarvid-edu/mips-simulator/parser"
	"github.com/suarvid-edu/mips-simulator/vm"
)

// cmdRun resets the simulator and starts continuous execution.
func (d *Debugger) cmdRun(args []string) error {
	d.Sim.Reset()
	d.Running = true
	d.Println("Starting program execution...")
	return nil
}

// cmdContinue resumes continuous run from the current state.
func (d *Debugger) cmdContinue(args []string) error {
	if d.LastResult == vm.Completed || d.LastResult == vm.Failure {
		return fmt.Errorf("program is not running")
	}
	d.Running = true
	d.Println("Continuing...")
	return nil
}

// cmdStep executes exactly one cycle.
func (d *Debugger) cmdStep(args []string) error {
	d.LastResult = d.Sim.Step()
	d.Stepped = true
	d.Printf("PC=0x%08x -> %s\n", d.Sim.PC(), d.LastResult)
	if err := d.Sim.Err(); err != nil {
		d.Printf("error: %v\n", err)
	}
	return nil
}

func (d *Debugger) cmdBreak(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: break <address|label>")
	}
	address, label, err := d.resolveAddressAndLabel(args[0])
	if err != nil {
		return err
	}
	bp := d.Breakpoints.AddBreakpoint(address, label, false, "")
	d.Printf("Breakpoint %d at %s\n", bp.ID, breakpointLocation(bp))
	return nil
}

func (d *Debugger) cmdTBreak(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: tbreak <address|label>")
	}
	address, label, err := d.resolveAddressAndLabel(args[0])
	if err != nil {
		return err
	}
	bp := d.Breakpoints.AddBreakpoint(address, label, true, "")
	d.Printf("Temporary breakpoint %d at %s\n", bp.ID, breakpointLocation(bp))
	return nil
}

// breakpointLocation renders a breakpoint's address, annotated with its
// source label when one was resolved at set time.
func breakpointLocation(bp *Breakpoint) string {
	if bp.Label != "" {
		return fmt.Sprintf("0x%08x (%s)", bp.Address, bp.Label)
	}
	return fmt.Sprintf("0x%08x", bp.Address)
}

func (d *Debugger) cmdDelete(args []string) error {
	if len(args) == 0 {
		d.Breakpoints.Clear()
		d.Println("All breakpoints deleted")
		return nil
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid breakpoint ID: %s", args[0])
	}
	if err := d.Breakpoints.DeleteBreakpoint(id); err != nil {
		return err
	}
	d.Printf("Breakpoint %d deleted\n", id)
	return nil
}

func (d *Debugger) cmdEnable(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: enable <breakpoint-id>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid breakpoint ID: %s", args[0])
	}
	if err := d.Breakpoints.EnableBreakpoint(id); err != nil {
		return err
	}
	d.Printf("Breakpoint %d enabled\n", id)
	return nil
}

func (d *Debugger) cmdDisable(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: disable <breakpoint-id>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid breakpoint ID: %s", args[0])
	}
	if err := d.Breakpoints.DisableBreakpoint(id); err != nil {
		return err
	}
	d.Printf("Breakpoint %d disabled\n", id)
	return nil
}

// cmdPrint prints the value of a register.
func (d *Debugger) cmdPrint(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: print <register>")
	}
	reg, ok := parser.RegisterNumber(args[0])
	if !ok {
		return fmt.Errorf("unknown register: %s", args[0])
	}
	value := d.Sim.Registers.Read(reg)
	d.Printf("%s = 0x%08x (%d)\n", args[0], uint32(value), value)
	return nil
}

// cmdExamine examines data memory starting at an address.
func (d *Debugger) cmdExamine(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: x [/n] <address>")
	}

	count := 1
	addrArg := args[0]
	if strings.HasPrefix(args[0], "/") {
		n, err := strconv.Atoi(args[0][1:])
		if err != nil {
			return fmt.Errorf("invalid count: %s", args[0])
		}
		if len(args) < 2 {
			return fmt.Errorf("missing address")
		}
		count = n
		addrArg = args[1]
	}

	address, err := d.ResolveAddress(addrArg)
	if err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		addr := address + uint32(i*4)
		value, ok := d.Sim.Memory.ReadWord(addr, true)
		if !ok {
			d.Printf("0x%08x: <out of range>\n", addr)
			continue
		}
		d.Printf("0x%08x: 0x%08x (%d)\n", addr, uint32(value), value)
	}
	return nil
}

func (d *Debugger) cmdInfo(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: info <registers|breakpoints|history>")
	}
	switch strings.ToLower(args[0]) {
	case "registers", "reg", "r":
		return d.showRegisters()
	case "breakpoints", "break", "b":
		return d.showBreakpoints()
	case "history", "h":
		return d.showHistory()
	default:
		return fmt.Errorf("unknown info command: %s", args[0])
	}
}

func (d *Debugger) showHistory() error {
	entries := d.History.GetAllEntries()
	if len(entries) == 0 {
		d.Println("No command history")
		return nil
	}
	d.Println("Command history:")
	for i, e := range entries {
		d.Printf("  %d [cycle %d]: %s\n", i+1, e.Cycle, e.Command)
	}
	return nil
}

func (d *Debugger) showRegisters() error {
	d.Println("Registers:")
	dump := d.Sim.Registers.Dump()
	for i := 0; i < 32; i++ {
		d.Printf("  %-5s = 0x%08x (%d)\n", parser.RegisterName(uint8(i)), uint32(dump[i]), dump[i])
	}
	d.Printf("  PC    = 0x%08x\n", d.Sim.PC())
	return nil
}

func (d *Debugger) showBreakpoints() error {
	breakpoints := d.Breakpoints.GetAllBreakpoints()
	if len(breakpoints) == 0 {
		d.Println("No breakpoints")
		return nil
	}
	d.Println("Breakpoints:")
	for _, bp := range breakpoints {
		status := "enabled"
		if !bp.Enabled {
			status = "disabled"
		}
		temp := ""
		if bp.Temporary {
			temp = " (temporary)"
		}
		d.Printf("  %d: %s %s%s (hit %d times)\n", bp.ID, breakpointLocation(bp), status, temp, bp.HitCount)
	}
	return nil
}

// cmdList shows the listing line at the current PC and the lines after it.
func (d *Debugger) cmdList(args []string) error {
	pc := d.Sim.PC()

	if source, ok := d.Listing[pc]; ok {
		d.Printf("=> 0x%08x: %s\n", pc, source)
	} else {
		d.Printf("=> 0x%08x: <end of program>\n", pc)
	}

	for offset := uint32(4); offset <= uint32(CodeContextLinesAfter)*4; offset += 4 {
		addr := pc + offset
		if source, ok := d.Listing[addr]; ok {
			d.Printf("   0x%08x: %s\n", addr, source)
		}
	}
	return nil
}

// cmdSet writes a value into a register or a data memory word.
func (d *Debugger) cmdSet(args []string) error {
	if len(args) < 3 || args[1] != "=" {
		return fmt.Errorf("usage: set <register|*address> = <value>")
	}

	target := strings.ToLower(args[0])
	value, err := strconv.ParseInt(args[2], 0, 64)
	if err != nil {
		return fmt.Errorf("invalid value: %s", args[2])
	}

	if strings.HasPrefix(target, "*") {
		address, err := d.ResolveAddress(target[1:])
		if err != nil {
			return err
		}
		if err := d.Sim.Memory.WriteWord(address, int32(value), true); err != nil {
			return err
		}
		d.Printf("Memory 0x%08x set to 0x%08x\n", address, uint32(value))
		return nil
	}

	reg, ok := parser.RegisterNumber(target)
	if !ok {
		return fmt.Errorf("invalid register: %s", target)
	}
	d.Sim.Registers.Write(reg, int32(value), true)
	d.Printf("Register %s set to 0x%08x\n", target, uint32(value))
	return nil
}

func (d *Debugger) cmdReset(args []string) error {
	d.Sim.Reset()
	d.Running = false
	d.LastResult = 0
	d.Println("Simulator reset")
	return nil
}

func (d *Debugger) cmdHelp(args []string) error {
	d.Println("MIPS debugger commands:")
	d.Println()
	d.Println("Execution:")
	d.Println("  run (r)            - Reset and start continuous execution")
	d.Println("  continue (c, g)    - Resume continuous execution")
	d.Println("  step (s)           - Execute one cycle")
	d.Println("  reset              - Reset the simulator")
	d.Println()
	d.Println("Breakpoints:")
	d.Println("  break (b) <addr>   - Set a breakpoint")
	d.Println("  tbreak (tb) <addr> - Set a one-shot breakpoint")
	d.Println("  delete (d) [id]    - Delete breakpoint(s)")
	d.Println("  enable/disable <id>")
	d.Println()
	d.Println("Inspection:")
	d.Println("  print (p) <reg>    - Show a register")
	d.Println("  x [/n] <addr>      - Examine data memory words")
	d.Println("  info (i) <what>    - registers | breakpoints | history")
	d.Println("  list (l)           - Show listing from PC onward")
	d.Println()
	d.Println("Modification:")
	d.Println("  set <reg|*addr> = <value>")
	return nil
}
