package debugger

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/suarvid-edu/mips-simulator/parser"
	"github.com/suarvid-edu/mips-simulator/vm"
)

// displayBase selects the number base the register/memory panes render in.
type displayBase int

const (
	baseHex displayBase = iota
	baseDec
	baseBin
)

// TUI is the full-screen viewer: listing, register, memory, and
// breakpoint panes driven by a Debugger, plus continuous-run ticking.
type TUI struct {
	Debugger *Debugger
	App      *tview.Application

	MainLayout *tview.Flex

	ListingView     *tview.TextView
	RegisterView    *tview.TextView
	MemoryView      *tview.TextView
	BreakpointsView *tview.TextView
	OutputView      *tview.TextView
	CommandInput    *tview.InputField

	Base       displayBase
	tickMillis int
	running    bool
	stopTick   chan struct{}

	cycles int
}

// NewTUI creates the viewer. tickMillis is the continuous-run tick period.
func NewTUI(debugger *Debugger, tickMillis int) *TUI {
	if tickMillis <= 0 {
		tickMillis = 200
	}
	t := &TUI{
		Debugger:   debugger,
		App:        tview.NewApplication(),
		Base:       baseHex,
		tickMillis: tickMillis,
	}

	t.initializeViews()
	t.buildLayout()
	t.setupKeyBindings()

	return t
}

// NewTUIWithScreen creates a TUI bound to an explicit tcell.Screen, for
// tests that need to drive the application without a real terminal.
func NewTUIWithScreen(debugger *Debugger, screen tcell.Screen) *TUI {
	t := NewTUI(debugger, 200)
	t.App.SetScreen(screen)
	return t
}

func (t *TUI) initializeViews() {
	t.ListingView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true).SetWrap(false)
	t.ListingView.SetBorder(true).SetTitle(" Listing ")

	t.RegisterView = tview.NewTextView().SetDynamicColors(true).SetScrollable(false)
	t.RegisterView.SetBorder(true).SetTitle(" Registers ")

	t.MemoryView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true).SetWrap(false)
	t.MemoryView.SetBorder(true).SetTitle(" Data memory ")

	t.BreakpointsView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true).SetWrap(false)
	t.BreakpointsView.SetBorder(true).SetTitle(" Breakpoints ")

	t.OutputView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true).SetWrap(true)
	t.OutputView.SetBorder(true).SetTitle(" Output ")

	t.CommandInput = tview.NewInputField().SetLabel("> ").SetFieldWidth(0)
	t.CommandInput.SetBorder(true).SetTitle(" Command ")
	t.CommandInput.SetDoneFunc(t.handleCommand)
}

func (t *TUI) buildLayout() {
	leftPanel := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(t.ListingView, 0, 3, false).
		AddItem(t.BreakpointsView, 8, 0, false)

	rightPanel := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(t.RegisterView, 12, 0, false).
		AddItem(t.MemoryView, 0, 1, false)

	mainContent := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(leftPanel, 0, 2, false).
		AddItem(rightPanel, 0, 1, false)

	t.MainLayout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(mainContent, 0, 4, false).
		AddItem(t.OutputView, 6, 0, false).
		AddItem(t.CommandInput, 3, 0, true)
}

func (t *TUI) setupKeyBindings() {
	t.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if t.App.GetFocus() == t.CommandInput {
			return event
		}

		switch event.Rune() {
		case 's':
			t.executeCommand("step")
			return nil
		case 'g':
			t.toggleRun()
			return nil
		case 'r':
			t.executeCommand("reset")
			return nil
		case 'q':
			t.Stop()
			return nil
		case 'd':
			t.Base = baseDec
			t.RefreshAll()
			return nil
		case 'h':
			t.Base = baseHex
			t.RefreshAll()
			return nil
		case 'b':
			t.Base = baseBin
			t.RefreshAll()
			return nil
		}
		return event
	})
}

func (t *TUI) handleCommand(key tcell.Key) {
	if key == tcell.KeyEnter {
		cmd := t.CommandInput.GetText()
		if cmd != "" {
			t.executeCommand(cmd)
			t.CommandInput.SetText("")
		}
	}
}

func (t *TUI) executeCommand(cmd string) {
	t.Debugger.Output.Reset()
	err := t.Debugger.ExecuteCommand(cmd)
	output := t.Debugger.GetOutput()

	if err != nil {
		t.WriteOutput(fmt.Sprintf("[red]Error:[white] %v\n", err))
	}
	if output != "" {
		t.WriteOutput(output)
	}

	t.RefreshAll()
}

// toggleRun starts or stops the continuous-run ticker (one step per tick).
func (t *TUI) toggleRun() {
	if t.running {
		t.running = false
		close(t.stopTick)
		t.WriteOutput("Continuous run stopped\n")
		return
	}

	t.running = true
	t.stopTick = make(chan struct{})
	stop := t.stopTick
	go func() {
		ticker := time.NewTicker(time.Duration(t.tickMillis) * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				t.App.QueueUpdateDraw(func() {
					if !t.running {
						return
					}
					if shouldBreak, reason := t.Debugger.ShouldBreak(); shouldBreak {
						t.running = false
						t.WriteOutput(fmt.Sprintf("Stopped: %s at PC=0x%08x\n", reason, t.Debugger.Sim.PC()))
						t.RefreshAll()
						return
					}
					result := t.Debugger.Sim.Step()
					t.Debugger.LastResult = result
					t.Debugger.Stepped = true
					t.cycles++
					if result != vm.Success {
						t.running = false
						if result == vm.Failure {
							t.WriteOutput(fmt.Sprintf("[red]Runtime error:[white] %v\n", t.Debugger.Sim.Err()))
						} else {
							t.WriteOutput("Program completed\n")
						}
					}
					if t.cycles%DisplayUpdateFrequency == 0 || result != vm.Success {
						t.RefreshAll()
					}
				})
			}
		}
	}()
	t.WriteOutput("Continuous run started\n")
}

func (t *TUI) WriteOutput(text string) {
	fmt.Fprint(t.OutputView, text)
	t.OutputView.ScrollToEnd()
}

func (t *TUI) RefreshAll() {
	t.updateListingView()
	t.updateRegisterView()
	t.updateMemoryView()
	t.updateBreakpointsView()
	t.App.Draw()
}

func (t *TUI) formatWord(v int32) string {
	switch t.Base {
	case baseDec:
		return fmt.Sprintf("%d", v)
	case baseBin:
		return fmt.Sprintf("%032b", uint32(v))
	default:
		return fmt.Sprintf("0x%08x", uint32(v))
	}
}

func (t *TUI) updateListingView() {
	t.ListingView.Clear()
	pc := t.Debugger.Sim.PC()

	var start uint32
	if pc > uint32(CodeContextLinesBefore)*4 {
		start = pc - uint32(CodeContextLinesBefore)*4
	}
	end := pc + uint32(CodeContextLinesAfter)*4

	var lines []string
	for addr := start; addr <= end; addr += 4 {
		source, ok := t.Debugger.Listing[addr]
		if !ok {
			continue
		}
		marker, color := "  ", "white"
		if addr == pc {
			marker, color = "->", "yellow"
		}
		if t.Debugger.Breakpoints.GetBreakpoint(addr) != nil {
			marker = "* "
		}
		lines = append(lines, fmt.Sprintf("[%s]%s 0x%08x: %s[white]", color, marker, addr, source))
	}
	t.ListingView.SetText(strings.Join(lines, "\n"))
}

func (t *TUI) updateRegisterView() {
	t.RegisterView.Clear()
	dump := t.Debugger.Sim.Registers.Dump()

	var lines []string
	for row := 0; row < 32/RegisterGroupSize; row++ {
		var cols []string
		for col := 0; col < RegisterGroupSize; col++ {
			reg := row*RegisterGroupSize + col
			cols = append(cols, fmt.Sprintf("%-5s %s", parser.RegisterName(uint8(reg)), t.formatWord(dump[reg])))
		}
		lines = append(lines, strings.Join(cols, "  "))
	}
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("PC: 0x%08x", t.Debugger.Sim.PC()))
	lines = append(lines, fmt.Sprintf("Last result: %s", t.Debugger.LastResult))

	t.RegisterView.SetText(strings.Join(lines, "\n"))
}

func (t *TUI) updateMemoryView() {
	t.MemoryView.Clear()

	var lines []string
	for row := 0; row < MemoryDisplayRows; row++ {
		rowAddr := uint32(row * MemoryDisplayColumns)
		var hexBytes []string
		var asciiBytes []byte
		for col := 0; col < MemoryDisplayColumns; col++ {
			addr := rowAddr + uint32(col)
			b, ok := t.Debugger.Sim.Memory.ReadByte(addr)
			if !ok {
				hexBytes = append(hexBytes, "??")
				asciiBytes = append(asciiBytes, '.')
				continue
			}
			hexBytes = append(hexBytes, fmt.Sprintf("%02x", b))
			if b >= 32 && b < 127 {
				asciiBytes = append(asciiBytes, b)
			} else {
				asciiBytes = append(asciiBytes, '.')
			}
		}
		lines = append(lines, fmt.Sprintf("0x%08x: %s  %s", rowAddr, strings.Join(hexBytes, " "), string(asciiBytes)))
	}
	t.MemoryView.SetText(strings.Join(lines, "\n"))
}

func (t *TUI) updateBreakpointsView() {
	t.BreakpointsView.Clear()

	bps := t.Debugger.Breakpoints.GetAllBreakpoints()
	if len(bps) == 0 {
		t.BreakpointsView.SetText("[yellow]No breakpoints set[white]")
		return
	}

	var lines []string
	for _, bp := range bps {
		status, color := "enabled", "green"
		if !bp.Enabled {
			status, color = "disabled", "red"
		}
		location := fmt.Sprintf("0x%08x", bp.Address)
		if bp.Label != "" {
			location = fmt.Sprintf("0x%08x (%s)", bp.Address, bp.Label)
		}
		lines = append(lines, fmt.Sprintf("  %d: [%s]%s[white] %s (hits: %d)", bp.ID, color, status, location, bp.HitCount))
	}
	t.BreakpointsView.SetText(strings.Join(lines, "\n"))
}

// Run starts the TUI event loop.
func (t *TUI) Run() error {
	t.RefreshAll()
	t.WriteOutput("[green]MIPS simulator viewer[white]\n")
	t.WriteOutput("s step, g toggle continuous run, r reset, q quit, d/h/b switch number base\n\n")

	return t.App.SetRoot(t.MainLayout, true).SetFocus(t.CommandInput).Run()
}

// Stop halts any running ticker and stops the application.
func (t *TUI) Stop() {
	if t.running {
		t.running = false
		close(t.stopTick)
	}
	t.App.Stop()
}
