package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/suarvid-edu/mips-simulator/config"
	"github.com/suarvid-edu/mips-simulator/debugger"
	"github.com/suarvid-edu/mips-simulator/loader"
	"github.com/suarvid-edu/mips-simulator/parser"
	"github.com/suarvid-edu/mips-simulator/vm"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"     // Version number (set by git tag at build time)
	Commit  = "unknown" // Git commit hash
	Date    = "unknown" // Build date
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		showHelp    = flag.Bool("help", false, "Show help information")
		debugMode   = flag.Bool("debug", false, "Start in line-oriented CLI debugger mode")
		tuiMode     = flag.Bool("tui", false, "Start in full-screen TUI debugger mode")
		maxCycles   = flag.Uint64("max-cycles", 0, "Maximum CPU cycles before halt (default: from config, 1000000)")
		verboseMode = flag.Bool("verbose", false, "Verbose output (instructions parsed, cycles executed)")
		configPath  = flag.String("config", "", "Load configuration from this path instead of the default location")
		dumpSymbols = flag.Bool("dump-symbols", false, "Dump the resolved symbol table and exit")
	)

	flag.Usage = printHelp
	flag.Parse()

	if *showVersion {
		fmt.Printf("MIPS Simulator %s\n", Version)
		if Commit != "unknown" {
			fmt.Printf("Commit: %s\n", Commit)
		}
		if Date != "unknown" {
			fmt.Printf("Built: %s\n", Date)
		}
		os.Exit(0)
	}

	if *showHelp {
		printHelp()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) < 1 {
		printHelp()
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if *maxCycles > 0 {
		cfg.Execution.MaxCycles = *maxCycles
	}

	inputPath := args[0]
	instrOutPath := cfg.Output.InstructionsFile
	listingOutPath := cfg.Output.ListingFile
	if len(args) > 1 {
		instrOutPath = args[1]
	}
	if len(args) > 2 {
		listingOutPath = args[2]
	}

	if *verboseMode {
		fmt.Printf("Assembling %s...\n", inputPath)
	}

	program, err := parser.ParseFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Assembly failed: %v\n", err)
		os.Exit(1)
	}

	if *verboseMode {
		fmt.Printf("Assembled %d instructions, %d symbols\n", len(program.Instructions), len(program.Symbols.All()))
	}

	if err := loader.WriteInstructions(program, instrOutPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing instructions: %v\n", err)
		os.Exit(1)
	}
	if err := loader.WriteListing(program, listingOutPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing listing: %v\n", err)
		os.Exit(1)
	}

	if *dumpSymbols {
		dumpSymbolTable(program.Symbols)
		os.Exit(0)
	}

	sim := loader.LoadSimulator(program)

	switch {
	case *tuiMode:
		dbg := debugger.NewDebugger(sim, program)
		if err := debugger.RunTUI(dbg, cfg.Debugger.TickMillis); err != nil {
			fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
			os.Exit(1)
		}
	case *debugMode:
		dbg := debugger.NewDebugger(sim, program)
		if err := debugger.RunCLI(dbg); err != nil {
			fmt.Fprintf(os.Stderr, "Debugger error: %v\n", err)
			os.Exit(1)
		}
	default:
		os.Exit(runToCompletion(sim, cfg.Execution.MaxCycles, *verboseMode))
	}
}

// runToCompletion steps the simulator until it halts, hits the cycle
// guard, or fails. It returns the process exit code.
func runToCompletion(sim *vm.Simulator, maxCycles uint64, verbose bool) int {
	var cycles uint64
	for {
		result := sim.Step()
		cycles++

		switch result {
		case vm.Completed:
			if verbose {
				fmt.Printf("Completed after %d cycles\n", cycles)
			}
			return 0
		case vm.Failure:
			fmt.Fprintf(os.Stderr, "Simulation failed: %v\n", sim.Err())
			return 1
		}

		if cycles >= maxCycles {
			fmt.Fprintf(os.Stderr, "Exceeded max cycles (%d) without halting\n", maxCycles)
			return 1
		}
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// dumpSymbolTable pretty-prints a symbol table's entries, one per line,
// sorted by definition order.
func dumpSymbolTable(symbols *parser.SymbolTable) {
	fmt.Println("Symbol Table")
	fmt.Println("============")
	for _, sym := range symbols.All() {
		fmt.Printf("%-20s 0x%08x  defined at %s  (%d reference(s))\n", sym.Name, sym.Address, sym.Pos, len(sym.References))
	}
}

func printHelp() {
	fmt.Printf(`MIPS Simulator %s

Usage: mips-simulator [options] <input.asm> [<instr_out> <listing_out>]

Options:
  -help              Show this help message
  -version           Show version information
  -debug             Start in line-oriented CLI debugger mode
  -tui               Start in full-screen TUI debugger mode
  -max-cycles N      Maximum CPU cycles before halt (default: from config, 1000000)
  -verbose           Enable verbose output
  -config PATH       Load configuration from PATH instead of the default location
  -dump-symbols      Dump the resolved symbol table and exit

Examples:
  # Assemble and run a program directly
  mips-simulator loop.asm

  # Assemble to explicit output paths
  mips-simulator loop.asm instructions.txt listing.txt

  # Run with the line-oriented debugger
  mips-simulator -debug loop.asm

  # Run with the full-screen TUI debugger
  mips-simulator -tui loop.asm

  # Dump the symbol table without running
  mips-simulator -dump-symbols loop.asm
`, Version)
}
