// Package loader wires an assembled parser.Program into a vm.Simulator and
// writes the instruction/listing output files the assembler produces.
package loader

import (
	"fmt"
	"os"
	"strings"

	"github.com/suarvid-edu/mips-simulator/parser"
	"github.com/suarvid-edu/mips-simulator/vm"
)

// LoadSimulator builds a vm.Simulator from an assembled program's
// instruction stream. The simulator owns its own register file and data
// memory from construction; program.Instructions is held immutably.
func LoadSimulator(program *parser.Program) *vm.Simulator {
	return vm.NewSimulator(program.Instructions)
}

// WriteInstructions writes one hex-encoded machine word per line to path,
// in program order.
func WriteInstructions(program *parser.Program, path string) error {
	var sb strings.Builder
	for _, instr := range program.Instructions {
		fmt.Fprintln(&sb, instr.HexString())
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("writing instruction file %s: %w", path, err)
	}
	return nil
}

// WriteListing writes the assembly listing — address, source text, and hex
// encoding per instruction — followed by a symbol table footer, to path.
func WriteListing(program *parser.Program, path string) error {
	var sb strings.Builder
	fmt.Fprintln(&sb, "Address    Source                              Encoding")
	for _, row := range program.Listing {
		fmt.Fprintf(&sb, "0x%08x  %-35s %s\n", row.Address, row.Source, row.Hex)
	}

	fmt.Fprintln(&sb, "\nSymbols")
	for _, sym := range program.Symbols.All() {
		fmt.Fprintf(&sb, "  %-20s 0x%08x\n", sym.Name, sym.Address)
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("writing listing file %s: %w", path, err)
	}
	return nil
}
