package tools

import (
	"fmt"
	"sort"
	"strings"

	"github.com/suarvid-edu/mips-simulator/parser"
)

// XRefEntry is one label's cross-reference: where it is defined and every
// place it is used as a branch/jump operand.
type XRefEntry struct {
	Name       string
	Address    uint32
	Definition parser.Position
	References []parser.Position
}

// CrossReference assembles source and builds a cross-reference entry per
// label in the symbol table, sorted by name.
func CrossReference(source, filename string) ([]*XRefEntry, error) {
	program, err := parser.Assemble(source, filename)
	if err != nil {
		return nil, err
	}

	entries := make([]*XRefEntry, 0, len(program.Symbols.All()))
	for _, sym := range program.Symbols.All() {
		entries = append(entries, &XRefEntry{
			Name:       sym.Name,
			Address:    sym.Address,
			Definition: sym.Pos,
			References: sym.References,
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// XRefReport renders a CrossReference result as a text report.
func XRefReport(entries []*XRefEntry) string {
	var sb strings.Builder

	sb.WriteString("Symbol Cross-Reference\n")
	sb.WriteString("======================\n\n")

	unused := 0
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("%-20s 0x%08x\n", e.Name, e.Address))
		sb.WriteString(fmt.Sprintf("  Defined:    %s\n", e.Definition))
		if len(e.References) == 0 {
			unused++
			sb.WriteString("  Referenced: (never)\n")
		} else {
			lines := make([]string, len(e.References))
			for i, pos := range e.References {
				lines[i] = fmt.Sprintf("%d", pos.Line)
			}
			sb.WriteString(fmt.Sprintf("  Referenced: line(s) %s\n", strings.Join(lines, ", ")))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Summary\n")
	sb.WriteString("=======\n")
	sb.WriteString(fmt.Sprintf("Total symbols: %d\n", len(entries)))
	sb.WriteString(fmt.Sprintf("Unused:        %d\n", unused))

	return sb.String()
}
