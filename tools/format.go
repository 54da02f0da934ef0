package tools

import (
	"strings"

	"github.com/suarvid-edu/mips-simulator/parser"
)

// FormatStyle selects a formatting layout.
type FormatStyle int

const (
	FormatDefault  FormatStyle = iota // labels on their own line, instructions indented and column-aligned
	FormatCompact                     // minimal whitespace, one space between fields
)

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	Style             FormatStyle
	InstructionColumn int  // column instructions start at
	OperandColumn     int  // width the mnemonic is padded to, counted from InstructionColumn
	AlignOperands     bool // pad mnemonic out to OperandColumn
	UppercaseMnemonic bool // emit mnemonics in uppercase
}

// DefaultFormatOptions returns the default layout: indented four spaces,
// column-aligned, lowercase mnemonics.
func DefaultFormatOptions() *FormatOptions {
	return &FormatOptions{
		Style:             FormatDefault,
		InstructionColumn: 4,
		OperandColumn:     12,
		AlignOperands:     true,
		UppercaseMnemonic: false,
	}
}

// CompactFormatOptions returns options for minimal whitespace.
func CompactFormatOptions() *FormatOptions {
	return &FormatOptions{
		Style:             FormatCompact,
		InstructionColumn: 0,
		OperandColumn:     0,
		AlignOperands:     false,
		UppercaseMnemonic: false,
	}
}

// Formatter reformats assembly source into a consistent layout.
type Formatter struct {
	options *FormatOptions
}

// NewFormatter creates a Formatter with the given options.
func NewFormatter(options *FormatOptions) *Formatter {
	if options == nil {
		options = DefaultFormatOptions()
	}
	return &Formatter{options: options}
}

// Format assembles input to validate it, then re-renders every source line
// with consistent indentation and column alignment. Labels are emitted on
// their own line; everything else keeps the source's instruction order.
func (f *Formatter) Format(input, filename string) (string, error) {
	if _, err := parser.Assemble(input, filename); err != nil {
		return "", err
	}

	var out strings.Builder
	for _, rawLine := range strings.Split(input, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}
		if idx := strings.Index(line, "#"); idx == 0 {
			out.WriteString(line)
			out.WriteString("\n")
			continue
		}

		label, rest := splitLabel(line)
		if label != "" {
			out.WriteString(label)
			out.WriteString(":\n")
		}
		if rest == "" {
			continue
		}

		f.formatInstruction(&out, rest)
	}

	return out.String(), nil
}

func splitLabel(line string) (label, rest string) {
	if idx := strings.Index(line, ":"); idx >= 0 {
		return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+1:])
	}
	return "", line
}

func (f *Formatter) formatInstruction(out *strings.Builder, body string) {
	fields := strings.SplitN(body, " ", 2)
	mnemonic := fields[0]
	if f.options.UppercaseMnemonic {
		mnemonic = strings.ToUpper(mnemonic)
	}

	var operands string
	if len(fields) > 1 {
		operands = formatOperandList(fields[1])
	}

	switch f.options.Style {
	case FormatCompact:
		out.WriteString(mnemonic)
		if operands != "" {
			out.WriteString(" ")
			out.WriteString(operands)
		}
	default:
		out.WriteString(strings.Repeat(" ", f.options.InstructionColumn))
		out.WriteString(mnemonic)
		if operands != "" {
			if f.options.AlignOperands && len(mnemonic) < f.options.OperandColumn {
				out.WriteString(strings.Repeat(" ", f.options.OperandColumn-len(mnemonic)))
			} else {
				out.WriteString(" ")
			}
			out.WriteString(operands)
		}
	}
	out.WriteString("\n")
}

// formatOperandList normalizes "op,op,op" / "op , op" into "op, op, op".
func formatOperandList(raw string) string {
	parts := strings.Split(raw, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}

// FormatString formats source with default options.
func FormatString(input, filename string) (string, error) {
	return NewFormatter(DefaultFormatOptions()).Format(input, filename)
}

// FormatStringWithStyle formats source with the given style.
func FormatStringWithStyle(input, filename string, style FormatStyle) (string, error) {
	options := DefaultFormatOptions()
	if style == FormatCompact {
		options = CompactFormatOptions()
	}
	return NewFormatter(options).Format(input, filename)
}
