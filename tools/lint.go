// Package tools provides standalone analysis utilities — a lint pass and a
// label cross-reference report — built on the same parser.SymbolTable and
// instruction stream the assembler produces, without changing assembler
// semantics.
package tools

import (
	"fmt"
	"sort"
	"strings"

	"github.com/suarvid-edu/mips-simulator/parser"
)

// LintLevel is the severity of a lint finding.
type LintLevel int

const (
	LintError LintLevel = iota
	LintWarning
	LintInfo
)

func (l LintLevel) String() string {
	switch l {
	case LintError:
		return "error"
	case LintWarning:
		return "warning"
	case LintInfo:
		return "info"
	default:
		return "unknown"
	}
}

// LintIssue is a single finding.
type LintIssue struct {
	Level   LintLevel
	Line    int
	Column  int
	Message string
	Code    string
}

func (i *LintIssue) String() string {
	return fmt.Sprintf("line %d:%d: %s: %s [%s]", i.Line, i.Column, i.Level, i.Message, i.Code)
}

// LintOptions controls which checks Lint runs.
type LintOptions struct {
	CheckUnused  bool
	CheckReach   bool
	SuggestFixes bool
}

// DefaultLintOptions enables every check.
func DefaultLintOptions() *LintOptions {
	return &LintOptions{CheckUnused: true, CheckReach: true, SuggestFixes: true}
}

// Lint assembles source and reports issues found along the way: parse
// errors, unused labels, and code unreachable after an unconditional jump
// or exit.
func Lint(source, filename string, options *LintOptions) []*LintIssue {
	if options == nil {
		options = DefaultLintOptions()
	}

	var issues []*LintIssue

	program, err := parser.Assemble(source, filename)
	if err != nil {
		if perr, ok := err.(*parser.Error); ok {
			issues = append(issues, &LintIssue{
				Level:   LintError,
				Line:    perr.Pos.Line,
				Column:  perr.Pos.Column,
				Message: perr.Message,
				Code:    perr.Kind.String(),
			})
		} else {
			issues = append(issues, &LintIssue{Level: LintError, Line: 1, Column: 1, Message: err.Error(), Code: "ASSEMBLE_ERROR"})
		}
		return issues
	}

	if options.CheckUnused {
		for _, sym := range program.Symbols.Unused() {
			issues = append(issues, &LintIssue{
				Level:   LintWarning,
				Line:    sym.Pos.Line,
				Column:  sym.Pos.Column,
				Message: fmt.Sprintf("label %q defined but never referenced", sym.Name),
				Code:    "UNUSED_LABEL",
			})
		}
	}

	if options.CheckReach {
		issues = append(issues, checkUnreachable(program)...)
	}

	sort.Slice(issues, func(i, j int) bool {
		if issues[i].Line == issues[j].Line {
			return issues[i].Column < issues[j].Column
		}
		return issues[i].Line < issues[j].Line
	})

	return issues
}

// checkUnreachable flags listing rows immediately after an unconditional
// jump or exit that are not themselves a jump target.
func checkUnreachable(program *parser.Program) []*LintIssue {
	targets := make(map[uint32]bool)
	for _, sym := range program.Symbols.All() {
		targets[sym.Address] = true
	}

	var issues []*LintIssue
	for i, row := range program.Listing {
		fields := strings.Fields(row.Source)
		if len(fields) == 0 {
			continue
		}
		if strings.HasSuffix(fields[0], ":") {
			fields = fields[1:]
		}
		if len(fields) == 0 {
			continue
		}
		mnemonic := strings.ToLower(fields[0])
		isTerminal := mnemonic == "j" || mnemonic == "jr" || mnemonic == "exit"
		if !isTerminal || i+1 >= len(program.Listing) {
			continue
		}
		next := program.Listing[i+1]
		if targets[next.Address] {
			continue
		}
		issues = append(issues, &LintIssue{
			Level:   LintWarning,
			Line:    0,
			Column:  1,
			Message: fmt.Sprintf("unreachable code at 0x%08x: %s", next.Address, strings.TrimSpace(next.Source)),
			Code:    "UNREACHABLE_CODE",
		})
	}
	return issues
}
