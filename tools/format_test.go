package tools

import (
	"strings"
	"testing"
)

func TestFormat_BasicInstruction(t *testing.T) {
	source := "addi $t0, $zero, 10\nexit\n"

	result, err := NewFormatter(DefaultFormatOptions()).Format(source, "test.asm")
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}

	if !strings.Contains(result, "addi") {
		t.Error("expected addi instruction in output")
	}
	if !strings.Contains(result, "$t0, $zero, 10") {
		t.Errorf("expected comma-space operand formatting, got: %s", result)
	}
}

func TestFormat_WithLabel(t *testing.T) {
	source := "loop:\n\taddi $t0, $zero, 10\n\texit\n"

	result, err := NewFormatter(DefaultFormatOptions()).Format(source, "test.asm")
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}

	if !strings.Contains(result, "loop:") {
		t.Error("expected label with colon")
	}
	lines := strings.Split(strings.TrimSpace(result), "\n")
	if lines[0] != "loop:" {
		t.Errorf("expected label on its own line, got: %q", lines[0])
	}
}

func TestFormat_CompactStyle(t *testing.T) {
	source := "loop:\n\taddi $t0, $zero, 10\n\tj loop\n"

	result, err := NewFormatter(CompactFormatOptions()).Format(source, "test.asm")
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}

	if strings.Contains(result, "    ") {
		t.Errorf("compact style should not indent with spaces: %s", result)
	}
}

func TestFormat_MultipleInstructions(t *testing.T) {
	source := `
start:
	addi $t0, $zero, 10
	addi $t1, $t0, 1
	sub  $t2, $t1, $t0
	exit
`
	result, err := NewFormatter(DefaultFormatOptions()).Format(source, "test.asm")
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}

	for _, mnemonic := range []string{"addi", "sub", "exit"} {
		if !strings.Contains(result, mnemonic) {
			t.Errorf("expected %s instruction in output", mnemonic)
		}
	}
}

func TestFormat_UppercaseMnemonic(t *testing.T) {
	source := "addi $t0, $zero, 10\nexit\n"

	options := DefaultFormatOptions()
	options.UppercaseMnemonic = true

	result, err := NewFormatter(options).Format(source, "test.asm")
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}

	if !strings.Contains(result, "ADDI") {
		t.Error("expected uppercase ADDI instruction")
	}
}

func TestFormat_PreserveOperandOrder(t *testing.T) {
	source := "add $t0, $t1, $t2\nexit\n"

	result, err := NewFormatter(DefaultFormatOptions()).Format(source, "test.asm")
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}

	if !strings.Contains(result, "$t0, $t1, $t2") {
		t.Errorf("expected operands in order, got: %s", result)
	}
}

func TestFormat_EmptyInput(t *testing.T) {
	result, err := NewFormatter(DefaultFormatOptions()).Format("", "test.asm")
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	if strings.TrimSpace(result) != "" {
		t.Errorf("expected empty output for empty input, got: %s", result)
	}
}

func TestFormat_InvalidSourceReturnsError(t *testing.T) {
	source := "j nowhere\n"

	_, err := NewFormatter(DefaultFormatOptions()).Format(source, "test.asm")
	if err == nil {
		t.Error("expected an error for undefined label reference")
	}
}

func TestFormatString_Convenience(t *testing.T) {
	result, err := FormatString("addi $t0, $zero, 10\nexit\n", "test.asm")
	if err != nil {
		t.Fatalf("FormatString error: %v", err)
	}
	if !strings.Contains(result, "addi") {
		t.Error("expected addi in formatted output")
	}
}

func TestFormatStringWithStyle_Compact(t *testing.T) {
	result, err := FormatStringWithStyle("addi $t0, $zero, 10\nexit\n", "test.asm", FormatCompact)
	if err != nil {
		t.Fatalf("FormatStringWithStyle error: %v", err)
	}
	if !strings.Contains(result, "addi") {
		t.Error("expected addi in formatted output")
	}
}

func TestFormat_JumpInstruction(t *testing.T) {
	source := `
start:
	addi $t0, $zero, 10
	j loop
loop:
	addi $t0, $t0, 1
	exit
`
	result, err := NewFormatter(DefaultFormatOptions()).Format(source, "test.asm")
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}

	if !strings.Contains(result, "j") || !strings.Contains(result, "loop") {
		t.Errorf("expected jump instruction to loop, got: %s", result)
	}
	if !strings.Contains(result, "start:") || !strings.Contains(result, "loop:") {
		t.Error("expected both labels in output")
	}
}
