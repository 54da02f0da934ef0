package parser

import (
	"strconv"
	"strings"
)

// StripComment removes a trailing "# ..." comment from line. ok is false if
// the comment is the entire line (nothing but whitespace precedes the '#').
func StripComment(line string) (string, bool) {
	before, _, found := strings.Cut(line, "#")
	if !found {
		return line, true
	}
	if strings.TrimSpace(before) == "" {
		return "", false
	}
	return before, true
}

// IsEmpty reports whether line has no content once whitespace is trimmed.
func IsEmpty(line string) bool {
	return strings.TrimSpace(line) == ""
}

// ExtractLabel returns the label on line (the text before a ":"), or ok=false
// if line declares no label. A "#" appearing before the colon means there is
// no label, just a comment that happens to contain one.
func ExtractLabel(line string) (string, bool) {
	before, _, found := strings.Cut(line, ":")
	if !found || strings.Contains(before, "#") {
		return "", false
	}
	return strings.TrimSpace(before), true
}

// StripLabel returns line with its label prefix (if any) removed. ok is
// false when the line contains only a label declaration and no instruction.
func StripLabel(line string) (string, bool) {
	before, after, found := strings.Cut(line, ":")
	if !found {
		return before, true
	}
	if strings.TrimSpace(after) == "" {
		return "", false
	}
	return after, true
}

// HasInstruction reports whether line contains instruction text once any
// comment and label prefix are accounted for. It does not validate that the
// instruction is well-formed or recognized.
func HasInstruction(line string) bool {
	withoutComment, ok := StripComment(line)
	if !ok {
		return false
	}
	rest, ok := StripLabel(withoutComment)
	if !ok {
		return false
	}
	return !IsEmpty(rest)
}

// InstructionText strips the comment and label from line, returning the
// trimmed mnemonic-and-operands text, or ok=false if nothing remains.
func InstructionText(line string) (string, bool) {
	withoutComment, ok := StripComment(line)
	if !ok {
		return "", false
	}
	rest, ok := StripLabel(withoutComment)
	if !ok {
		return "", false
	}
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return "", false
	}
	return rest, true
}

// Fields splits instruction text into its mnemonic and comma-separated
// operand tokens, e.g. "add $t0, $t1, $t2" -> ("add", ["$t0","$t1","$t2"]).
func Fields(instructionText string) (mnemonic string, operands []string) {
	fields := strings.Fields(instructionText)
	if len(fields) == 0 {
		return "", nil
	}
	mnemonic = strings.ToLower(fields[0])
	rest := strings.TrimSpace(instructionText[len(fields[0]):])
	if rest == "" {
		return mnemonic, nil
	}
	for _, part := range strings.Split(rest, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			operands = append(operands, part)
		}
	}
	return mnemonic, operands
}

// ParseMemOperand splits a "offset(base)" operand into its signed offset and
// base register text, e.g. "-4($sp)" -> (-4, "$sp", true).
func ParseMemOperand(operand string) (offset int64, base string, ok bool) {
	open := strings.IndexByte(operand, '(')
	close := strings.IndexByte(operand, ')')
	if open < 0 || close < open {
		return 0, "", false
	}
	offsetText := strings.TrimSpace(operand[:open])
	base = strings.TrimSpace(operand[open+1 : close])
	if offsetText == "" {
		offsetText = "0"
	}
	n, err := ParseInt(offsetText)
	if err != nil {
		return 0, "", false
	}
	return n, base, true
}

// ParseInt parses a decimal or "0x"-prefixed hexadecimal signed integer.
func ParseInt(text string) (int64, error) {
	return parseIntStrict(text)
}

func parseIntStrict(text string) (int64, error) {
	text = strings.TrimSpace(text)
	neg := false
	if strings.HasPrefix(text, "-") {
		neg = true
		text = text[1:]
	} else if strings.HasPrefix(text, "+") {
		text = text[1:]
	}
	base := 10
	if strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X") {
		base = 16
		text = text[2:]
	}
	n, err := strconv.ParseInt(text, base, 64)
	if err != nil {
		return 0, err
	}
	if neg {
		n = -n
	}
	return n, nil
}

func parseUintStrict(text string) (uint64, bool) {
	n, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
