package debugger

// TUI Display Update Constants
const (
	// DisplayUpdateFrequency controls how often the TUI redraws during
	// continuous run (every N cycles) so the terminal isn't flooded.
	DisplayUpdateFrequency = 20
)

// Code View Context Constants
const (
	// CodeContextLinesBefore is the number of listing lines shown before PC.
	CodeContextLinesBefore = 10

	// CodeContextLinesAfter is the number of listing lines shown after PC.
	CodeContextLinesAfter = 20
)

// Memory Display Constants
const (
	// MemoryDisplayRows is the number of rows in the data memory hex dump.
	MemoryDisplayRows = 16

	// MemoryDisplayColumns is the number of bytes per row in the hex dump.
	MemoryDisplayColumns = 16
)

// Register Display Constants
const (
	// RegisterGroupSize is the number of registers displayed per row.
	RegisterGroupSize = 4
)
