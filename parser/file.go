package parser

import "os"

// ParseFile reads path and assembles it into a Program. It is the normal
// entry point for CLI and test callers alike; Assemble itself only needs an
// in-memory source string plus a filename for diagnostics.
func ParseFile(path string) (*Program, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided assembly file path
	if err != nil {
		return nil, err
	}
	return Assemble(string(content), path)
}
