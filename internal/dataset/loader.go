package dataset

import (
	"fmt"
	"io"
	"os"

	"goldboard/internal/parser"
)

// Load reads and parses the quotation file at path. This is the single load
// the dashboard performs; a read failure here is terminal for the session.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	return FromRecords(parser.Parse(string(data))), nil
}

// LoadReader parses a quotation stream, for callers that already hold one.
func LoadReader(r io.Reader) (*Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	return FromRecords(parser.Parse(string(data))), nil
}
