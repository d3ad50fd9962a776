package pit

import (
	"fmt"
	"io"

	"golang.org/x/exp/mmap"
)

// Parse decodes the PIT file at path.
//
// The file is memory-mapped, copied and unmapped before decoding, so the
// returned Table remains valid after the file changes or is removed.
//
// Example:
//
//	t, err := pit.Parse("device.pit")
//	if err != nil {
//	    log.Fatal(err)
//	}
func Parse(path string, opts ...Option) (*Table, error) {
	m, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = m.Close() }()

	buf := make([]byte, m.Len())
	if len(buf) > 0 {
		if _, err := m.ReadAt(buf, 0); err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
	}

	return Decode(buf, opts...)
}

// ParseReader decodes a PIT file from any io.Reader.
// The reader is consumed until EOF.
//
// Example:
//
//	t, err := pit.ParseReader(bytes.NewReader(data))
func ParseReader(r io.Reader, opts ...Option) (*Table, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return Decode(buf, opts...)
}
