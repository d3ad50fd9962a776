package pit

import (
	"bytes"
	"encoding/binary"
)

// Constants for PIT file layout.
const (
	// HeaderSize is the size of the file header in bytes
	HeaderSize = 28

	// EntrySize is the size of a single partition entry in bytes
	EntrySize = 132

	// NameSize is the width of each fixed text field in an entry
	NameSize = 32
)

// Entry field offsets, relative to the start of the entry.
const (
	offBinaryType        = 0x00
	offDeviceType        = 0x04
	offIdentifier        = 0x08
	offAttributes        = 0x0C
	offUpdateAttributes  = 0x10
	offBlockSizeOrOffset = 0x14
	offBlockCount        = 0x18
	offFileOffset        = 0x1C
	offFileSize          = 0x20
	offPartitionName     = 0x24
	offFlashFileName     = 0x44
	offFotaFileName      = 0x64
)

// Decode decodes a complete PIT file held in buf.
//
// buf must contain at least HeaderSize bytes plus EntrySize bytes for every
// entry the header declares. Bytes after the last entry are ignored. buf is
// never modified and the returned Table does not reference it.
//
// Example:
//
//	t, err := pit.Decode(buf)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Number of entries: %d\n", t.EntryCount())
func Decode(buf []byte, opts ...Option) (*Table, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(buf) < HeaderSize {
		return nil, &HeaderTooShortError{Length: len(buf)}
	}

	hdr := decodeHeader(buf[:HeaderSize])

	// Computed in 64 bits so a hostile EntryCount cannot wrap around.
	need := uint64(HeaderSize) + uint64(EntrySize)*uint64(hdr.EntryCount)
	count := uint64(hdr.EntryCount)
	truncated := false
	if uint64(len(buf)) < need {
		available := uint64(len(buf)-HeaderSize) / EntrySize
		if !cfg.Lenient {
			return nil, &EntriesTooShortError{
				Length:     len(buf),
				EntryCount: hdr.EntryCount,
				Available:  uint32(available),
			}
		}
		count = available
		truncated = true
	}

	t := &Table{
		header:    hdr,
		entries:   make([]Entry, count),
		truncated: truncated,
	}

	for i := range t.entries {
		off := HeaderSize + i*EntrySize
		t.entries[i] = decodeEntry(buf[off : off+EntrySize])
	}

	return t, nil
}

// decodeHeader decodes the header from a slice of exactly HeaderSize bytes.
func decodeHeader(b []byte) Header {
	return Header{
		Head:       binary.LittleEndian.Uint32(b[0x00:]),
		EntryCount: binary.LittleEndian.Uint32(b[0x04:]),
		Unknown1:   binary.LittleEndian.Uint32(b[0x08:]),
		Unknown2:   binary.LittleEndian.Uint32(b[0x0C:]),
		Unknown3:   binary.LittleEndian.Uint16(b[0x10:]),
		Unknown4:   binary.LittleEndian.Uint16(b[0x12:]),
		Unknown5:   binary.LittleEndian.Uint16(b[0x14:]),
		Unknown6:   binary.LittleEndian.Uint16(b[0x16:]),
		Unknown7:   binary.LittleEndian.Uint16(b[0x18:]),
		Unknown8:   binary.LittleEndian.Uint16(b[0x1A:]),
	}
}

// decodeEntry decodes an entry from a slice of exactly EntrySize bytes.
func decodeEntry(b []byte) Entry {
	return Entry{
		BinaryType:        binary.LittleEndian.Uint32(b[offBinaryType:]),
		DeviceType:        binary.LittleEndian.Uint32(b[offDeviceType:]),
		Identifier:        binary.LittleEndian.Uint32(b[offIdentifier:]),
		Attributes:        binary.LittleEndian.Uint32(b[offAttributes:]),
		UpdateAttributes:  binary.LittleEndian.Uint32(b[offUpdateAttributes:]),
		BlockSizeOrOffset: binary.LittleEndian.Uint32(b[offBlockSizeOrOffset:]),
		BlockCount:        binary.LittleEndian.Uint32(b[offBlockCount:]),
		FileOffset:        binary.LittleEndian.Uint32(b[offFileOffset:]),
		FileSize:          binary.LittleEndian.Uint32(b[offFileSize:]),
		PartitionName:     fixedString(b[offPartitionName : offPartitionName+NameSize]),
		FlashFileName:     fixedString(b[offFlashFileName : offFlashFileName+NameSize]),
		FotaFileName:      fixedString(b[offFotaFileName : offFotaFileName+NameSize]),
	}
}

// fixedString converts a fixed-width, NUL-padded text field to a string.
// The field need not be NUL-terminated.
func fixedString(b []byte) string {
	return string(bytes.TrimRight(b, "\x00"))
}
