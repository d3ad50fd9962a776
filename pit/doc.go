// Package pit decodes Samsung PIT (Partition Information Table) files.
//
// # PIT File Format
//
// A PIT file describes the flash partition layout of a device. It consists of
// a fixed header followed by a contiguous array of fixed-size entries, one per
// partition. All multi-byte integers are little-endian.
//
// Header Format (28 bytes):
//
//	0x00 Head        uint32
//	0x04 EntryCount  uint32
//	0x08 Unknown1    uint32
//	0x0C Unknown2    uint32
//	0x10 Unknown3-8  uint16 x6
//
// Entry Format (132 bytes), repeated EntryCount times from offset 28:
//
//	0x00 BinaryType         uint32
//	0x04 DeviceType         uint32
//	0x08 Identifier         uint32
//	0x0C Attributes         uint32
//	0x10 UpdateAttributes   uint32
//	0x14 BlockSizeOrOffset  uint32
//	0x18 BlockCount         uint32
//	0x1C FileOffset         uint32
//	0x20 FileSize           uint32
//	0x24 PartitionName      [32]byte, NUL padded
//	0x44 FlashFileName      [32]byte, NUL padded
//	0x64 FotaFileName       [32]byte, NUL padded
//
// Most header and entry fields have no documented meaning. They are decoded
// and exposed as-is without validation.
//
// # Usage
//
// Parse a .pit file from disk:
//
//	t, err := pit.Parse("device.pit")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Number of entries: %d\n", t.EntryCount())
//	for i, e := range t.Entries() {
//	    fmt.Printf("%02d - %s (id %d)\n", i+1, e.PartitionName, e.Identifier)
//	}
//
// Decode a buffer that is already in memory and look up a partition:
//
//	t, err := pit.Decode(buf)
//	if err != nil {
//	    return err
//	}
//	e, err := t.EntryByIdentifier(9)
//
// # Error Handling
//
// Decode never panics and never reads past the end of its input. A buffer
// that cannot hold the header, or the number of entries the header declares,
// is rejected with *HeaderTooShortError or *EntriesTooShortError. Both match
// ErrMalformed with errors.Is. Lookups that miss return *IndexOutOfRangeError,
// *IdentifierNotFoundError or *PartitionNotFoundError.
//
// A decoded Table copies everything it needs out of the input buffer and is
// safe for concurrent use by multiple goroutines.
package pit
