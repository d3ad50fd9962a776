package pit

// Header represents the fixed 28-byte header of a PIT file.
type Header struct {
	// Head appears to be constant across files. It is not validated.
	Head uint32

	// EntryCount is the number of entries declared by the file
	EntryCount uint32

	Unknown1 uint32
	Unknown2 uint32
	Unknown3 uint16
	Unknown4 uint16
	Unknown5 uint16
	Unknown6 uint16
	Unknown7 uint16
	Unknown8 uint16
}

// Entry represents a single partition record from the PIT file.
type Entry struct {
	BinaryType uint32
	DeviceType uint32

	// Identifier is the partition identifier used for lookups
	Identifier uint32

	Attributes        uint32
	UpdateAttributes  uint32
	BlockSizeOrOffset uint32

	// BlockCount is the partition size in blocks
	BlockCount uint32

	FileOffset uint32
	FileSize   uint32

	// PartitionName is the partition label
	PartitionName string

	// FlashFileName is the image file flashed to the partition
	FlashFileName string

	// FotaFileName is the OTA image file name
	FotaFileName string
}

// Table is a decoded PIT file.
//
// A Table is immutable once returned by Decode and is safe for concurrent use.
// Accessors return copies, so callers cannot alter the table through them.
type Table struct {
	header    Header
	entries   []Entry
	truncated bool
}

// Header returns the decoded header.
func (t *Table) Header() Header {
	return t.header
}

// EntryCount returns the number of entries held by the table.
// For tables decoded in strict mode this always equals Header().EntryCount.
func (t *Table) EntryCount() uint32 {
	return uint32(len(t.entries))
}

// Truncated reports whether the table was decoded leniently from a buffer
// that held fewer entries than the header declares.
func (t *Table) Truncated() bool {
	return t.truncated
}

// Entries returns a copy of all entries in file order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// EntryAt returns the entry at the zero-based index idx.
// Returns *IndexOutOfRangeError if idx >= EntryCount().
func (t *Table) EntryAt(idx uint32) (Entry, error) {
	if idx >= t.EntryCount() {
		return Entry{}, &IndexOutOfRangeError{Index: idx, Count: t.EntryCount()}
	}
	return t.entries[idx], nil
}

// EntryByIdentifier returns the first entry, in file order, whose Identifier
// equals id. The format does not forbid duplicate identifiers; when they occur
// the earliest entry wins.
func (t *Table) EntryByIdentifier(id uint32) (Entry, error) {
	idx, err := t.IndexOfIdentifier(id)
	if err != nil {
		return Entry{}, err
	}
	return t.entries[idx], nil
}

// IndexOfIdentifier returns the index of the first entry whose Identifier
// equals id.
func (t *Table) IndexOfIdentifier(id uint32) (uint32, error) {
	for i := range t.entries {
		if t.entries[i].Identifier == id {
			return uint32(i), nil
		}
	}
	return 0, &IdentifierNotFoundError{Identifier: id}
}

// EntryByPartitionName returns the first entry whose PartitionName equals
// name. The comparison is exact and case-sensitive.
func (t *Table) EntryByPartitionName(name string) (Entry, error) {
	idx, err := t.IndexOfPartitionName(name)
	if err != nil {
		return Entry{}, err
	}
	return t.entries[idx], nil
}

// IndexOfPartitionName returns the index of the first entry whose
// PartitionName equals name.
func (t *Table) IndexOfPartitionName(name string) (uint32, error) {
	for i := range t.entries {
		if t.entries[i].PartitionName == name {
			return uint32(i), nil
		}
	}
	return 0, &PartitionNotFoundError{Name: name}
}
