package pit

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed is matched by errors for buffers too short to decode.
	ErrMalformed = errors.New("malformed PIT file")

	// ErrNotFound is matched by errors for lookups that found no entry.
	ErrNotFound = errors.New("entry not found")
)

// HeaderTooShortError indicates that the buffer cannot hold the PIT header.
type HeaderTooShortError struct {
	Length int
}

func (e *HeaderTooShortError) Error() string {
	return fmt.Sprintf("file too short for header: got %d bytes, minimum is %d", e.Length, HeaderSize)
}

func (e *HeaderTooShortError) Is(target error) bool { return target == ErrMalformed }

// EntriesTooShortError indicates that the buffer holds fewer entries than
// the header declares.
type EntriesTooShortError struct {
	// Length is the buffer length in bytes
	Length int

	// EntryCount is the number of entries declared by the header
	EntryCount uint32

	// Available is the number of complete entries present in the buffer
	Available uint32
}

func (e *EntriesTooShortError) Error() string {
	return fmt.Sprintf("file too short for entries: header declares %d entries, only %d present (%d bytes)",
		e.EntryCount, e.Available, e.Length)
}

func (e *EntriesTooShortError) Is(target error) bool { return target == ErrMalformed }

// IndexOutOfRangeError indicates an entry index outside the table.
type IndexOutOfRangeError struct {
	Index uint32
	Count uint32
}

func (e *IndexOutOfRangeError) Error() string {
	if e.Count == 0 {
		return fmt.Sprintf("entry index %d is out of range: table is empty", e.Index)
	}
	return fmt.Sprintf("entry index %d is out of range: valid range is 0-%d", e.Index, e.Count-1)
}

// IdentifierNotFoundError indicates that no entry carries the identifier.
type IdentifierNotFoundError struct {
	Identifier uint32
}

func (e *IdentifierNotFoundError) Error() string {
	return fmt.Sprintf("no entry with partition identifier %d", e.Identifier)
}

func (e *IdentifierNotFoundError) Is(target error) bool { return target == ErrNotFound }

// PartitionNotFoundError indicates that no entry carries the partition name.
type PartitionNotFoundError struct {
	Name string
}

func (e *PartitionNotFoundError) Error() string {
	return fmt.Sprintf("no entry with partition name %q", e.Name)
}

func (e *PartitionNotFoundError) Is(target error) bool { return target == ErrNotFound }

// IsHeaderTooShort returns true if err is or wraps a *HeaderTooShortError.
func IsHeaderTooShort(err error) bool {
	var e *HeaderTooShortError
	return errors.As(err, &e)
}

// IsEntriesTooShort returns true if err is or wraps an *EntriesTooShortError.
func IsEntriesTooShort(err error) bool {
	var e *EntriesTooShortError
	return errors.As(err, &e)
}

// IsIndexOutOfRange returns true if err is or wraps an *IndexOutOfRangeError.
func IsIndexOutOfRange(err error) bool {
	var e *IndexOutOfRangeError
	return errors.As(err, &e)
}

// IsNotFound returns true if err reports a failed identifier or name lookup.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
