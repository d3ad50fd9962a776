package pit

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaderTooShortError(t *testing.T) {
	err := &HeaderTooShortError{Length: 12}

	assert.Contains(t, err.Error(), "got 12 bytes")
	assert.Contains(t, err.Error(), "minimum is 28")
}

func TestEntriesTooShortError(t *testing.T) {
	err := &EntriesTooShortError{
		Length:     300,
		EntryCount: 10,
		Available:  2,
	}

	assert.Contains(t, err.Error(), "declares 10 entries")
	assert.Contains(t, err.Error(), "only 2 present")
	assert.Contains(t, err.Error(), "300 bytes")
}

func TestIndexOutOfRangeError(t *testing.T) {
	tests := []struct {
		name    string
		err     *IndexOutOfRangeError
		wantMsg string
	}{
		{
			name:    "non-empty table",
			err:     &IndexOutOfRangeError{Index: 5, Count: 5},
			wantMsg: "valid range is 0-4",
		},
		{
			name:    "empty table",
			err:     &IndexOutOfRangeError{Index: 0, Count: 0},
			wantMsg: "table is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.err.Error(), tt.wantMsg)
		})
	}
}

func TestErrorHelpers(t *testing.T) {
	wrap := func(err error) error { return fmt.Errorf("parse device.pit: %w", err) }

	tests := []struct {
		name          string
		err           error
		headerShort   bool
		entriesShort  bool
		indexRange    bool
		notFound      bool
		malformedFile bool
	}{
		{name: "header too short", err: wrap(&HeaderTooShortError{}), headerShort: true, malformedFile: true},
		{name: "entries too short", err: wrap(&EntriesTooShortError{}), entriesShort: true, malformedFile: true},
		{name: "index out of range", err: wrap(&IndexOutOfRangeError{}), indexRange: true},
		{name: "identifier not found", err: wrap(&IdentifierNotFoundError{}), notFound: true},
		{name: "partition not found", err: wrap(&PartitionNotFoundError{}), notFound: true},
		{name: "unrelated", err: errors.New("boom")},
		{name: "nil", err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.headerShort, IsHeaderTooShort(tt.err), "IsHeaderTooShort")
			assert.Equal(t, tt.entriesShort, IsEntriesTooShort(tt.err), "IsEntriesTooShort")
			assert.Equal(t, tt.indexRange, IsIndexOutOfRange(tt.err), "IsIndexOutOfRange")
			assert.Equal(t, tt.notFound, IsNotFound(tt.err), "IsNotFound")
			assert.Equal(t, tt.malformedFile, errors.Is(tt.err, ErrMalformed), "errors.Is(err, ErrMalformed)")
		})
	}
}

func TestErrorTypes(t *testing.T) {
	var _ error = &HeaderTooShortError{}
	var _ error = &EntriesTooShortError{}
	var _ error = &IndexOutOfRangeError{}
	var _ error = &IdentifierNotFoundError{}
	var _ error = &PartitionNotFoundError{}
}
