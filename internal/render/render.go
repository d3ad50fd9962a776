// Package render formats decoded PIT tables for display.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/FergusInLondon/PitParser/pit"
)

// Format selects an output representation.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat returns the Format named by s. Matching is case-insensitive
// and the empty string selects FormatText.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
	}
}

type headerView struct {
	Head       uint32 `json:"head" yaml:"head"`
	EntryCount uint32 `json:"entry_count" yaml:"entry_count"`
	Unknown1   uint32 `json:"unknown1" yaml:"unknown1"`
	Unknown2   uint32 `json:"unknown2" yaml:"unknown2"`
	Unknown3   uint16 `json:"unknown3" yaml:"unknown3"`
	Unknown4   uint16 `json:"unknown4" yaml:"unknown4"`
	Unknown5   uint16 `json:"unknown5" yaml:"unknown5"`
	Unknown6   uint16 `json:"unknown6" yaml:"unknown6"`
	Unknown7   uint16 `json:"unknown7" yaml:"unknown7"`
	Unknown8   uint16 `json:"unknown8" yaml:"unknown8"`
}

type entryView struct {
	Index             uint32 `json:"index" yaml:"index"`
	BinaryType        uint32 `json:"binary_type" yaml:"binary_type"`
	DeviceType        uint32 `json:"device_type" yaml:"device_type"`
	Identifier        uint32 `json:"identifier" yaml:"identifier"`
	Attributes        uint32 `json:"attributes" yaml:"attributes"`
	UpdateAttributes  uint32 `json:"update_attributes" yaml:"update_attributes"`
	BlockSizeOrOffset uint32 `json:"block_size_or_offset" yaml:"block_size_or_offset"`
	BlockCount        uint32 `json:"block_count" yaml:"block_count"`
	FileOffset        uint32 `json:"file_offset" yaml:"file_offset"`
	FileSize          uint32 `json:"file_size" yaml:"file_size"`
	PartitionName     string `json:"partition_name" yaml:"partition_name"`
	FlashFileName     string `json:"flash_file_name" yaml:"flash_file_name"`
	FotaFileName      string `json:"fota_file_name" yaml:"fota_file_name"`
}

type tableView struct {
	Header    headerView  `json:"header" yaml:"header"`
	Truncated bool        `json:"truncated,omitempty" yaml:"truncated,omitempty"`
	Entries   []entryView `json:"entries" yaml:"entries"`
}

func newHeaderView(h pit.Header) headerView {
	return headerView{
		Head:       h.Head,
		EntryCount: h.EntryCount,
		Unknown1:   h.Unknown1,
		Unknown2:   h.Unknown2,
		Unknown3:   h.Unknown3,
		Unknown4:   h.Unknown4,
		Unknown5:   h.Unknown5,
		Unknown6:   h.Unknown6,
		Unknown7:   h.Unknown7,
		Unknown8:   h.Unknown8,
	}
}

func newEntryView(idx uint32, e pit.Entry) entryView {
	return entryView{
		Index:             idx,
		BinaryType:        e.BinaryType,
		DeviceType:        e.DeviceType,
		Identifier:        e.Identifier,
		Attributes:        e.Attributes,
		UpdateAttributes:  e.UpdateAttributes,
		BlockSizeOrOffset: e.BlockSizeOrOffset,
		BlockCount:        e.BlockCount,
		FileOffset:        e.FileOffset,
		FileSize:          e.FileSize,
		PartitionName:     e.PartitionName,
		FlashFileName:     e.FlashFileName,
		FotaFileName:      e.FotaFileName,
	}
}

// Write renders the header and every entry of t to w.
func Write(w io.Writer, t *pit.Table, f Format) error {
	if f == FormatText {
		if _, err := fmt.Fprintf(w, "Number of entries: %d\n\n", t.EntryCount()); err != nil {
			return err
		}
		for i, e := range t.Entries() {
			if err := writeEntryText(w, uint32(i), e); err != nil {
				return err
			}
		}
		return nil
	}

	entries := t.Entries()
	v := tableView{
		Header:    newHeaderView(t.Header()),
		Truncated: t.Truncated(),
		Entries:   make([]entryView, len(entries)),
	}
	for i, e := range entries {
		v.Entries[i] = newEntryView(uint32(i), e)
	}
	return encode(w, v, f)
}

// WriteEntry renders a single entry found at index idx.
func WriteEntry(w io.Writer, idx uint32, e pit.Entry, f Format) error {
	if f == FormatText {
		return writeEntryText(w, idx, e)
	}
	return encode(w, newEntryView(idx, e), f)
}

// writeEntryText prints an entry using a one-based position.
func writeEntryText(w io.Writer, idx uint32, e pit.Entry) error {
	_, err := fmt.Fprintf(w, "%02d - %s\n"+
		"\tPartition Identifier: %d\n"+
		"\tDevice Type: %d\n"+
		"\tBlock Count: %d\n"+
		"\tAttributes: %d\n\n\n",
		idx+1, e.PartitionName, e.Identifier, e.DeviceType, e.BlockCount, e.Attributes)
	return err
}

func encode(w io.Writer, v any, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", f)
	}
}
