package pit

import "encoding/binary"

// buildTestPIT encodes a PIT image for testing. The header's EntryCount is
// used as-is so tests can declare more entries than they supply.
func buildTestPIT(hdr Header, entries []Entry) []byte {
	buf := make([]byte, HeaderSize+EntrySize*len(entries))

	binary.LittleEndian.PutUint32(buf[0x00:], hdr.Head)
	binary.LittleEndian.PutUint32(buf[0x04:], hdr.EntryCount)
	binary.LittleEndian.PutUint32(buf[0x08:], hdr.Unknown1)
	binary.LittleEndian.PutUint32(buf[0x0C:], hdr.Unknown2)
	binary.LittleEndian.PutUint16(buf[0x10:], hdr.Unknown3)
	binary.LittleEndian.PutUint16(buf[0x12:], hdr.Unknown4)
	binary.LittleEndian.PutUint16(buf[0x14:], hdr.Unknown5)
	binary.LittleEndian.PutUint16(buf[0x16:], hdr.Unknown6)
	binary.LittleEndian.PutUint16(buf[0x18:], hdr.Unknown7)
	binary.LittleEndian.PutUint16(buf[0x1A:], hdr.Unknown8)

	for i, e := range entries {
		b := buf[HeaderSize+i*EntrySize:]
		binary.LittleEndian.PutUint32(b[offBinaryType:], e.BinaryType)
		binary.LittleEndian.PutUint32(b[offDeviceType:], e.DeviceType)
		binary.LittleEndian.PutUint32(b[offIdentifier:], e.Identifier)
		binary.LittleEndian.PutUint32(b[offAttributes:], e.Attributes)
		binary.LittleEndian.PutUint32(b[offUpdateAttributes:], e.UpdateAttributes)
		binary.LittleEndian.PutUint32(b[offBlockSizeOrOffset:], e.BlockSizeOrOffset)
		binary.LittleEndian.PutUint32(b[offBlockCount:], e.BlockCount)
		binary.LittleEndian.PutUint32(b[offFileOffset:], e.FileOffset)
		binary.LittleEndian.PutUint32(b[offFileSize:], e.FileSize)
		copy(b[offPartitionName:offPartitionName+NameSize], e.PartitionName)
		copy(b[offFlashFileName:offFlashFileName+NameSize], e.FlashFileName)
		copy(b[offFotaFileName:offFotaFileName+NameSize], e.FotaFileName)
	}

	return buf
}

// entriesWithIDs returns one minimal entry per identifier.
func entriesWithIDs(ids ...uint32) []Entry {
	entries := make([]Entry, len(ids))
	for i, id := range ids {
		entries[i] = Entry{Identifier: id, BlockCount: uint32(i + 1)}
	}
	return entries
}
