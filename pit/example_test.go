package pit_test

import (
	"encoding/binary"
	"fmt"

	"github.com/FergusInLondon/PitParser/pit"
)

// examplePIT builds a two-entry PIT image.
func examplePIT() []byte {
	buf := make([]byte, pit.HeaderSize+2*pit.EntrySize)
	binary.LittleEndian.PutUint32(buf[4:], 2)

	names := []string{"BOOTLOADER", "PIT"}
	ids := []uint32{80, 70}
	for i := range names {
		e := buf[pit.HeaderSize+i*pit.EntrySize:]
		binary.LittleEndian.PutUint32(e[0x08:], ids[i])
		copy(e[0x24:0x44], names[i])
	}
	return buf
}

func ExampleDecode() {
	t, err := pit.Decode(examplePIT())
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("Number of entries: %d\n", t.EntryCount())
	for i, e := range t.Entries() {
		fmt.Printf("%02d - %s\n", i+1, e.PartitionName)
	}
	// Output:
	// Number of entries: 2
	// 01 - BOOTLOADER
	// 02 - PIT
}

func ExampleTable_EntryByIdentifier() {
	t, _ := pit.Decode(examplePIT())

	e, err := t.EntryByIdentifier(70)
	fmt.Println(e.PartitionName, err)

	_, err = t.EntryByIdentifier(1)
	fmt.Println(err)
	// Output:
	// PIT <nil>
	// no entry with partition identifier 1
}

func ExampleWithLenient() {
	buf := examplePIT()[:pit.HeaderSize+pit.EntrySize]

	_, err := pit.Decode(buf)
	fmt.Println(err)

	t, _ := pit.Decode(buf, pit.WithLenient(true))
	fmt.Println(t.EntryCount(), t.Truncated())
	// Output:
	// file too short for entries: header declares 2 entries, only 1 present (160 bytes)
	// 1 true
}
