package classfile_test

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// wideConstantClassfile hand-assembles a classfile whose constant pool leads
// with a CONSTANT_Long entry, which occupies two pool slots.
func wideConstantClassfile(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := func(v any) {
		if err := binary.Write(&buf, binary.BigEndian, v); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	w(uint32(0xCAFEBABE))
	w(uint16(0))
	w(uint16(52))

	w(uint16(7)) // constant_pool_count: slots 1..6 used

	w(uint8(5)) // CONSTANT_Long at 1 (and phantom 2)
	w(uint64(42))

	w(uint8(1)) // CONSTANT_Utf8 at 3
	w(uint16(len("demo/A")))
	buf.WriteString("demo/A")

	w(uint8(7)) // CONSTANT_Class at 4
	w(uint16(3))

	w(uint8(1)) // CONSTANT_Utf8 at 5
	w(uint16(len("java/lang/Object")))
	buf.WriteString("java/lang/Object")

	w(uint8(7)) // CONSTANT_Class at 6
	w(uint16(5))

	w(uint16(0x0021))
	w(uint16(4)) // this_class
	w(uint16(6)) // super_class
	w(uint16(0)) // interfaces_count
	w(uint16(0)) // fields_count
	w(uint16(0)) // methods_count
	w(uint16(0)) // attributes_count

	return buf.Bytes()
}
