// Package classtest builds minimal valid classfiles for tests.
package classtest

import (
	"bytes"
	"encoding/binary"
)

// Bytes encodes a minimal classfile for a type with the given binary name,
// superclass and directly implemented interfaces. An empty super encodes a
// root-style class with super_class index zero. The result carries an empty
// body (no fields, methods or attributes).
func Bytes(name, super string, interfaces ...string) []byte {
	var buf bytes.Buffer
	w := func(v any) { _ = binary.Write(&buf, binary.BigEndian, v) }

	w(uint32(0xCAFEBABE))
	w(uint16(0))  // minor
	w(uint16(52)) // major, Java 8

	names := append([]string{name}, interfaces...)
	if super != "" {
		names = append(names, super)
	}

	// One Utf8 plus one Class entry per distinct name.
	classIdx := make(map[string]uint16)
	var pool bytes.Buffer
	pw := func(v any) { _ = binary.Write(&pool, binary.BigEndian, v) }
	next := uint16(1)
	for _, n := range names {
		if _, ok := classIdx[n]; ok {
			continue
		}
		pw(uint8(1)) // CONSTANT_Utf8
		pw(uint16(len(n)))
		pool.WriteString(n)
		pw(uint8(7)) // CONSTANT_Class
		pw(next)
		classIdx[n] = next + 1
		next += 2
	}

	w(next) // constant_pool_count
	buf.Write(pool.Bytes())

	w(uint16(0x0021)) // ACC_PUBLIC | ACC_SUPER
	w(classIdx[name])
	if super == "" {
		w(uint16(0))
	} else {
		w(classIdx[super])
	}
	w(uint16(len(interfaces)))
	for _, ifc := range interfaces {
		w(classIdx[ifc])
	}
	w(uint16(0)) // fields_count
	w(uint16(0)) // methods_count
	w(uint16(0)) // attributes_count

	return buf.Bytes()
}
