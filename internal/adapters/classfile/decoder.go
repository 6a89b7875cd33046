// Package classfile implements the classfile decoder over raw bytes.
package classfile

import (
	"encoding/binary"

	"go.trai.ch/lineage/internal/core/domain"
	"go.trai.ch/lineage/internal/core/ports"
	"go.trai.ch/zerr"
)

const magic = 0xCAFEBABE

// Constant pool tags, JVMS §4.4.
const (
	tagUtf8               = 1
	tagInteger            = 3
	tagFloat              = 4
	tagLong               = 5
	tagDouble             = 6
	tagClass              = 7
	tagString             = 8
	tagFieldref           = 9
	tagMethodref          = 10
	tagInterfaceMethodref = 11
	tagNameAndType        = 12
	tagMethodHandle       = 15
	tagMethodType         = 16
	tagDynamic            = 17
	tagInvokeDynamic      = 18
	tagModule             = 19
	tagPackage            = 20
)

var _ ports.ClassfileDecoder = (*Decoder)(nil)

// Decoder reads hierarchy information out of classfile bytes without
// loading the class. Only the constant pool and the class header are
// visited; methods, fields and attributes are never touched.
type Decoder struct{}

// NewDecoder creates a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// ReadSuperclassName returns the immediate superclass name encoded in data.
// The zero TypeName is returned for the root class.
func (d *Decoder) ReadSuperclassName(data []byte) (domain.TypeName, error) {
	h, err := parseHeader(data)
	if err != nil {
		return domain.TypeName{}, err
	}
	if h.superClass == 0 {
		// Only java/lang/Object and module-info carry a zero super_class.
		return domain.TypeName{}, nil
	}
	name, err := h.className(h.superClass)
	if err != nil {
		return domain.TypeName{}, err
	}
	return domain.NewTypeName(name), nil
}

// ReadDirectInterfaceNames returns the directly implemented interface names
// in classfile declaration order.
func (d *Decoder) ReadDirectInterfaceNames(data []byte) ([]domain.TypeName, error) {
	h, err := parseHeader(data)
	if err != nil {
		return nil, err
	}

	names := make([]domain.TypeName, 0, len(h.interfaces))
	for _, idx := range h.interfaces {
		name, err := h.className(idx)
		if err != nil {
			return nil, err
		}
		names = append(names, domain.NewTypeName(name))
	}
	return names, nil
}

// header holds the decoded slice of a classfile the engine cares about.
type header struct {
	utf8       map[uint16]string // constant pool index -> modified UTF-8 bytes
	classes    map[uint16]uint16 // constant pool index -> name index
	superClass uint16
	interfaces []uint16
}

// className resolves a CONSTANT_Class_info index to its binary name.
func (h *header) className(idx uint16) (string, error) {
	nameIdx, ok := h.classes[idx]
	if !ok {
		return "", zerr.With(zerr.With(domain.ErrMalformedClassfile, "reason", "not a class constant"), "index", int(idx))
	}
	name, ok := h.utf8[nameIdx]
	if !ok {
		return "", zerr.With(zerr.With(domain.ErrMalformedClassfile, "reason", "dangling utf8 index"), "index", int(nameIdx))
	}
	return name, nil
}

func parseHeader(data []byte) (*header, error) {
	r := &reader{data: data}

	if m := r.u4(); m != magic {
		return nil, zerr.With(domain.ErrMalformedClassfile, "reason", "bad magic")
	}
	r.skip(4) // minor, major

	cpCount := r.u2()
	h := &header{
		utf8:    make(map[uint16]string),
		classes: make(map[uint16]uint16),
	}

	// Constant pool indices run from 1 to cpCount-1; long and double
	// entries occupy two slots.
	for i := uint16(1); i < cpCount && r.err == nil; i++ {
		tag := r.u1()
		switch tag {
		case tagUtf8:
			length := r.u2()
			h.utf8[i] = string(r.bytes(int(length)))
		case tagClass:
			h.classes[i] = r.u2()
		case tagInteger, tagFloat, tagFieldref, tagMethodref,
			tagInterfaceMethodref, tagNameAndType, tagDynamic, tagInvokeDynamic:
			r.skip(4)
		case tagLong, tagDouble:
			r.skip(8)
			i++
		case tagString, tagMethodType, tagModule, tagPackage:
			r.skip(2)
		case tagMethodHandle:
			r.skip(3)
		default:
			return nil, zerr.With(zerr.With(domain.ErrMalformedClassfile, "reason", "unknown constant pool tag"), "tag", int(tag))
		}
	}

	r.skip(2) // access_flags
	r.skip(2) // this_class
	h.superClass = r.u2()

	ifaceCount := r.u2()
	h.interfaces = make([]uint16, 0, ifaceCount)
	for i := uint16(0); i < ifaceCount && r.err == nil; i++ {
		h.interfaces = append(h.interfaces, r.u2())
	}

	if r.err != nil {
		return nil, r.err
	}
	return h, nil
}

// reader is a bounds-checked big-endian cursor with a sticky error.
type reader struct {
	data []byte
	off  int
	err  error
}

func (r *reader) truncated(n int) bool {
	if r.err != nil {
		return true
	}
	if r.off+n > len(r.data) {
		r.err = zerr.With(zerr.With(domain.ErrMalformedClassfile, "reason", "truncated classfile"), "offset", r.off)
		return true
	}
	return false
}

func (r *reader) u1() uint8 {
	if r.truncated(1) {
		return 0
	}
	v := r.data[r.off]
	r.off++
	return v
}

func (r *reader) u2() uint16 {
	if r.truncated(2) {
		return 0
	}
	v := binary.BigEndian.Uint16(r.data[r.off:])
	r.off += 2
	return v
}

func (r *reader) u4() uint32 {
	if r.truncated(4) {
		return 0
	}
	v := binary.BigEndian.Uint32(r.data[r.off:])
	r.off += 4
	return v
}

func (r *reader) bytes(n int) []byte {
	if r.truncated(n) {
		return nil
	}
	v := r.data[r.off : r.off+n]
	r.off += n
	return v
}

func (r *reader) skip(n int) {
	if r.truncated(n) {
		return
	}
	r.off += n
}
