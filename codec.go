package pagebt

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

var (
	_ Codec[uint16] = new(Uint16Codec)
	_ Codec[uint32] = new(Uint32Codec)
	_ Codec[uint64] = new(Uint64Codec)
	_ Codec[int64]  = new(Int64Codec)
	_ Codec[[]byte] = new(FixedBytesCodec)
)

// Codec maps values to fixed-size records. The numeric codecs are big-endian
// so that BytesComparator orders records the same way as the values.
type Codec[T any] interface {
	Size() uint16
	Unmarshal(data []byte, v *T) error
	Marshal(v *T) ([]byte, error)
}

type Uint16Codec struct{}

func (u Uint16Codec) Size() uint16 { return 2 }

func (u Uint16Codec) Unmarshal(data []byte, v *uint16) error {
	*v = binary.BigEndian.Uint16(data)
	return nil
}

func (u Uint16Codec) Marshal(v *uint16) (b []byte, err error) {
	b = binary.BigEndian.AppendUint16(b, *v)
	return
}

type Uint32Codec struct{}

func (u Uint32Codec) Size() uint16 { return 4 }

func (u Uint32Codec) Unmarshal(data []byte, v *uint32) error {
	*v = binary.BigEndian.Uint32(data)
	return nil
}

func (u Uint32Codec) Marshal(v *uint32) (b []byte, err error) {
	b = binary.BigEndian.AppendUint32(b, *v)
	return
}

type Uint64Codec struct{}

func (u Uint64Codec) Size() uint16 { return 8 }

func (u Uint64Codec) Unmarshal(data []byte, v *uint64) error {
	*v = binary.BigEndian.Uint64(data)
	return nil
}

func (u Uint64Codec) Marshal(v *uint64) (b []byte, err error) {
	b = binary.BigEndian.AppendUint64(b, *v)
	return
}

// Int64Codec flips the sign bit so negative values sort first.
type Int64Codec struct{}

func (i Int64Codec) Size() uint16 { return 8 }

func (i Int64Codec) Unmarshal(data []byte, v *int64) error {
	*v = int64(binary.BigEndian.Uint64(data) ^ (1 << 63))
	return nil
}

func (i Int64Codec) Marshal(v *int64) (b []byte, err error) {
	b = binary.BigEndian.AppendUint64(b, uint64(*v)^(1<<63))
	return
}

// FixedBytesCodec stores byte strings of exactly N bytes.
type FixedBytesCodec struct {
	N uint16
}

func (f FixedBytesCodec) Size() uint16 { return f.N }

func (f FixedBytesCodec) Unmarshal(data []byte, v *[]byte) error {
	*v = append((*v)[:0], data...)
	return nil
}

func (f FixedBytesCodec) Marshal(v *[]byte) ([]byte, error) {
	if len(*v) != int(f.N) {
		return nil, errors.Wrapf(ErrInvalidArgument, "fixed bytes len(%d) != N(%d)", len(*v), f.N)
	}
	return *v, nil
}

func checkCodecSize(size uint16) error {
	if size == 0 {
		return errors.WithMessage(ErrInvalidArgument, "codec size can't be 0")
	}
	return nil
}
