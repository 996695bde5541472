package pagebt

// fileHeader is written once when the tree file is created.
// Layout:
//   - Bytes 0-3: signature
//   - Bytes 4-5: order
//   - Bytes 6-7: record size
type fileHeader struct {
	Sign       uint32
	Order      uint16
	RecordSize uint16
}

func newFileHeader(order, recSize uint16) fileHeader {
	return fileHeader{
		Sign:       validSignature,
		Order:      order,
		RecordSize: recSize,
	}
}

func (h *fileHeader) checkIntegrity() bool {
	return h.Sign == validSignature && h.Order >= 1 && h.RecordSize > 0
}

func (h *fileHeader) marshal() []byte {
	buf := make([]byte, headerSize)
	byteOrder.PutUint32(buf[0:4], h.Sign)
	byteOrder.PutUint16(buf[4:6], h.Order)
	byteOrder.PutUint16(buf[6:8], h.RecordSize)
	return buf
}

func (h *fileHeader) unmarshal(buf []byte) {
	h.Sign = byteOrder.Uint32(buf[0:4])
	h.Order = byteOrder.Uint16(buf[4:6])
	h.RecordSize = byteOrder.Uint16(buf[6:8])
}
