package hfxgen

import "encoding/binary"

// binWriter is an append-only byte arena with stable offsets, in the
// style of spirv.Writer's manual binary.LittleEndian encoding: values
// are appended as the container's sections are produced in order, and
// a handful of header fields (block sizes, pass offsets) are reserved
// up front and back-patched once their true value is known.
type binWriter struct {
	buf []byte
}

func newBinWriter() *binWriter {
	return &binWriter{buf: make([]byte, 0, 4096)}
}

// Len returns the number of bytes written so far.
func (w *binWriter) Len() int { return len(w.buf) }

// Bytes returns the accumulated buffer.
func (w *binWriter) Bytes() []byte { return w.buf }

// Reserve appends n zero bytes and returns their starting offset, for
// later backpatching via WriteAt.
func (w *binWriter) Reserve(n int) int {
	start := len(w.buf)
	w.buf = append(w.buf, make([]byte, n)...)
	return start
}

// WriteAt overwrites len(data) bytes starting at offset. It is a no-op
// if the range falls outside the buffer.
func (w *binWriter) WriteAt(offset int, data []byte) {
	if offset < 0 || offset+len(data) > len(w.buf) {
		return
	}
	copy(w.buf[offset:], data)
}

func (w *binWriter) U8(v uint8) { w.buf = append(w.buf, v) }

func (w *binWriter) I8(v int8) { w.buf = append(w.buf, byte(v)) }

func (w *binWriter) U16(v uint16) {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	w.buf = append(w.buf, tmp[:]...)
}

func (w *binWriter) U32(v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	w.buf = append(w.buf, tmp[:]...)
}

func (w *binWriter) U32At(offset int, v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	w.WriteAt(offset, tmp[:])
}

func (w *binWriter) F32(v float32) {
	w.U32(f32bits(v))
}

func (w *binWriter) I64(v int64) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], uint64(v))
	w.buf = append(w.buf, tmp[:]...)
}

func (w *binWriter) U64(v uint64) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	w.buf = append(w.buf, tmp[:]...)
}

// FixedString appends s truncated or zero-padded to exactly width bytes.
func (w *binWriter) FixedString(s string, width int) {
	var tmp = make([]byte, width)
	copy(tmp, s)
	w.buf = append(w.buf, tmp...)
}

// RawBytes appends raw bytes verbatim.
func (w *binWriter) RawBytes(b []byte) { w.buf = append(w.buf, b...) }
