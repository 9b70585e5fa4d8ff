package binary

import (
	"bytes"
	"encoding/binary"
	stderrors "errors"
	"io"
	"unicode/utf8"

	"github.com/wippyai/nbs-json/errors"
)

// Reader wraps an io.Reader with position tracking and little-endian NBS reads.
// It only moves forward.
type Reader struct {
	r   io.Reader
	pos int
	buf [4]byte
}

// NewReader creates a new Reader wrapping the given io.Reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r, pos: 0}
}

// Position returns the current byte position.
func (r *Reader) Position() int {
	return r.pos
}

// fill reads exactly n bytes into the scratch buffer.
func (r *Reader) fill(n int) ([]byte, error) {
	got, err := io.ReadFull(r.r, r.buf[:n])
	if err != nil {
		start := r.pos
		r.pos += got
		return nil, r.readError(start, n, got, err)
	}
	r.pos += n
	return r.buf[:n], nil
}

// ReadU8 reads a single byte.
func (r *Reader) ReadU8() (uint8, error) {
	b, err := r.fill(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadU16 reads a little-endian uint16.
func (r *Reader) ReadU16() (uint16, error) {
	b, err := r.fill(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadI16 reads a little-endian two's complement int16.
func (r *Reader) ReadI16() (int16, error) {
	v, err := r.ReadU16()
	if err != nil {
		return 0, err
	}
	return int16(v), nil
}

// ReadU32 reads a little-endian uint32.
func (r *Reader) ReadU32() (uint32, error) {
	b, err := r.fill(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadBytes reads exactly n bytes.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	start := r.pos
	// A bytes.Reader knows what is left, so an absurd length fails before allocating.
	if br, ok := r.r.(*bytes.Reader); ok && br.Len() < n {
		avail := br.Len()
		_, _ = br.Seek(0, io.SeekEnd)
		r.pos += avail
		return nil, errors.UnexpectedEnd(start, n, avail)
	}
	var buf bytes.Buffer
	got, err := io.CopyN(&buf, r.r, int64(n))
	r.pos += int(got)
	if err != nil {
		return nil, r.readError(start, n, int(got), err)
	}
	return buf.Bytes(), nil
}

// ReadString reads a u32 byte length followed by that many UTF-8 bytes.
// A zero length yields "" without further reads.
func (r *Reader) ReadString() (string, error) {
	length, err := r.ReadU32()
	if err != nil {
		return "", err
	}
	if length == 0 {
		return "", nil
	}
	start := r.pos
	data, err := r.ReadBytes(int(length))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", errors.InvalidUTF8(start, data)
	}
	return string(data), nil
}

func (r *Reader) readError(start, want, got int, err error) error {
	if stderrors.Is(err, io.EOF) || stderrors.Is(err, io.ErrUnexpectedEOF) {
		return errors.UnexpectedEnd(start, want, got)
	}
	return errors.Read(start, err)
}
