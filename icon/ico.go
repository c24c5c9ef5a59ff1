package icon

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// DefaultICOSizes are the resolutions packed into a Windows icon.
var DefaultICOSizes = []int{16, 32, 48, 256}

const (
	icoHeaderLen = 6
	icoEntryLen  = 16
)

// EncodeICO renders d once per size and packs the PNGs into an ICO
// container. Each size is a fresh render, not a resample.
func EncodeICO(w io.Writer, d Design, sizes []int) error {
	data, err := ICOBytes(d, sizes)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ICOBytes returns the ICO container for d at the given sizes.
func ICOBytes(d Design, sizes []int) ([]byte, error) {
	if len(sizes) == 0 {
		return nil, fmt.Errorf("ico: no sizes")
	}

	pngs := make([][]byte, 0, len(sizes))
	for _, size := range sizes {
		if size < 1 || size > 256 {
			return nil, fmt.Errorf("ico: size %d out of range 1..256", size)
		}
		cv, err := Render(d.WithSize(size))
		if err != nil {
			return nil, fmt.Errorf("ico: render %d: %w", size, err)
		}
		data, err := EncodeBytes(cv.Image())
		if err != nil {
			return nil, fmt.Errorf("ico: %d: %w", size, err)
		}
		pngs = append(pngs, data)
	}

	var buf bytes.Buffer
	// reserved, type (1 = icon), count
	binary.Write(&buf, binary.LittleEndian, [3]uint16{0, 1, uint16(len(sizes))})

	offset := uint32(icoHeaderLen + icoEntryLen*len(sizes))
	for i, size := range sizes {
		dim := uint8(size)
		if size >= 256 {
			dim = 0
		}
		buf.Write([]byte{dim, dim, 0, 0})
		binary.Write(&buf, binary.LittleEndian, uint16(1))  // planes
		binary.Write(&buf, binary.LittleEndian, uint16(32)) // bpp
		binary.Write(&buf, binary.LittleEndian, uint32(len(pngs[i])))
		binary.Write(&buf, binary.LittleEndian, offset)
		offset += uint32(len(pngs[i]))
	}
	for _, p := range pngs {
		buf.Write(p)
	}
	return buf.Bytes(), nil
}
