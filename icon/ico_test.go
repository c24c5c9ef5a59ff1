package icon

import (
	"bytes"
	"encoding/binary"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeICO(t *testing.T) {
	var buf bytes.Buffer
	sizes := []int{16, 48, 256}
	require.NoError(t, EncodeICO(&buf, DefaultDesign(), sizes))

	data := buf.Bytes()
	var hdr [3]uint16
	require.NoError(t, binary.Read(bytes.NewReader(data[:6]), binary.LittleEndian, &hdr))
	assert.Equal(t, [3]uint16{0, 1, 3}, hdr)

	for i, size := range sizes {
		entry := data[6+16*i : 6+16*(i+1)]
		wantDim := byte(size)
		if size == 256 {
			wantDim = 0
		}
		assert.Equal(t, wantDim, entry[0], "width byte")
		assert.Equal(t, wantDim, entry[1], "height byte")

		n := binary.LittleEndian.Uint32(entry[8:12])
		off := binary.LittleEndian.Uint32(entry[12:16])
		require.LessOrEqual(t, int(off+n), len(data))

		cfg, err := png.DecodeConfig(bytes.NewReader(data[off : off+n]))
		require.NoError(t, err)
		assert.Equal(t, size, cfg.Width)
		assert.Equal(t, size, cfg.Height)
	}
}

func TestEncodeICORejectsBadSizes(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, EncodeICO(&buf, DefaultDesign(), nil))
	assert.Error(t, EncodeICO(&buf, DefaultDesign(), []int{512}))
	assert.Error(t, EncodeICO(&buf, DefaultDesign(), []int{0}))
	assert.Zero(t, buf.Len())
}

func TestICOBytesWriteFile(t *testing.T) {
	data, err := ICOBytes(DefaultDesign(), DefaultICOSizes)
	require.NoError(t, err)
	assert.Greater(t, len(data), 6+16*len(DefaultICOSizes))

	path := filepath.Join(t.TempDir(), "icon.ico")
	require.NoError(t, WriteFile(path, data))

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, onDisk)

	err = WriteFile(filepath.Join(t.TempDir(), "missing", "icon.ico"), data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write icon")
}
