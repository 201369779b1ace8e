package endian

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForFlag(t *testing.T) {
	require.Equal(t, EndianEngine(binary.BigEndian), ForFlag(true))
	require.Equal(t, EndianEngine(binary.LittleEndian), ForFlag(false))
	require.True(t, IsBigEndian(ForFlag(true)))
	require.False(t, IsBigEndian(ForFlag(false)))
}

func TestEngineRoundTrip(t *testing.T) {
	const v = 73600.5
	for _, engine := range []EndianEngine{GetLittleEndianEngine(), GetBigEndianEngine()} {
		buf := engine.AppendUint64(nil, math.Float64bits(v))
		require.Len(t, buf, 8)
		require.Equal(t, v, math.Float64frombits(engine.Uint64(buf)))
	}
}

func TestCheckEndianness(t *testing.T) {
	order := CheckEndianness()
	require.Equal(t, order == binary.LittleEndian, IsNativeLittleEndian())
}

func TestGetNativeEngine(t *testing.T) {
	engine := GetNativeEngine()
	require.Equal(t, !IsNativeLittleEndian(), IsBigEndian(engine))
	require.Equal(t, CheckEndianness().Uint32([]byte{1, 2, 3, 4}), engine.Uint32([]byte{1, 2, 3, 4}))
}
