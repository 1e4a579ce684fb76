package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xtransfer-org/xtransfer-go/types"
)

func Test_Checked_Narrow(t *testing.T) {
	t.Run("fits", func(t *testing.T) {
		v8, err := NewAssetIDRelay[uint8]().Narrow(types.NewU128(255))
		require.NoError(t, err)
		require.EqualValues(t, 255, v8)

		v32, err := NewAssetIDRelay[uint32]().Narrow(types.NewU128(243))
		require.NoError(t, err)
		require.EqualValues(t, 243, v32)

		v64, err := NewBalanceRelay[uint64]().Narrow(types.NewU128(math.MaxUint64))
		require.NoError(t, err)
		require.EqualValues(t, uint64(math.MaxUint64), v64)

		v, err := Checked[uint16]{}.Narrow(types.U128{})
		require.NoError(t, err)
		require.Zero(t, v)
	})

	t.Run("range exceeded", func(t *testing.T) {
		_, err := NewAssetIDRelay[uint8]().Narrow(types.NewU128(256))
		require.ErrorIs(t, err, ErrRangeExceeded)
		require.EqualError(t, err, `asset id 256 exceeds maximum 255: value out of range`)

		_, err = NewAssetIDRelay[uint32]().Narrow(types.NewU128(math.MaxUint32 + 1))
		require.ErrorIs(t, err, ErrRangeExceeded)

		_, err = NewBalanceRelay[uint64]().Narrow(types.U128{Hi: 1})
		require.EqualError(t, err, `balance 18446744073709551616 exceeds maximum 18446744073709551615: value out of range`)

		_, err = Checked[uint64]{}.Narrow(types.MaxU128)
		require.EqualError(t, err, `value 340282366920938463463374607431768211455 exceeds maximum 18446744073709551615: value out of range`)
	})
}

func Test_Checked_Widen(t *testing.T) {
	require.Equal(t, types.NewU128(math.MaxUint32), NewAssetIDRelay[uint32]().Widen(math.MaxUint32))
	require.Equal(t, types.NewU128(7), NewBalanceRelay[uint8]().Widen(7))

	// widen then narrow is identity
	relay := NewAssetIDRelay[uint16]()
	for _, v := range []uint16{0, 1, 19, 243, math.MaxUint16} {
		res, err := relay.Narrow(relay.Widen(v))
		require.NoError(t, err)
		require.Equal(t, v, res)
	}
}

func Test_Identity(t *testing.T) {
	v, err := Identity{}.Narrow(types.MaxU128)
	require.NoError(t, err)
	require.Equal(t, types.MaxU128, v)
	require.Equal(t, types.NewU128(5), Identity{}.Widen(types.NewU128(5)))
}
