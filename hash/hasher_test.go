package hash

import (
	"crypto"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Hash(t *testing.T) {
	t.Run("value is encoded to cbor", func(t *testing.T) {
		v := junctionData{Kind: 3, Index: 292987, Key: []byte{2, 6, 7, 99, 12}}

		h := NewSha256()
		h.Write(v)
		h1, err := h.Sum()
		require.NoError(t, err)
		require.Len(t, h1, 32)

		// hashing the raw encoding must give the same result
		buf, err := encoderMode.Marshal(v)
		require.NoError(t, err)
		h.Reset()
		h.WriteRaw(buf)
		h2, err := h.Sum()
		require.NoError(t, err)
		require.Equal(t, h1, h2)

		v.Index++
		h.Reset()
		h.Write(v)
		h2, err = h.Sum()
		require.NoError(t, err)
		require.NotEqual(t, h1, h2)
	})

	t.Run("encoding error", func(t *testing.T) {
		h := New(crypto.SHA256.New())
		h.Write(1)
		h.Write(&junctionData{Fail: true})
		h.Write(3)
		_, err := h.Sum()
		require.EqualError(t, err, `nope, can't do`)
	})
}

func Test_Sum(t *testing.T) {
	v := junctionData{Kind: 1, Index: 7}
	h1, err := Sum(crypto.SHA256, v, uint64(5))
	require.NoError(t, err)

	h2, err := Sum(crypto.SHA256, v, uint64(5))
	require.NoError(t, err)
	require.Equal(t, h1, h2)

	_, err = Sum(crypto.SHA256, &junctionData{Fail: true})
	require.EqualError(t, err, `calculating hash: nope, can't do`)
}

type junctionData struct {
	_     struct{} `cbor:",toarray"`
	Kind  uint8
	Index uint64
	Key   []byte
	Fail  bool
}

func (jd *junctionData) MarshalCBOR() ([]byte, error) {
	if jd.Fail {
		return nil, fmt.Errorf("nope, can't do")
	}

	type alias junctionData
	return encoderMode.Marshal((*alias)(jd))
}
