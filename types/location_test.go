package types

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xtransfer-org/xtransfer-go/cbor"
)

func Test_Location_IsInterior(t *testing.T) {
	require.True(t, Here.IsInterior())
	require.True(t, NewLocation(PalletInstance(50)).IsInterior())
	require.True(t, NewLocation(PalletInstance(50), GeneralIndex(NewU128(7))).IsInterior())
	require.False(t, NewLocation(Parent()).IsInterior())
	require.False(t, NewLocation(Parent(), Parachain(2010), PalletInstance(50), GeneralIndex(NewU128(1))).IsInterior())
}

func Test_Location_At(t *testing.T) {
	loc := NewLocation(Parent(), Parachain(7))

	j, ok := loc.At(1)
	require.True(t, ok)
	require.Equal(t, Parachain(7), j)

	_, ok = loc.At(2)
	require.False(t, ok)
	_, ok = loc.At(-1)
	require.False(t, ok)
	_, ok = Here.At(0)
	require.False(t, ok)
}

func Test_Location_Equal(t *testing.T) {
	a := NewLocation(PalletInstance(50), GeneralIndex(NewU128(7)))
	require.True(t, a.Equal(NewLocation(PalletInstance(50), GeneralIndex(NewU128(7)))))
	require.False(t, a.Equal(NewLocation(PalletInstance(50), GeneralIndex(NewU128(8)))))
	require.False(t, a.Equal(NewLocation(PalletInstance(50))))
	require.False(t, a.Equal(NewLocation(Parachain(50), GeneralIndex(NewU128(7)))))
	require.True(t, Here.Equal(Location{}))

	// nil and empty key are the same
	require.True(t, NewLocation(Junction{Kind: JunctionGeneralKey}).Equal(NewLocation(GeneralKey([]byte{}))))
	require.False(t, NewLocation(GeneralKey([]byte{1})).Equal(NewLocation(GeneralKey([]byte{2}))))
}

func Test_Location_HasPrefix(t *testing.T) {
	loc := NewLocation(PalletInstance(50), GeneralIndex(NewU128(7)))
	require.True(t, loc.HasPrefix(Here))
	require.True(t, loc.HasPrefix(NewLocation(PalletInstance(50))))
	require.True(t, loc.HasPrefix(loc))
	require.False(t, loc.HasPrefix(NewLocation(PalletInstance(51))))
	require.False(t, NewLocation(PalletInstance(50)).HasPrefix(loc))
}

func Test_Location_PushBack(t *testing.T) {
	t.Run("receiver is not modified", func(t *testing.T) {
		base := make(Location, 1, MaxJunctions)
		base[0] = PalletInstance(50)

		a, err := base.PushBack(GeneralIndex(NewU128(1)))
		require.NoError(t, err)
		b, err := base.PushBack(GeneralIndex(NewU128(2)))
		require.NoError(t, err)

		require.Equal(t, NewLocation(PalletInstance(50)), base)
		require.True(t, a.Equal(NewLocation(PalletInstance(50), GeneralIndex(NewU128(1)))))
		require.True(t, b.Equal(NewLocation(PalletInstance(50), GeneralIndex(NewU128(2)))))
	})

	t.Run("location full", func(t *testing.T) {
		loc := Here
		for i := range MaxJunctions {
			var err error
			loc, err = loc.PushBack(GeneralIndex(NewU128(uint64(i))))
			require.NoError(t, err)
		}
		require.Equal(t, MaxJunctions, loc.Len())

		res, err := loc.PushBack(OnlyChild())
		require.ErrorIs(t, err, ErrLocationFull)
		require.Nil(t, res)
	})
}

func Test_Location_IsValid(t *testing.T) {
	require.NoError(t, Here.IsValid())
	require.NoError(t, NewLocation(Parent(), Parachain(1), AccountKey20([20]byte{1}), AccountID32([32]byte{2})).IsValid())

	require.EqualError(t, NewLocation(Parachain(1), Junction{Kind: JunctionPalletInstance, ID: 256}).IsValid(),
		`invalid junction 1: pallet instance index 256 doesn't fit into byte`)
	require.EqualError(t, NewLocation(Junction{Kind: JunctionAccountID32, Key: []byte{1}}).IsValid(),
		`invalid junction 0: account id must be 32 bytes, got 1 bytes`)
	require.EqualError(t, NewLocation(Junction{Kind: JunctionAccountIndex64, Index: U128{Hi: 1}}).IsValid(),
		`invalid junction 0: account index 18446744073709551616 doesn't fit into 64 bits`)
	require.EqualError(t, NewLocation(Junction{Kind: 99}).IsValid(), `invalid junction 0: unknown junction kind 99`)
	require.EqualError(t, make(Location, MaxJunctions+1).IsValid(), `location can have up to 8 junctions, got 9`)
}

func Test_Junction_IsValid_unusedPayload(t *testing.T) {
	cases := []struct {
		j   Junction
		err string
	}{
		{Junction{Kind: JunctionPalletInstance, ID: 50, Index: NewU128(7)}, `junction kind 5 doesn't carry index, got 7`},
		{Junction{Kind: JunctionParent, ID: 1}, `junction kind 0 doesn't carry id, got 1`},
		{Junction{Kind: JunctionOnlyChild, Key: []byte{1}}, `junction kind 8 doesn't carry key, got 1 bytes`},
		{Junction{Kind: JunctionGeneralIndex, Index: NewU128(7), ID: 2}, `junction kind 6 doesn't carry id, got 2`},
		{Junction{Kind: JunctionAccountKey20, Key: make([]byte, 20), Index: U128{Hi: 1}}, `junction kind 4 doesn't carry index, got 18446744073709551616`},
		{Junction{Kind: JunctionParachain, ID: 7, Key: []byte{7}}, `junction kind 1 doesn't carry key, got 1 bytes`},
	}
	for _, tc := range cases {
		require.EqualError(t, tc.j.IsValid(), tc.err, "junction %s", tc.j)
	}

	t.Run("decoded junction with stray payload", func(t *testing.T) {
		data, err := cbor.Marshal(NewLocation(Junction{Kind: JunctionPalletInstance, ID: 50, Index: NewU128(7)}))
		require.NoError(t, err)
		var loc Location
		require.NoError(t, cbor.Unmarshal(data, &loc))
		require.EqualError(t, loc.IsValid(), `invalid junction 0: junction kind 5 doesn't carry index, got 7`)
	})

	t.Run("constructors produce valid junctions", func(t *testing.T) {
		for _, j := range []Junction{
			Parent(), Parachain(7), AccountID32([32]byte{1}), AccountIndex64(5), AccountKey20([20]byte{2}),
			PalletInstance(50), GeneralIndex(MaxU128), GeneralKey([]byte{3}), OnlyChild(),
		} {
			require.NoError(t, j.IsValid(), "junction %s", j)
		}
	})
}

func Test_ParseLocation(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cases := []struct {
			text string
			loc  Location
		}{
			{"", Here},
			{"Here", Here},
			{"PalletInstance(50)", NewLocation(PalletInstance(50))},
			{"PalletInstance(50)/GeneralIndex(7)", NewLocation(PalletInstance(50), GeneralIndex(NewU128(7)))},
			{"../Parachain(2010)/PalletInstance(50)/GeneralIndex(2010)", NewLocation(Parent(), Parachain(2010), PalletInstance(50), GeneralIndex(NewU128(2010)))},
			{"Parent / Parachain(7)", NewLocation(Parent(), Parachain(7))},
			{"AccountKey20(0x0102030405060708090a0b0c0d0e0f1011121314)", NewLocation(AccountKey20([20]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20}))},
			{"GeneralKey(0xabcd)/OnlyChild", NewLocation(GeneralKey([]byte{0xab, 0xcd}), OnlyChild())},
			{"AccountIndex64(42)", NewLocation(AccountIndex64(42))},
			{"GeneralIndex(340282366920938463463374607431768211455)", NewLocation(GeneralIndex(MaxU128))},
		}
		for _, tc := range cases {
			loc, err := ParseLocation(tc.text)
			if err != nil {
				t.Errorf("parsing %q: %v", tc.text, err)
				continue
			}
			if !loc.Equal(tc.loc) {
				t.Errorf("parsing %q: expected %s, got %s", tc.text, tc.loc, loc)
			}
		}
	})

	t.Run("invalid", func(t *testing.T) {
		cases := []struct {
			text string
			err  string
		}{
			{"Parachain(x)", `junction 0: invalid parachain id`},
			{"Parachain(4294967296)", `junction 0: invalid parachain id`},
			{"PalletInstance(256)", `junction 0: invalid pallet instance`},
			{"PalletInstance(50)/GeneralIndex(-1)", `junction 1: invalid general index`},
			{"Foo(1)", `junction 0: unknown junction "Foo"`},
			{"PalletInstance", `junction 0: invalid junction "PalletInstance"`},
			{"(1)", `junction 0: invalid junction "(1)"`},
			{"AccountKey20(0x01)", `junction 0: account key must be 20 bytes, got 1 bytes`},
			{"AccountId32(01)", `junction 0: invalid AccountId32 key`},
			{"../../../../../../../../..", `location can have up to 8 junctions, got 9`},
		}
		for _, tc := range cases {
			_, err := ParseLocation(tc.text)
			require.ErrorContains(t, err, tc.err, "parsing %q", tc.text)
		}
	})

	t.Run("string round trip", func(t *testing.T) {
		loc := NewLocation(Parent(), Parachain(2000), AccountID32([32]byte{0xff}), GeneralKey([]byte("key")), GeneralIndex(NewU128(19)))
		res, err := ParseLocation(loc.String())
		require.NoError(t, err)
		require.True(t, loc.Equal(res), "expected %s got %s", loc, res)

		require.Equal(t, "Here", Here.String())
		require.Equal(t, "Parent/Parachain(7)/PalletInstance(50)/GeneralIndex(19)",
			NewLocation(Parent(), Parachain(7), PalletInstance(50), GeneralIndex(NewU128(19))).String())
	})
}

func Test_Location_CBOR(t *testing.T) {
	loc := NewLocation(Parent(), Parachain(2010), PalletInstance(50), AccountID32([32]byte{1, 2, 3}), GeneralIndex(MaxU128))
	data, err := cbor.Marshal(loc)
	require.NoError(t, err)

	var res Location
	require.NoError(t, cbor.Unmarshal(data, &res))
	require.True(t, loc.Equal(res), "expected %s got %s", loc, res)

	var junctions []Junction
	require.EqualError(t, cbor.UnmarshalTaggedValue(MultiAssetTag, data, &junctions), `unexpected tag: 1101, expected: 1102`)
}

func Test_Location_Text(t *testing.T) {
	loc := NewLocation(PalletInstance(50), GeneralIndex(NewU128(7)))
	txt, err := loc.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "PalletInstance(50)/GeneralIndex(7)", string(txt))

	var res Location
	require.NoError(t, res.UnmarshalText(txt))
	require.True(t, loc.Equal(res))
	require.Error(t, res.UnmarshalText([]byte("Nope(1)")))
}
