package xcm

import (
	"crypto/rand"
	"testing"

	"github.com/xtransfer-org/xtransfer-go/types"
)

// AssetPallet is the pallet instance the test assets live under.
const AssetPallet = 50

/*
AssetPrefix returns the location prefix of the general index assets used
by tests, ie PalletInstance(50).
*/
func AssetPrefix() types.Location {
	return types.NewLocation(types.PalletInstance(AssetPallet))
}

// LocalAsset returns location PalletInstance(50)/GeneralIndex(index).
func LocalAsset(index uint64) types.Location {
	return types.NewLocation(types.PalletInstance(AssetPallet), types.GeneralIndex(types.NewU128(index)))
}

// SiblingAsset returns location Parent/Parachain(chain)/PalletInstance(50)/GeneralIndex(index).
func SiblingAsset(chain uint32, index uint64) types.Location {
	return types.NewLocation(
		types.Parent(),
		types.Parachain(chain),
		types.PalletInstance(AssetPallet),
		types.GeneralIndex(types.NewU128(index)),
	)
}

// SiblingChain returns location Parent/Parachain(chain).
func SiblingChain(chain uint32) types.Location {
	return types.NewLocation(types.Parent(), types.Parachain(chain))
}

// NewAccount returns location of random 32 byte account.
func NewAccount(t *testing.T) types.Location {
	var id [types.AccountID32Length]byte
	if err := Random(id[:]); err != nil {
		t.Fatal("failed to generate account id:", err)
	}
	return types.NewLocation(types.AccountID32(id))
}

// Random fills the buf with random bytes.
func Random(buf []byte) error {
	_, err := rand.Read(buf)
	return err
}
