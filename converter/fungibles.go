package converter

import (
	"errors"

	"github.com/xtransfer-org/xtransfer-go/numeric"
	"github.com/xtransfer-org/xtransfer-go/types"
)

var (
	ErrAssetKindUnsupported    = errors.New("asset kind not supported")
	ErrAssetIDConversionFailed = errors.New("asset id conversion failed")
	ErrAmountConversionFailed  = errors.New("amount to balance conversion failed")
)

/*
ConcreteFungibles matches concrete fungible assets, converting the asset
location into local asset id of type ID and the amount into balance of
type B.
*/
type ConcreteFungibles[ID, B any] struct {
	ids      LocationConverter[ID]
	balances numeric.Relay[B]
}

func NewConcreteFungibles[ID, B any](ids LocationConverter[ID], balances numeric.Relay[B]) *ConcreteFungibles[ID, B] {
	return &ConcreteFungibles[ID, B]{ids: ids, balances: balances}
}

/*
Match returns local asset id and balance of the asset.

The errors returned do not carry the cause of the failure, only the
stage which failed (asset kind, id or amount conversion).
*/
func (m *ConcreteFungibles[ID, B]) Match(asset types.MultiAsset) (id ID, amount B, _ error) {
	if asset.Kind != types.AssetConcreteFungible {
		return id, amount, ErrAssetKindUnsupported
	}
	id, err := m.ids.Convert(asset.ID)
	if err != nil {
		return id, amount, ErrAssetIDConversionFailed
	}
	if amount, err = m.balances.Narrow(asset.Amount); err != nil {
		var zero ID
		return zero, amount, ErrAmountConversionFailed
	}
	return id, amount, nil
}
