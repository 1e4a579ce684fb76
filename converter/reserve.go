package converter

import (
	"github.com/xtransfer-org/xtransfer-go/types"
)

// ReservePolicy decides whether the origin is trusted as the reserve of the asset.
type ReservePolicy interface {
	IsTrusted(asset types.MultiAsset, origin types.Location) bool
}

var (
	_ ReservePolicy = TrustedReserve{}
	_ ReservePolicy = (*ReserveAllowList)(nil)
)

// TrustedReserve trusts any origin as the reserve of any asset.
type TrustedReserve struct{}

func (TrustedReserve) IsTrusted(types.MultiAsset, types.Location) bool {
	return true
}

/*
ReserveAllowList trusts only listed origins. An origin may be trusted for
all assets or only for the assets whose location starts with one of the
given prefixes.
*/
type ReserveAllowList struct {
	reserves []reserve
}

type reserve struct {
	origin types.Location
	assets []types.Location // nil means all assets
}

func NewReserveAllowList() *ReserveAllowList {
	return &ReserveAllowList{}
}

/*
Allow adds origin as trusted reserve for assets under the given location
prefixes, when no prefixes are given origin is trusted for all assets.
*/
func (al *ReserveAllowList) Allow(origin types.Location, assetPrefixes ...types.Location) *ReserveAllowList {
	r := reserve{origin: types.NewLocation(origin...)}
	for _, p := range assetPrefixes {
		r.assets = append(r.assets, types.NewLocation(p...))
	}
	al.reserves = append(al.reserves, r)
	return al
}

func (al *ReserveAllowList) IsTrusted(asset types.MultiAsset, origin types.Location) bool {
	for _, r := range al.reserves {
		if !r.origin.Equal(origin) {
			continue
		}
		if r.assets == nil {
			return true
		}
		if asset.Kind != types.AssetConcreteFungible && asset.Kind != types.AssetConcreteNonFungible {
			continue
		}
		for _, p := range r.assets {
			if asset.ID.HasPrefix(p) {
				return true
			}
		}
	}
	return false
}
