package types

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/xtransfer-org/xtransfer-go/cbor"
)

const (
	// AssetAll is the wildcard, matches all the assets in holding.
	AssetAll AssetKind = iota
	AssetConcreteFungible
	AssetAbstractFungible
	AssetConcreteNonFungible
)

var ErrMultiAssetIsNil = errors.New("multi asset is nil")

type (
	AssetKind uint8

	/*
	MultiAsset is some quantity of an asset identified either by its Location
	(concrete assets) or by opaque identifier (abstract assets). Wildcard All
	is used as asset filter in message orders.
	*/
	MultiAsset struct {
		_          struct{} `cbor:",toarray"`
		Kind       AssetKind
		ID         Location // concrete asset id
		AbstractID []byte   // abstract asset id
		Amount     U128     // fungible amount
		Instance   U128     // non-fungible instance
	}
)

func AllAssets() MultiAsset {
	return MultiAsset{Kind: AssetAll}
}

func ConcreteFungible(id Location, amount U128) MultiAsset {
	return MultiAsset{Kind: AssetConcreteFungible, ID: id, Amount: amount}
}

func AbstractFungible(id []byte, amount U128) MultiAsset {
	return MultiAsset{Kind: AssetAbstractFungible, AbstractID: id, Amount: amount}
}

func ConcreteNonFungible(class Location, instance U128) MultiAsset {
	return MultiAsset{Kind: AssetConcreteNonFungible, ID: class, Instance: instance}
}

func (a *MultiAsset) IsValid() error {
	if a == nil {
		return ErrMultiAssetIsNil
	}
	switch a.Kind {
	case AssetAll:
	case AssetConcreteFungible, AssetConcreteNonFungible:
		if err := a.ID.IsValid(); err != nil {
			return fmt.Errorf("invalid asset location: %w", err)
		}
	case AssetAbstractFungible:
		if len(a.AbstractID) == 0 {
			return errors.New("abstract asset id is empty")
		}
	default:
		return fmt.Errorf("unknown asset kind %d", a.Kind)
	}
	return nil
}

func (a MultiAsset) String() string {
	switch a.Kind {
	case AssetAll:
		return "All"
	case AssetConcreteFungible:
		return fmt.Sprintf("ConcreteFungible(%s, %s)", a.ID, a.Amount)
	case AssetAbstractFungible:
		return fmt.Sprintf("AbstractFungible(%s, %s)", hexutil.Encode(a.AbstractID), a.Amount)
	case AssetConcreteNonFungible:
		return fmt.Sprintf("ConcreteNonFungible(%s, %s)", a.ID, a.Instance)
	default:
		return fmt.Sprintf("Unknown(%d)", a.Kind)
	}
}

func (a MultiAsset) MarshalCBOR() ([]byte, error) {
	type alias MultiAsset
	return cbor.MarshalTaggedValue(MultiAssetTag, (alias)(a))
}

func (a *MultiAsset) UnmarshalCBOR(data []byte) error {
	type alias MultiAsset
	return cbor.UnmarshalTaggedValue(MultiAssetTag, data, (*alias)(a))
}
