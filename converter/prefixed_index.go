/*
Package converter maps cross-chain asset descriptions (locations and
multi-assets) to the chain local asset ids and balances.
*/
package converter

import (
	"errors"
	"fmt"

	"github.com/xtransfer-org/xtransfer-go/numeric"
	"github.com/xtransfer-org/xtransfer-go/types"
)

var (
	ErrPrefixMismatch     = errors.New("location doesn't match the asset prefix")
	ErrUnexpectedJunction = errors.New("unexpected junction")
)

// LocationConverter converts asset location into local asset id and back.
type LocationConverter[ID any] interface {
	Convert(loc types.Location) (ID, error)
	Reverse(id ID) (types.Location, error)
}

var _ LocationConverter[uint32] = (*PrefixedGeneralIndex[uint32])(nil)

/*
PrefixedGeneralIndex converts locations of the form

	Prefix/GeneralIndex(n)

into asset id n. Assets of sibling chains, ie locations of the form

	Parent/Parachain(chain)/Prefix/GeneralIndex(n)

(prefix must be single junction), are mapped to asset id

	chain << bitlen(n) + n

The foreign mapping is one way: Reverse always returns the interior
location, ie a foreign asset id is re-expressed as local asset.
NB! The foreign ids are not guaranteed to be unique, different
(chain, n) pairs may produce the same id.
*/
type PrefixedGeneralIndex[ID any] struct {
	prefix types.Location
	ids    numeric.Relay[ID]
}

func NewPrefixedGeneralIndex[ID any](prefix types.Location, ids numeric.Relay[ID]) (*PrefixedGeneralIndex[ID], error) {
	if err := prefix.IsValid(); err != nil {
		return nil, fmt.Errorf("invalid prefix: %w", err)
	}
	if !prefix.IsInterior() {
		return nil, fmt.Errorf("prefix must be interior location, got %s", prefix)
	}
	if ids == nil {
		return nil, errors.New("asset id relay is nil")
	}
	return &PrefixedGeneralIndex[ID]{
		prefix: types.NewLocation(prefix...),
		ids:    ids,
	}, nil
}

// Prefix returns copy of the location prefix of the assets.
func (c *PrefixedGeneralIndex[ID]) Prefix() types.Location {
	return types.NewLocation(c.prefix...)
}

func (c *PrefixedGeneralIndex[ID]) Convert(loc types.Location) (id ID, err error) {
	var raw types.U128
	if loc.IsInterior() {
		raw, err = c.interiorIndex(loc)
	} else {
		raw, err = c.foreignIndex(loc)
	}
	if err != nil {
		return id, err
	}
	if id, err = c.ids.Narrow(raw); err != nil {
		return id, fmt.Errorf("converting general index of %s: %w", loc, err)
	}
	return id, nil
}

func (c *PrefixedGeneralIndex[ID]) interiorIndex(loc types.Location) (types.U128, error) {
	for i, pj := range c.prefix {
		if j, ok := loc.At(i); !ok || !j.Equal(pj) {
			return types.U128{}, fmt.Errorf("%w: %s at junction %d", ErrPrefixMismatch, loc, i)
		}
	}
	j, ok := loc.At(len(c.prefix))
	if !ok || j.Kind != types.JunctionGeneralIndex {
		return types.U128{}, fmt.Errorf("%w: expected GeneralIndex after prefix in %s", ErrUnexpectedJunction, loc)
	}
	return j.Index, nil
}

func (c *PrefixedGeneralIndex[ID]) foreignIndex(loc types.Location) (types.U128, error) {
	if len(loc) != 4 ||
		loc[0].Kind != types.JunctionParent ||
		loc[1].Kind != types.JunctionParachain ||
		loc[3].Kind != types.JunctionGeneralIndex {
		return types.U128{}, fmt.Errorf("%w: expected Parent/Parachain/<prefix>/GeneralIndex, got %s", ErrUnexpectedJunction, loc)
	}
	if !types.NewLocation(loc[2]).Equal(c.prefix) {
		return types.U128{}, fmt.Errorf("%w: %s", ErrPrefixMismatch, loc)
	}
	return PackForeignIndex(loc[1].ID, loc[3].Index), nil
}

/*
PackForeignIndex returns chainID << bitlen(index) + index, when the result
doesn't fit into 128 bits it saturates to the max value.
*/
func PackForeignIndex(chainID uint32, index types.U128) types.U128 {
	return types.NewU128(uint64(chainID)).
		SaturatingShl(uint(index.BitLen())).
		SaturatingAdd(index)
}

/*
Reverse returns the interior location of the asset id, ie Prefix/GeneralIndex(id).
Fails with types.ErrLocationFull when the prefix has no room for the general index.
*/
func (c *PrefixedGeneralIndex[ID]) Reverse(id ID) (types.Location, error) {
	loc, err := c.prefix.PushBack(types.GeneralIndex(c.ids.Widen(id)))
	if err != nil {
		return nil, fmt.Errorf("appending general index to prefix %s: %w", c.prefix, err)
	}
	return loc, nil
}
