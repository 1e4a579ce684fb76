/*
Package numeric implements checked conversions between the 128-bit wire
integers and the integer types used for asset ids and balances by the host.
*/
package numeric

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/xtransfer-org/xtransfer-go/types"
)

var ErrRangeExceeded = errors.New("value out of range")

/*
Relay converts 128-bit value into N and back. Narrow fails with
ErrRangeExceeded when the value doesn't fit into N, Widen never fails.
*/
type Relay[N any] interface {
	Narrow(v types.U128) (N, error)
	Widen(v N) types.U128
}

var (
	_ Relay[uint32]     = Checked[uint32]{}
	_ Relay[types.U128] = Identity{}
)

// Checked is Relay for unsigned integer types up to 64 bits.
type Checked[N constraints.Unsigned] struct {
	name string
}

// NewAssetIDRelay returns relay for asset id type N.
func NewAssetIDRelay[N constraints.Unsigned]() Checked[N] {
	return Checked[N]{name: "asset id"}
}

// NewBalanceRelay returns relay for balance type N.
func NewBalanceRelay[N constraints.Unsigned]() Checked[N] {
	return Checked[N]{name: "balance"}
}

func (c Checked[N]) Narrow(v types.U128) (N, error) {
	maxN := ^N(0)
	if !v.IsUint64() || v.Uint64() > uint64(maxN) {
		return 0, fmt.Errorf("%s %s exceeds maximum %d: %w", c.valueName(), v, maxN, ErrRangeExceeded)
	}
	return N(v.Uint64()), nil
}

func (c Checked[N]) Widen(v N) types.U128 {
	return types.NewU128(uint64(v))
}

func (c Checked[N]) valueName() string {
	if c.name == "" {
		return "value"
	}
	return c.name
}

// Identity is Relay for hosts which use 128-bit integers natively.
type Identity struct{}

func (Identity) Narrow(v types.U128) (types.U128, error) {
	return v, nil
}

func (Identity) Widen(v types.U128) types.U128 {
	return v
}
