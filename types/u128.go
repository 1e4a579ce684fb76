package types

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"math/bits"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"

	"github.com/xtransfer-org/xtransfer-go/cbor"
)

var ErrU128Overflow = errors.New("value does not fit into 128 bits")

// MaxU128 is the largest value representable by U128.
var MaxU128 = U128{Hi: math.MaxUint64, Lo: math.MaxUint64}

/*
U128 is an unsigned 128-bit integer. It is used for asset amounts and
general indexes which are 128-bit values on the wire.

U128 is comparable, two values are equal when both halves are equal.
*/
type U128 struct {
	Hi uint64
	Lo uint64
}

func NewU128(v uint64) U128 {
	return U128{Lo: v}
}

// U128FromBig converts b into U128, fails when b is negative or wider than 128 bits.
func U128FromBig(b *big.Int) (U128, error) {
	if b == nil {
		return U128{}, errors.New("nil big integer")
	}
	if b.Sign() < 0 {
		return U128{}, fmt.Errorf("negative value %s", b)
	}
	x, overflow := uint256.FromBig(b)
	if overflow {
		return U128{}, ErrU128Overflow
	}
	return fromUint256(x)
}

// ParseU128 parses base 10 string representation of the value.
func ParseU128(s string) (U128, error) {
	x, err := uint256.FromDecimal(s)
	if err != nil {
		return U128{}, fmt.Errorf("parsing %q as integer: %w", s, err)
	}
	return fromUint256(x)
}

func fromUint256(x *uint256.Int) (U128, error) {
	if x[2] != 0 || x[3] != 0 {
		return U128{}, ErrU128Overflow
	}
	return U128{Hi: x[1], Lo: x[0]}, nil
}

func (u U128) toUint256() *uint256.Int {
	return &uint256.Int{u.Lo, u.Hi, 0, 0}
}

func (u U128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

func (u U128) IsUint64() bool {
	return u.Hi == 0
}

// Uint64 returns the low 64 bits of the value.
func (u U128) Uint64() uint64 {
	return u.Lo
}

// BitLen returns the number of bits required to represent u, zero for zero.
func (u U128) BitLen() int {
	if u.Hi != 0 {
		return 64 + bits.Len64(u.Hi)
	}
	return bits.Len64(u.Lo)
}

func (u U128) Cmp(v U128) int {
	return u.toUint256().Cmp(v.toUint256())
}

/*
SaturatingShl returns u << n, when the result doesn't fit into 128 bits
MaxU128 is returned (instead of dropping the high bits).
*/
func (u U128) SaturatingShl(n uint) U128 {
	if u.IsZero() {
		return u
	}
	if n >= 128 || uint(u.BitLen())+n > 128 {
		return MaxU128
	}
	x := u.toUint256()
	r, _ := fromUint256(x.Lsh(x, n))
	return r
}

// SaturatingAdd returns u + v or MaxU128 when the sum overflows.
func (u U128) SaturatingAdd(v U128) U128 {
	x := u.toUint256()
	r, err := fromUint256(x.Add(x, v.toUint256()))
	if err != nil {
		return MaxU128
	}
	return r
}

func (u U128) Big() *big.Int {
	return u.toUint256().ToBig()
}

// String returns base 10 representation of the value.
func (u U128) String() string {
	return u.toUint256().Dec()
}

func (u U128) MarshalText() ([]byte, error) {
	return []byte(hexutil.EncodeBig(u.Big())), nil
}

func (u *U128) UnmarshalText(src []byte) error {
	b, err := hexutil.DecodeBig(string(src))
	if err != nil {
		return err
	}
	v, err := U128FromBig(b)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// MarshalCBOR encodes the value as CBOR unsigned integer or bignum when
// it doesn't fit into 64 bits.
func (u U128) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(u.Big())
}

func (u *U128) UnmarshalCBOR(data []byte) error {
	var b big.Int
	if err := cbor.Unmarshal(data, &b); err != nil {
		return fmt.Errorf("decoding 128-bit integer: %w", err)
	}
	v, err := U128FromBig(&b)
	if err != nil {
		return err
	}
	*u = v
	return nil
}
