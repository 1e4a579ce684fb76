package xtransfer

import (
	"errors"
	"fmt"

	"github.com/xtransfer-org/xtransfer-go/types"
	"github.com/xtransfer-org/xtransfer-go/util"
)

// Weigher computes the weight of the message before execution.
type Weigher interface {
	Weight(msg *types.Xcm) (types.Weight, error)
}

var _ Weigher = FixedWeigher{}

/*
FixedWeigher charges the same weight for every instruction of the message,
the message itself and every (nested) order count as one instruction each.
*/
type FixedWeigher struct {
	UnitWeight      types.Weight
	MaxInstructions int
}

func (w FixedWeigher) Weight(msg *types.Xcm) (types.Weight, error) {
	if msg == nil {
		return 0, types.ErrXcmIsNil
	}
	n := msg.Instructions()
	if n > w.MaxInstructions {
		return 0, fmt.Errorf("message has %d instructions, limit is %d", n, w.MaxInstructions)
	}
	weight, ok := util.SafeMul(uint64(n), w.UnitWeight)
	if !ok {
		return 0, errors.New("message weight overflows")
	}
	return weight, nil
}
