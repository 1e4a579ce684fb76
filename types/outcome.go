package types

import (
	"errors"
	"fmt"

	"github.com/xtransfer-org/xtransfer-go/cbor"
)

const (
	OutcomeComplete OutcomeKind = iota
	OutcomeIncomplete
	OutcomeError
)

type (
	OutcomeKind uint8

	/*
	Outcome is the result of executing a message:
	  - Complete: executed fully, Weight is the weight used;
	  - Incomplete: execution stopped with Error after using Weight, effects
	    executed before the error remain;
	  - Error: nothing was executed.
	*/
	Outcome struct {
		_      struct{} `cbor:",toarray"`
		Kind   OutcomeKind
		Weight Weight
		Error  string
	}
)

func Complete(used Weight) Outcome {
	return Outcome{Kind: OutcomeComplete, Weight: used}
}

func Incomplete(used Weight, err string) Outcome {
	return Outcome{Kind: OutcomeIncomplete, Weight: used, Error: err}
}

func ErrorOutcome(err string) Outcome {
	return Outcome{Kind: OutcomeError, Error: err}
}

// EnsureComplete returns nil when the outcome is Complete and error otherwise.
func (o Outcome) EnsureComplete() error {
	switch o.Kind {
	case OutcomeComplete:
		return nil
	case OutcomeIncomplete:
		return fmt.Errorf("message execution incomplete after weight %d: %s", o.Weight, o.Error)
	case OutcomeError:
		return fmt.Errorf("message execution failed: %s", o.Error)
	default:
		return errors.New("unknown outcome")
	}
}

func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeComplete:
		return fmt.Sprintf("Complete(%d)", o.Weight)
	case OutcomeIncomplete:
		return fmt.Sprintf("Incomplete(%d, %s)", o.Weight, o.Error)
	case OutcomeError:
		return fmt.Sprintf("Error(%s)", o.Error)
	default:
		return fmt.Sprintf("Unknown(%d)", o.Kind)
	}
}

func (o Outcome) MarshalCBOR() ([]byte, error) {
	type alias Outcome
	return cbor.MarshalTaggedValue(OutcomeTag, (alias)(o))
}

func (o *Outcome) UnmarshalCBOR(data []byte) error {
	type alias Outcome
	return cbor.UnmarshalTaggedValue(OutcomeTag, data, (*alias)(o))
}
