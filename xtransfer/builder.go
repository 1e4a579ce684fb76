/*
Package xtransfer builds and executes reserve based asset transfer messages.
*/
package xtransfer

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/xtransfer-org/xtransfer-go/converter"
	"github.com/xtransfer-org/xtransfer-go/types"
)

var ErrUnweighableMessage = errors.New("unweighable message")

// Executor executes the message on behalf of origin.
type Executor interface {
	/*
	ExecuteInCredit executes msg using at most maxWeight, credit is the weight
	already paid for. Failures are reported through the outcome.
	*/
	ExecuteInCredit(ctx context.Context, origin types.Location, msg types.Xcm, maxWeight, credit types.Weight) types.Outcome
}

type (
	/*
	Builder assembles the transfer message

		WithdrawAsset(asset)
		  DepositReserveAsset(All, dest)
		    DepositAsset(All, beneficiary)

	weighs it and executes it with the computed weight as both the limit
	and the credit.

	NB! The message doesn't contain BuyExecution order, the destination is
	expected to execute the deposit without charging for it.
	*/
	Builder struct {
		origins  OriginResolver
		weigher  Weigher
		executor Executor
		reserves converter.ReservePolicy
		events   EventSink
		log      logrus.FieldLogger
	}

	Option func(*Builder)
)

func WithEventSink(sink EventSink) Option {
	return func(b *Builder) {
		b.events = sink
	}
}

func WithReservePolicy(policy converter.ReservePolicy) Option {
	return func(b *Builder) {
		b.reserves = policy
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(b *Builder) {
		b.log = log
	}
}

func NewBuilder(origins OriginResolver, weigher Weigher, executor Executor, opts ...Option) (*Builder, error) {
	if origins == nil {
		return nil, errors.New("origin resolver is nil")
	}
	if weigher == nil {
		return nil, errors.New("weigher is nil")
	}
	if executor == nil {
		return nil, errors.New("executor is nil")
	}
	b := &Builder{
		origins:  origins,
		weigher:  weigher,
		executor: executor,
		reserves: converter.TrustedReserve{},
		events:   nopSink{},
		log:      logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// BuildMessage returns the transfer message for the request.
func (b *Builder) BuildMessage(req TransferRequest) types.Xcm {
	return types.WithdrawAsset(
		[]types.MultiAsset{req.Asset},
		types.DepositReserveAsset(
			[]types.MultiAsset{types.AllAssets()},
			types.NewLocation(req.Dest...),
			types.DepositAsset([]types.MultiAsset{types.AllAssets()}, types.NewLocation(req.Beneficiary...)),
		),
	)
}

/*
Transfer resolves the origin, builds and weighs the transfer message and
executes it. The execution outcome is returned (and deposited into the event
sink) as is, ie failed execution is not an error of the Transfer.

When the message can't be weighed ErrUnweighableMessage is returned and
nothing is executed.
*/
func (b *Builder) Transfer(ctx context.Context, origin Origin, req TransferRequest) (*Attempted, error) {
	originLoc, err := b.origins.EnsureOrigin(origin)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadOrigin, err)
	}
	if err := req.IsValid(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	msg := b.BuildMessage(req)
	weight, err := b.weigher.Weight(&msg)
	if err != nil {
		b.log.WithError(err).WithField("origin", originLoc.String()).Debug("failed to weigh transfer message")
		return nil, ErrUnweighableMessage
	}
	msgID, err := msg.ID()
	if err != nil {
		return nil, fmt.Errorf("calculating message id: %w", err)
	}

	log := b.log.WithFields(logrus.Fields{
		"message": fmt.Sprintf("%X", msgID),
		"origin":  originLoc.String(),
		"weight":  weight,
	})
	log.Debug("executing transfer message")
	outcome := b.executor.ExecuteInCredit(ctx, originLoc, msg, weight, weight)
	log.WithField("outcome", outcome.String()).Debug("transfer message executed")

	event := Attempted{
		MessageID: msgID,
		Origin:    originLoc,
		Weight:    weight,
		Outcome:   outcome,
	}
	b.events.Deposit(event)
	return &event, nil
}

// IsTrustedReserve reports whether origin is trusted as the reserve of the asset.
func (b *Builder) IsTrustedReserve(asset types.MultiAsset, origin types.Location) bool {
	return b.reserves.IsTrusted(asset, origin)
}
