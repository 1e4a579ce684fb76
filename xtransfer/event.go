package xtransfer

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/sirupsen/logrus"

	"github.com/xtransfer-org/xtransfer-go/types"
	"github.com/xtransfer-org/xtransfer-go/util"
)

type (
	// Attempted records the outcome of one executed transfer message.
	Attempted struct {
		_         struct{} `cbor:",toarray"`
		MessageID hexutil.Bytes
		Origin    types.Location
		Weight    types.Weight
		Outcome   types.Outcome
	}

	// EventSink receives the Attempted events, one per executed message.
	EventSink interface {
		Deposit(event Attempted)
	}

	// LogSink writes the events into the log.
	LogSink struct {
		log logrus.FieldLogger
	}

	nopSink struct{}
)

func NewLogSink(log logrus.FieldLogger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Deposit(event Attempted) {
	entry := s.log.WithFields(logrus.Fields{
		"message": event.MessageID.String(),
		"origin":  event.Origin.String(),
		"weight":  event.Weight,
		"outcome": event.Outcome.String(),
	})
	if err := event.Outcome.EnsureComplete(); err != nil {
		entry.WithError(err).Warn("transfer attempted")
		return
	}
	if unused, ok := util.SafeSub(event.Weight, event.Outcome.Weight); ok {
		entry = entry.WithField("unused", unused)
	}
	entry.Info("transfer attempted")
}

func (nopSink) Deposit(Attempted) {}
