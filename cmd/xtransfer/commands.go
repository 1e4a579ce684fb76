package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/xtransfer-org/xtransfer-go/cbor"
	"github.com/xtransfer-org/xtransfer-go/config"
	"github.com/xtransfer-org/xtransfer-go/converter"
	"github.com/xtransfer-org/xtransfer-go/journal"
	"github.com/xtransfer-org/xtransfer-go/numeric"
	"github.com/xtransfer-org/xtransfer-go/types"
	"github.com/xtransfer-org/xtransfer-go/xtransfer"
)

var (
	assetIDCommand = cli.Command{
		Name:      "asset-id",
		Usage:     "converts asset location into local asset id",
		ArgsUsage: "<location>",
		Action:    assetID,
	}
	locationCommand = cli.Command{
		Name:      "location",
		Usage:     "converts local asset id into asset location",
		ArgsUsage: "<asset id>",
		Action:    assetLocation,
	}
	messageCommand = cli.Command{
		Name:   "message",
		Usage:  "builds and weighs the transfer message",
		Flags:  []cli.Flag{DestFlag, BeneficiaryFlag, AssetFlag, AmountFlag},
		Action: message,
	}
	transferCommand = cli.Command{
		Name:   "transfer",
		Usage:  "dry runs the transfer, the attempt is recorded in the journal",
		Flags:  []cli.Flag{AccountFlag, DestFlag, BeneficiaryFlag, AssetFlag, AmountFlag},
		Action: transfer,
	}
	journalCommand = cli.Command{
		Name:   "journal",
		Usage:  "lists the recorded transfer attempts",
		Flags:  []cli.Flag{FromFlag, LimitFlag},
		Action: listJournal,
	}
)

type env struct {
	cfg *config.Config
	log *logrus.Logger
	ids *converter.PrefixedGeneralIndex[uint32]
}

func loadEnv(ctx *cli.Context) (*env, error) {
	cfg, err := config.Load(ctx.GlobalString(GetFlagName(ConfigPathFlag)))
	if err != nil {
		return nil, err
	}
	log, err := newLogger(ctx, cfg.Level())
	if err != nil {
		return nil, err
	}
	prefix, err := cfg.PrefixLocation()
	if err != nil {
		return nil, err
	}
	ids, err := converter.NewPrefixedGeneralIndex[uint32](prefix, numeric.NewAssetIDRelay[uint32]())
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, log: log, ids: ids}, nil
}

func assetID(ctx *cli.Context) error {
	e, err := loadEnv(ctx)
	if err != nil {
		return err
	}
	loc, err := types.ParseLocation(ctx.Args().First())
	if err != nil {
		return err
	}
	id, err := e.ids.Convert(loc)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, id)
	return err
}

func assetLocation(ctx *cli.Context) error {
	e, err := loadEnv(ctx)
	if err != nil {
		return err
	}
	raw, err := types.ParseU128(ctx.Args().First())
	if err != nil {
		return err
	}
	id, err := numeric.NewAssetIDRelay[uint32]().Narrow(raw)
	if err != nil {
		return err
	}
	loc, err := e.ids.Reverse(id)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, loc)
	return err
}

func transferRequest(ctx *cli.Context) (xtransfer.TransferRequest, error) {
	dest, err := types.ParseLocation(ctx.String(GetFlagName(DestFlag)))
	if err != nil {
		return xtransfer.TransferRequest{}, fmt.Errorf("invalid destination: %w", err)
	}
	beneficiary, err := types.ParseLocation(ctx.String(GetFlagName(BeneficiaryFlag)))
	if err != nil {
		return xtransfer.TransferRequest{}, fmt.Errorf("invalid beneficiary: %w", err)
	}
	asset, err := types.ParseLocation(ctx.String(GetFlagName(AssetFlag)))
	if err != nil {
		return xtransfer.TransferRequest{}, fmt.Errorf("invalid asset: %w", err)
	}
	amount, err := types.ParseU128(ctx.String(GetFlagName(AmountFlag)))
	if err != nil {
		return xtransfer.TransferRequest{}, fmt.Errorf("invalid amount: %w", err)
	}
	return xtransfer.TransferRequest{
		Dest:        dest,
		Beneficiary: beneficiary,
		Asset:       types.ConcreteFungible(asset, amount),
	}, nil
}

func (e *env) weigher() xtransfer.FixedWeigher {
	return xtransfer.FixedWeigher{UnitWeight: e.cfg.UnitWeight, MaxInstructions: e.cfg.MaxInstructions}
}

func message(ctx *cli.Context) error {
	e, err := loadEnv(ctx)
	if err != nil {
		return err
	}
	req, err := transferRequest(ctx)
	if err != nil {
		return err
	}
	b, err := xtransfer.NewBuilder(xtransfer.SignedToAccountID32{}, e.weigher(), dryRun{}, xtransfer.WithLogger(e.log))
	if err != nil {
		return err
	}
	msg := b.BuildMessage(req)
	weight, err := e.weigher().Weight(&msg)
	if err != nil {
		return fmt.Errorf("%w: %w", xtransfer.ErrUnweighableMessage, err)
	}
	id, err := msg.ID()
	if err != nil {
		return err
	}
	data, err := cbor.Marshal(msg)
	if err != nil {
		return err
	}
	txt, err := cbor.RawCBOR(data).MarshalText()
	if err != nil {
		return err
	}
	w := ctx.App.Writer
	fmt.Fprintf(w, "id: %s\n", hexutil.Encode(id))
	fmt.Fprintf(w, "instructions: %d\n", msg.Instructions())
	fmt.Fprintf(w, "weight: %d\n", weight)
	_, err = fmt.Fprintf(w, "cbor: %s\n", txt)
	return err
}

func transfer(ctx *cli.Context) error {
	e, err := loadEnv(ctx)
	if err != nil {
		return err
	}
	account, err := hexutil.Decode(ctx.String(GetFlagName(AccountFlag)))
	if err != nil {
		return fmt.Errorf("invalid account: %w", err)
	}
	req, err := transferRequest(ctx)
	if err != nil {
		return err
	}
	var sink xtransfer.EventSink = xtransfer.NewLogSink(e.log)
	if e.cfg.JournalPath != "" {
		store, err := journal.Open(e.cfg.JournalPath, e.log)
		if err != nil {
			return err
		}
		defer e.closeJournal(store)
		sink = multiSink{sink, store}
	}
	b, err := xtransfer.NewBuilder(xtransfer.SignedToAccountID32{}, e.weigher(), dryRun{}, xtransfer.WithLogger(e.log), xtransfer.WithEventSink(sink))
	if err != nil {
		return err
	}
	origin := xtransfer.Origin{Kind: xtransfer.OriginSigned, Account: account}
	res, err := b.Transfer(context.Background(), origin, req)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(ctx.App.Writer, "%s %s weight=%d outcome=%s\n", res.MessageID, res.Origin, res.Weight, res.Outcome)
	return err
}

func listJournal(ctx *cli.Context) error {
	e, err := loadEnv(ctx)
	if err != nil {
		return err
	}
	if e.cfg.JournalPath == "" {
		return errors.New("journal path is not configured")
	}
	store, err := journal.Open(e.cfg.JournalPath, e.log)
	if err != nil {
		return err
	}
	defer e.closeJournal(store)

	records, err := store.List(ctx.Uint64(GetFlagName(FromFlag)), ctx.Int(GetFlagName(LimitFlag)))
	if err != nil {
		return err
	}
	for _, r := range records {
		if _, err := fmt.Fprintf(ctx.App.Writer, "%d %s %s weight=%d outcome=%s\n", r.Seq, r.MessageID, r.Origin, r.Weight, r.Outcome); err != nil {
			return err
		}
	}
	return nil
}

func (e *env) closeJournal(store *journal.Store) {
	if err := store.Close(); err != nil {
		e.log.WithError(err).Warn("failed to close journal")
	}
}

// dryRun executes nothing and reports the message as completed using all of the weight.
type dryRun struct{}

func (dryRun) ExecuteInCredit(_ context.Context, _ types.Location, _ types.Xcm, maxWeight, _ types.Weight) types.Outcome {
	return types.Complete(maxWeight)
}

type multiSink []xtransfer.EventSink

func (m multiSink) Deposit(event xtransfer.Attempted) {
	for _, s := range m {
		s.Deposit(event)
	}
}
