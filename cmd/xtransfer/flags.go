package main

import (
	"strings"

	"github.com/urfave/cli"
)

var (
	ConfigPathFlag = cli.StringFlag{
		Name:  "config",
		Usage: "path to the config file (yaml, json or toml)",
	}
	LogLevelFlag = cli.StringFlag{
		Name:  "loglevel",
		Usage: "log level, overrides the config (panic, fatal, error, warn, info, debug, trace)",
	}
	DestFlag = cli.StringFlag{
		Name:  "dest",
		Usage: "destination chain location, eg ../Parachain(2000)",
	}
	BeneficiaryFlag = cli.StringFlag{
		Name:  "beneficiary",
		Usage: "beneficiary location on the destination, eg AccountId32(0x...)",
	}
	AssetFlag = cli.StringFlag{
		Name:  "asset",
		Usage: "location of the transferred asset",
	}
	AmountFlag = cli.StringFlag{
		Name:  "amount",
		Usage: "amount of the asset, decimal",
		Value: "0",
	}
	AccountFlag = cli.StringFlag{
		Name:  "account",
		Usage: "hex encoded 32 byte account of the signer",
	}
	FromFlag = cli.Uint64Flag{
		Name:  "from",
		Usage: "first journal sequence number to list",
	}
	LimitFlag = cli.IntFlag{
		Name:  "limit",
		Usage: "max number of journal records to list, 0 lists all",
	}
)

// GetFlagName returns the long name of the flag.
func GetFlagName(flag cli.Flag) string {
	name := flag.GetName()
	if i := strings.IndexByte(name, ','); i >= 0 {
		return strings.TrimSpace(name[:i])
	}
	return name
}
