package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/xtransfer-org/xtransfer-go/types"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func Test_Load(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		require.Equal(t, "PalletInstance(50)", cfg.Prefix)
		require.EqualValues(t, 1_000_000, cfg.UnitWeight)
		require.Equal(t, 100, cfg.MaxInstructions)
		require.Equal(t, logrus.InfoLevel, cfg.Level())
		require.Empty(t, cfg.JournalPath)

		loc, err := cfg.PrefixLocation()
		require.NoError(t, err)
		require.True(t, loc.Equal(types.NewLocation(types.PalletInstance(50))))
	})

	t.Run("yaml file", func(t *testing.T) {
		path := writeConfig(t, "xtransfer.yaml", `
prefix: PalletInstance(50)/GeneralKey(0x01)
unit_weight: 10
max_instructions: 5
log_level: debug
journal_path: /tmp/journal.db
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "PalletInstance(50)/GeneralKey(0x01)", cfg.Prefix)
		require.EqualValues(t, 10, cfg.UnitWeight)
		require.Equal(t, 5, cfg.MaxInstructions)
		require.Equal(t, logrus.DebugLevel, cfg.Level())
		require.Equal(t, "/tmp/journal.db", cfg.JournalPath)
	})

	t.Run("json file", func(t *testing.T) {
		path := writeConfig(t, "xtransfer.json", `{"unit_weight": 7}`)
		cfg, err := Load(path)
		require.NoError(t, err)
		require.EqualValues(t, 7, cfg.UnitWeight)
		require.Equal(t, 100, cfg.MaxInstructions)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := writeConfig(t, "xtransfer.yaml", "unit_weight: 10\n")
		t.Setenv("XTRANSFER_UNIT_WEIGHT", "20")
		t.Setenv("XTRANSFER_PREFIX", "PalletInstance(51)")
		cfg, err := Load(path)
		require.NoError(t, err)
		require.EqualValues(t, 20, cfg.UnitWeight)
		require.Equal(t, "PalletInstance(51)", cfg.Prefix)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorContains(t, err, "reading config file")
	})

	t.Run("invalid", func(t *testing.T) {
		cases := []struct {
			content string
			err     string
		}{
			{"prefix: ../Parachain(7)\n", `invalid config: asset prefix must be interior location, got Parent/Parachain(7)`},
			{"prefix: Foo(1)\n", `invalid config: invalid asset prefix: junction 0: unknown junction "Foo"`},
			{"max_instructions: 0\n", `invalid config: max instructions must be positive, got 0`},
			{"log_level: loud\n", `invalid config: invalid log level`},
		}
		for _, tc := range cases {
			_, err := Load(writeConfig(t, "xtransfer.yaml", tc.content))
			require.ErrorContains(t, err, tc.err, "config %q", tc.content)
		}
	})
}

func Test_Config_IsValid(t *testing.T) {
	var cfg *Config
	require.EqualError(t, cfg.IsValid(), `config is nil`)

	cfg = &Config{Prefix: "", MaxInstructions: 1, LogLevel: "info"}
	require.NoError(t, cfg.IsValid(), "empty prefix is the Here location")
}
