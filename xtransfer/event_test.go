package xtransfer

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/xtransfer-org/xtransfer-go/cbor"
	testxcm "github.com/xtransfer-org/xtransfer-go/testutils/xcm"
	"github.com/xtransfer-org/xtransfer-go/types"
)

func Test_LogSink(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	sink := NewLogSink(log)

	sink.Deposit(Attempted{
		MessageID: []byte{0xca, 0xfe},
		Origin:    testxcm.SiblingChain(7),
		Weight:    500,
		Outcome:   types.Complete(400),
	})
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, logrus.InfoLevel, entry.Level)
	require.Equal(t, "transfer attempted", entry.Message)
	require.Equal(t, "0xcafe", entry.Data["message"])
	require.Equal(t, "Parent/Parachain(7)", entry.Data["origin"])
	require.Equal(t, "Complete(400)", entry.Data["outcome"])
	require.EqualValues(t, 100, entry.Data["unused"])

	sink.Deposit(Attempted{
		MessageID: []byte{1},
		Origin:    testxcm.SiblingChain(7),
		Weight:    500,
		Outcome:   types.Incomplete(300, "TooExpensive"),
	})
	entry = hook.LastEntry()
	require.Equal(t, logrus.WarnLevel, entry.Level)
	require.EqualError(t, entry.Data[logrus.ErrorKey].(error), `message execution incomplete after weight 300: TooExpensive`)
	require.Len(t, hook.AllEntries(), 2)
}

func Test_Attempted_CBOR(t *testing.T) {
	a := Attempted{
		MessageID: []byte{1, 2, 3},
		Origin:    testxcm.NewAccount(t),
		Weight:    500,
		Outcome:   types.Incomplete(300, "TooExpensive"),
	}
	data, err := cbor.Marshal(a)
	require.NoError(t, err)

	var res Attempted
	require.NoError(t, cbor.Unmarshal(data, &res))
	require.Equal(t, a.MessageID, res.MessageID)
	require.True(t, a.Origin.Equal(res.Origin))
	require.Equal(t, a.Weight, res.Weight)
	require.Equal(t, a.Outcome, res.Outcome)
}
