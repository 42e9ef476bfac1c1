package idtool

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/rathijitpapon/snowflakeid/pkg/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeKnownID(t *testing.T) {
	// 1 << 22: one millisecond past the default epoch, machine 0, sequence 0.
	out, err := execute(t, newDecodeCommand(testLogger()), "4194304")
	require.NoError(t, err)

	var decoded decodedID
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "4194304", decoded.ID)
	assert.Equal(t, snowflake.DefaultEpoch.UnixMilli()+1, decoded.TimestampMs)
	assert.Equal(t, int64(0), decoded.MachineID)
	assert.Equal(t, int64(0), decoded.Sequence)
}

func TestDecodeGeneratedID(t *testing.T) {
	genOut, err := execute(t, newGenerateCommand(testLogger()),
		"--machine-id", "7")
	require.NoError(t, err)
	idStr := strings.TrimSpace(genOut)

	out, err := execute(t, newDecodeCommand(testLogger()), idStr)
	require.NoError(t, err)

	var decoded decodedID
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, idStr, decoded.ID)
	assert.Equal(t, int64(7), decoded.MachineID)
	assert.GreaterOrEqual(t, decoded.Sequence, int64(0))
	assert.LessOrEqual(t, decoded.Sequence, int64(4095))
}

func TestDecodeMultipleIDs(t *testing.T) {
	out, err := execute(t, newDecodeCommand(testLogger()),
		"4194304", "8388608")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		var decoded decodedID
		require.NoError(t, json.Unmarshal([]byte(line), &decoded))
	}
}

func TestDecodeMalformedID(t *testing.T) {
	_, err := execute(t, newDecodeCommand(testLogger()), "not-a-number")
	require.ErrorIs(t, err, snowflake.ErrMalformedID)
}

func TestDecodeRequiresArgs(t *testing.T) {
	_, err := execute(t, newDecodeCommand(testLogger()))
	require.Error(t, err)
}

func TestDecodeCustomEpoch(t *testing.T) {
	out, err := execute(t, newDecodeCommand(testLogger()),
		"--epoch", "2025-01-01T00:00:00Z", "4194304")
	require.NoError(t, err)

	var decoded decodedID
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	epoch := int64(1735689600000) // 2025-01-01T00:00:00Z
	assert.Equal(t, epoch+1, decoded.TimestampMs)
}
