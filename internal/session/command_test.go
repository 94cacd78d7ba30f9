package session

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_TextRoundTrip(t *testing.T) {
	for k, name := range kindNames {
		parsed, ok := ParseKind(name)
		require.True(t, ok, name)
		assert.Equal(t, k, parsed)
		assert.Equal(t, name, k.String())
	}
	assert.Equal(t, "unknown", KindUnknown.String())
}

func TestCommand_DecodesJSON(t *testing.T) {
	var cmd Command
	require.NoError(t, json.Unmarshal([]byte(`{"kind":"add","product_id":"napo","variant":"Grande"}`), &cmd))
	assert.Equal(t, Add("napo", "Grande"), cmd)

	require.NoError(t, json.Unmarshal([]byte(`{"kind":"set_search","search":"cola"}`), &cmd))
	assert.Equal(t, KindSetSearch, cmd.Kind)
	assert.Equal(t, "cola", cmd.Search)
}

func TestCommand_RejectsUnknownKind(t *testing.T) {
	var cmd Command
	err := json.Unmarshal([]byte(`{"kind":"checkout"}`), &cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown command kind "checkout"`)
}

func TestCommand_EncodesKindByName(t *testing.T) {
	out, err := json.Marshal(Increment("Agua"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"increment","key":"Agua"}`, string(out))
}
