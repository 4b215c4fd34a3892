package embed

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_DecodeMessage_WhenResizePayload_ReturnsResizeMessage(t *testing.T) {
	payload := []byte(`{"type":"resize","height":420,"embedId":"00000000deadbeef"}`)

	message, err := DecodeMessage(payload)

	require.NoError(t, err)
	assert.Equal(t, MessageKindResize, message.Kind())

	resize, ok := message.(ResizeMessage)
	require.True(t, ok)
	assert.Equal(t, 420, resize.Height)
	assert.Equal(t, "00000000deadbeef", resize.EmbedID)
}

func Test_DecodeMessage_WhenKindUnknown_ReturnsErrUnknownMessageKind(t *testing.T) {
	payload := []byte(`{"type":"scroll","offset":10}`)

	_, err := DecodeMessage(payload)

	assert.ErrorIs(t, err, ErrUnknownMessageKind)
}

func Test_DecodeMessage_WhenPayloadMalformed_ReturnsError(t *testing.T) {
	_, err := DecodeMessage([]byte(`{"type":`))

	assert.Error(t, err)
}

func Test_DecodeMessage_WhenEmbedIDMissing_ReturnsError(t *testing.T) {
	payload := []byte(`{"type":"resize","height":420}`)

	_, err := DecodeMessage(payload)

	assert.Error(t, err)
}

func Test_NewResizeMessage_RoundTripsThroughDecode(t *testing.T) {
	original := NewResizeMessage(150, "abc123")

	data, err := json.Marshal(original)
	require.NoError(t, err)

	decoded, err := DecodeMessage(data)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}
