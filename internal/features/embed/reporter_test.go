package embed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	messages []ResizeMessage
}

func (s *recordingSink) Post(message ResizeMessage) {
	s.messages = append(s.messages, message)
}

func Test_Reporter_BeforeStart_DropsHeightChanges(t *testing.T) {
	sink := &recordingSink{}
	reporter := NewReporter(baseParams(), sink)

	reporter.OnHeightChange(100)

	assert.Equal(t, StateIdle, reporter.State())
	assert.Empty(t, sink.messages)
}

func Test_Reporter_Start_MovesToObserving(t *testing.T) {
	reporter := NewReporter(baseParams(), &recordingSink{})

	reporter.Start()

	assert.Equal(t, StateObserving, reporter.State())
}

func Test_Reporter_OnHeightChange_PostsMessageAndReturnsToObserving(t *testing.T) {
	sink := &recordingSink{}
	params := baseParams()
	reporter := NewReporter(params, sink)
	reporter.Start()

	reporter.OnHeightChange(333)

	assert.Equal(t, StateObserving, reporter.State())
	require.Len(t, sink.messages, 1)
	assert.Equal(t, NewResizeMessage(333, params.ID()), sink.messages[0])
}

func Test_Reporter_OnHeightChange_WhenHeightRepeats_StillPosts(t *testing.T) {
	sink := &recordingSink{}
	reporter := NewReporter(baseParams(), sink)
	reporter.Start()

	reporter.OnHeightChange(200)
	reporter.OnHeightChange(200)
	reporter.OnHeightChange(250)

	require.Len(t, sink.messages, 3)
	assert.Equal(t, 200, sink.messages[0].Height)
	assert.Equal(t, 200, sink.messages[1].Height)
	assert.Equal(t, 250, sink.messages[2].Height)
}

func Test_Reporter_EmbedID_MatchesParamsID(t *testing.T) {
	params := baseParams()
	reporter := NewReporter(params, &recordingSink{})

	assert.Equal(t, params.ID(), reporter.EmbedID())
}
