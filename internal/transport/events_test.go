package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalEventAcceptsValid(t *testing.T) {
	line := []byte(`{"type":"position","id":"p1","editedSec":1.5,"originalSec":2.0,"revision":3}`)
	ev, err := UnmarshalEvent(line)
	require.NoError(t, err)
	assert.Equal(t, EvtPosition, ev.Type)
	require.NotNil(t, ev.Revision)
	assert.Equal(t, 3, *ev.Revision)
}

func TestUnmarshalEventRejectsUnknownType(t *testing.T) {
	_, err := UnmarshalEvent([]byte(`{"type":"bogus","id":"p1"}`))
	assert.Error(t, err)
}

func TestUnmarshalEventRejectsMissingID(t *testing.T) {
	_, err := UnmarshalEvent([]byte(`{"type":"state","playing":true}`))
	assert.Error(t, err)
}

func TestUnmarshalEventRejectsInvalidJSON(t *testing.T) {
	_, err := UnmarshalEvent([]byte(`not json`))
	assert.Error(t, err)
}

func TestUnmarshalEventAllowsEndedAndErrorWithoutID(t *testing.T) {
	_, err := UnmarshalEvent([]byte(`{"type":"ended"}`))
	assert.NoError(t, err)
	_, err = UnmarshalEvent([]byte(`{"type":"error","code":"E1","message":"boom"}`))
	assert.NoError(t, err)
}
