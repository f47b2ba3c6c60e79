package hub

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSink struct {
	received [][]byte
	fail     bool
}

func (f *fakeSink) Send(payload []byte) error {
	if f.fail {
		return errors.New("dead sink")
	}
	f.received = append(f.received, payload)
	return nil
}

func TestHub_BroadcastDeliversToAllSubscribers(t *testing.T) {
	h := New()
	a := &fakeSink{}
	b := &fakeSink{}
	h.Subscribe("route-1", a)
	h.Subscribe("route-1", b)

	h.Broadcast("route-1", []byte("hello"))

	require.Len(t, a.received, 1)
	require.Len(t, b.received, 1)
	assert.Equal(t, "hello", string(a.received[0]))
}

func TestHub_BroadcastPrunesDeadSinksWithoutBlockingOthers(t *testing.T) {
	h := New()
	dead := &fakeSink{fail: true}
	alive := &fakeSink{}
	h.Subscribe("route-1", dead)
	h.Subscribe("route-1", alive)

	h.Broadcast("route-1", []byte("first"))
	require.Len(t, alive.received, 1)

	h.Broadcast("route-1", []byte("second"))
	require.Len(t, alive.received, 2, "surviving sink must keep receiving")
}

func TestHub_UnsubscribeRemovesSink(t *testing.T) {
	h := New()
	a := &fakeSink{}
	h.Subscribe("route-1", a)
	h.Unsubscribe("route-1", a)

	h.Broadcast("route-1", []byte("noop"))
	assert.Empty(t, a.received)
}

func TestHub_RoutesAreIndependent(t *testing.T) {
	h := New()
	a := &fakeSink{}
	h.Subscribe("route-1", a)

	h.Broadcast("route-2", []byte("not for route-1"))
	assert.Empty(t, a.received)
}
