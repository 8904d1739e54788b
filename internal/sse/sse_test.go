package sse

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArmaRealms/ToolStats/internal/domain"
	"github.com/ArmaRealms/ToolStats/internal/event"
	"github.com/ArmaRealms/ToolStats/internal/testing/leaktest"
)

func kill(stat domain.StatKind, value float64) domain.StatUpdate {
	return domain.StatUpdate{Holder: "Steve[0]", Material: "IRON_SWORD", Stat: stat, Value: value}
}

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.ClientCount() == n }, time.Second, time.Millisecond)
}

func receive(t *testing.T, client *Client) Event {
	t.Helper()
	select {
	case evt, ok := <-client.Events:
		require.True(t, ok, "client channel closed")
		return evt
	case <-time.After(time.Second):
		t.Fatal("Timeout waiting for stream event")
		return Event{}
	}
}

func TestHub_StartStopLeavesNoGoroutines(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		hub := NewHub()
		hub.Start()
		hub.Register(nil)
		waitForClients(t, hub, 1)
		hub.Stop()
		hub.Stop()
	})
}

func TestHub_FiltersByStatistic(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	all := hub.Register(nil)
	armorOnly := hub.Register([]domain.StatKind{domain.StatArmorDamage})
	waitForClients(t, hub, 2)

	hub.Broadcast(kill(domain.StatMobKills, 1))
	hub.Broadcast(kill(domain.StatArmorDamage, 2.5))

	first := receive(t, all)
	assert.Equal(t, EventTypeStatUpdated, first.Type)
	assert.Equal(t, domain.StatMobKills, first.Payload.(domain.StatUpdate).Stat)
	assert.Equal(t, domain.StatArmorDamage, receive(t, all).Payload.(domain.StatUpdate).Stat)

	got := receive(t, armorOnly)
	assert.Equal(t, 2.5, got.Payload.(domain.StatUpdate).Value)
	assert.Empty(t, armorOnly.Events)
}

func TestHub_SlowClientMissesUpdates(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	client := hub.Register(nil)
	waitForClients(t, hub, 1)

	for i := 0; i < ClientEventBuffer+10; i++ {
		hub.Broadcast(kill(domain.StatMobKills, float64(i)))
	}

	assert.Eventually(t, func() bool { return len(client.Events) == ClientEventBuffer }, time.Second, time.Millisecond)
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	client := hub.Register(nil)
	waitForClients(t, hub, 1)
	hub.Unregister(client.ID)

	waitForClients(t, hub, 0)
	_, ok := <-client.Events
	assert.False(t, ok)
}

func TestHub_RegisterAfterStop(t *testing.T) {
	hub := NewHub()
	hub.Start()
	hub.Stop()

	client := hub.Register(nil)
	_, ok := <-client.Events
	assert.False(t, ok)
	hub.Unregister(client.ID)
}

func TestSubscriber_ForwardsBusUpdates(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	bus := event.NewMemoryBus()
	NewSubscriber(hub).Register(bus)
	client := hub.Register(nil)
	waitForClients(t, hub, 1)

	require.NoError(t, bus.Publish(context.Background(), event.NewStatUpdatedEvent(kill(domain.StatPlayerKills, 4))))
	assert.Equal(t, 4.0, receive(t, client).Payload.(domain.StatUpdate).Value)

	err := bus.Publish(context.Background(), event.Event{Type: event.StatUpdated, Payload: 42})
	assert.Error(t, err)
}

func TestFormatMessage(t *testing.T) {
	msg, err := FormatMessage(Event{ID: "abc", Type: EventTypeStatUpdated, Timestamp: 1, Payload: kill(domain.StatMobKills, 1)})
	require.NoError(t, err)

	text := string(msg)
	assert.True(t, strings.HasPrefix(text, "id: abc\nevent: stat.updated\ndata: {"))
	assert.Contains(t, text, `"stat":"mob-kills"`)
	assert.True(t, strings.HasSuffix(text, "}\n\n"))
}

func TestHandler_StreamsUpdates(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?stats=mob-kills", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))
	lines := bufio.NewScanner(resp.Body)
	nextEvent := func() string {
		for lines.Scan() {
			if name, ok := strings.CutPrefix(lines.Text(), "event: "); ok {
				return name
			}
		}
		return ""
	}

	require.Equal(t, EventTypeConnected, nextEvent())
	waitForClients(t, hub, 1)

	hub.Broadcast(kill(domain.StatArmorDamage, 1))
	hub.Broadcast(kill(domain.StatMobKills, 7))
	require.Equal(t, EventTypeStatUpdated, nextEvent())
	require.True(t, lines.Scan())
	assert.Contains(t, lines.Text(), `"value":7`)

	cancel()
	waitForClients(t, hub, 0)
}

func TestHandler_RejectsUnknownStatistic(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	rec := httptest.NewRecorder()
	Handler(hub)(rec, httptest.NewRequest(http.MethodGet, "/?stats=mob-kills,deaths", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"deaths"`)
	assert.Zero(t, hub.ClientCount())
}
