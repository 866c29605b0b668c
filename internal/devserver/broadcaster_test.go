package devserver

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcaster(t *testing.T) {
	b := NewBroadcaster()
	b.Start()
	defer b.Stop()

	client := make(chan ReloadEvent, 5)
	b.addClient <- client

	b.Broadcast(ReloadEvent{Type: EventReload})
	select {
	case event := <-client:
		assert.Equal(t, EventReload, event.Type)
		assert.False(t, event.Timestamp.IsZero())
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for broadcasted event")
	}

	// A second client receives subsequent events too.
	client2 := make(chan ReloadEvent, 5)
	b.addClient <- client2
	b.Broadcast(ReloadEvent{Type: EventBuildError, Message: "demo.go:1:1: busted"})
	for ii, c := range []chan ReloadEvent{client, client2} {
		select {
		case event := <-c:
			assert.Equalf(t, EventBuildError, event.Type, "client %d", ii)
			assert.Equalf(t, "demo.go:1:1: busted", event.Message, "client %d", ii)
		case <-time.After(1 * time.Second):
			t.Fatalf("client %d: timeout waiting for broadcasted event", ii)
		}
	}
}

func TestBroadcasterStop(t *testing.T) {
	b := NewBroadcaster()
	b.Start()

	client := make(chan ReloadEvent, 5)
	b.addClient <- client

	b.Stop()
	// Client channels are closed on Stop.
	select {
	case _, ok := <-client:
		assert.False(t, ok)
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for client channel to close")
	}

	// Stop is idempotent, and later calls don't block.
	b.Stop()
	b.Broadcast(ReloadEvent{Type: EventReload})
	assert.Nil(t, b.subscribe())
}

func TestBroadcasterServeHTTP(t *testing.T) {
	b := NewBroadcaster()
	b.Start()
	defer b.Stop()

	ts := httptest.NewServer(b)
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	readEvent := func() (event ReloadEvent) {
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			line = strings.TrimSpace(line)
			if line == "" {
				// Blank separator between events.
				continue
			}
			require.True(t, strings.HasPrefix(line, "data: "), "unexpected SSE line %q", line)
			require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &event))
			return
		}
	}

	assert.Equal(t, EventConnected, readEvent().Type)

	b.Broadcast(ReloadEvent{Type: EventReload})
	assert.Equal(t, EventReload, readEvent().Type)

	b.Broadcast(ReloadEvent{Type: EventBuildError, Message: "it broke"})
	event := readEvent()
	assert.Equal(t, EventBuildError, event.Type)
	assert.Equal(t, "it broke", event.Message)
}
