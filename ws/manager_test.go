package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	m := NewManager()

	assert.False(t, m.IsSubscribed("user-1"))
	assert.Empty(t, m.Users())

	m.Register("user-1", nil)
	assert.True(t, m.IsSubscribed("user-1"))
	assert.Equal(t, []string{"user-1"}, m.Users())

	m.Unregister("user-1", nil)
	assert.False(t, m.IsSubscribed("user-1"))
	assert.Empty(t, m.Users())
}

func TestUnregisterUnknownConnIsNoop(t *testing.T) {
	m := NewManager()
	m.Unregister("nobody", nil)
	assert.False(t, m.IsSubscribed("nobody"))
}

func TestPublishToUnsubscribedUserIsNoop(t *testing.T) {
	m := NewManager()
	m.Publish("nobody", Event{Type: EventWishlistUpdated, PropertyID: "p1"})
}

func TestPublishDeliversToOpenConnection(t *testing.T) {
	m := NewManager()
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

	registered := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		m.Register("user-1", conn)
		close(registered)
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer client.Close()

	<-registered
	m.Publish("user-1", Event{Type: EventCompareUpdated, PropertyID: "p9"})

	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := client.ReadMessage()
	require.NoError(t, err)

	var ev Event
	require.NoError(t, json.Unmarshal(payload, &ev))
	assert.Equal(t, EventCompareUpdated, ev.Type)
	assert.Equal(t, "p9", ev.PropertyID)
	assert.NotEmpty(t, ev.Timestamp)
}
