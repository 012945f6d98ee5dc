package host

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gamecore/pkg/actions"
	"gamecore/pkg/commands"
	gametypes "gamecore/pkg/game/types"
	"gamecore/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"
)

func newTestHost(t *testing.T) (*httptest.Server, *EventBroker, *actions.Processor) {
	t.Helper()

	stateManager := state.NewInMemoryStateManager()
	registry := actions.NewRegistry()
	actions.RegisterBuiltins(registry)

	events := NewEventBroker()
	processor := actions.NewProcessor(actions.NewProcessorOptions{
		Registry:     registry,
		StateManager: stateManager,
		OnCommit:     events.Publish,
	})
	dispatcher := commands.NewGameDispatcher(stateManager, processor)

	server := httptest.NewServer(NewRouter(dispatcher, events))
	t.Cleanup(server.Close)
	return server, events, processor
}

func TestHandleInvoke_GetGameState(t *testing.T) {
	server, _, _ := newTestHost(t)

	resp, err := http.Post(server.URL+"/invoke/get_game_state", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ready","player":{"name":"Player","health":100,"score":0}}`, string(body))
}

func TestHandleInvoke_UpdateGameState(t *testing.T) {
	server, _, _ := newTestHost(t)

	resp, err := http.Post(server.URL+"/invoke/update_game_state", "application/json",
		strings.NewReader(`{"action":"add_score","payload":{"amount":3}}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"action":"add_score","result":"success"}`, string(body))
}

func TestHandleInvoke_UnknownCommand(t *testing.T) {
	server, _, _ := newTestHost(t)

	resp, err := http.Post(server.URL+"/invoke/open_devtools", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandleInvoke_MalformedRequest(t *testing.T) {
	server, _, _ := newTestHost(t)

	resp, err := http.Post(server.URL+"/invoke/update_game_state", "application/json",
		strings.NewReader(`not json`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEventBroker_PublishesStateChanges(t *testing.T) {
	server, events, processor := newTestHost(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/events"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	require.Eventually(t, func() bool {
		return events.Subscribers() == 1
	}, time.Second, 10*time.Millisecond)

	outcome := processor.Apply(actions.Action{
		Kind:    actions.ActionKindAddScore,
		Payload: map[string]interface{}{"amount": 2},
	})
	require.True(t, outcome.Accepted)

	_, payload, err := conn.Read(ctx)
	require.NoError(t, err)

	event := &StateChangedEvent{}
	require.NoError(t, json.Unmarshal(payload, event))
	assert.Equal(t, "state_changed", event.Event)
	assert.Equal(t, 2, event.State.Player.Score)
	assert.Equal(t, gametypes.GameStatusReady, event.State.Status)
}
