package notifier

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"novaturn/internal/model"
	"novaturn/pkg/logger"
)

// turnGeneratedEvent :
// Wire shape of the `turn_generated` event.
type turnGeneratedEvent struct {
	Type     string               `json:"type"`
	GameID   string               `json:"game_id"`
	TurnYear int                  `json:"turn_year"`
	Messages map[int][]model.Message `json:"messages"`
}

// WebsocketNotifier :
// Broadcasts `turn_generated` events to every client subscribed to a
// game over a persistent websocket connection, so a client watching
// a game learns about a new turn without polling.
//
// The `upgrader` promotes an incoming HTTP request to a websocket
// connection.
//
// The `subscribers` maps a game id to the set of open connections
// currently watching it.
//
// The `lock` protects `subscribers` across concurrent Subscribe
// calls and turn notifications.
//
// The `log` reports connection churn and write failures.
type WebsocketNotifier struct {
	upgrader    websocket.Upgrader
	subscribers map[string]map[*websocket.Conn]struct{}
	lock        sync.Mutex
	log         logger.Logger
}

// NewWebsocketNotifier :
func NewWebsocketNotifier(log logger.Logger) *WebsocketNotifier {
	return &WebsocketNotifier{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		subscribers: make(map[string]map[*websocket.Conn]struct{}),
		log:         log,
	}
}

// Subscribe :
// Upgrades the request to a websocket connection and registers it as
// a watcher of `gameID`'s turn events. The connection is dropped from
// the registry once the client disconnects.
func (n *WebsocketNotifier) Subscribe(gameID string, w http.ResponseWriter, r *http.Request) error {
	conn, err := n.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	n.lock.Lock()
	set, ok := n.subscribers[gameID]
	if !ok {
		set = make(map[*websocket.Conn]struct{})
		n.subscribers[gameID] = set
	}
	set[conn] = struct{}{}
	n.lock.Unlock()

	go n.drainUntilClosed(gameID, conn)
	return nil
}

// drainUntilClosed :
// Reads (and discards) frames from a subscriber connection until it
// closes, which is the only way the gorilla/websocket handshake
// detects a client disconnect, then deregisters it.
func (n *WebsocketNotifier) drainUntilClosed(gameID string, conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	n.lock.Lock()
	delete(n.subscribers[gameID], conn)
	n.lock.Unlock()
	conn.Close()
}

// TurnGenerated :
func (n *WebsocketNotifier) TurnGenerated(gameID string, turnYear int, messages map[int][]model.Message) error {
	event := turnGeneratedEvent{
		Type:     "turn_generated",
		GameID:   gameID,
		TurnYear: turnYear,
		Messages: messages,
	}
	raw, err := json.Marshal(event)
	if err != nil {
		return err
	}

	n.lock.Lock()
	conns := make([]*websocket.Conn, 0, len(n.subscribers[gameID]))
	for c := range n.subscribers[gameID] {
		conns = append(conns, c)
	}
	n.lock.Unlock()

	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, raw); err != nil {
			n.log.Trace(logger.Warning, "notifier", "dropping subscriber after write failure: "+err.Error())
		}
	}

	return nil
}
