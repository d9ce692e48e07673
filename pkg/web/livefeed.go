package web

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// clientQueueSize is how many incidents a slow client can lag behind before
// frames start being skipped for it
const clientQueueSize = 32

// writeTimeout bounds a single websocket write
const writeTimeout = 5 * time.Second

// feedClient is one connected websocket consumer. All writes to the
// connection happen on its writer goroutine; the websocket library does not
// allow concurrent writers on a single connection.
type feedClient struct {
	conn *websocket.Conn
	send chan []byte
}

// LiveFeed pushes every incident to the connected websocket clients. It
// satisfies antispam.IncidentSink.
type LiveFeed struct {
	clients map[*feedClient]bool
	mu      sync.Mutex
}

// NewLiveFeed creates an empty LiveFeed
func NewLiveFeed() *LiveFeed {
	return &LiveFeed{
		clients: make(map[*feedClient]bool),
	}
}

// SetupLiveFeedRoute registers the websocket endpoint on the server
func SetupLiveFeedRoute(s *Server, feed *LiveFeed) {
	s.GET("/api/antispam/live", feed.handleConnection)
}

// handleConnection upgrades the request and keeps the socket until the
// client disconnects
func (lf *LiveFeed) handleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn(fmt.Sprintf("Error aceptando cliente websocket: %v", err), "LiveFeed")
		return
	}

	cl := &feedClient{
		conn: conn,
		send: make(chan []byte, clientQueueSize),
	}

	lf.mu.Lock()
	lf.clients[cl] = true
	total := len(lf.clients)
	lf.mu.Unlock()

	logger.Debug(fmt.Sprintf("Cliente websocket conectado (%d en total)", total), "LiveFeed")

	// Writer: the only goroutine allowed to touch conn for writes
	go func() {
		for payload := range cl.send {
			cl.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := cl.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				lf.drop(cl)
				return
			}
		}
	}()

	// Drain reads so we notice when the client goes away
	go func() {
		defer lf.drop(cl)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// drop removes a client and closes its connection and queue. Safe to call
// more than once per client; only the first caller tears it down.
func (lf *LiveFeed) drop(cl *feedClient) {
	lf.mu.Lock()
	if _, ok := lf.clients[cl]; ok {
		delete(lf.clients, cl)
		close(cl.send)
		cl.conn.Close()
	}
	lf.mu.Unlock()
}

// PublishIncident broadcasts the incident to every connected client. It
// never blocks the caller: frames are queued per client and a client whose
// queue is full simply misses this one.
func (lf *LiveFeed) PublishIncident(inc *models.Incident) {
	payload, err := json.Marshal(inc)
	if err != nil {
		return
	}

	lf.mu.Lock()
	defer lf.mu.Unlock()
	for cl := range lf.clients {
		select {
		case cl.send <- payload:
		default:
		}
	}
}

// ClientCount returns how many websocket clients are connected
func (lf *LiveFeed) ClientCount() int {
	lf.mu.Lock()
	defer lf.mu.Unlock()
	return len(lf.clients)
}

// Close disconnects every client
func (lf *LiveFeed) Close() {
	lf.mu.Lock()
	for cl := range lf.clients {
		delete(lf.clients, cl)
		close(cl.send)
		cl.conn.Close()
	}
	lf.mu.Unlock()
}
