package web

import (
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"github.com/PancyStudios/PancyGuardGo/pkg/models"
)

func newFeedServer(t *testing.T) (*LiveFeed, *websocket.Conn, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	feed := NewLiveFeed()
	router := gin.New()
	router.GET("/live", feed.handleConnection)

	ts := httptest.NewServer(router)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/live"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		ts.Close()
		t.Fatalf("dialing the feed: %v", err)
	}

	return feed, conn, func() {
		conn.Close()
		feed.Close()
		ts.Close()
	}
}

func testIncident(id string) *models.Incident {
	return &models.Incident{
		ID:        id,
		GuildID:   "guild-1",
		ChannelID: "chan-1",
		UserID:    "user-1",
		Signature: "flood",
		Timestamp: time.Now().Unix(),
	}
}

func TestLiveFeedDeliversIncidents(t *testing.T) {
	feed, conn, cleanup := newFeedServer(t)
	defer cleanup()

	if got := feed.ClientCount(); got != 1 {
		t.Fatalf("ClientCount = %d, want 1", got)
	}

	feed.PublishIncident(testIncident("inc-1"))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("reading broadcast frame: %v", err)
	}

	var inc models.Incident
	if err := json.Unmarshal(payload, &inc); err != nil {
		t.Fatalf("decoding broadcast frame: %v", err)
	}
	if inc.ID != "inc-1" || inc.GuildID != "guild-1" {
		t.Errorf("received incident %q for guild %q, want inc-1/guild-1", inc.ID, inc.GuildID)
	}
}

func TestLiveFeedConcurrentBroadcasts(t *testing.T) {
	feed, conn, cleanup := newFeedServer(t)
	defer cleanup()

	// Detections arrive on independent goroutines; broadcasting from many
	// at once must not corrupt the connection or panic.
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			feed.PublishIncident(testIncident("inc-race"))
		}()
	}
	wg.Wait()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	received := 0
	for received < 1 {
		if _, _, err := conn.ReadMessage(); err != nil {
			t.Fatalf("reading after concurrent broadcasts: %v (received %d)", err, received)
		}
		received++
	}
}

func TestLiveFeedNeverBlocksPublisher(t *testing.T) {
	feed, _, cleanup := newFeedServer(t)
	defer cleanup()

	// The client never reads, so its queue fills up. Publishing must keep
	// returning promptly regardless.
	done := make(chan struct{})
	go func() {
		for i := 0; i < clientQueueSize*4; i++ {
			feed.PublishIncident(testIncident("inc-slow"))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("PublishIncident blocked on a slow client")
	}
}

func TestLiveFeedDropsDisconnectedClients(t *testing.T) {
	feed, conn, cleanup := newFeedServer(t)
	defer cleanup()

	conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for feed.ClientCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("ClientCount = %d after disconnect, want 0", feed.ClientCount())
		}
		time.Sleep(10 * time.Millisecond)
	}
}
