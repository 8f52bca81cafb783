package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"smart-table-api/models"
)

// mockClient creates a client for testing without a real WebSocket connection
func mockClient(hub *Hub, room string) *Client {
	return &Client{
		hub:  hub,
		room: room,
		send: make(chan []byte, 256),
	}
}

func TestHubRegistration(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := mockClient(hub, "5")
	hub.register <- client

	// Give hub time to process
	time.Sleep(10 * time.Millisecond)

	hub.mu.RLock()
	defer hub.mu.RUnlock()

	if hub.rooms["5"] == nil {
		t.Fatal("table room not created")
	}
	if !hub.rooms["5"][client] {
		t.Fatal("client not registered in table room")
	}
}

func TestHubUnregistration(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := mockClient(hub, "5")
	hub.register <- client
	time.Sleep(10 * time.Millisecond)

	hub.unregister <- client
	time.Sleep(10 * time.Millisecond)

	hub.mu.RLock()
	defer hub.mu.RUnlock()

	// Room should be cleaned up when empty
	if hub.rooms["5"] != nil {
		t.Fatal("table room not cleaned up after last client unregistered")
	}
}

func TestBroadcastToSingleRoom(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client1 := mockClient(hub, "5")
	client2 := mockClient(hub, "7")

	hub.register <- client1
	hub.register <- client2
	time.Sleep(10 * time.Millisecond)

	testPayload := json.RawMessage(`{"order_id":3}`)
	event := Event{
		Type:    "order_placed",
		Payload: testPayload,
	}
	hub.BroadcastToRoom("5", event)

	// Check client1 receives the message
	select {
	case msg := <-client1.send:
		var received Event
		if err := json.Unmarshal(msg, &received); err != nil {
			t.Fatalf("failed to unmarshal message: %v", err)
		}
		if received.Type != "order_placed" {
			t.Errorf("expected type 'order_placed', got '%s'", received.Type)
		}
		if string(received.Payload) != string(testPayload) {
			t.Errorf("expected payload '%s', got '%s'", testPayload, received.Payload)
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatal("client1 did not receive message")
	}

	// Check client2 does NOT receive the message
	select {
	case <-client2.send:
		t.Fatal("client2 should not have received another table's message")
	case <-time.After(50 * time.Millisecond):
		// Expected - no message received
	}
}

func TestOrderNotifierRoutesToTableAndStaff(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	diner := mockClient(hub, "5")
	staff := mockClient(hub, RoomStaff)
	other := mockClient(hub, "7")

	hub.register <- diner
	hub.register <- staff
	hub.register <- other
	time.Sleep(10 * time.Millisecond)

	notifier := NewOrderNotifier(hub)
	notifier.OrderStatusChanged(&models.Order{
		ID:     3,
		Table:  "5",
		Status: models.StatusReady,
		Total:  decimal.NewFromInt(40),
	}, models.StatusPreparing)

	for name, client := range map[string]*Client{"diner": diner, "staff": staff} {
		select {
		case msg := <-client.send:
			var received Event
			if err := json.Unmarshal(msg, &received); err != nil {
				t.Fatalf("%s: unmarshal: %v", name, err)
			}
			if received.Type != "status_changed" {
				t.Errorf("%s: expected 'status_changed', got %q", name, received.Type)
			}
			var payload orderEventPayload
			if err := json.Unmarshal(received.Payload, &payload); err != nil {
				t.Fatalf("%s: unmarshal payload: %v", name, err)
			}
			if payload.Table != "5" || payload.Status != models.StatusReady || payload.FromStatus != models.StatusPreparing {
				t.Errorf("%s: unexpected payload %+v", name, payload)
			}
		case <-time.After(100 * time.Millisecond):
			t.Fatalf("%s did not receive the event", name)
		}
	}

	select {
	case <-other.send:
		t.Fatal("table 7 should not see table 5's events")
	case <-time.After(50 * time.Millisecond):
	}
}
