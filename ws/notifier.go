package ws

import (
	"encoding/json"
	"log"

	"smart-table-api/models"
)

// OrderNotifier bridges committed store mutations onto the hub: the
// order's table room gets the event, and the staff room gets everything.
type OrderNotifier struct {
	hub *Hub
}

func NewOrderNotifier(hub *Hub) *OrderNotifier {
	return &OrderNotifier{hub: hub}
}

type orderEventPayload struct {
	OrderID    uint               `json:"order_id"`
	Table      string             `json:"table"`
	Status     models.OrderStatus `json:"status"`
	FromStatus models.OrderStatus `json:"from_status,omitempty"`
	Total      string             `json:"total"`
}

func (n *OrderNotifier) OrderPlaced(order *models.Order) {
	n.publish("order_placed", order, "")
}

func (n *OrderNotifier) OrderStatusChanged(order *models.Order, from models.OrderStatus) {
	n.publish("status_changed", order, from)
}

func (n *OrderNotifier) OrderDeleted(order *models.Order) {
	n.publish("order_deleted", order, "")
}

func (n *OrderNotifier) publish(eventType string, order *models.Order, from models.OrderStatus) {
	payload, err := json.Marshal(orderEventPayload{
		OrderID:    order.ID,
		Table:      order.Table,
		Status:     order.Status,
		FromStatus: from,
		Total:      order.Total.StringFixed(2),
	})
	if err != nil {
		log.Printf("marshal %s event: %v", eventType, err)
		return
	}
	event := Event{Type: eventType, Payload: payload}
	n.hub.BroadcastToRoom(order.Table, event)
	n.hub.BroadcastToRoom(RoomStaff, event)
}
