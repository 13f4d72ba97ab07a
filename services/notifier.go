package services

// Notify message types pushed to operator clients.
const (
	NotifyNewOrder = 1
	NotifyReminder = 2
)

type OrderEvent struct {
	Type    int    `json:"type"` // 1 new order, 2 customer reminder
	OrderID uint   `json:"orderId"`
	Content string `json:"content"`
}

// Notifier pushes order events to connected operator clients. Delivery is
// best-effort at-most-once: implementations never block the caller and a
// failed push never surfaces as an error to the triggering request.
type Notifier interface {
	Broadcast(payload any)
}

// NopNotifier discards events. Used when no hub is wired (tests, tools).
type NopNotifier struct{}

func (NopNotifier) Broadcast(any) {}
