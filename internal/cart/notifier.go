package cart

import (
	"context"

	"github.com/luxemoda/storefront-backend/pkg/logger"
)

// EventKind names the cart mutation that occurred.
type EventKind string

const (
	EventItemAdded       EventKind = "item_added"
	EventItemRemoved     EventKind = "item_removed"
	EventQuantityUpdated EventKind = "quantity_updated"
	EventCartCleared     EventKind = "cart_cleared"
)

// Event describes a successful cart mutation. The message is shopper-facing
// copy suitable for a confirmation toast.
type Event struct {
	Kind      EventKind
	SessionID string
	SKU       string
	Name      string
	Quantity  int
	Message   string
}

// Notifier receives mutation events. Implementations must not block the
// mutation path on slow consumers.
type Notifier interface {
	Notify(ctx context.Context, event Event)
}

// LogNotifier writes mutation events to the structured log.
type LogNotifier struct {
	logg *logger.Logger
}

func NewLogNotifier(logg *logger.Logger) *LogNotifier {
	return &LogNotifier{logg: logg}
}

func (n *LogNotifier) Notify(ctx context.Context, event Event) {
	if n.logg == nil {
		return
	}
	ctx = n.logg.WithFields(ctx, map[string]any{
		"event":    string(event.Kind),
		"session":  event.SessionID,
		"sku":      event.SKU,
		"quantity": event.Quantity,
	})
	n.logg.Info(ctx, event.Message)
}

// NopNotifier discards all events.
type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, Event) {}
