package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/luxemoda/storefront-backend/internal/catalog"
	apperrors "github.com/luxemoda/storefront-backend/pkg/errors"
	"github.com/luxemoda/storefront-backend/pkg/logger"
	"github.com/luxemoda/storefront-backend/pkg/metrics"
)

// productLookup is the slice of the catalog a quantity update needs to
// re-check stock against current availability.
type productLookup interface {
	ProductBySKU(sku string) (*catalog.Product, error)
}

// Store owns every shopper's cart. Each session has a single cart that is
// kept in memory and written through to the persistence backend on every
// mutation. A failed write never fails the mutation; the cart degrades to
// in-memory only and the failure is logged.
type Store struct {
	mu          sync.Mutex
	carts       map[string]*Cart
	persistence Persistence
	catalog     productLookup
	notifier    Notifier
	logg        *logger.Logger
	metrics     *metrics.StorefrontMetrics
}

func NewStore(persistence Persistence, cat productLookup, notifier Notifier, logg *logger.Logger, m *metrics.StorefrontMetrics) (*Store, error) {
	if persistence == nil {
		return nil, fmt.Errorf("cart store requires a persistence backend")
	}
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Store{
		carts:       make(map[string]*Cart),
		persistence: persistence,
		catalog:     cat,
		notifier:    notifier,
		logg:        logg,
		metrics:     m,
	}, nil
}

// Get returns the session's cart, rehydrating it from persistence on first
// access. A corrupt or unreadable record is discarded and the session starts
// with an empty cart.
func (s *Store) Get(ctx context.Context, sessionID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartLocked(ctx, sessionID).clone()
}

// AddItem adds quantity units of the product to the cart, merging into an
// existing line when the (sku, options) identity already exists. The line's
// unit price is locked from the product's effective price at add time.
func (s *Store) AddItem(ctx context.Context, sessionID string, product catalog.Product, quantity int, opts map[string]string) (*Cart, error) {
	if quantity <= 0 {
		s.countOp("add", "rejected")
		return nil, apperrors.New(apperrors.CodeValidation, "quantity must be positive")
	}
	if !product.Available {
		s.countOp("add", "rejected")
		return nil, apperrors.New(apperrors.CodeUnavailable, fmt.Sprintf("product %s is not available", product.SKU))
	}
	if product.StockQuantity <= 0 {
		s.countOp("add", "rejected")
		return nil, apperrors.New(apperrors.CodeOutOfStock, fmt.Sprintf("product %s is out of stock", product.SKU))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.cartLocked(ctx, sessionID)
	idx := current.findLine(product.SKU, opts)

	existing := 0
	if idx >= 0 {
		existing = current.Lines[idx].Quantity
	}
	if existing+quantity > product.StockQuantity {
		s.countOp("add", "rejected")
		return nil, apperrors.New(apperrors.CodeInsufficientStock,
			fmt.Sprintf("product %s has %d units in stock, cart would hold %d",
				product.SKU, product.StockQuantity, existing+quantity)).
			WithDetails(map[string]any{
				"sku":       product.SKU,
				"in_stock":  product.StockQuantity,
				"requested": existing + quantity,
			})
	}

	if idx >= 0 {
		current.Lines[idx].Quantity += quantity
	} else {
		photo := ""
		if len(product.Photos) > 0 {
			photo = product.Photos[0]
		}
		current.Lines = append(current.Lines, Line{
			SKU:             product.SKU,
			Name:            product.Name,
			Photo:           photo,
			SelectedOptions: copyOptions(opts),
			Quantity:        quantity,
			UnitPrice:       product.EffectivePrice(),
		})
	}

	s.persistLocked(ctx, sessionID, current)
	s.countOp("add", "ok")
	s.notifier.Notify(ctx, Event{
		Kind:      EventItemAdded,
		SessionID: sessionID,
		SKU:       product.SKU,
		Name:      product.Name,
		Quantity:  quantity,
		Message:   fmt.Sprintf("%s added to cart", product.Name),
	})
	return current.clone(), nil
}

// RemoveItem deletes the line with the given identity. Removing a line that
// does not exist is a no-op.
func (s *Store) RemoveItem(ctx context.Context, sessionID, sku string, opts map[string]string) (*Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.cartLocked(ctx, sessionID)
	idx := current.findLine(sku, opts)
	if idx < 0 {
		s.countOp("remove", "noop")
		return current.clone(), nil
	}

	removed := current.Lines[idx]
	current.Lines = append(current.Lines[:idx], current.Lines[idx+1:]...)

	s.persistLocked(ctx, sessionID, current)
	s.countOp("remove", "ok")
	s.notifier.Notify(ctx, Event{
		Kind:      EventItemRemoved,
		SessionID: sessionID,
		SKU:       removed.SKU,
		Name:      removed.Name,
		Quantity:  removed.Quantity,
		Message:   fmt.Sprintf("%s removed from cart", removed.Name),
	})
	return current.clone(), nil
}

// UpdateQuantity sets a line's quantity directly. A quantity of zero or less
// removes the line. When the product is still in the catalog the new quantity
// is checked against current stock; a product that has since left the catalog
// keeps its line editable so the shopper can still remove it.
func (s *Store) UpdateQuantity(ctx context.Context, sessionID, sku string, quantity int, opts map[string]string) (*Cart, error) {
	if quantity <= 0 {
		return s.RemoveItem(ctx, sessionID, sku, opts)
	}

	if s.catalog != nil {
		if product, err := s.catalog.ProductBySKU(sku); err == nil && product != nil {
			if quantity > product.StockQuantity {
				s.countOp("update", "rejected")
				return nil, apperrors.New(apperrors.CodeInsufficientStock,
					fmt.Sprintf("product %s has %d units in stock, requested %d",
						sku, product.StockQuantity, quantity)).
					WithDetails(map[string]any{
						"sku":       sku,
						"in_stock":  product.StockQuantity,
						"requested": quantity,
					})
			}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.cartLocked(ctx, sessionID)
	idx := current.findLine(sku, opts)
	if idx < 0 {
		s.countOp("update", "noop")
		return current.clone(), nil
	}

	current.Lines[idx].Quantity = quantity

	s.persistLocked(ctx, sessionID, current)
	s.countOp("update", "ok")
	s.notifier.Notify(ctx, Event{
		Kind:      EventQuantityUpdated,
		SessionID: sessionID,
		SKU:       sku,
		Name:      current.Lines[idx].Name,
		Quantity:  quantity,
		Message:   fmt.Sprintf("%s quantity updated", current.Lines[idx].Name),
	})
	return current.clone(), nil
}

// Clear empties the session's cart and drops its persisted record.
func (s *Store) Clear(ctx context.Context, sessionID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[sessionID] = &Cart{}
	if err := s.persistence.Delete(ctx, sessionID); err != nil {
		s.logWarn(ctx, sessionID, "failed to delete persisted cart", err)
	}
	s.countOp("clear", "ok")
	s.notifier.Notify(ctx, Event{
		Kind:      EventCartCleared,
		SessionID: sessionID,
		Message:   "cart cleared",
	})
	return &Cart{}
}

// cartLocked returns the live cart for the session, loading it from
// persistence if this is the first access. Callers must hold s.mu.
func (s *Store) cartLocked(ctx context.Context, sessionID string) *Cart {
	if current, ok := s.carts[sessionID]; ok {
		return current
	}

	current := &Cart{}
	payload, err := s.persistence.Load(ctx, sessionID)
	switch {
	case err == nil:
		var restored Cart
		if unmarshalErr := json.Unmarshal(payload, &restored); unmarshalErr != nil {
			s.logWarn(ctx, sessionID, "discarding corrupt persisted cart", unmarshalErr)
			if delErr := s.persistence.Delete(ctx, sessionID); delErr != nil {
				s.logWarn(ctx, sessionID, "failed to discard corrupt cart record", delErr)
			}
		} else {
			current = &restored
		}
	case errors.Is(err, ErrNoRecord):
		// first visit, nothing persisted yet
	default:
		s.logWarn(ctx, sessionID, "failed to load persisted cart", err)
	}

	s.carts[sessionID] = current
	return current
}

// persistLocked writes the cart through to the backend. Failures degrade to
// in-memory only. Callers must hold s.mu.
func (s *Store) persistLocked(ctx context.Context, sessionID string, current *Cart) {
	payload, err := json.Marshal(current)
	if err != nil {
		s.logWarn(ctx, sessionID, "failed to serialize cart", err)
		return
	}
	if err := s.persistence.Save(ctx, sessionID, payload); err != nil {
		s.logWarn(ctx, sessionID, "failed to persist cart, continuing in memory", err)
	}
}

func (s *Store) logWarn(ctx context.Context, sessionID, msg string, err error) {
	if s.logg == nil {
		return
	}
	ctx = s.logg.WithSessionID(ctx, sessionID)
	ctx = s.logg.WithField(ctx, "error", err.Error())
	s.logg.Warn(ctx, msg)
}

func (s *Store) countOp(operation, outcome string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncCartOp(operation, outcome)
}

func copyOptions(opts map[string]string) map[string]string {
	if opts == nil {
		return map[string]string{}
	}
	out := make(map[string]string, len(opts))
	for k, v := range opts {
		out[k] = v
	}
	return out
}
