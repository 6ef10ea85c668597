package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/luxemoda/storefront-backend/api/middleware"
	"github.com/luxemoda/storefront-backend/api/responses"
	"github.com/luxemoda/storefront-backend/api/validators"
	"github.com/luxemoda/storefront-backend/internal/cart"
	"github.com/luxemoda/storefront-backend/internal/catalog"
	pkgerrors "github.com/luxemoda/storefront-backend/pkg/errors"
	"github.com/luxemoda/storefront-backend/pkg/logger"
)

type cartView struct {
	Lines     []cart.Line     `json:"lines"`
	ItemCount int             `json:"item_count"`
	Total     decimal.Decimal `json:"total"`
}

func viewOf(c *cart.Cart) cartView {
	lines := c.Lines
	if lines == nil {
		lines = []cart.Line{}
	}
	return cartView{
		Lines:     lines,
		ItemCount: c.ItemCount(),
		Total:     c.Total(),
	}
}

func sessionID(r *http.Request) (string, error) {
	id := middleware.SessionIDFromContext(r.Context())
	if id == "" {
		return "", pkgerrors.New(pkgerrors.CodeInternal, "session context missing")
	}
	return id, nil
}

// CartFetch returns the session's cart with its running totals.
func CartFetch(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, err := sessionID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, viewOf(store.Get(r.Context(), sid)))
	}
}

type addItemRequest struct {
	SKU             string            `json:"sku" validate:"required"`
	Quantity        int               `json:"quantity" validate:"required,min=1"`
	SelectedOptions map[string]string `json:"selected_options,omitempty"`
}

// CartAddItem resolves the product and adds it to the session's cart at its
// current effective price.
func CartAddItem(store *cart.Store, catalogSvc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, err := sessionID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := catalogSvc.ProductBySKU(payload.SKU)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := store.AddItem(r.Context(), sid, *product, payload.Quantity, payload.SelectedOptions)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, viewOf(updated))
	}
}

type updateItemRequest struct {
	SKU             string            `json:"sku" validate:"required"`
	Quantity        *int              `json:"quantity" validate:"required"`
	SelectedOptions map[string]string `json:"selected_options,omitempty"`
}

// CartUpdateItem sets a line's quantity. Zero or negative removes the line.
func CartUpdateItem(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, err := sessionID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := store.UpdateQuantity(r.Context(), sid, payload.SKU, *payload.Quantity, payload.SelectedOptions)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, viewOf(updated))
	}
}

type removeItemRequest struct {
	SKU             string            `json:"sku" validate:"required"`
	SelectedOptions map[string]string `json:"selected_options,omitempty"`
}

// CartRemoveItem deletes a line by its exact (sku, options) identity.
func CartRemoveItem(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, err := sessionID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload removeItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := store.RemoveItem(r.Context(), sid, payload.SKU, payload.SelectedOptions)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, viewOf(updated))
	}
}

// CartClear empties the session's cart.
func CartClear(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, err := sessionID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, viewOf(store.Clear(r.Context(), sid)))
	}
}
