package controllers

import (
	"net/http"

	"github.com/luxemoda/storefront-backend/api/responses"
	"github.com/luxemoda/storefront-backend/api/validators"
	"github.com/luxemoda/storefront-backend/internal/checkout"
	"github.com/luxemoda/storefront-backend/pkg/logger"
)

type checkoutRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

func (r checkoutRequest) toCustomer() checkout.Customer {
	return checkout.Customer{
		Name:    validators.SanitizeString(r.Name, 100),
		Phone:   validators.SanitizeString(r.Phone, 20),
		Email:   validators.SanitizeString(r.Email, 254),
		Address: validators.SanitizeString(r.Address, 300),
	}
}

// CheckoutSubmit validates the contact form and hands the order off. Field
// rules live in the checkout service so inline validation and submission
// agree.
func CheckoutSubmit(svc *checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, err := sessionID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		confirmation, err := svc.Submit(r.Context(), sid, payload.toCustomer())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, confirmation)
	}
}

type validateFieldRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

type validateFieldResponse struct {
	Field   string `json:"field"`
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// CheckoutValidate checks a single contact field for inline feedback.
func CheckoutValidate(svc *checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload validateFieldRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		msg := svc.ValidateField(payload.Field, payload.Value)
		responses.WriteSuccess(w, validateFieldResponse{
			Field:   payload.Field,
			Valid:   msg == "",
			Message: msg,
		})
	}
}
