package checkout

import (
	"context"
	"time"

	"github.com/luxemoda/storefront-backend/internal/cart"
	apperrors "github.com/luxemoda/storefront-backend/pkg/errors"
	"github.com/luxemoda/storefront-backend/pkg/logger"
	"github.com/luxemoda/storefront-backend/pkg/metrics"
)

// cartAccess is the slice of the cart store the checkout flow needs.
type cartAccess interface {
	Get(ctx context.Context, sessionID string) *cart.Cart
	Clear(ctx context.Context, sessionID string) *cart.Cart
}

// Confirmation is returned to the shopper after a successful hand-off.
type Confirmation struct {
	Order        OrderPayload `json:"order"`
	WhatsAppLink string       `json:"whatsapp_link,omitempty"`
}

// Service validates the contact form, freezes the cart into an order, and
// hands it off. The cart is cleared only after the hand-off succeeds.
type Service struct {
	engine         *ruleEngine
	carts          cartAccess
	submitter      Submitter
	whatsAppNumber string
	logg           *logger.Logger
	metrics        *metrics.StorefrontMetrics
	now            func() time.Time
}

// NewService wires the checkout flow. submitter may be nil, in which case the
// hand-off is link-only.
func NewService(carts cartAccess, submitter Submitter, whatsAppNumber string, logg *logger.Logger, m *metrics.StorefrontMetrics) *Service {
	return &Service{
		engine:         newRuleEngine(contactRules),
		carts:          carts,
		submitter:      submitter,
		whatsAppNumber: whatsAppNumber,
		logg:           logg,
		metrics:        m,
		now:            time.Now,
	}
}

// ValidateField checks a single contact field for inline feedback while the
// shopper types. Returns an empty message when the value passes.
func (s *Service) ValidateField(field, value string) string {
	return s.engine.checkField(field, value)
}

// ValidateForm checks the whole contact form and returns field-keyed
// messages. An empty map means the form may be submitted.
func (s *Service) ValidateForm(customer Customer) map[string]string {
	return s.engine.checkForm(customer.asFieldValues())
}

// Submit runs the full checkout: form validation, order assembly, hand-off,
// and cart clearing. Any failure leaves the cart untouched.
func (s *Service) Submit(ctx context.Context, sessionID string, customer Customer) (*Confirmation, error) {
	if failures := s.ValidateForm(customer); len(failures) > 0 {
		s.countSubmission("rejected")
		return nil, apperrors.New(apperrors.CodeValidation, "contact form has invalid fields").
			WithDetails(failures)
	}

	current := s.carts.Get(ctx, sessionID)
	if current.IsEmpty() {
		s.countSubmission("rejected")
		return nil, apperrors.New(apperrors.CodeValidation, "cart is empty").
			WithDetails(map[string]string{"cart": "add at least one item before checking out"})
	}

	order := buildOrder(current, customer, s.now())

	if s.submitter != nil {
		if err := s.submitter.Submit(ctx, order); err != nil {
			s.countSubmission("failure")
			if s.logg != nil {
				s.logg.Error(ctx, "order hand-off failed", err)
			}
			return nil, err
		}
	}

	s.carts.Clear(ctx, sessionID)
	s.countSubmission("success")
	if s.logg != nil {
		ctx = s.logg.WithFields(ctx, map[string]any{
			"order_id": order.OrderID,
			"lines":    order.LineCount,
			"total":    order.Total.String(),
		})
		s.logg.Info(ctx, "order handed off")
	}

	return &Confirmation{
		Order:        order,
		WhatsAppLink: WhatsAppLink(s.whatsAppNumber, order),
	}, nil
}

func (s *Service) countSubmission(outcome string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncSubmission(outcome)
}
