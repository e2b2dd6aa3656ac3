package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/yeremiapane/restaurant-storefront/models"
	"github.com/yeremiapane/restaurant-storefront/session"
	"github.com/yeremiapane/restaurant-storefront/utils"
)

var (
	// ErrEmptyCart means there is nothing to submit; callers should send
	// the customer back to the cart view instead of dispatching.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrSubmitInFlight guards against rapid double submission creating
	// duplicate orders upstream.
	ErrSubmitInFlight = errors.New("a checkout is already in progress")
)

// ValidationError is a local rejection caught before any network dispatch.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// OrderCreator is the slice of the upstream client the submitter needs.
type OrderCreator interface {
	CreateOrder(ctx context.Context, draft models.OrderDraft) (string, error)
}

// Submitter turns a session cart plus contact details into exactly one
// order-creation request. The cart is cleared only after the upstream
// confirms creation; every failure path leaves it untouched.
type Submitter struct {
	orders OrderCreator
}

func NewSubmitter(orders OrderCreator) *Submitter {
	return &Submitter{orders: orders}
}

// Submit validates the draft, snapshots the cart into it and posts it
// upstream. It returns the new order number on success.
func (s *Submitter) Submit(ctx context.Context, sess *session.Session, draft models.OrderDraft) (string, error) {
	if !sess.BeginSubmit() {
		return "", ErrSubmitInFlight
	}
	defer sess.EndSubmit()

	if sess.Cart.Empty() {
		return "", ErrEmptyCart
	}
	if err := validate(draft); err != nil {
		return "", err
	}

	draft.Items = sess.Cart.DraftItems()

	orderNumber, err := s.orders.CreateOrder(ctx, draft)
	if err != nil {
		utils.ErrorLogger.Printf("Checkout for session %s failed: %v", sess.ID, err)
		return "", err
	}

	// Upstream confirmed: the cart's job is done.
	sess.Cart.Clear()
	utils.InfoLogger.Printf("Session %s checked out as order %s", sess.ID, orderNumber)
	return orderNumber, nil
}

func validate(draft models.OrderDraft) error {
	if draft.CustomerName == "" {
		return &ValidationError{Field: "customer_name", Reason: "is required"}
	}
	if draft.CustomerPhone == "" {
		return &ValidationError{Field: "customer_phone", Reason: "is required"}
	}
	if !draft.OrderType.Valid() {
		return &ValidationError{Field: "order_type", Reason: "must be dine-in, takeaway or delivery"}
	}
	if draft.OrderType == models.OrderTypeDelivery && draft.DeliveryAddress == "" {
		return &ValidationError{Field: "delivery_address", Reason: "is required for delivery orders"}
	}
	return nil
}
