package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/2605335342/sky-take-out/entity"
	"gorm.io/gorm"
)

// Order status transitions. Guard failures raise ErrOrderStatus; a missing
// order raises ErrOrderNotFound. Operator pushes happen after the commit and
// never fail the transition.

func (s *OrderService) getOrFail(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetByID(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	return o, err
}

// Pay is the payment confirmation callback: locate by business number,
// advance to ToBeConfirmed and tell the operators.
func (s *OrderService) Pay(orderNumber string) error {
	o, err := s.Repo.GetByNumber(orderNumber)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	now := time.Now()
	err = s.Repo.Updates(s.DB, o.ID, map[string]any{
		"status":        entity.ToBeConfirmed,
		"pay_status":    entity.Paid,
		"checkout_time": now,
	})
	if err != nil {
		return err
	}

	s.Notify.Broadcast(OrderEvent{
		Type:    NotifyNewOrder,
		OrderID: o.ID,
		Content: "order number: " + orderNumber,
	})
	return nil
}

// Confirm accepts an order that is waiting for the merchant.
func (s *OrderService) Confirm(orderID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := s.getOrFail(orderID); err != nil {
			return err
		}
		affected, err := s.Repo.UpdateStatusGuard(tx, orderID, entity.ToBeConfirmed, entity.Confirmed)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrOrderStatus
		}
		return nil
	})
}

// Rejection turns down an order that is waiting for the merchant.
func (s *OrderService) Rejection(orderID uint, reason string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.getOrFail(orderID)
		if err != nil {
			return err
		}
		if o.Status != entity.ToBeConfirmed {
			return ErrOrderStatus
		}

		values := map[string]any{
			"status":        entity.Cancelled,
			"cancel_reason": reason,
			"cancel_time":   time.Now(),
		}
		if o.PayStatus == entity.Paid {
			values["pay_status"] = entity.Refund
		}
		return s.Repo.Updates(tx, orderID, values)
	})
}

// Cancel is the merchant-side cancel. Completed and already-cancelled
// orders are off limits.
func (s *OrderService) Cancel(orderID uint, reason string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.getOrFail(orderID)
		if err != nil {
			return err
		}
		if o.Status == entity.Completed || o.Status == entity.Cancelled {
			return ErrOrderStatus
		}

		values := map[string]any{
			"status":        entity.Cancelled,
			"cancel_reason": reason,
			"cancel_time":   time.Now(),
		}
		if o.PayStatus == entity.Paid {
			values["pay_status"] = entity.Refund
		}
		return s.Repo.Updates(tx, orderID, values)
	})
}

// UserCancel is the customer-side cancel, allowed only before the merchant
// has accepted.
func (s *OrderService) UserCancel(userID, orderID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetForUser(userID, orderID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		if err != nil {
			return err
		}
		if o.Status > entity.ToBeConfirmed {
			return ErrOrderStatus
		}

		return s.Repo.Updates(tx, orderID, map[string]any{
			"status":        entity.Cancelled,
			"cancel_reason": "user cancelled",
			"cancel_time":   time.Now(),
			"pay_status":    entity.Refund,
		})
	})
}

// Delivery marks an accepted order as out for delivery.
func (s *OrderService) Delivery(orderID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := s.getOrFail(orderID); err != nil {
			return err
		}
		affected, err := s.Repo.UpdateStatusGuard(tx, orderID, entity.Confirmed, entity.DeliveryInProgress)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrOrderStatus
		}
		return nil
	})
}

// Complete marks a delivering order as delivered.
func (s *OrderService) Complete(orderID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.getOrFail(orderID)
		if err != nil {
			return err
		}
		if o.Status != entity.DeliveryInProgress {
			return ErrOrderStatus
		}

		return s.Repo.Updates(tx, orderID, map[string]any{
			"status":        entity.Completed,
			"delivery_time": time.Now(),
		})
	})
}

// Reminder nudges the operators about an order. No state change.
func (s *OrderService) Reminder(userID, orderID uint) error {
	o, err := s.Repo.GetForUser(userID, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	s.Notify.Broadcast(OrderEvent{
		Type:    NotifyReminder,
		OrderID: o.ID,
		Content: fmt.Sprintf("order number: %s", o.Number),
	})
	return nil
}
