package services

import (
	"errors"
	"testing"
	"time"

	"github.com/2605335342/sky-take-out/entity"
)

func TestConfirm(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderServiceForTest(t, db, nil)
	user := seedUser(t, db, "openid-1")

	order := seedOrder(t, db, user.ID, entity.ToBeConfirmed, entity.Paid, "10.00", time.Now())
	if err := svc.Confirm(order.ID); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	var got entity.Order
	db.First(&got, order.ID)
	if got.Status != entity.Confirmed {
		t.Errorf("status = %d, want %d", got.Status, entity.Confirmed)
	}
}

func TestConfirmRejectsWrongStatus(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderServiceForTest(t, db, nil)
	user := seedUser(t, db, "openid-1")

	order := seedOrder(t, db, user.ID, entity.PendingPayment, entity.UnPaid, "10.00", time.Now())
	if err := svc.Confirm(order.ID); !errors.Is(err, ErrOrderStatus) {
		t.Fatalf("err = %v, want ErrOrderStatus", err)
	}

	if err := svc.Confirm(9999); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("err = %v, want ErrOrderNotFound", err)
	}
}

func TestRejectionRefundsPaidOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderServiceForTest(t, db, nil)
	user := seedUser(t, db, "openid-1")

	order := seedOrder(t, db, user.ID, entity.ToBeConfirmed, entity.Paid, "10.00", time.Now())
	if err := svc.Rejection(order.ID, "out of stock"); err != nil {
		t.Fatalf("rejection: %v", err)
	}

	var got entity.Order
	db.First(&got, order.ID)
	if got.Status != entity.Cancelled {
		t.Errorf("status = %d, want %d", got.Status, entity.Cancelled)
	}
	if got.PayStatus != entity.Refund {
		t.Errorf("pay status = %d, want %d", got.PayStatus, entity.Refund)
	}
	if got.CancelReason != "out of stock" {
		t.Errorf("cancel reason = %q", got.CancelReason)
	}
	if got.CancelTime == nil {
		t.Error("cancel time should be set")
	}
}

func TestRejectionOnlyWhileWaiting(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderServiceForTest(t, db, nil)
	user := seedUser(t, db, "openid-1")

	order := seedOrder(t, db, user.ID, entity.Confirmed, entity.Paid, "10.00", time.Now())
	if err := svc.Rejection(order.ID, "too late"); !errors.Is(err, ErrOrderStatus) {
		t.Fatalf("err = %v, want ErrOrderStatus", err)
	}
}

func TestMerchantCancel(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderServiceForTest(t, db, nil)
	user := seedUser(t, db, "openid-1")

	order := seedOrder(t, db, user.ID, entity.DeliveryInProgress, entity.Paid, "10.00", time.Now())
	if err := svc.Cancel(order.ID, "rider unavailable"); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	var got entity.Order
	db.First(&got, order.ID)
	if got.Status != entity.Cancelled || got.PayStatus != entity.Refund {
		t.Errorf("order = status %d pay %d", got.Status, got.PayStatus)
	}
}

func TestMerchantCancelGuards(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderServiceForTest(t, db, nil)
	user := seedUser(t, db, "openid-1")

	completed := seedOrder(t, db, user.ID, entity.Completed, entity.Paid, "10.00", time.Now())
	if err := svc.Cancel(completed.ID, "oops"); !errors.Is(err, ErrOrderStatus) {
		t.Fatalf("completed: err = %v, want ErrOrderStatus", err)
	}

	cancelled := seedOrder(t, db, user.ID, entity.Cancelled, entity.Refund, "10.00", time.Now())
	if err := svc.Cancel(cancelled.ID, "again"); !errors.Is(err, ErrOrderStatus) {
		t.Fatalf("cancelled: err = %v, want ErrOrderStatus", err)
	}
}

func TestUserCancel(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderServiceForTest(t, db, nil)
	user := seedUser(t, db, "openid-1")

	order := seedOrder(t, db, user.ID, entity.ToBeConfirmed, entity.Paid, "10.00", time.Now())
	if err := svc.UserCancel(user.ID, order.ID); err != nil {
		t.Fatalf("user cancel: %v", err)
	}

	var got entity.Order
	db.First(&got, order.ID)
	if got.Status != entity.Cancelled {
		t.Errorf("status = %d, want %d", got.Status, entity.Cancelled)
	}
	if got.PayStatus != entity.Refund {
		t.Errorf("pay status = %d, want %d", got.PayStatus, entity.Refund)
	}
	if got.CancelReason != "user cancelled" {
		t.Errorf("cancel reason = %q", got.CancelReason)
	}
}

func TestUserCancelBlockedAfterAccept(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderServiceForTest(t, db, nil)
	user := seedUser(t, db, "openid-1")

	order := seedOrder(t, db, user.ID, entity.Confirmed, entity.Paid, "10.00", time.Now())
	if err := svc.UserCancel(user.ID, order.ID); !errors.Is(err, ErrOrderStatus) {
		t.Fatalf("err = %v, want ErrOrderStatus", err)
	}
}

func TestUserCancelOtherUsersOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderServiceForTest(t, db, nil)
	alice := seedUser(t, db, "openid-a")
	bob := seedUser(t, db, "openid-b")

	order := seedOrder(t, db, alice.ID, entity.PendingPayment, entity.UnPaid, "10.00", time.Now())
	if err := svc.UserCancel(bob.ID, order.ID); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("err = %v, want ErrOrderNotFound", err)
	}
}

func TestDeliveryAndComplete(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderServiceForTest(t, db, nil)
	user := seedUser(t, db, "openid-1")

	order := seedOrder(t, db, user.ID, entity.Confirmed, entity.Paid, "10.00", time.Now())
	if err := svc.Delivery(order.ID); err != nil {
		t.Fatalf("delivery: %v", err)
	}
	if err := svc.Complete(order.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}

	var got entity.Order
	db.First(&got, order.ID)
	if got.Status != entity.Completed {
		t.Errorf("status = %d, want %d", got.Status, entity.Completed)
	}
	if got.DeliveryTime == nil {
		t.Error("delivery time should be set")
	}
}

func TestDeliveryRequiresConfirmed(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderServiceForTest(t, db, nil)
	user := seedUser(t, db, "openid-1")

	order := seedOrder(t, db, user.ID, entity.ToBeConfirmed, entity.Paid, "10.00", time.Now())
	if err := svc.Delivery(order.ID); !errors.Is(err, ErrOrderStatus) {
		t.Fatalf("err = %v, want ErrOrderStatus", err)
	}
}

func TestCompleteRequiresDelivering(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderServiceForTest(t, db, nil)
	user := seedUser(t, db, "openid-1")

	order := seedOrder(t, db, user.ID, entity.Confirmed, entity.Paid, "10.00", time.Now())
	if err := svc.Complete(order.ID); !errors.Is(err, ErrOrderStatus) {
		t.Fatalf("err = %v, want ErrOrderStatus", err)
	}
}

func TestReminderBroadcasts(t *testing.T) {
	db := newTestDB(t)
	notify := &captureNotifier{}
	svc := newOrderServiceForTest(t, db, notify)
	user := seedUser(t, db, "openid-1")

	order := seedOrder(t, db, user.ID, entity.ToBeConfirmed, entity.Paid, "10.00", time.Now())
	if err := svc.Reminder(user.ID, order.ID); err != nil {
		t.Fatalf("reminder: %v", err)
	}

	if len(notify.events) != 1 {
		t.Fatalf("events = %d, want 1", len(notify.events))
	}
	ev := notify.events[0]
	if ev.Type != NotifyReminder || ev.OrderID != order.ID {
		t.Errorf("event = %+v", ev)
	}

	var got entity.Order
	db.First(&got, order.ID)
	if got.Status != entity.ToBeConfirmed {
		t.Errorf("reminder must not change status, got %d", got.Status)
	}
}
