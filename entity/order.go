package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order status values. Numeric ordering matters: guards compare against it
// (e.g. a customer may only cancel while status <= ToBeConfirmed).
const (
	PendingPayment     = 1
	ToBeConfirmed      = 2
	Confirmed          = 3
	DeliveryInProgress = 4
	Completed          = 5
	Cancelled          = 6
)

// Pay status values.
const (
	UnPaid = 0
	Paid   = 1
	Refund = 2
)

type Order struct {
	gorm.Model
	Number    string          `gorm:"uniqueIndex" json:"number"` // business order number, not the row id
	Status    int             `json:"status"`
	PayStatus int             `json:"payStatus"`
	Amount    decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`

	UserID        uint `json:"userId"`
	User          User `json:"-"`
	AddressBookID uint `json:"addressBookId"`

	OrderTime    time.Time  `json:"orderTime"`
	CheckoutTime *time.Time `json:"checkoutTime"`
	CancelTime   *time.Time `json:"cancelTime"`
	DeliveryTime *time.Time `json:"deliveryTime"`
	CancelReason string     `json:"cancelReason"`
	Remark       string     `json:"remark"`

	// snapshot of the shipping address at submit time
	Consignee string `json:"consignee"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`

	OrderDetails []OrderDetail `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
