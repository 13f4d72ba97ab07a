package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2605335342/sky-take-out/entity"
	"github.com/2605335342/sky-take-out/repository"
	"github.com/2605335342/sky-take-out/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	AddrRepo *repository.AddressRepository
	Notify   Notifier
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	addrRepo *repository.AddressRepository,
	notify Notifier,
) *OrderService {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, AddrRepo: addrRepo, Notify: notify}
}

// ----- DTOs -----

type SubmitOrderReq struct {
	AddressBookID uint   `json:"addressBookId" binding:"required"`
	Remark        string `json:"remark"`
}

type OrderSubmitVO struct {
	ID          uint            `json:"id"`
	OrderNumber string          `json:"orderNumber"`
	Amount      decimal.Decimal `json:"orderAmount"`
	OrderTime   time.Time       `json:"orderTime"`
}

// OrderVO is an order plus whichever extras the listing needs.
type OrderVO struct {
	entity.Order
	OrderDetailList []entity.OrderDetail `json:"orderDetailList,omitempty"`
	OrderDishes     string               `json:"orderDishes,omitempty"`
}

// ----- Submit -----

// Submit turns the user's cart into an order. The order row, its detail
// rows and the cart clear commit together or not at all.
func (s *OrderService) Submit(userID uint, req *SubmitOrderReq) (*OrderSubmitVO, error) {
	addr, err := s.AddrRepo.GetByID(req.AddressBookID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAddressBookEmpty
	}
	if err != nil {
		return nil, err
	}

	cart, err := s.CartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(cart) == 0 {
		return nil, ErrShoppingCartEmpty
	}

	amount := decimal.Zero
	for _, line := range cart {
		amount = amount.Add(line.Amount.Mul(decimal.NewFromInt(int64(line.Number))))
	}

	order := entity.Order{
		Number:        utils.NewOrderNumber(),
		Status:        entity.PendingPayment,
		PayStatus:     entity.UnPaid,
		Amount:        amount,
		UserID:        userID,
		AddressBookID: addr.ID,
		OrderTime:     time.Now(),
		Remark:        req.Remark,
		// consignee/phone/address come from the address row, never from
		// the request body, so later address edits cannot rewrite history
		Consignee: addr.Consignee,
		Phone:     addr.Phone,
		Address:   addr.FullAddress(),
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, &order); err != nil {
			return err
		}

		details := make([]entity.OrderDetail, 0, len(cart))
		for _, line := range cart {
			details = append(details, entity.OrderDetail{
				OrderID:   order.ID,
				Name:      line.Name,
				Image:     line.Image,
				Amount:    line.Amount,
				Number:    line.Number,
				Flavor:    line.Flavor,
				DishID:    line.DishID,
				SetmealID: line.SetmealID,
			})
		}
		if err := s.Repo.CreateDetails(tx, details); err != nil {
			return err
		}

		return s.CartRepo.DeleteByUser(tx, userID)
	})
	if err != nil {
		return nil, err
	}

	return &OrderSubmitVO{
		ID:          order.ID,
		OrderNumber: order.Number,
		Amount:      order.Amount,
		OrderTime:   order.OrderTime,
	}, nil
}

// ----- Listing & detail -----

func (s *OrderService) HistoryOrders(userID uint, page, pageSize int, status *int) (*PageResult, error) {
	orders, total, err := s.Repo.PageQuery(repository.OrderQuery{
		UserID:   &userID,
		Status:   status,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, err
	}

	records := make([]OrderVO, 0, len(orders))
	for _, o := range orders {
		details, err := s.Repo.DetailsByOrderID(o.ID)
		if err != nil {
			return nil, err
		}
		records = append(records, OrderVO{Order: o, OrderDetailList: details})
	}
	return &PageResult{Total: total, Records: records}, nil
}

func (s *OrderService) Details(orderID uint) (*OrderVO, error) {
	o, err := s.Repo.GetByID(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	details, err := s.Repo.DetailsByOrderID(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderVO{Order: *o, OrderDetailList: details}, nil
}

// ConditionSearch is the admin order search over explicit criteria.
func (s *OrderService) ConditionSearch(q repository.OrderQuery) (*PageResult, error) {
	orders, total, err := s.Repo.PageQuery(q)
	if err != nil {
		return nil, err
	}

	records := make([]OrderVO, 0, len(orders))
	for _, o := range orders {
		dishes, err := s.orderDishesStr(o.ID)
		if err != nil {
			return nil, err
		}
		records = append(records, OrderVO{Order: o, OrderDishes: dishes})
	}
	return &PageResult{Total: total, Records: records}, nil
}

// orderDishesStr flattens an order's lines into "name*qty;" form for the
// admin list.
func (s *OrderService) orderDishesStr(orderID uint) (string, error) {
	details, err := s.Repo.DetailsByOrderID(orderID)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, d := range details {
		fmt.Fprintf(&b, "%s*%d;", d.Name, d.Number)
	}
	return b.String(), nil
}

// ----- Status counts -----

type OrderStatisticsVO struct {
	ToBeConfirmed      int64 `json:"toBeConfirmed"`
	Confirmed          int64 `json:"confirmed"`
	DeliveryInProgress int64 `json:"deliveryInProgress"`
}

func (s *OrderService) Statistics() (*OrderStatisticsVO, error) {
	toBeConfirmed, err := s.Repo.CountByStatus(entity.ToBeConfirmed)
	if err != nil {
		return nil, err
	}
	confirmed, err := s.Repo.CountByStatus(entity.Confirmed)
	if err != nil {
		return nil, err
	}
	delivering, err := s.Repo.CountByStatus(entity.DeliveryInProgress)
	if err != nil {
		return nil, err
	}
	return &OrderStatisticsVO{
		ToBeConfirmed:      toBeConfirmed,
		Confirmed:          confirmed,
		DeliveryInProgress: delivering,
	}, nil
}

// ----- Repeat order -----

// Repetition copies an order's detail lines back into the user's cart.
func (s *OrderService) Repetition(userID, orderID uint) error {
	details, err := s.Repo.DetailsByOrderID(orderID)
	if err != nil {
		return err
	}
	if len(details) == 0 {
		return ErrOrderNotFound
	}

	rows := make([]entity.ShoppingCart, 0, len(details))
	for _, d := range details {
		rows = append(rows, entity.ShoppingCart{
			UserID:    userID,
			Name:      d.Name,
			Image:     d.Image,
			Amount:    d.Amount,
			Number:    d.Number,
			Flavor:    d.Flavor,
			DishID:    d.DishID,
			SetmealID: d.SetmealID,
		})
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.InsertBatch(tx, rows)
	})
}
