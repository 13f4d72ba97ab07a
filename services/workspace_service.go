package services

import (
	"time"

	"github.com/2605335342/sky-take-out/entity"
	"github.com/2605335342/sky-take-out/repository"
)

// WorkspaceService backs the admin dashboard overview cards.
type WorkspaceService struct {
	OrderRepo   *repository.OrderRepository
	UserRepo    *repository.UserRepository
	DishRepo    *repository.DishRepository
	SetmealRepo *repository.SetmealRepository
}

func NewWorkspaceService(
	orderRepo *repository.OrderRepository,
	userRepo *repository.UserRepository,
	dishRepo *repository.DishRepository,
	setmealRepo *repository.SetmealRepository,
) *WorkspaceService {
	return &WorkspaceService{OrderRepo: orderRepo, UserRepo: userRepo, DishRepo: dishRepo, SetmealRepo: setmealRepo}
}

type BusinessDataVO struct {
	Turnover            float64 `json:"turnover"`
	ValidOrderCount     int64   `json:"validOrderCount"`
	OrderCompletionRate float64 `json:"orderCompletionRate"`
	UnitPrice           float64 `json:"unitPrice"`
	NewUsers            int64   `json:"newUsers"`
}

// BusinessData aggregates turnover, valid orders, completion rate, average
// ticket and new users over [begin, end].
func (s *WorkspaceService) BusinessData(begin, end time.Time) (*BusinessDataVO, error) {
	totalCount, err := s.OrderRepo.CountInRange(begin, end, nil)
	if err != nil {
		return nil, err
	}

	completed := entity.Completed
	validCount, err := s.OrderRepo.CountInRange(begin, end, &completed)
	if err != nil {
		return nil, err
	}

	turnover, err := s.OrderRepo.SumAmount(begin, end, entity.Completed)
	if err != nil {
		return nil, err
	}

	rate := 0.0
	unitPrice := 0.0
	if totalCount != 0 && validCount != 0 {
		rate = float64(validCount) / float64(totalCount)
		unitPrice = turnover / float64(validCount)
	}

	newUsers, err := s.UserRepo.CountCreatedBetween(begin, end)
	if err != nil {
		return nil, err
	}

	return &BusinessDataVO{
		Turnover:            turnover,
		ValidOrderCount:     validCount,
		OrderCompletionRate: rate,
		UnitPrice:           unitPrice,
		NewUsers:            newUsers,
	}, nil
}

type OrderOverViewVO struct {
	WaitingOrders   int64 `json:"waitingOrders"`
	DeliveredOrders int64 `json:"deliveredOrders"`
	CompletedOrders int64 `json:"completedOrders"`
	CancelledOrders int64 `json:"cancelledOrders"`
	AllOrders       int64 `json:"allOrders"`
}

// OrderOverView counts today's orders per management bucket.
func (s *WorkspaceService) OrderOverView(begin time.Time) (*OrderOverViewVO, error) {
	end := time.Now()

	all, err := s.OrderRepo.CountInRange(begin, end, nil)
	if err != nil {
		return nil, err
	}

	count := func(status int) (int64, error) {
		return s.OrderRepo.CountInRange(begin, end, &status)
	}
	waiting, err := count(entity.ToBeConfirmed)
	if err != nil {
		return nil, err
	}
	delivered, err := count(entity.Confirmed)
	if err != nil {
		return nil, err
	}
	completed, err := count(entity.Completed)
	if err != nil {
		return nil, err
	}
	cancelled, err := count(entity.Cancelled)
	if err != nil {
		return nil, err
	}

	return &OrderOverViewVO{
		WaitingOrders:   waiting,
		DeliveredOrders: delivered,
		CompletedOrders: completed,
		CancelledOrders: cancelled,
		AllOrders:       all,
	}, nil
}

type ItemOverViewVO struct {
	Sold         int64 `json:"sold"`
	Discontinued int64 `json:"discontinued"`
}

func (s *WorkspaceService) DishOverView() (*ItemOverViewVO, error) {
	sold, err := s.DishRepo.CountByStatus(entity.Enable)
	if err != nil {
		return nil, err
	}
	discontinued, err := s.DishRepo.CountByStatus(entity.Disable)
	if err != nil {
		return nil, err
	}
	return &ItemOverViewVO{Sold: sold, Discontinued: discontinued}, nil
}

func (s *WorkspaceService) SetmealOverView() (*ItemOverViewVO, error) {
	sold, err := s.SetmealRepo.CountByStatus(entity.Enable)
	if err != nil {
		return nil, err
	}
	discontinued, err := s.SetmealRepo.CountByStatus(entity.Disable)
	if err != nil {
		return nil, err
	}
	return &ItemOverViewVO{Sold: sold, Discontinued: discontinued}, nil
}
