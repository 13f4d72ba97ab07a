package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/2605335342/sky-take-out/entity"
	"github.com/2605335342/sky-take-out/repository"
)

// ReportService produces the read-side statistics for dashboards. The
// per-day series come back as parallel comma-joined strings because the
// charting frontend consumes them that way.
type ReportService struct {
	OrderRepo *repository.OrderRepository
	UserRepo  *repository.UserRepository
	Workspace *WorkspaceService
}

func NewReportService(orderRepo *repository.OrderRepository, userRepo *repository.UserRepository, workspace *WorkspaceService) *ReportService {
	return &ReportService{OrderRepo: orderRepo, UserRepo: userRepo, Workspace: workspace}
}

const dateLayout = "2006-01-02"

// dayBounds returns the inclusive wall-clock bounds of d's calendar day.
func dayBounds(d time.Time) (time.Time, time.Time) {
	begin := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	end := time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 999999999, d.Location())
	return begin, end
}

// datesBetween lists every day in [begin, end]; begin == end yields one day.
func datesBetween(begin, end time.Time) []time.Time {
	var days []time.Time
	for d := begin; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func joinDates(days []time.Time) string {
	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, d.Format(dateLayout))
	}
	return strings.Join(out, ",")
}

func joinFloats(vals []float64) string {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		out = append(out, strconv.FormatFloat(v, 'f', 2, 64))
	}
	return strings.Join(out, ",")
}

func joinInts(vals []int64) string {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		out = append(out, strconv.FormatInt(v, 10))
	}
	return strings.Join(out, ",")
}

// ----- Turnover -----

type TurnoverReportVO struct {
	DateList     string `json:"dateList"`
	TurnoverList string `json:"turnoverList"`
}

// TurnoverStatistics sums completed-order amounts per day over [begin, end].
// Days with no completed orders report 0, never a gap.
func (s *ReportService) TurnoverStatistics(begin, end time.Time) (*TurnoverReportVO, error) {
	days := datesBetween(begin, end)
	turnover := make([]float64, 0, len(days))
	for _, day := range days {
		dayBegin, dayEnd := dayBounds(day)
		sum, err := s.OrderRepo.SumAmount(dayBegin, dayEnd, entity.Completed)
		if err != nil {
			return nil, err
		}
		turnover = append(turnover, sum)
	}

	return &TurnoverReportVO{
		DateList:     joinDates(days),
		TurnoverList: joinFloats(turnover),
	}, nil
}

// ----- Users -----

type UserReportVO struct {
	DateList      string `json:"dateList"`
	TotalUserList string `json:"totalUserList"`
	NewUserList   string `json:"newUserList"`
}

func (s *ReportService) UserStatistics(begin, end time.Time) (*UserReportVO, error) {
	days := datesBetween(begin, end)
	totals := make([]int64, 0, len(days))
	news := make([]int64, 0, len(days))
	for _, day := range days {
		dayBegin, dayEnd := dayBounds(day)

		total, err := s.UserRepo.CountCreatedBefore(dayEnd)
		if err != nil {
			return nil, err
		}
		totals = append(totals, total)

		fresh, err := s.UserRepo.CountCreatedBetween(dayBegin, dayEnd)
		if err != nil {
			return nil, err
		}
		news = append(news, fresh)
	}

	return &UserReportVO{
		DateList:      joinDates(days),
		TotalUserList: joinInts(totals),
		NewUserList:   joinInts(news),
	}, nil
}

// ----- Orders -----

type OrderReportVO struct {
	DateList            string  `json:"dateList"`
	OrderCountList      string  `json:"orderCountList"`
	ValidOrderCountList string  `json:"validOrderCountList"`
	TotalOrderCount     int64   `json:"totalOrderCount"`
	ValidOrderCount     int64   `json:"validOrderCount"`
	OrderCompletionRate float64 `json:"orderCompletionRate"`
}

func (s *ReportService) OrderStatistics(begin, end time.Time) (*OrderReportVO, error) {
	days := datesBetween(begin, end)
	counts := make([]int64, 0, len(days))
	validCounts := make([]int64, 0, len(days))
	completed := entity.Completed
	for _, day := range days {
		dayBegin, dayEnd := dayBounds(day)

		count, err := s.OrderRepo.CountInRange(dayBegin, dayEnd, nil)
		if err != nil {
			return nil, err
		}
		counts = append(counts, count)

		valid, err := s.OrderRepo.CountInRange(dayBegin, dayEnd, &completed)
		if err != nil {
			return nil, err
		}
		validCounts = append(validCounts, valid)
	}

	var totalCount, validCount int64
	for i := range counts {
		totalCount += counts[i]
		validCount += validCounts[i]
	}

	// completion rate is 0 on an empty range, not a division fault
	rate := 0.0
	if totalCount != 0 {
		rate = float64(validCount) / float64(totalCount)
	}

	return &OrderReportVO{
		DateList:            joinDates(days),
		OrderCountList:      joinInts(counts),
		ValidOrderCountList: joinInts(validCounts),
		TotalOrderCount:     totalCount,
		ValidOrderCount:     validCount,
		OrderCompletionRate: rate,
	}, nil
}

// ----- Top sellers -----

type SalesTop10ReportVO struct {
	NameList   string `json:"nameList"`
	NumberList string `json:"numberList"`
}

func (s *ReportService) SalesTop10(begin, end time.Time) (*SalesTop10ReportVO, error) {
	rangeBegin, _ := dayBounds(begin)
	_, rangeEnd := dayBounds(end)

	sales, err := s.OrderRepo.SalesTop(rangeBegin, rangeEnd, 10)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(sales))
	numbers := make([]int64, 0, len(sales))
	for _, sale := range sales {
		names = append(names, sale.Name)
		numbers = append(numbers, int64(sale.Number))
	}

	return &SalesTop10ReportVO{
		NameList:   strings.Join(names, ","),
		NumberList: joinInts(numbers),
	}, nil
}
