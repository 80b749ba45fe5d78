package engine

import (
	"time"

	"github.com/mkraev/sellerboard/internal/model"
	"github.com/mkraev/sellerboard/internal/utils"
	"github.com/shopspring/decimal"
)

type DailyRevenue struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

type Stats struct {
	TotalOrders       int             `json:"total_orders"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	ToPackCount       int             `json:"to_pack_count"`
	Daily             []DailyRevenue  `json:"daily"`
}

type TrendPoint struct {
	Date     string `json:"date"`
	Quantity int    `json:"quantity"`
}

// PostingTotal — сумма отправления. Финансовая разбивка, если она есть,
// авторитетнее наивной суммы цен позиций.
func PostingTotal(p model.Posting) decimal.Decimal {
	if p.FinancialData != nil && len(p.FinancialData.Products) > 0 {
		total := decimal.Zero
		for _, fp := range p.FinancialData.Products {
			total = total.Add(decimal.NewFromFloat(fp.Price))
		}
		return total
	}

	total := decimal.Zero
	for _, pr := range p.Products {
		price, err := decimal.NewFromString(pr.Price)
		if err != nil {
			continue
		}
		total = total.Add(price)
	}
	return total
}

// BuildStats считает заголовочные метрики и дневную выручку. Ось дней
// плотная: каждая дата [from, to] даёт корзину, пустые дни — ноль.
// Счётчик "к упаковке" идёт по операционному окну и не зависит от фасетов.
func BuildStats(report, operational []model.Posting, overrides map[string]model.Override, from, to time.Time) Stats {
	byDay := make(map[string]decimal.Decimal)
	total := decimal.Zero
	for _, p := range report {
		amount := PostingTotal(p)
		total = total.Add(amount)
		day := utils.DayKey(p.InProcessAt)
		byDay[day] = byDay[day].Add(amount)
	}

	daily := make([]DailyRevenue, 0)
	for _, day := range utils.EachDay(from, to) {
		daily = append(daily, DailyRevenue{Date: day, Amount: byDay[day]})
	}

	toPack := 0
	for _, p := range operational {
		if IsPackable(p.Status) && !overrides[p.PostingNumber].Packed {
			toPack++
		}
	}

	stats := Stats{
		TotalOrders:  len(report),
		TotalRevenue: total,
		ToPackCount:  toPack,
		Daily:        daily,
	}
	if len(report) > 0 {
		stats.AverageOrderValue = total.Div(decimal.NewFromInt(int64(len(report)))).Round(2)
	}
	return stats
}

// ProductTrend — плотные дневные корзины количества по выбранному SKU
// из отчётного окна.
func ProductTrend(report []model.Posting, sku int64, from, to time.Time) []TrendPoint {
	byDay := make(map[string]int)
	for _, p := range report {
		day := utils.DayKey(p.InProcessAt)
		for _, pr := range p.Products {
			if pr.SKU == sku {
				byDay[day] += pr.Quantity
			}
		}
	}

	points := make([]TrendPoint, 0)
	for _, day := range utils.EachDay(from, to) {
		points = append(points, TrendPoint{Date: day, Quantity: byDay[day]})
	}
	return points
}
