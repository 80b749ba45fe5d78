package utils

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDateRange разбирает закрытый интервал [from, to] из строк YYYY-MM-DD.
// Пустые значения дают трейлинг-окно в days дней, заканчивающееся сегодня.
func ParseDateRange(fromStr, toStr string, days int) (time.Time, time.Time, error) {
	now := time.Now().UTC().Truncate(24 * time.Hour)

	to := now
	if toStr != "" {
		parsed, err := time.Parse(dateLayout, toStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parse to date: %w", err)
		}
		to = parsed
	}

	from := to.AddDate(0, 0, -days)
	if fromStr != "" {
		parsed, err := time.Parse(dateLayout, fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parse from date: %w", err)
		}
		from = parsed
	}

	if from.After(to) {
		return time.Time{}, time.Time{}, fmt.Errorf("from %s is after to %s", from.Format(dateLayout), to.Format(dateLayout))
	}

	return from, to, nil
}

// DayKey — ключ календарного дня для дневных корзин.
func DayKey(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// EachDay перечисляет ключи всех дней [from, to] включительно, без пропусков.
func EachDay(from, to time.Time) []string {
	var days []string
	for d := from.UTC().Truncate(24 * time.Hour); !d.After(to.UTC()); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(dateLayout))
	}
	return days
}
