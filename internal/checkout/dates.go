package checkout

import "time"

const (
	deliveryMinDays = 5
	deliveryMaxDays = 10

	dateLayout = "2006-01-02"
)

// DeliveryDates returns the selectable delivery dates: one per day from five
// to ten days after now, formatted YYYY-MM-DD.
func DeliveryDates(now time.Time) []string {
	dates := make([]string, 0, deliveryMaxDays-deliveryMinDays+1)
	for i := deliveryMinDays; i <= deliveryMaxDays; i++ {
		dates = append(dates, now.AddDate(0, 0, i).Format(dateLayout))
	}
	return dates
}

func isOfferedDate(now time.Time, date string) bool {
	for _, d := range DeliveryDates(now) {
		if d == date {
			return true
		}
	}
	return false
}
