package handlers

import "time"

// Попереджаємо, коли абонемент закінчується протягом тижня.
const expiryWarnDays = 7

// subStatus — стан абонемента клієнта для списку менеджера.
type subStatus struct {
	Text     string
	Class    string // бейдж bootstrap: secondary | warning | success
	IsActive bool
}

// subscriptionStatus класифікує останній абонемент клієнта.
// endDate == nil — абонементів не було взагалі.
func subscriptionStatus(endDate *time.Time, today time.Time) subStatus {
	if endDate == nil {
		return subStatus{Text: "Немає активного абонементу", Class: "secondary"}
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	end := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, today.Location())

	if end.Before(day) {
		return subStatus{Text: "Немає активного абонементу (Закінчився)", Class: "secondary"}
	}
	dateStr := end.Format("02.01.2006")
	if !end.After(day.AddDate(0, 0, expiryWarnDays)) {
		return subStatus{Text: "Закінчується: " + dateStr, Class: "warning", IsActive: true}
	}
	return subStatus{Text: "Діє до: " + dateStr, Class: "success", IsActive: true}
}
