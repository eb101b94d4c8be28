// skillz/priority.go
package skillz

// The labels below reproduce what the skills views have always shown.
// PriorityLabel maps LOW numbers to "High" even though a higher priority
// value means a more important skill, and IsImportant marks high numbers.
// A priority 9 skill is therefore both "Low" and "Important". Both rules are
// used by different views and are kept as they are.

const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// importantThreshold is the smallest priority that earns the "Important" badge.
const importantThreshold = 8

// PriorityLabel buckets a numeric priority: <= 3 "High", 4..7 "Medium", > 7 "Low".
func PriorityLabel(priority int) string {
	switch {
	case priority <= 3:
		return PriorityHigh
	case priority <= 7:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// PriorityLabelVI is PriorityLabel with the Vietnamese wording of the skills page.
func PriorityLabelVI(priority int) string {
	switch PriorityLabel(priority) {
	case PriorityHigh:
		return "Cao"
	case PriorityMedium:
		return "Trung Bình"
	default:
		return "Thấp"
	}
}

// PriorityBadge returns the colour of the priority chip on the skills page.
func PriorityBadge(priority int) string {
	switch {
	case priority >= 7:
		return "red"
	case priority >= 4:
		return "yellow"
	default:
		return "green"
	}
}

// IsImportant reports whether a skill gets the separate "Important" badge.
func IsImportant(priority int) bool {
	return priority >= importantThreshold
}
