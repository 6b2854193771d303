package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParseDeadline parses the deadline formats accepted on input.
// Supported formats:
// - RFC3339 (e.g., "2025-03-10T14:00:00+05:00") — the canonical form
// - yyyy-mm-dd (e.g., "2025-03-10"), normalized to local midnight
// - dd/mm/yyyy (e.g., "10/03/2025"), legacy form, normalized likewise
// - X days / X hours / X weeks (e.g., "3 days")
func ParseDeadline(input string) (*time.Time, error) {
	if input == "" {
		return nil, nil
	}

	input = strings.TrimSpace(input)

	if t, err := time.Parse(time.RFC3339, input); err == nil {
		local := t.Local()
		return &local, nil
	}

	if deadline, err := parseDateOnly(input); err == nil {
		return deadline, nil
	}

	if deadline, err := parseRelative(input); err == nil {
		return deadline, nil
	}

	return nil, fmt.Errorf("invalid deadline. Use: yyyy-mm-dd, dd/mm/yyyy, RFC3339, X days, X hours, or X weeks")
}

var (
	isoDateRegex    = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	legacyDateRegex = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	relativeRegex   = regexp.MustCompile(`^(\d+)\s+(hour|hours|day|days|week|weeks)$`)
)

// parseDateOnly parses yyyy-mm-dd and dd/mm/yyyy date forms.
func parseDateOnly(input string) (*time.Time, error) {
	var day, month, year int

	if matches := isoDateRegex.FindStringSubmatch(input); len(matches) == 4 {
		year, _ = strconv.Atoi(matches[1])
		month, _ = strconv.Atoi(matches[2])
		day, _ = strconv.Atoi(matches[3])
	} else if matches := legacyDateRegex.FindStringSubmatch(input); len(matches) == 4 {
		day, _ = strconv.Atoi(matches[1])
		month, _ = strconv.Atoi(matches[2])
		year, _ = strconv.Atoi(matches[3])
	} else {
		return nil, fmt.Errorf("invalid date format")
	}

	if day < 1 || day > 31 {
		return nil, fmt.Errorf("day must be between 1 and 31")
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month must be between 1 and 12")
	}
	if year < 2024 || year > 2100 {
		return nil, fmt.Errorf("year must be between 2024 and 2100")
	}

	deadline := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)

	// Check the date is real (handles leap years, short months)
	if deadline.Day() != day || deadline.Month() != time.Month(month) || deadline.Year() != year {
		return nil, fmt.Errorf("invalid date")
	}

	return &deadline, nil
}

// parseRelative parses relative forms like "3 days", "24 hours", "2 weeks".
func parseRelative(input string) (*time.Time, error) {
	input = strings.ToLower(input)

	matches := relativeRegex.FindStringSubmatch(input)
	if len(matches) != 3 {
		return nil, fmt.Errorf("invalid relative time format")
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return nil, fmt.Errorf("invalid number")
	}

	unit := matches[2]
	now := time.Now()

	switch unit {
	case "hour", "hours":
		if amount < 1 || amount > 8760 {
			return nil, fmt.Errorf("hours must be between 1 and 8760")
		}
		deadline := now.Add(time.Duration(amount) * time.Hour)
		return &deadline, nil

	case "day", "days":
		if amount < 1 || amount > 365 {
			return nil, fmt.Errorf("days must be between 1 and 365")
		}
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		deadline := today.AddDate(0, 0, amount)
		return &deadline, nil

	case "week", "weeks":
		if amount < 1 || amount > 52 {
			return nil, fmt.Errorf("weeks must be between 1 and 52")
		}
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		deadline := today.AddDate(0, 0, amount*7)
		return &deadline, nil

	default:
		return nil, fmt.Errorf("unsupported time unit")
	}
}

// FormatDeadline formats a deadline for display
func FormatDeadline(deadline *time.Time) string {
	if deadline == nil {
		return ""
	}

	now := time.Now()

	// Calculate calendar days difference
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dueDay := time.Date(deadline.Year(), deadline.Month(), deadline.Day(), 0, 0, 0, 0, deadline.Location())
	daysDiff := int(dueDay.Sub(today).Hours() / 24)

	dateStr := deadline.Format("2006-01-02")

	if daysDiff < 0 {
		return fmt.Sprintf("⚠️ OVERDUE (%s)", dateStr)
	} else if daysDiff == 0 {
		return fmt.Sprintf("🔥 Due today (%s)", dateStr)
	} else if daysDiff == 1 {
		return fmt.Sprintf("📅 Due tomorrow (%s)", dateStr)
	} else if daysDiff <= 7 {
		return fmt.Sprintf("📅 Due %s (in %d days)", dateStr, daysDiff)
	}
	return fmt.Sprintf("📅 Due %s", dateStr)
}
