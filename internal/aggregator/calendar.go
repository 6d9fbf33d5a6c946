package aggregator

import (
	"time"

	"github.com/Tusharxhub/GitHubWrapped/internal/domain"
)

const dateLayout = "2006-01-02"

// Summary bundles the calendar derived metrics used for display and insights.
type Summary struct {
	MonthlyContributions []domain.BucketTotal `json:"monthlyContributions"`
	DailyContributions   []domain.BucketTotal `json:"dailyContributions"`
	LongestStreak        int                  `json:"longestStreak"`
	LongestGap           int                  `json:"longestGap"`
	WeekendActivity      int                  `json:"weekendActivity"`
	ActiveDays           int                  `json:"activeDays"`
}

func Summarize(calendar domain.ContributionCalendar, year int) Summary {
	days := Flatten(calendar)
	return Summary{
		MonthlyContributions: MonthlyContributions(days, year),
		DailyContributions:   DailyContributions(days, year),
		LongestStreak:        LongestStreak(days),
		LongestGap:           LongestGap(days),
		WeekendActivity:      WeekendActivity(days),
		ActiveDays:           ActiveDays(days),
	}
}

// Flatten returns the calendar days in source order.
func Flatten(calendar domain.ContributionCalendar) []domain.ContributionDay {
	var days []domain.ContributionDay
	for _, week := range calendar.Weeks {
		days = append(days, week.ContributionDays...)
	}
	return days
}

// LongestStreak is the longest run of consecutive days with at least one contribution.
func LongestStreak(days []domain.ContributionDay) int {
	return longestRun(days, func(d domain.ContributionDay) bool { return d.ContributionCount > 0 })
}

// LongestGap is the longest run of consecutive days without contributions.
func LongestGap(days []domain.ContributionDay) int {
	return longestRun(days, func(d domain.ContributionDay) bool { return d.ContributionCount <= 0 })
}

func longestRun(days []domain.ContributionDay, match func(domain.ContributionDay) bool) int {
	current, longest := 0, 0
	for _, day := range days {
		if match(day) {
			current++
			continue
		}
		longest = max(longest, current)
		current = 0
	}
	// a run reaching the last day is still a candidate
	return max(longest, current)
}

func WeekendActivity(days []domain.ContributionDay) int {
	count := 0
	for _, day := range days {
		if (day.Weekday == 0 || day.Weekday == 6) && day.ContributionCount > 0 {
			count++
		}
	}
	return count
}

func ActiveDays(days []domain.ContributionDay) int {
	count := 0
	for _, day := range days {
		if day.ContributionCount > 0 {
			count++
		}
	}
	return count
}

// MonthlyContributions sums counts into 12 month buckets labelled with short month names.
// Days whose date cannot be parsed are skipped.
func MonthlyContributions(days []domain.ContributionDay, year int) []domain.BucketTotal {
	buckets := make([]domain.BucketTotal, 12)
	for i := range buckets {
		buckets[i].Name = time.Date(year, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC).Format("Jan")
	}

	for _, day := range days {
		date, ok := parseDay(day.Date)
		if !ok {
			continue
		}
		buckets[date.Month()-1].Total += max(day.ContributionCount, 0)
	}

	return buckets
}

// DailyContributions sums counts into 7 buckets by weekday index. Bucket i is labelled with
// the short weekday name of January i+1 of the wrapped year.
func DailyContributions(days []domain.ContributionDay, year int) []domain.BucketTotal {
	buckets := make([]domain.BucketTotal, 7)
	for i := range buckets {
		buckets[i].Name = time.Date(year, time.January, i+1, 0, 0, 0, 0, time.UTC).Format("Mon")
	}

	for _, day := range days {
		if day.Weekday < 0 || day.Weekday > 6 {
			continue
		}
		buckets[day.Weekday].Total += max(day.ContributionCount, 0)
	}

	return buckets
}

func parseDay(s string) (time.Time, bool) {
	if len(s) < len(dateLayout) {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, s[:len(dateLayout)])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
