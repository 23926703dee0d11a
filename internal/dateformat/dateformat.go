// Package dateformat renders times for display using Japanese conventions in
// the Asia/Tokyo time zone. Every function is pure; anything relative to
// "now" takes the reference time as an argument.
package dateformat

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/dukerupert/uchitopi/internal/config"
)

// Location is the zone every date is rendered and compared in.
var Location = mustLoadLocation(config.TimeZone)

var weekdaySymbols = [...]string{"日", "月", "火", "水", "木", "金", "土"}

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(fmt.Sprintf("load location %q: %v", name, err))
	}
	return loc
}

func local(t time.Time) time.Time {
	return t.In(Location)
}

// FullDateTime renders "2024年1月1日 12:00".
func FullDateTime(t time.Time) string { return local(t).Format(config.LayoutFull) }

// ShortDateTime renders "1/1 12:00".
func ShortDateTime(t time.Time) string { return local(t).Format(config.LayoutShort) }

// Time renders "12:00".
func Time(t time.Time) string { return local(t).Format(config.LayoutTime) }

// Date renders "2024/01/01".
func Date(t time.Time) string { return local(t).Format(config.LayoutDate) }

// MonthDay renders "1月1日".
func MonthDay(t time.Time) string { return local(t).Format(config.LayoutMonthDay) }

// YearMonth renders "2024年1月".
func YearMonth(t time.Time) string { return local(t).Format(config.LayoutYearMonth) }

// Weekday returns the one-character Japanese weekday name of t.
func Weekday(t time.Time) string {
	return weekdaySymbols[local(t).Weekday()]
}

// Relative renders how long before ref the date was, using the largest
// non-zero calendar unit: years, months, weeks (more than 7 days), days,
// "昨日" for exactly one day, hours, then minutes. Anything under a minute,
// or in the future, is "たった今".
func Relative(date, ref time.Time) string {
	c := Components(date, ref)
	switch {
	case c.Years > 0:
		return fmt.Sprintf("%d年前", c.Years)
	case c.Months > 0:
		return fmt.Sprintf("%dヶ月前", c.Months)
	case c.Days > 7:
		return fmt.Sprintf("%d週間前", c.Days/7)
	case c.Days > 1:
		return fmt.Sprintf("%d日前", c.Days)
	case c.Days == 1:
		return "昨日"
	case c.Hours > 0:
		return fmt.Sprintf("%d時間前", c.Hours)
	case c.Minutes > 0:
		return fmt.Sprintf("%d分前", c.Minutes)
	}
	return "たった今"
}

// ChatTime renders a message timestamp: time only for today, "昨日 12:00"
// for yesterday, "水曜日 12:00" within the current week and the short
// date-time otherwise.
func ChatTime(date, now time.Time) string {
	switch {
	case IsToday(date, now):
		return Time(date)
	case IsYesterday(date, now):
		return "昨日 " + Time(date)
	case IsThisWeek(date, now):
		return Weekday(date) + "曜日 " + Time(date)
	}
	return ShortDateTime(date)
}

// Duration renders end-start as "1時間30分", "2時間" or "45分". Seconds are
// dropped and negative spans render as "0分".
func Duration(start, end time.Time) string {
	d := end.Sub(start)
	if d < 0 {
		d = 0
	}
	hours := int(d / time.Hour)
	minutes := int(d % time.Hour / time.Minute)

	switch {
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("%d時間%d分", hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%d時間", hours)
	}
	return fmt.Sprintf("%d分", minutes)
}
