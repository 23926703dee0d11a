package dateformat

import "time"

// Diff is a calendar-field difference between two instants.
type Diff struct {
	Years   int
	Months  int
	Days    int
	Hours   int
	Minutes int
}

func (d Diff) negate() Diff {
	return Diff{-d.Years, -d.Months, -d.Days, -d.Hours, -d.Minutes}
}

// Components returns the years, months, days, hours and minutes from from
// to to, measured on the Tokyo calendar. Larger units are filled first, so
// Jan 31 to Mar 1 is 1 month and 1 day. When to is before from every field
// is zero or negative.
func Components(from, to time.Time) Diff {
	if to.Before(from) {
		return Components(to, from).negate()
	}
	from, to = local(from), local(to)

	months := (to.Year()-from.Year())*12 + int(to.Month()-from.Month())
	for months > 0 && addMonths(from, months).After(to) {
		months--
	}
	cursor := addMonths(from, months)

	days := 0
	for !cursor.AddDate(0, 0, days+1).After(to) {
		days++
	}
	cursor = cursor.AddDate(0, 0, days)

	rem := to.Sub(cursor)
	return Diff{
		Years:   months / 12,
		Months:  months % 12,
		Days:    days,
		Hours:   int(rem / time.Hour),
		Minutes: int(rem % time.Hour / time.Minute),
	}
}

// addMonths moves t by n months, clamping the day to the target month's
// length instead of overflowing into the next month.
func addMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if last := daysIn(first); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// StartOfDay returns 00:00:00 of t's Tokyo date.
func StartOfDay(t time.Time) time.Time {
	y, m, d := local(t).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, Location)
}

// EndOfDay returns 23:59:59 of t's Tokyo date.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Second)
}

// StartOfMonth returns midnight on the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := local(t).Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, Location)
}

// EndOfMonth returns midnight on the last day of t's month.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, -1)
}

// StartOfWeek returns midnight on the Sunday starting t's week.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

func sameDay(a, b time.Time) bool {
	return StartOfDay(a).Equal(StartOfDay(b))
}

// IsToday reports whether t is on now's Tokyo date.
func IsToday(t, now time.Time) bool { return sameDay(t, now) }

// IsYesterday reports whether t is on the Tokyo date before now.
func IsYesterday(t, now time.Time) bool { return sameDay(t, StartOfDay(now).AddDate(0, 0, -1)) }

// IsTomorrow reports whether t is on the Tokyo date after now.
func IsTomorrow(t, now time.Time) bool { return sameDay(t, StartOfDay(now).AddDate(0, 0, 1)) }

// IsThisWeek reports whether t falls in the same Sunday-based week as now.
func IsThisWeek(t, now time.Time) bool {
	return StartOfWeek(t).Equal(StartOfWeek(now))
}

// IsPast reports whether t is before now.
func IsPast(t, now time.Time) bool { return t.Before(now) }

// IsFuture reports whether t is after now.
func IsFuture(t, now time.Time) bool { return t.After(now) }
