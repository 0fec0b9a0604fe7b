// Package window decides whether a point in time falls inside a rule's
// weekly recurring uptime window, including windows that cross midnight.
package window

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/practo/k8s-uptime-scaler/internal/errs"
)

// grammar is fixed by the rule format: "DDD-DDD HH:MM-HH:MM TZ".
var grammar = regexp.MustCompile(`^([A-Za-z]{3})-([A-Za-z]{3}) (\d{2}):(\d{2})-(\d{2}):(\d{2}) ([A-Za-z/_]+)$`)

var weekdayOrdinal = map[string]int{
	"Mon": 0, "Tue": 1, "Wed": 2, "Thu": 3, "Fri": 4, "Sat": 5, "Sun": 6,
}

type clock struct {
	hour, min int
}

func (c clock) less(o clock) bool {
	return c.hour < o.hour || (c.hour == o.hour && c.min < o.min)
}

func (c clock) after(o clock) bool {
	return o.less(c)
}

func (c clock) lessOrEqual(o clock) bool {
	return !o.less(c)
}

// Evaluate reports whether now falls inside the weekly uptime window
// described by the grammar "DDD-DDD HH:MM-HH:MM TZ" (Monday ordinal 0).
// A malformed window or unknown time zone is a UserInput error.
func Evaluate(win string, now time.Time) (bool, error) {
	m := grammar.FindStringSubmatch(win)
	if m == nil {
		return false, errs.New(errs.UserInput, fmt.Errorf("malformed window %q", win))
	}

	ws, ok := weekdayOrdinal[capitalize(m[1])]
	if !ok {
		return false, errs.New(errs.UserInput, fmt.Errorf("unknown weekday %q", m[1]))
	}
	we, ok := weekdayOrdinal[capitalize(m[2])]
	if !ok {
		return false, errs.New(errs.UserInput, fmt.Errorf("unknown weekday %q", m[2]))
	}

	low, err := parseClock(m[3], m[4])
	if err != nil {
		return false, err
	}
	high, err := parseClock(m[5], m[6])
	if err != nil {
		return false, err
	}

	loc, err := time.LoadLocation(m[7])
	if err != nil {
		return false, errs.New(errs.UserInput, fmt.Errorf("unknown time zone %q: %w", m[7], err))
	}

	local := now.In(loc)
	w := int(local.Weekday()+6) % 7 // time.Sunday == 0; convert to Monday == 0
	t := clock{hour: local.Hour(), min: local.Minute()}

	// Equal bounds are a degenerate same-day window: never uptime.
	if low == high {
		return false, nil
	}

	if low.after(high) {
		return crossMidnight(ws, we, low, high, w, t), nil
	}
	return sameDay(ws, we, low, high, w, t), nil
}

// sameDay implements the same-day case: low-exclusive,
// high-inclusive, so back-to-back windows don't both claim the boundary
// minute.
func sameDay(ws, we int, low, high clock, w int, t clock) bool {
	inWeek := ws <= w && w <= we
	inDay := t.after(low) && t.lessOrEqual(high)
	return inWeek && inDay
}

// crossMidnight implements the three-clause disjunction for a
// window that spans from low on day D to high on day D+1.
func crossMidnight(ws, we int, low, high clock, w int, t clock) bool {
	// Trailing-edge morning after the last window day.
	if w == (we+1)%7 && t.lessOrEqual(high) {
		return true
	}
	// Inside the evening portion of a window day.
	if ws <= w && w <= we && t.after(low) {
		return true
	}
	// Inside the early-morning portion of a mid-range day (not the first
	// day — on ws itself the window has not yet begun before its start
	// time).
	if ws < w && w <= we && t.lessOrEqual(high) {
		return true
	}
	return false
}

func parseClock(hh, mm string) (clock, error) {
	h, err := strconv.Atoi(hh)
	if err != nil || h > 23 {
		return clock{}, errs.New(errs.UserInput, fmt.Errorf("invalid hour %q", hh))
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m > 59 {
		return clock{}, errs.New(errs.UserInput, fmt.Errorf("invalid minute %q", mm))
	}
	return clock{hour: h, min: m}, nil
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	for i := 1; i < len(b); i++ {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}
