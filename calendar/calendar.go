package calendar

import (
	"sort"
	"time"

	"github.com/banbox/cndata/errs"
	"github.com/banbox/cndata/utils"
)

const dayLayout = "20060102"

/*
TradingCalendar answers trading-day arithmetic over a fixed sorted list of YYYYMMDD days.
Querying a day outside the list is an error. read only after construction.
*/
type TradingCalendar struct {
	days  []string
	index map[string]int
}

func New(days []string) (*TradingCalendar, *errs.Error) {
	items := make([]string, 0, len(days))
	seen := make(map[string]bool, len(days))
	for _, d := range days {
		day, err := utils.CompactDate(d)
		if err != nil {
			return nil, errs.New(errs.CodeParamInvalid, err)
		}
		if seen[day] {
			continue
		}
		seen[day] = true
		items = append(items, day)
	}
	sort.Strings(items)
	cal := &TradingCalendar{days: items, index: make(map[string]int, len(items))}
	for i, d := range items {
		cal.index[d] = i
	}
	return cal, nil
}

// Load read one day per line
func Load(path string) (*TradingCalendar, *errs.Error) {
	lines, err := utils.ReadLines(path)
	if err != nil {
		return nil, errs.New(errs.CodeIOReadFail, err)
	}
	return New(lines)
}

/*
NewNatural every calendar day from start to end, both included
*/
func NewNatural(start, end string) (*TradingCalendar, *errs.Error) {
	st, err := time.Parse(dayLayout, start)
	if err != nil {
		return nil, errs.New(errs.CodeParamInvalid, err)
	}
	ed, err := time.Parse(dayLayout, end)
	if err != nil {
		return nil, errs.New(errs.CodeParamInvalid, err)
	}
	var days []string
	for cur := st; !cur.After(ed); cur = cur.AddDate(0, 0, 1) {
		days = append(days, cur.Format(dayLayout))
	}
	return New(days)
}

/*
NewNaturalTo natural days from 1990-01-01 through the end of year+5
*/
func NewNaturalTo(year int) (*TradingCalendar, *errs.Error) {
	end := time.Date(year+5, 12, 31, 0, 0, 0, 0, time.UTC)
	return NewNatural("19900101", end.Format(dayLayout))
}

func (c *TradingCalendar) pos(day string) (int, *errs.Error) {
	idx, ok := c.index[day]
	if !ok {
		return 0, errs.NewMsg(errs.CodeUnknownDay, "day not in calendar: %s", day)
	}
	return idx, nil
}

func (c *TradingCalendar) Days() []string {
	return c.days
}

func (c *TradingCalendar) Contains(day string) bool {
	_, ok := c.index[day]
	return ok
}

// Offset the day n sessions away; n may be negative
func (c *TradingCalendar) Offset(day string, n int) (string, *errs.Error) {
	idx, err := c.pos(day)
	if err != nil {
		return "", err
	}
	to := idx + n
	if to < 0 || to >= len(c.days) {
		return "", errs.NewMsg(errs.CodeUnknownDay, "offset %d from %s out of calendar", n, day)
	}
	return c.days[to], nil
}

func (c *TradingCalendar) Next(day string) (string, *errs.Error) {
	return c.Offset(day, 1)
}

func (c *TradingCalendar) Pre(day string) (string, *errs.Error) {
	return c.Offset(day, -1)
}

// IsMonthEnd whether day is the last session of its month
func (c *TradingCalendar) IsMonthEnd(day string) (bool, *errs.Error) {
	next, err := c.Next(day)
	if err != nil {
		if err.Code == errs.CodeUnknownDay && c.Contains(day) {
			return true, nil
		}
		return false, err
	}
	return next[:6] != day[:6], nil
}

// MonthEnd last session of the month holding day
func (c *TradingCalendar) MonthEnd(day string) (string, *errs.Error) {
	idx, err := c.pos(day)
	if err != nil {
		return "", err
	}
	month := day[:6]
	for idx+1 < len(c.days) && c.days[idx+1][:6] == month {
		idx += 1
	}
	return c.days[idx], nil
}

/*
IsWeekEnd whether day is the last session of its ISO week
*/
func (c *TradingCalendar) IsWeekEnd(day string) (bool, *errs.Error) {
	next, err := c.Next(day)
	if err != nil {
		if err.Code == errs.CodeUnknownDay && c.Contains(day) {
			return true, nil
		}
		return false, err
	}
	y1, w1 := mustTime(day).ISOWeek()
	y2, w2 := mustTime(next).ISOWeek()
	return y1 != y2 || w1 != w2, nil
}

// Weekday day of week of a listed day, 0 is Sunday
func (c *TradingCalendar) Weekday(day string) (time.Weekday, *errs.Error) {
	if _, err := c.pos(day); err != nil {
		return 0, err
	}
	return mustTime(day).Weekday(), nil
}

// IsWeekday monday to friday
func (c *TradingCalendar) IsWeekday(day string) (bool, *errs.Error) {
	wd, err := c.Weekday(day)
	if err != nil {
		return false, err
	}
	return wd != time.Saturday && wd != time.Sunday, nil
}

// Between listed days in [start, end]
func (c *TradingCalendar) Between(start, end string) []string {
	lo := sort.SearchStrings(c.days, start)
	hi := sort.SearchStrings(c.days, end)
	if hi < len(c.days) && c.days[hi] == end {
		hi += 1
	}
	if lo >= hi {
		return nil
	}
	return c.days[lo:hi]
}

func mustTime(day string) time.Time {
	t, _ := time.Parse(dayLayout, day)
	return t
}
