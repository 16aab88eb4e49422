package calendar

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/banbox/cndata/errs"
)

func testCal(t *testing.T) *TradingCalendar {
	cal, err := New([]string{"20230727", "20230728", "20230731", "20230801", "20230726"})
	if err != nil {
		t.Fatal(err)
	}
	return cal
}

func TestNextPre(t *testing.T) {
	cal := testCal(t)
	cases := []struct {
		day, next, pre string
	}{
		{"20230728", "20230731", "20230727"},
		{"20230731", "20230801", "20230728"},
	}
	for _, c := range cases {
		next, err := cal.Next(c.day)
		if err != nil || next != c.next {
			t.Errorf("Next(%s) = %s, %v", c.day, next, err)
		}
		pre, err := cal.Pre(c.day)
		if err != nil || pre != c.pre {
			t.Errorf("Pre(%s) = %s, %v", c.day, pre, err)
		}
	}
	if _, err := cal.Next("20230729"); err == nil || err.Code != errs.CodeUnknownDay {
		t.Errorf("unlisted day should fail with UnknownDay, got %v", err)
	}
	if _, err := cal.Pre("20230726"); err == nil {
		t.Errorf("first day has no previous")
	}
}

func TestMonthWeekEnd(t *testing.T) {
	cal := testCal(t)
	isEnd, err := cal.IsMonthEnd("20230731")
	if err != nil || !isEnd {
		t.Errorf("20230731 should be month end")
	}
	isEnd, _ = cal.IsMonthEnd("20230728")
	if isEnd {
		t.Errorf("20230728 is not month end")
	}
	end, err := cal.MonthEnd("20230726")
	if err != nil || end != "20230731" {
		t.Errorf("MonthEnd = %s, %v", end, err)
	}
	isEnd, _ = cal.IsWeekEnd("20230728")
	if !isEnd {
		t.Errorf("friday before a monday session should be week end")
	}
	isEnd, _ = cal.IsWeekEnd("20230727")
	if isEnd {
		t.Errorf("thursday is not week end")
	}
	if ok, _ := cal.IsMonthEnd("20230801"); !ok {
		t.Errorf("last listed day counts as month end")
	}
}

func TestNatural(t *testing.T) {
	cal, err := NewNatural("20230727", "20230802")
	if err != nil {
		t.Fatal(err)
	}
	if len(cal.Days()) != 7 {
		t.Errorf("expect 7 days, got %d", len(cal.Days()))
	}
	next, _ := cal.Next("20230731")
	if next != "20230801" {
		t.Errorf("natural next = %s", next)
	}
	wd, _ := cal.IsWeekday("20230729")
	if wd {
		t.Errorf("20230729 is saturday")
	}
	if got := cal.Between("20230728", "20230730"); len(got) != 3 {
		t.Errorf("Between = %v", got)
	}
	big, err := NewNaturalTo(2023)
	if err != nil {
		t.Fatal(err)
	}
	if !big.Contains("19900101") || !big.Contains("20281231") || big.Contains("20290101") {
		t.Errorf("natural range wrong")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "days.txt")
	if err := os.WriteFile(path, []byte("20230728\n\n2023-07-31\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cal, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	pre, err := cal.Pre("20230731")
	if err != nil || pre != "20230728" {
		t.Errorf("Pre = %s, %v", pre, err)
	}
}
