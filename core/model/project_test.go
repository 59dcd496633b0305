package model

import (
	"testing"
	"time"

	"github.com/mgillet/paceplan/core/calendar"
)

func TestProject_SlotsRemaining(t *testing.T) {
	cases := []struct {
		days float64
		want int
	}{
		{0, 0},
		{0.5, 0},
		{1, 1},
		{14.9, 14},
		{-3, 0},
	}
	for _, c := range cases {
		p := Project{Name: "x", RemainingDays: c.days}
		if got := p.SlotsRemaining(); got != c.want {
			t.Errorf("remaining %v: got %d, want %d", c.days, got, c.want)
		}
	}
}

func TestProject_EffectiveStart(t *testing.T) {
	fallback := calendar.Date(2025, time.June, 2)
	p := Project{Name: "x"}
	if got := p.EffectiveStart(fallback); !got.Equal(fallback) {
		t.Fatalf("zero start: got %v, want fallback", got)
	}
	p.StartDate = calendar.Date(2025, time.July, 1)
	if got := p.EffectiveStart(fallback); !got.Equal(p.StartDate) {
		t.Fatalf("explicit start: got %v", got)
	}
}

func TestProject_Validate(t *testing.T) {
	end := calendar.Date(2025, time.December, 31)
	ok := Project{Name: "a", EndDate: end, RemainingDays: 5}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid project rejected: %v", err)
	}

	neg := Project{Name: "a", EndDate: end, RemainingDays: -1}
	if err := neg.Validate(); err == nil {
		t.Fatal("negative budget accepted")
	}

	inverted := Project{
		Name:          "a",
		EndDate:       calendar.Date(2025, time.January, 1),
		StartDate:     calendar.Date(2025, time.June, 1),
		RemainingDays: 1,
	}
	if err := inverted.Validate(); err == nil {
		t.Fatal("end before start accepted")
	}

	unnamed := Project{EndDate: end}
	if err := unnamed.Validate(); err == nil {
		t.Fatal("empty name accepted")
	}
}
