package services

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestDashboardView(t *testing.T) {
	d := NewDashboard(quietLogger())
	if err := d.Load(camdenListings()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	view := d.View()
	if view.Borough != "All" || view.Range != nil {
		t.Errorf("initial view = %+v", view)
	}
	for i, s := range view.Slots {
		if s.Metric != i || s.Name != MetricNames[i] || s.Value != "0" {
			t.Errorf("slot %d = %+v", i, s)
		}
	}

	view, err := d.SetPriceRange(0, 1000)
	if err != nil {
		t.Fatalf("SetPriceRange: %v", err)
	}
	if view.Range == nil || view.Range.Max != 1000 {
		t.Errorf("range = %+v", view.Range)
	}

	view, err = d.Cycle(3, Forward)
	if err != nil {
		t.Fatalf("Cycle: %v", err)
	}
	last := view.Slots[3]
	if last.Metric != MetricAvgPrice || last.Value != "£100" {
		t.Errorf("slot 3 = %+v, want average price £100", last)
	}

	view, err = d.SelectBorough("Camden")
	if err != nil {
		t.Fatalf("SelectBorough: %v", err)
	}
	if view.Borough != "Camden" || view.Slots[1].Value != "2" {
		t.Errorf("Camden view = %+v", view)
	}

	if _, err := d.SelectBorough("Nowhere"); !errors.Is(err, ErrUnknownBorough) {
		t.Errorf("err = %v, want ErrUnknownBorough", err)
	}
	if _, err := d.Cycle(7, Forward); !errors.Is(err, ErrInvalidSlot) {
		t.Errorf("err = %v, want ErrInvalidSlot", err)
	}
}

func TestDashboardConcurrentUse(t *testing.T) {
	d := NewDashboard(quietLogger())
	if err := d.Load(camdenListings()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, _ = d.SetPriceRange(0, 100*(j%12))
				_, _ = d.Cycle(i%SlotCount, Forward)
				_, _ = d.SelectBorough(d.Boroughs()[j%2])
				_ = d.View()
			}
		}(i)
	}
	wg.Wait()

	seen := map[int]bool{}
	for _, s := range d.View().Slots {
		if seen[s.Metric] {
			t.Fatalf("duplicate metric %d in %+v", s.Metric, d.View().Slots)
		}
		seen[s.Metric] = true
	}
}

func TestPrintStatisticsReport(t *testing.T) {
	d := NewDashboard(quietLogger())
	if err := d.Load(camdenListings()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	view, err := d.SetPriceRange(0, 1000)
	if err != nil {
		t.Fatalf("SetPriceRange: %v", err)
	}

	var buf bytes.Buffer
	PrintStatisticsReport(&buf, view, d.Table())
	out := buf.String()

	for _, want := range []string{"LONDON PROPERTY STATISTICS", "£0 to £1000", MetricNames[0], "Camden", "Most expensive borough: All"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
