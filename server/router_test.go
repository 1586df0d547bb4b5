package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"airbnb-stats/models"
	"airbnb-stats/services"
	"airbnb-stats/utils"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	d := services.NewDashboard(utils.NewLoggerTo(utils.LevelError, io.Discard))
	err := d.Load([]*models.Listing{
		{HostID: "1", Neighbourhood: "Camden", RoomType: models.RoomPrivate, Price: 100, MinimumNights: 1, NumberOfReviews: 5},
		{HostID: "2", Neighbourhood: "Camden", RoomType: models.RoomShared, Price: 50, MinimumNights: 2, NumberOfReviews: 10},
		{HostID: "3", Neighbourhood: "Barnet", RoomType: models.RoomEntireHome, Price: 400, MinimumNights: 1, NumberOfReviews: 1},
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return NewRouter(d)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeView(t *testing.T, rec *httptest.ResponseRecorder) services.DashboardView {
	t.Helper()
	var view services.DashboardView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return view
}

func TestHealthz(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestListBoroughs(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/api/boroughs", "")
	var body struct {
		Boroughs []string `json:"boroughs"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if strings.Join(body.Boroughs, ",") != "All,Barnet,Camden" {
		t.Errorf("boroughs = %v", body.Boroughs)
	}
}

func TestPriceOptions(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/api/price-options", "")
	var body struct {
		Min []string `json:"min"`
		Max []string `json:"max"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Min) != 10 || body.Min[0] != "£0" || body.Max[len(body.Max)-1] != "£10000" {
		t.Errorf("options = %+v", body)
	}
}

func TestDashboardFlow(t *testing.T) {
	r := newTestRouter(t)

	view := decodeView(t, do(t, r, http.MethodGet, "/api/dashboard", ""))
	if view.Borough != "All" || view.Slots[0].Value != "0" {
		t.Errorf("initial view = %+v", view)
	}

	rec := do(t, r, http.MethodPut, "/api/price-range", `{"min":"£0","max":"£1000"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("price-range status = %d: %s", rec.Code, rec.Body.String())
	}
	view = decodeView(t, rec)
	if view.Range == nil || view.Range.Min != 0 || view.Range.Max != 1000 {
		t.Errorf("range = %+v", view.Range)
	}
	if view.Slots[1].Value != "3" || view.Slots[3].Value != "Barnet" {
		t.Errorf("slots = %+v", view.Slots)
	}

	rec = do(t, r, http.MethodPut, "/api/borough", `{"borough":"Camden"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("borough status = %d: %s", rec.Code, rec.Body.String())
	}
	view = decodeView(t, rec)
	if view.Borough != "Camden" || view.Slots[0].Value != "7" || view.Slots[1].Value != "2" {
		t.Errorf("Camden slots = %+v", view.Slots)
	}

	rec = do(t, r, http.MethodPost, "/api/slots/0/cycle?direction=backward", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("cycle status = %d: %s", rec.Code, rec.Body.String())
	}
	view = decodeView(t, rec)
	if view.Slots[0].Metric != services.MetricTopHost || view.Slots[0].Value != "2" {
		t.Errorf("slot 0 = %+v, want most popular host 2", view.Slots[0])
	}
}

func TestDashboardErrors(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"inverted range", http.MethodPut, "/api/price-range", `{"min":"£500","max":"£100"}`, http.StatusBadRequest},
		{"bad price", http.MethodPut, "/api/price-range", `{"min":"cheap","max":"£100"}`, http.StatusBadRequest},
		{"missing max", http.MethodPut, "/api/price-range", `{"min":"£0"}`, http.StatusBadRequest},
		{"unknown borough", http.MethodPut, "/api/borough", `{"borough":"Atlantis"}`, http.StatusNotFound},
		{"empty borough", http.MethodPut, "/api/borough", `{}`, http.StatusBadRequest},
		{"slot out of range", http.MethodPost, "/api/slots/4/cycle", "", http.StatusBadRequest},
		{"slot not a number", http.MethodPost, "/api/slots/x/cycle", "", http.StatusBadRequest},
		{"bad direction", http.MethodPost, "/api/slots/0/cycle?direction=up", "", http.StatusBadRequest},
	}
	r := newTestRouter(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, r, tt.method, tt.path, tt.body)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d: %s", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

func TestExportStatistics(t *testing.T) {
	r := newTestRouter(t)
	if rec := do(t, r, http.MethodPut, "/api/price-range", `{"min":"0","max":"1000"}`); rec.Code != http.StatusOK {
		t.Fatalf("price-range status = %d", rec.Code)
	}

	rec := do(t, r, http.MethodGet, "/api/statistics/export", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("content type = %q", ct)
	}
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	if len(lines) != 4 || !strings.HasPrefix(lines[0], "borough,count") || !strings.HasPrefix(lines[3], "Camden,2,7,") {
		t.Errorf("export = %q", rec.Body.String())
	}
}
