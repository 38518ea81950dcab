package signal

import (
	"context"
	"daypulse/internal/model/entity"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
)

type fakeSignalDao struct {
	recent   []entity.Signal
	ranged   []entity.Signal
	gotLimit int
	gotCode  string
}

func (f *fakeSignalDao) SaveSignal(_ context.Context, _ *entity.Signal) error { return nil }

func (f *fakeSignalDao) GetRecentSignals(_ context.Context, code string, limit int) ([]entity.Signal, error) {
	f.gotCode = code
	f.gotLimit = limit
	return f.recent, nil
}

func (f *fakeSignalDao) GetSignalsByTimeRange(_ context.Context, code string, _, _ time.Time) ([]entity.Signal, error) {
	f.gotCode = code
	return f.ranged, nil
}

type apiEnvelope struct {
	Code int             `json:"code"`
	Data []entity.Signal `json:"data"`
}

func doHistory(t *testing.T, dao *fakeSignalDao, query string) (*httptest.ResponseRecorder, apiEnvelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	g := gin.New()
	var h *SignalHandler
	if dao != nil {
		h = NewSignalHandler(nil, dao)
	} else {
		h = NewSignalHandler(nil, nil)
	}
	g.GET("/history", h.SignalHistoryGet())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/history"+query, nil)
	g.ServeHTTP(w, req)

	var resp apiEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	return w, resp
}

func TestSignalHistoryRecent(t *testing.T) {
	dao := &fakeSignalDao{recent: []entity.Signal{
		{Code: "600586", Action: "strong_buy", Price: 9.36, Score: 75},
		{Code: "600586", Action: "strong_buy", Price: 9.40, Score: 72},
	}}

	// 不带start/end走最近N条查询
	w, resp := doHistory(t, dao, "?code=600586")
	if w.Code != http.StatusOK || resp.Code != 0 {
		t.Fatalf("status = (%d,%d)", w.Code, resp.Code)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("rows = %d, want 2", len(resp.Data))
	}
	if dao.gotCode != "600586" || dao.gotLimit != 20 {
		t.Fatalf("dao called with (%s,%d), want (600586,20)", dao.gotCode, dao.gotLimit)
	}
}

func TestSignalHistoryTimeRange(t *testing.T) {
	dao := &fakeSignalDao{ranged: []entity.Signal{
		{Code: "600586", Action: "strong_buy", Price: 9.36, Score: 75},
	}}

	w, resp := doHistory(t, dao,
		"?code=600586&start=2026-08-31+09%3A30%3A00&end=2026-08-31+15%3A00%3A00")
	if w.Code != http.StatusOK || resp.Code != 0 {
		t.Fatalf("status = (%d,%d)", w.Code, resp.Code)
	}
	if len(resp.Data) != 1 {
		t.Fatalf("rows = %d, want 1", len(resp.Data))
	}
}

func TestSignalHistoryBadRequest(t *testing.T) {
	dao := &fakeSignalDao{}

	if w, resp := doHistory(t, dao, ""); w.Code != http.StatusBadRequest || resp.Code == 0 {
		t.Fatalf("missing code: status = (%d,%d)", w.Code, resp.Code)
	}
	if w, resp := doHistory(t, dao, "?code=600586&start=bad&end=bad"); w.Code != http.StatusBadRequest || resp.Code == 0 {
		t.Fatalf("bad time: status = (%d,%d)", w.Code, resp.Code)
	}
	// 未启用落库
	if w, resp := doHistory(t, nil, "?code=600586"); w.Code != http.StatusBadRequest || resp.Code == 0 {
		t.Fatalf("dao disabled: status = (%d,%d)", w.Code, resp.Code)
	}
}
