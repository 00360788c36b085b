package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goldboard/internal/dataset"
	"goldboard/internal/model"
	"goldboard/internal/parser"
	"goldboard/internal/session"
)

const fixture = `ngay,masp,tensp,giamua,giaban
03-01-2024,SJC,SJC Gold,75200000,76300000
03-01-2024,N24K,24K Ring,74100000,74900000
02-01-2024,SJC,SJC Gold,75000000,76000000
02-01-2024,N24K,24K Ring,74000000,74800000
01-01-2024,SJC,SJC Gold,74500000,75500000
`

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	ds := dataset.FromRecords(parser.Parse(fixture))
	s, err := session.New(ds)
	require.NoError(t, err)
	return SetupRoutes(NewHandler(s))
}

func doJSON(t *testing.T, router http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestGetDashboard(t *testing.T) {
	router := newRouter(t)

	rr := doJSON(t, router, http.MethodGet, "/api/v1/dashboard", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var view model.View
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	assert.Equal(t, model.Date{Day: 3, Month: 1, Year: 2024}, view.Date)
	assert.Len(t, view.Records, 2)
	require.NotNil(t, view.Summary)
	assert.Equal(t, "SJC", view.Summary.MaxSell.ProductCode)
}

func TestGetDashboard_Filter(t *testing.T) {
	router := newRouter(t)

	rr := doJSON(t, router, http.MethodGet, "/api/v1/dashboard?q=ring", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var view model.View
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	require.Len(t, view.Records, 1)
	assert.Equal(t, "N24K", view.Records[0].ProductCode)
	// Aggregates stay computed over the full day.
	assert.Len(t, view.TopBySell, 2)
}

func TestSelectDate(t *testing.T) {
	router := newRouter(t)

	t.Run("exact date", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPost, "/api/v1/dashboard/date",
			map[string]string{"date": "02-01-2024"})
		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Requested model.Date `json:"requested"`
			Resolved  model.Date `json:"resolved"`
			Exact     bool       `json:"exact"`
			View      model.View `json:"view"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Exact)
		assert.Equal(t, model.Date{Day: 2, Month: 1, Year: 2024}, resp.Resolved)
		assert.Equal(t, resp.Resolved, resp.View.Date)
	})

	t.Run("date without data resolves to the nearest", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPost, "/api/v1/dashboard/date",
			map[string]string{"date": "20-01-2024"})
		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Resolved model.Date `json:"resolved"`
			Exact    bool       `json:"exact"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.False(t, resp.Exact)
		assert.Equal(t, model.Date{Day: 3, Month: 1, Year: 2024}, resp.Resolved)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/dashboard/date",
			bytes.NewBufferString("{not json"))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("missing date", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPost, "/api/v1/dashboard/date",
			map[string]string{})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestNextPrevious(t *testing.T) {
	router := newRouter(t)

	var resp struct {
		Moved bool       `json:"moved"`
		View  model.View `json:"view"`
	}

	rr := doJSON(t, router, http.MethodPost, "/api/v1/dashboard/next", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Moved)
	assert.Equal(t, model.Date{Day: 2, Month: 1, Year: 2024}, resp.View.Date)

	rr = doJSON(t, router, http.MethodPost, "/api/v1/dashboard/previous", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Moved)
	assert.Equal(t, model.Date{Day: 3, Month: 1, Year: 2024}, resp.View.Date)

	t.Run("boundary no-op still returns the view", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPost, "/api/v1/dashboard/previous", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.False(t, resp.Moved)
		assert.Equal(t, model.Date{Day: 3, Month: 1, Year: 2024}, resp.View.Date)
	})
}

func TestExport(t *testing.T) {
	router := newRouter(t)

	rr := doJSON(t, router, http.MethodGet, "/api/v1/dashboard/export", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "gold-prices-03-01-2024.xlsx")
	assert.NotZero(t, rr.Body.Len())
}

func TestHealthCheck(t *testing.T) {
	router := newRouter(t)

	rr := doJSON(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}
