package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

func TestRecordAdvance(t *testing.T) {
	items := []domain.Item{
		domain.NewItem("foo", -1, 3),
		domain.NewItem("Aged Brie", 4, 10),
		domain.NewItem("Conjured Mana Cake", -3, 0),
		domain.NewItem(domain.NameSulfuras, -1, 80),
	}

	daysBefore := testutil.ToFloat64(DaysAdvanced)
	ordinaryBefore := testutil.ToFloat64(ItemsUpdated.WithLabelValues(domain.CategoryLabelOrdinary))
	legendaryBefore := testutil.ToFloat64(ItemsUpdated.WithLabelValues(domain.CategoryLabelLegendary))

	RecordAdvance(2, 7, items)

	assert.Equal(t, daysBefore+2, testutil.ToFloat64(DaysAdvanced))
	assert.Equal(t, float64(7), testutil.ToFloat64(CurrentDay))
	assert.Equal(t, float64(3), testutil.ToFloat64(ItemsPastSellIn))
	assert.Equal(t, ordinaryBefore+2, testutil.ToFloat64(ItemsUpdated.WithLabelValues(domain.CategoryLabelOrdinary)))
	assert.Equal(t, legendaryBefore, testutil.ToFloat64(ItemsUpdated.WithLabelValues(domain.CategoryLabelLegendary)),
		"legendary items are never updated")
}

func TestRecordStocked(t *testing.T) {
	before := testutil.ToFloat64(ItemsStocked.WithLabelValues(domain.CategoryLabelLegendary))

	RecordStocked(domain.CategoryLegendary)

	assert.Equal(t, before+1, testutil.ToFloat64(ItemsStocked.WithLabelValues(domain.CategoryLabelLegendary)))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/api/v1/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/items/{id}", "418"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/items/42", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/items/{id}", "418")))
	assert.Equal(t, float64(0), testutil.ToFloat64(HTTPRequestsInFlight))
}
