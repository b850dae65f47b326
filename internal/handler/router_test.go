package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"foodtruck-api/internal/models"
	"foodtruck-api/internal/service"
	"foodtruck-api/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T, swagger bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	approved := time.Date(2021, 11, 5, 0, 0, 0, 0, time.UTC)
	st := store.New()
	ok, err := st.InsertAll([]*models.FoodTruck{
		{
			LocationID:   1,
			Applicant:    "Treats by the Bay LLC",
			FacilityType: "Truck",
			Block:        "0311",
			Status:       "APPROVED",
			Approved:     &approved,
			Location:     &models.Location{Latitude: "37.78", Longitude: "-122.39"},
		},
		{
			LocationID:   2,
			Applicant:    "Natan's Catering",
			FacilityType: "Push Cart",
			PriorPermit:  1,
		},
	})
	require.NoError(t, err)
	require.True(t, ok)

	svc := service.NewFoodTruckService(st, zerolog.Nop())
	return NewRouter(RouterConfig{APIVersion: "1", SwaggerEnabled: swagger}, svc, zerolog.Nop())
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_ListFoodTrucks(t *testing.T) {
	r := setupRouter(t, false)

	w := serve(r, http.MethodGet, "/v1/foodtruck", "")

	require.Equal(t, http.StatusOK, w.Code)
	var trucks []models.FoodTruck
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &trucks))

	g := goldie.New(t)
	g.AssertJson(t, "list_foodtrucks", trucks)
}

func TestRouter_Routes(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
		expectedIDs    []int64
	}{
		{name: "by locationId", method: http.MethodGet, path: "/v1/foodtruck/locationId/1", expectedStatus: http.StatusOK, expectedIDs: []int64{1}},
		{name: "unknown locationId", method: http.MethodGet, path: "/v1/foodtruck/locationId/3", expectedStatus: http.StatusNotFound},
		{name: "out of range locationId", method: http.MethodGet, path: "/v1/foodtruck/locationId/1000000001", expectedStatus: http.StatusNotFound},
		{name: "malformed locationId", method: http.MethodGet, path: "/v1/foodtruck/locationId/one", expectedStatus: http.StatusBadRequest},
		{name: "by block", method: http.MethodGet, path: "/v1/foodtruck/block/0311", expectedStatus: http.StatusOK, expectedIDs: []int64{1}},
		{name: "default block", method: http.MethodGet, path: "/v1/foodtruck/block/0000", expectedStatus: http.StatusOK, expectedIDs: []int64{2}},
		{name: "unknown block", method: http.MethodGet, path: "/v1/foodtruck/block/9999", expectedStatus: http.StatusNotFound},
		{name: "unknown version", method: http.MethodGet, path: "/v2/foodtruck", expectedStatus: http.StatusNotFound},
		{name: "duplicate insert", method: http.MethodPost, path: "/v1/foodtruck", body: `{"locationId": 1, "applicant": "Again"}`, expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(t, false)

			w := serve(r, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedIDs == nil {
				return
			}

			var ids []int64
			if strings.Contains(tt.path, "/block/") {
				var trucks []models.FoodTruck
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &trucks))
				for _, ft := range trucks {
					ids = append(ids, ft.LocationID)
				}
			} else {
				var ft models.FoodTruck
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ft))
				ids = append(ids, ft.LocationID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestRouter_AddThenQuery(t *testing.T) {
	r := setupRouter(t, false)

	w := serve(r, http.MethodPost, "/v1/foodtruck", `{"locationId": 500, "applicant": "Fresh Truck", "block": "0500"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/v1/foodtruck/locationId/500", w.Header().Get("Location"))

	w = serve(r, http.MethodGet, "/v1/foodtruck/block/0500", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"applicant":"Fresh Truck"`)

	w = serve(r, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok", "records": 3}`, w.Body.String())
}

func TestRouter_Swagger(t *testing.T) {
	tests := []struct {
		name           string
		enabled        bool
		expectedStatus int
	}{
		{name: "enabled", enabled: true, expectedStatus: http.StatusOK},
		{name: "disabled", enabled: false, expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(t, tt.enabled)

			w := serve(r, http.MethodGet, "/swagger/doc.json", "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.enabled {
				var doc map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
				assert.Equal(t, "/v1", doc["basePath"])
				assert.Contains(t, doc["paths"], "/foodtruck/block/{block}")
			}
		})
	}
}
