package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/outreachlab/campaign-manager-backend/internal/database"
	"github.com/outreachlab/campaign-manager-backend/internal/router"
	"github.com/outreachlab/campaign-manager-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return router.SetupRouter(db, services.NewMessageService(nil))
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if w.Body.Len() > 0 && strings.Contains(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func TestLivenessProbe(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "API is running...", w.Body.String())
}

func TestConnectivityProbe(t *testing.T) {
	r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodGet, "/test", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
}

func TestCreateCampaignEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/campaigns", map[string]interface{}{
		"name":        "Q3 outreach",
		"description": "Founders",
		"status":      "ACTIVE",
		"leads":       []string{"", "  ", "https://x"},
		"accountIDs":  []string{"507f1f77bcf86cd799439011", "junk"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "active", data["status"])
	assert.Equal(t, []interface{}{"https://x"}, data["leads"])
	assert.Equal(t, []interface{}{"507f1f77bcf86cd799439011"}, data["accountIDs"])
	assert.NotEmpty(t, data["id"])
}

func TestCreateCampaignAcceptsStringEncodedAccountIDs(t *testing.T) {
	r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/campaigns", map[string]interface{}{
		"name":        "Double encoded",
		"description": "Clients do this",
		"accountIDs":  `["507f1f77bcf86cd799439011"]`,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, []interface{}{"507f1f77bcf86cd799439011"}, data["accountIDs"])
}

func TestCreateCampaignUnparsableAccountIDStringBecomesEmpty(t *testing.T) {
	r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/campaigns", map[string]interface{}{
		"name":        "Broken encoding",
		"description": "Treated as empty",
		"accountIDs":  "not json at all",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, []interface{}{}, data["accountIDs"])
}

func TestCreateCampaignValidationFailure(t *testing.T) {
	r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/campaigns", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "required")
}

func TestCampaignLifecycleOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	_, created := doJSON(t, r, http.MethodPost, "/campaigns", map[string]interface{}{
		"name":        "Lifecycle",
		"description": "Create, read, update, soft-delete",
	})
	id := created["data"].(map[string]interface{})["id"].(string)

	// List includes it
	w, body := doJSON(t, r, http.MethodGet, "/campaigns", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["data"].([]interface{}), 1)

	// Update status
	w, body = doJSON(t, r, http.MethodPut, "/campaigns/"+id, map[string]interface{}{
		"status": "Inactive",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "inactive", body["data"].(map[string]interface{})["status"])

	// Soft delete
	w, body = doJSON(t, r, http.MethodDelete, "/campaigns/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Empty(t, body["data"])

	// Gone from the public read paths
	w, _ = doJSON(t, r, http.MethodGet, "/campaigns/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, body = doJSON(t, r, http.MethodGet, "/campaigns", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, body["data"].([]interface{}))
}

func TestUpdateCampaignRejectsBadStatus(t *testing.T) {
	r := newTestRouter(t)

	_, created := doJSON(t, r, http.MethodPost, "/campaigns", map[string]interface{}{
		"name":        "Status",
		"description": "Bad update",
	})
	id := created["data"].(map[string]interface{})["id"].(string)

	w, body := doJSON(t, r, http.MethodPut, "/campaigns/"+id, map[string]interface{}{
		"status": "archived",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body["error"], "Status must be one of")
}

func TestCampaignNotFoundResponses(t *testing.T) {
	r := newTestRouter(t)
	unknown := "/campaigns/ffffffff-ffff-ffff-ffff-ffffffffffff"

	w, body := doJSON(t, r, http.MethodGet, unknown, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Campaign not found", body["error"])

	w, _ = doJSON(t, r, http.MethodPut, unknown, map[string]interface{}{"name": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doJSON(t, r, http.MethodDelete, unknown, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfileEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/profiles", map[string]interface{}{
		"name":       "Ana Silva",
		"jobTitle":   "CTO",
		"company":    "Acme",
		"location":   "Berlin",
		"profileUrl": "https://linkedin.com/in/ana",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := body["data"].(map[string]interface{})["id"].(string)

	// Duplicate URL conflicts
	w, body = doJSON(t, r, http.MethodPost, "/profiles", map[string]interface{}{
		"name":       "Ana again",
		"jobTitle":   "CEO",
		"company":    "Other",
		"profileUrl": "https://linkedin.com/in/ana",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body["error"], "already exists")

	// Search carries a count
	w, body = doJSON(t, r, http.MethodGet, "/profiles?search=acme", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["count"])
	assert.Len(t, body["data"].([]interface{}), 1)

	// Detail lookup
	w, body = doJSON(t, r, http.MethodGet, "/profiles/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ana Silva", body["data"].(map[string]interface{})["name"])

	// Physical delete
	w, _ = doJSON(t, r, http.MethodDelete, "/profiles/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, "/profiles/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfileValidationFailure(t *testing.T) {
	r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/profiles", map[string]interface{}{
		"name": "Ana",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body["error"], "profile URL")
}

func TestGenerateMessageEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/messages/generate", map[string]interface{}{
		"name":      "Ana",
		"job_title": "CTO",
		"company":   "Acme",
		"location":  "Berlin",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])

	message := body["message"].(string)
	for _, want := range []string{"Ana", "CTO", "Acme", "Berlin"} {
		assert.Contains(t, message, want)
	}
}

func TestGenerateMessageMissingFields(t *testing.T) {
	r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/messages/generate", map[string]interface{}{
		"name":      "Ana",
		"job_title": "CTO",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "required")
}

func TestCampaignExportEndpoint(t *testing.T) {
	r := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/campaigns", map[string]interface{}{
		"name":        "Exported",
		"description": "Shows up in the sheet",
	})

	w, _ := doJSON(t, r, http.MethodGet, "/campaigns/export", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	assert.NotZero(t, w.Body.Len())
}

func TestProfileExportEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodGet, "/profiles/export", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	assert.NotZero(t, w.Body.Len())
}
