package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentreach/outreach-backend-go/internal/domain/hr"
	"github.com/talentreach/outreach-backend-go/internal/pkg/outreach"
)

func postRecord(t *testing.T, router http.Handler, token string, payload hr.CreateRecordRequest) (int, hr.RecordResponse) {
	t.Helper()
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/hr", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var created hr.RecordResponse
	if rec.Code == http.StatusCreated {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	}
	return rec.Code, created
}

func TestRecordHandler_Create_Success(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	truncateHandlerTables(t, ctx)

	router := createTestRouter()
	token := loginForToken(t, router)

	code, created := postRecord(t, router, token, hr.CreateRecordRequest{
		CompanyName: "Acme Corp",
		HRName:      "Jane Doe",
		HREmail:     "JANE@ACME.COM",
	})

	assert.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "jane@acme.com", created.HREmail)
	assert.Equal(t, "Acme Corp", created.Company.Name)
	assert.True(t, created.Active)
}

func TestRecordHandler_Create_ValidationError(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	truncateHandlerTables(t, ctx)

	router := createTestRouter()
	token := loginForToken(t, router)

	code, _ := postRecord(t, router, token, hr.CreateRecordRequest{
		CompanyName: "Acme Corp",
		HRName:      "Jane Doe",
		HREmail:     "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestRecordHandler_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	truncateHandlerTables(t, ctx)

	router := createTestRouter()
	token := loginForToken(t, router)

	body := []byte(`{"hrName":"New Name"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/hr/018f0000-0000-7000-8000-000000000000", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecordHandler_MalformedID(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	truncateHandlerTables(t, ctx)

	router := createTestRouter()
	token := loginForToken(t, router)

	// A malformed id is indistinguishable from a missing record and must
	// never reach the database.
	requests := []*http.Request{
		httptest.NewRequest(http.MethodPut, "/api/hr/not-a-uuid", bytes.NewReader([]byte(`{"hrName":"X"}`))),
		httptest.NewRequest(http.MethodPatch, "/api/hr/not-a-uuid/active", nil),
		httptest.NewRequest(http.MethodGet, "/api/hr/not-a-uuid/draft?name=J&phone=1&resumeLink=l", nil),
	}
	for _, req := range requests {
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code, "%s %s", req.Method, req.URL.Path)
	}
}

func TestRecordHandler_ToggleActive(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	truncateHandlerTables(t, ctx)

	router := createTestRouter()
	token := loginForToken(t, router)

	_, created := postRecord(t, router, token, hr.CreateRecordRequest{
		CompanyName: "Acme Corp",
		HRName:      "Jane Doe",
		HREmail:     "jane@acme.com",
	})

	req := httptest.NewRequest(http.MethodPatch, "/api/hr/"+created.ID+"/active", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var toggled hr.RecordResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&toggled))
	assert.False(t, toggled.Active)
}

func TestRecordHandler_List_CompanyNameFilter(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	truncateHandlerTables(t, ctx)

	router := createTestRouter()
	token := loginForToken(t, router)

	postRecord(t, router, token, hr.CreateRecordRequest{CompanyName: "Acme Corp", HRName: "Jane", HREmail: "jane@acme.com"})
	postRecord(t, router, token, hr.CreateRecordRequest{CompanyName: "Beta Inc", HRName: "John", HREmail: "john@beta.io"})

	req := httptest.NewRequest(http.MethodGet, "/api/hr?companyName=acme", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var records []hr.RecordResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&records))
	require.Len(t, records, 1)
	assert.Equal(t, "Jane", records[0].HRName)
}

func TestRecordHandler_Draft(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	truncateHandlerTables(t, ctx)

	router := createTestRouter()
	token := loginForToken(t, router)

	_, created := postRecord(t, router, token, hr.CreateRecordRequest{
		CompanyName: "Acme Corp",
		HRName:      "Jane Doe",
		HREmail:     "jane@acme.com",
	})

	url := "/api/hr/" + created.ID + "/draft?name=John%20Smith&phone=555-1212&resumeLink=https://example.com/cv.pdf"
	req := httptest.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var draft outreach.Draft
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&draft))
	assert.Equal(t, "jane@acme.com", draft.To)
	assert.True(t, strings.Contains(draft.Body, "Hi Jane Doe,"))
	assert.True(t, strings.HasPrefix(draft.Mailto, "mailto:"))
}

func TestRecordHandler_Draft_MissingSenderDetails(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	truncateHandlerTables(t, ctx)

	router := createTestRouter()
	token := loginForToken(t, router)

	_, created := postRecord(t, router, token, hr.CreateRecordRequest{
		CompanyName: "Acme Corp",
		HRName:      "Jane Doe",
		HREmail:     "jane@acme.com",
	})

	req := httptest.NewRequest(http.MethodGet, "/api/hr/"+created.ID+"/draft?name=John", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
