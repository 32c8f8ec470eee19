package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"askdb-ai/internal/apis/dtos"
	"askdb-ai/internal/apis/handlers"
)

type stubQueryService struct {
	askResponse     *dtos.QueryResultResponse
	executeResponse *dtos.QueryResultResponse
	tablesResponse  *dtos.TablesResponse
}

func (s *stubQueryService) Ask(_ context.Context, _ *dtos.AskQueryRequest) (*dtos.QueryResultResponse, error) {
	return s.askResponse, nil
}

func (s *stubQueryService) Execute(_ context.Context, _ *dtos.ExecuteQueryRequest) (*dtos.QueryResultResponse, error) {
	return s.executeResponse, nil
}

func (s *stubQueryService) Tables(_ context.Context) (*dtos.TablesResponse, error) {
	return s.tablesResponse, nil
}

func newTestRouter(service *stubQueryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewQueryHandler(service)

	router := gin.New()
	router.POST("/api/queries/ask", handler.Ask)
	router.POST("/api/queries/execute", handler.Execute)
	router.GET("/api/schema", handler.GetTables)
	return router
}

func TestAskEndpoint(t *testing.T) {
	service := &stubQueryService{
		askResponse: &dtos.QueryResultResponse{
			QueryID:  "q-1",
			Question: "How many entries of the record are present?",
			Query:    `SELECT COUNT(*) FROM Students;`,
			Columns:  []string{"COUNT(*)"},
			Rows:     [][]interface{}{{7}},
		},
	}
	router := newTestRouter(service)

	body := `{"question": "How many entries of the record are present?"}`
	req := httptest.NewRequest(http.MethodPost, "/api/queries/ask", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope dtos.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Nil(t, envelope.Error)

	data := envelope.Data.(map[string]interface{})
	assert.Equal(t, `SELECT COUNT(*) FROM Students;`, data["query"])
}

func TestAskEndpointRejectsMissingQuestion(t *testing.T) {
	router := newTestRouter(&stubQueryService{})

	req := httptest.NewRequest(http.MethodPost, "/api/queries/ask", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope dtos.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	assert.NotNil(t, envelope.Error)
}

func TestExecuteEndpointReportsQueryError(t *testing.T) {
	service := &stubQueryService{
		executeResponse: &dtos.QueryResultResponse{
			QueryID: "q-2",
			Query:   `SELEC * FROM Students;`,
			Error: &dtos.QueryError{
				Code:    "QUERY_EXECUTION_FAILED",
				Message: "failed to execute the SQL statement",
				Details: `near "SELEC": syntax error`,
			},
		},
	}
	router := newTestRouter(service)

	body := `{"query": "SELEC * FROM Students;"}`
	req := httptest.NewRequest(http.MethodPost, "/api/queries/execute", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// Execution failures are data, not transport errors.
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope dtos.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)

	data := envelope.Data.(map[string]interface{})
	queryError := data["error"].(map[string]interface{})
	assert.Equal(t, "QUERY_EXECUTION_FAILED", queryError["code"])
}

func TestSchemaEndpoint(t *testing.T) {
	service := &stubQueryService{
		tablesResponse: &dtos.TablesResponse{
			Tables: []dtos.TableInfo{
				{Name: "Students", Columns: []dtos.ColumnInfo{{Name: "Name", Type: "TEXT"}}},
			},
		},
	}
	router := newTestRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/api/schema", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope dtos.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
}
