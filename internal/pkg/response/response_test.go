package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestSuccessAndError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, map[string]string{"foo": "bar"})
	require.Equal(t, 200, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, true, body["success"])
	require.Contains(t, body, "data")

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	BadRequest(c, "Error saving report", "reporter is required")
	require.Equal(t, 400, w.Code)
	var errBody map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errBody))
	require.Equal(t, false, errBody["success"])
	require.Equal(t, "Error saving report", errBody["message"])
	require.Equal(t, "reporter is required", errBody["error"])

	// Without detail the error field is omitted
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	NotFound(c, "Discussion not found")
	require.Equal(t, 404, w.Code)
	errBody = map[string]any{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errBody))
	require.NotContains(t, errBody, "error")
}

func TestPaginated(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	items := []map[string]any{{"id": 1}, {"id": 2}}
	Paginated(c, items, "totalReports", 25, 2, 3)

	require.Equal(t, 200, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, true, body["success"])
	require.Equal(t, float64(2), body["currentPage"])
	require.Equal(t, float64(3), body["totalPages"])
	require.Equal(t, float64(25), body["totalReports"])
	require.Len(t, body["data"], 2)
}
