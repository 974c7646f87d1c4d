package reports

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/scamlens/api/internal/config"
)

func newTestRouter(repo *Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := NewHandler(repo, &config.Config{AppEnv: "production"})
	router.POST("/api/reports", handler.Create)
	return router
}

func postReport(t *testing.T, router *gin.Engine, req CreateReportRequest) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(req)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodPost, "/api/reports", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, httpReq)
	return w
}

func TestCreateReportHandler(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("new report returns 201", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		router := newTestRouter(&Repository{collection: mt.Coll})
		w := postReport(mt.T, router, CreateReportRequest{
			ContractAddress: "0xabc",
			Threats:         []string{"phishing"},
			Reporter:        "0xfeed",
		})

		require.Equal(mt, http.StatusCreated, w.Code)

		var body map[string]any
		require.NoError(mt, json.Unmarshal(w.Body.Bytes(), &body))
		require.Equal(mt, true, body["success"])
	})

	mt.Run("duplicate report returns 400 with a friendly message", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error",
		}))

		router := newTestRouter(&Repository{collection: mt.Coll})
		w := postReport(mt.T, router, CreateReportRequest{
			ContractAddress: "0xabc",
			Threats:         []string{"phishing"},
			Reporter:        "0xfeed",
		})

		require.Equal(mt, http.StatusBadRequest, w.Code)

		var body map[string]any
		require.NoError(mt, json.Unmarshal(w.Body.Bytes(), &body))
		require.Equal(mt, false, body["success"])
		require.Equal(mt, "You have already reported this contract", body["message"])
	})
}
