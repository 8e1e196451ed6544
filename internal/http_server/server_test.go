package http_server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/half-nothing/simple-hrm/internal/base"
	"github.com/half-nothing/simple-hrm/internal/database"
	"github.com/half-nothing/simple-hrm/internal/interfaces"
	"github.com/half-nothing/simple-hrm/internal/interfaces/config"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

type staticConfigManager struct {
	config *config.Config
}

func (m *staticConfigManager) Config() *config.Config { return m.config }

func (m *staticConfigManager) SaveConfig() error { return nil }

type envelope struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	logger := base.NewLoggerWithWriter(io.Discard, false)
	logger.Init(false)

	c := config.DefaultConfig()
	c.Server.General.BcryptCost = bcrypt.MinCost
	c.Server.General.DefaultAdmin.Password = "administrador"
	require.False(t, c.CheckValid(logger).IsFail())

	db, err := gorm.Open(sqlite.Open("file:http_server_test?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	operations := database.NewOperations(db, c.Database.QueryDuration, c.Server.General)
	applicationContent := interfaces.NewApplicationContent(&staticConfigManager{config: c}, nil, logger, operations)
	services, err := NewServices(applicationContent)
	require.NoError(t, err)

	e, stopCleanup := NewHttpServer(applicationContent, services)
	t.Cleanup(func() { close(stopCleanup) })
	return e
}

func doRequest(e *echo.Echo, method, path, token, body string) (int, *envelope) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	res := &envelope{}
	_ = json.Unmarshal(rec.Body.Bytes(), res)
	return rec.Code, res
}

func TestHttpServerRoutes(t *testing.T) {
	e := newTestServer(t)

	code, res := doRequest(e, http.MethodGet, "/api/personnel", "", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "MISSING_OR_MALFORMED_JWT", res.Code)

	code, res = doRequest(e, http.MethodGet, "/api/personnel", "not-a-token", "")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "INVALID_OR_EXPIRED_JWT", res.Code)

	code, res = doRequest(e, http.MethodPost, "/api/sessions", "", `{"username":"admin","password":"administrador"}`)
	require.Equal(t, http.StatusOK, code, res.Message)
	login := struct {
		Token string `json:"token"`
	}{}
	require.NoError(t, json.Unmarshal(res.Data, &login))
	require.NotEmpty(t, login.Token)

	code, res = doRequest(e, http.MethodPost, "/api/personnel", login.Token,
		`{"nombres":"Ana","apellidos":"Gómez","cedula":"001-0000001-1","rango":"Coronel","institucion":"ERD"}`)
	assert.Equal(t, http.StatusOK, code, res.Message)

	code, res = doRequest(e, http.MethodGet, "/api/personnel?search=gomez", login.Token, "")
	require.Equal(t, http.StatusOK, code, res.Message)
	page := struct {
		Total int64             `json:"total"`
		Items []json.RawMessage `json:"items"`
	}{}
	require.NoError(t, json.Unmarshal(res.Data, &page))
	assert.EqualValues(t, 1, page.Total)
	assert.Len(t, page.Items, 1)

	code, res = doRequest(e, http.MethodGet, "/api/personnel?page_number=4611686018427387904&page_size=4", login.Token, "")
	require.Equal(t, http.StatusOK, code, res.Message)
	require.NoError(t, json.Unmarshal(res.Data, &page))
	assert.EqualValues(t, 1, page.Total)
	assert.Empty(t, page.Items)

	code, res = doRequest(e, http.MethodGet, "/api/personnel?page_number=-1", login.Token, "")
	assert.Equal(t, http.StatusBadRequest, code)

	code, res = doRequest(e, http.MethodGet, "/api/personnel/ranks", login.Token, "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "GET_RANKS", res.Code)

	code, res = doRequest(e, http.MethodGet, "/api/statistics", login.Token, "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "GET_DASHBOARD", res.Code)

	code, res = doRequest(e, http.MethodGet, "/api/mandatarios/999", login.Token, "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "MANDATARIO_NOT_FOUND", res.Code)
}
