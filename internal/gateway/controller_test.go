package gateway

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"chat-history-be/internal/pkg/logger"
	"chat-history-be/internal/repository/unitofwork"
	"chat-history-be/internal/service"
	"chat-history-be/pkg/database"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	factory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(filepath.Join(t.TempDir(), "test.log"), false)

	controller := NewController(
		service.NewAppUserService(factory),
		service.NewConversationService(factory, sysLogger),
		service.NewMessageService(factory),
		service.NewElementService(factory),
		sysLogger,
	)

	app := fiber.New()
	controller.RegisterRoutes(app.Group("/api"))
	return app
}

type testEnvelope struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func post(t *testing.T, app *fiber.App, query string, variables map[string]interface{}) (int, *testEnvelope) {
	t.Helper()

	body, err := json.Marshal(map[string]interface{}{
		"query":     query,
		"variables": variables,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/graphql", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope testEnvelope
	require.NoError(t, json.Unmarshal(raw, &envelope))
	return resp.StatusCode, &envelope
}

func TestExecuteCreateAndFetchUser(t *testing.T) {
	app := newTestApp(t)

	status, env := post(t, app,
		`mutation { createAppUser(username: $username) { id username role } }`,
		map[string]interface{}{"username": "alice"},
	)
	require.Equal(t, http.StatusOK, status)
	require.Empty(t, env.Errors)

	var created struct {
		Id       string `json:"id"`
		Username string `json:"username"`
		Role     string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(env.Data["createAppUser"], &created))
	assert.Equal(t, "alice", created.Username)
	assert.Equal(t, "USER", created.Role)

	status, env = post(t, app,
		`query { getAppUser(username: $username) { id } }`,
		map[string]interface{}{"username": "alice"},
	)
	require.Equal(t, http.StatusOK, status)
	require.Empty(t, env.Errors)
	assert.NotEqual(t, "null", string(env.Data["getAppUser"]))
}

func TestExecuteAbsentUserIsNull(t *testing.T) {
	app := newTestApp(t)

	status, env := post(t, app,
		`query { getAppUser(username: $username) { id } }`,
		map[string]interface{}{"username": "nobody"},
	)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, env.Errors)
	assert.Equal(t, "null", string(env.Data["getAppUser"]))
}

func TestExecuteDuplicateUsernameFails(t *testing.T) {
	app := newTestApp(t)
	mutation := `mutation { createAppUser(username: $username) { id } }`
	vars := map[string]interface{}{"username": "alice"}

	status, _ := post(t, app, mutation, vars)
	require.Equal(t, http.StatusOK, status)

	status, env := post(t, app, mutation, vars)
	assert.Equal(t, http.StatusBadRequest, status)
	require.Len(t, env.Errors, 1)
	assert.Contains(t, env.Errors[0].Message, "alice")
	assert.Equal(t, "null", string(env.Data["createAppUser"]))
}

func TestExecuteValidationFailure(t *testing.T) {
	app := newTestApp(t)

	status, env := post(t, app,
		`mutation { createMessage(id: $id) { id } }`,
		map[string]interface{}{"id": "not-checked-yet"},
	)
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotEmpty(t, env.Errors)
}

func TestExecuteRequiredAuthorAndDisplay(t *testing.T) {
	app := newTestApp(t)

	status, env := post(t, app,
		`mutation { createMessage(id: $id) { id } }`,
		map[string]interface{}{
			"id":             "8d9f9cb2-5a94-4dd1-9a39-1d1c9f0a6b21",
			"content":        "hello",
			"conversationId": 1,
		},
	)
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotEmpty(t, env.Errors)
	assert.Contains(t, env.Errors[0].Message, "Author")

	status, env = post(t, app,
		`mutation { createElement(conversationId: $conversationId) { id } }`,
		map[string]interface{}{
			"conversationId": 1,
			"type":           "image",
			"name":           "chart.png",
		},
	)
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotEmpty(t, env.Errors)
	assert.Contains(t, env.Errors[0].Message, "Display")
}

func TestExecuteUnknownField(t *testing.T) {
	app := newTestApp(t)

	status, env := post(t, app, `query { bogusField { id } }`, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	require.Len(t, env.Errors, 1)
	assert.Contains(t, env.Errors[0].Message, "bogusField")
}

func TestExecuteMalformedDocument(t *testing.T) {
	app := newTestApp(t)

	status, env := post(t, app, `query {`, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotEmpty(t, env.Errors)
}

func TestExecuteMalformedBody(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/graphql", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestExecuteConversationRoundTrip(t *testing.T) {
	app := newTestApp(t)

	status, env := post(t, app,
		`mutation { createAppUser(username: $username) { id } }`,
		map[string]interface{}{"username": "alice"},
	)
	require.Equal(t, http.StatusOK, status)

	var user struct {
		Id string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data["createAppUser"], &user))

	status, env = post(t, app,
		`mutation CreateConversation($appUserId: ID!) { createConversation(appUserId: $appUserId) { id appUser { username } } }`,
		map[string]interface{}{"appUserId": user.Id},
	)
	require.Equal(t, http.StatusOK, status)
	require.Empty(t, env.Errors)

	var conv struct {
		Id      string `json:"id"`
		AppUser struct {
			Username string `json:"username"`
		} `json:"appUser"`
	}
	require.NoError(t, json.Unmarshal(env.Data["createConversation"], &conv))
	assert.Equal(t, "alice", conv.AppUser.Username)

	status, env = post(t, app,
		`query { conversation(id: $id) { id } }`,
		map[string]interface{}{"id": conv.Id},
	)
	require.Equal(t, http.StatusOK, status)
	require.Empty(t, env.Errors)
	assert.NotEqual(t, "null", string(env.Data["conversation"]))

	status, env = post(t, app, `query { conversations { pageInfo { hasNextPage } } }`, nil)
	require.Equal(t, http.StatusOK, status)
	require.Empty(t, env.Errors)

	var page struct {
		PageInfo struct {
			HasNextPage bool `json:"hasNextPage"`
		} `json:"pageInfo"`
	}
	require.NoError(t, json.Unmarshal(env.Data["conversations"], &page))
	assert.False(t, page.PageInfo.HasNextPage)
}

func TestExecuteNestedInputObject(t *testing.T) {
	app := newTestApp(t)

	status, env := post(t, app,
		`mutation { createAppUser(username: $username) { id } }`,
		map[string]interface{}{"username": "alice"},
	)
	require.Equal(t, http.StatusOK, status)

	var user struct {
		Id string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data["createAppUser"], &user))

	status, env = post(t, app,
		`mutation { createConversation(appUserId: $appUserId) { id } }`,
		map[string]interface{}{"appUserId": user.Id},
	)
	require.Equal(t, http.StatusOK, status)

	var conv struct {
		Id string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data["createConversation"], &conv))

	// Arguments wrapped in an input object are accepted too.
	status, env = post(t, app,
		`mutation UpdateConversation($conversationData: UpdateConversationInput!) { updateConversation(conversationData: $conversationData) { id tags } }`,
		map[string]interface{}{
			"conversationData": map[string]interface{}{
				"id":   conv.Id,
				"tags": []string{"triaged"},
			},
		},
	)
	require.Equal(t, http.StatusOK, status)
	require.Empty(t, env.Errors)

	var updated struct {
		Tags []string `json:"tags"`
	}
	require.NoError(t, json.Unmarshal(env.Data["updateConversation"], &updated))
	assert.Equal(t, []string{"triaged"}, updated.Tags)
}

func TestPlayground(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/graphql", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}
