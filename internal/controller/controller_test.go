package controller

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"brandkit-admin-be/internal/dto"
	"brandkit-admin-be/internal/entity"
	"brandkit-admin-be/internal/pkg/logger"
	"brandkit-admin-be/internal/pkg/serverutils"
	"brandkit-admin-be/internal/repository/memory"
	"brandkit-admin-be/internal/repository/unitofwork"
	"brandkit-admin-be/internal/service"
	"brandkit-admin-be/internal/testutil"
	catalogEvents "brandkit-admin-be/pkg/catalog/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type apiEnv struct {
	app     *fiber.App
	db      *gorm.DB
	fixture *testutil.Fixture
}

func newAPI(t *testing.T) *apiEnv {
	t.Helper()

	db := testutil.NewDB(t)
	fixture := testutil.Seed(t, db)
	uowFactory := unitofwork.NewRepositoryFactory(db)
	log := logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "app.log"))

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	t.Cleanup(func() { _ = pubSub.Close() })

	generation := service.NewGenerationService(
		uowFactory,
		service.NewPublisherService("jobs", pubSub),
		catalogEvents.NewNatsPublisher(nil, log),
		nil,
		nil,
		log,
		false,
	)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(StatusForError))
	api := app.Group("/api")
	NewSystemController(service.NewSystemLogService(log)).RegisterRoutes(api)
	NewTopicController(service.NewTopicService(uowFactory)).RegisterRoutes(api)
	NewEntityController(service.NewEntityService(uowFactory)).RegisterRoutes(api)
	NewProductTypeController(service.NewProductTypeService(uowFactory, memory.NewProductTypeCache(time.Minute))).RegisterRoutes(api)
	NewEntityProductController(service.NewEntityProductService(uowFactory), generation).RegisterRoutes(api)

	return &apiEnv{app: app, db: db, fixture: fixture}
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (e *apiEnv) do(t *testing.T, method, path, body string) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.app.Test(req, 5000)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	return resp.StatusCode, env
}

func TestPing_ReturnsBareBody(t *testing.T) {
	api := newAPI(t)

	resp, err := api.app.Test(httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.NotEmpty(t, body["ts"])
	assert.NotContains(t, body, "success")
}

func TestTopics_CreateAndList(t *testing.T) {
	api := newAPI(t)

	status, env := api.do(t, http.MethodPost, "/api/topics", `{"name":"Music"}`)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)

	status, env = api.do(t, http.MethodGet, "/api/topics", "")
	require.Equal(t, http.StatusOK, status)
	var topics []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &topics))
	require.Len(t, topics, 2)
	assert.Equal(t, "Music", topics[0]["name"])
}

func TestTopics_ValidationAndNotFound(t *testing.T) {
	api := newAPI(t)

	status, env := api.do(t, http.MethodPost, "/api/topics", `{"description":"no name"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)

	status, _ = api.do(t, http.MethodPost, "/api/topics", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = api.do(t, http.MethodGet, "/api/topics/999/subtopics", "")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = api.do(t, http.MethodGet, "/api/topics/abc/subtopics", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestEntities_PartialUpdate(t *testing.T) {
	api := newAPI(t)
	path := fmt.Sprintf("/api/entities/%d", api.fixture.Entity.Id)

	status, env := api.do(t, http.MethodPut, path, `{"style":null,"keywords":"crest"}`)
	require.Equal(t, http.StatusOK, status, env.Message)

	var updated map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Nil(t, updated["style"])
	assert.Equal(t, "crest", updated["keywords"])
	assert.Equal(t, "navy, gold", updated["colors"])

	status, _ = api.do(t, http.MethodPut, path, `{}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = api.do(t, http.MethodGet, "/api/entities/999", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestGenerate_QueuesPendingRow(t *testing.T) {
	api := newAPI(t)
	body := fmt.Sprintf(`{"entityId":%d,"productTypeId":%d}`, api.fixture.Entity.Id, api.fixture.ProductType.Id)

	status, env := api.do(t, http.MethodPost, "/api/generate", body)
	require.Equal(t, http.StatusOK, status, env.Message)

	var res struct {
		Ok      bool   `json:"ok"`
		Message string `json:"message"`
		Prompt  string `json:"prompt"`
		Ep      struct {
			Id     int64  `json:"id"`
			Status string `json:"status"`
		} `json:"ep"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.True(t, res.Ok)
	assert.Equal(t, "pending", res.Ep.Status)
	assert.Contains(t, res.Prompt, "Riverside Rovers")

	status, env = api.do(t, http.MethodGet, fmt.Sprintf("/api/entities/%d/products", api.fixture.Entity.Id), "")
	require.Equal(t, http.StatusOK, status)
	var listings []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &listings))
	require.Len(t, listings, 1)
	assert.Equal(t, "Mug", listings[0]["product_name"])
}

func TestGenerate_Errors(t *testing.T) {
	api := newAPI(t)

	status, _ := api.do(t, http.MethodPost, "/api/generate", `{"productTypeId":1}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = api.do(t, http.MethodPost, "/api/generate", fmt.Sprintf(`{"entityId":999,"productTypeId":%d}`, api.fixture.ProductType.Id))
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = api.do(t, http.MethodPost, "/api/generate", fmt.Sprintf(`{"entityId":%d,"productTypeId":999}`, api.fixture.Entity.Id))
	assert.Equal(t, http.StatusNotFound, status)
}

func TestEntityProducts_UpdateStatusCodes(t *testing.T) {
	api := newAPI(t)
	ep := testutil.InsertEntityProduct(t, api.db, api.fixture.Entity.Id, api.fixture.ProductType.Id, entity.GenerationStatusSucceeded)
	path := fmt.Sprintf("/api/entity_products/%d", ep.Id)

	status, _ := api.do(t, http.MethodPut, path, `{}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = api.do(t, http.MethodPut, path, `{"status":null}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, env := api.do(t, http.MethodPut, path, `{"status":"done"}`)
	require.Equal(t, http.StatusOK, status, env.Message)

	status, _ = api.do(t, http.MethodPut, path, `{"status":"failed"}`)
	assert.Equal(t, http.StatusOK, status)

	status, _ = api.do(t, http.MethodPut, "/api/entity_products/999", `{"status":"pending"}`)
	assert.Equal(t, http.StatusNotFound, status)

	status, env = api.do(t, http.MethodPut, path, `{"status":"pending","design_notes":"redo with darker navy"}`)
	require.Equal(t, http.StatusOK, status, env.Message)
	var updated map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "pending", updated["status"])
	assert.Equal(t, "redo with darker navy", updated["design_notes"])
}

func TestEntityProductUpdateRequest_Validation(t *testing.T) {
	req := dto.UpdateEntityProductRequest{Status: dto.Some("pending")}
	assert.Error(t, serverutils.ValidateRequest(req))

	req.Id = 12
	assert.NoError(t, serverutils.ValidateRequest(req))
}

func TestEntityProducts_CreateConflict(t *testing.T) {
	api := newAPI(t)
	body := fmt.Sprintf(`{"entity_id":%d,"product_type_id":%d}`, api.fixture.Entity.Id, api.fixture.ProductType.Id)

	status, _ := api.do(t, http.MethodPost, "/api/entity_products", body)
	require.Equal(t, http.StatusOK, status)

	status, env := api.do(t, http.MethodPost, "/api/entity_products", body)
	assert.Equal(t, http.StatusConflict, status)
	assert.False(t, env.Success)
	assert.Equal(t, http.StatusConflict, env.Code)
}

func TestLogs_DetailNotFound(t *testing.T) {
	api := newAPI(t)

	status, env := api.do(t, http.MethodGet, "/api/admin/logs", "")
	require.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)

	status, _ = api.do(t, http.MethodGet, "/api/admin/logs/does-not-exist", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestStatusForError(t *testing.T) {
	assert.Equal(t, fiber.StatusBadRequest, StatusForError(fmt.Errorf("wrap: %w", service.ErrInvalidStatus)))
	assert.Equal(t, fiber.StatusNotFound, StatusForError(service.ErrEntityProductNotFound))
	assert.Equal(t, fiber.StatusConflict, StatusForError(service.ErrInvalidTransition))
	assert.Equal(t, 0, StatusForError(fmt.Errorf("boom")))
}
