package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/account-service/internal/config"
	"github.com/MKhiriev/account-service/internal/logger"
	"github.com/MKhiriev/account-service/internal/metrics"
	"github.com/MKhiriev/account-service/internal/mock"
	"github.com/MKhiriev/account-service/internal/service"
	"github.com/MKhiriev/account-service/internal/store"
	"github.com/MKhiriev/account-service/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// testDeps holds the mocked collaborators of a handler under test.
type testDeps struct {
	accounts *mock.MockAccountService
	appInfo  *mock.MockAppInfoService
}

func newTestHandler(t *testing.T, cfg config.Server) (*Handler, *testDeps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	deps := &testDeps{
		accounts: mock.NewMockAccountService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}
	services := &service.Services{
		AccountService: deps.accounts,
		AppInfoService: deps.appInfo,
	}

	return NewHandler(services, cfg, metrics.New(), logger.Nop()), deps
}

// newTestRouter wires real services over an in-memory repository.
func newTestRouter(t *testing.T, cfg config.Server) (http.Handler, *memoryRepository) {
	t.Helper()

	repo := newMemoryRepository()
	services, err := service.NewServices(
		&store.Storages{AccountRepository: repo},
		&config.StructuredConfig{App: config.App{Version: "1.0"}},
		models.NewAppBuildInfo("v1.0.0", "2026-01-01", "abc123"),
		logger.Nop(),
	)
	require.NoError(t, err)

	return NewHandler(services, cfg, nil, logger.Nop()).Init(), repo
}

func doRequest(t *testing.T, h http.Handler, method, target, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

// ─────────────────────────────────────────────
// memoryRepository
// ─────────────────────────────────────────────

// memoryRepository is a store.AccountRepository kept in a map. A zero
// DateJoined on update keeps the stored date, like the SQL repository.
type memoryRepository struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]models.Account
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{rows: make(map[int64]models.Account)}
}

func (m *memoryRepository) Create(_ context.Context, acc models.Account) (models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	acc.ID = m.nextID
	m.rows[acc.ID] = acc
	return acc, nil
}

func (m *memoryRepository) Get(_ context.Context, id int64) (models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	acc, ok := m.rows[id]
	if !ok {
		return models.Account{}, store.ErrAccountNotFound
	}
	return acc, nil
}

func (m *memoryRepository) List(_ context.Context) ([]models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	accounts := make([]models.Account, 0, len(m.rows))
	for _, acc := range m.rows {
		accounts = append(accounts, acc)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts, nil
}

func (m *memoryRepository) Update(_ context.Context, acc models.Account) (models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.rows[acc.ID]
	if !ok {
		return models.Account{}, store.ErrAccountNotFound
	}
	if acc.DateJoined.IsZero() {
		acc.DateJoined = stored.DateJoined
	}
	m.rows[acc.ID] = acc
	return acc, nil
}

func (m *memoryRepository) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.rows[id]; !ok {
		return store.ErrAccountNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memoryRepository) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}
