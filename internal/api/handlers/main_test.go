// filepath: internal/api/handlers/main_test.go
package handlers

import (
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"wardbulletin/internal/audit"
	"wardbulletin/internal/config"
	"wardbulletin/internal/models"
	"wardbulletin/internal/realtime"
	"wardbulletin/internal/services"
	"wardbulletin/internal/services/auth"
)

// --- MOCK AUDITOR ---
type MockAuditor struct {
	mock.Mock
}

var _ audit.Auditor = (*MockAuditor)(nil)

func (m *MockAuditor) Record(action string, actor string, resource string, details map[string]interface{}) {
	m.Called(action, actor, resource, details)
}

// --- MOCK USER SERVICE ---
type MockUserService struct {
	mock.Mock
}

var _ services.UserService = (*MockUserService)(nil)

func (m *MockUserService) Register(args services.RegisterArgs) (*models.User, bool, error) {
	a := m.Called(args)
	if a.Get(0) == nil {
		return nil, a.Bool(1), a.Error(2)
	}
	return a.Get(0).(*models.User), a.Bool(1), a.Error(2)
}
func (m *MockUserService) Authenticate(username, password string) (*models.User, error) {
	a := m.Called(username, password)
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).(*models.User), a.Error(1)
}
func (m *MockUserService) GetUserByID(id int64) (*models.User, error) {
	a := m.Called(id)
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).(*models.User), a.Error(1)
}
func (m *MockUserService) GetUserByUsername(username string) (*models.User, error) {
	a := m.Called(username)
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).(*models.User), a.Error(1)
}
func (m *MockUserService) GetUsers() ([]models.User, error) {
	a := m.Called()
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).([]models.User), a.Error(1)
}
func (m *MockUserService) ApproveUser(id int64) (*models.User, error) {
	a := m.Called(id)
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).(*models.User), a.Error(1)
}
func (m *MockUserService) UpdateUserRole(id int64, role string) (*models.User, error) {
	a := m.Called(id, role)
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).(*models.User), a.Error(1)
}
func (m *MockUserService) DeleteUser(actorID, id int64) error {
	a := m.Called(actorID, id)
	return a.Error(0)
}
func (m *MockUserService) EnsureAdminUser(cfg *config.Config) error {
	a := m.Called(cfg)
	return a.Error(0)
}

// --- MOCK TOKEN SERVICE ---
type MockTokenService struct {
	mock.Mock
}

var _ auth.TokenService = (*MockTokenService)(nil)

func (m *MockTokenService) Generate(user *models.User) (string, error) {
	a := m.Called(user)
	return a.String(0), a.Error(1)
}
func (m *MockTokenService) Validate(tokenString string) (*models.User, error) {
	a := m.Called(tokenString)
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).(*models.User), a.Error(1)
}
func (m *MockTokenService) Logout(tokenString string) error {
	a := m.Called(tokenString)
	return a.Error(0)
}

// --- MOCK NAME SERVICE ---
type MockNameService struct {
	mock.Mock
}

var _ services.NameService = (*MockNameService)(nil)

func (m *MockNameService) Groups() (map[string][]string, error) {
	a := m.Called()
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).(map[string][]string), a.Error(1)
}
func (m *MockNameService) Add(category, name string, actorID int64) (map[string][]string, error) {
	a := m.Called(category, name, actorID)
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).(map[string][]string), a.Error(1)
}
func (m *MockNameService) Remove(category, name string, actorID int64) (map[string][]string, error) {
	a := m.Called(category, name, actorID)
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).(map[string][]string), a.Error(1)
}

// --- MOCK HYMN SERVICE ---
type MockHymnService struct {
	mock.Mock
}

var _ services.HymnService = (*MockHymnService)(nil)

func (m *MockHymnService) Hymns() (map[string]string, error) {
	a := m.Called()
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).(map[string]string), a.Error(1)
}
func (m *MockHymnService) Add(number, title string, actorID int64) (map[string]string, error) {
	a := m.Called(number, title, actorID)
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).(map[string]string), a.Error(1)
}
func (m *MockHymnService) Remove(number string, actorID int64) (map[string]string, error) {
	a := m.Called(number, actorID)
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).(map[string]string), a.Error(1)
}

// --- MOCK SMART TEXT SERVICE ---
type MockSmartTextService struct {
	mock.Mock
}

var _ services.SmartTextService = (*MockSmartTextService)(nil)

func (m *MockSmartTextService) Texts() (map[string]string, error) {
	a := m.Called()
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).(map[string]string), a.Error(1)
}
func (m *MockSmartTextService) Update(entries map[string]string, actorID int64) (map[string]string, error) {
	a := m.Called(entries, actorID)
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).(map[string]string), a.Error(1)
}

// --- MOCK AGENDA SERVICE ---
type MockAgendaService struct {
	mock.Mock
}

var _ services.AgendaService = (*MockAgendaService)(nil)

func (m *MockAgendaService) List() ([]models.AgendaSummary, error) {
	a := m.Called()
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).([]models.AgendaSummary), a.Error(1)
}
func (m *MockAgendaService) Get(date string) (json.RawMessage, error) {
	a := m.Called(date)
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).(json.RawMessage), a.Error(1)
}
func (m *MockAgendaService) Save(date string, data json.RawMessage, actorID int64) error {
	a := m.Called(date, data, actorID)
	return a.Error(0)
}

// testMocks bundles one mock of every dependency for a Handlers instance.
type testMocks struct {
	User      *MockUserService
	Token     *MockTokenService
	Names     *MockNameService
	Hymns     *MockHymnService
	SmartText *MockSmartTextService
	Agendas   *MockAgendaService
	Audit     *MockAuditor
}

// newTestHandlers builds a Handlers with all mocks and a clientless hub.
// The auditor accepts anything by default; tests asserting audit calls can
// still add stricter expectations.
func newTestHandlers() (*Handlers, *testMocks) {
	m := &testMocks{
		User:      new(MockUserService),
		Token:     new(MockTokenService),
		Names:     new(MockNameService),
		Hymns:     new(MockHymnService),
		SmartText: new(MockSmartTextService),
		Agendas:   new(MockAgendaService),
		Audit:     new(MockAuditor),
	}
	m.Audit.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()

	h := NewHandlers(
		m.User,
		m.Token,
		m.Names,
		m.Hymns,
		m.SmartText,
		m.Agendas,
		realtime.NewHub(),
		m.Audit,
		&config.Config{},
		"test",
	)
	return h, m
}
