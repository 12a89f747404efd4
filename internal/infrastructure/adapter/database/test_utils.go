package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/medimeet/internal/domain/port/core"
	"github.com/amirhossein-jamali/medimeet/internal/infrastructure/adapter/logger"
)

// TestDBManager provides a migrated private in-memory SQLite database for tests
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager connects and migrates a fresh database that is closed when t ends.
// A nil logger means no logging.
func NewTestDBManager(t *testing.T, timeProvider coreport.TimeProvider, log coreport.Logger) *TestDBManager {
	t.Helper()

	if log == nil {
		log = logger.NewNoopLogger()
	}

	config := &Config{
		Driver:        DriverSQLite,
		Database:      fmt.Sprintf("file:medimeet_%s?mode=memory&cache=shared", uuid.NewString()),
		MaxOpenConns:  1,
		MaxIdleConns:  1,
		QueryTimeout:  5 * time.Second,
		LogLevel:      "silent",
		RetryAttempts: 1,
	}

	manager := NewManager(config, log, timeProvider)
	_, err := manager.Connect(context.Background())
	require.NoError(t, err, "failed to connect to test database")
	t.Cleanup(func() { _ = manager.Close() })

	require.NoError(t, manager.Migrate(context.Background()), "failed to migrate test database")

	return &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       log,
		TimeProvider: timeProvider,
	}
}

// CreateTestUser stores a user with the given role and starting balance
func (m *TestDBManager) CreateTestUser(t *testing.T, externalID string, role entity.Role, credits int64) *entity.User {
	t.Helper()

	user, err := entity.NewUser(externalID, externalID+"@example.com", "Test "+externalID, "", m.TimeProvider)
	require.NoError(t, err)
	user.Role = role
	user.SetCredits(credits)

	ctx := context.Background()
	uow := m.Manager.CreateUnitOfWork()
	require.NoError(t, uow.GetUserRepository(ctx).Create(ctx, user))
	return user
}
