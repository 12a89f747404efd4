package database

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	errs "github.com/amirhossein-jamali/medimeet/internal/domain/error"
	"github.com/amirhossein-jamali/medimeet/internal/infrastructure/adapter/logger"
	mockcore "github.com/amirhossein-jamali/medimeet/mocks/port/core"
)

func TestConfig_Validate(t *testing.T) {
	server := func(mutate func(c *Config)) *Config {
		c := DefaultConfig()
		c.Host = "localhost"
		c.Username = "medimeet"
		c.Password = "secret"
		c.Database = "medimeet"
		mutate(c)
		return c
	}

	tests := []struct {
		name    string
		config  *Config
		wantErr string
	}{
		{name: "valid postgres", config: server(func(*Config) {})},
		{name: "valid mysql", config: server(func(c *Config) { c.Driver = DriverMySQL; c.Port = 3306 })},
		{name: "sqlite needs only a path", config: func() *Config {
			c := DefaultConfig()
			c.Driver = DriverSQLite
			c.Database = "medimeet.db"
			return c
		}()},
		{name: "unknown driver", config: server(func(c *Config) { c.Driver = "oracle" }), wantErr: "unsupported database driver"},
		{name: "missing host", config: server(func(c *Config) { c.Host = "" }), wantErr: "host is required"},
		{name: "bad port", config: server(func(c *Config) { c.Port = 70000 }), wantErr: "invalid port"},
		{name: "missing password", config: server(func(c *Config) { c.Password = "" }), wantErr: "password is required"},
		{name: "bad ssl mode", config: server(func(c *Config) { c.SSLMode = "sometimes" }), wantErr: "invalid SSL mode"},
		{name: "mysql ignores ssl mode", config: server(func(c *Config) { c.Driver = DriverMySQL; c.SSLMode = "" })},
		{name: "bad log level", config: server(func(c *Config) { c.LogLevel = "loud" }), wantErr: "invalid log level"},
		{name: "no retry attempts", config: server(func(c *Config) { c.RetryAttempts = 0 }), wantErr: "retry attempts"},
		{name: "zero query timeout", config: server(func(c *Config) { c.QueryTimeout = 0 }), wantErr: "query timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	c := &Config{Host: "db", Port: 5432, Username: "u", Password: "p", Database: "mm", SSLMode: "disable"}

	c.Driver = DriverPostgres
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=mm sslmode=disable TimeZone=UTC", c.DSN())

	c.Driver = DriverMySQL
	c.Port = 3306
	assert.Equal(t, "u:p@tcp(db:3306)/mm?charset=utf8mb4&parseTime=True&loc=UTC", c.DSN())

	c.Driver = DriverSQLite
	c.Database = "/var/lib/medimeet.db"
	assert.Equal(t, "/var/lib/medimeet.db", c.DSN())

	resized := c.WithMaxOpenConnections(7)
	assert.Equal(t, 7, resized.MaxOpenConns)
	assert.NotSame(t, c, resized)
}

func TestErrorMapper_MapError(t *testing.T) {
	mapper := NewErrorMapper()

	assert.NoError(t, mapper.MapError(nil, "op"))
	assert.ErrorIs(t, mapper.MapError(gorm.ErrRecordNotFound, "op"), errs.ErrNotFound)
	assert.Same(t, errs.ErrUserNotFound, mapper.MapError(errs.ErrUserNotFound, "op"))
	assert.Same(t, errs.ErrInsufficientCredits, mapper.MapError(errs.ErrInsufficientCredits, "op"))

	timedOut := mapper.MapError(fmt.Errorf("commit: %w", context.DeadlineExceeded), "commit transaction")
	assert.ErrorIs(t, timedOut, errs.ErrPersistence)
	assert.ErrorIs(t, timedOut, context.DeadlineExceeded)

	serialization := mapper.MapError(errors.New("ERROR: could not serialize access due to concurrent update"), "commit transaction")
	assert.ErrorIs(t, serialization, errs.ErrPersistence)
	assert.Contains(t, serialization.Error(), "contention")
}

func TestErrorMapper_Kind(t *testing.T) {
	mapper := NewErrorMapper()

	tests := map[string]string{
		"Deadlock found when trying to get lock":            "contention",
		"database is locked":                                "contention",
		"ERROR: duplicate key value violates unique":        "duplicate",
		"Error 1062: Duplicate entry 'x' for key 'PRIMARY'": "duplicate",
		"violates foreign key constraint":                   "constraint",
		"dial tcp: connection refused":                      "connection",
		"i/o timeout":                                       "timeout",
		"something else entirely":                           "unknown",
	}
	for msg, want := range tests {
		assert.Equal(t, want, mapper.Kind(errors.New(msg)), msg)
	}
}

func TestRetry(t *testing.T) {
	config := RetryConfig{MaxAttempts: 3, RetryInterval: time.Millisecond, MaxInterval: 5 * time.Millisecond}
	log := logger.NewNoopLogger()

	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		err := Retry(context.Background(), config, "op", func(context.Context) error {
			calls++
			if calls < 3 {
				return errors.New("connection refused")
			}
			return nil
		}, IsTransientError, log)
		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		calls := 0
		failure := errors.New("connection reset by peer")
		err := Retry(context.Background(), config, "op", func(context.Context) error {
			calls++
			return failure
		}, nil, log)
		assert.ErrorIs(t, err, failure)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on non retryable error", func(t *testing.T) {
		calls := 0
		err := Retry(context.Background(), config, "op", func(context.Context) error {
			calls++
			return errors.New("password authentication failed")
		}, IsTransientError, log)
		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("stops when context ends", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		slow := RetryConfig{MaxAttempts: 5, RetryInterval: time.Hour, MaxInterval: time.Hour}
		calls := 0
		err := Retry(ctx, slow, "op", func(context.Context) error {
			calls++
			cancel()
			return errors.New("timeout")
		}, nil, log)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	config := RetryConfig{RetryInterval: time.Second, MaxInterval: 10 * time.Second}

	assert.Equal(t, time.Second, calculateBackoffWithJitter(0, config))
	assert.Equal(t, 4*time.Second, calculateBackoffWithJitter(2, config))
	assert.Equal(t, 10*time.Second, calculateBackoffWithJitter(6, config))

	config.JitterFactor = 0.5
	for i := 0; i < 20; i++ {
		backoff := calculateBackoffWithJitter(1, config)
		assert.GreaterOrEqual(t, backoff, 2*time.Second)
		assert.LessOrEqual(t, backoff, 3*time.Second)
	}
}

func TestIsTransientError(t *testing.T) {
	assert.False(t, IsTransientError(nil))
	assert.True(t, IsTransientError(errors.New("dial tcp 10.0.0.1:5432: connect: connection refused")))
	assert.True(t, IsTransientError(errors.New("unexpected EOF")))
	assert.False(t, IsTransientError(errors.New("syntax error at or near")))
}

func TestGormLoggerHelpers(t *testing.T) {
	assert.Equal(t, "SELECT", extractQueryType("  select * from users"))
	assert.Equal(t, "UPDATE", extractQueryType("UPDATE users SET credits = credits + 2"))
	assert.Equal(t, "", extractQueryType("BEGIN"))

	assert.Equal(t, "users", extractTableName(`SELECT * FROM "users" WHERE id = $1`))
	assert.Equal(t, "credit_transactions", extractTableName("INSERT INTO `credit_transactions` (`id`) VALUES (?)"))
	assert.Equal(t, "appointments", extractTableName("UPDATE appointments SET status = ?"))
	assert.Equal(t, "", extractTableName("BEGIN"))

	assert.Equal(t, gormlogger.Silent, ParseGormLogLevel("silent"))
	assert.Equal(t, gormlogger.Warn, ParseGormLogLevel("WARN"))
	assert.Equal(t, gormlogger.Info, ParseGormLogLevel("anything"))
}

func TestExtractTraceIDFromContext(t *testing.T) {
	assert.Empty(t, extractTraceIDFromContext(context.Background()))

	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: traceID,
		SpanID:  spanID,
	}))

	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", extractTraceIDFromContext(ctx))
}

func TestDatabaseLogger_Trace(t *testing.T) {
	log := mockcore.NewMockLogger(t)
	gormLog := NewGormDatabaseLogger(log, "warn", 100*time.Millisecond)
	ctx := context.Background()
	query := func() (string, int64) { return "SELECT * FROM users", 1 }

	// fast successful and not-found queries are quiet at warn level
	gormLog.Trace(ctx, time.Now(), query, nil)
	gormLog.Trace(ctx, time.Now(), query, gorm.ErrRecordNotFound)

	log.EXPECT().Error("SQL Error", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["error"] == "broken" && fields["table"] == "users" && fields["type"] == "SELECT" && fields["rows"] == int64(1)
	})).Once()
	gormLog.Trace(ctx, time.Now(), query, errors.New("broken"))

	log.EXPECT().Warn("Slow SQL Query", mock.MatchedBy(func(fields map[string]any) bool {
		elapsed, ok := fields["elapsed_ms"].(int64)
		return ok && elapsed >= 1000
	})).Once()
	gormLog.Trace(ctx, time.Now().Add(-time.Second), query, nil)

	gormLog.LogMode(gormlogger.Silent).Trace(ctx, time.Now(), query, errors.New("ignored"))
}
