package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
	"github.com/amirhossein-jamali/medimeet/internal/infrastructure/adapter/model"
)

var testNow = time.Date(2024, 5, 14, 9, 30, 0, 0, time.UTC)

// newTestDB opens a private in-memory SQLite database with the schema migrated.
// A single connection keeps every statement on the same in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.CreditTransaction{},
		&model.Availability{},
		&model.Appointment{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, id string, role entity.Role, credits int64) *model.User {
	t.Helper()

	m := &model.User{
		ID:         id,
		ExternalID: "ext_" + id,
		Email:      id + "@example.com",
		Name:       "User " + id,
		Role:       string(role),
		Credits:    credits,
		CreatedAt:  testNow,
		UpdatedAt:  testNow,
	}
	if role == entity.RoleDoctor {
		speciality := "Cardiology"
		experience := 7
		credential := "https://example.com/cv.pdf"
		description := "Board certified cardiologist"
		status := string(entity.VerificationVerified)
		m.Speciality = &speciality
		m.Experience = &experience
		m.CredentialURL = &credential
		m.Description = &description
		m.VerificationStatus = &status
	}
	require.NoError(t, db.Create(m).Error)
	return m
}
