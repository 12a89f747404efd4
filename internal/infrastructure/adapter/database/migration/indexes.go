package migration

import (
	"context"
	"fmt"
	"strings"

	coreport "github.com/amirhossein-jamali/medimeet/internal/domain/port/core"
	"gorm.io/gorm"
)

// compositeIndex is an index gorm tags cannot express. Portable across dialects.
type compositeIndex struct {
	Table   string
	Name    string
	Columns []string
}

var compositeIndexes = []compositeIndex{
	// LatestPurchase and the history page
	{Table: "credit_transactions", Name: "idx_credit_transactions_user_type_created", Columns: []string{"user_id", "type", "created_at"}},
	{Table: "credit_transactions", Name: "idx_credit_transactions_user_created", Columns: []string{"user_id", "created_at"}},
	// ListByDoctor / ListOpenByDoctor
	{Table: "availabilities", Name: "idx_availabilities_doctor_start", Columns: []string{"doctor_id", "start_time"}},
	// ListUpcoming
	{Table: "appointments", Name: "idx_appointments_doctor_status_start", Columns: []string{"doctor_id", "status", "start_time"}},
	{Table: "appointments", Name: "idx_appointments_patient_start", Columns: []string{"patient_id", "start_time"}},
	// pending-doctor review queue
	{Table: "users", Name: "idx_users_role_verification", Columns: []string{"role", "verification_status"}},
}

// IndexManager creates indexes beyond the ones declared on the models
type IndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewIndexManager creates a new index manager
func NewIndexManager(db *gorm.DB, logger coreport.Logger) *IndexManager {
	return &IndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateIndexes creates the composite indexes, then the PostgreSQL-only ones when on postgres
func (m *IndexManager) CreateIndexes(ctx context.Context) error {
	m.logger.Info("Creating database indexes", nil)

	db := m.db.WithContext(ctx)
	for _, idx := range compositeIndexes {
		if db.Migrator().HasIndex(idx.Table, idx.Name) {
			continue
		}
		stmt := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.Name, idx.Table, strings.Join(idx.Columns, ", "))
		if err := db.Exec(stmt).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.Name,
				"error": err.Error(),
			})
			return err
		}
	}

	if m.db.Dialector.Name() == "postgres" {
		return m.createPostgresIndexes(ctx)
	}
	return nil
}

func (m *IndexManager) createPostgresIndexes(ctx context.Context) error {
	db := m.db.WithContext(ctx)

	// Partial index over bookable slots only
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_availabilities_open
		ON availabilities (doctor_id, start_time)
		WHERE appointment_id IS NULL
	`).Error; err != nil {
		m.logger.Error("Failed to create open slots partial index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// The ledger is append-only, so created_at follows physical order
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_credit_transactions_created_at_brin
		ON credit_transactions USING BRIN (created_at)
		WITH (pages_per_range = 32)
	`).Error; err != nil {
		m.logger.Error("Failed to create BRIN index on created_at", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("PostgreSQL indexes created successfully", nil)
	return nil
}

// ApplyPerformanceTweaks applies PostgreSQL storage settings. Failures are logged only.
func (m *IndexManager) ApplyPerformanceTweaks(ctx context.Context) {
	if m.db.Dialector.Name() != "postgres" {
		return
	}

	db := m.db.WithContext(ctx)

	// users rows are rewritten on every credit movement
	if err := db.Exec(`ALTER TABLE users SET (fillfactor = 90)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for users table", map[string]any{
			"error": err.Error(),
		})
	}

	if err := db.Exec(`ALTER TABLE credit_transactions ALTER COLUMN user_id SET STATISTICS 1000`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for user_id", map[string]any{
			"error": err.Error(),
		})
	}
}
