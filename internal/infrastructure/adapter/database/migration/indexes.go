package migration

import (
	coreport "github.com/querykicks/querykicks/internal/domain/port/core"
	"gorm.io/gorm"
)

// IndexManager manages PostgreSQL-specific indexes
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

// CreateIndexes creates indexes beyond the ones AutoMigrate declares
func (m *IndexManager) CreateIndexes() error {
	m.logger.Info("Creating PostgreSQL indexes", nil)

	// Unique index on user_locks so the checkout upsert has a conflict target
	if err := m.db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_user_locks_user_id
		ON user_locks (user_id)
	`).Error; err != nil {
		m.logger.Error("Failed to create unique index on user_locks.user_id", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Index on lock expiration time for cleanup sweeps
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_user_locks_expires_at
		ON user_locks (expires_at)
	`).Error; err != nil {
		m.logger.Error("Failed to create index on user_locks.expires_at", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Index on session expiration time for cleanup sweeps
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_sessions_expires_at
		ON sessions (expires_at)
	`).Error; err != nil {
		m.logger.Error("Failed to create index on sessions.expires_at", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Composite index so order history queries avoid a sort
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_orders_user_created
		ON orders (user_id, created_at DESC)
	`).Error; err != nil {
		m.logger.Error("Failed to create composite index on orders", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Partial index to find in-stock products quickly on the storefront
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_products_in_stock
		ON products (created_at DESC)
		WHERE stock > 0
	`).Error; err != nil {
		m.logger.Error("Failed to create in-stock partial index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// BRIN index for order timestamps (efficient for temporal data)
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_orders_created_at_brin
		ON orders USING BRIN (created_at)
		WITH (pages_per_range = 32)
	`).Error; err != nil {
		m.logger.Error("Failed to create BRIN index on orders.created_at", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL performance tweaks
func (m *IndexManager) CreatePerformanceTweaks() error {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	// Hot tables get a lower fillfactor to reduce page splits under
	// concurrent balance and stock updates
	if err := m.db.Exec(`
		ALTER TABLE users SET (fillfactor = 90)
	`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for users table", map[string]any{
			"error": err.Error(),
		})
		// Not critical, keep going
	}

	if err := m.db.Exec(`
		ALTER TABLE products SET (fillfactor = 90)
	`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for products table", map[string]any{
			"error": err.Error(),
		})
	}

	if err := m.db.Exec(`
		ALTER TABLE orders ALTER COLUMN user_id SET STATISTICS 1000
	`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for orders.user_id", map[string]any{
			"error": err.Error(),
		})
	}

	m.logger.Info("PostgreSQL performance tweaks applied successfully", nil)
	return nil
}
