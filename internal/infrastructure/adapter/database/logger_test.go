package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gormlogger "gorm.io/gorm/logger"
)

func TestParseGormLogLevel(t *testing.T) {
	testCases := []struct {
		level    string
		expected gormlogger.LogLevel
	}{
		{"silent", gormlogger.Silent},
		{"error", gormlogger.Error},
		{"warn", gormlogger.Warn},
		{"info", gormlogger.Info},
		{"INFO", gormlogger.Info},
		{"unknown", gormlogger.Info},
		{"", gormlogger.Info},
	}

	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			assert.Equal(t, tc.expected, parseGormLogLevel(tc.level))
		})
	}
}

func TestExtractQueryType(t *testing.T) {
	testCases := []struct {
		name     string
		sql      string
		expected string
	}{
		{"Select", `SELECT * FROM "products" WHERE stock > 0`, "SELECT"},
		{"SelectLowercase", `select * from users`, "SELECT"},
		{"Insert", `INSERT INTO "orders" (user_id, total) VALUES (1, 100)`, "INSERT"},
		{"Update", `UPDATE users SET money = money - 100 WHERE id = 1 AND money >= 100`, "UPDATE"},
		{"Delete", `DELETE FROM cart_items WHERE cart_id = 1`, "DELETE"},
		{"LeadingWhitespace", `   SELECT 1`, "SELECT"},
		{"DDL", `CREATE INDEX idx_orders_user_created ON orders (user_id)`, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, extractQueryType(tc.sql))
		})
	}
}

func TestExtractTableName(t *testing.T) {
	testCases := []struct {
		name     string
		sql      string
		expected string
	}{
		{"SelectFrom", `SELECT * FROM products WHERE stock > 0`, "PRODUCTS"},
		{"InsertInto", `INSERT INTO orders (user_id) VALUES (1)`, "ORDERS"},
		{"Update", `UPDATE users SET money = 0`, "USERS"},
		{"BareFrom", `SELECT count(*) FROM sessions`, "SESSIONS"},
		{"NoTable", `SET TRANSACTION ISOLATION LEVEL SERIALIZABLE`, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, extractTableName(tc.sql))
		})
	}
}
