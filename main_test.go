package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yeremiapane/restaurant-system/models"
	"github.com/yeremiapane/restaurant-system/utils"
)

func openEmptyDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestPrepareDatabase_LogsMigrationOnce(t *testing.T) {
	var out bytes.Buffer
	utils.InfoLogger.SetOutput(&out)
	t.Cleanup(func() { utils.InfoLogger.SetOutput(io.Discard) })

	db := openEmptyDB(t)
	require.NoError(t, prepareDatabase(db, true))

	assert.Equal(t, 1, strings.Count(out.String(), "AutoMigrate completed."))

	var tables, items int64
	db.Model(&models.Table{}).Count(&tables)
	db.Model(&models.MenuItem{}).Count(&items)
	assert.Equal(t, int64(3), tables)
	assert.Equal(t, int64(3), items)
}

func TestPrepareDatabase_WithoutSeed(t *testing.T) {
	db := openEmptyDB(t)
	require.NoError(t, prepareDatabase(db, false))

	var tables int64
	require.NoError(t, db.Model(&models.Table{}).Count(&tables).Error)
	assert.Zero(t, tables)
}
