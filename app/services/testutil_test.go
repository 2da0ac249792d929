package services

import (
	"math/rand"
	"testing"

	"github.com/MUCCHU/imf-gadgets-api/app/models"
	"github.com/MUCCHU/imf-gadgets-api/app/repo"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Every pool connection to :memory: gets its own empty database, so pin
	// the pool to one connection to keep concurrent queries on the same data.
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(&models.User{}, &models.Gadget{}))
	return gdb
}

func newTestGadgetService(t *testing.T, seed int64) (*GadgetService, *repo.GadgetRepository) {
	t.Helper()
	gadgets := repo.NewGadgetRepository(newTestDB(t))
	return NewGadgetService(gadgets, rand.New(rand.NewSource(seed))), gadgets
}
