package database

import (
	"testing"

	"github.com/anjiri1684/trivia/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func TestMigrateCreatesTables(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	assert.True(t, db.Migrator().HasTable("categories"))
	assert.True(t, db.Migrator().HasTable("questions"))
	assert.True(t, db.Migrator().HasColumn(&models.Question{}, "category"))
	assert.True(t, db.Migrator().HasColumn(&models.Question{}, "difficulty"))

	// a second run against an existing schema is a no-op
	require.NoError(t, Migrate(db))
}

func TestSeedCategoriesOnlyOnce(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	require.NoError(t, SeedCategories(db))
	require.NoError(t, SeedCategories(db))

	var categories []models.Category
	require.NoError(t, db.Order("id").Find(&categories).Error)
	require.Len(t, categories, len(DefaultCategories))
	for i, c := range categories {
		assert.Equal(t, uint(i+1), c.ID)
		assert.Equal(t, DefaultCategories[i], c.Type)
	}
}

func TestSeedCategoriesKeepsExistingRows(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))
	require.NoError(t, db.Create(&models.Category{Type: "Music"}).Error)

	require.NoError(t, SeedCategories(db))

	var count int64
	require.NoError(t, db.Model(&models.Category{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
