// Package dbtest opens migrated in-memory SQLite databases loaded with a
// small trivia data set.
package dbtest

import (
	"testing"

	"github.com/anjiri1684/trivia/database"
	"github.com/anjiri1684/trivia/models"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Fixture question ids: 1-3 Science, 4-5 Art, 6 History, 7 has no category.
// Geography, Entertainment and Sports are empty.
var Questions = []models.Question{
	{Question: "What is the heaviest organ in the human body?", Answer: "The Liver", Category: ptr(uint(1)), Difficulty: ptr(4)},
	{Question: "Who discovered penicillin?", Answer: "Alexander Fleming", Category: ptr(uint(1)), Difficulty: ptr(3)},
	{Question: "Hematology is a branch of medicine involving the study of what?", Answer: "Blood", Category: ptr(uint(1)), Difficulty: ptr(4)},
	{Question: "La Giaconda is better known as what?", Answer: "Mona Lisa", Category: ptr(uint(2)), Difficulty: ptr(3)},
	{Question: "Which Dutch graphic artist-initials M C was a creator of optical illusions?", Answer: "Escher", Category: ptr(uint(2)), Difficulty: ptr(1)},
	{Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", Category: ptr(uint(4)), Difficulty: ptr(2)},
	{Question: "What movie earned Tom Hanks his third straight Oscar nomination, in 1996? The TITLE please.", Answer: "Apollo 13", Category: nil, Difficulty: nil},
}

func ptr[T any](v T) *T {
	return &v
}

// Open returns a migrated, empty database.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// Seeded returns a database holding the default categories and Questions.
func Seeded(t testing.TB) *gorm.DB {
	t.Helper()

	db := Open(t)
	if err := database.SeedCategories(db); err != nil {
		t.Fatalf("seed categories: %v", err)
	}
	questions := make([]models.Question, len(Questions))
	copy(questions, Questions)
	if err := db.Create(&questions).Error; err != nil {
		t.Fatalf("seed questions: %v", err)
	}
	return db
}

// AddQuestions inserts n generated questions in category and returns their ids.
func AddQuestions(t testing.TB, db *gorm.DB, n int, category *uint) []uint {
	t.Helper()

	questions := make([]models.Question, n)
	for i := range questions {
		questions[i] = models.Question{
			Question:   "Generated question",
			Answer:     "Generated answer",
			Category:   category,
			Difficulty: ptr(1),
		}
	}
	if err := db.Create(&questions).Error; err != nil {
		t.Fatalf("add questions: %v", err)
	}
	ids := make([]uint, n)
	for i, q := range questions {
		ids[i] = q.ID
	}
	return ids
}
