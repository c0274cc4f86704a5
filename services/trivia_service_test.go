package services

import (
	"context"
	"testing"

	"github.com/anjiri1684/trivia/database"
	"github.com/anjiri1684/trivia/database/dbtest"
	"github.com/anjiri1684/trivia/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) *TriviaService {
	t.Helper()
	return NewTriviaService(dbtest.Seeded(t))
}

func ids(questions []models.Question) []uint {
	out := make([]uint, len(questions))
	for i, q := range questions {
		out[i] = q.ID
	}
	return out
}

func TestCategoriesOrderedByID(t *testing.T) {
	svc := newService(t)

	categories, err := svc.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, len(database.DefaultCategories))
	for i, c := range categories {
		assert.Equal(t, uint(i+1), c.ID)
		assert.Equal(t, database.DefaultCategories[i], c.Type)
	}
}

func TestCategoriesEmpty(t *testing.T) {
	svc := NewTriviaService(dbtest.Open(t))

	categories, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestCategoryLookup(t *testing.T) {
	svc := newService(t)

	c, err := svc.Category(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Art", c.Type)

	_, err = svc.Category(context.Background(), 100)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestQuestionsOrderedByID(t *testing.T) {
	svc := newService(t)

	questions, err := svc.Questions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2, 3, 4, 5, 6, 7}, ids(questions))
}

func TestQuestionsByCategory(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	science, err := svc.Category(ctx, 1)
	require.NoError(t, err)
	questions, err := svc.QuestionsByCategory(ctx, science)
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2, 3}, ids(questions))

	sports, err := svc.Category(ctx, 6)
	require.NoError(t, err)
	questions, err = svc.QuestionsByCategory(ctx, sports)
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	for _, term := range []string{"title", "Title", "TITLE", "tItLe"} {
		questions, err := svc.SearchQuestions(ctx, term)
		require.NoError(t, err)
		assert.Equal(t, []uint{6, 7}, ids(questions), term)
	}

	questions, err := svc.SearchQuestions(ctx, "what")
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 3, 4, 7}, ids(questions))
}

func TestSearchTreatsWildcardsLiterally(t *testing.T) {
	svc := newService(t)

	questions, err := svc.SearchQuestions(context.Background(), "%")
	require.NoError(t, err)
	assert.Empty(t, questions)

	questions, err = svc.SearchQuestions(context.Background(), "some dummy search")
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestCreateQuestion(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	category := uint(6)
	difficulty := 5

	created, err := svc.CreateQuestion(ctx, NewQuestion{
		Question:   "Which player scored the fastest hat-trick in the Premier League?",
		Answer:     "Sadio Mane",
		Category:   &category,
		Difficulty: &difficulty,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := svc.Question(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Format(), got.Format())
}

func TestCreateQuestionWithoutCategory(t *testing.T) {
	svc := newService(t)

	created, err := svc.CreateQuestion(context.Background(), NewQuestion{Question: "q", Answer: "a"})
	require.NoError(t, err)
	assert.Nil(t, created.Category)
	assert.Nil(t, created.Difficulty)
}

func TestDeleteQuestion(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	require.NoError(t, svc.DeleteQuestion(ctx, 2))

	_, err := svc.Question(ctx, 2)
	assert.ErrorIs(t, err, ErrQuestionNotFound)

	questions, err := svc.Questions(ctx)
	require.NoError(t, err)
	assert.Len(t, questions, len(dbtest.Questions)-1)
}

func TestDeleteMissingQuestion(t *testing.T) {
	svc := newService(t)

	err := svc.DeleteQuestion(context.Background(), 99999)
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestUnaskedQuestionsAllCategories(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	questions, err := svc.UnaskedQuestions(ctx, nil, nil)
	require.NoError(t, err)
	assert.Len(t, questions, len(dbtest.Questions))

	questions, err = svc.UnaskedQuestions(ctx, nil, []uint{1, 3, 5, 7})
	require.NoError(t, err)
	assert.Equal(t, []uint{2, 4, 6}, ids(questions))

	questions, err = svc.UnaskedQuestions(ctx, nil, []uint{1, 2, 3, 4, 5, 6, 7})
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestUnaskedQuestionsInCategory(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	science, err := svc.Category(ctx, 1)
	require.NoError(t, err)

	questions, err := svc.UnaskedQuestions(ctx, &science, []uint{2, 4})
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 3}, ids(questions))

	questions, err = svc.UnaskedQuestions(ctx, &science, []uint{1, 2, 3})
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestPing(t *testing.T) {
	svc := newService(t)
	assert.NoError(t, svc.Ping(context.Background()))
}
