package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anjiri1684/trivia/models"
	"gorm.io/gorm"
)

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrCategoryNotFound = errors.New("category not found")
)

type NewQuestion struct {
	Question   string
	Answer     string
	Category   *uint
	Difficulty *int
}

type TriviaService struct {
	db *gorm.DB
}

func NewTriviaService(db *gorm.DB) *TriviaService {
	return &TriviaService{db: db}
}

func (s *TriviaService) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *TriviaService) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *TriviaService) Category(ctx context.Context, id uint) (models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Category{}, ErrCategoryNotFound
		}
		return models.Category{}, fmt.Errorf("get category %d: %w", id, err)
	}
	return category, nil
}

func (s *TriviaService) Questions(ctx context.Context) ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.WithContext(ctx).Order("id").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return questions, nil
}

// Question is a single-row lookup helper; the HTTP handlers never fetch one question by id.
func (s *TriviaService) Question(ctx context.Context, id uint) (models.Question, error) {
	var question models.Question
	if err := s.db.WithContext(ctx).First(&question, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Question{}, ErrQuestionNotFound
		}
		return models.Question{}, fmt.Errorf("get question %d: %w", id, err)
	}
	return question, nil
}

// QuestionsByCategory loads the questions that belong to category, ordered by id.
func (s *TriviaService) QuestionsByCategory(ctx context.Context, category models.Category) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.WithContext(ctx).Model(&category).Order("id").Association("Questions").Find(&questions)
	if err != nil {
		return nil, fmt.Errorf("list questions of category %d: %w", category.ID, err)
	}
	return questions, nil
}

// SearchQuestions matches term as a case-insensitive substring of the question text.
func (s *TriviaService) SearchQuestions(ctx context.Context, term string) ([]models.Question, error) {
	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"

	var questions []models.Question
	err := s.db.WithContext(ctx).
		Where(`LOWER(question) LIKE ? ESCAPE '\'`, pattern).
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return questions, nil
}

func (s *TriviaService) CreateQuestion(ctx context.Context, in NewQuestion) (models.Question, error) {
	question := models.Question{
		Question:   in.Question,
		Answer:     in.Answer,
		Category:   in.Category,
		Difficulty: in.Difficulty,
	}
	if err := s.db.WithContext(ctx).Create(&question).Error; err != nil {
		return models.Question{}, fmt.Errorf("create question: %w", err)
	}
	return question, nil
}

func (s *TriviaService) DeleteQuestion(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var question models.Question
		if err := tx.First(&question, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrQuestionNotFound
			}
			return fmt.Errorf("get question %d: %w", id, err)
		}
		if err := tx.Delete(&question).Error; err != nil {
			return fmt.Errorf("delete question %d: %w", id, err)
		}
		return nil
	})
}

// UnaskedQuestions returns the questions whose id is not in previous. A nil
// category selects across every category.
func (s *TriviaService) UnaskedQuestions(ctx context.Context, category *models.Category, previous []uint) ([]models.Question, error) {
	query := s.db.WithContext(ctx).Model(&models.Question{})
	if category != nil {
		query = query.Where("category = ?", category.ID)
	}
	if len(previous) > 0 {
		query = query.Where("id NOT IN ?", previous)
	}

	var questions []models.Question
	if err := query.Order("id").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("list unasked questions: %w", err)
	}
	return questions, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
