package handlers

import (
	"context"
	"errors"

	"github.com/anjiri1684/trivia/models"
	"github.com/anjiri1684/trivia/services"
	"github.com/anjiri1684/trivia/utils"
	"github.com/gofiber/fiber/v2"
)

// TriviaStore is the persistence the trivia handlers need.
// *services.TriviaService implements it.
type TriviaStore interface {
	Ping(ctx context.Context) error
	Categories(ctx context.Context) ([]models.Category, error)
	Category(ctx context.Context, id uint) (models.Category, error)
	Questions(ctx context.Context) ([]models.Question, error)
	QuestionsByCategory(ctx context.Context, category models.Category) ([]models.Question, error)
	SearchQuestions(ctx context.Context, term string) ([]models.Question, error)
	CreateQuestion(ctx context.Context, in services.NewQuestion) (models.Question, error)
	DeleteQuestion(ctx context.Context, id uint) error
	UnaskedQuestions(ctx context.Context, category *models.Category, previous []uint) ([]models.Question, error)
}

type Trivia struct {
	store TriviaStore
	pick  utils.Picker
}

func NewTrivia(store TriviaStore, pick utils.Picker) *Trivia {
	if pick == nil {
		pick = utils.RandomPicker()
	}
	return &Trivia{store: store, pick: pick}
}

func pageParam(c *fiber.Ctx) (int, error) {
	page := c.QueryInt("page", 1)
	if page < 1 {
		return 0, errBadRequest
	}
	return page, nil
}

func paginate(questions []models.Question, page int) []models.FormattedQuestion {
	current, _ := utils.Paginate(models.FormatQuestions(questions), page, utils.QuestionsPerPage)
	return current
}

func (h *Trivia) categoryTypes(c *fiber.Ctx) (models.CategoryTypes, error) {
	categories, err := h.store.Categories(c.UserContext())
	if err != nil {
		return nil, err
	}
	return models.CategoryTypes(categories), nil
}

func (h *Trivia) Health(c *fiber.Ctx) error {
	if err := h.store.Ping(c.UserContext()); err != nil {
		return storageFailure(c, err, errInternal)
	}
	return c.JSON(fiber.Map{"success": true, "status": "ok"})
}

func (h *Trivia) GetCategories(c *fiber.Ctx) error {
	categories, err := h.categoryTypes(c)
	if err != nil {
		return storageFailure(c, err, errInternal)
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"categories": categories,
	})
}

func (h *Trivia) GetQuestions(c *fiber.Ctx) error {
	page, err := pageParam(c)
	if err != nil {
		return err
	}

	questions, err := h.store.Questions(c.UserContext())
	if err != nil {
		return storageFailure(c, err, errInternal)
	}
	current := paginate(questions, page)
	if len(current) == 0 {
		return errNotFound
	}

	categories, err := h.categoryTypes(c)
	if err != nil {
		return storageFailure(c, err, errInternal)
	}

	return c.JSON(fiber.Map{
		"success":          true,
		"questions":        current,
		"total_questions":  len(questions),
		"categories":       categories,
		"current_category": nil,
	})
}

// DeleteQuestion reports a missing question as 422, the same as a failed
// delete; clients of this API rely on that.
func (h *Trivia) DeleteQuestion(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return errUnprocessable
	}
	page, err := pageParam(c)
	if err != nil {
		return err
	}

	ctx := c.UserContext()
	if err := h.store.DeleteQuestion(ctx, uint(id)); err != nil {
		return storageFailure(c, err, errUnprocessable)
	}

	questions, err := h.store.Questions(ctx)
	if err != nil {
		return storageFailure(c, err, errUnprocessable)
	}

	return c.JSON(fiber.Map{
		"success":         true,
		"deleted":         id,
		"questions":       paginate(questions, page),
		"total_questions": len(questions),
	})
}

// PostQuestions either searches or creates depending on the body.
func (h *Trivia) PostQuestions(c *fiber.Ctx) error {
	var body questionsBody
	if err := parseJSON(c, &body); err != nil {
		return err
	}
	req, err := body.decode()
	if err != nil {
		return err
	}
	page, err := pageParam(c)
	if err != nil {
		return err
	}

	switch req := req.(type) {
	case searchRequest:
		return h.searchQuestions(c, req, page)
	case createRequest:
		return h.createQuestion(c, req, page)
	default:
		return errBadRequest
	}
}

func (h *Trivia) searchQuestions(c *fiber.Ctx, req searchRequest, page int) error {
	matches, err := h.store.SearchQuestions(c.UserContext(), req.Term)
	if err != nil {
		return storageFailure(c, err, errUnprocessable)
	}
	return c.JSON(fiber.Map{
		"success":         true,
		"questions":       paginate(matches, page),
		"total_questions": len(matches),
	})
}

func (h *Trivia) createQuestion(c *fiber.Ctx, req createRequest, page int) error {
	ctx := c.UserContext()
	created, err := h.store.CreateQuestion(ctx, services.NewQuestion{
		Question:   *req.Question,
		Answer:     *req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		return storageFailure(c, err, errUnprocessable)
	}

	questions, err := h.store.Questions(ctx)
	if err != nil {
		return storageFailure(c, err, errUnprocessable)
	}

	return c.JSON(fiber.Map{
		"success":         true,
		"created":         created.ID,
		"questions":       paginate(questions, page),
		"total_questions": len(questions),
	})
}

// GetCategoryQuestions answers 404 for any failure, not only a missing category.
func (h *Trivia) GetCategoryQuestions(c *fiber.Ctx) error {
	page, err := pageParam(c)
	if err != nil {
		return err
	}
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return errNotFound
	}

	ctx := c.UserContext()
	category, err := h.store.Category(ctx, uint(id))
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			return errNotFound
		}
		return storageFailure(c, err, errNotFound)
	}

	questions, err := h.store.QuestionsByCategory(ctx, category)
	if err != nil {
		return storageFailure(c, err, errNotFound)
	}

	return c.JSON(fiber.Map{
		"success":          true,
		"current_category": category.Type,
		"questions":        paginate(questions, page),
		"total_questions":  len(questions),
	})
}

// PlayQuiz picks a random question the player has not seen yet. The client
// keeps the history and sends it back on every turn.
func (h *Trivia) PlayQuiz(c *fiber.Ctx) error {
	var req quizRequest
	if err := parseJSON(c, &req); err != nil {
		return err
	}
	if err := validate.Struct(req); err != nil {
		return errBadRequest
	}
	categoryID, err := req.categoryID()
	if err != nil {
		return errBadRequest
	}

	ctx := c.UserContext()
	var (
		category        *models.Category
		currentCategory any
	)
	if categoryID != 0 {
		found, err := h.store.Category(ctx, categoryID)
		if err != nil {
			if errors.Is(err, services.ErrCategoryNotFound) {
				return errNotFound
			}
			return storageFailure(c, err, errUnprocessable)
		}
		category = &found
		currentCategory = found.Type
	}

	unasked, err := h.store.UnaskedQuestions(ctx, category, req.PreviousQuestions)
	if err != nil {
		return storageFailure(c, err, errUnprocessable)
	}

	var question any
	if next, ok := utils.PickOne(unasked, h.pick); ok {
		question = next.Format()
	}

	return c.JSON(fiber.Map{
		"success":          true,
		"question":         question,
		"current_category": currentCategory,
	})
}
