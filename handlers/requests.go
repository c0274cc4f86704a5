package handlers

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

var jsonNull = []byte("null")

// parseJSON rejects a missing or null body before decoding into out.
func parseJSON(c *fiber.Ctx, out any) error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 || bytes.Equal(body, jsonNull) {
		return errBadRequest
	}
	if err := c.BodyParser(out); err != nil {
		return errBadRequest
	}
	return nil
}

// questionsBody is the raw payload of POST /questions before it is told
// apart into a search or a create request.
type questionsBody struct {
	SearchTerm *string     `json:"searchTerm"`
	Question   *string     `json:"question"`
	Answer     *string     `json:"answer"`
	Category   json.Number `json:"category"`
	Difficulty json.Number `json:"difficulty"`
}

type questionsRequest interface {
	isQuestionsRequest()
}

type searchRequest struct {
	Term string
}

type createRequest struct {
	Question   *string `validate:"required"`
	Answer     *string `validate:"required"`
	Category   *uint
	Difficulty *int
}

func (searchRequest) isQuestionsRequest() {}
func (createRequest) isQuestionsRequest() {}

// decode selects search mode whenever searchTerm is a non-empty string;
// everything else is a create request.
func (b questionsBody) decode() (questionsRequest, error) {
	if b.SearchTerm != nil && *b.SearchTerm != "" {
		return searchRequest{Term: *b.SearchTerm}, nil
	}

	req := createRequest{Question: b.Question, Answer: b.Answer}
	if err := validate.Struct(req); err != nil {
		return nil, errBadRequest
	}

	category, err := optionalUint(b.Category)
	if err != nil {
		return nil, errBadRequest
	}
	difficulty, err := optionalInt(b.Difficulty)
	if err != nil {
		return nil, errBadRequest
	}
	req.Category = category
	req.Difficulty = difficulty
	return req, nil
}

type quizCategory struct {
	ID   json.Number `json:"id" validate:"required"`
	Type string      `json:"type"`
}

type quizRequest struct {
	PreviousQuestions []uint        `json:"previous_questions"`
	QuizCategory      *quizCategory `json:"quiz_category" validate:"required"`
}

// categoryID is 0 when the player picked every category.
func (r quizRequest) categoryID() (uint, error) {
	id, err := strconv.ParseUint(r.QuizCategory.ID.String(), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// Numbers may arrive as JSON numbers or numeric strings.
func optionalUint(n json.Number) (*uint, error) {
	if n == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(n.String(), 10, 64)
	if err != nil {
		return nil, err
	}
	u := uint(v)
	return &u, nil
}

func optionalInt(n json.Number) (*int, error) {
	if n == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(n.String())
	if err != nil {
		return nil, err
	}
	return &v, nil
}
