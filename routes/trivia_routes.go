package routes

import (
	"github.com/anjiri1684/trivia/handlers"
	"github.com/gofiber/fiber/v2"
)

func TriviaRoutes(app *fiber.App, h *handlers.Trivia) {
	app.Get("/health", h.Health)

	categories := app.Group("/categories")
	categories.Get("", h.GetCategories)
	categories.Get("/:id<int>/questions", h.GetCategoryQuestions)

	questions := app.Group("/questions")
	questions.Get("", h.GetQuestions)
	questions.Post("", h.PostQuestions)
	questions.Delete("/:id<int>", h.DeleteQuestion)

	app.Post("/quizzes", h.PlayQuiz)
}
