package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

var messages = map[int]string{
	fiber.StatusBadRequest:          "bad request",
	fiber.StatusNotFound:            "resource not found",
	fiber.StatusMethodNotAllowed:    "method not allowed",
	fiber.StatusUnprocessableEntity: "unprocessable",
	fiber.StatusInternalServerError: "internal server error",
}

var (
	errBadRequest    = fiber.NewError(fiber.StatusBadRequest)
	errNotFound      = fiber.NewError(fiber.StatusNotFound)
	errUnprocessable = fiber.NewError(fiber.StatusUnprocessableEntity)
	errInternal      = fiber.NewError(fiber.StatusInternalServerError)
)

func messageFor(code int) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return strings.ToLower(utils.StatusMessage(code))
}

// ErrorHandler renders every error returned from a route, including the
// router's own 404 and 405, as {"success": false, "error": code, "message": msg}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   code,
		"message": messageFor(code),
	})
}

func storageFailure(c *fiber.Ctx, err error, status *fiber.Error) error {
	log.Printf("🔥 %s %s: %v", c.Method(), c.Path(), err)
	return status
}
