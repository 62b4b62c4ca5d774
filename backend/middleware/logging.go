package middleware

import (
	"errors"
	"log"
	"strconv"
	"time"

	"quizbuilder/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// LoggingMiddleware writes one line per request.
func LoggingMiddleware(logger *log.Logger, colors bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			// The app error handler has not written the response yet.
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		method := c.Method()
		statusText := strconv.Itoa(status)
		if colors {
			method = utils.Colorize(method, 0, method)
			statusText = utils.Colorize(statusText, status, "")
		}

		if err != nil {
			logger.Printf("%s %s %s %s %v err=%v", c.IP(), method, c.Path(), statusText, time.Since(start), err)
		} else {
			logger.Printf("%s %s %s %s %v", c.IP(), method, c.Path(), statusText, time.Since(start))
		}

		return err
	}
}
