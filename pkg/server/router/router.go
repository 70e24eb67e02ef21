package router

import "github.com/gofiber/fiber/v2"

// ServerRouter registers one family of routes on the shared fiber app.
type ServerRouter interface {
	BuildRoutes(app *fiber.App) error
}
