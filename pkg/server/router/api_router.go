package router

import (
	"errors"

	handlers "github.com/NeuralTrust/TrustDrift/pkg/handlers/http"
	"github.com/NeuralTrust/TrustDrift/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

var ErrMissingAuthMiddleware = errors.New("auth middleware is required for api routes")

type apiRouter struct {
	middlewareTransport *middleware.Transport
	handlerTransport    handlers.HandlerTransport
	swaggerURL          string
}

func NewAPIRouter(
	middlewareTransport *middleware.Transport,
	handlerTransport handlers.HandlerTransport,
	swaggerURL string,
) ServerRouter {
	return &apiRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
		swaggerURL:          swaggerURL,
	}
}

func (r *apiRouter) BuildRoutes(router *fiber.App) error {
	if r.middlewareTransport.AuthMiddleware == nil {
		return ErrMissingAuthMiddleware
	}
	h := r.handlerTransport

	for _, m := range []middleware.Middleware{
		r.middlewareTransport.PanicRecoverMiddleware,
		r.middlewareTransport.CORSMiddleware,
		r.middlewareTransport.MetricsMiddleware,
	} {
		if m != nil {
			router.Use(m.Middleware())
		}
	}

	router.Static("/swagger.json", "./docs/swagger.json")
	router.Get("/docs/*", swagger.New(swagger.Config{
		URL: r.swaggerURL,
	}))

	router.Get("/version", h.GetVersionHandler.Handle)

	v1 := router.Group("/api/v1", r.middlewareTransport.AuthMiddleware.Middleware())
	{
		v1.Post("/analyze", h.AnalyzeHandler.Handle)
		v1.Post("/deep-dive", h.DeepDiveHandler.Handle)
		v1.Post("/suggest", h.SuggestHandler.Handle)

		users := v1.Group("/user")
		{
			users.Post("/init", h.InitUserHandler.Handle)
			users.Put("/api-key", h.SaveAPIKeyHandler.Handle)
			users.Get("/api-key/status", h.GetAPIKeyStatusHandler.Handle)
		}

		subscription := v1.Group("/subscription")
		{
			subscription.Get("", h.GetSubscriptionHandler.Handle)
			subscription.Post("/upgrade", h.UpgradeSubscriptionHandler.Handle)
		}

		cases := v1.Group("/cases")
		{
			cases.Post("", h.CreateCaseHandler.Handle)
			cases.Get("", h.ListCasesHandler.Handle)
			cases.Get("/:case_id", h.GetCaseHandler.Handle)
			cases.Put("/:case_id", h.UpdateCaseHandler.Handle)
			cases.Delete("/:case_id", h.DeleteCaseHandler.Handle)

			cases.Get("/:case_id/members", h.ListMembersHandler.Handle)
			cases.Post("/:case_id/members", h.AddMemberHandler.Handle)

			cases.Get("/:case_id/versions", h.ListCaseVersionsHandler.Handle)
			cases.Get("/:case_id/versions/latest", h.LatestCaseVersionHandler.Handle)
			cases.Get("/:case_id/trends", h.GetCaseTrendsHandler.Handle)
		}

		v1.Get("/versions/:version_id", h.GetCaseVersionHandler.Handle)
	}
	return nil
}
