package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Analysis
	AnalyzeHandler  Handler
	DeepDiveHandler Handler
	SuggestHandler  Handler

	// User
	InitUserHandler            Handler
	SaveAPIKeyHandler          Handler
	GetAPIKeyStatusHandler     Handler
	GetSubscriptionHandler     Handler
	UpgradeSubscriptionHandler Handler

	// Case
	CreateCaseHandler  Handler
	ListCasesHandler   Handler
	GetCaseHandler     Handler
	UpdateCaseHandler  Handler
	DeleteCaseHandler  Handler
	ListMembersHandler Handler
	AddMemberHandler   Handler

	// Version
	GetCaseVersionHandler    Handler
	ListCaseVersionsHandler  Handler
	LatestCaseVersionHandler Handler
	GetCaseTrendsHandler     Handler

	GetVersionHandler Handler
}
