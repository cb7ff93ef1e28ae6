package http

import "github.com/gofiber/fiber/v2"

const ErrInvalidJsonPayload = "invalid JSON payload"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Proxy
	ProxyHandler Handler

	// Providers
	ListProvidersHandler Handler

	// Provider keys
	CreateProviderKeyHandler   Handler
	ListProviderKeysHandler    Handler
	DeleteProviderKeyHandler   Handler
	ActivateProviderKeyHandler Handler

	// Executions
	ListExecutionsHandler  Handler
	GetExecutionHandler    Handler
	DeleteExecutionHandler Handler
	ClearExecutionsHandler Handler

	// Misc
	GetVersionHandler Handler
}
