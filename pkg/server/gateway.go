package server

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/modelshift-ai/modelshift-gateway/pkg/config"
	handlers "github.com/modelshift-ai/modelshift-gateway/pkg/handlers/http"
	"github.com/modelshift-ai/modelshift-gateway/pkg/middleware"
)

type (
	GatewayServerDI struct {
		MiddlewareTransport middleware.Transport
		HandlerTransport    handlers.HandlerTransport
		Config              *config.Config
		Logger              *logrus.Logger
	}
	GatewayServer struct {
		*BaseServer
		middlewareTransport middleware.Transport
		handlerTransport    handlers.HandlerTransport
	}
)

func NewGatewayServer(di GatewayServerDI) *GatewayServer {
	return &GatewayServer{
		BaseServer:          NewBaseServer(di.Config, di.Logger),
		middlewareTransport: di.MiddlewareTransport,
		handlerTransport:    di.HandlerTransport,
	}
}

func (s *GatewayServer) Run() error {
	s.setupRoutes()
	s.setupHealthCheck()
	s.setupMetricsEndpoint()

	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.logger.WithField("addr", addr).Info("starting gateway server")
	return s.router.Listen(addr)
}

func (s *GatewayServer) setupRoutes() {
	s.router.Use(s.middlewareTransport.PanicRecoveryMiddleware.Middleware())
	s.router.Use(s.middlewareTransport.CORSMiddleware.Middleware())
	s.router.Use(s.middlewareTransport.MetricsMiddleware.Middleware())

	v1 := s.router.Group("/api/v1")

	// Version is the only unauthenticated API route.
	v1.Get("/version", s.handlerTransport.GetVersionHandler.Handle)

	authed := v1.Group("", s.middlewareTransport.AuthMiddleware.Middleware())
	{
		authed.Post("/proxy", s.handlerTransport.ProxyHandler.Handle)
		authed.Get("/providers", s.handlerTransport.ListProvidersHandler.Handle)

		keys := authed.Group("/keys")
		{
			keys.Post("", s.handlerTransport.CreateProviderKeyHandler.Handle)
			keys.Get("", s.handlerTransport.ListProviderKeysHandler.Handle)
			keys.Delete("/:id", s.handlerTransport.DeleteProviderKeyHandler.Handle)
			keys.Put("/:id/activate", s.handlerTransport.ActivateProviderKeyHandler.Handle)
		}

		executions := authed.Group("/executions")
		{
			executions.Get("", s.handlerTransport.ListExecutionsHandler.Handle)
			executions.Get("/:id", s.handlerTransport.GetExecutionHandler.Handle)
			executions.Delete("", s.handlerTransport.ClearExecutionsHandler.Handle)
			executions.Delete("/:id", s.handlerTransport.DeleteExecutionHandler.Handle)
		}
	}
}

func (s *GatewayServer) Shutdown() error {
	return s.router.Shutdown()
}
