package server

import (
	"fmt"

	"github.com/NeuralTrust/TrustDrift/pkg/config"
	handlers "github.com/NeuralTrust/TrustDrift/pkg/handlers/http"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/prometheus"
	"github.com/NeuralTrust/TrustDrift/pkg/middleware"
	"github.com/NeuralTrust/TrustDrift/pkg/server/router"
	"github.com/sirupsen/logrus"
)

type (
	APIServerDI struct {
		Config              *config.Config
		Logger              *logrus.Logger
		MiddlewareTransport middleware.Transport
		HandlerTransport    handlers.HandlerTransport
	}
	APIServer struct {
		*BaseServer
		middlewareTransport middleware.Transport
		handlerTransport    handlers.HandlerTransport
	}
)

func NewAPIServer(di APIServerDI) *APIServer {
	prometheus.Initialize(prometheus.MetricsConfig{
		EnableLatency: di.Config.Metrics.EnableLatency,
		EnableFlags:   di.Config.Metrics.EnableFlags,
	})

	s := &APIServer{
		BaseServer:          NewBaseServer(di.Config, di.Logger),
		middlewareTransport: di.MiddlewareTransport,
		handlerTransport:    di.HandlerTransport,
	}
	s.setupHealthCheck()
	s.WithRouters(router.NewAPIRouter(&s.middlewareTransport, s.handlerTransport, di.Config.Server.SwaggerURL))
	return s
}

func (s *APIServer) Run() error {
	s.setupMetricsEndpoint()
	addr := fmt.Sprintf(":%d", s.Config.Server.Port)
	s.Logger.WithField("addr", addr).Info("starting api server")
	return s.Router.Listen(addr)
}

func (s *APIServer) Shutdown() error {
	s.shutdownMetrics()
	return s.Router.Shutdown()
}
