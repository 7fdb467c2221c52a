package common

import (
	"github.com/tractis/proposal-engine/internal/config"
	pkgHTTP "github.com/tractis/proposal-engine/pkg/http"
	"go.uber.org/zap"
)

// NewBaseConnector builds the HTTP connector shared by the auxiliary
// proposal services (text extraction, brand palette): common timeout
// policy, request logging and bearer auth. The connector name tags every
// log line so failures are attributable to a concrete upstream.
func NewBaseConnector(name string, cfg config.HTTPClientConfig, logger *zap.Logger) *pkgHTTP.Connector {
	connCfg := &pkgHTTP.ConnectorConfig{
		Logger:  logger.With(zap.String("connector", name)),
		BaseURL: cfg.Url,
	}

	return pkgHTTP.NewConnector(
		connCfg,
		pkgHTTP.WithRequestTimeout(cfg.RequestTimeout),
		pkgHTTP.WithConnClientTimeout(cfg.ConnTimeout),
		pkgHTTP.WithClientKeepAlive(cfg.KeepAlive),
		pkgHTTP.WithIdleConnTimeout(cfg.IdleConnTimeout),
		pkgHTTP.WithResponseHeaderTimeout(cfg.ResponseHeaderTimeout),
		pkgHTTP.WithRequestLogging(),
		pkgHTTP.WithAuthToken(cfg.Token),
	)
}
