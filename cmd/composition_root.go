package cmd

import (
	"log/slog"

	httpin "coffee/internal/adapters/in/http"
	"coffee/internal/core/application/usecases/commands"
	"coffee/internal/core/application/usecases/queries"
)

type CompositionRoot struct {
	config Config
	logger *slog.Logger
}

func NewCompositionRoot(config Config, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config: config,
		logger: logger,
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateQuoteOrderCommandHandler() commands.QuoteOrderCommandHandler {
	return commands.NewQuoteOrderCommandHandler(c.logger)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.logger)
}

// CreateRateLimiter returns nil when rate limiting is turned off.
func (c *CompositionRoot) CreateRateLimiter() (*httpin.RateLimiter, error) {
	rps, burst, err := c.config.RateLimit()
	if err != nil {
		return nil, err
	}
	if rps <= 0 {
		return nil, nil
	}
	return httpin.NewRateLimiter(rps, burst), nil
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateQuoteOrderCommandHandler(),
		c.CreateGetMenuQueryHandler(),
		c.logger,
	)
}
