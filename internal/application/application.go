package application

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/eugenenazirov/packer/internal/config"
	"github.com/eugenenazirov/packer/pkg/packer"
)

// App runs packing jobs with the resolved configuration.
type App struct {
	cfg      config.Config
	logger   *zap.Logger
	newRunID func() string
}

// Option configures App behaviour.
type Option func(*App)

// WithRunIDGenerator overrides how run identifiers are produced, primarily for tests.
func WithRunIDGenerator(gen func() string) Option {
	return func(a *App) {
		a.newRunID = gen
	}
}

// New initializes the application from the provided configuration.
func New(cfg config.Config, logger *zap.Logger, opts ...Option) (*App, error) {
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if cfg.CurrencySymbol == "" {
		return nil, errors.New("currency symbol is required")
	}

	app := &App{
		cfg:      cfg,
		logger:   logger,
		newRunID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(app)
	}
	return app, nil
}

// Run packs the input file at path and returns the result rows. Every run
// gets its own packer and a run_id attached to all of its log entries.
func (a *App) Run(path string) (string, error) {
	logger := a.logger.With(
		zap.String("run_id", a.newRunID()),
		zap.String("path", path),
	)
	p := packer.New(
		packer.WithCurrencySymbol(a.cfg.CurrencySymbol),
		packer.WithLogger(logger),
	)

	logger.Info("packing started", zap.String("currency_symbol", a.cfg.CurrencySymbol))
	start := time.Now()

	result, err := p.Pack(path)
	elapsed := time.Since(start)
	if err != nil {
		logger.Error("packing failed", zap.Error(err), zap.Duration("duration", elapsed))
		return "", err
	}

	logger.Info("packing completed",
		zap.Int("packages", countRows(result)),
		zap.Duration("duration", elapsed),
	)
	return result, nil
}

func countRows(result string) int {
	if result == "" {
		return 0
	}
	return strings.Count(result, packer.LineSeparator) + 1
}
