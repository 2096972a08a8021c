package app

import (
	"context"
	"os"

	"github.com/GaryWal/gamingplatformfresh/coordinator"
	"github.com/GaryWal/gamingplatformfresh/errors"
	"github.com/GaryWal/gamingplatformfresh/logging"
	"github.com/GaryWal/gamingplatformfresh/scoring"
	"github.com/GaryWal/gamingplatformfresh/stores"
	"github.com/GaryWal/gamingplatformfresh/web_server"
	"github.com/GaryWal/gamingplatformfresh/ws"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
	"gopkg.in/natefinch/lumberjack.v2"
)

// App is a complete gaming hub instance.
type App struct {
	// config is the main config used for the App.
	config Config
	// mall provides the in-memory stores.
	mall *stores.Mall
	// aggregator processes score submissions.
	aggregator *scoring.Aggregator
	// coordinator handles venue sessions on live connections.
	coordinator *coordinator.Coordinator
	// wsHub is the hub for websocket connections.
	wsHub *ws.Hub
	// webServer is used for http requests and websocket connection.
	webServer *web_server.WebServer
}

func NewApp(config Config) *App {
	return &App{
		config: config,
	}
}

// Boot sets everything up based on the set config and boots.
func (app *App) Boot(ctx context.Context) error {
	// Validate config.
	err := ValidateConfig(app.config)
	if err != nil {
		return errors.Error{
			Code:    errors.ErrFatal,
			Err:     err,
			Message: "invalid config",
		}
	}
	// Setup logger.
	logger := setupLogging(app.config.Log)
	logging.ApplyToGlobalLoggers(logger)
	defer func(loggerToSync *zap.Logger) {
		_ = loggerToSync.Sync()
	}(logger)
	// Boot.
	err = app.boot(ctx)
	if err != nil {
		err = errors.Wrap(err, "boot", nil)
		errors.Log(logging.AppLogger, err)
		return err
	}
	return nil
}

func (app *App) boot(ctx context.Context) error {
	logging.AppLogger.Warn("booting up")
	// Load game catalog.
	catalog, err := loadCatalog(app.config)
	if err != nil {
		return errors.Wrap(err, "load game catalog", nil)
	}
	logging.AppLogger.Debug("setting up...")
	// Create stores with the loaded catalog.
	app.mall, err = stores.NewMall(catalog)
	if err != nil {
		return errors.Wrap(err, "create mall", nil)
	}
	logging.AppLogger.Info("game catalog ready", zap.Int("games", len(app.mall.Games())))
	// Create score aggregator.
	app.aggregator = scoring.NewAggregator(app.mall)
	// Create session coordinator.
	app.coordinator = coordinator.NewCoordinator(app.mall, app.aggregator)
	// Create websocket hub.
	app.wsHub = ws.NewHub(app.coordinator)
	// Create web server.
	app.webServer, err = web_server.NewWebServer(web_server.Config{
		ServeAddr:    app.config.ServeAddr,
		WriteTimeout: web_server.DefaultWriteTimeout,
		ReadTimeout:  web_server.DefaultReadTimeout,
	}, app.mall)
	if err != nil {
		return errors.Wrap(err, "create web server", nil)
	}
	logging.AppLogger.Debug("setup completed. booting...")
	// Boot everything.
	wg, lifetime := errgroup.WithContext(ctx)
	wg.Go(func() error {
		app.wsHub.Run(lifetime)
		return nil
	})
	app.webServer.PopulateRoutes(app.wsHub, lifetime)
	wg.Go(func() error {
		if err := app.webServer.Run(lifetime); err != nil {
			return errors.Wrap(err, "run web server", nil)
		}
		return nil
	})
	logging.AppLogger.Warn("completed issuing boot commands")
	// Wait for exit.
	<-lifetime.Done()
	logging.AppLogger.Warn("shutting down")
	return wg.Wait()
}

func setupLogging(config LogConfig) *zap.Logger {
	encConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	cores := make([]zapcore.Core, 0)
	// Setup stdout logger with colorful level output.
	stdOutEncConfig := encConfig
	stdOutEncConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cores = append(cores, zapcore.NewCore(
		zapcore.NewConsoleEncoder(stdOutEncConfig),
		zapcore.Lock(os.Stdout),
		zap.LevelEnablerFunc(func(level zapcore.Level) bool {
			return level >= config.StdoutLogLevel
		})))
	// Setup error logger.
	cores = append(cores, zapcore.NewCore(
		zapcore.NewConsoleEncoder(encConfig),
		zapcore.Lock(os.Stderr),
		zap.LevelEnablerFunc(func(level zapcore.Level) bool {
			return level >= zap.ErrorLevel
		})))
	// Setup high priority logger.
	if config.HighPriorityOutput.Valid {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encConfig),
			zapcore.AddSync(&lumberjack.Logger{
				Filename: config.HighPriorityOutput.String,
				MaxSize:  config.MaxSize,
				MaxAge:   config.KeepDays,
			}),
			zap.LevelEnablerFunc(func(level zapcore.Level) bool {
				return level >= zap.WarnLevel
			})))
	}
	// Setup debug logger.
	if config.DebugOutput.Valid {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encConfig),
			zapcore.AddSync(&lumberjack.Logger{
				Filename: config.DebugOutput.String,
				MaxSize:  config.MaxSize,
				MaxAge:   config.KeepDays,
			}),
			zap.LevelEnablerFunc(func(level zapcore.Level) bool {
				return level >= zap.DebugLevel
			})))
	}
	// Combine.
	return zap.New(zapcore.NewTee(cores...))
}
