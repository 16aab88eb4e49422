package log

import (
	"errors"
	"fmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
	"os"
	"sync/atomic"
)

var _globalL, _globalP, _globalS atomic.Value

func init() {
	l, p, _ := InitLogger(&Config{Level: "info", Stdout: true})
	ReplaceGlobals(l, p)
}

// InitLogger initializes a zap logger writing to stdout and/or a rotated file.
func InitLogger(cfg *Config, opts ...zap.Option) (*zap.Logger, *ZapProperties, error) {
	var outputs []zapcore.WriteSyncer
	if cfg.File != nil && len(cfg.File.LogPath) > 0 {
		lg, err := initFileLog(cfg.File)
		if err != nil {
			return nil, nil, err
		}
		outputs = append(outputs, zapcore.AddSync(lg))
	}
	if cfg.Stdout || len(outputs) == 0 {
		outputs = append(outputs, zapcore.Lock(os.Stdout))
	}
	level := zap.NewAtomicLevel()
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, nil, fmt.Errorf("bad log level %s: %w", cfg.Level, err)
		}
	}
	output := zap.CombineWriteSyncers(outputs...)
	core := zapcore.NewCore(cfg.encoder(), output, level)
	if len(cfg.Handlers) > 0 {
		core = zapcore.NewTee(append([]zapcore.Core{core}, cfg.Handlers...)...)
	}
	opts = append(cfg.buildOptions(), opts...)
	lg := zap.New(core, opts...)
	return lg, &ZapProperties{Core: core, Syncer: output, Level: level}, nil
}

func initFileLog(cfg *FileLogConfig) (*lumberjack.Logger, error) {
	if st, err := os.Stat(cfg.LogPath); err == nil && st.IsDir() {
		return nil, errors.New("can't use directory as log file name")
	}
	if cfg.MaxSize == 0 {
		cfg.MaxSize = defaultLogMaxSize
	}
	return &lumberjack.Logger{
		Filename:   cfg.LogPath,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxDays,
		LocalTime:  true,
	}, nil
}

// L returns the global Logger. It's safe for concurrent use.
func L() *zap.Logger {
	return _globalL.Load().(*zap.Logger)
}

func S() *zap.SugaredLogger {
	return _globalS.Load().(*zap.SugaredLogger)
}

func ReplaceGlobals(logger *zap.Logger, props *ZapProperties) {
	_globalL.Store(logger)
	_globalS.Store(logger.Sugar())
	_globalP.Store(props)
}

func Sync() error {
	if err := L().Sync(); err != nil {
		return err
	}
	return S().Sync()
}

func Level() zap.AtomicLevel {
	return _globalP.Load().(*ZapProperties).Level
}

// SetupLogger is used to initialize the log with config.
func SetupLogger(cfg *Config) {
	logger, p, err := InitLogger(cfg)
	if err != nil {
		Error("initialize logger fail", zap.Error(err))
		return
	}
	ReplaceGlobals(logger, p)
	if cfg.File != nil && len(cfg.File.LogPath) > 0 {
		Info("Log To", zap.String("path", cfg.File.LogPath))
	}
}

func Setup(debug bool, logFile string, handlers ...zapcore.Core) {
	var level = "info"
	if debug {
		level = "debug"
	}
	var file *FileLogConfig
	if len(logFile) > 0 {
		file = &FileLogConfig{LogPath: logFile}
	}
	SetupLogger(&Config{
		Stdout:   true,
		Format:   "text",
		Level:    level,
		File:     file,
		Handlers: handlers,
	})
}
