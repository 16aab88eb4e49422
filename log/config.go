package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLogMaxSize = 300 // MB

type FileLogConfig struct {
	LogPath    string `yaml:"log_path" mapstructure:"log_path"`
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"`
	MaxDays    int    `yaml:"max_days" mapstructure:"max_days"`
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
}

type Config struct {
	Level  string         `yaml:"level" mapstructure:"level"`
	Format string         `yaml:"format" mapstructure:"format"` // text or json
	Stdout bool           `yaml:"stdout" mapstructure:"stdout"`
	File   *FileLogConfig `yaml:"file" mapstructure:"file"`
	// DisableCaller stops annotating logs with the calling function's file and line.
	DisableCaller bool           `yaml:"disable_caller" mapstructure:"disable_caller"`
	Handlers      []zapcore.Core `yaml:"-" mapstructure:"-"`
}

// ZapProperties records the core pieces of a built logger so the level can change at runtime.
type ZapProperties struct {
	Core   zapcore.Core
	Syncer zapcore.WriteSyncer
	Level  zap.AtomicLevel
}

func (cfg *Config) buildOptions() []zap.Option {
	opts := []zap.Option{zap.AddStacktrace(zap.ErrorLevel)}
	if !cfg.DisableCaller {
		opts = append(opts, zap.AddCaller())
	}
	return opts
}

func (cfg *Config) encoder() zapcore.Encoder {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000")
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encCfg.EncodeCaller = zapcore.ShortCallerEncoder
	if cfg.Format == "json" {
		return zapcore.NewJSONEncoder(encCfg)
	}
	return zapcore.NewConsoleEncoder(encCfg)
}
