package cndata

import (
	"github.com/banbox/cndata/errs"
	"github.com/banbox/cndata/log"
	"github.com/banbox/cndata/utils"
	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

/*
Config settings of one adapter instance. Loaded from yaml and/or the options map;
the options map keys are the Opt* constants.
*/
type Config struct {
	// seconds
	Timeout int `yaml:"timeout" mapstructure:"Timeout"`
	// extra attempts on transient request failures
	Retries int `yaml:"retries" mapstructure:"Retries"`
	// milliseconds
	RetryWait int `yaml:"retry_wait" mapstructure:"RetryWait"`
	// attempts per instrument in batch fetches
	BatchTries   int         `yaml:"batch_tries" mapstructure:"BatchTries"`
	Concurrency  int         `yaml:"concurrency" mapstructure:"Concurrency"`
	Proxy        string      `yaml:"proxy" mapstructure:"Proxy"`
	UserAgent    string      `yaml:"user_agent" mapstructure:"UserAgent"`
	DumpDir      string      `yaml:"dump_dir" mapstructure:"DumpDir"`
	CalendarPath string      `yaml:"calendar_path" mapstructure:"CalendarPath"`
	ProductsPath string      `yaml:"products_path" mapstructure:"ProductsPath"`
	Debug        bool        `yaml:"debug" mapstructure:"DebugApi"`
	Log          *log.Config `yaml:"log" mapstructure:"-"`
}

func DefaultConfig() *Config {
	return &Config{
		Timeout:     DefTimeoutSecs,
		RetryWait:   DefRetryWaitMS,
		BatchTries:  DefBatchTries,
		Concurrency: 1,
		UserAgent:   DefUserAgent,
	}
}

// LoadConfig read a yaml config file over the defaults
func LoadConfig(path string) (*Config, *errs.Error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := utils.ReadFile(path)
	if err != nil {
		return nil, errs.New(errs.CodeIOReadFail, err)
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, errs.New(errs.CodeUnmarshalFail, err)
	}
	return cfg, nil
}

/*
ParseOptions build the Config from the options map, starting from
the yaml file named by OptConfigPath when present.
*/
func ParseOptions(options map[string]interface{}) (*Config, *errs.Error) {
	cfg, err := LoadConfig(utils.GetMapVal(options, OptConfigPath, ""))
	if err != nil {
		return nil, err
	}
	dec, err_ := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           cfg,
	})
	if err_ != nil {
		return nil, errs.New(errs.CodeRunTime, err_)
	}
	if err_ = dec.Decode(options); err_ != nil {
		return nil, errs.New(errs.CodeParamInvalid, err_)
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	if cfg.BatchTries < 1 {
		cfg.BatchTries = 1
	}
	if cfg.Log != nil {
		log.SetupLogger(cfg.Log)
	}
	return cfg, nil
}
