package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Analysis   AnalysisConfig   `yaml:"analysis" mapstructure:"analysis"`
	Input      InputConfig      `yaml:"input" mapstructure:"input"`
	Strategies StrategiesConfig `yaml:"strategies" mapstructure:"strategies"`
	Chart      ChartConfig      `yaml:"chart" mapstructure:"chart"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
}

// AnalysisConfig holds the parameters of the acceptability analysis.
type AnalysisConfig struct {
	NumRuns       int     `yaml:"num_runs" mapstructure:"num_runs"` // 0 = infer from input
	NumStrategies int     `yaml:"num_strategies" mapstructure:"num_strategies"`
	WTPMin        float64 `yaml:"wtp_min" mapstructure:"wtp_min"`
	WTPMax        float64 `yaml:"wtp_max" mapstructure:"wtp_max"`
	WTPSteps      int     `yaml:"wtp_steps" mapstructure:"wtp_steps"`
	Workers       int     `yaml:"workers" mapstructure:"workers"`
	Strict        bool    `yaml:"strict" mapstructure:"strict"`
	Tolerance     float64 `yaml:"tolerance" mapstructure:"tolerance"`
}

// InputConfig configures how PSA results are read.
type InputConfig struct {
	Format    string `yaml:"format" mapstructure:"format"` // csv, xlsx, or empty for by-extension
	HasHeader bool   `yaml:"has_header" mapstructure:"has_header"`
	Sheet     string `yaml:"sheet" mapstructure:"sheet"`
}

// StrategiesConfig points at an optional YAML file of strategy labels.
type StrategiesConfig struct {
	LabelsFile string `yaml:"labels_file" mapstructure:"labels_file"`
}

// ChartConfig configures the rendered acceptability curve.
type ChartConfig struct {
	Title       string  `yaml:"title" mapstructure:"title"`
	XLabel      string  `yaml:"x_label" mapstructure:"x_label"`
	YLabel      string  `yaml:"y_label" mapstructure:"y_label"`
	LegendTitle string  `yaml:"legend_title" mapstructure:"legend_title"`
	WidthIn     float64 `yaml:"width_in" mapstructure:"width_in"`
	HeightIn    float64 `yaml:"height_in" mapstructure:"height_in"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("CEAC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("analysis.num_runs", 1000)
	v.SetDefault("analysis.num_strategies", 5)
	v.SetDefault("analysis.wtp_min", 0.0)
	v.SetDefault("analysis.wtp_max", 500000.0)
	v.SetDefault("analysis.wtp_steps", 50)
	v.SetDefault("analysis.workers", 4)
	v.SetDefault("analysis.strict", true)
	v.SetDefault("analysis.tolerance", 1e-9)
	v.SetDefault("input.format", "")
	v.SetDefault("input.has_header", true)
	v.SetDefault("input.sheet", "")
	v.SetDefault("strategies.labels_file", "")
	v.SetDefault("chart.title", "Cost Effectiveness Acceptability Curve")
	v.SetDefault("chart.x_label", "Willingness-to-Pay Threshold")
	v.SetDefault("chart.y_label", "Probability Cost-Effective")
	v.SetDefault("chart.legend_title", "Screening Strategy")
	v.SetDefault("chart.width_in", 8.0)
	v.SetDefault("chart.height_in", 5.0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate rejects analysis settings the pipeline cannot run with.
func (c *Config) Validate() error {
	a := c.Analysis
	switch {
	case a.NumStrategies < 1:
		return eris.Errorf("config: analysis.num_strategies must be positive, got %d", a.NumStrategies)
	case a.NumRuns < 0:
		return eris.Errorf("config: analysis.num_runs must not be negative, got %d", a.NumRuns)
	case a.WTPSteps < 2:
		return eris.Errorf("config: analysis.wtp_steps must be at least 2, got %d", a.WTPSteps)
	case !(a.WTPMax > a.WTPMin):
		return eris.Errorf("config: analysis.wtp_max (%g) must exceed wtp_min (%g)", a.WTPMax, a.WTPMin)
	case a.Workers < 1:
		return eris.Errorf("config: analysis.workers must be positive, got %d", a.Workers)
	case a.Tolerance < 0:
		return eris.Errorf("config: analysis.tolerance must not be negative, got %g", a.Tolerance)
	}

	switch strings.ToLower(c.Input.Format) {
	case "", "csv", "xlsx":
	default:
		return eris.Errorf("config: unsupported input.format %q", c.Input.Format)
	}

	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
