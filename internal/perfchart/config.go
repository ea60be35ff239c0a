package perfchart

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Options is resolved in layers: defaults, then an optional .env file,
// then PERFPLOT_* environment variables, then command-line flags.
type Options struct {
	Chart  ChartConfig  `mapstructure:"chart"`
	Output OutputConfig `mapstructure:"output"`
	App    AppConfig    `mapstructure:"app"`
}

type ChartConfig struct {
	Width    int    `mapstructure:"width"`
	Height   int    `mapstructure:"height"`
	Title    string `mapstructure:"title"`
	XLabel   string `mapstructure:"x_label"`
	FontPath string `mapstructure:"font"`
}

type OutputConfig struct {
	Path string `mapstructure:"path"`
}

type AppConfig struct {
	Verbose bool `mapstructure:"verbose"`
}

// LoadOptions resolves chart options. flags may be nil when no command-line
// flag set participates (tests mostly pass nil).
func LoadOptions(flags *pflag.FlagSet) (*Options, error) {
	godotenv.Load(".env")

	v := viper.New()

	setDefaults(v)
	v.AutomaticEnv()
	setupEnvAliases(v)

	if flags != nil {
		bindFlags(v, flags)
	}

	var opts Options
	if err := v.Unmarshal(&opts); err != nil {
		return nil, fmt.Errorf("failed to resolve options: %w", err)
	}

	if err := validateOptions(&opts); err != nil {
		return nil, err
	}

	return &opts, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("chart.width", DefaultWidth)
	v.SetDefault("chart.height", DefaultHeight)
	v.SetDefault("chart.title", DefaultTitle)
	v.SetDefault("chart.x_label", DefaultXLabel)
	v.SetDefault("chart.font", "")

	v.SetDefault("output.path", "")

	v.SetDefault("app.verbose", false)
}

func setupEnvAliases(v *viper.Viper) {
	v.BindEnv("chart.width", "PERFPLOT_CHART_WIDTH")
	v.BindEnv("chart.height", "PERFPLOT_CHART_HEIGHT")
	v.BindEnv("chart.title", "PERFPLOT_CHART_TITLE")
	v.BindEnv("chart.x_label", "PERFPLOT_CHART_X_LABEL")
	v.BindEnv("chart.font", "PERFPLOT_CHART_FONT")

	v.BindEnv("output.path", "PERFPLOT_OUTPUT_PATH")

	v.BindEnv("app.verbose", "PERFPLOT_VERBOSE")
}

// bindFlags maps the command's flat flag names onto the dotted option keys.
// Only flags the command actually registers are bound.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	bindings := map[string]string{
		"chart.width":  "width",
		"chart.height": "height",
		"chart.font":   "font",
		"output.path":  "out",
		"app.verbose":  "verbose",
	}
	for key, name := range bindings {
		if f := flags.Lookup(name); f != nil {
			v.BindPFlag(key, f)
		}
	}
}

func validateOptions(opts *Options) error {
	if opts.Chart.Width <= 0 {
		return fmt.Errorf("chart width must be positive, got %d", opts.Chart.Width)
	}
	if opts.Chart.Height <= 0 {
		return fmt.Errorf("chart height must be positive, got %d", opts.Chart.Height)
	}
	return nil
}
