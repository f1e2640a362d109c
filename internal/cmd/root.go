package cmd

import (
	"fmt"
	"os"

	"github.com/ib-77/lift/internal/config"
	"github.com/ib-77/lift/internal/demo"
	"github.com/ib-77/lift/pkg/lift/trace"
	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const tracingKey = "lift.trace"

var (
	configFile string
	sinkName   string
	renderer   string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "liftdemo",
	Short: "Run the lift self-test scenarios",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.InitConfiguration(cmd, configFile)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := setupLogger(config.GetLogLevel())
		defer logger.Sync()

		undo := zap.ReplaceGlobals(logger)
		defer undo()

		sink, err := newSink(config.GetSink(), logger)
		if err != nil {
			return err
		}

		outcomes := demo.Run(trace.WithSink(sink), trace.WithRenderer(newRenderer(config.GetRenderer())))
		printOutcomes(outcomes)

		if failed := demo.Failed(outcomes); failed > 0 {
			return fmt.Errorf("%d of %d scenarios failed", failed, len(outcomes))
		}
		zap.S().Infow("self-test passed", "scenarios", len(outcomes))
		return nil
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&configFile, "config", "", "configuration file")
	rootCmd.Flags().StringVar(&sinkName, "sink", config.SinkStdout, "diagnostic sink: stdout, logrus, zap or tracing")
	rootCmd.Flags().StringVar(&renderer, "renderer", config.RendererDefault, "value renderer: default or spew")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level")
}

func newSink(name string, logger *zap.Logger) (trace.Sink, error) {
	switch name {
	case config.SinkStdout:
		return trace.Stdout(), nil
	case config.SinkLogrus:
		l := logrus.New()
		l.SetOutput(os.Stdout)
		if lvl, err := logrus.ParseLevel(config.GetLogLevel()); err == nil {
			l.SetLevel(lvl)
		}
		return trace.NewLogrusSink(l, logrus.InfoLevel), nil
	case config.SinkZap:
		return trace.NewZapSink(logger.Named("trace"), zapcore.InfoLevel), nil
	case config.SinkTracing:
		return trace.NewTracingSinkFor(tracingKey), nil
	}
	return nil, fmt.Errorf("unknown sink %q", name)
}

func newRenderer(name string) trace.Renderer {
	if name == config.RendererSpew {
		return trace.RenderSpew
	}
	return trace.RenderDefault
}

func printOutcomes(outcomes []demo.Outcome) {
	data := [][]string{
		{"Scenario", "Expected", "Got", "Status"},
	}
	for _, o := range outcomes {
		status := "ok"
		if !o.Passed() {
			status = "FAIL"
		}
		data = append(data, []string{o.Scenario, o.Expected, o.Got, status})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func setupLogger(level string) *zap.Logger {
	loggerCfg := &zap.Config{
		Level:    zap.NewAtomicLevelAt(zapcore.InfoLevel),
		Encoding: "json",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "severity",
			NameKey:        "logger",
			CallerKey:      "caller",
			MessageKey:     "message",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.RFC3339TimeEncoder,
			EncodeDuration: zapcore.MillisDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	atomicLogLevel, err := zap.ParseAtomicLevel(level)
	if err == nil {
		loggerCfg.Level = atomicLogLevel
	}

	plain, err := loggerCfg.Build(zap.AddStacktrace(zap.DPanicLevel))
	if err != nil {
		panic(err)
	}

	return plain
}
