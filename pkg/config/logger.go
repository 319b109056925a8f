package config

import (
	"github.com/XiaoConstantine/evo-go/pkg/errors"
	"github.com/XiaoConstantine/evo-go/pkg/logging"
)

// Logger builds a logger from the logging section: console output at
// the configured level, plus an optional file output.
func (c *Config) Logger() (*logging.Logger, error) {
	outputs := []logging.Output{logging.NewConsoleOutput(true)}
	if c.Logging.File != "" {
		fileOutput, err := logging.NewFileOutput(c.Logging.File)
		if err != nil {
			return nil, errors.WithFields(
				errors.Wrap(err, errors.InvalidConfig, "failed to open log file"),
				errors.Fields{"path": c.Logging.File})
		}
		outputs = append(outputs, fileOutput)
	}
	return logging.NewLogger(logging.Config{
		Severity: logging.ParseSeverity(c.Logging.Level),
		Outputs:  outputs,
	}), nil
}
