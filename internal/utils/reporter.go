package utils

// ConsoleReporter implements domain.Reporter on top of a Logger
type ConsoleReporter struct {
	logger *Logger
}

// NewConsoleReporter creates a reporter writing through logger
func NewConsoleReporter(logger *Logger) *ConsoleReporter {
	if logger == nil {
		logger = NewLogger(LoggerOptions{})
	}
	return &ConsoleReporter{logger: logger}
}

// Info reports a status message
func (r *ConsoleReporter) Info(msg string) {
	r.logger.Info().Msg(msg)
}

// Warn reports a recoverable problem
func (r *ConsoleReporter) Warn(msg string) {
	r.logger.Warn().Msg(msg)
}

// Error reports a failure
func (r *ConsoleReporter) Error(msg string) {
	r.logger.Error().Msg(msg)
}
