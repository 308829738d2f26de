package slowlog

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Threshold above which a breakpoint is reported as a warning.
var Threshold = 2 * time.Second

type Logger interface {
	Start(name string)
	Stop(name string) time.Duration
}

type slowLogger struct {
	log           *zerolog.Logger
	ongoingTimers map[string]time.Time
	sync.Mutex
}

func (s *slowLogger) Start(name string) {
	s.Lock()
	s.ongoingTimers[name] = time.Now()
	s.Unlock()
}

func (s *slowLogger) Stop(name string) time.Duration {
	s.Lock()
	defer s.Unlock()

	start, ok := s.ongoingTimers[name]
	if !ok {
		return 0
	}

	duration := time.Since(start)

	event := s.log.Debug()
	if duration > Threshold {
		event = s.log.Warn()
	}

	event.
		Float64("duration", duration.Seconds()).
		Str("breakpoint_name", name).
		Msg("")

	delete(s.ongoingTimers, name)

	return duration
}

// Measure starts a breakpoint and returns the func stopping it.
func Measure(logger Logger, name string) func() {
	logger.Start(name)

	return func() {
		logger.Stop(name)
	}
}

func CreateLogger(log *zerolog.Logger) *slowLogger {
	logger := log.With().Str("label", "slowlog").Logger()
	return &slowLogger{
		log:           &logger,
		ongoingTimers: make(map[string]time.Time),
	}
}
