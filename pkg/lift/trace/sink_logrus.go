package trace

import (
	"github.com/sirupsen/logrus"
)

type LogrusSink struct {
	logger logrus.FieldLogger
	level  logrus.Level
}

func NewLogrusSink(logger *logrus.Logger, level logrus.Level) *LogrusSink {
	return &LogrusSink{logger: logger, level: level}
}

func (s *LogrusSink) Emit(r Record) {
	s.logger.WithFields(logrus.Fields{
		"call":     r.Call.String(),
		"function": r.Function,
	}).Logf(s.level, "%s", r)
}
