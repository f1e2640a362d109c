package trace

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ZapSink struct {
	logger *zap.Logger
	level  zapcore.Level
}

func NewZapSink(logger *zap.Logger, level zapcore.Level) *ZapSink {
	return &ZapSink{logger: logger, level: level}
}

func (s *ZapSink) Emit(r Record) {
	if ce := s.logger.Check(s.level, r.String()); ce != nil {
		ce.Write(
			zap.String("call", r.Call.String()),
			zap.String("function", r.Function),
		)
	}
}
