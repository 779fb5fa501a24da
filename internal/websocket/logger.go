package websocket

import (
	"chatboard/pkg/logger"

	"go.uber.org/zap"
)

// eventLogger provides structured logging for WebSocket events
type eventLogger struct {
	logger *zap.Logger
}

func newEventLogger(l *logger.Logger) *eventLogger {
	if l == nil {
		l = logger.NewNop()
	}
	return &eventLogger{logger: l.Logger.With(zap.String("component", "websocket"))}
}

func (l *eventLogger) Info(event, clientID string, fields ...zap.Field) {
	allFields := append([]zap.Field{
		zap.String("event", event),
		zap.String("client_id", clientID),
	}, fields...)
	l.logger.Info("websocket_event", allFields...)
}

func (l *eventLogger) Warn(event, clientID string, err error, fields ...zap.Field) {
	allFields := append([]zap.Field{
		zap.String("event", event),
		zap.String("client_id", clientID),
		zap.Error(err),
	}, fields...)
	l.logger.Warn("websocket_warning", allFields...)
}
