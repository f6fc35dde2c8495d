package utils

import (
	"strings"

	"tripplanner/internal/logger"

	"go.uber.org/zap"
)

// LogEvent writes a standardized service event with module/action/request_id.
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(requestID, module, action, message string) {
	logger.Get().Info(message,
		zap.String("module", strings.ToLower(module)),
		zap.String("action", action),
		zap.String("request_id", strings.TrimSpace(requestID)),
	)
}
