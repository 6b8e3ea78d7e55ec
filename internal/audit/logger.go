package audit

import (
	"encoding/json"

	"github.com/BruksfildServices01/barberhub/internal/logging"
)

// Logger registra eventos de auditoria como log estruturado. Em modo demo
// não há banco: o histórico vive no stream de logs do processo.
type Logger struct {
	log *logging.Logger
}

func New(log *logging.Logger) *Logger {
	return &Logger{log: log}
}

func (l *Logger) Log(
	shopID string,
	userID string,
	action string,
	entity string,
	entityID string,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	l.log.Info("audit_event",
		"shop_id", shopID,
		"user_id", userID,
		"action", action,
		"entity", entity,
		"entity_id", entityID,
		"metadata", metaJSON,
	)

	return nil
}
