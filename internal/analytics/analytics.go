// Package analytics emits fire-and-forget usage events. Delivery is
// best-effort by design: emitter construction and writes may fail silently,
// and nothing in the application reads events back for decisions.
package analytics

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Event names emitted by the session and the result view.
const (
	EventEntryStart   = "entry_start"
	EventResultView   = "result_view"
	EventConsultClick = "consult_click"
)

type Emitter interface {
	Event(name string, fields ...zap.Field)
}

// Nop discards every event.
type Nop struct{}

func (Nop) Event(string, ...zap.Field) {}

// Log appends JSON event records to a log file, stamping each with the
// session id.
type Log struct {
	logger  *zap.Logger
	session string
}

// NewLog opens (or creates) the event log at path. Any failure degrades to a
// Nop emitter: analytics must never block the interaction.
func NewLog(path string) Emitter {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return Nop{}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return Nop{}
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(f), zapcore.InfoLevel)

	return &Log{
		logger:  zap.New(core),
		session: uuid.NewString(),
	}
}

func (l *Log) Event(name string, fields ...zap.Field) {
	fields = append(fields, zap.String("session", l.session))
	l.logger.Info(name, fields...)
	_ = l.logger.Sync()
}
