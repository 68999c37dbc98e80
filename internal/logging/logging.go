// Package logging sets up the rotating run log and adapts it into the
// engine's event sink.
package logging

import (
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"macsweep/internal/engine"
	"macsweep/internal/remove"
)

// New returns a logger writing to a size-rotated file under dir.
func New(dir string) (*log.Logger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	out := &lumberjack.Logger{
		Filename:   filepath.Join(dir, "macsweep.log"),
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     30, // days
		Compress:   true,
	}
	return log.New(out, "", log.LstdFlags), nil
}

// EventSink adapts a logger into the engine's event sink, one line per
// event in key=value form.
func EventSink(l *log.Logger) engine.Sink {
	return engine.SinkFunc(func(e engine.Event) {
		switch e.Kind {
		case engine.EventRunStarted:
			l.Printf("event=%s mode=%s", e.Kind, e.Mode)
		case engine.EventCategoryStarted:
			l.Printf("event=%s category=%s", e.Kind, e.Category)
		case engine.EventOutcome:
			out := e.Outcome
			if out.Status == remove.StatusSkipped {
				l.Printf("event=%s category=%s path=%q status=%s reason=%q", e.Kind, e.Category, out.Path, out.Status, out.Reason)
			} else {
				l.Printf("event=%s category=%s path=%q status=%s bytes=%d", e.Kind, e.Category, out.Path, out.Status, out.SizeBytes)
			}
		case engine.EventRunFinished:
			l.Printf("event=%s bytes_freed=%d", e.Kind, e.BytesFreed)
		}
	})
}
