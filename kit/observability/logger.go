package observability

import (
	"log"
	"os"
)

type Logger struct {
	l         *log.Logger
	component string
}

func NewLogger(component string) *Logger {
	return &Logger{l: log.New(os.Stdout, "", log.LstdFlags|log.LUTC), component: component}
}

func (lg *Logger) Info(msg string, kv ...any) {
	lg.print("INFO", msg, kv)
}

func (lg *Logger) Warn(msg string, kv ...any) {
	lg.print("WARN", msg, kv)
}

func (lg *Logger) Error(msg string, kv ...any) {
	lg.print("ERROR", msg, kv)
}

func (lg *Logger) print(level, msg string, kv []any) {
	head := []any{level}
	if lg.component != "" {
		head = append(head, "component="+lg.component)
	}
	lg.l.Println(append(append(head, msg), kv...)...)
}
