// Package logging builds the application logger on top of beego's logs.
package logging

import (
	"fmt"

	"github.com/astaxie/beego/logs"
)

// Logger is what the server components log through. *logs.BeeLogger implements it.
type Logger interface {
	Debug(format string, v ...any)
	Info(format string, v ...any)
	Warn(format string, v ...any)
	Error(format string, v ...any)
}

var _ Logger = new(logs.BeeLogger)

var levels = map[string]int{
	"debug": logs.LevelDebug,
	"info":  logs.LevelInformational,
	"warn":  logs.LevelWarning,
	"error": logs.LevelError,
}

// ParseLevel maps a level name onto beego's level.
func ParseLevel(name string) (int, error) {
	level, ok := levels[name]
	if !ok {
		return 0, fmt.Errorf("unknown log level %q", name)
	}

	return level, nil
}

// New returns a console logger with the given level.
func New(level string) (*logs.BeeLogger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	logger := logs.NewLogger()
	if err = logger.SetLogger(logs.AdapterConsole, `{"color":false}`); err != nil {
		return nil, err
	}

	logger.SetLevel(lvl)

	return logger, nil
}

// Nop discards everything.
type Nop struct{}

func (Nop) Debug(string, ...any) {}
func (Nop) Info(string, ...any)  {}
func (Nop) Warn(string, ...any)  {}
func (Nop) Error(string, ...any) {}
