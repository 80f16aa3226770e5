package logger

import (
	"log/slog"
	"os"
)

var log *slog.Logger

// Init configures the process logger. Production gets JSON output,
// everything else a human-readable text handler with debug enabled.
func Init(environment string) {
	var handler slog.Handler
	if environment == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	log = slog.New(handler)
	slog.SetDefault(log)
}

func get() *slog.Logger {
	if log == nil {
		Init("development")
	}
	return log
}

func Info(msg string, args ...any) {
	get().Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	get().Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	get().Error(msg, normalize(args)...)
}

func Fatal(msg string, args ...any) {
	get().Error(msg, normalize(args)...)
	os.Exit(1)
}

// normalize lets call sites pass a bare error (or any value) instead of a
// key/value pair; unpaired values are logged under the "error" key.
func normalize(args []any) []any {
	out := make([]any, 0, len(args))
	for i := 0; i < len(args); {
		if key, ok := args[i].(string); ok && i+1 < len(args) {
			out = append(out, key, args[i+1])
			i += 2
			continue
		}
		out = append(out, slog.Any("error", args[i]))
		i++
	}
	return out
}
