package main

import (
	"flag"
	"log/slog"
)

// levelVar registers -loglevel on fs. Levels parse as slog does: a name,
// any case, with an optional offset such as "debug+2".
func levelVar(fs *flag.FlagSet, l *slog.Level) {
	fs.TextVar(l, "loglevel", slog.LevelWarn, "log level: debug, info, warn, error")
}
