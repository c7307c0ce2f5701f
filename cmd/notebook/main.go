// Command notebook is a terminal client for the todo API. Every change is
// applied to the local cache first, committed to the server and rolled back
// if the server rejects it; the reconciled state is printed afterwards.
//
// Usage:
//
//	notebook [-url URL] [-y] <command> [args]
//
//	week                         todos of the calendar window starting today
//	day [date]                   todos of one day (default today)
//	list <tab> <list>            todos of one list
//	tabs                         tabs and their lists
//	add <source> <text...>       create a todo
//	done|undo <source> <id>      set or clear completed
//	edit <source> <id> <text...> replace the text
//	rm <source> <id>             delete, after a confirming second Enter
//	mv <id> <from> <to> [over]   drag a todo into another source
//	reorder <source> <id> <over> drag a todo onto another in the same source
//
// A source is "today", a date (2025-01-15), "day:<date>" or "list:<tab>:<list>".
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/kwokm/mk-todo/internal/app"
	"github.com/kwokm/mk-todo/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, cfg.Client, logger); err != nil {
		fmt.Fprintln(os.Stderr, "notebook:", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
