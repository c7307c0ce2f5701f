package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/kwokm/mk-todo/internal/client/api"
	"github.com/kwokm/mk-todo/internal/client/confirm"
	"github.com/kwokm/mk-todo/internal/client/dnd"
	"github.com/kwokm/mk-todo/internal/client/syncer"
	"github.com/kwokm/mk-todo/internal/config"
	"github.com/kwokm/mk-todo/internal/domain"
)

var (
	errUsage        = errors.New("usage")
	errNotConfirmed = errors.New("delete not confirmed")
)

type notebook struct {
	sync *syncer.Syncer
	dnd  *dnd.Coordinator
	gate *confirm.Gate

	in   *bufio.Reader
	out  io.Writer
	now  func() time.Time
	days int
	yes  bool
}

// printNotifier reports mutation outcomes on the command output.
type printNotifier struct {
	out io.Writer
}

func (n printNotifier) Success(_ context.Context, message string) {
	fmt.Fprintln(n.out, message)
}

func (n printNotifier) Failure(_ context.Context, mutation string, err error) {
	fmt.Fprintln(n.out, syncer.FailureMessage(mutation, err))
}

func run(ctx context.Context, args []string, in io.Reader, out io.Writer, cfg config.ClientConfig, logger *slog.Logger) error {
	fs := flag.NewFlagSet("notebook", flag.ContinueOnError)
	fs.SetOutput(out)
	baseURL := fs.String("url", cfg.BaseURL, "server base URL")
	yes := fs.Bool("y", false, "delete without confirmation")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}

	s := syncer.New(api.NewClient(*baseURL, cfg.RequestTimeout, logger), printNotifier{out: out}, logger)
	defer s.Close()

	gate := confirm.NewGate(cfg.DeleteConfirmDwell)
	defer gate.Stop()

	nb := &notebook{
		sync: s,
		dnd:  dnd.NewCoordinator(s, logger),
		gate: gate,
		in:   bufio.NewReader(in),
		out:  out,
		now:  time.Now,
		days: cfg.CalendarDays,
		yes:  *yes,
	}
	return nb.exec(ctx, fs.Arg(0), fs.Args()[1:])
}

func (nb *notebook) exec(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "week":
		return nb.week(ctx)
	case "day":
		date := "today"
		if len(args) > 0 {
			date = args[0]
		}
		return nb.show(ctx, date)
	case "list":
		if len(args) != 2 {
			return usage("list <tab> <list>")
		}
		return nb.show(ctx, "list:"+args[0]+":"+args[1])
	case "tabs":
		return nb.tabs(ctx)
	case "add":
		if len(args) < 2 {
			return usage("add <source> <text...>")
		}
		return nb.add(ctx, args[0], strings.Join(args[1:], " "))
	case "done", "undo":
		if len(args) != 2 {
			return usage(cmd + " <source> <id>")
		}
		completed := cmd == "done"
		return nb.update(ctx, args[0], args[1], domain.TodoUpdateParams{Completed: &completed})
	case "edit":
		if len(args) < 3 {
			return usage("edit <source> <id> <text...>")
		}
		text := strings.Join(args[2:], " ")
		return nb.update(ctx, args[0], args[1], domain.TodoUpdateParams{Text: &text})
	case "rm":
		if len(args) != 2 {
			return usage("rm <source> <id>")
		}
		return nb.remove(ctx, args[0], args[1])
	case "mv":
		if len(args) != 3 && len(args) != 4 {
			return usage("mv <id> <from> <to> [over]")
		}
		over := ""
		if len(args) == 4 {
			over = args[3]
		}
		return nb.move(ctx, args[0], args[1], args[2], over)
	case "reorder":
		if len(args) != 3 {
			return usage("reorder <source> <id> <over>")
		}
		return nb.move(ctx, args[1], args[0], args[0], args[2])
	default:
		return usage("unknown command " + cmd)
	}
}

func usage(msg string) error {
	return fmt.Errorf("%w: %s", errUsage, msg)
}

func (nb *notebook) source(arg string) (domain.Source, error) {
	switch {
	case arg == "today":
		return domain.DaySource(domain.FormatDateKey(nb.now())), nil
	case domain.IsValidDateKey(arg):
		return domain.DaySource(arg), nil
	default:
		return domain.ParseSource(arg)
	}
}

func (nb *notebook) week(ctx context.Context) error {
	window := domain.CalendarWindow(nb.now(), nb.days)
	srcs := make([]domain.Source, len(window))
	for i, d := range window {
		srcs[i] = domain.DaySource(d)
	}
	if err := nb.sync.Prefetch(ctx, srcs...); err != nil {
		return err
	}
	for _, src := range srcs {
		nb.print(src)
	}
	return nil
}

func (nb *notebook) show(ctx context.Context, arg string) error {
	src, err := nb.source(arg)
	if err != nil {
		return err
	}
	if _, err := nb.sync.Todos(ctx, src); err != nil {
		return err
	}
	nb.print(src)
	return nil
}

func (nb *notebook) tabs(ctx context.Context) error {
	tabs, err := nb.sync.Tabs(ctx)
	if err != nil {
		return err
	}
	for _, tab := range tabs {
		lists, err := nb.sync.Lists(ctx, tab.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(nb.out, "%s (%s)\n", tab.Name, tab.ID)
		for _, l := range lists {
			fmt.Fprintf(nb.out, "  %s  list:%s:%s\n", l.Name, tab.ID, l.ID)
		}
	}
	return nil
}

func (nb *notebook) add(ctx context.Context, arg, text string) error {
	src, err := nb.load(ctx, arg)
	if err != nil {
		return err
	}
	if _, err := nb.sync.CreateTodo(ctx, src, text); err != nil {
		return err
	}
	return nb.settle(src)
}

func (nb *notebook) update(ctx context.Context, arg, id string, params domain.TodoUpdateParams) error {
	src, err := nb.load(ctx, arg)
	if err != nil {
		return err
	}
	if _, err := nb.sync.UpdateTodo(ctx, src, id, params); err != nil {
		return err
	}
	return nb.settle(src)
}

func (nb *notebook) remove(ctx context.Context, arg, id string) error {
	src, err := nb.load(ctx, arg)
	if err != nil {
		return err
	}

	if !nb.yes {
		nb.gate.Press(id)
		fmt.Fprintf(nb.out, "Press Enter again to delete %s\n", id)
		line, err := nb.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			nb.gate.Disarm(id)
			return err
		}
		if (err != nil && line == "") || !nb.gate.Press(id) {
			nb.gate.Disarm(id)
			return errNotConfirmed
		}
	}

	if err := nb.sync.DeleteTodo(ctx, src, id); err != nil {
		return err
	}
	return nb.settle(src)
}

// move replays a drag of id from one source onto over (a todo id or ""
// for the destination's empty area).
func (nb *notebook) move(ctx context.Context, id, fromArg, toArg, over string) error {
	from, err := nb.load(ctx, fromArg)
	if err != nil {
		return err
	}
	to, err := nb.load(ctx, toArg)
	if err != nil {
		return err
	}

	nb.dnd.Register(from)
	nb.dnd.Register(to)
	if !nb.dnd.DragStart(id) {
		return fmt.Errorf("todo %q not found in %s", id, from)
	}
	if over == "" {
		over = to.String()
	}

	outcome, err := nb.dnd.DragEnd(ctx, over)
	if err != nil {
		return err
	}
	if outcome == dnd.None {
		fmt.Fprintln(nb.out, "Nothing to do")
	}
	return nb.settle(from, to)
}

// load parses arg and makes sure the source is cached.
func (nb *notebook) load(ctx context.Context, arg string) (domain.Source, error) {
	src, err := nb.source(arg)
	if err != nil {
		return domain.Source{}, err
	}
	if _, err := nb.sync.Todos(ctx, src); err != nil {
		return domain.Source{}, err
	}
	return src, nil
}

// settle waits for background refetches and prints each distinct source.
func (nb *notebook) settle(srcs ...domain.Source) error {
	nb.sync.Wait()
	for i, src := range srcs {
		if i > 0 && src == srcs[i-1] {
			continue
		}
		nb.print(src)
	}
	return nil
}

func (nb *notebook) print(src domain.Source) {
	fmt.Fprintln(nb.out, heading(src))
	todos, _ := nb.sync.Cached(src)
	if len(todos) == 0 {
		fmt.Fprintln(nb.out, "  (empty)")
		return
	}
	for _, t := range todos {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		fmt.Fprintf(nb.out, "  [%s] %s  %s\n", mark, t.ID, t.Text)
	}
}

func heading(src domain.Source) string {
	if src.IsDay() {
		if t, err := domain.ParseDateKey(src.Date); err == nil {
			return fmt.Sprintf("%s  %s, %s", src, domain.DayLabel(t), domain.DateLabel(t))
		}
	}
	return src.String()
}
