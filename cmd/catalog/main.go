package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mira-academy/catalog/internal/catalog"
	"github.com/mira-academy/catalog/internal/enrollment"
	"github.com/mira-academy/catalog/internal/models"
	"github.com/mira-academy/catalog/internal/view"
	"github.com/mira-academy/catalog/pkg/config"
	"github.com/mira-academy/catalog/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logr, os.Stdin, os.Stdout); err != nil {
		logr.Sugar().Fatalw("session failed", "error", err)
	}
}

func run(ctx context.Context, cfg *config.Config, logr *zap.Logger, in io.Reader, out io.Writer) error {
	logr = logr.With(zap.String("session_id", uuid.NewString()))
	logr.Sugar().Infow("session starting", "source", cfg.Source.URL, "env", cfg.Env)

	client := &http.Client{Timeout: cfg.Source.Timeout}
	store := enrollment.NewStore(logr)

	loader := catalog.Activate(ctx, client, cfg.Source.URL, logr)
	defer func() { loader.Close() }()

	catalogView := view.NewCatalog(loader, store, logr)
	scheduleView := view.NewSchedule(store, logr)
	headerView := view.NewHeader(store)

	// The header tracks every enrollment change live, whichever view caused it.
	unsubscribe := store.Subscribe(func() {
		headerView.Render(out) //nolint:errcheck
	})
	defer unsubscribe()

	headerView.Render(out) //nolint:errcheck
	catalogView.Render(out) //nolint:errcheck

	scanner := bufio.NewScanner(in)
	fmt.Fprint(out, "> ")
	for scanner.Scan() {
		if ctx.Err() != nil {
			break
		}

		cmd, arg := splitCommand(scanner.Text())
		switch cmd {
		case "", "show":
			catalogView.Render(out) //nolint:errcheck
		case "search":
			catalogView.Search(arg)
			catalogView.Render(out) //nolint:errcheck
		case "sort":
			col, ok := models.ParseColumn(arg)
			if !ok {
				fmt.Fprintln(out, "usage: sort trimester|number|name|credits|hours")
				break
			}
			catalogView.Sort(col)
			catalogView.Render(out) //nolint:errcheck
		case "next":
			catalogView.NextPage()
			catalogView.Render(out) //nolint:errcheck
		case "prev":
			catalogView.PrevPage()
			catalogView.Render(out) //nolint:errcheck
		case "enroll":
			if !catalogView.Enroll(arg) {
				fmt.Fprintf(out, "no course %q in the catalog\n", arg)
			}
		case "drop":
			scheduleView.Drop(arg)
			scheduleView.Render(out) //nolint:errcheck
		case "schedule":
			scheduleView.Render(out) //nolint:errcheck
		case "export":
			if err := exportSchedule(cfg, scheduleView, arg, out); err != nil {
				fmt.Fprintf(out, "export failed: %v\n", err)
			}
		case "reload":
			// Loaders are single-shot; reloading means a fresh activation.
			loader.Close()
			loader = catalog.Activate(ctx, client, cfg.Source.URL, logr)
			catalogView = view.NewCatalog(loader, store, logr)
			<-loader.Done()
			catalogView.Render(out) //nolint:errcheck
		case "help":
			printHelp(out)
		case "quit", "exit":
			return nil
		default:
			fmt.Fprintf(out, "unknown command %q (try help)\n", cmd)
		}
		fmt.Fprint(out, "> ")
	}
	return scanner.Err()
}

func splitCommand(line string) (string, string) {
	parts := strings.SplitN(strings.TrimSpace(line), " ", 2)
	if len(parts) == 2 {
		return parts[0], strings.TrimSpace(parts[1])
	}
	return parts[0], ""
}

func exportSchedule(cfg *config.Config, schedule *view.Schedule, format string, out io.Writer) error {
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "pdf" {
		return fmt.Errorf("unsupported format %q (csv or pdf)", format)
	}

	if err := os.MkdirAll(cfg.Export.Dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(cfg.Export.Dir, "schedule."+format)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if format == "pdf" {
		err = schedule.ExportPDF(f)
	} else {
		err = schedule.ExportCSV(f)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "schedule exported to %s\n", path)
	return nil
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, `commands:
  show                    render the catalog table
  search <text>           filter by course number or name
  sort <column>           toggle sorting (trimester|number|name|credits|hours)
  next | prev             change page
  enroll <courseNumber>   enroll in a catalog course
  drop <courseNumber>     drop an enrolled course
  schedule                render the class schedule
  export [csv|pdf]        write the schedule to the export directory
  reload                  fetch the catalog again
  quit                    end the session`)
}
