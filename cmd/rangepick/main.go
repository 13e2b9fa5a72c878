package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/rangepick/internal/config"
	"github.com/jask/rangepick/internal/database"
	"github.com/jask/rangepick/internal/database/repository"
	"github.com/jask/rangepick/internal/dates"
	"github.com/jask/rangepick/internal/position"
	"github.com/jask/rangepick/internal/rules"
	"github.com/jask/rangepick/internal/selection"
	"github.com/jask/rangepick/internal/tui"
)

// blocklist expansion window for RRULE and ICS sources
const blockHorizonDays = 365

func main() {
	initCfg := flag.Bool("init-config", false, "write the resolved configuration to the config file and exit")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if *initCfg {
		if err := writeConfig(cfg, os.Stdout); err != nil {
			log.Fatalf("init config: %v", err)
		}
		return
	}

	if os.Getenv("RANGEPICK_DEBUG") != "" {
		f, err := tea.LogToFile("rangepick.log", "rangepick")
		if err != nil {
			log.Fatalf("log file: %v", err)
		}
		defer f.Close()
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}
	if err := database.RunMigrations(cfg.Database.Path); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	history := repository.NewRangeRepo(db)

	loc, err := cfg.UI.Location()
	if err != nil {
		log.Printf("warn: using local timezone due to load failure: %v", err)
	}
	clock := dates.SystemClock{Location: loc}

	preds, err := buildRules(cfg.Rules, clock)
	if err != nil {
		log.Fatalf("rules: %v", err)
	}

	opts := selection.Options{
		MinimumNights:            cfg.Picker.MinimumNights,
		KeepOpenOnDateSelect:     cfg.Picker.KeepOpenOnDateSelect,
		ReopenPickerOnClearDates: cfg.Picker.ReopenPickerOnClearDates,
		FullScreenPortal:         cfg.Picker.FullScreenPortal,
		Disabled:                 cfg.Picker.Disabled,
	}
	initial := selection.Empty()
	if last, err := history.Latest(ctx); err != nil {
		log.Printf("warn: history unavailable: %v", err)
	} else if last != nil {
		initial = selection.NewSelection(last.Start, last.End, opts.MinimumNights)
	}

	uiOpts, err := pickerOptions(cfg.Picker)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	uiOpts.Machine = selection.New(opts, preds, dates.NewParser(cfg.Picker.DisplayFormat, clock))
	uiOpts.Clock = clock
	uiOpts.Initial = initial

	app := tui.New(uiOpts)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
	if !app.Confirmed() {
		return
	}

	sel := app.Selection()
	rg, err := history.Record(ctx, sel.Start(), sel.End())
	if err != nil {
		log.Fatalf("record range: %v", err)
	}
	fmt.Printf("%s %s (%d nights)\n", rg.Start, rg.End, rg.Nights)
}

// writeConfig saves cfg as a fresh config file. An existing file is left alone.
func writeConfig(cfg config.Config, w io.Writer) error {
	path := config.Path()
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "wrote %s\n", path)
	return err
}

// pickerOptions maps the presentation half of the picker section onto the
// shell's options.
func pickerOptions(pc config.PickerConfig) (tui.Options, error) {
	anchor, err := position.ParseAnchorDirection(pc.AnchorDirection)
	if err != nil {
		return tui.Options{}, err
	}
	orientation, err := position.ParseOrientation(pc.Orientation)
	if err != nil {
		return tui.Options{}, err
	}
	month, err := pc.VisibleMonth()
	if err != nil {
		return tui.Options{}, err
	}
	focus, err := selection.ParseFocusTarget(pc.InitialFocus)
	if err != nil {
		return tui.Options{}, err
	}
	return tui.Options{
		Anchor:              anchor,
		Margin:              pc.HorizontalMargin,
		NumberOfMonths:      pc.NumberOfMonths,
		WithPortal:          pc.WithPortal,
		ShowClearDates:      pc.ShowClearDates,
		Orientation:         orientation,
		MonthFormat:         pc.MonthFormat,
		InitialVisibleMonth: month,
		InitialFocus:        focus,
	}, nil
}

// buildRules turns the rules section into the picker's two predicates.
func buildRules(rc config.RulesConfig, clock dates.Clock) (rules.Predicates, error) {
	today := clock.Today()
	to := today.AddDays(blockHorizonDays)

	weekdays, err := rc.Weekdays()
	if err != nil {
		return rules.Predicates{}, err
	}
	blocked := []rules.DayFunc{rules.BlockWeekdays(weekdays...)}

	if rc.BlockedRRule != "" {
		list, err := rules.BlockRRule(rc.BlockedRRule, today, to)
		if err != nil {
			return rules.Predicates{}, fmt.Errorf("blocked_rrule: %w", err)
		}
		blocked = append(blocked, list.Func())
	}

	if rc.BlockedICS != "" {
		f, err := os.Open(rc.BlockedICS)
		if err != nil {
			return rules.Predicates{}, fmt.Errorf("blocked_ics: %w", err)
		}
		defer f.Close()
		list, err := rules.LoadICS(f, today, to)
		if err != nil {
			return rules.Predicates{}, fmt.Errorf("blocked_ics %s: %w", rc.BlockedICS, err)
		}
		log.Printf("blocked %d days from %s", list.Len(), rc.BlockedICS)
		blocked = append(blocked, list.Func())
	}

	return rules.Predicates{
		IsOutsideRange: rules.OutsideWindow(clock, rc.HorizonDays),
		IsDayBlocked:   rules.AnyBlocked(blocked...),
	}, nil
}
