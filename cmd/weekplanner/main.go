package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"weekplanner/internal/config"
	"weekplanner/internal/icsexport"
	"weekplanner/internal/xmlsched"
	"weekplanner/planner"
	"weekplanner/planner/strategy"
)

type flagValues struct {
	configPath string
	strategy   string
	user       string
	load       string
	save       bool
	ics        bool

	findMinutes int
	name        string
	location    string
	online      bool
	invite      string
}

func main() {
	flags := parseFlags()

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := newLogger(cfg.LogLevel)

	if flags.strategy != "" {
		cfg.Strategy = flags.strategy
	}

	dir := planner.NewDirectory(logger)
	sess := planner.NewSession(dir)

	for _, path := range schedulePaths(cfg, flags) {
		owner, err := xmlsched.LoadFile(dir, path)
		if err != nil {
			logger.Error("failed to load schedule", "path", path, "error", err)
			os.Exit(1)
		}
		logger.Info("loaded schedule", "path", path, "user", owner)
	}

	if flags.user != "" {
		if err := sess.SetCurrentUser(flags.user); err != nil {
			logger.Error("unknown user", "user", flags.user, "error", err)
			os.Exit(1)
		}
	}

	if flags.findMinutes > 0 {
		if err := findAndCommit(cfg, flags, dir, sess, logger); err != nil {
			logger.Error("scheduling failed", "error", err)
			os.Exit(1)
		}
	}

	if flags.save || flags.ics {
		if err := export(cfg, flags, dir, logger); err != nil {
			logger.Error("export failed", "error", err)
			os.Exit(1)
		}
	}
}

func parseFlags() flagValues {
	var flags flagValues
	flag.StringVar(&flags.configPath, "config", "weekplanner.yaml", "path to the YAML configuration file")
	flag.StringVar(&flags.strategy, "strategy", "", "slot-finding strategy: anytime or workhours (overrides config)")
	flag.StringVar(&flags.user, "user", "", "user to act as")
	flag.StringVar(&flags.load, "load", "", "comma-separated XML schedule files to load (in addition to config)")
	flag.BoolVar(&flags.save, "save", false, "save every user's schedule as XML into the export directory")
	flag.BoolVar(&flags.ics, "ics", false, "export every user's schedule as iCalendar into the export directory")
	flag.IntVar(&flags.findMinutes, "find", 0, "find and commit a slot of this many minutes")
	flag.StringVar(&flags.name, "name", "", "name of the event to schedule")
	flag.StringVar(&flags.location, "location", "", "location of the event to schedule")
	flag.BoolVar(&flags.online, "online", false, "whether the event to schedule is online")
	flag.StringVar(&flags.invite, "invite", "", "comma-separated invitee ids for the event to schedule")
	flag.Parse()
	return flags
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func schedulePaths(cfg config.Config, flags flagValues) []string {
	paths := append([]string{}, cfg.Schedules...)
	if flags.load != "" {
		for _, p := range strings.Split(flags.load, ",") {
			if p = strings.TrimSpace(p); p != "" {
				paths = append(paths, p)
			}
		}
	}
	return paths
}

func newStrategy(name string, dir *planner.Directory, hostID string) (strategy.Strategy, error) {
	switch strings.ToLower(name) {
	case "anytime":
		return strategy.NewAnyTime(dir, hostID), nil
	case "workhours":
		return strategy.NewWorkHours(dir, hostID), nil
	default:
		return nil, fmt.Errorf("invalid strategy type: %s", name)
	}
}

func findAndCommit(cfg config.Config, flags flagValues, dir *planner.Directory, sess *planner.Session, logger *slog.Logger) error {
	search, err := newStrategy(cfg.Strategy, dir, sess.CurrentUserID())
	if err != nil {
		return err
	}

	ctx := context.Background()
	if cfg.SearchTimeout != "" {
		timeout, err := time.ParseDuration(cfg.SearchTimeout)
		if err != nil {
			return fmt.Errorf("invalid search_timeout: %w", err)
		}
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	inviteeIDs := splitIDs(flags.invite)
	event, err := search.FindSlot(ctx, flags.findMinutes, inviteeIDs, strategy.Details{
		Name:     flags.name,
		Location: flags.location,
		IsOnline: flags.online,
	})
	if err != nil {
		return err
	}
	logger.Info("found slot",
		"event", string(event.Name()),
		"start_day", event.StartDay().String(),
		"start", event.StartTime().String(),
		"end_day", event.EndDay().String(),
		"end", event.EndTime().String())

	_, err = sess.CreateEvent(planner.EventDetails{
		Name:      flags.name,
		Location:  flags.location,
		IsOnline:  flags.online,
		StartDay:  event.StartDay(),
		EndDay:    event.EndDay(),
		StartTime: event.StartTime(),
		EndTime:   event.EndTime(),
	}, sess.CurrentUserID(), inviteeIDs)
	return err
}

func export(cfg config.Config, flags flagValues, dir *planner.Directory, logger *slog.Logger) error {
	if err := os.MkdirAll(cfg.ExportDir, 0o755); err != nil {
		return err
	}
	weekStart := lastSunday(time.Now())
	for _, id := range dir.AllUserIDs() {
		if flags.save {
			path := filepath.Join(cfg.ExportDir, id+".xml")
			if err := xmlsched.SaveFile(dir, id, path); err != nil {
				return err
			}
			logger.Info("saved schedule", "user", id, "path", path)
		}
		if flags.ics {
			path := filepath.Join(cfg.ExportDir, id+".ics")
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			err = icsexport.Write(dir, id, weekStart, f)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return err
			}
			logger.Info("exported calendar", "user", id, "path", path)
		}
	}
	return nil
}

func splitIDs(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var ids []string
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func lastSunday(now time.Time) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}
