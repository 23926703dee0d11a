package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/dukerupert/uchitopi/internal/config"
	"github.com/dukerupert/uchitopi/internal/database"
	"github.com/dukerupert/uchitopi/internal/dateformat"
	"github.com/dukerupert/uchitopi/internal/logging"
	"github.com/dukerupert/uchitopi/internal/store"
	"github.com/dukerupert/uchitopi/internal/textutil"
	"github.com/dukerupert/uchitopi/internal/validator"
)

const usage = `usage: uchitopi <command> [args]

commands:
  init                              create or migrate the database
  settings                          list local settings
  validate <field> <value>          validate and normalize a value
  format <kind> <time> [reference]  format an RFC 3339 time
  invite-code                       print a random invite code

  user register <name> [email]
  user token <user-id> <token>
  family create <name> <user-id>
  family join <code> <user-id> [role] [nickname]
  family invite <family-id> <user-id>
  family members <family-id>
  thread create <family-id> <title> <user-id>
  thread post <thread-id> <user-id> <body>
  thread messages <thread-id> [limit]
  thread read <user-id> <thread-id> <message-id>
  thread archive <thread-id>
  topic create <family-id> <title> <user-id>
  topic convert <message-id> <user-id>
  topic status <topic-id> <status>
  topic list <family-id>
  notify send <user-id> <family-id> <kind> <title> [body]
  notify unread <user-id>
  notify read <notification-id>

validate fields: email, invite-code, family-name, display-name, nickname,
  task-title, task-description, message
format kinds: full, short, time, date, monthday, yearmonth, weekday,
  relative, chat, duration`

var errUsage = errors.New("invalid arguments")

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := logging.Setup(cfg.LogLevel, cfg.LogFormat)

	if err := run(cfg, logger, os.Args[1:], os.Stdout, time.Now); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger, args []string, out io.Writer, now func() time.Time) error {
	if len(args) == 0 {
		return errUsage
	}

	switch cmd, rest := args[0], args[1:]; cmd {
	case "init":
		return runInit(cfg, logger, out)
	case "settings":
		return runSettings(cfg, out)
	case "validate":
		if len(rest) != 2 {
			return errUsage
		}
		v, err := validateField(rest[0], rest[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(out, v)
		return nil
	case "format":
		if len(rest) < 2 || len(rest) > 3 {
			return errUsage
		}
		s, err := formatTime(rest[0], rest[1:], now())
		if err != nil {
			return err
		}
		fmt.Fprintln(out, s)
		return nil
	case "invite-code":
		fmt.Fprintln(out, textutil.RandomInviteCode())
		return nil
	case "user", "family", "thread", "topic", "notify":
		a, err := openApp(cfg, logger)
		if err != nil {
			return err
		}
		defer a.Close()
		return runService(a, cmd, rest, out)
	default:
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
}

func runInit(cfg config.Config, logger *slog.Logger, out io.Writer) error {
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	version, err := database.Version(db)
	if err != nil {
		return err
	}
	first, err := store.NewSettingsStore(db).EnsureFirstLaunch()
	if err != nil {
		return err
	}

	logger.Info("database ready", "path", cfg.DBPath, "version", version, "first_launch", first)
	fmt.Fprintf(out, "%s: %s (schema v%d, first launch: %t)\n", config.AppName, cfg.DBPath, version, first)
	return nil
}

func runSettings(cfg config.Config, out io.Writer) error {
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	settings, err := store.NewSettingsStore(db).GetAll()
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(out, "%s=%s\n", k, settings[k])
	}
	return nil
}

var fieldValidators = map[string]func(string) (string, error){
	"email":            validator.Email,
	"invite-code":      validator.InviteCode,
	"family-name":      validator.FamilyName,
	"display-name":     validator.DisplayName,
	"nickname":         validator.Nickname,
	"task-title":       validator.TaskTitle,
	"task-description": validator.TaskDescription,
	"message":          validator.MessageBody,
}

func validateField(field, value string) (string, error) {
	fn, ok := fieldValidators[field]
	if !ok {
		return "", fmt.Errorf("unknown field %q: %w", field, errUsage)
	}
	return fn(value)
}

func formatTime(kind string, args []string, now time.Time) (string, error) {
	t, err := time.Parse(time.RFC3339, args[0])
	if err != nil {
		return "", fmt.Errorf("parse time: %w", err)
	}
	ref := now
	if len(args) == 2 {
		if ref, err = time.Parse(time.RFC3339, args[1]); err != nil {
			return "", fmt.Errorf("parse reference: %w", err)
		}
	}

	switch kind {
	case "full":
		return dateformat.FullDateTime(t), nil
	case "short":
		return dateformat.ShortDateTime(t), nil
	case "time":
		return dateformat.Time(t), nil
	case "date":
		return dateformat.Date(t), nil
	case "monthday":
		return dateformat.MonthDay(t), nil
	case "yearmonth":
		return dateformat.YearMonth(t), nil
	case "weekday":
		return dateformat.Weekday(t), nil
	case "relative":
		return dateformat.Relative(t, ref), nil
	case "chat":
		return dateformat.ChatTime(t, ref), nil
	case "duration":
		return dateformat.Duration(t, ref), nil
	}
	return "", fmt.Errorf("unknown format %q: %w", kind, errUsage)
}
