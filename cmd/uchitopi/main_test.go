package main

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dukerupert/uchitopi/internal/config"
	"github.com/dukerupert/uchitopi/internal/validator"
)

var fixedNow = func() time.Time { return time.Date(2024, 1, 10, 3, 0, 0, 0, time.UTC) }

func runCmd(t *testing.T, cfg config.Config, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	err := run(cfg, logger, args, &out, fixedNow)
	return strings.TrimSpace(out.String()), err
}

func TestRunUsage(t *testing.T) {
	for _, args := range [][]string{
		nil,
		{"bogus"},
		{"validate", "email"},
		{"validate", "zipcode", "123"},
		{"format", "full"},
		{"format", "century", "2024-01-10T12:00:00+09:00"},
	} {
		if _, err := runCmd(t, config.Config{}, args...); !errors.Is(err, errUsage) {
			t.Errorf("run(%q) err = %v, want usage error", args, err)
		}
	}
}

func TestRunValidate(t *testing.T) {
	tests := []struct {
		field, value string
		want         string
		wantErr      error
	}{
		{"email", " Taro@Example.com ", "taro@example.com", nil},
		{"email", "taro", "", validator.InvalidEmail()},
		{"invite-code", "abc123", "ABC123", nil},
		{"invite-code", "abc", "", validator.InvalidInviteCode()},
		{"family-name", "", "", validator.Empty()},
		{"task-title", strings.Repeat("a", 101), "", validator.TooLong(100)},
		{"nickname", "", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.field+"/"+tt.value, func(t *testing.T) {
			got, err := runCmd(t, config.Config{}, "validate", tt.field, tt.value)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunFormat(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"full", "2024-01-10T05:30:00Z"}, "2024年1月10日 14:30"},
		{[]string{"date", "2024-01-10T05:30:00Z"}, "2024/01/10"},
		{[]string{"monthday", "2024-01-10T05:30:00Z"}, "1月10日"},
		{[]string{"weekday", "2024-01-10T05:30:00Z"}, "水"},
		{[]string{"relative", "2024-01-10T00:00:00Z"}, "3時間前"},
		{[]string{"relative", "2024-01-01T00:00:00Z", "2024-01-03T00:00:00Z"}, "2日前"},
		{[]string{"duration", "2024-01-10T01:30:00Z"}, "1時間30分"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			got, err := runCmd(t, config.Config{}, append([]string{"format"}, tt.args...)...)
			if err != nil {
				t.Fatalf("format: %v", err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := runCmd(t, config.Config{}, "format", "full", "yesterday"); err == nil {
		t.Error("expected parse error")
	}
}

func TestRunInviteCode(t *testing.T) {
	got, err := runCmd(t, config.Config{}, "invite-code")
	if err != nil {
		t.Fatalf("invite-code: %v", err)
	}
	if _, err := validator.InviteCode(got); err != nil {
		t.Errorf("invite code %q is invalid: %v", got, err)
	}
}

func TestRunInit(t *testing.T) {
	cfg := config.Config{DBPath: filepath.Join(t.TempDir(), "test.db")}

	got, err := runCmd(t, cfg, "init")
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if !strings.Contains(got, "first launch: true") {
		t.Errorf("output = %q", got)
	}

	settings, err := runCmd(t, cfg, "settings")
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	for _, want := range []string{"isFirstLaunch=true", "language=ja", "theme=system"} {
		if !strings.Contains(settings, want) {
			t.Errorf("settings output missing %q:\n%s", want, settings)
		}
	}
}
