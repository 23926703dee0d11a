package store

import (
	"testing"

	"github.com/dukerupert/uchitopi/internal/config"
	"github.com/dukerupert/uchitopi/internal/database"
)

func setupSettingsTestDB(t *testing.T) *SettingsStore {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewSettingsStore(db)
}

func TestSettingsSeedData(t *testing.T) {
	ss := setupSettingsTestDB(t)

	settings, err := ss.GetPreferences()
	if err != nil {
		t.Fatalf("get preferences: %v", err)
	}

	expected := map[string]string{
		config.KeyNotificationEnabled: "true",
		config.KeyTheme:               "system",
		config.KeyLanguage:            "ja",
	}
	for key, want := range expected {
		got, ok := settings[key]
		if !ok {
			t.Errorf("missing setting %q", key)
			continue
		}
		if got != want {
			t.Errorf("setting %q = %q, want %q", key, got, want)
		}
	}
}

func TestSettingsSetAndGet(t *testing.T) {
	ss := setupSettingsTestDB(t)

	if err := ss.Set(config.KeyTheme, "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := ss.Get(config.KeyTheme)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "dark" {
		t.Errorf("theme = %q, want %q", got, "dark")
	}

	if err := ss.Set(config.KeySelectedFamilyID, "fam-1"); err != nil {
		t.Fatalf("set new key: %v", err)
	}
	all, err := ss.GetAll()
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if all[config.KeySelectedFamilyID] != "fam-1" {
		t.Errorf("selected family = %q, want %q", all[config.KeySelectedFamilyID], "fam-1")
	}

	entries, err := ss.Entries()
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	if len(entries) != len(all) {
		t.Errorf("entries = %d, want %d", len(entries), len(all))
	}
}

func TestSettingsGetMissing(t *testing.T) {
	ss := setupSettingsTestDB(t)

	if _, err := ss.Get("nope"); err == nil {
		t.Error("expected error for missing key")
	}
	_, ok, err := ss.Lookup("nope")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if ok {
		t.Error("lookup reported missing key as set")
	}
}

func TestSettingsBool(t *testing.T) {
	ss := setupSettingsTestDB(t)

	enabled, err := ss.GetBool(config.KeyNotificationEnabled, false)
	if err != nil {
		t.Fatalf("get bool: %v", err)
	}
	if !enabled {
		t.Error("notifications should default to enabled")
	}

	if err := ss.SetBool(config.KeyNotificationEnabled, false); err != nil {
		t.Fatalf("set bool: %v", err)
	}
	enabled, _ = ss.GetBool(config.KeyNotificationEnabled, true)
	if enabled {
		t.Error("notifications still enabled after SetBool(false)")
	}

	if err := ss.Set(config.KeyTheme, "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got, _ := ss.GetBool(config.KeyTheme, true); !got {
		t.Error("non-boolean value should fall back to default")
	}
}

func TestSettingsFirstLaunch(t *testing.T) {
	ss := setupSettingsTestDB(t)

	first, err := ss.EnsureFirstLaunch()
	if err != nil {
		t.Fatalf("ensure first launch: %v", err)
	}
	if !first {
		t.Error("first call should report first launch")
	}

	first, _ = ss.EnsureFirstLaunch()
	if !first {
		t.Error("first launch should persist until completed")
	}

	if err := ss.CompleteFirstLaunch(); err != nil {
		t.Fatalf("complete first launch: %v", err)
	}
	first, _ = ss.EnsureFirstLaunch()
	if first {
		t.Error("first launch reported after completion")
	}
}

func TestSettingsDelete(t *testing.T) {
	ss := setupSettingsTestDB(t)

	if err := ss.Delete(config.KeyLanguage); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := ss.Lookup(config.KeyLanguage); ok {
		t.Error("language still set after delete")
	}
}
