package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themesync/themesync/internal/adapters"
	"github.com/themesync/themesync/internal/adapters/adapterstest"
	"github.com/themesync/themesync/internal/config"
	"github.com/themesync/themesync/internal/db"
	"github.com/themesync/themesync/internal/models"
	"github.com/themesync/themesync/internal/reconcile"
)

type failingStore struct {
	err error
}

func (s failingStore) Save(cfg *config.Config) error {
	return s.err
}

type testEnv struct {
	configPath  string
	historyPath string
	apps        []*adapterstest.Fake
}

func setupCLI(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()

	a := adapterstest.New("a", adapters.ThemeMapping{"dark": "a-dark", "light": "a-light"})
	a.Name = "App A"
	b := adapterstest.New("b", adapters.ThemeMapping{"dark": "b-dark"})
	b.Name = "App B"
	c := adapterstest.New("c", adapters.ThemeMapping{"dark": "c-dark", "light": "c-light"})
	c.Name = "App C"
	c.Available = false

	env := &testEnv{
		configPath:  filepath.Join(dir, "config.yaml"),
		historyPath: filepath.Join(dir, "history.db"),
		apps:        []*adapterstest.Fake{a, b, c},
	}

	prevRegistry := registryFunc
	prevStore := storeFunc
	prevProgress := progressOut
	registryFunc = func() *adapters.Registry {
		return adapters.NewRegistry(a, b, c)
	}
	progressOut = &bytes.Buffer{}

	overrides := map[string]any{
		"config":          env.configPath,
		"history-db":      env.historyPath,
		"no-history":      false,
		"no-progress":     true,
		"no-color":        true,
		"non-interactive": true,
		"json":            false,
		"jsonl":           false,
	}
	for key, value := range overrides {
		settings.Set(key, value)
	}

	t.Cleanup(func() {
		registryFunc = prevRegistry
		storeFunc = prevStore
		progressOut = prevProgress
		settings.Set("config", "")
		settings.Set("history-db", "")
		settings.Set("no-history", false)
		settings.Set("no-progress", false)
		settings.Set("no-color", false)
		settings.Set("non-interactive", false)
		settings.Set("json", false)
		settings.Set("jsonl", false)
	})
	return env
}

func loadConfig(t *testing.T, env *testEnv) *config.Config {
	t.Helper()
	cfg, err := config.Load(env.configPath, registryFunc())
	require.NoError(t, err)
	return cfg
}

func TestSetAppliesAndPersists(t *testing.T) {
	env := setupCLI(t)
	var out bytes.Buffer

	require.NoError(t, runSet(context.Background(), &out, "dark"))

	text := out.String()
	assert.Contains(t, text, "✓ Set App A theme to: a-dark")
	assert.Contains(t, text, "✓ Set App B theme to: b-dark")
	assert.Contains(t, text, "- App C not available")

	cfg := loadConfig(t, env)
	assert.Equal(t, "dark", cfg.CurrentTheme())
	assert.Empty(t, cfg.PreviousTheme())

	theme, err := env.apps[0].GetTheme()
	require.NoError(t, err)
	assert.Equal(t, "a-dark", theme)
}

func TestSetUnmappedPrintsNothing(t *testing.T) {
	env := setupCLI(t)
	var out bytes.Buffer

	require.NoError(t, runSet(context.Background(), &out, "light"))

	assert.NotContains(t, out.String(), "App B")
	assert.Empty(t, env.apps[1].SetCalls())
}

func TestSetUnknownThemeFails(t *testing.T) {
	env := setupCLI(t)
	var out bytes.Buffer

	err := runSet(context.Background(), &out, "solarized")
	require.Error(t, err)
	assert.ErrorIs(t, err, reconcile.ErrThemeNotFound)
	assert.False(t, config.Exists(env.configPath))
	assert.Empty(t, out.String())
}

func TestSetReportsAdapterFailure(t *testing.T) {
	env := setupCLI(t)
	env.apps[0].SetErr = assert.AnError
	var out bytes.Buffer

	require.NoError(t, runSet(context.Background(), &out, "dark"))
	assert.Contains(t, out.String(), "✗ Failed to set App A theme: "+assert.AnError.Error())
	assert.Equal(t, "dark", loadConfig(t, env).CurrentTheme())
}

func TestSetJSONOutput(t *testing.T) {
	setupCLI(t)
	settings.Set("json", true)
	var out bytes.Buffer

	require.NoError(t, runSet(context.Background(), &out, "dark"))

	var result reconcile.Result
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, "dark", result.Theme)
	assert.NotEmpty(t, result.RunID)
	require.Len(t, result.Outcomes, 3)
	assert.Equal(t, reconcile.StatusSkipped, result.Outcomes[2].Status)
}

func TestToggleSwitchesBack(t *testing.T) {
	env := setupCLI(t)
	var out bytes.Buffer

	require.NoError(t, runSet(context.Background(), &out, "light"))
	require.NoError(t, runSet(context.Background(), &out, "dark"))
	out.Reset()

	require.NoError(t, runToggle(context.Background(), &out))
	assert.True(t, strings.HasPrefix(out.String(), "Toggling to theme: light\n"))

	cfg := loadConfig(t, env)
	assert.Equal(t, "light", cfg.CurrentTheme())
	assert.Equal(t, "dark", cfg.PreviousTheme())
}

func TestToggleWithoutStateUsesDefault(t *testing.T) {
	env := setupCLI(t)
	var out bytes.Buffer

	require.NoError(t, runToggle(context.Background(), &out))
	assert.Contains(t, out.String(), "Toggling to theme: dark")
	assert.Equal(t, "dark", loadConfig(t, env).CurrentTheme())
}

func TestToggleSingleThemeCatalog(t *testing.T) {
	env := setupCLI(t)
	cfg := config.NewWithDefaults(registryFunc())
	delete(cfg.Themes, "light")
	cfg.UpdateThemeState("dark")
	require.NoError(t, config.Save(env.configPath, cfg))

	var out bytes.Buffer
	err := runToggle(context.Background(), &out)
	assert.ErrorIs(t, err, reconcile.ErrToggleImpossible)
	assert.Empty(t, out.String())
}

func TestStatusShowsApps(t *testing.T) {
	env := setupCLI(t)
	env.apps[1].GetErr = assert.AnError
	var out bytes.Buffer

	require.NoError(t, runSet(context.Background(), &out, "dark"))
	out.Reset()
	require.NoError(t, runStatus(context.Background(), &out))

	text := out.String()
	assert.Contains(t, text, "Theme Status:")
	assert.Contains(t, text, "Current:  dark")
	assert.Contains(t, text, "Previous: -")
	assert.Contains(t, text, "a-dark")
	assert.Contains(t, text, "Error - "+assert.AnError.Error())
	assert.Contains(t, text, "Not available")
}

func TestStatusJSONLOutput(t *testing.T) {
	setupCLI(t)
	settings.Set("jsonl", true)
	var out bytes.Buffer

	require.NoError(t, runStatus(context.Background(), &out))

	var report StatusReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	require.Len(t, report.Apps, 3)
	assert.Equal(t, "a", report.Apps[0].Key)
	assert.Equal(t, "default", report.Apps[0].Theme)
	assert.False(t, report.Apps[2].Available)
}

func TestThemesListMarksCurrent(t *testing.T) {
	setupCLI(t)
	var out bytes.Buffer

	require.NoError(t, runSet(context.Background(), &out, "light"))
	out.Reset()
	require.NoError(t, runThemesList(context.Background(), &out))

	text := out.String()
	assert.Contains(t, text, "Available themes:")
	assert.Contains(t, text, "  dark:")
	assert.Contains(t, text, "* light:")
	assert.Contains(t, text, "    App C: c-light")
	assert.Less(t, strings.Index(text, "dark:"), strings.Index(text, "light:"))
}

func TestAppsListJSONL(t *testing.T) {
	setupCLI(t)
	settings.Set("jsonl", true)
	var out bytes.Buffer

	require.NoError(t, runAppsList(context.Background(), &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	var app reconcile.AppStatus
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &app))
	assert.Equal(t, "App B", app.App)
	assert.True(t, app.Available)
	assert.True(t, app.Enabled)
}

func TestAppsListTable(t *testing.T) {
	setupCLI(t)
	var out bytes.Buffer

	require.NoError(t, runAppsList(context.Background(), &out))

	text := out.String()
	assert.Contains(t, text, "APP")
	assert.Contains(t, text, "App A")
	assert.Contains(t, text, "Not available")
}

func TestInitWritesDefaults(t *testing.T) {
	env := setupCLI(t)
	var out bytes.Buffer

	require.NoError(t, runInit(&out, false))
	assert.Contains(t, out.String(), "Wrote default config to "+env.configPath)

	cfg := loadConfig(t, env)
	assert.Equal(t, []string{"dark", "light"}, cfg.ThemeNames())
	assert.Equal(t, config.DefaultTheme, cfg.Settings.DefaultTheme)
}

func TestInitKeepsExistingUnlessForced(t *testing.T) {
	env := setupCLI(t)
	var out bytes.Buffer
	require.NoError(t, runSet(context.Background(), &out, "dark"))
	out.Reset()

	require.NoError(t, runInit(&out, false))
	assert.Contains(t, out.String(), "use --force")
	assert.Equal(t, "dark", loadConfig(t, env).CurrentTheme())

	out.Reset()
	require.NoError(t, runInit(&out, true))
	assert.Empty(t, loadConfig(t, env).CurrentTheme())
}

func TestHistoryListsAppliedThemes(t *testing.T) {
	setupCLI(t)
	var out bytes.Buffer

	require.NoError(t, runSet(context.Background(), &out, "light"))
	require.NoError(t, runSet(context.Background(), &out, "dark"))

	settings.Set("json", true)
	out.Reset()
	require.NoError(t, runHistory(context.Background(), &out, historyFilter{Limit: 10}))

	var entries []HistoryEntry
	require.NoError(t, json.Unmarshal(out.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "dark", entries[0].Theme)
	assert.Equal(t, "light", entries[0].PreviousTheme)
	assert.Equal(t, "light", entries[1].Theme)
	require.Len(t, entries[0].Outcomes, 3)
	assert.Equal(t, "applied", entries[0].Outcomes[0].Status)
}

func TestHistoryDisabled(t *testing.T) {
	setupCLI(t)
	settings.Set("no-history", true)
	var out bytes.Buffer

	require.NoError(t, runSet(context.Background(), &out, "dark"))
	out.Reset()
	require.NoError(t, runHistory(context.Background(), &out, historyFilter{Limit: 5}))
	assert.Equal(t, "No themes applied yet.\n", out.String())
}

func TestHistoryRejectsBadLimit(t *testing.T) {
	setupCLI(t)
	var out bytes.Buffer
	assert.Error(t, runHistory(context.Background(), &out, historyFilter{Limit: 0}))
	assert.Error(t, runHistory(context.Background(), &out, historyFilter{Limit: 5, Since: -time.Hour}))
}

func TestUnwritableHistoryDoesNotFailSet(t *testing.T) {
	env := setupCLI(t)
	settings.Set("history-db", filepath.Join(env.configPath, "nested", "history.db"))
	require.NoError(t, config.Save(env.configPath, config.NewWithDefaults(registryFunc())))
	var out bytes.Buffer

	require.NoError(t, runSet(context.Background(), &out, "dark"))
	assert.Equal(t, "dark", loadConfig(t, env).CurrentTheme())
}

func TestSetSaveFailureStillPrintsOutcomes(t *testing.T) {
	setupCLI(t)
	saveErr := errors.New("disk full")
	storeFunc = func(path string) reconcile.Store { return failingStore{err: saveErr} }
	var out bytes.Buffer

	err := runSet(context.Background(), &out, "dark")
	require.ErrorIs(t, err, saveErr)
	assert.Contains(t, out.String(), "✓ Set App A theme to: a-dark")
	assert.Contains(t, out.String(), "- App C not available")
}

func TestToggleSaveFailureJSON(t *testing.T) {
	setupCLI(t)
	settings.Set("json", true)
	saveErr := errors.New("read-only file system")
	storeFunc = func(path string) reconcile.Store { return failingStore{err: saveErr} }
	var out bytes.Buffer

	err := runToggle(context.Background(), &out)
	require.ErrorIs(t, err, saveErr)

	var result reconcile.Result
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, "dark", result.Theme)
	assert.True(t, result.StateUpdated)
	assert.False(t, result.Saved)
}

func historyEntries(t *testing.T, filter historyFilter) []HistoryEntry {
	t.Helper()
	settings.Set("json", true)
	defer settings.Set("json", false)

	var out bytes.Buffer
	require.NoError(t, runHistory(context.Background(), &out, filter))
	var entries []HistoryEntry
	require.NoError(t, json.Unmarshal(out.Bytes(), &entries))
	return entries
}

func TestHistoryFiltersByTheme(t *testing.T) {
	setupCLI(t)
	var out bytes.Buffer
	require.NoError(t, runSet(context.Background(), &out, "light"))
	require.NoError(t, runSet(context.Background(), &out, "dark"))
	require.NoError(t, runSet(context.Background(), &out, "light"))

	entries := historyEntries(t, historyFilter{Limit: 10, Theme: "light"})
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Equal(t, "light", entry.Theme)
	}
	assert.Empty(t, historyEntries(t, historyFilter{Limit: 10, Theme: "solarized"}))
}

func TestHistoryFiltersBySince(t *testing.T) {
	env := setupCLI(t)

	database, err := db.Open(env.historyPath)
	require.NoError(t, err)
	_, err = database.MigrateUp(context.Background())
	require.NoError(t, err)
	require.NoError(t, db.NewEventRepository(database).Create(context.Background(), &models.Event{
		Timestamp:  time.Now().Add(-48 * time.Hour),
		Type:       models.EventTypeThemeApplied,
		EntityType: models.EntityTypeTheme,
		EntityID:   "light",
		Payload:    json.RawMessage(`{"run_id":"old","theme":"light","outcomes":[]}`),
	}))
	require.NoError(t, database.Close())

	var out bytes.Buffer
	require.NoError(t, runSet(context.Background(), &out, "dark"))

	require.Len(t, historyEntries(t, historyFilter{Limit: 10}), 2)

	recent := historyEntries(t, historyFilter{Limit: 10, Since: 24 * time.Hour})
	require.Len(t, recent, 1)
	assert.Equal(t, "dark", recent[0].Theme)
}

func TestHistoryFilterQuery(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	q := historyFilter{Limit: 3}.query(now)
	require.NotNil(t, q.Type)
	assert.Equal(t, models.EventTypeThemeApplied, *q.Type)
	assert.Nil(t, q.EntityID)
	assert.Nil(t, q.Since)
	assert.Equal(t, 3, q.Limit)

	q = historyFilter{Limit: 3, Theme: " dark ", Since: time.Hour}.query(now)
	require.NotNil(t, q.EntityID)
	assert.Equal(t, "dark", *q.EntityID)
	require.NotNil(t, q.Since)
	assert.True(t, now.Add(-time.Hour).Equal(*q.Since))
}

func TestHistoryShow(t *testing.T) {
	setupCLI(t)
	var out bytes.Buffer
	require.NoError(t, runSet(context.Background(), &out, "dark"))

	entries := historyEntries(t, historyFilter{Limit: 1})
	require.Len(t, entries, 1)

	out.Reset()
	require.NoError(t, runHistoryShow(context.Background(), &out, entries[0].ID))
	text := out.String()
	assert.Contains(t, text, "Run:      "+entries[0].RunID)
	assert.Contains(t, text, "Theme:    dark")
	assert.Contains(t, text, "App A")
	assert.Contains(t, text, "a-dark")
	assert.Contains(t, text, "skipped")
}

func TestHistoryShowUnknownID(t *testing.T) {
	setupCLI(t)
	var out bytes.Buffer

	err := runHistoryShow(context.Background(), &out, "missing")
	require.ErrorIs(t, err, db.ErrEventNotFound)
}
