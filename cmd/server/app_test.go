package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/champion-grid/internal/catalog"
	"github.com/KirkDiggler/champion-grid/internal/config"
	"github.com/KirkDiggler/champion-grid/internal/engine"
	"github.com/KirkDiggler/champion-grid/internal/entities"
	"github.com/KirkDiggler/champion-grid/internal/index"
	"github.com/KirkDiggler/champion-grid/internal/orchestrators/game"
	"github.com/KirkDiggler/champion-grid/internal/testutils"
)

const sampleDataset = `champions:
  - name: Ahri
    region: [Ionia]
    class: [Mage, Assassin]
  - name: Garen
    region: [Demacia]
    class: [Fighter, Tank]
`

func newDataCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	configPath, championsPath, logLevel = "", "", ""

	cmd := &cobra.Command{Use: "test"}
	addDataFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(newDataCommand(t))
	require.NoError(t, err)

	assert.Equal(t, config.DefaultChampionsPath, cfg.Data.ChampionsPath)
	assert.Equal(t, config.DefaultGRPCPort, cfg.Server.GRPCPort)
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("data:\n  champions_path: from-file.yaml\n"), 0o600))

	cfg, err := loadConfig(newDataCommand(t,
		"--config", configFile,
		"--champions", "from-flag.json",
		"--log-level", "debug",
	))
	require.NoError(t, err)

	assert.Equal(t, "from-flag.json", cfg.Data.ChampionsPath)
	assert.Equal(t, config.LogDebug, cfg.Server.LogLevel)
}

func TestLoadConfigRejectsBadLevel(t *testing.T) {
	_, err := loadConfig(newDataCommand(t, "--log-level", "loud"))
	assert.Error(t, err)
}

func TestBuildGameServiceFromDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "champions.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDataset), 0o600))

	cfg := config.Default()
	cfg.Data.ChampionsPath = path

	svc, closeStore, err := buildGameService(cfg, newEventBus(), nil)
	require.NoError(t, err)
	defer closeStore()

	require.NotNil(t, svc)
}

func TestBuildGameServiceMissingDataset(t *testing.T) {
	cfg := config.Default()
	cfg.Data.ChampionsPath = filepath.Join(t.TempDir(), "missing.yaml")

	_, _, err := buildGameService(cfg, newEventBus(), nil)
	assert.Error(t, err)
}

func TestPrintCategoryReport(t *testing.T) {
	idx, err := index.New(&index.Config{
		Champions: testutils.CreateTestChampions(),
		Catalog:   catalog.Default(),
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	empty := printCategoryReport(&buf, idx)

	out := buf.String()
	assert.Greater(t, empty, 0)
	assert.Contains(t, out, "Catalog "+catalog.DefaultVersion)
	assert.Contains(t, out, "Categories without champions:")
	// weapon categories never match anyone
	assert.Contains(t, out, "    - Has Gun")
	assert.NotContains(t, out, "    - Ionia\n")
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	printResult(&buf, &engine.Result{
		Rows:    []string{"Ionia", "Demacia", "Noxus"},
		Columns: []string{"Mage", "Fighter", "Tank"},
		Solutions: [entities.GridSize][entities.GridSize][]string{
			{{"Ahri"}, {}, {}},
			{{"Lux"}, {"Garen"}, {"Garen"}},
			{{}, {"Darius"}, {"Darius"}},
		},
		Difficulty: 0.61,
		Target:     0.6,
		Attempts:   3,
		Outcome:    engine.OutcomeValid,
	})

	out := buf.String()
	assert.Contains(t, out, "after 3 attempts")
	assert.Contains(t, out, "Rows:    Ionia | Demacia | Noxus")
	assert.Contains(t, out, "Demacia x Fighter (1): Garen")
}

func TestNewEventBusDeliversGameOver(t *testing.T) {
	bus := newEventBus()

	event := events.NewGameEvent(game.EventGameOver, nil, &entities.Game{ID: "game_1"})
	event.Context().Set(game.EventKeyScore, 7)

	assert.NoError(t, bus.Publish(context.Background(), event))
}
