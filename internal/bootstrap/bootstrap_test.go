package bootstrap

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArmaRealms/ToolStats/internal/config"
	"github.com/ArmaRealms/ToolStats/internal/domain"
	"github.com/ArmaRealms/ToolStats/internal/event"
	"github.com/ArmaRealms/ToolStats/internal/item"
	"github.com/ArmaRealms/ToolStats/internal/scenario"
	"github.com/ArmaRealms/ToolStats/internal/scheduler"
	"github.com/ArmaRealms/ToolStats/internal/server"
	"github.com/ArmaRealms/ToolStats/internal/sse"
	"github.com/ArmaRealms/ToolStats/internal/world"
)

func newTracker(t *testing.T) *Tracker {
	t.Helper()
	return AssembleTracker(config.DefaultToolStats(), item.NewClassifier(), 16, time.Minute)
}

func TestAssembleTracker_EndToEnd(t *testing.T) {
	ctx := context.Background()
	tr := newTracker(t)

	w := world.New()
	p := w.SpawnPlayer("Steve", domain.GameModeSurvival)
	p.Contents().SetItem(0, domain.NewItem("DIAMOND_SWORD"))
	zombie := w.SpawnMob("ZOMBIE", 1)

	require.NoError(t, tr.Bus.Publish(ctx, event.NewEntityDamageByEntityEvent(world.Melee(p, zombie, 5))))
	assert.Equal(t, 1, tr.Scheduler.Pending())
	assert.True(t, tr.Dispatcher.Attributed(zombie.ID()))

	assert.Equal(t, 1, tr.Scheduler.Tick(ctx))

	sword, _ := p.Contents().Item(0)
	kills, err := tr.Codec.Int(ctx, sword, domain.StatMobKills)
	require.NoError(t, err)
	assert.Equal(t, 1, kills)
	assert.Equal(t, []string{"§7Mob kills: §81"}, sword.Lore())
}

func TestNewTracker_LoadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("messages:\n  kills:\n    mob: \"&cSlain: {kills}\"\n"), 0644))

	tr, err := NewTracker(context.Background(), &config.Config{
		ToolStatsPath:        path,
		TrackedDeathCapacity: 8,
		TrackedDeathTTL:      time.Minute,
	})
	require.NoError(t, err)

	tmpl, ok := tr.ToolStats.LoreTemplate(domain.StatMobKills, true)
	require.True(t, ok)
	assert.Equal(t, "§cSlain: {kills}", tmpl)

	require.NoError(t, os.WriteFile(path, []byte("messages: [\n"), 0644))
	_, err = NewTracker(context.Background(), &config.Config{ToolStatsPath: path, TrackedDeathCapacity: 8})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load tool stats config")
}

func TestTracker_CheckHealth(t *testing.T) {
	tr := newTracker(t)
	assert.NoError(t, tr.CheckHealth(context.Background()))

	for range MaxPendingBacklog + 1 {
		tr.Scheduler.Schedule(scheduler.TaskFunc(func(context.Context) error { return nil }))
	}
	err := tr.CheckHealth(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "statistic updates pending")
}

func TestGracefulShutdown_DrainsPendingUpdates(t *testing.T) {
	sched := scheduler.New()
	ran := false
	sched.Schedule(scheduler.TaskFunc(func(context.Context) error {
		ran = true
		return nil
	}))

	GracefulShutdown(context.Background(), ShutdownComponents{Scheduler: sched})

	assert.True(t, ran)
	assert.Zero(t, sched.Pending())
}

func TestPruneSessionLogs(t *testing.T) {
	dir := t.TempDir()
	for i := range LogFilesKept + 3 {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2026-01-%02d_00-00-00", i+1))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0644))

	pruneSessionLogs(dir, LogFilesKept)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, LogFilesKept+1)
	assert.NoFileExists(t, filepath.Join(dir, fmt.Sprintf(LogFileNamePattern, "2026-01-01_00-00-00")))
}

func TestSetupLogger_WritesSessionFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	f, err := SetupLogger(&config.Config{
		LogLevel:    "debug",
		LogFormat:   "json",
		Environment: "test",
		ServiceName: "toolstats",
		Version:     "test",
		LogDir:      dir,
	})
	require.NoError(t, err)
	require.NotNil(t, f)
	t.Cleanup(func() { _ = f.Close() })

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), LogMsgLoggingInitialized)
}

func TestDetectFormat_NotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, LogFormatPipe, detectFormat(f.Fd()))
}

func TestGracefulShutdown_DisconnectsStreamClients(t *testing.T) {
	hub := sse.NewHub()
	hub.Start()
	client := hub.Register(nil)

	GracefulShutdown(context.Background(), ShutdownComponents{Scheduler: scheduler.New(), Hub: hub})

	_, open := <-client.Events
	assert.False(t, open)
}

func TestShutdownComponents_StepOrder(t *testing.T) {
	names := func(c ShutdownComponents) []string {
		var out []string
		for _, s := range c.steps() {
			out = append(out, s.name)
		}
		return out
	}

	assert.Equal(t, []string{"tick loop", "pending updates"},
		names(ShutdownComponents{Scheduler: scheduler.New()}))
	assert.Equal(t, []string{"stream", "server", "tick loop", "pending updates"},
		names(ShutdownComponents{
			Scheduler: scheduler.New(),
			Hub:       sse.NewHub(),
			Server:    &server.Server{},
		}))
}

const swordKill = `
name: served kill
players:
  - name: Steve
    inventory:
      - slot: 0
        item: {material: DIAMOND_SWORD}
mobs:
  - {id: z1, kind: ZOMBIE, health: 4}
steps:
  - hit: {shape: by_entity, victim: z1, damage: 7, attacker: {player: Steve}}
expect:
  - {player: Steve, slot: 0, stat: mob-kills, equals: 1}
`

func TestRunScenario_UpdatesReachStream(t *testing.T) {
	tr := newTracker(t)
	tr.Hub.Start()
	defer tr.Hub.Stop()

	srv := httptest.NewServer(server.NewRouter(server.Routes{
		Deaths:    tr.Dispatcher,
		Stream:    sse.Handler(tr.Hub),
		Scenarios: tr,
	}, tr))
	defer srv.Close()

	stream, err := http.Get(srv.URL + "/api/v1/stats/stream?stats=mob-kills")
	require.NoError(t, err)
	defer stream.Body.Close()
	require.Equal(t, http.StatusOK, stream.StatusCode)
	require.Eventually(t, func() bool { return tr.Hub.ClientCount() == 1 }, time.Second, time.Millisecond)

	resp, err := http.Post(srv.URL+"/api/v1/scenarios", "application/yaml", strings.NewReader(swordKill))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result scenario.ExecutionResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.True(t, result.Success, result.Error)

	lines := bufio.NewScanner(stream.Body)
	found := false
	for !found && lines.Scan() {
		line := lines.Text()
		found = strings.Contains(line, `"material":"DIAMOND_SWORD"`) && strings.Contains(line, `"value":1`)
	}
	assert.True(t, found, "the applied kill is streamed")
}

func TestRunScenario_RejectsInvalidDocument(t *testing.T) {
	tr := newTracker(t)

	_, err := tr.RunScenario(context.Background(), []byte("name: x\nweather: rain\nsteps:\n  - tick: 1\n"))
	assert.ErrorIs(t, err, scenario.ErrInvalidScenario)
	assert.Zero(t, tr.Scheduler.Pending())
}
