package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophdash/internal/config"
	"github.com/dmitrijs2005/gophdash/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DatabaseDSN = filepath.Join(t.TempDir(), "dash.db")
	cfg.AuthDelay = 0
	cfg.RecordCount = 30
	cfg.Seed = 11
	cfg.PageSize = 5
	return cfg
}

func TestNewApp_WiresConfig(t *testing.T) {
	cfg := testConfig(t)
	a, err := NewApp(context.Background(), cfg, logging.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	assert.Len(t, a.table.Records(), 30)
	assert.Equal(t, 5, a.table.State().ItemsPerPage)

	b, err := NewApp(context.Background(), testConfig(t), logging.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })
	assert.Equal(t, a.table.Records(), b.table.Records(), "same seed, same records")
}

func TestNewApp_UnknownScheme(t *testing.T) {
	cfg := testConfig(t)
	cfg.Storage = config.StorageMemory
	cfg.PasswordScheme = "rot13"

	_, err := NewApp(context.Background(), cfg, logging.Nop())
	require.Error(t, err)
}

func TestRun_SessionSurvivesRestart(t *testing.T) {
	captureOutput(t)
	cfg := testConfig(t)
	ctx := context.Background()

	a, err := NewApp(ctx, cfg, logging.Nop())
	require.NoError(t, err)
	var out1 bytes.Buffer
	a.out = &out1
	a.reader = rdr("exit\n")
	require.NoError(t, a.session.Signup(ctx, "f@example.org", "secret6", "Fay"))
	require.NoError(t, a.Run(ctx))
	assert.Contains(t, out1.String(), "Welcome to the dashboard")

	b, err := NewApp(ctx, cfg, logging.Nop())
	require.NoError(t, err)
	var out2 bytes.Buffer
	b.out = &out2
	b.reader = rdr("exit\n")
	require.NoError(t, b.Run(ctx))

	assert.Contains(t, out2.String(), "Welcome back, Fay")
	assert.True(t, b.isLoggedIn())
	assert.Equal(t, "f@example.org", b.getStatus())
}

func TestStartSessionWatcher_LogsTransitions(t *testing.T) {
	var logs syncBuffer
	logger, err := logging.New(&logs, "text", "debug")
	require.NoError(t, err)

	a, _ := newTestApp(t)
	a.logger = logger

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		a.StartSessionWatcher(ctx)
		close(done)
	}()

	// wait for the watcher to subscribe before changing the session
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, a.session.Signup(context.Background(), "g@example.org", "secret7", "Gus"))

	assert.Eventually(t, func() bool {
		return bytes.Contains([]byte(logs.String()), []byte("session started"))
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}
