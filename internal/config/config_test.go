package config

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interviewprep/practice-service/internal/events"
)

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	for _, key := range []string{"PORT", "REDIS_URL", "ENVIRONMENT", "REPORT_CACHE_TTL", "EVENTS_ENABLED"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, 10*time.Minute, cfg.ReportCacheTTL)
	assert.False(t, cfg.Events.Enabled)
}

func TestLoadConfig_FromEnvFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("PORT", "")
	t.Setenv("REPORT_CACHE_TTL", "")
	os.Unsetenv("PORT")
	os.Unsetenv("REPORT_CACHE_TTL")

	require.NoError(t, os.WriteFile(".env", []byte("PORT=9090\nREPORT_CACHE_TTL=30s\n"), 0o600))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.ReportCacheTTL)
}

func TestEventConfig_GetKafkaBrokers(t *testing.T) {
	c := EventConfig{KafkaBrokers: "kafka-1:9092, kafka-2:9092"}
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, c.GetKafkaBrokers())
}

func TestEventConfig_CreateEventPublisher_Disabled(t *testing.T) {
	c := EventConfig{Enabled: false, Publisher: "kafka"}

	publisher, err := c.CreateEventPublisher(slog.Default())
	require.NoError(t, err)
	assert.IsType(t, &events.LogEventPublisher{}, publisher)
}

func TestEventConfig_CreateEventPublisher_DefaultsKeepNothing(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("EVENTS_ENABLED", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	publisher, err := cfg.Events.CreateEventPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	defer publisher.Close()

	_, retains := publisher.(*events.MockEventPublisher)
	assert.False(t, retains, "long-running processes must not accumulate events")
	assert.IsType(t, &events.LogEventPublisher{}, publisher)

	for i := 0; i < 1000; i++ {
		require.NoError(t, publisher.Publish(context.Background(), events.NewEvent(events.EventReportGenerated, nil)))
	}
}

func TestEventConfig_CreateEventPublisher_UnknownFallsBack(t *testing.T) {
	c := EventConfig{Enabled: true, Publisher: "carrier-pigeon"}

	publisher, err := c.CreateEventPublisher(slog.Default())
	require.NoError(t, err)
	assert.IsType(t, &events.LogEventPublisher{}, publisher)
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
