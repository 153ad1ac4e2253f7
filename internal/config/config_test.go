package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carepulse/internal/common"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()
	require.NotNil(t, cfg)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "3306", cfg.Database.Port)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)

	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "carepulse", cfg.Mongo.Database)

	assert.Equal(t, 2*time.Minute, cfg.Pipeline.RecencyWindow)
	assert.Equal(t, 5*time.Minute, cfg.Pipeline.SeenTTL)
	assert.Equal(t, 1500*time.Millisecond, cfg.Pipeline.ResumeSettleDelay)
	assert.Equal(t,
		[]common.MessageKind{common.KindSeizureAlert, common.KindEmergency},
		cfg.Pipeline.AlwaysNotifyKinds)

	assert.Equal(t, "+91", cfg.Sos.DefaultCountryCode)
	assert.Equal(t, 10*time.Second, cfg.Sos.LocationTimeout)

	assert.Equal(t, common.RolePatient, cfg.User.Role)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PIPELINE_RECENCY_WINDOW", "90s")
	t.Setenv("PIPELINE_ALWAYS_NOTIFY_KINDS", "seizure_alert")
	t.Setenv("SOS_DEFAULT_COUNTRY_CODE", "+1")
	t.Setenv("USER_ID", "patient-7")
	t.Setenv("USER_ROLE", "doctor")
	t.Setenv("USER_PEER_IDS", "doctor-1, doctor-2")

	cfg := Load()

	assert.Equal(t, 90*time.Second, cfg.Pipeline.RecencyWindow)
	assert.Equal(t, []common.MessageKind{common.KindSeizureAlert}, cfg.Pipeline.AlwaysNotifyKinds)
	assert.Equal(t, "+1", cfg.Sos.DefaultCountryCode)
	assert.Equal(t, "patient-7", cfg.User.ID)
	assert.Equal(t, common.RoleDoctor, cfg.User.Role)
	assert.Equal(t, []string{"doctor-1", "doctor-2"}, cfg.User.PeerIDs)
}

func TestLoad_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("PIPELINE_RECENCY_WINDOW", "not-a-duration")

	cfg := Load()
	assert.Equal(t, 2*time.Minute, cfg.Pipeline.RecencyWindow)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:         "db.internal",
			Port:         "3307",
			Username:     "svc",
			Password:     "secret",
			DatabaseName: "carepulse_db",
		},
	}

	assert.Equal(t,
		"svc:secret@tcp(db.internal:3307)/carepulse_db?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DSN())
}
