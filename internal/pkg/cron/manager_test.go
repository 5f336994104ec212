package cron

import (
	"Socialboard/internal/api/config"
	"Socialboard/internal/job"
	"testing"
)

func TestRegisterJobs(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		entries int
		wantErr bool
	}{
		{"disabled", "", 0, false},
		{"hourly", "0 0 * * * *", 1, false},
		{"invalid", "every hour", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mgr := NewCronManager(config.CronConfig{StatsDigest: tt.spec}, job.NewStatsDigestJob(nil))
			err := mgr.RegisterJobs()
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if mgr.Entries() != tt.entries {
				t.Fatalf("entries = %d, want %d", mgr.Entries(), tt.entries)
			}
		})
	}
}
