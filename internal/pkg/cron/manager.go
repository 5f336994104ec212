package cron

import (
	"Socialboard/internal/api/config"
	"Socialboard/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine         *cron.Cron
	cfg            config.CronConfig
	statsDigestJob *job.StatsDigestJob
}

func NewCronManager(cfg config.CronConfig, statsDigestJob *job.StatsDigestJob) *Manager {
	return &Manager{
		engine:         cron.New(cron.WithSeconds()),
		cfg:            cfg,
		statsDigestJob: statsDigestJob,
	}
}

// RegisterJobs 注册定时任务，表达式为空的任务跳过
func (s *Manager) RegisterJobs() error {
	if s.cfg.StatsDigest != "" {
		if _, err := s.engine.AddJob(s.cfg.StatsDigest, s.statsDigestJob); err != nil {
			return err
		}
	}
	return nil
}

// Entries 已注册的任务数
func (s *Manager) Entries() int {
	return len(s.engine.Entries())
}

// Start 注册并启动，表达式非法时返回错误且不启动
func (s *Manager) Start() error {
	if err := s.RegisterJobs(); err != nil {
		return err
	}
	log.Info("Cron engine started", "entries", s.Entries())
	s.engine.Start()
	return nil
}

func (s *Manager) Stop() {
	log.Info("Cron engine stopping")
	<-s.engine.Stop().Done()
}
