package cron

import (
	"Lexnet/internal/api/config"
	"Lexnet/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

const defaultAuditSpec = "@every 5m"

type Manager struct {
	engine          *cron.Cron
	counterAuditJob *job.CounterAuditJob
}

func NewCronManager(counterAuditJob *job.CounterAuditJob) *Manager {
	return &Manager{
		engine:          cron.New(cron.WithSeconds()),
		counterAuditJob: counterAuditJob,
	}
}

func (s *Manager) RegisterJobs() error {
	spec := config.Cfg.Audit.Spec
	if spec == "" {
		spec = defaultAuditSpec
	}
	if _, err := s.engine.AddJob(spec, s.counterAuditJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron engine started")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron engine stopped")
	s.engine.Stop()
}
