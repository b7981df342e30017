package cron

import (
	"log"

	"github.com/robfig/cron/v3"

	"izesquad-api/club"
)

// Scheduler drives the periodic work: advancing countdowns, auto-filling
// courts and flushing the write-behind snapshot.
type Scheduler struct {
	cron *cron.Cron
	club *club.Club
}

func NewScheduler(c *club.Club) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithSeconds()),
		club: c,
	}
}

// Start registers and starts the jobs: a court tick every 5 seconds and a
// snapshot flush every 15.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("*/5 * * * * *", s.club.Tick); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("*/15 * * * * *", s.runFlush); err != nil {
		return err
	}
	s.cron.Start()
	log.Println("scheduler started")
	return nil
}

// Stop shuts the scheduler down and flushes a final snapshot.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.runFlush()
	log.Println("scheduler stopped")
}

func (s *Scheduler) runFlush() {
	if err := s.club.Flush(); err != nil {
		log.Printf("snapshot flush: %v", err)
	}
}
