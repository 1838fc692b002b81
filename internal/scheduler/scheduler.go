package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/omnical-dev/omnical/internal/services"
)

// Scheduler runs the periodic holiday cache sweep. It holds no other jobs;
// all request handling stays synchronous.
type Scheduler struct {
	cron *cron.Cron
}

func New() *Scheduler {
	return &Scheduler{cron: cron.New()}
}

// AddHolidayRefresh registers a sweep on the given cron spec that
// re-fetches cached entries older than maxAge.
func (s *Scheduler) AddHolidayRefresh(spec string, holidays *services.HolidayService, maxAge time.Duration) error {
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		log.Println("Starting holiday cache refresh sweep...")
		if err := holidays.RefreshStale(ctx, maxAge); err != nil {
			log.Printf("Holiday cache refresh sweep failed: %v", err)
		}
	})
	return err
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}
