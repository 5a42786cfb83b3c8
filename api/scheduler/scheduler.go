package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/linesmerrill/stument-forum-api/databases"
	"github.com/linesmerrill/stument-forum-api/models"
)

// DefaultSchedule is used when no schedule is configured
const DefaultSchedule = "@hourly"

const statsJobTimeout = time.Minute

// Scheduler handles periodic background jobs for the forum
type Scheduler struct {
	cron     *cron.Cron
	DB       databases.ForumDatabase
	schedule string

	mu   sync.RWMutex
	last models.ForumStats
	ran  bool
}

// NewScheduler creates a new scheduler instance that collects forum stats on
// the given cron schedule
func NewScheduler(db databases.ForumDatabase, schedule string) *Scheduler {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(time.UTC)),
		DB:       db,
		schedule: schedule,
	}
}

// Start registers the stats job and begins the scheduler
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.collectStats); err != nil {
		zap.S().Errorw("failed to register stats job", "schedule", s.schedule, "error", err)
		return err
	}

	s.cron.Start()
	zap.S().Infow("forum scheduler started", "schedule", s.schedule)
	return nil
}

// Stop gracefully stops the scheduler, waiting for a running job to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("forum scheduler stopped")
}

// LastStats returns the counts from the most recent successful run
func (s *Scheduler) LastStats() (models.ForumStats, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last, s.ran
}

func (s *Scheduler) collectStats() {
	ctx, cancel := context.WithTimeout(context.Background(), statsJobTimeout)
	defer cancel()
	s.RunStats(ctx)
}

// RunStats counts the documents in every forum collection and logs the result
func (s *Scheduler) RunStats(ctx context.Context) {
	start := time.Now()
	stats, err := s.DB.CountDocuments(ctx)
	if err != nil {
		zap.S().Errorw("failed to collect forum stats", "error", err)
		return
	}

	s.mu.Lock()
	s.last = stats
	s.ran = true
	s.mu.Unlock()

	zap.S().Infow("forum stats",
		"students", stats.Students,
		"mentors", stats.Mentors,
		"connections", stats.Connections,
		"chat_rooms", stats.ChatRooms,
		"messages", stats.Messages,
		"duration", time.Since(start),
	)
}
