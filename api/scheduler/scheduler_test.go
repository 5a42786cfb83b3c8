package scheduler_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/linesmerrill/stument-forum-api/api/scheduler"
	"github.com/linesmerrill/stument-forum-api/databases/mocks"
	"github.com/linesmerrill/stument-forum-api/models"
)

func TestScheduler_RunStats(t *testing.T) {
	db := mocks.NewForumDatabase(t)
	stats := models.ForumStats{Students: 3, Mentors: 2, Connections: 4, ChatRooms: 1, Messages: 9}
	db.On("CountDocuments", mock.Anything).Return(stats, nil)

	s := scheduler.NewScheduler(db, "")
	_, ok := s.LastStats()
	assert.False(t, ok)

	s.RunStats(context.Background())

	got, ok := s.LastStats()
	assert.True(t, ok)
	assert.Equal(t, stats, got)
}

func TestScheduler_RunStatsError(t *testing.T) {
	db := mocks.NewForumDatabase(t)
	db.On("CountDocuments", mock.Anything).Return(models.ForumStats{}, errors.New("mocked-error"))

	s := scheduler.NewScheduler(db, "@every 1h")
	s.RunStats(context.Background())

	_, ok := s.LastStats()
	assert.False(t, ok)
}

func TestScheduler_StartInvalidSchedule(t *testing.T) {
	db := mocks.NewForumDatabase(t)

	s := scheduler.NewScheduler(db, "not a schedule")
	assert.Error(t, s.Start())
}

func TestScheduler_StartStop(t *testing.T) {
	db := mocks.NewForumDatabase(t)

	s := scheduler.NewScheduler(db, "@every 1h")
	require.NoError(t, s.Start())
	s.Stop()
}
