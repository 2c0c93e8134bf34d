package service

import (
	"career_path_backend/internal/util"
	"context"
	"testing"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartPlaybackReplacesPendingTimer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	userID := f.register(t, "a@example.com", "alice")

	playback := NewPlaybackService(f.learning)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	playback.now = func() time.Time { return now }

	_, err := playback.StartPlayback(ctx, userID, "se_b_2")
	assert.ErrorIs(t, err, util.ErrVideoLocked)

	start, err := playback.StartPlayback(ctx, userID, "se_b_1")
	require.NoError(t, err)
	assert.Equal(t, 6, start.Duration)
	assert.Equal(t, now.Add(6*time.Second), start.CompleteAt)

	_, err = playback.StartPlayback(ctx, userID, "se_b_1")
	require.NoError(t, err)
	assert.Equal(t, 1, playback.Pending())
}

func TestPlaybackCompletionMarksVideo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	userID := f.register(t, "a@example.com", "alice")

	playback := NewPlaybackService(f.learning)
	playback.complete(userID, "se_b_1", gocron.Job{})

	completed, err := f.videos.CompletedVideos(ctx, userID, []string{"se_b_1"})
	require.NoError(t, err)
	assert.True(t, completed["se_b_1"])

	// 被锁定的视频计时结束也不会写入
	playback.complete(userID, "se_b_3", gocron.Job{})
	completed, err = f.videos.CompletedVideos(ctx, userID, []string{"se_b_3"})
	require.NoError(t, err)
	assert.False(t, completed["se_b_3"])
}

func TestPlaybackTimerFiresAndReleasesJob(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for a real playback timer")
	}
	f := newFixture(t)
	ctx := context.Background()
	userID := f.register(t, "a@example.com", "alice")

	playback := NewPlaybackService(f.learning)
	playback.Start()
	t.Cleanup(playback.Stop)

	start, err := playback.StartPlayback(ctx, userID, "se_b_1")
	require.NoError(t, err)
	require.Equal(t, 1, playback.Pending())

	wait := time.Duration(start.Duration)*time.Second + 5*time.Second
	require.Eventually(t, func() bool {
		completed, err := f.videos.CompletedVideos(ctx, userID, []string{"se_b_1"})
		return err == nil && completed["se_b_1"] && playback.Pending() == 0
	}, wait, 100*time.Millisecond)
}
