package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Lawrencium-103/Linky-V2/internal/models"
	"github.com/Lawrencium-103/Linky-V2/internal/services"
)

func newMetricsService(t *testing.T) (
	*services.MetricsService,
	*services.MockMetricsReader,
	*services.MockMetricsWriter,
	*services.MockPostFlagger,
	*services.MockPostLister,
) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	reader := services.NewMockMetricsReader(ctrl)
	writer := services.NewMockMetricsWriter(ctrl)
	flagger := services.NewMockPostFlagger(ctrl)
	lister := services.NewMockPostLister(ctrl)

	svc := services.NewMetricsService(reader, writer, flagger, lister, nil)
	return svc, reader, writer, flagger, lister
}

func TestMetricsService_RecordEngagement_LikesAreCumulative(t *testing.T) {
	svc, reader, writer, flagger, _ := newMetricsService(t)
	ctx := context.Background()
	userID := uuid.New()
	postID := uuid.New()

	// Each click flags the post and bumps the counter, so three clicks
	// on the same post yield three increments
	flagger.EXPECT().SetFlag(ctx, postID, userID, "liked").Return(true, nil).Times(3)
	writer.EXPECT().Increment(ctx, userID, models.MetricLikes, 1).Return(nil).Times(3)
	gomock.InOrder(
		reader.EXPECT().GetByUserID(ctx, userID).Return(&models.MetricsDB{UserID: userID, LikesCount: 1}, nil),
		reader.EXPECT().GetByUserID(ctx, userID).Return(&models.MetricsDB{UserID: userID, LikesCount: 2}, nil),
		reader.EXPECT().GetByUserID(ctx, userID).Return(&models.MetricsDB{UserID: userID, LikesCount: 3}, nil),
	)

	for want := 1; want <= 3; want++ {
		m, err := svc.RecordEngagement(ctx, userID, postID, "like")
		assert.NoError(t, err)
		assert.Equal(t, want, m.LikesCount)
	}
}

func TestMetricsService_RecordEngagement_Share(t *testing.T) {
	svc, reader, writer, flagger, _ := newMetricsService(t)
	ctx := context.Background()
	userID := uuid.New()
	postID := uuid.New()

	flagger.EXPECT().SetFlag(ctx, postID, userID, "shared").Return(true, nil)
	writer.EXPECT().Increment(ctx, userID, models.MetricShares, 1).Return(nil)
	reader.EXPECT().GetByUserID(ctx, userID).Return(&models.MetricsDB{UserID: userID, SharesCount: 1}, nil)

	m, err := svc.RecordEngagement(ctx, userID, postID, "share")
	assert.NoError(t, err)
	assert.Equal(t, 1, m.SharesCount)
}

func TestMetricsService_RecordEngagement_Failures(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	postID := uuid.New()

	t.Run("UnknownKind", func(t *testing.T) {
		svc, _, _, _, _ := newMetricsService(t)

		_, err := svc.RecordEngagement(ctx, userID, postID, "bookmark")
		assert.ErrorIs(t, err, services.ErrValidation)
	})

	t.Run("NotOwnedPost", func(t *testing.T) {
		svc, _, _, flagger, _ := newMetricsService(t)
		flagger.EXPECT().SetFlag(ctx, postID, userID, "liked").Return(false, nil)

		_, err := svc.RecordEngagement(ctx, userID, postID, "like")
		assert.ErrorIs(t, err, services.ErrPostNotFound)
	})

	t.Run("IncrementError", func(t *testing.T) {
		svc, _, writer, flagger, _ := newMetricsService(t)
		flagger.EXPECT().SetFlag(ctx, postID, userID, "liked").Return(true, nil)
		writer.EXPECT().Increment(ctx, userID, models.MetricLikes, 1).Return(errors.New("db error"))

		_, err := svc.RecordEngagement(ctx, userID, postID, "like")
		assert.Error(t, err)
	})
}

func TestMetricsService_GetMetrics(t *testing.T) {
	svc, reader, _, _, _ := newMetricsService(t)
	ctx := context.Background()
	userID := uuid.New()

	reader.EXPECT().GetByUserID(ctx, userID).
		Return(&models.MetricsDB{UserID: userID, PostsGenerated: 7, LikesCount: 2}, nil)

	m, err := svc.GetMetrics(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, 7, m.PostsGenerated)
}

func TestMetricsService_ListPosts(t *testing.T) {
	svc, _, _, _, lister := newMetricsService(t)
	ctx := context.Background()
	userID := uuid.New()

	lister.EXPECT().ListByUserID(ctx, userID).
		Return([]models.PostDB{{PostID: uuid.New(), UserID: userID, Content: "hello"}}, nil)

	posts, err := svc.ListPosts(ctx, userID)
	assert.NoError(t, err)
	assert.Len(t, posts, 1)
}
