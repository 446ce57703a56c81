package moderation

import (
	"context"
	"testing"
	"time"

	"sunlight-admin/internal/store"

	"github.com/stretchr/testify/require"
)

func TestValidateIDs(t *testing.T) {
	// validation runs before any database access, so a zero service is safe
	svc := &Service{}

	for _, fn := range []func(context.Context, string, string) error{svc.Approve, svc.Delete} {
		require.ErrorIs(t, fn(context.Background(), "", "post-1"), ErrMissingIdentifiers)
		require.ErrorIs(t, fn(context.Background(), "group-1", ""), ErrMissingIdentifiers)
		require.ErrorIs(t, fn(context.Background(), "   ", "post-1"), ErrMissingIdentifiers)
	}
}

func flagNotification(id, postID, groupID string, at time.Time) store.FlaggedNotification {
	return store.FlaggedNotification{
		ID:        id,
		Type:      "content_flag",
		Message:   "A post in your group was flagged",
		CreatedAt: &at,
		Metadata: store.NotificationMetadata{
			PostID:  postID,
			GroupID: groupID,
		},
	}
}

func TestGroupByPost(t *testing.T) {
	now := time.Now()

	input := []store.FlaggedNotification{
		flagNotification("n1", "post-b", "group-1", now),
		flagNotification("n2", "post-a", "group-2", now.Add(-time.Hour)),
		flagNotification("n3", "post-b", "group-1", now.Add(-2*time.Hour)),
	}

	groups := GroupByPost(input)

	require.Len(t, groups, 2)

	// first-appearance order, sibling notifications collapsed
	require.Equal(t, "post-b", groups[0].PostID)
	require.Equal(t, "group-1", groups[0].GroupID)
	require.Len(t, groups[0].Notifications, 2)
	require.Equal(t, "n1", groups[0].Notifications[0].ID)
	require.Equal(t, "n3", groups[0].Notifications[1].ID)

	require.Equal(t, "post-a", groups[1].PostID)
	require.Len(t, groups[1].Notifications, 1)
}

func TestGroupByPostEmpty(t *testing.T) {
	groups := GroupByPost(nil)
	require.NotNil(t, groups)
	require.Empty(t, groups)
}
