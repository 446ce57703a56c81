package insights

import (
	"context"
	"errors"
	"testing"
	"time"

	"sunlight-admin/internal/analytics"

	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	tips     []analytics.TipView
	events   []analytics.BreathingEvent
	entries  []analytics.JournalEntry
	groups   []analytics.Group
	posts    map[string][]analytics.Post // by group id, author-scoped
	all      map[string][]analytics.Post // by group id, everyone's
	comments map[string][]analytics.Comment

	failPostsFor string // group id whose post queries error
}

func (f *fakeStore) TipViews(ctx context.Context, userID string, limit int) ([]analytics.TipView, error) {
	return f.tips, nil
}

func (f *fakeStore) BreathingEvents(ctx context.Context, userID string, limit int) ([]analytics.BreathingEvent, error) {
	return f.events, nil
}

func (f *fakeStore) JournalEntries(ctx context.Context, userID string) ([]analytics.JournalEntry, error) {
	return f.entries, nil
}

func (f *fakeStore) Groups(ctx context.Context) ([]analytics.Group, error) {
	return f.groups, nil
}

func (f *fakeStore) GroupPostsByAuthor(ctx context.Context, groupID, authorID string, limit int) ([]analytics.Post, error) {
	if groupID == f.failPostsFor {
		return nil, errors.New("boom")
	}
	return f.posts[groupID], nil
}

func (f *fakeStore) GroupPosts(ctx context.Context, groupID string) ([]analytics.Post, error) {
	if groupID == f.failPostsFor {
		return nil, errors.New("boom")
	}
	return f.all[groupID], nil
}

func (f *fakeStore) PostCommentsByAuthor(ctx context.Context, groupID, postID, authorID string, limit int) ([]analytics.Comment, error) {
	return f.comments[postID], nil
}

func ts(day int) *time.Time {
	t := time.Date(2026, time.June, day, 12, 0, 0, 0, time.UTC)
	return &t
}

func TestCommunity(t *testing.T) {
	created := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

	st := &fakeStore{
		groups: []analytics.Group{
			{ID: "g1", Name: "Loss of a Parent", GriefType: "Parent", JoinedUsers: []string{"u1"}, CreatedAt: &created},
			{ID: "g2", Name: "Loss of a Partner", GriefType: "Partner", AdminUsers: []string{"u1"}},
			{ID: "g3", Name: "Not Mine", JoinedUsers: []string{"someone-else"}},
		},
		posts: map[string][]analytics.Post{
			"g1": {
				{PostID: "p1", GroupID: "g1", LikesCount: 3, Timestamp: ts(10)},
				{PostID: "p2", GroupID: "g1", LikesCount: 1, Timestamp: ts(12)},
			},
		},
		all: map[string][]analytics.Post{
			"g1": {{PostID: "p1", GroupID: "g1"}, {PostID: "px", GroupID: "g1"}},
			"g2": {{PostID: "py", GroupID: "g2"}},
		},
		comments: map[string][]analytics.Comment{
			"px": {{CommentID: "c1", PostID: "px", GroupID: "g1", Timestamp: ts(11)}},
			"py": {{CommentID: "c2", PostID: "py", GroupID: "g2", Timestamp: ts(14)}},
		},
	}

	svc := &Service{Store: st}
	stats, err := svc.Community(context.Background(), "u1")
	require.NoError(t, err)

	require.Equal(t, 2, stats.GroupsJoinedCount)
	require.Equal(t, 2, stats.PostsCreatedCount)
	require.Equal(t, 2, stats.CommentsMadeCount)
	require.Equal(t, 4, stats.TotalReactions)

	require.Len(t, stats.GroupsJoined, 2)
	require.Equal(t, "g1", stats.GroupsJoined[0].GroupID)
	require.Equal(t, created.UTC().Format(time.RFC3339), stats.GroupsJoined[0].JoinedAt)
	require.Equal(t, "N/A", stats.GroupsJoined[1].JoinedAt)

	// posts carry their group's name and come back newest first
	require.Equal(t, "p2", stats.RecentPosts[0].PostID)
	require.Equal(t, "Loss of a Parent", stats.RecentPosts[0].GroupName)
	require.Equal(t, "c2", stats.RecentComments[0].CommentID)

	// g1 has 2 posts + 1 comment, g2 has 1 comment
	require.NotNil(t, stats.MostActiveGroup)
	require.Equal(t, "g1", stats.MostActiveGroup.GroupID)
	require.Equal(t, 3, stats.MostActiveGroup.ActivityCount)
}

func TestCommunityGroupFailureSkipped(t *testing.T) {
	st := &fakeStore{
		groups: []analytics.Group{
			{ID: "g1", Name: "Working", JoinedUsers: []string{"u1"}},
			{ID: "g2", Name: "Broken", JoinedUsers: []string{"u1"}},
		},
		posts: map[string][]analytics.Post{
			"g1": {{PostID: "p1", GroupID: "g1", Timestamp: ts(1)}},
		},
		failPostsFor: "g2",
	}

	svc := &Service{Store: st}
	stats, err := svc.Community(context.Background(), "u1")
	require.NoError(t, err)

	// the broken group still counts as joined, its activity is just absent
	require.Equal(t, 2, stats.GroupsJoinedCount)
	require.Equal(t, 1, stats.PostsCreatedCount)
}

func TestCommunityNoMemberships(t *testing.T) {
	st := &fakeStore{
		groups: []analytics.Group{{ID: "g1", JoinedUsers: []string{"someone-else"}}},
	}

	svc := &Service{Store: st}
	stats, err := svc.Community(context.Background(), "u1")
	require.NoError(t, err)

	require.Zero(t, stats.GroupsJoinedCount)
	require.Nil(t, stats.MostActiveGroup)
	require.NotNil(t, stats.GroupsJoined)
	require.NotNil(t, stats.RecentPosts)
	require.NotNil(t, stats.RecentComments)
}

func TestCoping(t *testing.T) {
	st := &fakeStore{
		tips: []analytics.TipView{{TipID: "tip_a"}, {TipID: "tip_a"}},
		events: []analytics.BreathingEvent{
			{Status: analytics.ExerciseStarted},
			{Status: analytics.ExerciseCompleted, Duration: 90},
		},
	}

	svc := &Service{Store: st}
	stats, err := svc.Coping(context.Background(), "u1")
	require.NoError(t, err)

	require.Equal(t, 2, stats.TotalTipsViewed)
	require.Equal(t, 1, stats.UniqueTipsViewed)
	require.Equal(t, 100, stats.CompletionRate)
}

func TestJournaling(t *testing.T) {
	pin := 0
	at := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)
	st := &fakeStore{
		entries: []analytics.JournalEntry{
			{CreatedAt: &at, PinnedPromptIndex: &pin, Prompts: []analytics.JournalPrompt{{Prompt: "hello world", Type: "Reflection"}}},
		},
	}

	svc := &Service{Store: st}
	stats, err := svc.Journaling(context.Background(), "u1")
	require.NoError(t, err)

	require.Equal(t, 1, stats.EntriesCount)
	require.Equal(t, "One entry only", stats.Frequency)
}
