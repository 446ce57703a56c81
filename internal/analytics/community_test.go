package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemberOf(t *testing.T) {
	g := Group{
		ID:          "g1",
		CreatedBy:   "creator",
		JoinedUsers: []string{"joiner"},
		AdminUsers:  []string{"admin"},
	}

	require.True(t, MemberOf(g, "joiner"))
	require.True(t, MemberOf(g, "admin"))
	require.True(t, MemberOf(g, "creator"))
	require.False(t, MemberOf(g, "stranger"))
}

func TestMostActiveGroup(t *testing.T) {
	groups := []GroupJoined{
		{GroupID: "g-a", GroupName: "Alpha"},
		{GroupID: "g-b", GroupName: "Beta"},
	}

	t.Run("highest count wins", func(t *testing.T) {
		got := MostActiveGroup(map[string]int{"g-a": 2, "g-b": 7}, groups)
		require.NotNil(t, got)
		require.Equal(t, "g-b", got.GroupID)
		require.Equal(t, "Beta", got.GroupName)
		require.Equal(t, 7, got.ActivityCount)
	})

	t.Run("ties break by group id ascending", func(t *testing.T) {
		got := MostActiveGroup(map[string]int{"g-b": 4, "g-a": 4}, groups)
		require.NotNil(t, got)
		require.Equal(t, "g-a", got.GroupID)
	})

	t.Run("zero activity never wins", func(t *testing.T) {
		require.Nil(t, MostActiveGroup(map[string]int{"g-a": 0, "g-b": 0}, groups))
		require.Nil(t, MostActiveGroup(nil, groups))
	})

	t.Run("unknown group ids are skipped", func(t *testing.T) {
		got := MostActiveGroup(map[string]int{"ghost": 9, "g-a": 1}, groups)
		require.NotNil(t, got)
		require.Equal(t, "g-a", got.GroupID)
	})
}

func TestSortPostsNewestFirst(t *testing.T) {
	old := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

	posts := []Post{
		{PostID: "undated"},
		{PostID: "old", Timestamp: &old},
		{PostID: "recent", Timestamp: &recent},
	}
	SortPostsNewestFirst(posts)

	require.Equal(t, "recent", posts[0].PostID)
	require.Equal(t, "old", posts[1].PostID)
	require.Equal(t, "undated", posts[2].PostID)
}

func TestSortCommentsNewestFirst(t *testing.T) {
	old := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

	comments := []Comment{
		{CommentID: "old", Timestamp: &old},
		{CommentID: "undated"},
		{CommentID: "recent", Timestamp: &recent},
	}
	SortCommentsNewestFirst(comments)

	require.Equal(t, "recent", comments[0].CommentID)
	require.Equal(t, "old", comments[1].CommentID)
	require.Equal(t, "undated", comments[2].CommentID)
}
