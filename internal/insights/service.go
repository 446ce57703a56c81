// Package insights orchestrates the per-user dashboard widgets: it fans out
// store queries and feeds the results to the pure aggregators.
package insights

import (
	"context"
	"time"

	"sunlight-admin/internal/analytics"
)

const (
	eventWindow     = 50
	postsPerGroup   = 20
	commentsPerPost = 10
	recentCount     = 5
)

// Store is the slice of the record store the insight widgets read from.
// Kept as an interface so aggregation flows are testable without Postgres.
type Store interface {
	TipViews(ctx context.Context, userID string, limit int) ([]analytics.TipView, error)
	BreathingEvents(ctx context.Context, userID string, limit int) ([]analytics.BreathingEvent, error)
	JournalEntries(ctx context.Context, userID string) ([]analytics.JournalEntry, error)
	Groups(ctx context.Context) ([]analytics.Group, error)
	GroupPostsByAuthor(ctx context.Context, groupID, authorID string, limit int) ([]analytics.Post, error)
	GroupPosts(ctx context.Context, groupID string) ([]analytics.Post, error)
	PostCommentsByAuthor(ctx context.Context, groupID, postID, authorID string, limit int) ([]analytics.Comment, error)
}

type Service struct {
	Store Store
}

func (s *Service) Coping(ctx context.Context, userID string) (analytics.CopingToolsStats, error) {
	tips, err := s.Store.TipViews(ctx, userID, eventWindow)
	if err != nil {
		return analytics.CopingToolsStats{}, err
	}
	exercises, err := s.Store.BreathingEvents(ctx, userID, eventWindow)
	if err != nil {
		return analytics.CopingToolsStats{}, err
	}
	return analytics.CopingTools(tips, exercises), nil
}

func (s *Service) Journaling(ctx context.Context, userID string) (analytics.JournalingStats, error) {
	entries, err := s.Store.JournalEntries(ctx, userID)
	if err != nil {
		return analytics.JournalingStats{}, err
	}
	return analytics.Journaling(entries), nil
}

// Community walks every group the user belongs to, then that user's posts
// per group and comments per post. The query fan-out mirrors the store's
// per-group scoping of posts and comments; a failure inside one group skips
// that group and keeps the rest of the widget alive.
func (s *Service) Community(ctx context.Context, userID string) (analytics.CommunityStats, error) {
	groups, err := s.Store.Groups(ctx)
	if err != nil {
		return analytics.CommunityStats{}, err
	}

	joined := make([]analytics.GroupJoined, 0)
	activity := map[string]int{}
	nameByID := map[string]string{}

	for _, g := range groups {
		if !analytics.MemberOf(g, userID) {
			continue
		}
		joinedAt := "N/A"
		if g.CreatedAt != nil {
			// group creation time is the best available membership date
			joinedAt = g.CreatedAt.UTC().Format(time.RFC3339)
		}
		joined = append(joined, analytics.GroupJoined{
			GroupID:   g.ID,
			GroupName: g.Name,
			JoinedAt:  joinedAt,
			GriefType: g.GriefType,
		})
		activity[g.ID] = 0
		nameByID[g.ID] = g.Name
	}

	recentPosts := make([]analytics.Post, 0)
	totalReactions := 0

	for _, g := range joined {
		posts, err := s.Store.GroupPostsByAuthor(ctx, g.GroupID, userID, postsPerGroup)
		if err != nil {
			continue
		}
		for _, p := range posts {
			p.GroupName = nameByID[p.GroupID]
			recentPosts = append(recentPosts, p)
			totalReactions += p.LikesCount
			activity[g.GroupID]++
		}
	}

	recentComments := make([]analytics.Comment, 0)

	for _, g := range joined {
		posts, err := s.Store.GroupPosts(ctx, g.GroupID)
		if err != nil {
			continue
		}
		for _, p := range posts {
			comments, err := s.Store.PostCommentsByAuthor(ctx, g.GroupID, p.PostID, userID, commentsPerPost)
			if err != nil {
				continue
			}
			for _, c := range comments {
				recentComments = append(recentComments, c)
				activity[g.GroupID]++
			}
		}
	}

	mostActive := analytics.MostActiveGroup(activity, joined)

	analytics.SortPostsNewestFirst(recentPosts)
	analytics.SortCommentsNewestFirst(recentComments)

	stats := analytics.CommunityStats{
		GroupsJoinedCount: len(joined),
		PostsCreatedCount: len(recentPosts),
		CommentsMadeCount: len(recentComments),
		TotalReactions:    totalReactions,
		GroupsJoined:      joined,
		RecentPosts:       truncatePosts(recentPosts, recentCount),
		RecentComments:    truncateComments(recentComments, recentCount),
		MostActiveGroup:   mostActive,
	}
	return stats, nil
}

func truncatePosts(posts []analytics.Post, n int) []analytics.Post {
	if len(posts) > n {
		return posts[:n]
	}
	return posts
}

func truncateComments(comments []analytics.Comment, n int) []analytics.Comment {
	if len(comments) > n {
		return comments[:n]
	}
	return comments
}
