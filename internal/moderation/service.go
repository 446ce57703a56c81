// Package moderation implements the flagged-post queue: approve keeps the
// post and clears its flags, delete removes it. Either way every sibling
// flag notification for the post is cleared in one batch, so the post
// leaves all admins' queues at once.
package moderation

import (
	"context"
	"errors"
	"strings"

	"sunlight-admin/internal/store"

	"gorm.io/gorm"
)

var (
	ErrMissingIdentifiers = errors.New("group id and post id are required")
	ErrPostNotFound       = errors.New("post not found")
)

type Service struct {
	DB *gorm.DB
}

// Approve unhides and unflags the post, then clears the whole flag
// notification group. The two steps are deliberately separate writes:
// a failed cleanup surfaces as an error with the post already restored,
// matching the dashboard's behavior.
func (s *Service) Approve(ctx context.Context, groupID, postID string) error {
	if err := validateIDs(groupID, postID); err != nil {
		return err
	}

	res := s.DB.WithContext(ctx).
		Model(&store.Post{}).
		Where("id = ? AND group_id = ?", postID, groupID).
		Updates(map[string]any{
			"is_hidden":  false,
			"is_flagged": false,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPostNotFound
	}

	return s.clearFlagNotifications(ctx, postID)
}

// Delete removes the post outright, then clears the flag notification group.
func (s *Service) Delete(ctx context.Context, groupID, postID string) error {
	if err := validateIDs(groupID, postID); err != nil {
		return err
	}

	res := s.DB.WithContext(ctx).
		Where("id = ? AND group_id = ?", postID, groupID).
		Delete(&store.Post{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPostNotFound
	}

	return s.clearFlagNotifications(ctx, postID)
}

// clearFlagNotifications deletes every content_flag notification referencing
// the post, across all admins, as a single statement. Repeating it for an
// already-cleared post is a no-op, which keeps approve/delete idempotent per
// notification group.
func (s *Service) clearFlagNotifications(ctx context.Context, postID string) error {
	return s.DB.WithContext(ctx).Exec(`
delete from notifications
where type = 'content_flag'
  and metadata->>'postId' = ?
`, postID).Error
}

func validateIDs(groupID, postID string) error {
	if strings.TrimSpace(groupID) == "" || strings.TrimSpace(postID) == "" {
		return ErrMissingIdentifiers
	}
	return nil
}

// FlagGroup is one moderation unit: all notifications that reference the
// same post, however many admins were notified.
type FlagGroup struct {
	PostID        string                      `json:"postId"`
	GroupID       string                      `json:"groupId"`
	Notifications []store.FlaggedNotification `json:"notifications"`
}

// GroupByPost collapses sibling notifications into per-post flag groups,
// keeping the order in which posts first appear in the (newest-first) input.
func GroupByPost(notifications []store.FlaggedNotification) []FlagGroup {
	byPost := map[string]int{}
	groups := make([]FlagGroup, 0)

	for _, n := range notifications {
		postID := n.Metadata.PostID
		if i, ok := byPost[postID]; ok {
			groups[i].Notifications = append(groups[i].Notifications, n)
			continue
		}
		byPost[postID] = len(groups)
		groups = append(groups, FlagGroup{
			PostID:        postID,
			GroupID:       n.Metadata.GroupID,
			Notifications: []store.FlaggedNotification{n},
		})
	}
	return groups
}
