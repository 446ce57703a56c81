package store

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"time"

	"sunlight-admin/internal/analytics"

	"gorm.io/gorm"
)

// Store is the dashboard's read side: per-domain fetchers that pull raw
// records and normalize them for the aggregators.
type Store struct {
	DB *gorm.DB
}

// Users returns the full app-user directory, excluding admin mirror rows.
func (s *Store) Users(ctx context.Context) ([]User, error) {
	var rows []User
	err := s.DB.WithContext(ctx).
		Where("type <> ?", "Admin").
		Find(&rows).Error
	return rows, err
}

func (s *Store) UserByID(ctx context.Context, uid string) (*User, error) {
	var u User
	if err := s.DB.WithContext(ctx).Where("uid = ? AND type <> ?", uid, "Admin").First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) TipViews(ctx context.Context, userID string, limit int) ([]analytics.TipView, error) {
	var rows []TipView
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp desc").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]analytics.TipView, 0, len(rows))
	for _, r := range rows {
		out = append(out, analytics.TipView{
			Timestamp: r.Timestamp,
			TipID:     r.TipID,
			UserID:    r.UserID,
		})
	}
	return out, nil
}

func (s *Store) BreathingEvents(ctx context.Context, userID string, limit int) ([]analytics.BreathingEvent, error) {
	var rows []BreathingEvent
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp desc").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]analytics.BreathingEvent, 0, len(rows))
	for _, r := range rows {
		status := r.Status
		if status == "" {
			status = analytics.ExerciseStarted
		}
		out = append(out, analytics.BreathingEvent{
			Timestamp: r.Timestamp,
			UserID:    r.UserID,
			Duration:  r.Duration,
			Status:    status,
		})
	}
	return out, nil
}

// JournalEntries is an unbounded scan of one user's collection. A prompts
// blob that fails to decode degrades to an entry with no prompts.
func (s *Store) JournalEntries(ctx context.Context, userID string) ([]analytics.JournalEntry, error) {
	var rows []JournalEntry
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]analytics.JournalEntry, 0, len(rows))
	for _, r := range rows {
		var prompts []analytics.JournalPrompt
		if len(r.Prompts) > 0 {
			_ = json.Unmarshal(r.Prompts, &prompts)
		}
		out = append(out, analytics.JournalEntry{
			CreatedAt:         r.CreatedAt,
			PinnedPromptIndex: r.PinnedPromptIndex,
			Prompts:           prompts,
		})
	}
	return out, nil
}

func (s *Store) Groups(ctx context.Context) ([]analytics.Group, error) {
	var rows []Group
	if err := s.DB.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]analytics.Group, 0, len(rows))
	for _, r := range rows {
		name := r.Name
		if name == "" {
			name = "Unknown Group"
		}
		griefType := r.GriefType
		if griefType == "" {
			griefType = "Unknown"
		}
		out = append(out, analytics.Group{
			ID:          r.ID,
			Name:        name,
			GriefType:   griefType,
			CreatedBy:   r.CreatedBy,
			JoinedUsers: []string(r.JoinedUsers),
			AdminUsers:  []string(r.AdminUsers),
			CreatedAt:   r.CreatedAt,
		})
	}
	return out, nil
}

func (s *Store) GroupPostsByAuthor(ctx context.Context, groupID, authorID string, limit int) ([]analytics.Post, error) {
	var rows []Post
	err := s.DB.WithContext(ctx).
		Where("group_id = ? AND author_id = ?", groupID, authorID).
		Order("created_at desc").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toAnalyticsPosts(rows), nil
}

func (s *Store) GroupPosts(ctx context.Context, groupID string) ([]analytics.Post, error) {
	var rows []Post
	err := s.DB.WithContext(ctx).
		Where("group_id = ?", groupID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toAnalyticsPosts(rows), nil
}

func (s *Store) PostCommentsByAuthor(ctx context.Context, groupID, postID, authorID string, limit int) ([]analytics.Comment, error) {
	var rows []Comment
	err := s.DB.WithContext(ctx).
		Where("group_id = ? AND post_id = ? AND author_id = ?", groupID, postID, authorID).
		Order("created_at desc").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]analytics.Comment, 0, len(rows))
	for _, r := range rows {
		out = append(out, analytics.Comment{
			CommentID: r.ID,
			PostID:    r.PostID,
			GroupID:   r.GroupID,
			Content:   r.Content,
			Timestamp: r.CreatedAt,
		})
	}
	return out, nil
}

func toAnalyticsPosts(rows []Post) []analytics.Post {
	out := make([]analytics.Post, 0, len(rows))
	for _, r := range rows {
		out = append(out, analytics.Post{
			PostID:        r.ID,
			GroupID:       r.GroupID,
			Content:       r.Content,
			Timestamp:     r.CreatedAt,
			LikesCount:    r.LikesCount,
			CommentsCount: r.CommentsCount,
		})
	}
	return out
}

func (s *Store) InsightSnapshot(ctx context.Context, userID string) (*InsightSnapshot, error) {
	var snap InsightSnapshot
	if err := s.DB.WithContext(ctx).Where("user_id = ?", userID).First(&snap).Error; err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *Store) SaveInsightSnapshot(ctx context.Context, userID string, stats json.RawMessage) error {
	return s.DB.WithContext(ctx).Exec(`
insert into insight_snapshots (user_id, stats, computed_at)
values (?, ?, now())
on conflict (user_id) do update set stats = excluded.stats, computed_at = now()
`, userID, string(stats)).Error
}

type NotificationMetadata struct {
	GroupName       string `json:"groupName"`
	MessageContent  string `json:"messageContent"`
	PostContent     string `json:"postContent,omitempty"`
	PostID          string `json:"postId"`
	GroupID         string `json:"groupId"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
	SenderName      string `json:"senderName"`
	Username        string `json:"username"`
}

type FlaggedNotification struct {
	ID        string               `json:"id"`
	Message   string               `json:"message"`
	Metadata  NotificationMetadata `json:"metadata"`
	CreatedAt *time.Time           `json:"createdAt"`
	IsRead    bool                 `json:"isRead"`
	Type      string               `json:"type"`
}

// FlaggedNotifications returns every content_flag notification, newest
// first, with metadata decoded and missing fields replaced by the
// dashboard's fallback strings. The group id lives at the document root,
// not inside metadata.
func (s *Store) FlaggedNotifications(ctx context.Context) ([]FlaggedNotification, error) {
	var rows []Notification
	err := s.DB.WithContext(ctx).
		Where("type = ?", "content_flag").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]FlaggedNotification, 0, len(rows))
	for _, r := range rows {
		var md NotificationMetadata
		if len(r.Metadata) > 0 {
			_ = json.Unmarshal(r.Metadata, &md)
		}
		if md.GroupName == "" {
			md.GroupName = "Unknown Group"
		}
		if md.SenderName == "" {
			md.SenderName = "Unknown User"
		}
		if md.Username == "" {
			md.Username = "unknown"
		}
		md.GroupID = r.GroupID

		out = append(out, FlaggedNotification{
			ID:        r.ID,
			Message:   r.Message,
			Metadata:  md,
			CreatedAt: r.CreatedAt,
			IsRead:    r.IsRead,
			Type:      r.Type,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		ti, tj := out[i].CreatedAt, out[j].CreatedAt
		if ti == nil || tj == nil {
			return false
		}
		return ti.After(*tj)
	})
	return out, nil
}

type FeedbackEntry struct {
	ID           string     `json:"id"`
	DocID        string     `json:"docId"`
	UserEmail    string     `json:"userEmail"`
	UserName     string     `json:"userName,omitempty"`
	Message      string     `json:"message"`
	FeedbackType string     `json:"feedbackType"`
	Rating       int        `json:"rating"`
	CreatedAt    *time.Time `json:"createdAt"`
}

type feedbackItem struct {
	Message      string `json:"message"`
	FeedbackType string `json:"feedbackType"`
	Rating       int    `json:"rating"`
	CreatedAt    string `json:"createdAt"`
}

// FeedbackEntries flattens the per-user feedback documents into one list,
// newest first. Entry timestamps are strings inside the jsonb array and are
// parsed defensively; unparsable ones stay in the list but sort last.
func (s *Store) FeedbackEntries(ctx context.Context) ([]FeedbackEntry, error) {
	var docs []Feedback
	if err := s.DB.WithContext(ctx).Find(&docs).Error; err != nil {
		return nil, err
	}

	var out []FeedbackEntry
	for _, doc := range docs {
		email := doc.UserEmail
		if email == "" {
			email = "Unknown"
		}

		var items []feedbackItem
		if len(doc.Feedbacks) > 0 {
			_ = json.Unmarshal(doc.Feedbacks, &items)
		}
		for i, item := range items {
			typ := item.FeedbackType
			if typ == "" {
				typ = "General"
			}
			out = append(out, FeedbackEntry{
				ID:           doc.ID + "_" + strconv.Itoa(i),
				DocID:        doc.ID,
				UserEmail:    email,
				UserName:     doc.UserName,
				Message:      item.Message,
				FeedbackType: typ,
				Rating:       item.Rating,
				CreatedAt:    ParseTimestamp(item.CreatedAt),
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		ti, tj := out[i].CreatedAt, out[j].CreatedAt
		if ti == nil || tj == nil {
			return false
		}
		return ti.After(*tj)
	})
	return out, nil
}
