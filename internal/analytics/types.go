// Package analytics holds the pure aggregation routines behind the dashboard
// widgets. Everything here is synchronous and side-effect free: fetch layers
// hand in already-normalized records, aggregators reduce them to stats.
package analytics

import "time"

const (
	ExerciseStarted   = "started"
	ExerciseCompleted = "completed"
)

// TipView is one daily-tip impression.
type TipView struct {
	Timestamp time.Time `json:"timestamp"`
	TipID     string    `json:"tipId"`
	UserID    string    `json:"userId"`
}

// BreathingEvent is one lifecycle transition of a breathing exercise.
// Started and completed are separate events, not updates to one record,
// so the two counts can diverge.
type BreathingEvent struct {
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"userId"`
	Duration  int       `json:"duration,omitempty"`
	Status    string    `json:"status"`
}

type TipCount struct {
	TipID string `json:"tipId"`
	Count int    `json:"count"`
}

type CopingToolsStats struct {
	TotalTipsViewed             int              `json:"totalTipsViewed"`
	UniqueTipsViewed            int              `json:"uniqueTipsViewed"`
	BreathingExercisesStarted   int              `json:"breathingExercisesStarted"`
	BreathingExercisesCompleted int              `json:"breathingExercisesCompleted"`
	AverageExerciseDuration     int              `json:"averageExerciseDuration"`
	CompletionRate              int              `json:"completionRate"`
	RecentTipViews              []TipView        `json:"recentTipViews"`
	RecentBreathingExercises    []BreathingEvent `json:"recentBreathingExercises"`
	MostViewedTips              []TipCount       `json:"mostViewedTips"`
}

type JournalPrompt struct {
	Prompt string `json:"prompt"`
	Type   string `json:"type"`
}

// JournalEntry is the slice of an entry the aggregator cares about. The
// pinned prompt index designates which candidate prompt is authoritative;
// an absent or out-of-range index means the entry contributes no text.
type JournalEntry struct {
	CreatedAt         *time.Time      `json:"createdAt"`
	PinnedPromptIndex *int            `json:"pinnedPromptIndex"`
	Prompts           []JournalPrompt `json:"prompts"`
}

type PromptUsage struct {
	Prompt string `json:"prompt"`
	Count  int    `json:"count"`
	Type   string `json:"type"`
}

type JournalingStats struct {
	EntriesCount     int           `json:"entriesCount"`
	AverageWordCount int           `json:"averageWordCount"`
	Frequency        string        `json:"frequency"`
	LastEntryDate    string        `json:"lastEntryDate"`
	PromptUsage      []PromptUsage `json:"promptUsage"`
}

// Group is a community group record. Membership is the union of three
// signals: the joined list, the admin list, and the creator field.
type Group struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	GriefType   string     `json:"griefType"`
	CreatedBy   string     `json:"createdBy"`
	JoinedUsers []string   `json:"joinedUsers"`
	AdminUsers  []string   `json:"adminUsers"`
	CreatedAt   *time.Time `json:"createdAt"`
}

type GroupJoined struct {
	GroupID   string `json:"groupId"`
	GroupName string `json:"groupName"`
	JoinedAt  string `json:"joinedAt"`
	GriefType string `json:"griefType"`
}

type Post struct {
	PostID        string     `json:"postId"`
	GroupID       string     `json:"groupId"`
	GroupName     string     `json:"groupName"`
	Content       string     `json:"content"`
	Timestamp     *time.Time `json:"timestamp"`
	LikesCount    int        `json:"likesCount"`
	CommentsCount int        `json:"commentsCount"`
}

type Comment struct {
	CommentID string     `json:"commentId"`
	PostID    string     `json:"postId"`
	GroupID   string     `json:"groupId"`
	Content   string     `json:"content"`
	Timestamp *time.Time `json:"timestamp"`
}

type ActiveGroup struct {
	GroupID       string `json:"groupId"`
	GroupName     string `json:"groupName"`
	ActivityCount int    `json:"activityCount"`
}

type CommunityStats struct {
	GroupsJoinedCount int           `json:"groupsJoinedCount"`
	PostsCreatedCount int           `json:"postsCreatedCount"`
	CommentsMadeCount int           `json:"commentsMadeCount"`
	TotalReactions    int           `json:"totalReactions"`
	GroupsJoined      []GroupJoined `json:"groupsJoined"`
	RecentPosts       []Post        `json:"recentPosts"`
	RecentComments    []Comment     `json:"recentComments"`
	MostActiveGroup   *ActiveGroup  `json:"mostActiveGroup"`
}

// UserRecord is the slice of an app user the growth and retention
// aggregators consume.
type UserRecord struct {
	UID                 string     `json:"uid"`
	CreatedAt           *time.Time `json:"createdAt"`
	IsActive            bool       `json:"isActive"`
	EmailVerified       bool       `json:"emailVerified"`
	JournalEntriesCount int        `json:"journalEntriesCount"`
}
