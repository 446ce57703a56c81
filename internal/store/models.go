package store

import (
	"encoding/json"
	"time"

	"github.com/lib/pq"
)

// App-side records are synced in from the mobile backend and are read-only
// for the dashboard, except for moderation's post mutations. Table names
// mirror the mobile app's collection names where those exist.

type User struct {
	UID                 string     `gorm:"primaryKey"`
	Email               string     `gorm:"index;not null;default:''"`
	DisplayName         string     `gorm:"not null;default:''"`
	Username            string     `gorm:"not null;default:''"`
	ProfileImageURL     string     `gorm:"not null;default:''"`
	Type                string     `gorm:"not null;default:''"` // "Admin" rows are hidden from listings
	IsActive            bool       `gorm:"not null;default:true"`
	SelectedPlan        string     `gorm:"not null;default:''"`
	EmailVerified       bool       `gorm:"not null;default:false"`
	SignInMethod        string     `gorm:"not null;default:''"`
	JournalEntriesCount int        `gorm:"not null;default:0"`
	DateOfLastActivity  *time.Time `gorm:"type:timestamptz"`
	CreatedAt           *time.Time `gorm:"type:timestamptz"`
}

type TipView struct {
	ID        uint64    `gorm:"primaryKey"`
	UserID    string    `gorm:"index;not null"`
	TipID     string    `gorm:"not null"`
	Timestamp time.Time `gorm:"not null;default:now()"`
}

func (TipView) TableName() string { return "analytics_daily_tips" }

type BreathingEvent struct {
	ID        uint64    `gorm:"primaryKey"`
	UserID    string    `gorm:"index;not null"`
	Status    string    `gorm:"not null;default:'started'"` // started / completed
	Duration  int       `gorm:"not null;default:0"`
	Timestamp time.Time `gorm:"not null;default:now()"`
}

func (BreathingEvent) TableName() string { return "analytics_breathing_exercises" }

type Group struct {
	ID          string         `gorm:"primaryKey"`
	Name        string         `gorm:"not null;default:''"`
	GriefType   string         `gorm:"not null;default:''"`
	CreatedBy   string         `gorm:"index;not null;default:''"`
	JoinedUsers pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	AdminUsers  pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	CreatedAt   *time.Time     `gorm:"type:timestamptz"`
}

type Post struct {
	ID            string     `gorm:"primaryKey"`
	GroupID       string     `gorm:"index;not null"`
	AuthorID      string     `gorm:"index;not null"`
	Content       string     `gorm:"type:text;not null;default:''"`
	LikesCount    int        `gorm:"not null;default:0"`
	CommentsCount int        `gorm:"not null;default:0"`
	IsHidden      bool       `gorm:"not null;default:false"`
	IsFlagged     bool       `gorm:"not null;default:false"`
	CreatedAt     *time.Time `gorm:"type:timestamptz"`
}

type Comment struct {
	ID        string     `gorm:"primaryKey"`
	PostID    string     `gorm:"index;not null"`
	GroupID   string     `gorm:"index;not null"`
	AuthorID  string     `gorm:"index;not null"`
	Content   string     `gorm:"type:text;not null;default:''"`
	CreatedAt *time.Time `gorm:"type:timestamptz"`
}

type JournalEntry struct {
	ID                string          `gorm:"primaryKey"`
	UserID            string          `gorm:"index;not null"`
	ImageURL          string          `gorm:"not null;default:''"`
	PinnedPromptIndex *int            `gorm:""`
	Prompts           json.RawMessage `gorm:"type:jsonb;not null;default:'[]'::jsonb"`
	CreatedAt         *time.Time      `gorm:"type:timestamptz"`
}

type Notification struct {
	ID        string          `gorm:"primaryKey"`
	Type      string          `gorm:"index;not null"`
	Message   string          `gorm:"type:text;not null;default:''"`
	GroupID   string          `gorm:"not null;default:''"`
	IsRead    bool            `gorm:"not null;default:false"`
	Metadata  json.RawMessage `gorm:"type:jsonb;not null;default:'{}'::jsonb"`
	CreatedAt *time.Time      `gorm:"type:timestamptz"`
}

// Feedback is one document per user holding an array of submissions,
// the shape the mobile app writes.
type Feedback struct {
	ID        string          `gorm:"primaryKey"`
	UserEmail string          `gorm:"not null;default:''"`
	UserName  string          `gorm:"not null;default:''"`
	Feedbacks json.RawMessage `gorm:"type:jsonb;not null;default:'[]'::jsonb"`
}

func (Feedback) TableName() string { return "feedback" }

// InsightSnapshot is a precomputed coping-tools stats blob written by the
// refresh worker.
type InsightSnapshot struct {
	UserID     string          `gorm:"primaryKey"`
	Stats      json.RawMessage `gorm:"type:jsonb;not null;default:'{}'::jsonb"`
	ComputedAt time.Time       `gorm:"not null;default:now()"`
}
