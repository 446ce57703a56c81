package db

import (
	"fmt"

	"sunlight-admin/internal/auth"
	"sunlight-admin/internal/jobs"
	"sunlight-admin/internal/store"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

func AutoMigrateAndIndexes(gdb *gorm.DB) error {
	// Tables
	if err := gdb.AutoMigrate(
		&store.User{},
		&store.TipView{},
		&store.BreathingEvent{},
		&store.Group{},
		&store.Post{},
		&store.Comment{},
		&store.JournalEntry{},
		&store.Notification{},
		&store.Feedback{},
		&store.InsightSnapshot{},
		&jobs.Job{},
		&auth.Admin{},
	); err != nil {
		return err
	}

	// Membership lookups scan the arrays (GIN for text[])
	if err := gdb.Exec(`create index if not exists idx_groups_joined on groups using gin (joined_users);`).Error; err != nil {
		return err
	}
	if err := gdb.Exec(`create index if not exists idx_groups_admins on groups using gin (admin_users);`).Error; err != nil {
		return err
	}

	// Flag cleanup deletes by the postId buried in metadata
	if err := gdb.Exec(`
create index if not exists idx_notifications_flag_post
on notifications(type, (metadata->>'postId'));
`).Error; err != nil {
		return err
	}

	// Helpful indexes
	stmts := []string{
		`create index if not exists idx_tips_user_time on analytics_daily_tips(user_id, timestamp desc);`,
		`create index if not exists idx_breathing_user_time on analytics_breathing_exercises(user_id, timestamp desc);`,
		`create index if not exists idx_posts_group_author_created on posts(group_id, author_id, created_at desc);`,
		`create index if not exists idx_comments_group_post_author on comments(group_id, post_id, author_id);`,
		`create index if not exists idx_journal_user on journal_entries(user_id);`,
		`create index if not exists idx_jobs_due on jobs(status, run_at);`,
		`create index if not exists idx_jobs_lock on jobs(status, locked_at);`,
	}
	for _, s := range stmts {
		if err := gdb.Exec(s).Error; err != nil {
			return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
		}
	}

	return nil
}
