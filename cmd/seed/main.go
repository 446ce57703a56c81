// Seeds the database with sample app data so the dashboard has something
// to render during development.
//
// Usage:
//
//	DATABASE_URL=postgres://... JWT_SECRET=dev go run ./cmd/seed
package main

import (
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"time"

	"sunlight-admin/internal/config"
	"sunlight-admin/internal/db"
	"sunlight-admin/internal/store"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

var userCount = flag.Int("users", 8, "number of sample users to create")

var sampleTips = []string{
	"tip_breathing_basics", "tip_grounding", "tip_sleep_hygiene",
	"tip_gratitude", "tip_self_talk",
}

var samplePrompts = []map[string]string{
	{"prompt": "What felt heavy today and what helped you carry it", "type": "Reflection"},
	{"prompt": "Write about a memory you want to keep close", "type": "Memory"},
	{"prompt": "Name one small thing you are grateful for right now", "type": "Gratitude"},
	{"prompt": "What would you tell a friend going through this", "type": "Compassion"},
}

func main() {
	flag.Parse()

	cfg, _ := config.Load()

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrateAndIndexes(gdb); err != nil {
		log.Fatal(err)
	}

	now := time.Now()

	var uids []string
	for i := 0; i < *userCount; i++ {
		uid := uuid.NewString()
		uids = append(uids, uid)

		created := now.AddDate(0, -rand.Intn(8), -rand.Intn(28))
		lastActive := now.AddDate(0, 0, -rand.Intn(45))
		u := store.User{
			UID:                 uid,
			Email:               "user" + uid[:8] + "@example.com",
			DisplayName:         "Sample User " + uid[:4],
			Username:            "user_" + uid[:8],
			IsActive:            rand.Intn(4) != 0,
			SelectedPlan:        []string{"free", "plus"}[rand.Intn(2)],
			EmailVerified:       rand.Intn(3) != 0,
			SignInMethod:        "email",
			JournalEntriesCount: rand.Intn(40),
			DateOfLastActivity:  &lastActive,
			CreatedAt:           &created,
		}
		if err := gdb.Create(&u).Error; err != nil {
			log.Fatalf("create user: %v", err)
		}

		seedEvents(gdb, uid, now)
		seedJournal(gdb, uid, now)
	}

	seedCommunity(gdb, uids, now)
	seedFeedback(gdb, uids, now)

	log.Printf("seeded %d users\n", len(uids))
}

func seedEvents(gdb *gorm.DB, uid string, now time.Time) {
	for i := 0; i < 5+rand.Intn(20); i++ {
		v := store.TipView{
			UserID:    uid,
			TipID:     sampleTips[rand.Intn(len(sampleTips))],
			Timestamp: now.Add(-time.Duration(rand.Intn(30*24)) * time.Hour),
		}
		if err := gdb.Create(&v).Error; err != nil {
			log.Fatalf("create tip view: %v", err)
		}
	}

	for i := 0; i < 2+rand.Intn(10); i++ {
		started := store.BreathingEvent{
			UserID:    uid,
			Status:    "started",
			Timestamp: now.Add(-time.Duration(rand.Intn(30*24)) * time.Hour),
		}
		if err := gdb.Create(&started).Error; err != nil {
			log.Fatalf("create breathing event: %v", err)
		}
		// roughly two thirds complete
		if rand.Intn(3) != 0 {
			completed := store.BreathingEvent{
				UserID:    uid,
				Status:    "completed",
				Duration:  60 + rand.Intn(240),
				Timestamp: started.Timestamp.Add(time.Duration(1+rand.Intn(5)) * time.Minute),
			}
			if err := gdb.Create(&completed).Error; err != nil {
				log.Fatalf("create breathing event: %v", err)
			}
		}
	}
}

func seedJournal(gdb *gorm.DB, uid string, now time.Time) {
	for i := 0; i < rand.Intn(15); i++ {
		n := 1 + rand.Intn(3)
		prompts := make([]map[string]string, 0, n)
		for j := 0; j < n; j++ {
			prompts = append(prompts, samplePrompts[rand.Intn(len(samplePrompts))])
		}
		raw, _ := json.Marshal(prompts)
		pinned := rand.Intn(n)
		created := now.AddDate(0, 0, -rand.Intn(90))

		e := store.JournalEntry{
			ID:                uuid.NewString(),
			UserID:            uid,
			PinnedPromptIndex: &pinned,
			Prompts:           raw,
			CreatedAt:         &created,
		}
		if err := gdb.Create(&e).Error; err != nil {
			log.Fatalf("create journal entry: %v", err)
		}
	}
}

func seedCommunity(gdb *gorm.DB, uids []string, now time.Time) {
	if len(uids) < 3 {
		return
	}

	created := now.AddDate(0, -6, 0)
	g := store.Group{
		ID:          uuid.NewString(),
		Name:        "Loss of a Parent",
		GriefType:   "Parent",
		CreatedBy:   uids[0],
		JoinedUsers: pq.StringArray(uids[1:]),
		AdminUsers:  pq.StringArray{uids[1]},
		CreatedAt:   &created,
	}
	if err := gdb.Create(&g).Error; err != nil {
		log.Fatalf("create group: %v", err)
	}

	for i := 0; i < 12; i++ {
		postAt := now.AddDate(0, 0, -rand.Intn(60))
		p := store.Post{
			ID:         uuid.NewString(),
			GroupID:    g.ID,
			AuthorID:   uids[rand.Intn(len(uids))],
			Content:    "Sharing how this week went for me.",
			LikesCount: rand.Intn(20),
			CreatedAt:  &postAt,
		}
		if err := gdb.Create(&p).Error; err != nil {
			log.Fatalf("create post: %v", err)
		}

		for j := 0; j < rand.Intn(4); j++ {
			commentAt := postAt.Add(time.Duration(1+rand.Intn(48)) * time.Hour)
			c := store.Comment{
				ID:        uuid.NewString(),
				PostID:    p.ID,
				GroupID:   g.ID,
				AuthorID:  uids[rand.Intn(len(uids))],
				Content:   "Thank you for sharing this.",
				CreatedAt: &commentAt,
			}
			if err := gdb.Create(&c).Error; err != nil {
				log.Fatalf("create comment: %v", err)
			}
		}

		// flag one post for the moderation queue, once per admin
		if i == 0 {
			if err := gdb.Model(&store.Post{}).Where("id = ?", p.ID).
				Updates(map[string]any{"is_hidden": true, "is_flagged": true}).Error; err != nil {
				log.Fatalf("flag post: %v", err)
			}
			for _, admin := range []string{uids[0], uids[1]} {
				md, _ := json.Marshal(map[string]string{
					"postId":      p.ID,
					"groupName":   g.Name,
					"postContent": p.Content,
					"senderName":  "Sample User",
					"username":    "user_" + admin[:8],
				})
				flaggedAt := postAt.Add(2 * time.Hour)
				n := store.Notification{
					ID:        uuid.NewString(),
					Type:      "content_flag",
					Message:   "A post in your group was flagged",
					GroupID:   g.ID,
					Metadata:  md,
					CreatedAt: &flaggedAt,
				}
				if err := gdb.Create(&n).Error; err != nil {
					log.Fatalf("create notification: %v", err)
				}
			}
		}
	}
}

func seedFeedback(gdb *gorm.DB, uids []string, now time.Time) {
	for _, uid := range uids[:min(3, len(uids))] {
		items := []map[string]any{
			{
				"message":      "The breathing timer is really calming.",
				"feedbackType": "Praise",
				"rating":       4 + rand.Intn(2),
				"createdAt":    now.AddDate(0, 0, -rand.Intn(20)).Format(time.RFC3339),
			},
			{
				"message":      "Would love more journal prompts.",
				"feedbackType": "Feature Request",
				"rating":       3 + rand.Intn(3),
				"createdAt":    now.AddDate(0, 0, -rand.Intn(20)).Format(time.RFC3339),
			},
		}
		raw, _ := json.Marshal(items)
		f := store.Feedback{
			ID:        uuid.NewString(),
			UserEmail: "user" + uid[:8] + "@example.com",
			UserName:  "Sample User " + uid[:4],
			Feedbacks: raw,
		}
		if err := gdb.Create(&f).Error; err != nil {
			log.Fatalf("create feedback: %v", err)
		}
	}
}
