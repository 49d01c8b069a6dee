package store

import (
	"testing"
	"time"

	"github.com/EasonYD88/SURF-application-website/models"
)

func TestOverdueOutreach(t *testing.T) {
	now := time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)
	doc := &models.Document{
		Outreach: []models.Outreach{
			{ID: "past", ReplyStatus: models.ReplyNone, NextFollowUpDate: "2026-08-20"},
			{ID: "today", ReplyStatus: models.ReplyNone, NextFollowUpDate: "2026-08-28"},
			{ID: "future", ReplyStatus: models.ReplyNone, NextFollowUpDate: "2026-09-05"},
			{ID: "replied", ReplyStatus: models.ReplyGot, NextFollowUpDate: "2026-08-20"},
			{ID: "no date", ReplyStatus: models.ReplyNone},
			{ID: "bad date", ReplyStatus: models.ReplyNone, NextFollowUpDate: "next tuesday"},
		},
	}

	due := OverdueOutreach(doc, now)
	got := map[string]bool{}
	for _, o := range due {
		got[o.ID] = true
	}
	if len(due) != 2 || !got["past"] || !got["today"] {
		t.Fatalf("due = %v, want exactly [past today]", got)
	}
}
