package worker

import (
	"context"
	"log"
	"time"

	"github.com/EasonYD88/SURF-application-website/store"
	"github.com/EasonYD88/SURF-application-website/utils"
)

// FollowUpWorker periodically checks for outreach records past their
// follow-up date with no reply and mails a digest. It stays silent when
// nothing is due or when no digest recipient is configured.
type FollowUpWorker struct {
	store     *store.Store
	mailer    *utils.Mailer
	logger    *log.Logger
	interval  time.Duration
	recipient string
}

func NewFollowUpWorker(st *store.Store, mailer *utils.Mailer, logger *log.Logger, interval time.Duration, recipient string) *FollowUpWorker {
	return &FollowUpWorker{
		store:     st,
		mailer:    mailer,
		logger:    logger,
		interval:  interval,
		recipient: recipient,
	}
}

func (w *FollowUpWorker) Start(ctx context.Context) {
	if w.recipient == "" || !w.mailer.Configured() {
		w.logger.Println("Follow-up digest disabled (no recipient or SMTP config)")
		return
	}

	w.logger.Printf("Starting follow-up worker, checking every %s", w.interval)
	ticker := time.NewTicker(w.interval)

	for {
		select {
		case <-ticker.C:
			w.checkFollowUps()
		case <-ctx.Done():
			w.logger.Println("Stopping follow-up worker...")
			ticker.Stop()
			return
		}
	}
}

func (w *FollowUpWorker) checkFollowUps() {
	due := store.OverdueOutreach(w.store.Load(), time.Now())
	if len(due) == 0 {
		return
	}

	w.logger.Printf("%d outreach record(s) past follow-up date", len(due))
	body, err := utils.RenderFollowUpDigest(due)
	if err != nil {
		w.logger.Printf("Failed to render digest: %v", err)
		return
	}
	if err := w.mailer.Send([]string{w.recipient}, nil, "Outreach follow-ups due", body); err != nil {
		w.logger.Printf("Failed to send digest: %v", err)
	}
}
