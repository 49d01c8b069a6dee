package store

import (
	"time"

	"github.com/EasonYD88/SURF-application-website/models"
)

const dateLayout = "2006-01-02"

// OverdueOutreach returns every contact whose next-follow-up date has
// passed without a reply. Contacts with an empty or unparsable date are
// skipped; the store treats dates as opaque everywhere else, this query
// is the one consumer that has to interpret them.
func OverdueOutreach(doc *models.Document, now time.Time) []models.Outreach {
	var due []models.Outreach
	today := now.Format(dateLayout)
	for _, o := range doc.Outreach {
		if o.ReplyStatus != models.ReplyNone || o.NextFollowUpDate == "" {
			continue
		}
		if _, err := time.Parse(dateLayout, o.NextFollowUpDate); err != nil {
			continue
		}
		if o.NextFollowUpDate <= today {
			due = append(due, o)
		}
	}
	return due
}
