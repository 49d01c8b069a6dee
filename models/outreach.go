package models

// ReplyStatus is the correspondence state of an outreach contact.
type ReplyStatus string

const (
	ReplyNone ReplyStatus = "No reply"
	ReplyGot  ReplyStatus = "Replied"
	ReplyAuto ReplyStatus = "Auto-reply"
)

// OutreachStage is the workflow stage of an outreach contact.
type OutreachStage string

const (
	StageDrafting OutreachStage = "Drafting"
	StageSent     OutreachStage = "Sent"
	StageFollowUp OutreachStage = "Follow-up"
	StageMeeting  OutreachStage = "Meeting"
	StageClosed   OutreachStage = "Closed"
)

// Outreach is a tracked contact with a principal investigator.
//
// ProjectIDs is the back-reference collection kept consistent with
// Project.OutreachIDs by the normalization pass.
type Outreach struct {
	ID          string   `json:"id"`
	Code        string   `json:"code"`
	PIName      string   `json:"piName"`
	Institution string   `json:"institution"`
	Channel     string   `json:"channel"`
	Directions  []string `json:"directions"`

	FirstContactDate string      `json:"firstContactDate"`
	ReplyStatus      ReplyStatus `json:"replyStatus"`
	ReplyDate        string      `json:"replyDate"`
	ReplySummary     string      `json:"replySummary"`
	// ThreadID is the external mail-thread identifier used by the mail
	// gateway's reply check; empty when no thread is known.
	ThreadID string `json:"threadId"`

	Stage            OutreachStage `json:"stage"`
	NextFollowUpDate string        `json:"nextFollowUpDate"`
	NextAction       string        `json:"nextAction"`
	Notes            string        `json:"notes"`

	ProjectIDs []string `json:"projectIds"`
}
