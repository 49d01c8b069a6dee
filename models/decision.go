package models

// PostResult is the outcome recorded after a decision played out.
// The empty value means no outcome yet.
type PostResult string

const (
	ResultNone       PostResult = ""
	ResultInterview  PostResult = "Interview"
	ResultOffer      PostResult = "Offer"
	ResultRejected   PostResult = "Rejected"
	ResultNoResponse PostResult = "No response"
)

// Decision is the one-per-project rationale and post-mortem card. At most
// one exists per project; that is enforced at creation time by
// lookup-or-create, not by normalization.
type Decision struct {
	ID        string `json:"id"`
	ProjectID string `json:"projectId"`

	Conclusion DecisionChoice `json:"conclusion"`
	Priority   Priority       `json:"priority"`

	// Rationale and strategy, all free text.
	WhyApply    string `json:"whyApply"`
	FitReason   string `json:"fitReason"`
	RiskReason  string `json:"riskReason"`
	Strengths   string `json:"strengths"`
	Weaknesses  string `json:"weaknesses"`
	Strategy    string `json:"strategy"`

	PostResult PostResult `json:"postResult"`

	// Post-mortem, filled once a result is known.
	WhatWorked    string `json:"whatWorked"`
	WhatToImprove string `json:"whatToImprove"`
	Lessons       string `json:"lessons"`
	FollowUp      string `json:"followUp"`
}
