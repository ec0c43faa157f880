package domain

import "time"

const (
	VerifyStatusPending  = "pending"
	VerifyStatusVerified = "verified"
	VerifyStatusRejected = "rejected"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// PriorityPolicy classifies an item from its submission time alone. The default
// is a staleness bucket, not a business signal; callers can swap it out.
type PriorityPolicy func(submittedAt, now time.Time) Priority

// RecencyPriority buckets by age: under 3 days is high, 3 up to (not including)
// 7 days is medium, 7 days and older is low. Boundaries land on the older
// bucket, so an item exactly 72h old is medium and exactly 168h old is low.
func RecencyPriority(submittedAt, now time.Time) Priority {
	age := now.Sub(submittedAt)
	switch {
	case age < 72*time.Hour:
		return PriorityHigh
	case age < 168*time.Hour:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// VerificationSource describes one reviewable table so the aggregator and
// mutator can be written once and parametrized instead of copied per variant.
// Select expressions are qualified with the table name because the user join
// also exposes a created_at column.
type VerificationSource struct {
	Type         string // wire discriminator: qualification | session | ...
	Label        string // human-facing record type
	Table        string
	TitleExpr    string
	TypeExpr     string // SQL expression for the activity sub-object type
	DescExpr     string
	LocationExpr string
	AttachExpr   string // expression yielding the attachment URL(s), '' when none
	StatusCol    string
	FeedbackCol  string
	ExtraJoin    string // additional join beyond the users join, "" when unused
	AllStatuses  bool   // profile rows keep their full history in the queue
}

// VerificationSources is ordered; the queue concatenates sources in this order.
var VerificationSources = []VerificationSource{
	{
		Type:         "qualification",
		Label:        "Qualification",
		Table:        "qualifications",
		TitleExpr:    "qualifications.title",
		TypeExpr:     "'Qualification'",
		DescExpr:     "qualifications.description",
		LocationExpr: "qualifications.issuing_organization",
		AttachExpr:   "COALESCE(qualifications.certificate_url, '')",
		StatusCol:    "verification_status",
		FeedbackCol:  "feedback",
	},
	{
		Type:         "session",
		Label:        "Teaching Session",
		Table:        "sessions",
		TitleExpr:    "sessions.title",
		TypeExpr:     "'Teaching Session'",
		DescExpr:     "sessions.description",
		LocationExpr: "sessions.location",
		AttachExpr:   "''",
		StatusCol:    "status",
		FeedbackCol:  "feedback",
	},
	{
		Type:         "activity",
		Label:        "Activity",
		Table:        "student_activities",
		TitleExpr:    "student_activities.title",
		TypeExpr:     "student_activities.activity_type",
		DescExpr:     "student_activities.description",
		LocationExpr: "''",
		AttachExpr:   "COALESCE(student_activities.evidence, '')",
		StatusCol:    "status",
		FeedbackCol:  "feedback",
	},
	{
		Type:         "application",
		Label:        "Application",
		Table:        "applications",
		TitleExpr:    "job_posts.title",
		TypeExpr:     "'Application'",
		DescExpr:     "applications.cover_note",
		LocationExpr: "job_posts.organization",
		AttachExpr:   "''",
		StatusCol:    "status",
		FeedbackCol:  "feedback",
		ExtraJoin:    "JOIN job_posts ON job_posts.id = applications.job_post_id",
	},
	{
		Type:         "profile",
		Label:        "Profile Verification",
		Table:        "profile_verifications",
		TitleExpr:    "profile_verifications.document_type",
		TypeExpr:     "'Profile Verification'",
		DescExpr:     "''",
		LocationExpr: "''",
		AttachExpr:   "profile_verifications.document_url",
		StatusCol:    "status",
		FeedbackCol:  "feedback",
		// Kept from observed behavior: the profile queue shows every status,
		// not just pending. Flagged upstream, intentionally not normalized.
		AllStatuses: true,
	},
}

// FindVerificationSource resolves a wire discriminator to its source entry.
func FindVerificationSource(typ string) (VerificationSource, bool) {
	for _, src := range VerificationSources {
		if src.Type == typ {
			return src, true
		}
	}
	return VerificationSource{}, false
}

type VerificationStudent struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type VerificationActivity struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Location    string `json:"location,omitempty"`
}

// UnifiedVerificationRecord is the read-time projection served to review
// queues. It is never persisted.
type UnifiedVerificationRecord struct {
	ID          uint                 `json:"id"`
	Type        string               `json:"type"`
	SourceType  string               `json:"source_type"` // discriminator for the PATCH round-trip
	Student     VerificationStudent  `json:"student"`
	Activity    VerificationActivity `json:"activity"`
	SubmittedAt time.Time            `json:"submitted_at"`
	Priority    Priority             `json:"priority"`
	Attachments []string             `json:"attachments,omitempty"`
	Status      string               `json:"status"`
}
