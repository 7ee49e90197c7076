package model

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one conversation turn. History is held by the client and sent
// back with every request.
type Message struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp,omitempty"`
}

type ResumeContext struct {
	FullName              string   `json:"fullName"`
	TechnicalSkills       []string `json:"technicalSkills"`
	MostImpressiveProject string   `json:"mostImpressiveProject"`
}

type JobContext struct {
	RoleTitle      string `json:"roleTitle"`
	JobDescription string `json:"jobDescription"`
	Difficulty     string `json:"difficulty"`
}

type ScoreReport struct {
	TechnicalScore     int            `json:"technical_score"`
	CommunicationScore int            `json:"communication_score"`
	ConfidenceScore    int            `json:"confidence_score"`
	Feedback           []FeedbackItem `json:"feedback"`
}
