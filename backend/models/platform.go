package models

type NotificationType string

const (
	NotifCourse        NotificationType = "course"
	NotifLive          NotificationType = "live"
	NotifDiscount      NotificationType = "discount"
	NotifAchievement   NotificationType = "achievement"
	NotifMessage       NotificationType = "message"
	NotifUpdate        NotificationType = "update"
	NotifQuiz          NotificationType = "quiz"
	NotifEncouragement NotificationType = "encouragement"
)

type Notification struct {
	ID       string           `json:"id"`
	UserID   string           `json:"userId"`
	Type     NotificationType `json:"type"`
	Title    string           `json:"title"`
	Message  string           `json:"message"`
	Time     string           `json:"time"` // relative label, e.g. "Just now"
	Read     bool             `json:"read"`
	Link     string           `json:"link,omitempty"`
	CourseID int              `json:"courseId,omitempty"`
}

type LiveStatus string

const (
	LiveScheduled LiveStatus = "scheduled"
	LiveActive    LiveStatus = "live"
	LiveEnded     LiveStatus = "ended"
)

// statusRank orders live-session states; transitions may only move forward.
func (s LiveStatus) rank() int {
	switch s {
	case LiveScheduled:
		return 0
	case LiveActive:
		return 1
	case LiveEnded:
		return 2
	default:
		return -1
	}
}

// CanTransitionTo reports whether next is a legal forward transition.
func (s LiveStatus) CanTransitionTo(next LiveStatus) bool {
	return next.rank() > s.rank()
}

type LiveSession struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Description  string            `json:"description,omitempty"`
	CourseID     int               `json:"courseId"`
	InstructorID string            `json:"instructorId"`
	Status       LiveStatus        `json:"status"`
	ScheduledAt  string            `json:"scheduledAt"`
	StartedAt    string            `json:"startedAt,omitempty"`
	EndedAt      string            `json:"endedAt,omitempty"`
	Viewers      int               `json:"viewers"`
	Attendees    []string          `json:"attendees"`
	RecordingURL string            `json:"recordingUrl,omitempty"`
	ChatMessages []LiveChatMessage `json:"chatMessages"`
}

type LiveChatMessage struct {
	User    string `json:"user"`
	Message string `json:"message"`
	Time    string `json:"time"`
}

type DiscountCode struct {
	Code      string `json:"code"` // case-insensitive unique key
	Discount  int    `json:"discount"`
	Type      string `json:"type"` // percentage or fixed
	Uses      int    `json:"uses"`
	MaxUses   int    `json:"maxUses"`
	Active    bool   `json:"active"`
	Expiry    string `json:"expiry"`
	CourseID  int    `json:"courseId,omitempty"` // zero means all courses
	CreatedBy string `json:"createdBy"`
}

type Achievement struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	UnlockedAt  string `json:"unlockedAt,omitempty"`
}
