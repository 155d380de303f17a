package models

// Snapshot is the single JSON blob the persistence mirror writes per session.
// Favorites are deliberately absent: they live under their own per-user key so
// they survive identity switches on a shared device.
type Snapshot struct {
	CurrentUser   *User          `json:"currentUser"`
	AllUsers      []User         `json:"allUsers"`
	Enrollments   []Enrollment   `json:"enrollments"`
	Notifications []Notification `json:"notifications"`
	Conversations []Conversation `json:"conversations"`
	Messages      []Message      `json:"messages"`
	LiveSessions  []LiveSession  `json:"liveSessions"`
	DiscountCodes []DiscountCode `json:"discountCodes"`
	Achievements  []Achievement  `json:"achievements"`
}

// Identity is what the external session adapter reports about the signed-in
// subject. Everything else about the user is locally owned.
type Identity struct {
	UserID   string `json:"userId"`
	Role     string `json:"role"`
	FullName string `json:"fullName"`
	Email    string `json:"email,omitempty"`
}
