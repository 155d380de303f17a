package models

type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// NormalizeRole maps upstream role strings onto the closed role set. The
// identity adapter reports teachers as "instructor"; anything unknown
// degrades to student.
func NormalizeRole(raw string) Role {
	switch raw {
	case "student":
		return RoleStudent
	case "teacher", "instructor":
		return RoleTeacher
	case "admin":
		return RoleAdmin
	default:
		return RoleStudent
	}
}

type User struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	Email             string       `json:"email"`
	Role              Role         `json:"role"`
	Avatar            string       `json:"avatar,omitempty"`
	Bio               string       `json:"bio,omitempty"`
	JoinedAt          string       `json:"joinedAt"`
	IsPremium         bool         `json:"isPremium"`
	Streak            int          `json:"streak"`
	TotalHoursLearned float64      `json:"totalHoursLearned"`
	Settings          UserSettings `json:"settings"`
}

type UserSettings struct {
	Language      string               `json:"language"`
	Theme         string               `json:"theme"` // light, dark, system
	Notifications NotificationSettings `json:"notifications"`
	Privacy       PrivacySettings      `json:"privacy"`
	AI            AssistantSettings    `json:"ai"`
}

type NotificationSettings struct {
	CourseUpdates bool `json:"courseUpdates"`
	Assignments   bool `json:"assignments"`
	Messages      bool `json:"messages"`
	Promotions    bool `json:"promotions"`
	WeeklyReport  bool `json:"weeklyReport"`
	Achievements  bool `json:"achievements"`
	LiveReminders bool `json:"liveReminders"`
	AISuggestions bool `json:"aiSuggestions"`
}

type PrivacySettings struct {
	ShowProfile  bool `json:"showProfile"`
	ShowProgress bool `json:"showProgress"`
	ShowActivity bool `json:"showActivity"`
}

type AssistantSettings struct {
	Enabled       bool `json:"enabled"`
	Suggestions   bool `json:"suggestions"`
	AutoSummarize bool `json:"autoSummarize"`
}

// DefaultSettings is what every freshly signed-up user starts with.
func DefaultSettings() UserSettings {
	return UserSettings{
		Language: "English",
		Theme:    "light",
		Notifications: NotificationSettings{
			CourseUpdates: true,
			Assignments:   true,
			Messages:      true,
			Promotions:    false,
			WeeklyReport:  true,
			Achievements:  true,
			LiveReminders: true,
			AISuggestions: true,
		},
		Privacy: PrivacySettings{ShowProfile: true, ShowProgress: true, ShowActivity: true},
		AI:      AssistantSettings{Enabled: true, Suggestions: true, AutoSummarize: false},
	}
}

// UserUpdate carries the fields UpdateUser may shallow-merge. Nil pointers
// leave the current value untouched.
type UserUpdate struct {
	Name      *string       `json:"name,omitempty"`
	Avatar    *string       `json:"avatar,omitempty"`
	Bio       *string       `json:"bio,omitempty"`
	IsPremium *bool         `json:"isPremium,omitempty"`
	Settings  *UserSettings `json:"settings,omitempty"`
}
