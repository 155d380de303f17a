package models

// Enrollment joins a user to a catalog course. Progress is derived from the
// completion set and the course's total lesson count; it is never written
// directly.
type Enrollment struct {
	CourseID         int          `json:"courseId"`
	UserID           string       `json:"userId"`
	EnrolledAt       string       `json:"enrolledAt"`
	Progress         int          `json:"progress"` // percent, 0-100
	CompletedLessons []int        `json:"completedLessons"`
	LastAccessedAt   string       `json:"lastAccessedAt"`
	WatchTimes       map[int]int  `json:"watchTimes"` // lessonId -> cumulative seconds
	QuizResults      []QuizResult `json:"quizResults"`
	Certificate      *Certificate `json:"certificate,omitempty"`
}

type Certificate struct {
	ID       string `json:"id"`
	IssuedAt string `json:"issuedAt"`
}

// HasCompleted reports whether lessonID is in the completion set.
func (e *Enrollment) HasCompleted(lessonID int) bool {
	for _, id := range e.CompletedLessons {
		if id == lessonID {
			return true
		}
	}
	return false
}

type QuizResult struct {
	QuizID         string `json:"quizId"`
	LessonID       int    `json:"lessonId"`
	CourseID       int    `json:"courseId"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"totalQuestions"`
	Answers        []*int `json:"answers"` // selected option index, nil when unanswered
	CompletedAt    string `json:"completedAt"`
	Attempt        int    `json:"attempt"`
}
