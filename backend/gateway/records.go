package gateway

import "gorm.io/gorm"

type CatalogCourse struct {
	gorm.Model
	Title       string
	Description string
	Instructor  string
	Category    string
	Level       string // Beginner, Intermediate, Advanced
	Price       float64
	Modules     []CatalogModule
}

type CatalogModule struct {
	gorm.Model
	CatalogCourseID uint
	Title           string
	SequenceOrder   int
	Lessons         []CatalogLesson
}

type CatalogLesson struct {
	gorm.Model
	CatalogModuleID uint
	CourseID        uint
	Title           string
	Duration        string
	Type            string // video, quiz, exercise, reading
	SequenceOrder   int    // position in the flattened course order
}

type EnrollmentRecord struct {
	gorm.Model
	UserID   string `gorm:"index:idx_enrollment_pair,unique"`
	CourseID uint   `gorm:"index:idx_enrollment_pair,unique"`
}

type LessonProgress struct {
	gorm.Model
	UserID         string `gorm:"index:idx_progress_triple,unique"`
	CourseID       uint   `gorm:"index:idx_progress_triple,unique"`
	LessonID       uint   `gorm:"index:idx_progress_triple,unique"`
	VideoID        string
	WatchedSeconds int
	Completed      bool
}

type Quiz struct {
	gorm.Model
	QuizKey   string `gorm:"unique;not null"` // e.g. q-1-6
	CourseID  uint
	LessonID  uint
	Title     string
	Questions []QuizQuestion
}

type QuizQuestion struct {
	gorm.Model
	QuizID        uint
	Question      string
	Options       string // JSON array of options
	CorrectAnswer int
	SequenceOrder int
}

type QuizAttempt struct {
	gorm.Model
	UserID         string
	QuizID         uint
	Score          int
	TotalQuestions int
	Answers        string // JSON map of question order -> selected option
	AttemptNumber  int
}
