package gateway

import (
	"encoding/json"
	"errors"
	"fmt"

	"eduplatform/backend/utils"

	"gorm.io/gorm"
)

var (
	ErrCourseNotFound = errors.New("course not found")
	ErrLessonNotFound = errors.New("lesson not found")
	ErrQuizNotFound   = errors.New("quiz not found")
	ErrNotFree        = errors.New("course is not free")
	ErrNotEnrolled    = errors.New("not enrolled in course")
	ErrBadWatchTime   = errors.New("watched seconds must be non-negative")
)

// Gateway is the relational backend behind the platform's remote operations.
// The state store treats these as opaque procedures; all scoring and access
// decisions here run against stored data, never against client-supplied
// results.
type Gateway struct {
	DB  *gorm.DB
	Log *utils.Logger
}

func New(db *gorm.DB, log *utils.Logger) *Gateway {
	if log == nil {
		log = utils.NopLogger()
	}
	return &Gateway{DB: db, Log: log}
}

// EnrollInFreeCourse creates the (user, course) enrollment record and returns
// its id. Enrolling twice returns the existing record. Paid courses are
// rejected; checkout is a different path.
func (g *Gateway) EnrollInFreeCourse(userID string, courseID int) (uint, error) {
	var course CatalogCourse
	if err := g.DB.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrCourseNotFound
		}
		return 0, err
	}
	if course.Price > 0 {
		return 0, ErrNotFree
	}

	var existing EnrollmentRecord
	err := g.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	record := EnrollmentRecord{UserID: userID, CourseID: uint(courseID)}
	if err := g.DB.Create(&record).Error; err != nil {
		return 0, err
	}
	g.Log.Info("enrolled in free course", "user", userID, "course", courseID)
	return record.ID, nil
}

// UpsertLessonProgress writes the cumulative watch state for one lesson and
// returns the progress row id. Watched seconds overwrite, they do not
// accumulate.
func (g *Gateway) UpsertLessonProgress(userID string, courseID, lessonID int, videoID string, watchedSeconds int, completed bool) (uint, error) {
	if watchedSeconds < 0 {
		return 0, ErrBadWatchTime
	}

	var lesson CatalogLesson
	err := g.DB.Where("id = ? AND course_id = ?", lessonID, courseID).First(&lesson).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrLessonNotFound
		}
		return 0, err
	}

	var progress LessonProgress
	err = g.DB.Where("user_id = ? AND course_id = ? AND lesson_id = ?", userID, courseID, lessonID).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		progress = LessonProgress{
			UserID:   userID,
			CourseID: uint(courseID),
			LessonID: uint(lessonID),
		}
	} else if err != nil {
		return 0, err
	}

	progress.VideoID = videoID
	progress.WatchedSeconds = watchedSeconds
	// Completion is monotonic: a later partial watch never un-completes.
	progress.Completed = progress.Completed || completed

	if err := g.DB.Save(&progress).Error; err != nil {
		return 0, err
	}
	return progress.ID, nil
}

// SubmitQuizAttempt scores the submitted answers against the stored correct
// options and records the attempt. Answers map question sequence order to the
// selected option index; unanswered questions are simply absent.
func (g *Gateway) SubmitQuizAttempt(userID, quizKey string, answers map[int]int) (uint, error) {
	var quiz Quiz
	err := g.DB.Preload("Questions").Where("quiz_key = ?", quizKey).First(&quiz).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrQuizNotFound
		}
		return 0, err
	}

	score := 0
	for _, q := range quiz.Questions {
		if selected, answered := answers[q.SequenceOrder]; answered && selected == q.CorrectAnswer {
			score++
		}
	}

	var attempts int64
	g.DB.Model(&QuizAttempt{}).Where("user_id = ? AND quiz_id = ?", userID, quiz.ID).Count(&attempts)

	raw, err := json.Marshal(answers)
	if err != nil {
		return 0, fmt.Errorf("encode answers: %w", err)
	}

	attempt := QuizAttempt{
		UserID:         userID,
		QuizID:         quiz.ID,
		Score:          score,
		TotalQuestions: len(quiz.Questions),
		Answers:        string(raw),
		AttemptNumber:  int(attempts) + 1,
	}
	if err := g.DB.Create(&attempt).Error; err != nil {
		return 0, err
	}
	g.Log.Info("quiz attempt recorded", "user", userID, "quiz", quizKey, "score", score, "total", len(quiz.Questions))
	return attempt.ID, nil
}

// CanAccessLesson applies the sequential rule server-side: enrolled users can
// access the first lesson of a course; any later lesson requires its
// immediate predecessor (by flattened sequence order) to be completed.
func (g *Gateway) CanAccessLesson(userID string, courseID, lessonID int) (bool, error) {
	var enrolled int64
	if err := g.DB.Model(&EnrollmentRecord{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&enrolled).Error; err != nil {
		return false, err
	}
	if enrolled == 0 {
		return false, nil
	}

	var lesson CatalogLesson
	err := g.DB.Where("id = ? AND course_id = ?", lessonID, courseID).First(&lesson).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrLessonNotFound
		}
		return false, err
	}

	var predecessor CatalogLesson
	err = g.DB.Where("course_id = ? AND sequence_order < ?", courseID, lesson.SequenceOrder).
		Order("sequence_order DESC").
		First(&predecessor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true, nil // first lesson
	}
	if err != nil {
		return false, err
	}

	var done int64
	if err := g.DB.Model(&LessonProgress{}).
		Where("user_id = ? AND course_id = ? AND lesson_id = ? AND completed = ?", userID, courseID, predecessor.ID, true).
		Count(&done).Error; err != nil {
		return false, err
	}
	return done > 0, nil
}
