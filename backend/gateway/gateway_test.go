package gateway_test

import (
	"path/filepath"
	"testing"

	"eduplatform/backend/config"
	"eduplatform/backend/gateway"
	"eduplatform/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T) *gateway.Gateway {
	t.Helper()
	db, err := gateway.InitDB(&config.Config{
		DBDriver:   "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)

	gw := gateway.New(db, nil)
	require.NoError(t, gw.SeedCatalog([]models.Course{
		{
			ID: 6, Title: "Free Course", Price: 0,
			Modules: []models.CourseModule{
				{Title: "One", Lessons: []models.Lesson{
					{ID: 1, Title: "L1", Type: "video"},
					{ID: 2, Title: "L2", Type: "video"},
				}},
				{Title: "Two", Lessons: []models.Lesson{
					{ID: 3, Title: "L3", Type: "video"},
				}},
			},
		},
		{
			ID: 8, Title: "Paid Course", Price: 69.99,
			Modules: []models.CourseModule{
				{Title: "Only", Lessons: []models.Lesson{
					{ID: 1, Title: "P1", Type: "video"},
				}},
			},
		},
	}))
	return gw
}

// lessonIDs returns the stored lesson ids of a course in flattened order. The
// relational store assigns its own ids, so tests read them back.
func lessonIDs(t *testing.T, gw *gateway.Gateway, courseID int) []int {
	t.Helper()
	course, found := gw.Course(courseID)
	require.True(t, found)
	var ids []int
	for _, l := range course.FlattenedLessons() {
		ids = append(ids, l.ID)
	}
	return ids
}

func TestSeedCatalogRoundTrip(t *testing.T) {
	gw := newTestGateway(t)

	course, found := gw.Course(6)
	require.True(t, found)
	assert.Equal(t, "Free Course", course.Title)
	assert.Equal(t, 3, course.TotalLessons)
	assert.Len(t, course.Modules, 2)

	assert.Len(t, gw.Courses(), 2)

	// Seeding again is a no-op.
	require.NoError(t, gw.SeedCatalog([]models.Course{{ID: 99, Title: "Extra"}}))
	assert.Len(t, gw.Courses(), 2)
}

func TestEnrollInFreeCourse(t *testing.T) {
	gw := newTestGateway(t)

	id, err := gw.EnrollInFreeCourse("student-1", 6)
	require.NoError(t, err)
	assert.NotZero(t, id)

	// Enrolling twice hands back the same record.
	again, err := gw.EnrollInFreeCourse("student-1", 6)
	require.NoError(t, err)
	assert.Equal(t, id, again)
}

func TestEnrollInPaidCourseRejected(t *testing.T) {
	gw := newTestGateway(t)

	_, err := gw.EnrollInFreeCourse("student-1", 8)
	assert.ErrorIs(t, err, gateway.ErrNotFree)
}

func TestEnrollInUnknownCourse(t *testing.T) {
	gw := newTestGateway(t)

	_, err := gw.EnrollInFreeCourse("student-1", 12345)
	assert.ErrorIs(t, err, gateway.ErrCourseNotFound)
}

func TestUpsertLessonProgress(t *testing.T) {
	gw := newTestGateway(t)
	ids := lessonIDs(t, gw, 6)

	first, err := gw.UpsertLessonProgress("student-1", 6, ids[0], "vid-1", 120, false)
	require.NoError(t, err)

	// Watched seconds overwrite; the row id is stable.
	second, err := gw.UpsertLessonProgress("student-1", 6, ids[0], "vid-1", 45, false)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var progress gateway.LessonProgress
	require.NoError(t, gw.DB.First(&progress, first).Error)
	assert.Equal(t, 45, progress.WatchedSeconds)
	assert.False(t, progress.Completed)
}

func TestLessonCompletionIsMonotonic(t *testing.T) {
	gw := newTestGateway(t)
	ids := lessonIDs(t, gw, 6)

	id, err := gw.UpsertLessonProgress("student-1", 6, ids[0], "", 300, true)
	require.NoError(t, err)

	// A later partial watch never un-completes.
	_, err = gw.UpsertLessonProgress("student-1", 6, ids[0], "", 30, false)
	require.NoError(t, err)

	var progress gateway.LessonProgress
	require.NoError(t, gw.DB.First(&progress, id).Error)
	assert.True(t, progress.Completed)
}

func TestUpsertLessonProgressValidation(t *testing.T) {
	gw := newTestGateway(t)
	ids := lessonIDs(t, gw, 6)

	_, err := gw.UpsertLessonProgress("student-1", 6, ids[0], "", -1, false)
	assert.ErrorIs(t, err, gateway.ErrBadWatchTime)

	_, err = gw.UpsertLessonProgress("student-1", 6, 99999, "", 10, false)
	assert.ErrorIs(t, err, gateway.ErrLessonNotFound)
}

func TestSubmitQuizAttemptScoresAgainstStoredAnswers(t *testing.T) {
	gw := newTestGateway(t)

	quiz := gateway.Quiz{QuizKey: "q-6-3", CourseID: 6, Title: "Basics Quiz"}
	require.NoError(t, gw.DB.Create(&quiz).Error)
	for i, correct := range []int{0, 2, 1} {
		require.NoError(t, gw.DB.Create(&gateway.QuizQuestion{
			QuizID: quiz.ID, Question: "q", Options: `["a","b","c"]`,
			CorrectAnswer: correct, SequenceOrder: i + 1,
		}).Error)
	}

	// Two right, one wrong, scored server-side.
	attemptID, err := gw.SubmitQuizAttempt("student-1", "q-6-3", map[int]int{1: 0, 2: 2, 3: 0})
	require.NoError(t, err)

	var attempt gateway.QuizAttempt
	require.NoError(t, gw.DB.First(&attempt, attemptID).Error)
	assert.Equal(t, 2, attempt.Score)
	assert.Equal(t, 3, attempt.TotalQuestions)
	assert.Equal(t, 1, attempt.AttemptNumber)

	// Unanswered questions score zero; the attempt counter climbs.
	attemptID, err = gw.SubmitQuizAttempt("student-1", "q-6-3", map[int]int{1: 0})
	require.NoError(t, err)
	attempt = gateway.QuizAttempt{}
	require.NoError(t, gw.DB.First(&attempt, attemptID).Error)
	assert.Equal(t, 1, attempt.Score)
	assert.Equal(t, 2, attempt.AttemptNumber)
}

func TestDefaultQuizzesSeedAndScore(t *testing.T) {
	gw := newTestGateway(t)
	require.NoError(t, gw.SeedQuizzes(gateway.DefaultQuizzes()))

	// A perfect submission under a seeded key scores full marks.
	seed := gateway.DefaultQuizzes()[0]
	answers := map[int]int{}
	for i, q := range seed.Questions {
		answers[i+1] = q.Correct
	}
	attemptID, err := gw.SubmitQuizAttempt("student-1", seed.Key, answers)
	require.NoError(t, err)

	var attempt gateway.QuizAttempt
	require.NoError(t, gw.DB.First(&attempt, attemptID).Error)
	assert.Equal(t, len(seed.Questions), attempt.Score)
	assert.Equal(t, len(seed.Questions), attempt.TotalQuestions)

	// Seeding again is a no-op.
	require.NoError(t, gw.SeedQuizzes(gateway.DefaultQuizzes()))
	var count int64
	require.NoError(t, gw.DB.Model(&gateway.Quiz{}).Count(&count).Error)
	assert.Equal(t, int64(len(gateway.DefaultQuizzes())), count)
}

func TestSubmitQuizAttemptUnknownQuiz(t *testing.T) {
	gw := newTestGateway(t)

	_, err := gw.SubmitQuizAttempt("student-1", "q-none", map[int]int{})
	assert.ErrorIs(t, err, gateway.ErrQuizNotFound)
}

func TestCanAccessLesson(t *testing.T) {
	gw := newTestGateway(t)
	ids := lessonIDs(t, gw, 6)

	// Not enrolled: nothing is accessible, not even the first lesson.
	allowed, err := gw.CanAccessLesson("student-1", 6, ids[0])
	require.NoError(t, err)
	assert.False(t, allowed)

	_, err = gw.EnrollInFreeCourse("student-1", 6)
	require.NoError(t, err)

	// First lesson opens with enrollment alone.
	allowed, err = gw.CanAccessLesson("student-1", 6, ids[0])
	require.NoError(t, err)
	assert.True(t, allowed)

	// Later lessons need the immediate predecessor completed.
	allowed, err = gw.CanAccessLesson("student-1", 6, ids[1])
	require.NoError(t, err)
	assert.False(t, allowed)

	_, err = gw.UpsertLessonProgress("student-1", 6, ids[0], "", 300, true)
	require.NoError(t, err)

	allowed, err = gw.CanAccessLesson("student-1", 6, ids[1])
	require.NoError(t, err)
	assert.True(t, allowed)

	// The third lesson sits in the next module; the sequential rule crosses
	// module boundaries.
	allowed, err = gw.CanAccessLesson("student-1", 6, ids[2])
	require.NoError(t, err)
	assert.False(t, allowed)
}
