package store_test

import (
	"testing"

	"eduplatform/backend/mirror"
	"eduplatform/backend/models"
	"eduplatform/backend/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollCreatesZeroProgressEnrollment(t *testing.T) {
	s := newFixtureStore(t)

	s.EnrollInCourse(42)

	e, found := s.GetEnrollment(42)
	require.True(t, found)
	assert.Equal(t, 0, e.Progress)
	assert.Empty(t, e.CompletedLessons)
	assert.Len(t, s.Notifications(), 1)
	assert.Equal(t, "Course Enrolled!", s.Notifications()[0].Title)
	assert.Equal(t, "/dashboard/courses/42", s.Notifications()[0].Link)
}

func TestEnrollTwiceIsNoOp(t *testing.T) {
	s := newFixtureStore(t)

	s.EnrollInCourse(42)
	s.EnrollInCourse(42)

	assert.Len(t, s.Enrollments(), 1)
	// The enrollment notification fires once, not twice.
	assert.Len(t, s.Notifications(), 1)
}

func TestEnrollWhileSignedOutIsNoOp(t *testing.T) {
	s := store.New(store.Options{Catalog: fixtureCatalog(), LocalAuth: true})
	s.Hydrate(store.GuestKey)

	s.EnrollInCourse(42)

	assert.False(t, s.IsEnrolled(42))
}

func TestProgressDerivedFromCompletionSet(t *testing.T) {
	s := newFixtureStore(t)
	s.EnrollInCourse(42)

	s.CompleteLesson(42, 1)
	assert.Equal(t, 14, s.GetCourseProgress(42)) // 1/7

	s.CompleteLesson(42, 2)
	s.CompleteLesson(42, 4)
	assert.Equal(t, 43, s.GetCourseProgress(42)) // 3/7
}

func TestProgressIsOrderIndependent(t *testing.T) {
	forward := newFixtureStore(t)
	forward.EnrollInCourse(42)
	for _, id := range []int{1, 2, 4} {
		forward.CompleteLesson(42, id)
	}

	backward := newFixtureStore(t)
	backward.EnrollInCourse(42)
	for _, id := range []int{4, 2, 1} {
		backward.CompleteLesson(42, id)
	}

	assert.Equal(t, forward.GetCourseProgress(42), backward.GetCourseProgress(42))
}

func TestCompleteLessonIsIdempotent(t *testing.T) {
	s := newFixtureStore(t)
	s.EnrollInCourse(42)

	s.CompleteLesson(42, 1)
	s.CompleteLesson(42, 1)
	s.CompleteLesson(42, 1)

	e, _ := s.GetEnrollment(42)
	assert.Equal(t, []int{1}, e.CompletedLessons)
	assert.Equal(t, 14, e.Progress)
}

func TestFullCompletionIssuesCertificate(t *testing.T) {
	m := mirror.NewMemoryMirror()
	s := newDemoStore(t, m)
	signIn(t, s)
	s.EnrollInCourse(3) // 6 lessons

	for id := 1; id <= 6; id++ {
		s.CompleteLesson(3, id)
	}

	e, _ := s.GetEnrollment(3)
	assert.Equal(t, 100, e.Progress)
	require.NotNil(t, e.Certificate)
	assert.Equal(t, "cert-3-student-1", e.Certificate.ID)

	// Re-completing a lesson never re-issues the certificate.
	issued := e.Certificate.IssuedAt
	s.CompleteLesson(3, 6)
	e, _ = s.GetEnrollment(3)
	assert.Equal(t, issued, e.Certificate.IssuedAt)
}

func TestSequentialUnlock(t *testing.T) {
	s := newFixtureStore(t)
	s.EnrollInCourse(42)

	// Complete flattened indexes 0, 1, 3 (lesson ids 1, 2, 4).
	s.CompleteLesson(42, 1)
	s.CompleteLesson(42, 2)
	s.CompleteLesson(42, 4)

	// Unlock depends only on the immediate predecessor: index 4 is reachable
	// across the gap at index 3.
	expected := []bool{true, true, true, false, true, false, false}
	assert.Equal(t, expected, s.UnlockStates(42))

	assert.True(t, s.LessonUnlocked(42, 4))
	assert.False(t, s.LessonUnlocked(42, 3))
	assert.False(t, s.LessonUnlocked(42, -1))
	assert.False(t, s.LessonUnlocked(42, 7))
}

func TestUnlockStatesRequireEnrollment(t *testing.T) {
	s := newFixtureStore(t)
	assert.Nil(t, s.UnlockStates(42))
	assert.False(t, s.LessonUnlocked(42, 0))
}

func TestUpdateWatchTimeOverwrites(t *testing.T) {
	s := newFixtureStore(t)
	s.EnrollInCourse(42)

	s.UpdateWatchTime(42, 1, 120)
	s.UpdateWatchTime(42, 1, 45)

	e, _ := s.GetEnrollment(42)
	assert.Equal(t, 45, e.WatchTimes[1])
}

func TestSubmitQuizResultAppendsAttempt(t *testing.T) {
	s := newFixtureStore(t)
	s.EnrollInCourse(42)

	s.SubmitQuizResult(models.QuizResult{
		QuizID: "q-42-5", CourseID: 42, LessonID: 5,
		Score: 2, TotalQuestions: 3, Attempt: 1,
	})

	e, _ := s.GetEnrollment(42)
	require.Len(t, e.QuizResults, 1)
	assert.NotEmpty(t, e.QuizResults[0].CompletedAt)
}

func TestPerfectQuizUnlocksQuizMasterOnce(t *testing.T) {
	s := store.New(store.Options{
		Catalog:   fixtureCatalog(),
		LocalAuth: true,
		Seed:      true,
	})
	s.Hydrate(store.GuestKey)
	signIn(t, s)
	s.EnrollInCourse(42)

	s.SubmitQuizResult(models.QuizResult{QuizID: "q-42-5", CourseID: 42, Score: 3, TotalQuestions: 3})
	s.SubmitQuizResult(models.QuizResult{QuizID: "q-42-5", CourseID: 42, Score: 3, TotalQuestions: 3})

	unlocked := 0
	for _, a := range s.Achievements() {
		if a.ID == "quiz-master" && a.UnlockedAt != "" {
			unlocked++
		}
	}
	assert.Equal(t, 1, unlocked)

	// Repeated perfect scores never stack unlock notifications.
	count := 0
	for _, n := range s.Notifications() {
		if n.Type == models.NotifAchievement && n.Title == "Achievement Unlocked!" {
			count++
		}
	}
	assert.LessOrEqual(t, count, 1)
}
