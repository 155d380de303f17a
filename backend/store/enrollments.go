package store

import (
	"fmt"
	"math"

	"eduplatform/backend/models"
)

// IsEnrolled reports whether the current user has an enrollment for courseID.
func (s *Store) IsEnrolled(courseID int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.enrollmentIndexLocked(courseID) >= 0
}

// EnrollInCourse creates an enrollment at zero progress and emits a course
// notification with a deep link. Already enrolled or signed out: silent no-op.
func (s *Store) EnrollInCourse(courseID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentUser == nil || s.enrollmentIndexLocked(courseID) >= 0 {
		return
	}
	now := s.timestamp()
	s.enrollments = append(s.enrollments, models.Enrollment{
		CourseID:         courseID,
		UserID:           s.currentUser.ID,
		EnrolledAt:       now,
		Progress:         0,
		CompletedLessons: []int{},
		LastAccessedAt:   now,
		WatchTimes:       map[int]int{},
		QuizResults:      []models.QuizResult{},
	})
	s.addNotificationLocked(models.Notification{
		UserID:   s.currentUser.ID,
		Type:     models.NotifCourse,
		Title:    "Course Enrolled!",
		Message:  "You've successfully enrolled. Start learning now!",
		Time:     "Just now",
		Link:     fmt.Sprintf("/dashboard/courses/%d", courseID),
		CourseID: courseID,
	})
	s.persist()
}

// GetEnrollment returns the current user's enrollment for courseID.
func (s *Store) GetEnrollment(courseID int) (models.Enrollment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.enrollmentIndexLocked(courseID)
	if i < 0 {
		return models.Enrollment{}, false
	}
	return s.enrollments[i], true
}

// Enrollments returns the current user's enrollments.
func (s *Store) Enrollments() []models.Enrollment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.currentUser == nil {
		return nil
	}
	var out []models.Enrollment
	for _, e := range s.enrollments {
		if e.UserID == s.currentUser.ID {
			out = append(out, e)
		}
	}
	return out
}

// CompleteLesson adds lessonID to the completion set and recomputes progress
// from the catalog's total lesson count. Re-completing a lesson leaves the
// set unchanged. Recomputing from the authoritative total rather than
// incrementing guards against drift when lessons are added or removed
// upstream.
func (s *Store) CompleteLesson(courseID, lessonID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.enrollmentIndexLocked(courseID)
	if i < 0 {
		return
	}
	e := &s.enrollments[i]
	if !e.HasCompleted(lessonID) {
		e.CompletedLessons = append(e.CompletedLessons, lessonID)
	}
	e.LastAccessedAt = s.timestamp()
	s.recomputeProgressLocked(e)
	s.persist()
}

// UpdateWatchTime overwrites the watch-time entry for a lesson. Callers pass
// cumulative seconds, not deltas.
func (s *Store) UpdateWatchTime(courseID, lessonID, seconds int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.enrollmentIndexLocked(courseID)
	if i < 0 {
		return
	}
	e := &s.enrollments[i]
	if e.WatchTimes == nil {
		e.WatchTimes = map[int]int{}
	}
	e.WatchTimes[lessonID] = seconds
	e.LastAccessedAt = s.timestamp()
	s.persist()
}

// SubmitQuizResult appends a scored attempt to the matching enrollment. A
// perfect score unlocks the quiz-master badge, at most once.
func (s *Store) SubmitQuizResult(result models.QuizResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.enrollmentIndexLocked(result.CourseID)
	if i < 0 {
		return
	}
	e := &s.enrollments[i]
	if result.CompletedAt == "" {
		result.CompletedAt = s.timestamp()
	}
	e.QuizResults = append(e.QuizResults, result)
	e.LastAccessedAt = s.timestamp()
	if result.Score == result.TotalQuestions {
		s.unlockAchievementLocked("quiz-master")
	}
	s.persist()
}

// GetCourseProgress returns the derived progress percent, 0 when not enrolled.
func (s *Store) GetCourseProgress(courseID int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.enrollmentIndexLocked(courseID)
	if i < 0 {
		return 0
	}
	return s.enrollments[i].Progress
}

// LessonUnlocked applies the sequential rule over the flattened lesson order:
// index 0 is unlocked for enrolled users, index i>0 iff lesson i-1 is
// completed. Depends only on the immediate predecessor, not the full prefix.
func (s *Store) LessonUnlocked(courseID, index int) bool {
	states := s.UnlockStates(courseID)
	if index < 0 || index >= len(states) {
		return false
	}
	return states[index]
}

// UnlockStates computes the unlock flag for every lesson in flattened order.
// Nothing is cached; course-structure edits take effect on the next call.
func (s *Store) UnlockStates(courseID int) []bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.enrollmentIndexLocked(courseID)
	if i < 0 || s.catalog == nil {
		return nil
	}
	course, found := s.catalog.Course(courseID)
	if !found {
		return nil
	}
	e := &s.enrollments[i]
	lessons := course.FlattenedLessons()
	states := make([]bool, len(lessons))
	for j := range lessons {
		if j == 0 {
			states[j] = true
			continue
		}
		states[j] = e.HasCompleted(lessons[j-1].ID)
	}
	return states
}

// enrollmentIndexLocked finds the current user's enrollment, -1 when absent
// or signed out.
func (s *Store) enrollmentIndexLocked(courseID int) int {
	if s.currentUser == nil {
		return -1
	}
	for i := range s.enrollments {
		if s.enrollments[i].CourseID == courseID && s.enrollments[i].UserID == s.currentUser.ID {
			return i
		}
	}
	return -1
}

// recomputeProgressLocked derives progress from the completion set and the
// catalog's total lesson count, clamped to [0,100]. Reaching 100 issues the
// certificate and unlocks the graduate badge.
func (s *Store) recomputeProgressLocked(e *models.Enrollment) {
	total := 0
	if s.catalog != nil {
		if course, found := s.catalog.Course(e.CourseID); found {
			total = course.TotalLessons
		}
	}
	if total <= 0 {
		return
	}
	pct := int(math.Round(100 * float64(len(e.CompletedLessons)) / float64(total)))
	if pct > 100 {
		pct = 100
	}
	e.Progress = pct
	if pct == 100 && e.Certificate == nil {
		e.Certificate = &models.Certificate{
			ID:       fmt.Sprintf("cert-%d-%s", e.CourseID, e.UserID),
			IssuedAt: s.timestamp(),
		}
		s.unlockAchievementLocked("course-complete")
	}
}
