package models_test

import (
	"testing"

	"eduplatform/backend/models"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRole(t *testing.T) {
	cases := map[string]models.Role{
		"student":    models.RoleStudent,
		"teacher":    models.RoleTeacher,
		"instructor": models.RoleTeacher,
		"admin":      models.RoleAdmin,
		"":           models.RoleStudent,
		"superuser":  models.RoleStudent,
	}
	for raw, expected := range cases {
		assert.Equal(t, expected, models.NormalizeRole(raw), "raw=%q", raw)
	}
}

func TestLiveStatusTransitions(t *testing.T) {
	assert.True(t, models.LiveScheduled.CanTransitionTo(models.LiveActive))
	assert.True(t, models.LiveScheduled.CanTransitionTo(models.LiveEnded))
	assert.True(t, models.LiveActive.CanTransitionTo(models.LiveEnded))

	assert.False(t, models.LiveActive.CanTransitionTo(models.LiveScheduled))
	assert.False(t, models.LiveEnded.CanTransitionTo(models.LiveActive))
	assert.False(t, models.LiveEnded.CanTransitionTo(models.LiveEnded))
}

func TestFlattenedLessonsPreservesModuleOrder(t *testing.T) {
	course := models.Course{
		Modules: []models.CourseModule{
			{Title: "A", Lessons: []models.Lesson{{ID: 1}, {ID: 2}}},
			{Title: "B", Lessons: []models.Lesson{{ID: 3}}},
		},
	}

	flat := course.FlattenedLessons()
	ids := make([]int, len(flat))
	for i, l := range flat {
		ids[i] = l.ID
	}
	assert.Equal(t, []int{1, 2, 3}, ids)
}

func TestEnrollmentHasCompleted(t *testing.T) {
	e := models.Enrollment{CompletedLessons: []int{1, 3}}
	assert.True(t, e.HasCompleted(1))
	assert.False(t, e.HasCompleted(2))
}
