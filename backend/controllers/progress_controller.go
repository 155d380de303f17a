package controllers

import (
	"strconv"

	"eduplatform/backend/config"
	"eduplatform/backend/gateway"
	"eduplatform/backend/store"
	"eduplatform/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ProgressController struct {
	Store   *store.Store
	Gateway *gateway.Gateway // nil in demo mode
	Cfg     *config.Config
}

func NewProgressController(st *store.Store, gw *gateway.Gateway, cfg *config.Config) *ProgressController {
	return &ProgressController{Store: st, Gateway: gw, Cfg: cfg}
}

// CompleteLesson godoc
// @Summary Mark a lesson completed
// @Description Idempotent; progress is recomputed from the completion set
// @Tags progress
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{id}/lessons/{lessonId}/complete [post]
func (pc *ProgressController) CompleteLesson(c *fiber.Ctx) error {
	courseID, lessonID, parsed := courseLessonParams(c)
	if !parsed {
		return nil
	}

	if !pc.Store.IsEnrolled(courseID) {
		return utils.BadRequest(c, "Not enrolled in course")
	}

	if pc.Gateway != nil {
		userID := c.Locals("userID").(string)
		enrollment, _ := pc.Store.GetEnrollment(courseID)
		watched := enrollment.WatchTimes[lessonID]
		if _, err := pc.Gateway.UpsertLessonProgress(userID, courseID, lessonID, "", watched, true); err != nil {
			return utils.BadRequest(c, err.Error())
		}
	}

	pc.Store.CompleteLesson(courseID, lessonID)
	return c.JSON(fiber.Map{
		"message":  "Lesson completed",
		"progress": pc.Store.GetCourseProgress(courseID),
	})
}

// RecordWatchTime overwrites the cumulative watch seconds for a lesson.
func (pc *ProgressController) RecordWatchTime(c *fiber.Ctx) error {
	courseID, lessonID, parsed := courseLessonParams(c)
	if !parsed {
		return nil
	}

	var input struct {
		VideoID string `json:"videoId"`
		Seconds int    `json:"seconds"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Seconds < 0 {
		return utils.BadRequest(c, "Seconds must be non-negative")
	}

	if !pc.Store.IsEnrolled(courseID) {
		return utils.BadRequest(c, "Not enrolled in course")
	}

	if pc.Gateway != nil {
		userID := c.Locals("userID").(string)
		if _, err := pc.Gateway.UpsertLessonProgress(userID, courseID, lessonID, input.VideoID, input.Seconds, false); err != nil {
			return utils.BadRequest(c, err.Error())
		}
	}

	pc.Store.UpdateWatchTime(courseID, lessonID, input.Seconds)
	return c.JSON(fiber.Map{
		"message": "Watch time recorded",
	})
}

// Overview summarizes the session's learning state.
func (pc *ProgressController) Overview(c *fiber.Ctx) error {
	user := pc.Store.CurrentUser()
	if user == nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	enrollments := pc.Store.Enrollments()
	completed := 0
	lessonsDone := 0
	for _, e := range enrollments {
		if e.Progress == 100 {
			completed++
		}
		lessonsDone += len(e.CompletedLessons)
	}

	return c.JSON(fiber.Map{
		"streak":            user.Streak,
		"totalHoursLearned": user.TotalHoursLearned,
		"coursesEnrolled":   len(enrollments),
		"coursesCompleted":  completed,
		"lessonsCompleted":  lessonsDone,
		"enrollments":       enrollments,
	})
}

// Achievements lists every badge with its unlock state.
func (pc *ProgressController) Achievements(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"achievements": pc.Store.Achievements(),
	})
}

// courseLessonParams parses the route params, writing the 400 response itself
// when either is malformed.
func courseLessonParams(c *fiber.Ctx) (int, int, bool) {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		_ = utils.BadRequest(c, "Invalid course ID")
		return 0, 0, false
	}
	lessonID, err := strconv.Atoi(c.Params("lessonId"))
	if err != nil {
		_ = utils.BadRequest(c, "Invalid lesson ID")
		return 0, 0, false
	}
	return courseID, lessonID, true
}
