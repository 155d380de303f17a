package controllers

import (
	"strconv"

	"eduplatform/backend/config"
	"eduplatform/backend/gateway"
	"eduplatform/backend/models"
	"eduplatform/backend/store"
	"eduplatform/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type QuizzesController struct {
	Store   *store.Store
	Gateway *gateway.Gateway // nil in demo mode
	Cfg     *config.Config
}

func NewQuizzesController(st *store.Store, gw *gateway.Gateway, cfg *config.Config) *QuizzesController {
	return &QuizzesController{Store: st, Gateway: gw, Cfg: cfg}
}

// Submit records a quiz attempt. In production mode the gateway scores the
// submission against stored answers and its result wins; in demo mode the
// caller's self-scored result is accepted as-is.
func (qc *QuizzesController) Submit(c *fiber.Ctx) error {
	var input struct {
		QuizID         string `json:"quizId"`
		CourseID       int    `json:"courseId"`
		LessonID       int    `json:"lessonId"`
		Answers        []*int `json:"answers"`
		Score          int    `json:"score"`
		TotalQuestions int    `json:"totalQuestions"`
		Attempt        int    `json:"attempt"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.QuizID == "" {
		return utils.BadRequest(c, "Quiz ID is required")
	}

	if !qc.Store.IsEnrolled(input.CourseID) {
		return utils.BadRequest(c, "Not enrolled in course")
	}

	result := models.QuizResult{
		QuizID:         input.QuizID,
		CourseID:       input.CourseID,
		LessonID:       input.LessonID,
		Answers:        input.Answers,
		Score:          input.Score,
		TotalQuestions: input.TotalQuestions,
		Attempt:        input.Attempt,
	}

	if qc.Gateway != nil {
		userID := c.Locals("userID").(string)
		answers := map[int]int{}
		for i, a := range input.Answers {
			if a != nil {
				answers[i+1] = *a
			}
		}
		attemptID, err := qc.Gateway.SubmitQuizAttempt(userID, input.QuizID, answers)
		if err != nil {
			return utils.BadRequest(c, err.Error())
		}
		var attempt gateway.QuizAttempt
		if err := qc.Gateway.DB.First(&attempt, attemptID).Error; err == nil {
			result.Score = attempt.Score
			result.TotalQuestions = attempt.TotalQuestions
			result.Attempt = attempt.AttemptNumber
		}
	}

	if result.Score > result.TotalQuestions {
		return utils.BadRequest(c, "Score cannot exceed total questions")
	}

	qc.Store.SubmitQuizResult(result)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Quiz submitted",
		"result":  result,
	})
}

// Results returns the session's attempts for one course.
func (qc *QuizzesController) Results(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	enrollment, found := qc.Store.GetEnrollment(courseID)
	if !found {
		return utils.NotFound(c, "Not enrolled in course")
	}
	return c.JSON(fiber.Map{
		"quizResults": enrollment.QuizResults,
	})
}
