package controllers

import (
	"strconv"

	"eduplatform/backend/config"
	"eduplatform/backend/gateway"
	"eduplatform/backend/store"
	"eduplatform/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type CoursesController struct {
	Store   *store.Store
	Gateway *gateway.Gateway // nil in demo mode
	Cfg     *config.Config
	Catalog store.Catalog
}

func NewCoursesController(st *store.Store, gw *gateway.Gateway, catalog store.Catalog, cfg *config.Config) *CoursesController {
	return &CoursesController{Store: st, Gateway: gw, Cfg: cfg, Catalog: catalog}
}

// ListCourses returns the catalog annotated with the session's enrollment
// progress and favorite flags.
func (cc *CoursesController) ListCourses(c *fiber.Ctx) error {
	category := c.Query("category")

	var result []fiber.Map
	for _, course := range cc.Catalog.Courses() {
		if category != "" && course.Category != category {
			continue
		}
		result = append(result, fiber.Map{
			"id":           course.ID,
			"title":        course.Title,
			"description":  course.Description,
			"instructor":   course.Instructor,
			"category":     course.Category,
			"level":        course.Level,
			"price":        course.Price,
			"totalLessons": course.TotalLessons,
			"enrolled":     cc.Store.IsEnrolled(course.ID),
			"progress":     cc.Store.GetCourseProgress(course.ID),
			"favorite":     cc.Store.IsFavorite(course.ID),
		})
	}

	return c.JSON(result)
}

// GetCourseDetails returns the module/lesson layout with per-lesson unlock
// and completion flags, recomputed on every call.
func (cc *CoursesController) GetCourseDetails(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	course, found := cc.Catalog.Course(courseID)
	if !found {
		return utils.NotFound(c, "Course not found")
	}

	enrollment, enrolled := cc.Store.GetEnrollment(courseID)
	states := cc.Store.UnlockStates(courseID)

	index := 0
	var modules []fiber.Map
	for _, m := range course.Modules {
		var lessons []fiber.Map
		for _, l := range m.Lessons {
			unlocked := false
			if enrolled && index < len(states) {
				unlocked = states[index]
			}
			lessons = append(lessons, fiber.Map{
				"id":        l.ID,
				"title":     l.Title,
				"duration":  l.Duration,
				"type":      l.Type,
				"unlocked":  unlocked,
				"completed": enrolled && enrollment.HasCompleted(l.ID),
			})
			index++
		}
		modules = append(modules, fiber.Map{
			"title":   m.Title,
			"lessons": lessons,
		})
	}

	resp := fiber.Map{
		"course": fiber.Map{
			"id":           course.ID,
			"title":        course.Title,
			"description":  course.Description,
			"instructor":   course.Instructor,
			"category":     course.Category,
			"level":        course.Level,
			"price":        course.Price,
			"totalLessons": course.TotalLessons,
			"modules":      modules,
		},
		"enrolled": enrolled,
	}
	if enrolled {
		resp["enrollment"] = enrollment
	}
	return c.JSON(resp)
}

// Enroll godoc
// @Summary Enroll in a free course
// @Description Delegates to the enroll procedure in production mode, then mirrors locally
// @Tags courses
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /enrollments/free [post]
func (cc *CoursesController) Enroll(c *fiber.Ctx) error {
	var input struct {
		CourseID int `json:"courseId"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if _, found := cc.Catalog.Course(input.CourseID); !found {
		return utils.NotFound(c, "Course not found")
	}

	resp := fiber.Map{"message": "Enrolled"}

	// Write-through: the remote procedure decides first, the local store
	// mirrors its outcome. Demo mode skips the remote leg entirely.
	if cc.Gateway != nil {
		userID := c.Locals("userID").(string)
		enrollmentID, err := cc.Gateway.EnrollInFreeCourse(userID, input.CourseID)
		if err != nil {
			return utils.BadRequest(c, err.Error())
		}
		resp["enrollmentId"] = enrollmentID
	}

	cc.Store.EnrollInCourse(input.CourseID)
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// CanAccessLesson exposes the server-side sequential unlock check.
func (cc *CoursesController) CanAccessLesson(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}
	lessonID, err := strconv.Atoi(c.Params("lessonId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid lesson ID")
	}

	if cc.Gateway != nil {
		userID := c.Locals("userID").(string)
		allowed, err := cc.Gateway.CanAccessLesson(userID, courseID, lessonID)
		if err != nil {
			return utils.BadRequest(c, err.Error())
		}
		return c.JSON(fiber.Map{"allowed": allowed})
	}

	course, found := cc.Catalog.Course(courseID)
	if !found {
		return utils.NotFound(c, "Course not found")
	}
	allowed := false
	for i, l := range course.FlattenedLessons() {
		if l.ID == lessonID {
			allowed = cc.Store.LessonUnlocked(courseID, i)
			break
		}
	}
	return c.JSON(fiber.Map{"allowed": allowed})
}
