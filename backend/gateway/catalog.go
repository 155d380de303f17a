package gateway

import (
	"encoding/json"
	"fmt"
	"sort"

	"eduplatform/backend/models"
)

// Course loads one catalog course with its module/lesson layout. Implements
// the store's Catalog interface for production mode.
func (g *Gateway) Course(id int) (models.Course, bool) {
	var record CatalogCourse
	err := g.DB.Preload("Modules.Lessons").First(&record, id).Error
	if err != nil {
		return models.Course{}, false
	}
	return toCourse(record), true
}

// Courses loads the whole catalog.
func (g *Gateway) Courses() []models.Course {
	var records []CatalogCourse
	if err := g.DB.Preload("Modules.Lessons").Order("id").Find(&records).Error; err != nil {
		g.Log.Warn("catalog load failed", "error", err)
		return nil
	}
	out := make([]models.Course, 0, len(records))
	for _, r := range records {
		out = append(out, toCourse(r))
	}
	return out
}

func toCourse(record CatalogCourse) models.Course {
	course := models.Course{
		ID:          int(record.ID),
		Title:       record.Title,
		Description: record.Description,
		Instructor:  record.Instructor,
		Category:    record.Category,
		Level:       record.Level,
		Price:       record.Price,
	}

	modules := record.Modules
	sort.Slice(modules, func(i, j int) bool { return modules[i].SequenceOrder < modules[j].SequenceOrder })
	for _, m := range modules {
		lessons := m.Lessons
		sort.Slice(lessons, func(i, j int) bool { return lessons[i].SequenceOrder < lessons[j].SequenceOrder })
		mod := models.CourseModule{Title: m.Title}
		for _, l := range lessons {
			mod.Lessons = append(mod.Lessons, models.Lesson{
				ID:       int(l.ID),
				Title:    l.Title,
				Duration: l.Duration,
				Type:     l.Type,
			})
			course.TotalLessons++
		}
		course.Modules = append(course.Modules, mod)
	}
	return course
}

// SeedCatalog imports a static catalog into the relational store, preserving
// the flattened lesson order. No-op when courses already exist.
func (g *Gateway) SeedCatalog(courses []models.Course) error {
	var count int64
	if err := g.DB.Model(&CatalogCourse{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, c := range courses {
		record := CatalogCourse{
			Title:       c.Title,
			Description: c.Description,
			Instructor:  c.Instructor,
			Category:    c.Category,
			Level:       c.Level,
			Price:       c.Price,
		}
		record.ID = uint(c.ID)
		if err := g.DB.Create(&record).Error; err != nil {
			return err
		}

		seq := 0
		for mi, m := range c.Modules {
			mod := CatalogModule{
				CatalogCourseID: record.ID,
				Title:           m.Title,
				SequenceOrder:   mi + 1,
			}
			if err := g.DB.Create(&mod).Error; err != nil {
				return err
			}
			for _, l := range m.Lessons {
				seq++
				lesson := CatalogLesson{
					CatalogModuleID: mod.ID,
					CourseID:        record.ID,
					Title:           l.Title,
					Duration:        l.Duration,
					Type:            l.Type,
					SequenceOrder:   seq,
				}
				if err := g.DB.Create(&lesson).Error; err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// QuizSeed describes one quiz definition for import. Key must match the key
// clients submit attempts under.
type QuizSeed struct {
	Key       string
	CourseID  int
	LessonID  int
	Title     string
	Questions []QuizQuestionSeed
}

type QuizQuestionSeed struct {
	Question string
	Options  []string
	Correct  int // index into Options
}

// SeedQuizzes imports quiz definitions with their questions. No-op when
// quizzes already exist, so restarts never duplicate rows.
func (g *Gateway) SeedQuizzes(seeds []QuizSeed) error {
	var count int64
	if err := g.DB.Model(&Quiz{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, s := range seeds {
		quiz := Quiz{
			QuizKey:  s.Key,
			CourseID: uint(s.CourseID),
			LessonID: uint(s.LessonID),
			Title:    s.Title,
		}
		if err := g.DB.Create(&quiz).Error; err != nil {
			return err
		}
		for i, q := range s.Questions {
			opts, err := json.Marshal(q.Options)
			if err != nil {
				return fmt.Errorf("encode options for %s: %w", s.Key, err)
			}
			question := QuizQuestion{
				QuizID:        quiz.ID,
				Question:      q.Question,
				Options:       string(opts),
				CorrectAnswer: q.Correct,
				SequenceOrder: i + 1,
			}
			if err := g.DB.Create(&question).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// DefaultQuizzes returns the quiz definitions for the static catalog's quiz
// lessons, keyed q-<courseID>-<lessonID>.
func DefaultQuizzes() []QuizSeed {
	return []QuizSeed{
		{
			Key: "q-1-6", CourseID: 1, LessonID: 6, Title: "JavaScript Basics Quiz",
			Questions: []QuizQuestionSeed{
				{Question: "Which keyword declares a block-scoped variable?", Options: []string{"var", "let", "function", "this"}, Correct: 1},
				{Question: "What does typeof null evaluate to?", Options: []string{"\"null\"", "\"undefined\"", "\"object\"", "\"number\""}, Correct: 2},
				{Question: "Which of these is NOT a primitive type?", Options: []string{"string", "boolean", "array", "symbol"}, Correct: 2},
			},
		},
		{
			Key: "q-2-7", CourseID: 2, LessonID: 7, Title: "Statistics Quiz",
			Questions: []QuizQuestionSeed{
				{Question: "Which measure is most affected by outliers?", Options: []string{"Median", "Mode", "Mean", "Interquartile range"}, Correct: 2},
				{Question: "A probability of 0 means the event is", Options: []string{"Certain", "Impossible", "Unlikely", "Independent"}, Correct: 1},
				{Question: "The standard deviation is the square root of the", Options: []string{"Mean", "Range", "Variance", "Median"}, Correct: 2},
			},
		},
		{
			Key: "q-5-4", CourseID: 5, LessonID: 4, Title: "Foundations Quiz",
			Questions: []QuizQuestionSeed{
				{Question: "The top of a marketing funnel is about", Options: []string{"Retention", "Awareness", "Checkout", "Referral"}, Correct: 1},
				{Question: "A buyer persona describes", Options: []string{"A product tier", "An ad format", "A target customer", "A pricing model"}, Correct: 2},
				{Question: "Brand voice should be", Options: []string{"Consistent", "Randomized", "Hidden", "Seasonal"}, Correct: 0},
			},
		},
		{
			Key: "q-6-5", CourseID: 6, LessonID: 5, Title: "Basics Quiz",
			Questions: []QuizQuestionSeed{
				{Question: "Which function prints to the console in Python?", Options: []string{"echo()", "print()", "log()", "write()"}, Correct: 1},
				{Question: "What is the result of 7 // 2?", Options: []string{"3.5", "3", "4", "2"}, Correct: 1},
				{Question: "Which keyword starts a conditional?", Options: []string{"when", "case", "if", "cond"}, Correct: 2},
			},
		},
		{
			Key: "q-8-4", CourseID: 8, LessonID: 4, Title: "Internals Quiz",
			Questions: []QuizQuestionSeed{
				{Question: "A closure captures", Options: []string{"Its call stack", "Its lexical scope", "The global object", "Its prototype chain"}, Correct: 1},
				{Question: "Microtasks run", Options: []string{"Before the next macrotask", "After every render", "Only on setTimeout", "Never during await"}, Correct: 0},
				{Question: "Property lookup walks the", Options: []string{"Event loop", "Scope chain", "Prototype chain", "Module graph"}, Correct: 2},
			},
		},
	}
}
