package store

import "eduplatform/backend/models"

// StaticCatalog serves a fixed course list, used in demo mode and tests. The
// production catalog is the gateway.
type StaticCatalog struct {
	order   []int
	courses map[int]models.Course
}

func NewStaticCatalog(courses []models.Course) *StaticCatalog {
	c := &StaticCatalog{courses: map[int]models.Course{}}
	for _, course := range courses {
		if _, dup := c.courses[course.ID]; !dup {
			c.order = append(c.order, course.ID)
		}
		c.courses[course.ID] = course
	}
	return c
}

func (c *StaticCatalog) Course(id int) (models.Course, bool) {
	course, found := c.courses[id]
	return course, found
}

func (c *StaticCatalog) Courses() []models.Course {
	out := make([]models.Course, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.courses[id])
	}
	return out
}
