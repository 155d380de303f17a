package models

// Course is the catalog view the store computes unlock state against. The
// gateway owns the authoritative records; the store only needs titles and the
// stably-ordered lesson layout.
type Course struct {
	ID           int            `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Instructor   string         `json:"instructor"`
	Category     string         `json:"category"`
	Level        string         `json:"level"` // Beginner, Intermediate, Advanced
	Price        float64        `json:"price"`
	TotalLessons int            `json:"totalLessons"`
	Modules      []CourseModule `json:"modules"`
}

type CourseModule struct {
	Title   string   `json:"title"`
	Lessons []Lesson `json:"lessons"`
}

type Lesson struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
	Type     string `json:"type"` // video, quiz, exercise, reading
}

// FlattenedLessons returns all lessons across modules in their stable order.
// Unlock rules are defined over this flattening, so course-structure edits
// can never leave stale unlock state behind.
func (c *Course) FlattenedLessons() []Lesson {
	var out []Lesson
	for _, m := range c.Modules {
		out = append(out, m.Lessons...)
	}
	return out
}
