package store

import "eduplatform/backend/models"

// seed loads the demo dataset. Called once from New, before hydration, so a
// persisted snapshot still overrides everything here.
func (s *Store) seed() {
	s.allUsers = seedUsers()
	s.enrollments = seedEnrollments()
	s.notifications = seedNotifications()
	s.conversations = seedConversations()
	s.messages = seedMessages()
	s.liveSessions = seedLiveSessions()
	s.discountCodes = seedDiscountCodes()
	s.achievements = seedAchievements()
	s.favorites["student-1"] = []int{3, 5, 7, 8}
}

// DefaultCatalog is the demo course catalog. Lesson ids are unique within a
// course and the module order defines the flattened unlock order.
func DefaultCatalog() *StaticCatalog {
	return NewStaticCatalog([]models.Course{
		{
			ID: 1, Title: "Web Development Bootcamp",
			Description: "From HTML basics to full-stack JavaScript applications",
			Instructor:  "Sarah Johnson", Category: "Programming", Level: "Beginner",
			Price: 49.99, TotalLessons: 9,
			Modules: []models.CourseModule{
				{Title: "HTML & CSS Foundations", Lessons: []models.Lesson{
					{ID: 1, Title: "Introduction to HTML", Duration: "15m", Type: "video"},
					{ID: 2, Title: "CSS Selectors", Duration: "22m", Type: "video"},
					{ID: 3, Title: "Flexbox and Grid", Duration: "18m", Type: "video"},
				}},
				{Title: "JavaScript Essentials", Lessons: []models.Lesson{
					{ID: 4, Title: "Variables and Types", Duration: "10m", Type: "video"},
					{ID: 5, Title: "Functions and Scope", Duration: "20m", Type: "video"},
					{ID: 6, Title: "JavaScript Basics Quiz", Duration: "10m", Type: "quiz"},
				}},
				{Title: "React Fundamentals", Lessons: []models.Lesson{
					{ID: 7, Title: "Components and Props", Duration: "25m", Type: "video"},
					{ID: 8, Title: "State and Hooks", Duration: "30m", Type: "video"},
					{ID: 9, Title: "Build a Todo App", Duration: "40m", Type: "exercise"},
				}},
			},
		},
		{
			ID: 2, Title: "Data Science Fundamentals",
			Description: "Python, statistics, and machine learning basics",
			Instructor:  "Ahmed Hassan", Category: "Programming", Level: "Intermediate",
			Price: 59.99, TotalLessons: 10,
			Modules: []models.CourseModule{
				{Title: "Python Refresher", Lessons: []models.Lesson{
					{ID: 1, Title: "Python Setup", Duration: "12m", Type: "video"},
					{ID: 2, Title: "NumPy Basics", Duration: "20m", Type: "video"},
					{ID: 3, Title: "Pandas DataFrames", Duration: "24m", Type: "video"},
					{ID: 4, Title: "Data Cleaning", Duration: "18m", Type: "video"},
				}},
				{Title: "Statistics", Lessons: []models.Lesson{
					{ID: 5, Title: "Descriptive Statistics", Duration: "16m", Type: "video"},
					{ID: 6, Title: "Probability", Duration: "20m", Type: "video"},
					{ID: 7, Title: "Statistics Quiz", Duration: "10m", Type: "quiz"},
				}},
				{Title: "Machine Learning", Lessons: []models.Lesson{
					{ID: 8, Title: "Linear Regression", Duration: "28m", Type: "video"},
					{ID: 9, Title: "Classification", Duration: "26m", Type: "video"},
					{ID: 10, Title: "Capstone Project", Duration: "60m", Type: "exercise"},
				}},
			},
		},
		{
			ID: 3, Title: "UI/UX Design Mastery",
			Description: "Design thinking, wireframing, and prototyping",
			Instructor:  "Maria Garcia", Category: "Design", Level: "Beginner",
			Price: 39.99, TotalLessons: 6,
			Modules: []models.CourseModule{
				{Title: "Design Principles", Lessons: []models.Lesson{
					{ID: 1, Title: "Color and Typography", Duration: "14m", Type: "video"},
					{ID: 2, Title: "Layout and Hierarchy", Duration: "16m", Type: "video"},
					{ID: 3, Title: "Design Critique", Duration: "12m", Type: "reading"},
				}},
				{Title: "Prototyping", Lessons: []models.Lesson{
					{ID: 4, Title: "Wireframes", Duration: "18m", Type: "video"},
					{ID: 5, Title: "Interactive Prototypes", Duration: "22m", Type: "video"},
					{ID: 6, Title: "Portfolio Piece", Duration: "45m", Type: "exercise"},
				}},
			},
		},
		{
			ID: 5, Title: "Digital Marketing Essentials",
			Description: "SEO, content strategy, and analytics",
			Instructor:  "Sarah Johnson", Category: "Marketing", Level: "Beginner",
			Price: 29.99, TotalLessons: 8,
			Modules: []models.CourseModule{
				{Title: "Foundations", Lessons: []models.Lesson{
					{ID: 1, Title: "Marketing Funnels", Duration: "15m", Type: "video"},
					{ID: 2, Title: "Audience Research", Duration: "18m", Type: "video"},
					{ID: 3, Title: "Brand Voice", Duration: "12m", Type: "reading"},
					{ID: 4, Title: "Foundations Quiz", Duration: "10m", Type: "quiz"},
				}},
				{Title: "Channels", Lessons: []models.Lesson{
					{ID: 5, Title: "SEO Basics", Duration: "20m", Type: "video"},
					{ID: 6, Title: "Email Campaigns", Duration: "16m", Type: "video"},
					{ID: 7, Title: "Social Strategy", Duration: "14m", Type: "video"},
					{ID: 8, Title: "Campaign Plan", Duration: "35m", Type: "exercise"},
				}},
			},
		},
		{
			ID: 6, Title: "Python for Beginners",
			Description: "Your first programming language, step by step",
			Instructor:  "Ahmed Hassan", Category: "Programming", Level: "Beginner",
			Price: 0, TotalLessons: 10,
			Modules: []models.CourseModule{
				{Title: "Getting Started", Lessons: []models.Lesson{
					{ID: 1, Title: "Installing Python", Duration: "8m", Type: "video"},
					{ID: 2, Title: "Your First Script", Duration: "12m", Type: "video"},
					{ID: 3, Title: "Variables", Duration: "14m", Type: "video"},
					{ID: 4, Title: "Control Flow", Duration: "18m", Type: "video"},
					{ID: 5, Title: "Basics Quiz", Duration: "10m", Type: "quiz"},
				}},
				{Title: "Going Further", Lessons: []models.Lesson{
					{ID: 6, Title: "Functions", Duration: "20m", Type: "video"},
					{ID: 7, Title: "Lists and Dicts", Duration: "22m", Type: "video"},
					{ID: 8, Title: "Files", Duration: "16m", Type: "video"},
					{ID: 9, Title: "Errors", Duration: "14m", Type: "video"},
					{ID: 10, Title: "Final Project", Duration: "50m", Type: "exercise"},
				}},
			},
		},
		{
			ID: 8, Title: "Advanced JavaScript Patterns",
			Description: "Closures, prototypes, async patterns, and performance",
			Instructor:  "Sarah Johnson", Category: "Programming", Level: "Advanced",
			Price: 69.99, TotalLessons: 8,
			Modules: []models.CourseModule{
				{Title: "Language Internals", Lessons: []models.Lesson{
					{ID: 1, Title: "Closures", Duration: "20m", Type: "video"},
					{ID: 2, Title: "Prototypes", Duration: "22m", Type: "video"},
					{ID: 3, Title: "The Event Loop", Duration: "18m", Type: "video"},
					{ID: 4, Title: "Internals Quiz", Duration: "10m", Type: "quiz"},
				}},
				{Title: "Patterns", Lessons: []models.Lesson{
					{ID: 5, Title: "Modules and Namespaces", Duration: "16m", Type: "video"},
					{ID: 6, Title: "Async Patterns", Duration: "24m", Type: "video"},
					{ID: 7, Title: "Performance Profiling", Duration: "20m", Type: "video"},
					{ID: 8, Title: "Refactor Workshop", Duration: "40m", Type: "exercise"},
				}},
			},
		},
	})
}

func seedUsers() []models.User {
	return []models.User{
		{
			ID: "student-1", Name: "Ronald Richards", Email: "ron.richards@gmail.com",
			Role: models.RoleStudent, Bio: "Passionate learner exploring web development and data science.",
			JoinedAt: "2025-06-15", IsPremium: true, Streak: 12, TotalHoursLearned: 62,
			Settings: models.DefaultSettings(),
		},
		{
			ID: "teacher-1", Name: "Sarah Johnson", Email: "sarah.johnson@techacademy.com",
			Role: models.RoleTeacher, Bio: "Senior Web Developer & Educator with 10+ years of experience.",
			JoinedAt: "2024-01-10", IsPremium: true,
			Settings: models.DefaultSettings(),
		},
		{
			ID: "admin-1", Name: "Platform Admin", Email: "admin@eduplatform.com",
			Role: models.RoleAdmin, Bio: "Platform administrator",
			JoinedAt: "2024-01-01", IsPremium: true,
			Settings: models.DefaultSettings(),
		},
	}
}

func seedEnrollments() []models.Enrollment {
	return []models.Enrollment{
		{
			CourseID: 1, UserID: "student-1", EnrolledAt: "2025-08-01T00:00:00Z",
			Progress: 67, CompletedLessons: []int{1, 2, 3, 4, 5, 6},
			LastAccessedAt: "2026-02-10T08:00:00Z",
			WatchTimes:     map[int]int{1: 900, 2: 1320, 3: 1080, 4: 600, 5: 1200, 6: 1500},
			QuizResults: []models.QuizResult{
				{
					QuizID: "q-1-6", LessonID: 6, CourseID: 1, Score: 3, TotalQuestions: 3,
					Answers: answers(0, 1, 2), CompletedAt: "2025-09-10T00:00:00Z", Attempt: 1,
				},
			},
		},
		{
			CourseID: 2, UserID: "student-1", EnrolledAt: "2025-10-15T00:00:00Z",
			Progress: 30, CompletedLessons: []int{1, 2, 3},
			LastAccessedAt: "2026-02-09T15:00:00Z",
			WatchTimes:     map[int]int{1: 600, 2: 900, 3: 1200},
			QuizResults:    []models.QuizResult{},
		},
		{
			CourseID: 5, UserID: "student-1", EnrolledAt: "2025-12-01T00:00:00Z",
			Progress: 13, CompletedLessons: []int{1},
			LastAccessedAt: "2026-02-07T10:00:00Z",
			WatchTimes:     map[int]int{1: 600},
			QuizResults:    []models.QuizResult{},
		},
		{
			CourseID: 8, UserID: "student-1", EnrolledAt: "2025-07-20T00:00:00Z",
			Progress: 88, CompletedLessons: []int{1, 2, 3, 4, 5, 6, 7},
			LastAccessedAt: "2026-02-10T05:00:00Z",
			WatchTimes:     map[int]int{},
			QuizResults:    []models.QuizResult{},
		},
		{
			CourseID: 6, UserID: "student-1", EnrolledAt: "2025-03-01T00:00:00Z",
			Progress: 100, CompletedLessons: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			LastAccessedAt: "2026-01-15T12:00:00Z",
			WatchTimes:     map[int]int{},
			QuizResults:    []models.QuizResult{},
			Certificate:    &models.Certificate{ID: "cert-6-student-1", IssuedAt: "2026-01-15T00:00:00Z"},
		},
	}
}

// defaultAchievements is the static badge catalog, all locked. Present in
// every mode; unlock state is per-session.
func defaultAchievements() []models.Achievement {
	return []models.Achievement{
		{ID: "first-course", Label: "First Course", Description: "Enrolled in your first course", Icon: "BookOpen"},
		{ID: "5-day-streak", Label: "5-Day Streak", Description: "Learned for 5 days in a row", Icon: "Flame"},
		{ID: "quiz-master", Label: "Quiz Master", Description: "Scored 100% on a quiz", Icon: "Award"},
		{ID: "10-lessons", Label: "10 Lessons", Description: "Completed 10 lessons", Icon: "BookOpen"},
		{ID: "night-owl", Label: "Night Owl", Description: "Study after midnight", Icon: "Moon"},
		{ID: "speed-learner", Label: "Speed Learner", Description: "Complete 5 lessons in one day", Icon: "Zap"},
		{ID: "social-butterfly", Label: "Social Butterfly", Description: "Send 50 messages", Icon: "MessageSquare"},
		{ID: "course-complete", Label: "Graduate", Description: "Complete a full course", Icon: "GraduationCap"},
	}
}

func seedAchievements() []models.Achievement {
	out := defaultAchievements()
	unlocked := map[string]string{
		"first-course":    "2025-07-20T00:00:00Z",
		"5-day-streak":    "2025-08-15T00:00:00Z",
		"quiz-master":     "2025-09-10T00:00:00Z",
		"10-lessons":      "2025-10-01T00:00:00Z",
		"course-complete": "2026-01-15T00:00:00Z",
	}
	for i := range out {
		if ts, found := unlocked[out[i].ID]; found {
			out[i].UnlockedAt = ts
		}
	}
	return out
}

// defaultDiscountCodes ships the platform's promotional codes at zero local
// uses.
func defaultDiscountCodes() []models.DiscountCode {
	return []models.DiscountCode{
		{Code: "WELCOME50", Discount: 50, Type: "percentage", MaxUses: 500, Active: true, Expiry: "Mar 15, 2026", CreatedBy: "teacher-1"},
		{Code: "NEWCOURSE", Discount: 30, Type: "percentage", MaxUses: 200, Active: true, Expiry: "Apr 1, 2026", CreatedBy: "teacher-1"},
		{Code: "FLASH20", Discount: 20, Type: "fixed", MaxUses: 150, Active: false, Expiry: "Expired", CreatedBy: "teacher-1"},
		{Code: "SAVE10", Discount: 10, Type: "fixed", MaxUses: 300, Active: true, Expiry: "Jun 1, 2026", CreatedBy: "teacher-1"},
	}
}

func seedDiscountCodes() []models.DiscountCode {
	out := defaultDiscountCodes()
	uses := map[string]int{"WELCOME50": 234, "NEWCOURSE": 89, "FLASH20": 150, "SAVE10": 45}
	for i := range out {
		out[i].Uses = uses[out[i].Code]
	}
	return out
}

func seedNotifications() []models.Notification {
	return []models.Notification{
		{ID: "n1", UserID: "student-1", Type: models.NotifLive, Title: "Live Session Starting Soon", Message: "React Hooks Deep Dive with Sarah Johnson starts in 30 minutes.", Time: "30 min ago", Link: "/dashboard/live"},
		{ID: "n2", UserID: "student-1", Type: models.NotifDiscount, Title: "Special Offer!", Message: "Get 50% off Advanced JavaScript Patterns. Use code WELCOME50.", Time: "1h ago", Link: "/dashboard/courses"},
		{ID: "n3", UserID: "student-1", Type: models.NotifCourse, Title: "New Lesson Available", Message: "CSS Grid lesson has been added to Web Development Bootcamp.", Time: "2h ago", Link: "/dashboard/courses/1", CourseID: 1},
		{ID: "n4", UserID: "student-1", Type: models.NotifAchievement, Title: "Achievement Unlocked!", Message: "Congratulations! You earned the 'Quiz Master' badge.", Time: "5h ago", Read: true},
		{ID: "n5", UserID: "student-1", Type: models.NotifMessage, Title: "New Message from Sarah Johnson", Message: "Great job on the last assignment! Keep it up.", Time: "6h ago", Read: true, Link: "/dashboard/chats"},
		{ID: "n6", UserID: "student-1", Type: models.NotifUpdate, Title: "Course Updated", Message: "Data Science Fundamentals has been updated with 3 new modules.", Time: "1d ago", Read: true, Link: "/dashboard/courses/2", CourseID: 2},
		{ID: "n7", UserID: "student-1", Type: models.NotifEncouragement, Title: "Keep Going!", Message: "You're on a 12-day streak! Don't break it. Your next lesson awaits.", Time: "2d ago", Read: true},
	}
}

func seedConversations() []models.Conversation {
	return []models.Conversation{
		{ID: "conv-1", Participants: []string{"student-1", "teacher-1"}, Type: "direct", UnreadCount: 2, CreatedAt: "2025-08-01T00:00:00Z"},
		{ID: "conv-2", Participants: []string{"student-1"}, Type: "group", Name: "Study Group - Web Dev", UnreadCount: 5, CreatedAt: "2025-09-01T00:00:00Z"},
	}
}

func seedMessages() []models.Message {
	return []models.Message{
		{ID: "m1", ConversationID: "conv-1", SenderID: "teacher-1", Content: "Hi Ronald! I just reviewed your latest project submission for the Web Development course.", Timestamp: "2026-02-10T10:30:00Z", Read: true},
		{ID: "m2", ConversationID: "conv-1", SenderID: "student-1", Content: "Thanks, Sarah! I worked really hard on the React components part.", Timestamp: "2026-02-10T10:32:00Z", Read: true},
		{ID: "m3", ConversationID: "conv-1", SenderID: "teacher-1", Content: "I can tell! Your component structure is very clean and well-organized.", Timestamp: "2026-02-10T10:35:00Z", Read: true},
		{ID: "m4", ConversationID: "conv-1", SenderID: "student-1", Content: "That means a lot coming from you! Any areas for improvement?", Timestamp: "2026-02-10T10:36:00Z", Read: true},
		{ID: "m5", ConversationID: "conv-1", SenderID: "teacher-1", Content: "Try to add more error handling in your API calls, and consider custom hooks for shared logic. Overall great work!", Timestamp: "2026-02-10T10:40:00Z"},
		{ID: "m6", ConversationID: "conv-1", SenderID: "teacher-1", Content: "Great job on the last assignment! Keep it up.", Timestamp: "2026-02-10T10:42:00Z"},
		{ID: "m7", ConversationID: "conv-2", SenderID: "student-1", Content: "Does anyone have notes for the React module?", Timestamp: "2026-02-10T09:00:00Z", Read: true},
	}
}

func seedLiveSessions() []models.LiveSession {
	return []models.LiveSession{
		{
			ID: "live-1", Title: "React Hooks Deep Dive - Live Q&A", CourseID: 1, InstructorID: "teacher-1",
			Status: models.LiveActive, ScheduledAt: "2026-02-10T14:00:00Z", StartedAt: "2026-02-10T14:00:00Z",
			Viewers: 342, Attendees: []string{"student-1"},
			ChatMessages: []models.LiveChatMessage{
				{User: "Alex M.", Message: "Great explanation of useEffect!", Time: "2 min ago"},
				{User: "Sara K.", Message: "Can you show the dependency array again?", Time: "1 min ago"},
				{User: "John D.", Message: "This is so helpful, thanks!", Time: "30s ago"},
			},
		},
		{
			ID: "live-2", Title: "Data Visualization with Python", CourseID: 2, InstructorID: "teacher-1",
			Status: models.LiveScheduled, ScheduledAt: "2026-02-10T17:00:00Z",
			Attendees: []string{}, ChatMessages: []models.LiveChatMessage{},
		},
		{
			ID: "live-3", Title: "Portfolio Design Workshop", CourseID: 3, InstructorID: "teacher-1",
			Status: models.LiveScheduled, ScheduledAt: "2026-02-11T15:00:00Z",
			Attendees: []string{}, ChatMessages: []models.LiveChatMessage{},
		},
	}
}

func answers(selected ...int) []*int {
	out := make([]*int, len(selected))
	for i := range selected {
		v := selected[i]
		out[i] = &v
	}
	return out
}
