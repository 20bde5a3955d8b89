package scoring

// Performance tiers for the comprehensive scorer, from poor to
// excellent. The ladder is recomputed fresh on every call, never
// transitioned incrementally.
const (
	TierNewLearner       = "new_learner"
	TierPoor             = "poor"
	TierNeedsImprovement = "needs_improvement"
	TierSatisfactory     = "satisfactory"
	TierGood             = "good"
	TierVeryGood         = "very_good"
	TierExcellent        = "excellent"
)

// TierThreshold pairs a tier with its minimum overall score.
type TierThreshold struct {
	Level    string  `json:"level"`
	MinScore float64 `json:"min_score"`
}

// ComprehensiveConfig holds the weights, thresholds and tier content
// tables for the activity-based scorer. Tables are injected so tests
// can override them.
type ComprehensiveConfig struct {
	TestWeight            float64                         `json:"test_weight"`
	QuizWeight            float64                         `json:"quiz_weight"`
	EngagementBonusWeight float64                         `json:"engagement_bonus_weight"`
	MaxEngagementBonus    float64                         `json:"max_engagement_bonus"`
	NeutralScore          float64                         `json:"neutral_score"`
	RecentWindowDays      int                             `json:"recent_window_days"`
	DifficultyMultipliers map[string]float64              `json:"difficulty_multipliers"`
	Tiers                 []TierThreshold                 `json:"tiers"`
	Badges                map[string]string               `json:"badges"`
	TierRecommendations   map[string]ActionRecommendation `json:"tier_recommendations"`
	TierCourses           map[string][]CourseSuggestion   `json:"tier_courses"`
	TierPaths             map[string][]string             `json:"tier_paths"`
}

// DefaultComprehensiveConfig returns the production weighting: 60%
// tests, 40% quizzes, at most 5 bonus points from engagement.
func DefaultComprehensiveConfig() *ComprehensiveConfig {
	return &ComprehensiveConfig{
		TestWeight:            0.6,
		QuizWeight:            0.4,
		EngagementBonusWeight: 0.1,
		MaxEngagementBonus:    5.0,
		NeutralScore:          75.0,
		RecentWindowDays:      30,
		DifficultyMultipliers: map[string]float64{
			"beginner":     1.0,
			"intermediate": 1.2,
			"advanced":     1.5,
			"expert":       1.8,
		},
		Tiers: []TierThreshold{
			{Level: TierExcellent, MinScore: 90},
			{Level: TierVeryGood, MinScore: 80},
			{Level: TierGood, MinScore: 70},
			{Level: TierSatisfactory, MinScore: 60},
			{Level: TierNeedsImprovement, MinScore: 50},
		},
		Badges: map[string]string{
			TierExcellent:        "🌟",
			TierVeryGood:         "⭐",
			TierGood:             "✅",
			TierSatisfactory:     "👍",
			TierNeedsImprovement: "⚠️",
			TierPoor:             "❌",
			TierNewLearner:       "🆕",
		},
		TierRecommendations: map[string]ActionRecommendation{
			TierExcellent: {
				Type:                "advanced_challenge",
				Title:               "Challenge Yourself with Advanced Topics",
				Description:         "Your excellent performance suggests you're ready for more challenging material.",
				Priority:            "high",
				SuggestedDifficulty: "advanced",
			},
			TierVeryGood: {
				Type:                "skill_building",
				Title:               "Reinforce Core Concepts",
				Description:         "Continue building on your solid foundation with targeted practice.",
				Priority:            "medium",
				SuggestedDifficulty: "intermediate",
			},
			TierGood: {
				Type:                "skill_building",
				Title:               "Reinforce Core Concepts",
				Description:         "Continue building on your solid foundation with targeted practice.",
				Priority:            "medium",
				SuggestedDifficulty: "intermediate",
			},
			TierSatisfactory: {
				Type:                "foundational_review",
				Title:               "Strengthen Fundamentals",
				Description:         "Focus on reviewing core concepts to improve overall performance.",
				Priority:            "high",
				SuggestedDifficulty: "beginner",
			},
			TierNeedsImprovement: {
				Type:                "remedial_support",
				Title:               "Comprehensive Review Needed",
				Description:         "Consider starting with foundational materials and seeking additional support.",
				Priority:            "urgent",
				SuggestedDifficulty: "beginner",
			},
			TierPoor: {
				Type:                "remedial_support",
				Title:               "Comprehensive Review Needed",
				Description:         "Consider starting with foundational materials and seeking additional support.",
				Priority:            "urgent",
				SuggestedDifficulty: "beginner",
			},
			TierNewLearner: {
				Type:                "getting_started",
				Title:               "Start Your Learning Journey",
				Description:         "Begin with foundational courses to establish your learning profile.",
				Priority:            "high",
				SuggestedDifficulty: "beginner",
			},
		},
		TierCourses: map[string][]CourseSuggestion{
			TierPoor: {
				{ID: "foundations-101", Title: "Learning Foundations", Difficulty: "beginner"},
				{ID: "basics-review", Title: "Concept Review Basics", Difficulty: "beginner"},
				{ID: "study-skills", Title: "Study Skills Workshop", Difficulty: "beginner"},
			},
			TierNeedsImprovement: {
				{ID: "core-concepts", Title: "Core Concepts Mastery", Difficulty: "beginner"},
				{ID: "practice-track", Title: "Practice Track", Difficulty: "beginner"},
				{ID: "skill-building", Title: "Skill Building Basics", Difficulty: "intermediate"},
			},
			TierSatisfactory: {
				{ID: "intermediate-track", Title: "Intermediate Learning Path", Difficulty: "intermediate"},
				{ID: "project-basics", Title: "Project Basics", Difficulty: "intermediate"},
				{ID: "applied-learning", Title: "Applied Learning", Difficulty: "intermediate"},
			},
			TierGood: {
				{ID: "advanced-concepts", Title: "Advanced Concepts", Difficulty: "intermediate"},
				{ID: "specialization-track", Title: "Specialization Track", Difficulty: "advanced"},
				{ID: "leadership-skills", Title: "Leadership Skills", Difficulty: "advanced"},
			},
			TierVeryGood: {
				{ID: "expert-level", Title: "Expert Level Challenge", Difficulty: "advanced"},
				{ID: "mastery-track", Title: "Mastery Track", Difficulty: "expert"},
				{ID: "innovation-projects", Title: "Innovation Projects", Difficulty: "expert"},
			},
			TierExcellent: {
				{ID: "expert-mastery", Title: "Expert Mastery Program", Difficulty: "expert"},
				{ID: "mentorship-track", Title: "Mentorship Program", Difficulty: "expert"},
				{ID: "research-projects", Title: "Research Projects", Difficulty: "expert"},
			},
			TierNewLearner: {
				{ID: "welcome-course", Title: "Welcome to Learning", Difficulty: "beginner"},
				{ID: "orientation", Title: "Learning Orientation", Difficulty: "beginner"},
				{ID: "goal-setting", Title: "Goal Setting Workshop", Difficulty: "beginner"},
			},
		},
		TierPaths: map[string][]string{
			TierPoor: {
				"Start with foundational courses",
				"Complete basic assessments",
				"Focus on daily practice",
				"Seek additional support",
				"Track progress regularly",
			},
			TierNeedsImprovement: {
				"Review weak areas",
				"Study core concepts thoroughly",
				"Practice with guided exercises",
				"Monitor improvement",
				"Celebrate small wins",
			},
			TierSatisfactory: {
				"Strengthen understanding",
				"Apply concepts practically",
				"Challenge with intermediate content",
				"Join study groups",
				"Set intermediate goals",
			},
			TierGood: {
				"Explore advanced topics",
				"Specialize in areas of interest",
				"Work on complex projects",
				"Teach or mentor others",
				"Aim for mastery",
			},
			TierVeryGood: {
				"Tackle expert-level challenges",
				"Innovate and create",
				"Lead learning initiatives",
				"Conduct research",
				"Become a subject expert",
			},
			TierExcellent: {
				"Push boundaries of knowledge",
				"Mentor high performers",
				"Lead research initiatives",
				"Innovate new methodologies",
				"Inspire learning excellence",
			},
			TierNewLearner: {
				"Complete orientation course",
				"Take initial assessments",
				"Set learning goals",
				"Start with beginner courses",
				"Track your progress",
			},
		},
	}
}
