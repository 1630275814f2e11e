package engine

type MissionType string

const (
	MissionDaily       MissionType = "daily"
	MissionWeekly      MissionType = "weekly"
	MissionAchievement MissionType = "achievement"
)

func (t MissionType) IsValid() bool {
	switch t {
	case MissionDaily, MissionWeekly, MissionAchievement:
		return true
	default:
		return false
	}
}

// MissionMetric names the progress figure a mission is measured against.
type MissionMetric string

const (
	MetricLessonsToday MissionMetric = "lessons_today"
	MetricLessonsWeek  MissionMetric = "lessons_week"
	MetricLessonsTotal MissionMetric = "lessons_total"
	MetricLevel        MissionMetric = "level"
	MetricManual       MissionMetric = "manual" // completed by an explicit event, not a counter
)

// Mission is one gamification goal. The catalog is static and never mutated
// at runtime; completion state lives in MissionStore.
type Mission struct {
	ID     string
	Type   MissionType
	Title  string
	Icon   string
	Metric MissionMetric
	Goal   int
	Reward int // XP
}

// Catalog returns the static mission catalog.
func Catalog() []Mission {
	return []Mission{
		// Daily
		{ID: "daily_login", Type: MissionDaily, Title: "Log in today", Icon: "🌅", Metric: MetricManual, Goal: 1, Reward: 10},
		{ID: "daily_one_lesson", Type: MissionDaily, Title: "Finish a lesson", Icon: "📖", Metric: MetricLessonsToday, Goal: 1, Reward: 20},
		{ID: "daily_three_lessons", Type: MissionDaily, Title: "Finish three lessons", Icon: "📚", Metric: MetricLessonsToday, Goal: 3, Reward: 50},
		{ID: "daily_creation", Type: MissionDaily, Title: "Generate an image", Icon: "🎨", Metric: MetricManual, Goal: 1, Reward: 30},

		// Weekly
		{ID: "weekly_five_lessons", Type: MissionWeekly, Title: "Finish five lessons this week", Icon: "🗓️", Metric: MetricLessonsWeek, Goal: 5, Reward: 80},
		{ID: "weekly_ten_lessons", Type: MissionWeekly, Title: "Finish ten lessons this week", Icon: "🏃", Metric: MetricLessonsWeek, Goal: 10, Reward: 150},
		{ID: "weekly_share", Type: MissionWeekly, Title: "Share a creation", Icon: "📤", Metric: MetricManual, Goal: 1, Reward: 60},

		// Achievements (permanent once earned)
		{ID: "ach_first_lesson", Type: MissionAchievement, Title: "Complete your first lesson", Icon: "🌱", Metric: MetricLessonsTotal, Goal: 1, Reward: 30},
		{ID: "ach_ten_lessons", Type: MissionAchievement, Title: "Complete ten lessons", Icon: "🏅", Metric: MetricLessonsTotal, Goal: 10, Reward: 100},
		{ID: "ach_fifty_lessons", Type: MissionAchievement, Title: "Complete fifty lessons", Icon: "🏆", Metric: MetricLessonsTotal, Goal: 50, Reward: 300},
		{ID: "ach_level_5", Type: MissionAchievement, Title: "Reach level 5", Icon: "⭐", Metric: MetricLevel, Goal: 5, Reward: 100},
		{ID: "ach_level_10", Type: MissionAchievement, Title: "Reach level 10", Icon: "🌟", Metric: MetricLevel, Goal: 10, Reward: 250},
		{ID: "ach_first_creation", Type: MissionAchievement, Title: "Generate your first image", Icon: "🖼️", Metric: MetricManual, Goal: 1, Reward: 50},
	}
}
