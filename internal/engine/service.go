package engine

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"github.com/B1NYL/Promp-E-sub000/internal/storage"
)

// Service wires the progression and mission stores over one storage handle.
// It is constructed once at application start and injected into front ends;
// there is no package-level state.
type Service struct {
	kv       *storage.KV
	progress *ProgressStore
	missions *MissionStore
	lessons  map[string]bool
	gallery  *Gallery
	log      *zap.Logger
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used by the service and its storage adapter.
func WithLogger(log *zap.Logger) Option {
	return func(s *Service) { s.log = log }
}

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(ctx context.Context, db *sql.DB, opts ...Option) *Service {
	s := &Service{
		lessons: map[string]bool{},
		log:     zap.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.kv = storage.NewKV(db, s.log)
	s.progress = NewProgressStore(ctx, s.kv, s.now)
	s.missions = NewMissionStore(ctx, s.kv, s.now)
	s.gallery = NewGallery(s.kv)

	var ids []string
	s.kv.Get(ctx, keyCompletedLessons, &ids)
	for _, id := range ids {
		s.lessons[id] = true
	}
	return s
}

func (s *Service) Progress() *ProgressStore { return s.progress }
func (s *Service) Missions() *MissionStore  { return s.missions }
func (s *Service) Gallery() *Gallery        { return s.gallery }

// LoginResult reports the outcome of a daily-login check.
type LoginResult struct {
	FirstToday  bool
	BonusXP     int
	LevelBefore int
	LevelAfter  int
}

// DailyLogin applies the once-per-day login bonus and marks the login
// mission. Subsequent calls on the same day change nothing.
func (s *Service) DailyLogin(ctx context.Context) *LoginResult {
	before := s.progress.Current().Level
	res := &LoginResult{LevelBefore: before, LevelAfter: before}
	if !s.progress.CheckAndSetDailyLogin(ctx) {
		return res
	}
	res.FirstToday = true
	res.BonusXP = LoginBonusXP
	s.progress.GainExp(ctx, LoginBonusXP, false)
	s.CompleteMissionByEvent(ctx, "daily_login")
	res.LevelAfter = s.progress.Current().Level
	return res
}

// MissionStatus pairs a catalog entry with its live completion state and
// current progress toward the goal.
type MissionStatus struct {
	Mission   Mission
	Completed bool
	Progress  int
}

// MissionBoard returns every mission with reconciled completion state.
func (s *Service) MissionBoard(ctx context.Context) []MissionStatus {
	s.missions.Reconcile(ctx, s.now())
	s.progress.Reconcile(ctx, s.now())
	out := make([]MissionStatus, 0, len(s.missions.Catalog()))
	for _, m := range s.missions.Catalog() {
		out = append(out, MissionStatus{
			Mission:   m,
			Completed: s.missions.IsMissionCompleted(ctx, m.ID),
			Progress:  s.metricValue(m),
		})
	}
	return out
}

// SweepMissions completes every counter-driven mission whose goal the
// current progress satisfies, awarding each reward once. Returns the newly
// completed missions.
func (s *Service) SweepMissions(ctx context.Context) []Mission {
	s.missions.Reconcile(ctx, s.now())
	var newly []Mission
	for _, m := range s.missions.Catalog() {
		if m.Metric == MetricManual || s.missions.IsMissionCompleted(ctx, m.ID) {
			continue
		}
		if s.metricValue(m) >= m.Goal {
			s.missions.CompleteMission(ctx, m.ID)
			s.progress.GainExp(ctx, m.Reward, false)
			newly = append(newly, m)
		}
	}
	return newly
}

// CompleteMissionByEvent completes an event-driven mission (login, share,
// first creation) and awards its reward. Safe to call repeatedly.
func (s *Service) CompleteMissionByEvent(ctx context.Context, id string) (Mission, bool) {
	m, ok := s.missions.Lookup(id)
	if !ok {
		return Mission{}, false
	}
	if s.missions.IsMissionCompleted(ctx, id) {
		return m, false
	}
	s.missions.CompleteMission(ctx, id)
	s.progress.GainExp(ctx, m.Reward, false)
	return m, true
}

func (s *Service) metricValue(m Mission) int {
	cur := s.progress.Current()
	switch m.Metric {
	case MetricLessonsToday:
		return cur.TodayCount
	case MetricLessonsWeek:
		return cur.WeekCount
	case MetricLessonsTotal:
		return len(s.lessons)
	case MetricLevel:
		return cur.Level
	default:
		return 0
	}
}
