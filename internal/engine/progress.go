package engine

import (
	"context"
	"time"

	"github.com/B1NYL/Promp-E-sub000/internal/storage"
)

// Persisted key layout: one record per key, all values primitive.
const (
	keyUserLevel    = "user_level"
	keyUserExp      = "user_exp"
	keyLastLoginDay = "last_login_date"
	keyTodayCount   = "today_completed_count"
	keyTodayKey     = "today_key"
	keyWeekCount    = "week_completed_count"
	keyWeekKey      = "week_key"
)

// Progress is the user's progression record.
type Progress struct {
	Level        int
	Exp          int
	LastLoginDay string
	TodayCount   int
	TodayKey     string
	WeekCount    int
	WeekKey      string
}

// ProgressStore owns level, experience, login day and calendar-bounded
// completion counters. Constructed once at startup and injected into
// consumers; every mutation persists the full record immediately.
type ProgressStore struct {
	kv  *storage.KV
	now func() time.Time
	cur Progress
}

// NewProgressStore loads the stored record (defaults: level 1, 0 XP) and
// reconciles stale counters once before returning.
func NewProgressStore(ctx context.Context, kv *storage.KV, now func() time.Time) *ProgressStore {
	if now == nil {
		now = time.Now
	}
	s := &ProgressStore{kv: kv, now: now}
	s.cur = Progress{Level: 1}
	kv.Get(ctx, keyUserLevel, &s.cur.Level)
	kv.Get(ctx, keyUserExp, &s.cur.Exp)
	kv.Get(ctx, keyLastLoginDay, &s.cur.LastLoginDay)
	kv.Get(ctx, keyTodayCount, &s.cur.TodayCount)
	kv.Get(ctx, keyTodayKey, &s.cur.TodayKey)
	kv.Get(ctx, keyWeekCount, &s.cur.WeekCount)
	kv.Get(ctx, keyWeekKey, &s.cur.WeekKey)
	if s.cur.Level < 1 {
		s.cur.Level = 1
	}
	if s.cur.Exp < 0 {
		s.cur.Exp = 0
	}
	s.Reconcile(ctx, now())
	return s
}

// Current returns a copy of the progression record.
func (s *ProgressStore) Current() Progress {
	return s.cur
}

// Reconcile resets any counter whose stored calendar key no longer matches
// now. Runs at load and again before every counter read or mutation, so a
// process alive across midnight never reports yesterday's counts.
func (s *ProgressStore) Reconcile(ctx context.Context, now time.Time) {
	day := DayKey(now)
	week := WeekKey(now)
	changed := false
	if s.cur.TodayKey != day {
		s.cur.TodayCount = 0
		s.cur.TodayKey = day
		changed = true
	}
	if s.cur.WeekKey != week {
		s.cur.WeekCount = 0
		s.cur.WeekKey = week
		changed = true
	}
	if changed {
		s.persist(ctx)
	}
}

// GainExp credits XP and applies cascading level-ups. The threshold changes
// per level, so each carry re-reads the new level's requirement; a single
// large award can cross several levels in one call.
func (s *ProgressStore) GainExp(ctx context.Context, base int, isReview bool) {
	gain := EffectiveGain(base, isReview)
	if gain <= 0 {
		return
	}
	s.cur.Exp += gain
	for s.cur.Exp >= ExpForNextLevel(s.cur.Level) {
		s.cur.Exp -= ExpForNextLevel(s.cur.Level)
		s.cur.Level++
	}
	s.persist(ctx)
}

// CheckAndSetDailyLogin reports whether this is the first login of the
// current day, recording the day when it is. The caller decides what bonus
// the true branch is worth.
func (s *ProgressStore) CheckAndSetDailyLogin(ctx context.Context) bool {
	day := DayKey(s.now())
	if s.cur.LastLoginDay == day {
		return false
	}
	s.cur.LastLoginDay = day
	s.persist(ctx)
	return true
}

// IncrementCompletionCounts bumps today's and this week's completion
// counters, reconciling stale keys first.
func (s *ProgressStore) IncrementCompletionCounts(ctx context.Context) {
	s.Reconcile(ctx, s.now())
	s.cur.TodayCount++
	s.cur.WeekCount++
	s.persist(ctx)
}

func (s *ProgressStore) persist(ctx context.Context) {
	s.kv.SetMany(ctx, map[string]any{
		keyUserLevel:    s.cur.Level,
		keyUserExp:      s.cur.Exp,
		keyLastLoginDay: s.cur.LastLoginDay,
		keyTodayCount:   s.cur.TodayCount,
		keyTodayKey:     s.cur.TodayKey,
		keyWeekCount:    s.cur.WeekCount,
		keyWeekKey:      s.cur.WeekKey,
	})
}
