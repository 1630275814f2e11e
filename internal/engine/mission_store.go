package engine

import (
	"context"
	"sort"
	"time"

	"github.com/B1NYL/Promp-E-sub000/internal/storage"
)

const (
	keyCompletedMissions  = "completed_missions"
	keyMissionDailyReset  = "mission_daily_reset_key"
	keyMissionWeeklyReset = "mission_weekly_reset_key"
)

// MissionStore owns the completed-mission id set with type-scoped resets:
// daily ids are pruned when the stored daily key goes stale, weekly ids
// against the weekly key, and achievements are permanent. Reconcile runs
// before every membership check so a reader never sees a completion left
// over from a previous period.
type MissionStore struct {
	kv  *storage.KV
	now func() time.Time

	catalog   []Mission
	byID      map[string]Mission
	completed map[string]bool
	dailyKey  string
	weeklyKey string
}

func NewMissionStore(ctx context.Context, kv *storage.KV, now func() time.Time) *MissionStore {
	if now == nil {
		now = time.Now
	}
	s := &MissionStore{
		kv:        kv,
		now:       now,
		catalog:   Catalog(),
		byID:      map[string]Mission{},
		completed: map[string]bool{},
	}
	for _, m := range s.catalog {
		s.byID[m.ID] = m
	}

	var ids []string
	kv.Get(ctx, keyCompletedMissions, &ids)
	for _, id := range ids {
		s.completed[id] = true
	}
	kv.Get(ctx, keyMissionDailyReset, &s.dailyKey)
	kv.Get(ctx, keyMissionWeeklyReset, &s.weeklyKey)

	s.Reconcile(ctx, now())
	return s
}

// Catalog returns the static mission list.
func (s *MissionStore) Catalog() []Mission {
	return s.catalog
}

// Lookup returns the catalog entry for id.
func (s *MissionStore) Lookup(id string) (Mission, bool) {
	m, ok := s.byID[id]
	return m, ok
}

// Reconcile prunes completions whose reset period has rolled over and
// advances the stored reset keys.
func (s *MissionStore) Reconcile(ctx context.Context, now time.Time) {
	day := DayKey(now)
	week := WeekKey(now)
	changed := false
	if s.dailyKey != day {
		s.pruneType(MissionDaily)
		s.dailyKey = day
		changed = true
	}
	if s.weeklyKey != week {
		s.pruneType(MissionWeekly)
		s.weeklyKey = week
		changed = true
	}
	if changed {
		s.persist(ctx)
	}
}

func (s *MissionStore) pruneType(t MissionType) {
	for id := range s.completed {
		if m, ok := s.byID[id]; ok && m.Type == t {
			delete(s.completed, id)
		}
	}
}

// IsMissionCompleted reports membership after the staleness pass.
func (s *MissionStore) IsMissionCompleted(ctx context.Context, id string) bool {
	s.Reconcile(ctx, s.now())
	return s.completed[id]
}

// CompleteMission marks id complete. Idempotent: a second call is a no-op
// with no persistence write, so re-renders cannot double-award.
func (s *MissionStore) CompleteMission(ctx context.Context, id string) {
	s.Reconcile(ctx, s.now())
	if s.completed[id] {
		return
	}
	s.completed[id] = true
	s.persist(ctx)
}

// CompletedIDs returns the completed ids in stable order.
func (s *MissionStore) CompletedIDs() []string {
	ids := make([]string, 0, len(s.completed))
	for id := range s.completed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *MissionStore) persist(ctx context.Context) {
	s.kv.SetMany(ctx, map[string]any{
		keyCompletedMissions:  s.CompletedIDs(),
		keyMissionDailyReset:  s.dailyKey,
		keyMissionWeeklyReset: s.weeklyKey,
	})
}
