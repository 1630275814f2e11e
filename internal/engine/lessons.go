package engine

import (
	"context"
	"errors"
	"sort"
	"strings"
)

const keyCompletedLessons = "completed_lessons"

// LessonResult reports what a single lesson completion changed.
type LessonResult struct {
	LessonID    string
	XPAwarded   int
	Review      bool
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
	NewMissions []Mission // missions whose goal this completion satisfied
}

// CompleteLesson records a finished lesson: the id joins the completed set,
// XP is credited (dampened when the lesson was already done), both
// completion counters advance, and counter-driven missions are swept.
func (s *Service) CompleteLesson(ctx context.Context, lessonID string, baseXP int) (*LessonResult, error) {
	lessonID = strings.TrimSpace(lessonID)
	if lessonID == "" {
		return nil, errors.New("lesson id is required")
	}
	if baseXP <= 0 {
		return nil, errors.New("lesson XP must be positive")
	}

	levelBefore := s.progress.Current().Level
	review := s.lessons[lessonID]

	s.progress.GainExp(ctx, baseXP, review)
	s.progress.IncrementCompletionCounts(ctx)

	if !review {
		s.lessons[lessonID] = true
		s.kv.Set(ctx, keyCompletedLessons, s.CompletedLessonIDs())
	}

	newly := s.SweepMissions(ctx)

	after := s.progress.Current().Level
	return &LessonResult{
		LessonID:    lessonID,
		XPAwarded:   EffectiveGain(baseXP, review),
		Review:      review,
		LevelBefore: levelBefore,
		LevelAfter:  after,
		LevelUp:     after > levelBefore,
		NewMissions: newly,
	}, nil
}

// IsLessonCompleted reports whether the lesson was ever finished.
// Lessons never reset; re-completion takes the review XP path instead.
func (s *Service) IsLessonCompleted(lessonID string) bool {
	return s.lessons[lessonID]
}

// CompletedLessonIDs returns the completed lesson ids in stable order.
func (s *Service) CompletedLessonIDs() []string {
	ids := make([]string, 0, len(s.lessons))
	for id := range s.lessons {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
