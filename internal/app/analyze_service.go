package app

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"gym_schedule_bot/internal/domain/report"
)

// AnalyzeService turns post-workout device metrics into a coached recap,
// merges it into the day's run document and notifies the operator.
type AnalyzeService struct {
	advisor    Advisor
	docs       report.DocumentStore
	notifier   Notifier
	minMinutes int
	log        *logrus.Entry
	now        func() time.Time
}

func NewAnalyzeService(advisor Advisor, docs report.DocumentStore, notifier Notifier, minMinutes int, log *logrus.Entry) *AnalyzeService {
	return &AnalyzeService{
		advisor:    advisor,
		docs:       docs,
		notifier:   notifier,
		minMinutes: minMinutes,
		log:        log.WithField("service", "analyze"),
		now:        time.Now,
	}
}

func (s *AnalyzeService) Run(ctx context.Context, m report.Metrics) error {
	if m.DurationMinutes < s.minMinutes {
		s.log.WithField("duration_minutes", m.DurationMinutes).
			Info("session shorter than the analysis threshold, skipping")
		return nil
	}

	doc, err := s.docs.Load()
	if err != nil {
		return fmt.Errorf("loading run document: %w", err)
	}
	workout := doc.Workout
	if workout == "" {
		workout = "unknown workout"
	}

	recap := s.advisor.Recap(ctx, workout, m)

	if doc.Date == "" {
		doc.Date = s.now().Format(report.DateLayout)
	}
	doc.PostWorkout = &report.PostWorkout{
		Completed:       true,
		DurationMinutes: m.DurationMinutes,
		Calories:        m.Calories,
		AvgHeartRate:    m.AvgHeartRate,
		MaxHeartRate:    m.MaxHeartRate,
		Recap:           recap,
	}
	if err := s.docs.Save(doc); err != nil {
		return fmt.Errorf("saving run document: %w", err)
	}

	s.notifier.Notify(fmt.Sprintf(
		"✅ Workout completed!\n\n⏱️ %d min | 🔥 %d kcal\n❤️ avg %d bpm | 🚀 max %d bpm\n\n🗣️ Coach:\n%s",
		m.DurationMinutes, m.Calories, m.AvgHeartRate, m.MaxHeartRate, recap))
	s.log.Info("post-workout analysis completed")
	return nil
}
