package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// AutomationScheduler runs the daily report and the weekly standing
// enrollment round on their configured cron specs. Each job builds and
// tears down its own browser session; two triggers never share state.
type AutomationScheduler struct {
	cronEngine   *cron.Cron
	reportJob    func()
	standingJob  func()
	specReport   string
	specStanding string
	log          *logrus.Entry
}

func New(reportJob, standingJob func(), specReport, specStanding string, log *logrus.Entry) *AutomationScheduler {
	return &AutomationScheduler{
		cronEngine:   cron.New(cron.WithLocation(time.Local)),
		reportJob:    reportJob,
		standingJob:  standingJob,
		specReport:   specReport,
		specStanding: specStanding,
		log:          log.WithField("component", "scheduler"),
	}
}

func (s *AutomationScheduler) Start() {
	s.log.Info("starting automation scheduler")

	if _, err := s.cronEngine.AddFunc(s.specReport, func() {
		s.log.Info("cron trigger: daily report")
		s.reportJob()
	}); err != nil {
		s.log.WithError(err).Fatal("could not add daily report cron job")
	}

	if s.standingJob != nil {
		if _, err := s.cronEngine.AddFunc(s.specStanding, func() {
			s.log.Info("cron trigger: standing enrollments")
			s.standingJob()
		}); err != nil {
			s.log.WithError(err).Fatal("could not add standing enrollment cron job")
		}
	}

	s.cronEngine.Start()
	s.log.WithField("report_spec", s.specReport).WithField("standing_spec", s.specStanding).
		Info("automation scheduler started")
}

func (s *AutomationScheduler) Stop() {
	s.log.Info("stopping automation scheduler")
	ctx := s.cronEngine.Stop()
	<-ctx.Done()
	s.log.Info("automation scheduler stopped")
}
