package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bank-demo/internal/operator/actions"
)

type SeedService struct {
	operator actionProcessor
	logger   *logrus.Logger
	now      func() time.Time
}

func NewSeedService(op actionProcessor, logger *logrus.Logger) *SeedService {
	return &SeedService{operator: op, logger: logger, now: time.Now}
}

// SeedDemoData populates an empty store with the demo data set. It reports whether
// this call did the seeding; a store that was already seeded or populated is left as is.
func (s *SeedService) SeedDemoData(ctx context.Context) (bool, error) {
	action := &actions.SeedDemoData{Now: s.now}
	if err := s.operator.Process(ctx, action); err != nil {
		s.logger.WithError(err).Error("SeedService.SeedDemoData")
		return false, err
	}

	s.logger.WithFields(logrus.Fields{
		"seeded":       action.Seeded,
		"accounts":     len(action.Accounts),
		"transactions": len(action.Transactions),
	}).Info("SeedService.SeedDemoData.Complete")

	return action.Seeded, nil
}
