package app

import (
	"time"

	"github.com/sirupsen/logrus"

	"hexcast/domain/core"
	"hexcast/internal/signal"
	"hexcast/pkg/logger"
)

// SignalService evaluates batches of metric series.
type SignalService struct {
	evaluator *signal.Evaluator
	log       *logrus.Entry
}

// SignalReport collects the evaluation of one batch, including any zone
// crossings and trend reversals detected on the same data.
type SignalReport struct {
	ID        core.ReportID     `json:"id"`
	Results   []signal.Result   `json:"results"`
	Crossings []signal.Crossing `json:"crossings,omitempty"`
	Reversals []signal.Reversal `json:"reversals,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// NewSignalService creates a signal service around an evaluator.
func NewSignalService(evaluator *signal.Evaluator) *SignalService {
	return &SignalService{
		evaluator: evaluator,
		log:       logger.WithComponent("signal"),
	}
}

// EvaluateAll classifies every series and scans each for crossings and
// reversals. Series without a definition contribute a neutral result.
func (s *SignalService) EvaluateAll(series []signal.Series) *SignalReport {
	report := &SignalReport{
		ID:        core.NewReportID(),
		Results:   make([]signal.Result, 0, len(series)),
		CreatedAt: time.Now(),
	}

	for _, sr := range series {
		result := s.evaluator.Evaluate(sr)
		report.Results = append(report.Results, result)

		if crossing, ok := s.evaluator.DetectCrossing(sr); ok {
			report.Crossings = append(report.Crossings, crossing)
		}
		if reversal, ok := s.evaluator.DetectReversal(sr); ok {
			report.Reversals = append(report.Reversals, reversal)
		}
	}

	s.log.WithFields(logrus.Fields{
		"report_id": report.ID,
		"series":    len(series),
		"crossings": len(report.Crossings),
		"reversals": len(report.Reversals),
	}).Info("signal evaluation complete")

	return report
}
