package history

import (
	"context"

	"github.com/doeshing/webdiag/internal/domain"
	"github.com/doeshing/webdiag/internal/ports"
)

// Sink records a summary of every published report.
type Sink struct {
	Repo ports.RunHistoryRepository
}

// NewSink wraps repo as a report sink.
func NewSink(repo ports.RunHistoryRepository) *Sink {
	return &Sink{Repo: repo}
}

func (s *Sink) Name() string {
	return "history"
}

// Publish implements ports.ReportSink.
func (s *Sink) Publish(_ context.Context, report *domain.Report) error {
	return s.Repo.Save(domain.NewRunRecord(report))
}

var _ ports.ReportSink = (*Sink)(nil)
