package worker

import (
	"context"
	"time"

	"github.com/ds124wfegd/activity-registration/internal/service"

	"github.com/sirupsen/logrus"
)

// AgendaRefreshWorker periodically recomputes the event summary and each
// day's agenda so the cache stays warm after invalidations.
type AgendaRefreshWorker struct {
	agendaService service.AgendaService
	interval      time.Duration
}

func NewAgendaRefreshWorker(agendaService service.AgendaService, interval time.Duration) *AgendaRefreshWorker {
	return &AgendaRefreshWorker{
		agendaService: agendaService,
		interval:      interval,
	}
}

func (w *AgendaRefreshWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logrus.Info("Agenda refresh worker started")

	for {
		select {
		case <-ctx.Done():
			logrus.Info("Agenda refresh worker stopped")
			return
		case <-ticker.C:
			w.refreshAgendas(ctx)
		}
	}
}

func (w *AgendaRefreshWorker) refreshAgendas(ctx context.Context) {
	days, err := w.agendaService.DistinctDays(ctx, nil)
	if err != nil {
		logrus.Errorf("Failed to list activity days: %v", err)
		return
	}

	refreshed := 0
	for _, day := range days {
		select {
		case <-ctx.Done():
			logrus.Info("Agenda refresh interrupted by context cancellation")
			return
		default:
		}

		if _, err := w.agendaService.GetByDate(ctx, day); err != nil {
			logrus.Errorf("Failed to refresh agenda for %s: %v", day, err)
			continue
		}
		refreshed++
	}

	if _, err := w.agendaService.Summarize(ctx); err != nil {
		logrus.Errorf("Failed to refresh event summary: %v", err)
	}

	logrus.Debugf("Agenda refresh completed: %d of %d days", refreshed, len(days))
}
