package repositories

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"resume-match-pro/internal/models"
)

type ReportRepository interface {
	Save(report *models.Report) error
	FindByID(id uuid.UUID) (*models.Report, error)
	FindRecent(limit int) []*models.Report
}

// reportRepository keeps the most recent analyses in memory for the
// lifetime of the process. There is no persistence: restarting the service
// forgets everything. Oldest reports are evicted once retention is reached.
type reportRepository struct {
	mu        sync.RWMutex
	reports   map[uuid.UUID]*models.Report
	order     []uuid.UUID
	retention int
}

func NewReportRepository(retention int) ReportRepository {
	if retention < 1 {
		retention = 1
	}
	return &reportRepository{
		reports:   make(map[uuid.UUID]*models.Report),
		retention: retention,
	}
}

func (r *reportRepository) Save(report *models.Report) error {
	if report == nil || report.ID == uuid.Nil {
		return fmt.Errorf("report must have an id")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.reports[report.ID]; !exists {
		r.order = append(r.order, report.ID)
	}
	r.reports[report.ID] = report

	for len(r.order) > r.retention {
		oldest := r.order[0]
		r.order = r.order[1:]
		delete(r.reports, oldest)
	}

	return nil
}

func (r *reportRepository) FindByID(id uuid.UUID) (*models.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	report, ok := r.reports[id]
	if !ok {
		return nil, fmt.Errorf("report not found")
	}
	return report, nil
}

func (r *reportRepository) FindRecent(limit int) []*models.Report {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 || limit > len(r.order) {
		limit = len(r.order)
	}

	recent := make([]*models.Report, 0, limit)
	for i := len(r.order) - 1; i >= 0 && len(recent) < limit; i-- {
		recent = append(recent, r.reports[r.order[i]])
	}
	return recent
}
