package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rpt-gingoog/mabilisss/pkg/repo"
)

// ReportMailer sends the daily report. Implemented by the gmail client.
type ReportMailer interface {
	SendEmail(to, subject, body string) error
}

// ExportCSV renders one day's queue as the branch's daily report CSV: a
// small preamble followed by one row per reservation in creation order.
func ExportCSV(ctx context.Context, store repo.QueueStore, logger *zap.Logger, date string) (string, error) {
	doc, err := store.QueueFor(date)
	if err != nil {
		return "", fmt.Errorf("failed to load queue: %w", err)
	}
	branch, err := store.Branch()
	if err != nil {
		return "", fmt.Errorf("failed to load branch config: %w", err)
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	w.Write([]string{"MabiliSSS Queue - Daily Report"})
	w.Write([]string{"Branch: " + branch.Name})
	w.Write([]string{"Date: " + doc.Date})
	w.Write([]string{})
	w.Write([]string{
		"Res#", "Slot", "Source", "LastName", "FirstName", "MI", "Mobile",
		"Category", "Service", "Priority", "Status", "BQMS#",
		"ReservedAt", "ArrivedAt", "CompletedAt",
	})
	for i := range doc.Reservations {
		r := &doc.Reservations[i]
		w.Write([]string{
			r.ResNum, strconv.Itoa(r.Slot), r.Source,
			r.LastName, r.FirstName, r.MI, r.Mobile,
			r.Category, r.Service, r.Priority, r.Status, r.BQMSNumber,
			formatStamp(&r.IssuedAt), formatStamp(r.ArrivedAt), formatStamp(r.CompletedAt),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}

	logger.Info("Daily report exported",
		zap.String("date", date),
		zap.Int("rows", len(doc.Reservations)))
	return sb.String(), nil
}

func formatStamp(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

// EmailDailyReport exports the day's CSV report and mails it to the
// configured recipient (typically the branch head).
func EmailDailyReport(ctx context.Context, store repo.QueueStore, mailer ReportMailer, logger *zap.Logger, date, to string) error {
	if to == "" {
		return &ValidationError{Reasons: []string{"Report recipient is not configured."}}
	}

	report, err := ExportCSV(ctx, store, logger, date)
	if err != nil {
		return err
	}
	branch, err := store.Branch()
	if err != nil {
		return fmt.Errorf("failed to load branch config: %w", err)
	}

	subject := fmt.Sprintf("%s - Daily Queue Report %s", branch.Name, date)
	if err := mailer.SendEmail(to, subject, report); err != nil {
		return fmt.Errorf("failed to send daily report: %w", err)
	}

	logger.Info("Daily report emailed",
		zap.String("date", date),
		zap.String("to", to))
	return nil
}
