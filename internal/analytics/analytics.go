// Package analytics delivers a flat summary record of a completed
// assessment to an optional webhook. Delivery is best-effort and
// fire-and-forget: no configured URL means no call at all, and failures are
// logged at debug level and otherwise swallowed. The sink must never
// influence the computed result.
package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tmi-labs/compass/internal/household"
	"github.com/tmi-labs/compass/internal/scoring"
)

//go:generate mockgen -source=analytics.go -destination=doer_mock.go -package=analytics

// Doer executes an HTTP request. Satisfied by *http.Client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Record is the flat summary posted to the webhook.
type Record struct {
	SubmissionID string    `json:"submission_id"`
	Timestamp    time.Time `json:"timestamp"`

	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty"`
	Location     string `json:"location"`
	IncomeRange  string `json:"income_range"`

	CompositeScore float64 `json:"composite_score"`
	RibaScore      float64 `json:"riba_score"`
	EFScore        float64 `json:"ef_score"`
	ExpenseScore   float64 `json:"expense_score"`
	SavingsScore   float64 `json:"savings_score"`

	TotalIncome          float64 `json:"total_income"`
	TotalExpenses        float64 `json:"total_expenses"`
	CashFlow             float64 `json:"cash_flow"`
	SavingsRate          float64 `json:"savings_rate"`
	TotalDebt            float64 `json:"total_debt"`
	TotalMonthlyInterest float64 `json:"total_monthly_interest"`
	EmergencyFund        float64 `json:"emergency_fund"`
	MonthsProtected      float64 `json:"months_protected"`

	RibaFree        bool `json:"riba_free"`
	InvestmentReady bool `json:"investment_ready"`
}

// NewRecord flattens a snapshot and its scoring result.
func NewRecord(s household.Snapshot, r scoring.Result) Record {
	return Record{
		SubmissionID:         uuid.NewString(),
		Timestamp:            time.Now().UTC(),
		Name:                 s.Name,
		Email:                s.Email,
		Location:             s.Demographics.Location,
		IncomeRange:          s.Demographics.IncomeRange,
		CompositeScore:       r.Composite,
		RibaScore:            r.RibaScore,
		EFScore:              r.EFScore,
		ExpenseScore:         r.ExpenseScore,
		SavingsScore:         r.SavingsScore,
		TotalIncome:          r.TotalIncome,
		TotalExpenses:        r.TotalExpenses,
		CashFlow:             r.CashFlow,
		SavingsRate:          r.SavingsRate,
		TotalDebt:            r.TotalDebt,
		TotalMonthlyInterest: r.TotalMonthlyInterest,
		EmergencyFund:        r.EmergencyFund,
		MonthsProtected:      r.MonthsProtected,
		RibaFree:             r.DebtFree(),
		InvestmentReady:      r.InvestmentReady(),
	}
}

// Sink posts records to the configured webhook.
type Sink struct {
	url     string
	client  Doer
	timeout time.Duration
}

// NewSink creates a sink for the webhook URL. An empty URL yields a no-op
// sink.
func NewSink(url string, timeout time.Duration) *Sink {
	return &Sink{
		url:     url,
		client:  &http.Client{Timeout: timeout},
		timeout: timeout,
	}
}

// NewSinkWithClient is NewSink with an injected transport.
func NewSinkWithClient(url string, timeout time.Duration, client Doer) *Sink {
	return &Sink{url: url, client: client, timeout: timeout}
}

// Enabled reports whether a webhook is configured.
func (s *Sink) Enabled() bool {
	return s.url != ""
}

// Send posts the record synchronously. Callers that must not block use
// Dispatch instead.
func (s *Sink) Send(ctx context.Context, rec Record) error {
	if !s.Enabled() {
		return nil
	}

	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding analytics record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("posting analytics record: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d from analytics webhook", resp.StatusCode)
	}

	return nil
}

// Dispatch fires the record in the background. Errors are logged at debug
// level and discarded; delivery never affects what the user sees.
func (s *Sink) Dispatch(rec Record) {
	if !s.Enabled() {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		if err := s.Send(ctx, rec); err != nil {
			slog.Debug("analytics delivery failed", "error", err)
		}
	}()
}
