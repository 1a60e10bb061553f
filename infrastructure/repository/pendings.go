package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/fiscal-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/fiscal-metrics-api/internal/domain"
)

const (
	pendingsTable = "pendings"
)

//go:generate mockgen -source=pendings.go -destination=mocks/mock_pendings.go -package=mocks
type PendingsRepository interface {
	GetNotificationCounts(ctx context.Context, contentID string) (domain.PendingCounts, error)
	GetAverageDaysToPay(ctx context.Context, contentID string) (float64, error)
	GetMonthlyNotificationCounts(ctx context.Context, contentID string) ([]domain.PendingsMonthCounts, error)
	GetCriticalityCounts(ctx context.Context, contentID string) ([]domain.CriticalityCounts, error)
	GetRealPayments(ctx context.Context, since domain.Period) (domain.RealPayments, error)
	GetMonthlyRealPayments(ctx context.Context, since domain.Period) ([]domain.RealPayments, error)
}

type pendingsRepository struct {
	conn postgres.Queryer
}

func NewPendingsRepository(conn postgres.Queryer) PendingsRepository {
	return &pendingsRepository{
		conn: conn,
	}
}

var paidReasons = []string{domain.PendingReasonSuccess, domain.PendingReasonSuccessWeb}

// Colunas do funil: enviadas, pagas a partir da notificação e descartadas
func funnelColumns(builder squirrel.SelectBuilder, alias string) squirrel.SelectBuilder {
	sent := fmt.Sprintf("%s.event = ? AND %s.reason = ?", alias, alias)
	paid := fmt.Sprintf("%s.event = ? AND %s.reason IN (?, ?)", alias, alias)
	dismissed := fmt.Sprintf("%s.event = ? AND %s.reason = ?", alias, alias)

	return builder.
		Column(fmt.Sprintf("COUNT(*) FILTER (WHERE %s)", sent), domain.PendingEventCreated, domain.PendingReasonSuccess).
		Column(fmt.Sprintf("COUNT(DISTINCT %s.user_id) FILTER (WHERE %s)", alias, sent), domain.PendingEventCreated, domain.PendingReasonSuccess).
		Column(fmt.Sprintf("COUNT(*) FILTER (WHERE %s)", paid), domain.PendingEventDeleted, paidReasons[0], paidReasons[1]).
		Column(fmt.Sprintf("COUNT(DISTINCT %s.user_id) FILTER (WHERE %s)", alias, paid), domain.PendingEventDeleted, paidReasons[0], paidReasons[1]).
		Column(fmt.Sprintf("COUNT(*) FILTER (WHERE %s)", dismissed), domain.PendingEventDeleted, domain.PendingReasonDismiss).
		Column(fmt.Sprintf("COUNT(DISTINCT %s.user_id) FILTER (WHERE %s)", alias, dismissed), domain.PendingEventDeleted, domain.PendingReasonDismiss)
}

// notificationsByMonth associa cada linha ao mês em que aconteceu: envios
// pelo created_at, pagamentos e descartes pelo published.
func notificationsByMonth(contentID string) squirrel.SelectBuilder {
	return squirrel.
		Select("pd.user_id", "pd.event", "pd.reason", "pd.criticality").
		Column(
			"date_trunc('month', (CASE WHEN pd.event = ? THEN pd.created_at ELSE pd.published END) AT TIME ZONE 'UTC') AS month",
			domain.PendingEventCreated,
		).
		From(pendingsTable + " pd").
		Where(squirrel.Eq{"pd.content_id": contentID})
}

// sinceFiscalPeriod filtra pagamentos com período fiscal a partir de since
func sinceFiscalPeriod(since domain.Period) squirrel.Sqlizer {
	return squirrel.Or{
		squirrel.Gt{"te.fiscal_year": since.Year},
		squirrel.And{
			squirrel.Eq{"te.fiscal_year": since.Year},
			squirrel.GtOrEq{"te.fiscal_month": int(since.Month)},
		},
	}
}

func (r *pendingsRepository) GetNotificationCounts(ctx context.Context, contentID string) (domain.PendingCounts, error) {
	query, args, err := funnelColumns(squirrel.Select(), "pd").
		From(pendingsTable + " pd").
		Where(squirrel.Eq{"pd.content_id": contentID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return domain.PendingCounts{}, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var counts domain.PendingCounts
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&counts.Sent,
		&counts.SentSellers,
		&counts.PaidFromNotif,
		&counts.PaidSellers,
		&counts.Dismissed,
		&counts.DismissedSellers,
	)
	if err != nil {
		return domain.PendingCounts{}, wrapQueryError(err)
	}

	return counts, nil
}

// GetAverageDaysToPay retorna a média de dias inteiros entre o envio e o pagamento
func (r *pendingsRepository) GetAverageDaysToPay(ctx context.Context, contentID string) (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(AVG(DATE_PART('day', pd.published - pd.created_at)), 0)").
		From(pendingsTable+" pd").
		Where(squirrel.Eq{
			"pd.content_id": contentID,
			"pd.event":      domain.PendingEventDeleted,
			"pd.reason":     paidReasons,
		}).
		Where(squirrel.NotEq{"pd.published": nil}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var average float64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&average); err != nil {
		return 0, wrapQueryError(err)
	}

	return average, nil
}

func (r *pendingsRepository) GetMonthlyNotificationCounts(ctx context.Context, contentID string) ([]domain.PendingsMonthCounts, error) {
	builder := squirrel.Select("EXTRACT(YEAR FROM n.month)::int", "EXTRACT(MONTH FROM n.month)::int")

	query, args, err := funnelColumns(builder, "n").
		FromSelect(notificationsByMonth(contentID), "n").
		Where(squirrel.NotEq{"n.month": nil}).
		GroupBy("n.month").
		OrderBy("n.month ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryError(err)
	}
	defer rows.Close()

	months := make([]domain.PendingsMonthCounts, 0)
	for rows.Next() {
		var (
			year, month int
			counts      domain.PendingsMonthCounts
		)

		err := rows.Scan(
			&year,
			&month,
			&counts.Sent,
			&counts.SentSellers,
			&counts.PaidFromNotif,
			&counts.PaidSellers,
			&counts.Dismissed,
			&counts.DismissedSellers,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear notificações mensais: %w", err)
		}

		counts.Period = domain.FiscalPeriod(year, month)
		months = append(months, counts)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return months, nil
}

func (r *pendingsRepository) GetCriticalityCounts(ctx context.Context, contentID string) ([]domain.CriticalityCounts, error) {
	query, args, err := squirrel.
		Select(
			"EXTRACT(YEAR FROM n.month)::int",
			"EXTRACT(MONTH FROM n.month)::int",
			"COALESCE(n.criticality, '')",
		).
		Column("COUNT(*) FILTER (WHERE n.event = ? AND n.reason = ?)", domain.PendingEventCreated, domain.PendingReasonSuccess).
		Column("COUNT(*) FILTER (WHERE n.event = ? AND n.reason IN (?, ?))", domain.PendingEventDeleted, paidReasons[0], paidReasons[1]).
		Column("COUNT(*) FILTER (WHERE n.event = ? AND n.reason = ?)", domain.PendingEventDeleted, domain.PendingReasonDismiss).
		FromSelect(notificationsByMonth(contentID), "n").
		Where(squirrel.NotEq{"n.month": nil}).
		GroupBy("1", "2", "3").
		OrderBy("1 ASC", "2 ASC", "3 ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryError(err)
	}
	defer rows.Close()

	counts := make([]domain.CriticalityCounts, 0)
	for rows.Next() {
		var (
			year, month int
			row         domain.CriticalityCounts
		)

		if err := rows.Scan(&year, &month, &row.Criticality, &row.Sent, &row.Paid, &row.Dismissed); err != nil {
			return nil, fmt.Errorf("erro ao escanear notificações por criticidade: %w", err)
		}

		row.Period = domain.FiscalPeriod(year, month)
		counts = append(counts, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return counts, nil
}

func (r *pendingsRepository) GetRealPayments(ctx context.Context, since domain.Period) (domain.RealPayments, error) {
	query, args, err := squirrel.
		Select("COUNT(*)", "COUNT(DISTINCT te.cus_cust_id)").
		From(taxEventsTable + " te").
		Where(squirrel.Eq{"te.event_type": domain.EventTypePayment}).
		Where(squirrel.NotEq{"te.event_date": nil}).
		Where(sinceFiscalPeriod(since)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return domain.RealPayments{}, fmt.Errorf("erro ao construir a query: %w", err)
	}

	payments := domain.RealPayments{Period: since}
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&payments.Count, &payments.Sellers); err != nil {
		return domain.RealPayments{}, wrapQueryError(err)
	}

	return payments, nil
}

// GetMonthlyRealPayments agrupa os pagamentos fiscais pelo mês do evento
func (r *pendingsRepository) GetMonthlyRealPayments(ctx context.Context, since domain.Period) ([]domain.RealPayments, error) {
	month := monthOf("te")

	query, args, err := squirrel.
		Select(
			fmt.Sprintf("EXTRACT(YEAR FROM %s)::int", month),
			fmt.Sprintf("EXTRACT(MONTH FROM %s)::int", month),
			"COUNT(*)",
			"COUNT(DISTINCT te.cus_cust_id)",
		).
		From(taxEventsTable + " te").
		Where(squirrel.Eq{"te.event_type": domain.EventTypePayment}).
		Where(squirrel.NotEq{"te.event_date": nil}).
		Where(sinceFiscalPeriod(since)).
		GroupBy("1", "2").
		OrderBy("1 ASC", "2 ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryError(err)
	}
	defer rows.Close()

	payments := make([]domain.RealPayments, 0)
	for rows.Next() {
		var (
			year, month int
			row         domain.RealPayments
		)

		if err := rows.Scan(&year, &month, &row.Count, &row.Sellers); err != nil {
			return nil, fmt.Errorf("erro ao escanear pagamentos reais: %w", err)
		}

		row.Period = domain.FiscalPeriod(year, month)
		payments = append(payments, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return payments, nil
}
