package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/fiscal-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/fiscal-metrics-api/internal/domain"
)

const (
	taxEventsTable = "tax_events"
)

// Filtros reaproveitados nas agregações
const (
	emissionOK  = "%s.event_type = ? AND %s.serpro_status = ?"
	paymentOnly = "%s.event_type = ?"
)

//go:generate mockgen -source=tax_event.go -destination=mocks/mock_tax_event.go -package=mocks
type TaxEventRepository interface {
	GetMonthlyAggregates(ctx context.Context) ([]domain.MonthlyAggregate, error)
	GetPaymentFiscalGroups(ctx context.Context) ([]domain.PaymentFiscalGroup, error)
	GetSellerCohorts(ctx context.Context, eventType string) ([]domain.SellerCohortCounts, error)
	GetMonthTotals(ctx context.Context, period domain.Period, filter domain.FilterMode) (*domain.MonthTotals, error)
	GetTopFiscalPeriods(ctx context.Context, period domain.Period, limit int) ([]domain.FiscalPeriodCount, error)
	GetCohortActivity(ctx context.Context, limit int) ([]domain.CohortActivity, error)
	GetEngagementBuckets(ctx context.Context) (domain.EngagementBuckets, error)
	GetPendingPeriodsBuckets(ctx context.Context, until domain.Period) (domain.PendingPeriodsBuckets, error)
}

type taxEventRepository struct {
	conn postgres.Queryer
}

func NewTaxEventRepository(conn postgres.Queryer) TaxEventRepository {
	return &taxEventRepository{
		conn: conn,
	}
}

// monthOf trunca event_date para o mês calendário em UTC
func monthOf(alias string) string {
	return fmt.Sprintf("date_trunc('month', %s.event_date AT TIME ZONE 'UTC')", alias)
}

func emissionFilter(alias string) string {
	return fmt.Sprintf(emissionOK, alias, alias)
}

func paymentFilter(alias string) string {
	return fmt.Sprintf(paymentOnly, alias)
}

// eventTypeFilter devolve o filtro e os argumentos de um tipo de evento.
// Emissões só contam quando o SERPRO respondeu com sucesso.
func eventTypeFilter(alias, eventType string) squirrel.Sqlizer {
	if eventType == domain.EventTypeEmission {
		return squirrel.Expr(emissionFilter(alias), domain.EventTypeEmission, domain.SerproStatusSuccess)
	}
	return squirrel.Expr(paymentFilter(alias), eventType)
}

func wrapQueryError(err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		return fmt.Errorf("erro ao executar a query (código %s): %w", pqErr.Code, err)
	}
	return fmt.Errorf("erro ao executar a query: %w", err)
}

func (r *taxEventRepository) GetMonthlyAggregates(ctx context.Context) ([]domain.MonthlyAggregate, error) {
	month := monthOf("te")

	query, args, err := squirrel.
		Select().
		Column(fmt.Sprintf("EXTRACT(YEAR FROM %s)::int AS year", month)).
		Column(fmt.Sprintf("EXTRACT(MONTH FROM %s)::int AS month", month)).
		Column(fmt.Sprintf("COUNT(*) FILTER (WHERE %s) AS emissions", emissionFilter("te")), domain.EventTypeEmission, domain.SerproStatusSuccess).
		Column(fmt.Sprintf("COUNT(DISTINCT te.cus_cust_id) FILTER (WHERE %s) AS sellers_emit", emissionFilter("te")), domain.EventTypeEmission, domain.SerproStatusSuccess).
		Column(fmt.Sprintf("COUNT(*) FILTER (WHERE %s) AS payments", paymentFilter("te")), domain.EventTypePayment).
		Column(fmt.Sprintf("COUNT(DISTINCT te.cus_cust_id) FILTER (WHERE %s) AS sellers_pay", paymentFilter("te")), domain.EventTypePayment).
		Column(fmt.Sprintf("COALESCE(SUM(te.total_amount) FILTER (WHERE %s), 0) AS volume", paymentFilter("te")), domain.EventTypePayment).
		From(taxEventsTable + " te").
		Where(squirrel.NotEq{"te.event_date": nil}).
		Where(squirrel.Eq{"te.event_type": []string{domain.EventTypeEmission, domain.EventTypePayment}}).
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

	aggregates := make([]domain.MonthlyAggregate, 0)
	for rows.Next() {
		var (
			year, month int
			agg         domain.MonthlyAggregate
		)

		err := rows.Scan(
			&year,
			&month,
			&agg.Emissions.Count,
			&agg.Emissions.UniqueSellers,
			&agg.Payments.Count,
			&agg.Payments.UniqueSellers,
			&agg.Payments.VolumeTotal,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear agregado mensal: %w", err)
		}

		agg.Period = domain.FiscalPeriod(year, month)
		aggregates = append(aggregates, agg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return aggregates, nil
}

func (r *taxEventRepository) GetPaymentFiscalGroups(ctx context.Context) ([]domain.PaymentFiscalGroup, error) {
	month := monthOf("te")

	query, args, err := squirrel.
		Select(
			fmt.Sprintf("EXTRACT(YEAR FROM %s)::int", month),
			fmt.Sprintf("EXTRACT(MONTH FROM %s)::int", month),
			"te.fiscal_year",
			"te.fiscal_month",
			"COUNT(*)",
			"COUNT(DISTINCT te.cus_cust_id)",
		).
		From(taxEventsTable + " te").
		Where(squirrel.Eq{"te.event_type": domain.EventTypePayment}).
		Where(squirrel.NotEq{"te.event_date": nil, "te.fiscal_year": nil, "te.fiscal_month": nil}).
		GroupBy("1", "2", "3", "4").
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

	groups := make([]domain.PaymentFiscalGroup, 0)
	for rows.Next() {
		var (
			year, month, fiscalYear, fiscalMonth int
			group                                domain.PaymentFiscalGroup
		)

		if err := rows.Scan(&year, &month, &fiscalYear, &fiscalMonth, &group.Payments, &group.Sellers); err != nil {
			return nil, fmt.Errorf("erro ao escanear pagamentos por período fiscal: %w", err)
		}

		group.EventPeriod = domain.FiscalPeriod(year, month)
		group.FiscalPeriod = domain.FiscalPeriod(fiscalYear, fiscalMonth)
		groups = append(groups, group)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return groups, nil
}

// GetSellerCohorts separa, mês a mês, os sellers que tiveram o primeiro evento
// do tipo naquele mês (novos) dos que já tinham eventos antes (recorrentes).
func (r *taxEventRepository) GetSellerCohorts(ctx context.Context, eventType string) ([]domain.SellerCohortCounts, error) {
	firstMonth := squirrel.
		Select("s.cus_cust_id", fmt.Sprintf("MIN(%s) AS first_month", monthOf("s"))).
		From(taxEventsTable + " s").
		Where(eventTypeFilter("s", eventType)).
		GroupBy("s.cus_cust_id")

	month := monthOf("e")

	query, args, err := squirrel.
		Select(
			fmt.Sprintf("EXTRACT(YEAR FROM %s)::int", month),
			fmt.Sprintf("EXTRACT(MONTH FROM %s)::int", month),
			"COUNT(DISTINCT e.cus_cust_id)",
			fmt.Sprintf("COUNT(DISTINCT e.cus_cust_id) FILTER (WHERE %s = f.first_month)", month),
			fmt.Sprintf("COUNT(DISTINCT e.cus_cust_id) FILTER (WHERE %s <> f.first_month)", month),
		).
		From(taxEventsTable + " e").
		JoinClause(firstMonth.Prefix("JOIN (").Suffix(") f ON f.cus_cust_id = e.cus_cust_id")).
		Where(eventTypeFilter("e", eventType)).
		Where(squirrel.NotEq{"e.event_date": nil}).
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

	cohorts := make([]domain.SellerCohortCounts, 0)
	for rows.Next() {
		var (
			year, month int
			counts      domain.SellerCohortCounts
		)

		if err := rows.Scan(&year, &month, &counts.Total, &counts.New, &counts.Recurring); err != nil {
			return nil, fmt.Errorf("erro ao escanear sellers novos e recorrentes: %w", err)
		}

		counts.Period = domain.FiscalPeriod(year, month)
		cohorts = append(cohorts, counts)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return cohorts, nil
}

// periodFilter filtra pelo mês do evento ou pelo período fiscal declarado
func periodFilter(period domain.Period, filter domain.FilterMode) squirrel.Sqlizer {
	if filter == domain.FilterByFiscal {
		return squirrel.Eq{"te.fiscal_year": period.Year, "te.fiscal_month": int(period.Month)}
	}

	return squirrel.And{
		squirrel.GtOrEq{"te.event_date": period.Start()},
		squirrel.Lt{"te.event_date": period.End()},
	}
}

func (r *taxEventRepository) GetMonthTotals(ctx context.Context, period domain.Period, filter domain.FilterMode) (*domain.MonthTotals, error) {
	query, args, err := squirrel.
		Select().
		Column(fmt.Sprintf("COUNT(*) FILTER (WHERE %s)", emissionFilter("te")), domain.EventTypeEmission, domain.SerproStatusSuccess).
		Column(fmt.Sprintf("COUNT(DISTINCT te.cus_cust_id) FILTER (WHERE %s)", emissionFilter("te")), domain.EventTypeEmission, domain.SerproStatusSuccess).
		Column(fmt.Sprintf("COUNT(*) FILTER (WHERE %s)", paymentFilter("te")), domain.EventTypePayment).
		Column(fmt.Sprintf("COUNT(DISTINCT te.cus_cust_id) FILTER (WHERE %s)", paymentFilter("te")), domain.EventTypePayment).
		Column(fmt.Sprintf("COUNT(*) FILTER (WHERE %s)", emissionFilter("te")), domain.EventTypeEmission, domain.SerproStatusError).
		Column(fmt.Sprintf("COUNT(*) FILTER (WHERE %s)", emissionFilter("te")), domain.EventTypeEmission, domain.SerproStatusAlreadyPaid).
		Column(fmt.Sprintf("COALESCE(SUM(te.total_amount) FILTER (WHERE %s), 0)", paymentFilter("te")), domain.EventTypePayment).
		Column("MIN(te.event_date)").
		Column("MAX(te.event_date)").
		From(taxEventsTable + " te").
		Where(periodFilter(period, filter)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		totals domain.MonthTotals
		first  sql.NullTime
		last   sql.NullTime
	)

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&totals.EmissionsCount,
		&totals.SellersEmitted,
		&totals.PaymentsCount,
		&totals.SellersPaid,
		&totals.EmissionErrorCount,
		&totals.AlreadyPaidCount,
		&totals.VolumeTotal,
		&first,
		&last,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, wrapQueryError(err)
	}

	if first.Valid {
		totals.FirstActivity = &first.Time
	}
	if last.Valid {
		totals.LastActivity = &last.Time
	}

	return &totals, nil
}

func (r *taxEventRepository) GetTopFiscalPeriods(ctx context.Context, period domain.Period, limit int) ([]domain.FiscalPeriodCount, error) {
	query, args, err := squirrel.
		Select("te.fiscal_year", "te.fiscal_month").
		Column(fmt.Sprintf("COUNT(*) FILTER (WHERE %s) AS emissions", emissionFilter("te")), domain.EventTypeEmission, domain.SerproStatusSuccess).
		Column(fmt.Sprintf("COUNT(DISTINCT te.cus_cust_id) FILTER (WHERE %s) AS sellers", emissionFilter("te")), domain.EventTypeEmission, domain.SerproStatusSuccess).
		From(taxEventsTable + " te").
		Where(periodFilter(period, domain.FilterByEvent)).
		Where(squirrel.NotEq{"te.fiscal_year": nil, "te.fiscal_month": nil}).
		GroupBy("te.fiscal_year", "te.fiscal_month").
		OrderBy("emissions DESC", "te.fiscal_year DESC", "te.fiscal_month DESC").
		Limit(uint64(limit)).
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

	periods := make([]domain.FiscalPeriodCount, 0)
	for rows.Next() {
		var (
			year, month int
			count       domain.FiscalPeriodCount
		)

		if err := rows.Scan(&year, &month, &count.Emissions, &count.Sellers); err != nil {
			return nil, fmt.Errorf("erro ao escanear períodos fiscais: %w", err)
		}

		count.FiscalPeriod = domain.FiscalPeriod(year, month)
		periods = append(periods, count)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return periods, nil
}

// GetCohortActivity retorna as coortes mais recentes (mês do primeiro evento
// do seller) com a quantidade de sellers ativos nos meses 0 a 3.
func (r *taxEventRepository) GetCohortActivity(ctx context.Context, limit int) ([]domain.CohortActivity, error) {
	eventTypes := []string{domain.EventTypeEmission, domain.EventTypePayment}

	firstMonth := squirrel.
		Select("s.cus_cust_id", fmt.Sprintf("MIN(%s) AS cohort", monthOf("s"))).
		From(taxEventsTable + " s").
		Where(squirrel.Eq{"s.event_type": eventTypes}).
		GroupBy("s.cus_cust_id")

	activity := squirrel.
		Select("e.cus_cust_id", monthOf("e")+" AS active_month", "f.cohort").
		Distinct().
		From(taxEventsTable + " e").
		JoinClause(firstMonth.Prefix("JOIN (").Suffix(") f ON f.cus_cust_id = e.cus_cust_id")).
		Where(squirrel.Eq{"e.event_type": eventTypes}).
		Where(squirrel.NotEq{"e.event_date": nil})

	monthsSince := "((EXTRACT(YEAR FROM a.active_month) - EXTRACT(YEAR FROM a.cohort)) * 12 + " +
		"EXTRACT(MONTH FROM a.active_month) - EXTRACT(MONTH FROM a.cohort))"

	builder := squirrel.
		Select(
			"EXTRACT(YEAR FROM a.cohort)::int",
			"EXTRACT(MONTH FROM a.cohort)::int",
			"COUNT(DISTINCT a.cus_cust_id)",
		)
	for offset := 0; offset < 4; offset++ {
		builder = builder.Column(fmt.Sprintf("COUNT(DISTINCT a.cus_cust_id) FILTER (WHERE %s = %d)", monthsSince, offset))
	}

	query, args, err := builder.
		FromSelect(activity, "a").
		GroupBy("a.cohort").
		OrderBy("a.cohort DESC").
		Limit(uint64(limit)).
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

	cohorts := make([]domain.CohortActivity, 0)
	for rows.Next() {
		var (
			year, month int
			cohort      domain.CohortActivity
		)

		err := rows.Scan(
			&year,
			&month,
			&cohort.Sellers,
			&cohort.ActiveByMonth[0],
			&cohort.ActiveByMonth[1],
			&cohort.ActiveByMonth[2],
			&cohort.ActiveByMonth[3],
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear coortes: %w", err)
		}

		cohort.Cohort = domain.FiscalPeriod(year, month)
		cohorts = append(cohorts, cohort)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return cohorts, nil
}

func (r *taxEventRepository) GetEngagementBuckets(ctx context.Context) (domain.EngagementBuckets, error) {
	activeDays := squirrel.
		Select("te.cus_cust_id", "COUNT(DISTINCT (te.event_date AT TIME ZONE 'UTC')::date) AS days").
		From(taxEventsTable + " te").
		Where(squirrel.Eq{"te.event_type": []string{domain.EventTypeEmission, domain.EventTypePayment}}).
		Where(squirrel.NotEq{"te.event_date": nil}).
		GroupBy("te.cus_cust_id")

	query, args, err := squirrel.
		Select(
			"COUNT(*) FILTER (WHERE d.days = 1)",
			"COUNT(*) FILTER (WHERE d.days BETWEEN 2 AND 3)",
			"COUNT(*) FILTER (WHERE d.days BETWEEN 4 AND 7)",
			"COUNT(*) FILTER (WHERE d.days >= 8)",
		).
		FromSelect(activeDays, "d").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return domain.EngagementBuckets{}, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var buckets domain.EngagementBuckets
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&buckets.OneDay,
		&buckets.TwoToThree,
		&buckets.FourToSeven,
		&buckets.EightOrMore,
	)
	if err != nil {
		return domain.EngagementBuckets{}, wrapQueryError(err)
	}

	return buckets, nil
}

// GetPendingPeriodsBuckets conta, por seller, os períodos fiscais até until
// que tiveram emissão bem sucedida e nenhum pagamento.
func (r *taxEventRepository) GetPendingPeriodsBuckets(ctx context.Context, until domain.Period) (domain.PendingPeriodsBuckets, error) {
	emitted := squirrel.
		Select("s.cus_cust_id", "s.fiscal_year", "s.fiscal_month").
		Distinct().
		From(taxEventsTable + " s").
		Where(eventTypeFilter("s", domain.EventTypeEmission)).
		Where(squirrel.NotEq{"s.fiscal_year": nil, "s.fiscal_month": nil})

	paid := squirrel.
		Select("p.cus_cust_id", "p.fiscal_year", "p.fiscal_month").
		Distinct().
		From(taxEventsTable + " p").
		Where(eventTypeFilter("p", domain.EventTypePayment)).
		Where(squirrel.NotEq{"p.fiscal_year": nil, "p.fiscal_month": nil})

	pendingBySeller := squirrel.
		Select("em.cus_cust_id", "COUNT(*) AS pending").
		FromSelect(emitted, "em").
		JoinClause(paid.Prefix("LEFT JOIN (").Suffix(
			") pa ON pa.cus_cust_id = em.cus_cust_id AND pa.fiscal_year = em.fiscal_year AND pa.fiscal_month = em.fiscal_month",
		)).
		Where(squirrel.Eq{"pa.cus_cust_id": nil}).
		Where(squirrel.Expr("(em.fiscal_year * 100 + em.fiscal_month) <= ?", until.Year*100+int(until.Month))).
		GroupBy("em.cus_cust_id")

	query, args, err := squirrel.
		Select(
			"COUNT(*) FILTER (WHERE ps.pending = 1)",
			"COUNT(*) FILTER (WHERE ps.pending BETWEEN 2 AND 3)",
			"COUNT(*) FILTER (WHERE ps.pending BETWEEN 4 AND 6)",
			"COUNT(*) FILTER (WHERE ps.pending >= 7)",
			"COALESCE(ROUND(AVG(ps.pending), 2), 0)",
		).
		FromSelect(pendingBySeller, "ps").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return domain.PendingPeriodsBuckets{}, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		buckets domain.PendingPeriodsBuckets
		average decimal.Decimal
	)
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&buckets.One,
		&buckets.TwoToThree,
		&buckets.FourToSix,
		&buckets.SevenOrMore,
		&average,
	)
	if err != nil {
		return domain.PendingPeriodsBuckets{}, wrapQueryError(err)
	}

	buckets.Average = average
	return buckets, nil
}
