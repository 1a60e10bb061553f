package migration

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fiscal-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/fiscal-metrics-api/internal/domain"
	"github.com/vfg2006/fiscal-metrics-api/pkg/utils"
)

const batchSize = 500

type TaxEvent struct {
	ID           string
	SellerID     int64
	EventType    string
	SerproStatus string
	Amount       decimal.Decimal
	FiscalPeriod domain.Period
	EventDate    time.Time
}

type Pending struct {
	ID          string
	UserID      int64
	ContentID   string
	Event       string
	Reason      string
	Criticality string
	CreatedAt   time.Time
	Published   *time.Time
}

type SeedOptions struct {
	Sellers   int
	Months    int
	ContentID string
	Now       time.Time
}

var criticalities = []string{"C1", "C2", "C3", "C4", ""}

// GenerateSeed cria eventos sintéticos: cada seller emite o DAS do mês anterior
// e parte deles paga, às vezes com atraso. Quem emite e não paga recebe notificação.
func GenerateSeed(rng *rand.Rand, opts SeedOptions) ([]TaxEvent, []Pending, error) {
	var (
		events   []TaxEvent
		pendings []Pending
	)

	current := domain.PeriodOf(opts.Now.UTC())
	first := current
	for i := 1; i < opts.Months; i++ {
		first = first.Previous()
	}

	for seller := 1; seller <= opts.Sellers; seller++ {
		sellerID := int64(100000 + seller)
		for period := first; !current.Before(period); period = period.Next() {
			if rng.Float64() < 0.3 {
				continue
			}

			fiscal := period.Previous()
			emittedAt := period.Start().Add(time.Duration(rng.Intn(20*24)) * time.Hour)

			id, err := utils.GenerateID()
			if err != nil {
				return nil, nil, err
			}

			status := domain.SerproStatusSuccess
			switch r := rng.Float64(); {
			case r < 0.05:
				status = domain.SerproStatusError
			case r < 0.1:
				status = domain.SerproStatusAlreadyPaid
			}

			events = append(events, TaxEvent{
				ID:           id,
				SellerID:     sellerID,
				EventType:    domain.EventTypeEmission,
				SerproStatus: status,
				FiscalPeriod: fiscal,
				EventDate:    emittedAt,
			})

			if status != domain.SerproStatusSuccess {
				continue
			}

			if rng.Float64() < 0.55 {
				paymentID, err := utils.GenerateID()
				if err != nil {
					return nil, nil, err
				}
				// pagamentos atrasados declaram um período fiscal mais antigo
				if rng.Float64() < 0.2 {
					fiscal = fiscal.Previous()
				}
				events = append(events, TaxEvent{
					ID:           paymentID,
					SellerID:     sellerID,
					EventType:    domain.EventTypePayment,
					Amount:       decimal.NewFromInt(int64(60 + rng.Intn(90))),
					FiscalPeriod: fiscal,
					EventDate:    emittedAt.Add(time.Duration(1+rng.Intn(5)) * 24 * time.Hour),
				})
				continue
			}

			created, err := generatePendings(rng, opts.ContentID, sellerID, emittedAt)
			if err != nil {
				return nil, nil, err
			}
			pendings = append(pendings, created...)
		}
	}

	return events, pendings, nil
}

func generatePendings(rng *rand.Rand, contentID string, userID int64, emittedAt time.Time) ([]Pending, error) {
	createdID, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	createdAt := emittedAt.Add(24 * time.Hour)
	criticality := criticalities[rng.Intn(len(criticalities))]

	result := []Pending{{
		ID:          createdID,
		UserID:      userID,
		ContentID:   contentID,
		Event:       domain.PendingEventCreated,
		Reason:      domain.PendingReasonSuccess,
		Criticality: criticality,
		CreatedAt:   createdAt,
	}}

	var reason string
	switch r := rng.Float64(); {
	case r < 0.3:
		reason = domain.PendingReasonSuccess
	case r < 0.4:
		reason = domain.PendingReasonSuccessWeb
	case r < 0.6:
		reason = domain.PendingReasonDismiss
	default:
		return result, nil
	}

	deletedID, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}
	published := createdAt.Add(time.Duration(1+rng.Intn(10)) * 24 * time.Hour)

	return append(result, Pending{
		ID:          deletedID,
		UserID:      userID,
		ContentID:   contentID,
		Event:       domain.PendingEventDeleted,
		Reason:      reason,
		Criticality: criticality,
		CreatedAt:   createdAt,
		Published:   &published,
	}), nil
}

func nullable(value string) any {
	if value == "" {
		return nil
	}
	return value
}

// Seed grava os eventos sintéticos em lotes dentro de uma transação
func Seed(ctx context.Context, conn postgres.Conn, events []TaxEvent, pendings []Pending) error {
	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for start := 0; start < len(events); start += batchSize {
			end := min(start+batchSize, len(events))

			builder := squirrel.Insert("tax_events").
				Columns("id", "cus_cust_id", "event_type", "serpro_status", "total_amount", "fiscal_year", "fiscal_month", "event_date").
				PlaceholderFormat(squirrel.Dollar)
			for _, e := range events[start:end] {
				var amount any
				if e.EventType == domain.EventTypePayment {
					amount = e.Amount
				}
				builder = builder.Values(e.ID, e.SellerID, e.EventType, nullable(e.SerproStatus), amount,
					e.FiscalPeriod.Year, int(e.FiscalPeriod.Month), e.EventDate)
			}

			query, args, err := builder.ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("erro ao inserir eventos fiscais: %w", err)
			}
		}

		for start := 0; start < len(pendings); start += batchSize {
			end := min(start+batchSize, len(pendings))

			builder := squirrel.Insert("pendings").
				Columns("id", "user_id", "content_id", "event", "reason", "criticality", "created_at", "published").
				PlaceholderFormat(squirrel.Dollar)
			for _, p := range pendings[start:end] {
				builder = builder.Values(p.ID, p.UserID, p.ContentID, p.Event, nullable(p.Reason),
					nullable(p.Criticality), p.CreatedAt, p.Published)
			}

			query, args, err := builder.ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("erro ao inserir notificações: %w", err)
			}
		}

		logrus.WithFields(logrus.Fields{
			"tax_events": len(events),
			"pendings":   len(pendings),
		}).Info("Dados sintéticos inseridos")
		return nil
	})
}
