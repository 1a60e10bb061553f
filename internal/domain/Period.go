package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const periodLayout = "2006-01"

// Period representa um mês calendário no formato yyyy-mm
type Period struct {
	Year  int
	Month time.Month
}

// ParsePeriod converte uma string yyyy-mm em Period
func ParsePeriod(value string) (Period, error) {
	t, err := time.Parse(periodLayout, strings.TrimSpace(value))
	if err != nil {
		return Period{}, fmt.Errorf("período inválido %q: use o formato yyyy-mm", value)
	}

	return Period{Year: t.Year(), Month: t.Month()}, nil
}

// PeriodOf retorna o mês calendário de uma data
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// FiscalPeriod monta o período a partir das colunas de ano e mês fiscal
func FiscalPeriod(year, month int) Period {
	return Period{Year: year, Month: time.Month(month)}
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

func (p Period) IsZero() bool {
	return p.Year == 0 && p.Month == 0
}

// Start retorna o primeiro instante do mês em UTC
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End retorna o primeiro instante do mês seguinte (exclusivo)
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, 0)
}

// Previous retorna o mês imediatamente anterior, tratando a virada de ano
func (p Period) Previous() Period {
	return PeriodOf(p.Start().AddDate(0, -1, 0))
}

func (p Period) Next() Period {
	return PeriodOf(p.Start().AddDate(0, 1, 0))
}

func (p Period) Before(other Period) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Month < other.Month
}

// MonthsSince retorna quantos meses separam p de origin
func (p Period) MonthsSince(origin Period) int {
	return (p.Year-origin.Year)*12 + int(p.Month) - int(origin.Month)
}

func (p Period) MarshalJSON() ([]byte, error) {
	if p.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(p.String())), nil
}

func (p *Period) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if raw == "null" {
		*p = Period{}
		return nil
	}

	value, err := strconv.Unquote(raw)
	if err != nil {
		return fmt.Errorf("período inválido: %w", err)
	}

	parsed, err := ParsePeriod(value)
	if err != nil {
		return err
	}

	*p = parsed
	return nil
}
