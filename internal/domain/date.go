package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateKey representa um dia de calendário, sem fuso horário.
// É o único parâmetro de consulta usado pelos integradores.
type DateKey struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDateKey converte uma string YYYY-MM-DD em DateKey, rejeitando datas inexistentes.
func ParseDateKey(value string) (DateKey, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DateKey{}, NewValidationError("date", "date parameter required")
	}

	parsed, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return DateKey{}, NewValidationError("date", fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", value))
	}

	return DateKeyFromTime(parsed), nil
}

// DateKeyFromTime extrai o dia de calendário de um instante, no fuso do próprio instante.
func DateKeyFromTime(t time.Time) DateKey {
	year, month, day := t.Date()
	return DateKey{Year: year, Month: month, Day: day}
}

func (d DateKey) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Start retorna a meia-noite do dia no fuso informado (UTC quando nil).
func (d DateKey) Start(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Interval retorna o intervalo semiaberto [início, início+1 dia).
func (d DateKey) Interval(loc *time.Location) (time.Time, time.Time) {
	start := d.Start(loc)
	return start, start.AddDate(0, 0, 1)
}

// AddDays desloca a data mantendo a semântica de calendário.
func (d DateKey) AddDays(days int) DateKey {
	return DateKeyFromTime(d.Start(time.UTC).AddDate(0, 0, days))
}

func (d DateKey) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Compact formata a data sem separadores (YYYYMMDD).
func (d DateKey) Compact() string {
	return strings.ReplaceAll(d.String(), "-", "")
}

func (d DateKey) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *DateKey) UnmarshalJSON(data []byte) error {
	parsed, err := ParseDateKey(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
