package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/imobops/backoffice/internal/repository"
)

func mustDec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "Jan/2025", monthLabel(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Dez/2024", monthLabel(time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)))
}

func TestBimonthOf(t *testing.T) {
	cases := map[time.Month]int{
		time.January:  1,
		time.February: 1,
		time.March:    2,
		time.June:     3,
		time.July:     4,
		time.December: 6,
	}
	for month, want := range cases {
		assert.Equal(t, want, bimonthOf(month), "month %s", month)
	}
}

func TestSemesterOf(t *testing.T) {
	assert.Equal(t, 1, semesterOf(time.June))
	assert.Equal(t, 2, semesterOf(time.July))
}

func TestRegroupMonthlyKeepsChronologicalOrder(t *testing.T) {
	rows := []repository.MonthlySalesRow{
		{Month: time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC), TotalValue: mustDec("10"), TotalUnits: 1},
		{Month: time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), TotalValue: mustDec("20"), TotalUnits: 1},
		{Month: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), TotalValue: mustDec("40"), TotalUnits: 1},
	}

	series := regroupMonthly(rows, bimonthKey, bimonthLabel)
	assert.Len(t, series, 2)
	assert.Equal(t, "6º Bim/2024", series[0].Label)
	assert.True(t, series[0].Value.Equal(mustDec("30")))
	assert.Equal(t, "1º Bim/2025", series[1].Label)
	assert.True(t, series[1].Value.Equal(mustDec("40")))
}

func TestRegroupMonthlySameIndexDifferentYears(t *testing.T) {
	rows := []repository.MonthlySalesRow{
		{Month: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), TotalValue: mustDec("10"), TotalUnits: 1},
		{Month: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), TotalValue: mustDec("20"), TotalUnits: 2},
	}

	series := regroupMonthly(rows, semesterKey, semesterLabel)
	assert.Len(t, series, 2)
	assert.Equal(t, "1º Sem/2024", series[0].Label)
	assert.Equal(t, "1º Sem/2025", series[1].Label)
}
