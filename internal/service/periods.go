package service

import (
	"fmt"
	"time"

	"github.com/imobops/backoffice/internal/model"
	"github.com/imobops/backoffice/internal/repository"
)

var monthAbbrev = [12]string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

func monthLabel(t time.Time) string {
	return fmt.Sprintf("%s/%d", monthAbbrev[t.Month()-1], t.Year())
}

func bimonthOf(m time.Month) int {
	return (int(m)-1)/2 + 1
}

func semesterOf(m time.Month) int {
	if m <= time.June {
		return 1
	}
	return 2
}

func bimonthLabel(t time.Time) string {
	return fmt.Sprintf("%dº Bim/%d", bimonthOf(t.Month()), t.Year())
}

func semesterLabel(t time.Time) string {
	return fmt.Sprintf("%dº Sem/%d", semesterOf(t.Month()), t.Year())
}

type periodKey struct {
	year  int
	index int
}

// monthlySeries maps the chronological month rows straight into the report
// series.
func monthlySeries(rows []repository.MonthlySalesRow) []model.PeriodSales {
	series := make([]model.PeriodSales, 0, len(rows))
	for _, row := range rows {
		series = append(series, model.PeriodSales{
			Label: monthLabel(row.Month),
			Value: row.TotalValue,
			Units: row.TotalUnits,
		})
	}
	return series
}

// regroupMonthly folds chronological month rows into coarser buckets. The
// rows arrive ordered, so first appearance of a key fixes the bucket order.
func regroupMonthly(
	rows []repository.MonthlySalesRow,
	key func(time.Time) periodKey,
	label func(time.Time) string,
) []model.PeriodSales {
	index := make(map[periodKey]int, len(rows))
	series := make([]model.PeriodSales, 0, len(rows))
	for _, row := range rows {
		k := key(row.Month)
		pos, ok := index[k]
		if !ok {
			series = append(series, model.PeriodSales{Label: label(row.Month)})
			pos = len(series) - 1
			index[k] = pos
		}
		series[pos].Value = series[pos].Value.Add(row.TotalValue)
		series[pos].Units += row.TotalUnits
	}
	return series
}

func bimonthKey(t time.Time) periodKey {
	return periodKey{year: t.Year(), index: bimonthOf(t.Month())}
}

func semesterKey(t time.Time) periodKey {
	return periodKey{year: t.Year(), index: semesterOf(t.Month())}
}
