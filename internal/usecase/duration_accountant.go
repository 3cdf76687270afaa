package usecase

import (
	"context"
	"errors"
	"math"
	"time"

	"rcp_tracker/internal/domain/entities"
	"rcp_tracker/internal/usecase/interfaces"
)

const (
	DefaultHoursPrecision    = 4
	DefaultCurrencyPrecision = 2
	variancePrecision        = 2
)

// DurationAccountant derives elapsed time and planned-vs-actual figures from
// stored interval logs. It never keeps a running clock.
type DurationAccountant struct {
	rates             interfaces.IRateLookup
	hoursPrecision    int
	currencyPrecision int
}

func NewDurationAccountant(rates interfaces.IRateLookup, hoursPrecision, currencyPrecision int) *DurationAccountant {
	if hoursPrecision <= 0 {
		hoursPrecision = DefaultHoursPrecision
	}
	if currencyPrecision <= 0 {
		currencyPrecision = DefaultCurrencyPrecision
	}
	return &DurationAccountant{rates: rates, hoursPrecision: hoursPrecision, currencyPrecision: currencyPrecision}
}

// TotalSeconds sums closed logs and, for an open log, the time up to now.
// The open part is only meant for live display.
func (a *DurationAccountant) TotalSeconds(logs []entities.IntervalLog, now time.Time) int64 {
	var total time.Duration
	for _, l := range logs {
		total += l.Duration(now)
	}
	return int64(total / time.Second)
}

// ClosedSeconds sums closed logs only.
func (a *DurationAccountant) ClosedSeconds(logs []entities.IntervalLog) int64 {
	var total time.Duration
	for _, l := range logs {
		if l.Open() {
			continue
		}
		total += l.Duration(*l.EndedAt)
	}
	return int64(total / time.Second)
}

// Finalize computes the frozen figures of a task. Open logs are ignored; the
// state machine closes them before calling it.
func (a *DurationAccountant) Finalize(ctx context.Context, task entities.Task, logs []entities.IntervalLog) (entities.Figures, error) {
	actual := roundTo(float64(a.ClosedSeconds(logs))/3600, a.hoursPrecision)
	figures := entities.Figures{
		ActualHours:     actual,
		VariancePercent: VariancePercent(actual, task.EstimatedTimeHours),
	}

	if a.rates == nil {
		return figures, nil
	}
	rate, err := a.rates.HourlyRate(ctx, interfaces.RateQuery{
		TaskID:        task.ID,
		WorkstationID: task.WorkstationID,
		ServiceID:     task.ServiceID,
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrRateNotFound) {
			return figures, nil
		}
		return entities.Figures{}, err
	}
	cost := roundTo(rate*actual, a.currencyPrecision)
	figures.ActualCost = &cost
	return figures, nil
}

// VariancePercent is (actual - estimate) / estimate * 100. Negative means
// faster than estimated. It is nil when there is no positive estimate.
func VariancePercent(actualHours, estimatedHours float64) *float64 {
	if estimatedHours <= 0 {
		return nil
	}
	v := roundTo((actualHours-estimatedHours)/estimatedHours*100, variancePrecision)
	if v == 0 {
		v = 0 // drop negative zero
	}
	return &v
}

func ClassifyVariance(variance *float64) entities.VarianceStatus {
	switch {
	case variance == nil:
		return entities.VarianceUnavailable
	case *variance < 0:
		return entities.VarianceFaster
	case *variance > 0:
		return entities.VarianceSlower
	default:
		return entities.VarianceOnTime
	}
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
