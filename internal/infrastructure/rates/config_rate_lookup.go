package rates

import (
	"context"

	"rcp_tracker/internal/config"
	"rcp_tracker/internal/usecase/interfaces"
)

// ConfigRateLookup resolves hourly rates from the static rates table.
type ConfigRateLookup struct {
	defaultHourly float64
	workstations  map[string]float64
	services      map[string]float64
}

var _ interfaces.IRateLookup = (*ConfigRateLookup)(nil)

func NewConfigRateLookup(cfg config.RatesConfig) *ConfigRateLookup {
	l := &ConfigRateLookup{
		defaultHourly: cfg.DefaultHourly,
		workstations:  make(map[string]float64, len(cfg.Workstations)),
		services:      make(map[string]float64, len(cfg.Services)),
	}
	for k, v := range cfg.Workstations {
		l.workstations[k] = v
	}
	for k, v := range cfg.Services {
		l.services[k] = v
	}
	return l
}

// HourlyRate picks the service rate, then the workstation rate, then the
// default. A zero default means no rate is configured.
func (l *ConfigRateLookup) HourlyRate(_ context.Context, q interfaces.RateQuery) (float64, error) {
	if rate, ok := l.services[q.ServiceID]; ok {
		return rate, nil
	}
	if rate, ok := l.workstations[q.WorkstationID]; ok {
		return rate, nil
	}
	if l.defaultHourly > 0 {
		return l.defaultHourly, nil
	}
	return 0, interfaces.ErrRateNotFound
}
