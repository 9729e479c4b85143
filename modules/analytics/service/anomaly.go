package service

import "crewhub/modules/analytics/repository"

type Severity string

const (
	SeverityNormal   Severity = "normal"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

const (
	anomalyWarningAt  = 30.0
	anomalyCriticalAt = 50.0

	penaltyWarning  = 15
	penaltyCritical = 30
)

// Anomaly compares one metric across two equal-length periods. Deviation is
// nil when the previous period has no signal.
type Anomaly struct {
	Metric    string   `json:"metric"`
	Current   float64  `json:"current"`
	Previous  float64  `json:"previous"`
	Deviation *float64 `json:"deviation_percent,omitempty"`
	Severity  Severity `json:"severity"`
}

type AnomalyReport struct {
	Anomalies   []Anomaly `json:"anomalies"`
	HealthScore int       `json:"health_score"`
}

func severityFor(deviation *float64) Severity {
	if deviation == nil {
		return SeverityNormal
	}
	abs := *deviation
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= anomalyCriticalAt:
		return SeverityCritical
	case abs >= anomalyWarningAt:
		return SeverityWarning
	default:
		return SeverityNormal
	}
}

func compareMetric(name string, current float64, previous float64) Anomaly {
	deviation := CalcDeviationPercent(current, previous)
	return Anomaly{
		Metric:    name,
		Current:   current,
		Previous:  previous,
		Deviation: deviation,
		Severity:  severityFor(deviation),
	}
}

// DetectAnomalies compares the current period against the previous one for
// attendance rate, post volume, active members and expense, and scores group
// health as 100 minus a penalty per finding.
func DetectAnomalies(current *repository.PeriodCounts, previous *repository.PeriodCounts, activeNow int, activeBefore int) *AnomalyReport {
	currentRate, _ := Rate(current.Present, current.Marked)
	previousRate, _ := Rate(previous.Present, previous.Marked)

	anomalies := []Anomaly{
		compareMetric("attendance_rate", currentRate, previousRate),
		compareMetric("post_count", float64(current.Posts+current.Comments), float64(previous.Posts+previous.Comments)),
		compareMetric("active_members", float64(activeNow), float64(activeBefore)),
		compareMetric("expense", float64(current.Expense), float64(previous.Expense)),
	}

	health := 100
	for _, a := range anomalies {
		switch a.Severity {
		case SeverityWarning:
			health -= penaltyWarning
		case SeverityCritical:
			health -= penaltyCritical
		}
	}

	return &AnomalyReport{
		Anomalies:   anomalies,
		HealthScore: clampScore(health),
	}
}
