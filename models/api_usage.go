package models

// APIUsageRecord is the advisory per-day call counter for one remote
// service. One row per (service, date); the count only ever grows.
//
// The tracker is observational, not a gate: races between concurrent
// increments are tolerated and the counter is never used to block calls.
type APIUsageRecord struct {
	Service string `json:"service"`
	// Date is the calendar day in UTC, formatted as "2006-01-02".
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// UsageDateLayout is the format of APIUsageRecord.Date.
const UsageDateLayout = "2006-01-02"
