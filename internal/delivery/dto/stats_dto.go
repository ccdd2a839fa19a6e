package dto

// DashboardStatsResponse is the aggregate snapshot served to the dashboard.
// It may come from the cache; CachedAt is the compute time in RFC 3339.
type DashboardStatsResponse struct {
	ActiveEmployees   int64            `json:"active_employees"`
	ActiveDepartments int64            `json:"active_departments"`
	ActivePositions   int64            `json:"active_positions"`
	ActiveLocations   int64            `json:"active_locations"`
	ShiftsByStatus    map[string]int64 `json:"shifts_by_status"`
	EmployeesByType   map[string]int64 `json:"employees_by_type"`
	AvgHourlyRate     float64          `json:"avg_hourly_rate"`
	MinHourlyRate     float64          `json:"min_hourly_rate"`
	MaxHourlyRate     float64          `json:"max_hourly_rate"`
	CachedAt          string           `json:"cached_at"`
}
