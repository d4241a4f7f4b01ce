package response

// DashboardStatsResponse keys match what the dashboard page reads.
type DashboardStatsResponse struct {
	TotalPayments int64 `json:"totalPayments"`
	TotalStudents int64 `json:"totalStudents"`
	TotalTours    int64 `json:"totalTours"`
}
