package leave

// LeaveStats summarizes whatever subset of requests it is given.
type LeaveStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// ComputeLeaveStats counts requests per status. Pass filtered requests to get filter-scoped stats.
func ComputeLeaveStats(requests []LeaveRequest) LeaveStats {
	stats := LeaveStats{Total: len(requests)}
	for _, r := range requests {
		switch r.Status {
		case LeaveRequestStatusPending:
			stats.Pending++
		case LeaveRequestStatusApproved:
			stats.Approved++
		case LeaveRequestStatusRejected:
			stats.Rejected++
		}
	}
	return stats
}
