package entity

// StatusCount is a count of records grouped by status, with an optional value sum.
type StatusCount struct {
	Status string  `json:"status"`
	Count  int64   `json:"count"`
	Value  float64 `json:"value,omitempty"`
}

// AdminDashboard summarises the whole field force.
type AdminDashboard struct {
	ActiveMRs         int64         `json:"activeMRs"`
	ActiveDoctors     int64         `json:"activeDoctors"`
	ActiveProducts    int64         `json:"activeProducts"`
	PendingMRRequests int64         `json:"pendingMRRequests"`
	VisitsByStatus    []StatusCount `json:"visitsByStatus"`
	OrdersByStatus    []StatusCount `json:"ordersByStatus"`
	Revenue           float64       `json:"revenue"`
}

// MRDashboard summarises one MR's own activity.
type MRDashboard struct {
	Period          Period            `json:"period"`
	AssignedDoctors int64             `json:"assignedDoctors"`
	VisitsByStatus  []StatusCount     `json:"visitsByStatus"`
	OrdersByStatus  []StatusCount     `json:"ordersByStatus"`
	Revenue         float64           `json:"revenue"`
	Target          *MRTarget         `json:"target,omitempty"`
	Performance     *MRPerformanceLog `json:"performance,omitempty"`
}
