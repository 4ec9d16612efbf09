package responses

type TimelineSegment struct {
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Subject string `json:"subject"`
}

type ProcessMetrics struct {
	Waiting    int `json:"waiting"`
	Turnaround int `json:"turnaround"`
	Response   int `json:"response"`
	Completion int `json:"completion"`
}

type OverallMetrics struct {
	AverageWaitingTime    float64 `json:"average_waiting_time"`
	AverageTurnaroundTime float64 `json:"average_turnaround_time"`
	AverageResponseTime   float64 `json:"average_response_time"`
	CpuThroughput         float64 `json:"cpu_throughput"`
	CpuUtilizationPercent float64 `json:"cpu_utilization_percent"`
	TotalTime             int     `json:"total_time"`
}

type SimulateResponse struct {
	Algorithm  string                    `json:"algorithm"`
	Timeline   []TimelineSegment         `json:"timeline"`
	PerProcess map[string]ProcessMetrics `json:"per_process"`
	Overall    OverallMetrics            `json:"overall"`
	AsciiGantt string                    `json:"ascii"`
	SvgGantt   string                    `json:"svg"`
}
