package requests

type ProcessDescriptor struct {
	PID     string `json:"pid"`
	Arrival int    `json:"arrival"`
	Burst   int    `json:"burst"`
}

type SimulateRequest struct {
	Algorithm string              `json:"algo"`
	Quantum   int                 `json:"quantum,omitempty"`
	Processes []ProcessDescriptor `json:"procs"`
}
