// Package loader turns externally supplied process descriptors (CSV, JSON or
// inline "pid,arrival,burst" lines) into validated engine processes.
package loader

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"procsim/internal/sim"
)

var (
	ErrNoProcesses  = errors.New("no processes supplied")
	ErrDuplicatePID = errors.New("duplicate pid")
	ErrBadRecord    = errors.New("malformed process record")
)

type descriptor struct {
	PID     string `json:"pid"`
	Arrival int    `json:"arrival"`
	Burst   int    `json:"burst"`
}

// FromJSON reads a JSON array of {pid, arrival, burst} descriptors.
func FromJSON(r io.Reader) ([]*sim.Process, error) {
	var descriptors []descriptor
	if err := json.NewDecoder(r).Decode(&descriptors); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRecord, err)
	}
	return build(descriptors)
}

// FromCSV reads CSV with a pid,arrival,burst header row.
func FromCSV(r io.Reader) ([]*sim.Process, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV: %v", ErrBadRecord, err)
	}
	if len(rows) == 0 {
		return nil, ErrNoProcesses
	}
	if !isHeader(rows[0]) {
		return nil, fmt.Errorf("%w: expected pid,arrival,burst header row", ErrBadRecord)
	}

	descriptors := make([]descriptor, 0, len(rows)-1)
	for _, row := range rows[1:] {
		d, err := parseRecord(row)
		if err != nil {
			return nil, err
		}
		descriptors = append(descriptors, d)
	}
	return build(descriptors)
}

// FromInline reads one pid,arrival,burst record per line, skipping blanks.
func FromInline(text string) ([]*sim.Process, error) {
	var descriptors []descriptor
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		d, err := parseRecord(strings.Split(line, ","))
		if err != nil {
			return nil, err
		}
		descriptors = append(descriptors, d)
	}
	return build(descriptors)
}

// Parse sniffs the format: a JSON array, CSV with a header row, or inline
// records.
func Parse(data []byte) ([]*sim.Process, error) {
	text := strings.TrimSpace(string(data))
	if text == "" {
		return nil, ErrNoProcesses
	}
	if strings.HasPrefix(text, "[") {
		return FromJSON(strings.NewReader(text))
	}
	firstLine := text
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		firstLine = text[:i]
	}
	if isHeader(strings.Split(firstLine, ",")) {
		return FromCSV(strings.NewReader(text))
	}
	return FromInline(text)
}

func isHeader(row []string) bool {
	return len(row) >= 1 && strings.EqualFold(strings.TrimSpace(row[0]), "pid")
}

func parseRecord(fields []string) (descriptor, error) {
	if len(fields) != 3 {
		return descriptor{}, fmt.Errorf("%w: want pid,arrival,burst, got %q", ErrBadRecord, strings.Join(fields, ","))
	}
	pid := strings.TrimSpace(fields[0])
	arrival, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return descriptor{}, fmt.Errorf("%w: arrival of %s: %v", ErrBadRecord, pid, err)
	}
	burst, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return descriptor{}, fmt.Errorf("%w: burst of %s: %v", ErrBadRecord, pid, err)
	}
	return descriptor{PID: pid, Arrival: arrival, Burst: burst}, nil
}

// build validates the descriptors through the engine's constructor and
// rejects duplicate pids; uniqueness is this layer's responsibility, the
// engine assumes it.
func build(descriptors []descriptor) ([]*sim.Process, error) {
	if len(descriptors) == 0 {
		return nil, ErrNoProcesses
	}
	seen := make(map[string]bool, len(descriptors))
	procs := make([]*sim.Process, 0, len(descriptors))
	for _, d := range descriptors {
		if seen[d.PID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePID, d.PID)
		}
		seen[d.PID] = true

		p, err := sim.NewProcess(d.PID, d.Arrival, d.Burst)
		if err != nil {
			return nil, err
		}
		procs = append(procs, p)
	}
	return procs, nil
}
