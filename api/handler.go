package api

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"procsim/config"
	"procsim/internal/loader"
	"procsim/internal/render"
	"procsim/internal/requests"
	"procsim/internal/responses"
	"procsim/internal/sim"
)

type SchedulerHandler interface {
	Simulate(ctx *fiber.Ctx) error
	SimulateText(ctx *fiber.Ctx) error
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SimulatorConfig
}

func NewSchedulerHandlerImpl(config *config.SimulatorConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

// Simulate runs the algorithm named in the request body over the supplied
// descriptors.
func (s *SchedulerHandlerImpl) Simulate(ctx *fiber.Ctx) error {
	var request requests.SimulateRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}
	algorithm, err := sim.ParseAlgorithm(request.Algorithm)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return s.runSimulation(ctx, algorithm, request)
}

// SimulateText accepts a raw text body (CSV with a header row, a JSON array,
// or inline pid,arrival,burst lines) with algo and quantum query parameters.
func (s *SchedulerHandlerImpl) SimulateText(ctx *fiber.Ctx) error {
	algorithm, err := sim.ParseAlgorithm(ctx.Query("algo", string(sim.FCFS)))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	procs, err := loader.Parse(ctx.Body())
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	quantum := s.config.RoundRobinTimeQuantum
	if raw := ctx.Query("quantum"); raw != "" {
		quantum, err = strconv.Atoi(raw)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "quantum must be an integer"})
		}
	}

	result, err := sim.Run(algorithm, procs, quantum)
	if err != nil {
		return s.simulationError(ctx, err)
	}
	return ctx.JSON(buildResponse(result))
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.fixedAlgorithm(ctx, sim.FCFS)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.fixedAlgorithm(ctx, sim.SJF)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.fixedAlgorithm(ctx, sim.RR)
}

// AllAlgorithms runs every discipline over one descriptor set; each run gets
// its own working copies, so the responses are independent.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.SimulateRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}
	procs, err := buildProcesses(request.Processes)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	quantum := s.quantumFor(request)

	all := make(map[string]responses.SimulateResponse, 3)
	for _, algorithm := range []sim.Algorithm{sim.FCFS, sim.SJF, sim.RR} {
		result, err := sim.Run(algorithm, procs, quantum)
		if err != nil {
			return s.simulationError(ctx, err)
		}
		all[string(algorithm)] = buildResponse(result)
	}
	return ctx.JSON(all)
}

func (s *SchedulerHandlerImpl) fixedAlgorithm(ctx *fiber.Ctx, algorithm sim.Algorithm) error {
	var request requests.SimulateRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}
	return s.runSimulation(ctx, algorithm, request)
}

func (s *SchedulerHandlerImpl) runSimulation(ctx *fiber.Ctx, algorithm sim.Algorithm, request requests.SimulateRequest) error {
	procs, err := buildProcesses(request.Processes)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	result, err := sim.Run(algorithm, procs, s.quantumFor(request))
	if err != nil {
		return s.simulationError(ctx, err)
	}
	return ctx.JSON(buildResponse(result))
}

func (s *SchedulerHandlerImpl) quantumFor(request requests.SimulateRequest) int {
	if request.Quantum != 0 {
		return request.Quantum
	}
	return s.config.RoundRobinTimeQuantum
}

// simulationError distinguishes caller mistakes from engine defects: a
// missing-state failure means the run itself is broken and gets a 500.
func (s *SchedulerHandlerImpl) simulationError(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, sim.ErrMissingSimulationState) {
		log.Println("simulation defect:", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal simulation error"})
	}
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}

func buildProcesses(descriptors []requests.ProcessDescriptor) ([]*sim.Process, error) {
	procs := make([]*sim.Process, 0, len(descriptors))
	for _, d := range descriptors {
		p, err := sim.NewProcess(d.PID, d.Arrival, d.Burst)
		if err != nil {
			return nil, err
		}
		procs = append(procs, p)
	}
	return procs, nil
}

func buildResponse(result *sim.Result) responses.SimulateResponse {
	timeline := make([]responses.TimelineSegment, 0, len(result.Timeline))
	for _, seg := range result.Timeline {
		timeline = append(timeline, responses.TimelineSegment{
			Start:   seg.Start,
			End:     seg.End,
			Subject: seg.Subject(),
		})
	}

	perProcess := make(map[string]responses.ProcessMetrics, len(result.PerProcess))
	for pid, m := range result.PerProcess {
		perProcess[pid] = responses.ProcessMetrics{
			Waiting:    m.Waiting,
			Turnaround: m.Turnaround,
			Response:   m.Response,
			Completion: m.Completion,
		}
	}

	return responses.SimulateResponse{
		Algorithm:  string(result.Algorithm),
		Timeline:   timeline,
		PerProcess: perProcess,
		Overall: responses.OverallMetrics{
			AverageWaitingTime:    result.Summary.AvgWaiting,
			AverageTurnaroundTime: result.Summary.AvgTurnaround,
			AverageResponseTime:   result.Summary.AvgResponse,
			CpuThroughput:         result.Summary.Throughput,
			CpuUtilizationPercent: result.Summary.CPUUtilization,
			TotalTime:             result.Summary.TotalTime,
		},
		AsciiGantt: render.Gantt(result.Timeline),
		SvgGantt:   render.SVGGantt(result.Timeline),
	}
}
