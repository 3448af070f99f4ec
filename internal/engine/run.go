package engine

// Run drains every bot's queued operations by calling Step until the
// fleet either finishes, runs dry of work, or exceeds cfg.MaxSteps.
// The caller is expected to have already loaded each bot's queue
// (typically via internal/planner and internal/fillplan); Run itself
// never plans.
func (s *State) Run(cfg Config) (Metrics, error) {
	idle := 0
	for i := 0; i < cfg.MaxSteps; i++ {
		if s.Halted {
			break
		}
		progressed, err := s.Step()
		if err != nil {
			return s.Metrics(), err
		}
		if !progressed {
			if s.IsFinished() {
				break
			}
			idle++
			if idle >= cfg.StuckThreshold {
				return s.Metrics(), &StuckError{Ticks: idle}
			}
			continue
		}
		idle = 0
	}
	return s.Metrics(), nil
}

// Metrics snapshots the run so far, usable mid-run by a driver that steps
// State manually instead of calling Run.
func (s *State) Metrics() Metrics {
	return Metrics{
		StepsExecuted:  s.Ticks,
		Energy:         s.Energy,
		FissionCount:   s.FissionCount,
		FusionCount:    s.FusionCount,
		ReplanCount:    s.ReplanCount,
		PeakFleetSize:  s.peakFleet,
		FinalHarmonics: s.HarmonicsHigh,
	}
}
