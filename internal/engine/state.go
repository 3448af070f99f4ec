package engine

import (
	"sort"

	"github.com/elektrokombinacija/nanoforge/internal/geom"
	"github.com/elektrokombinacija/nanoforge/internal/nbot"
	"github.com/elektrokombinacija/nanoforge/internal/tracefmt"
	"github.com/elektrokombinacija/nanoforge/internal/voxel"
)

// fusionClaim records one FusionP or FusionS registered during a tick,
// awaiting its match at reconciliation.
type fusionClaim struct {
	bot    *nbot.Bot
	target geom.Coord
}

// State is the full simulation: the voxel grid, the live fleet, and the
// bookkeeping needed to execute one tick's worth of queued operations.
// State is not goroutine-safe; callers driving multiple independent
// instances concurrently (tools/benchmark) must not share one.
type State struct {
	Grid          *voxel.Grid
	Bots          []*nbot.Bot
	Ticks         int
	Energy        int
	HarmonicsHigh bool
	Trace         tracefmt.Trace
	Halted        bool

	FissionCount int
	FusionCount  int
	ReplanCount  int
	peakFleet    int

	currentMoves  map[geom.Coord]struct{}
	primaryFuse   []fusionClaim
	secondaryFuse []fusionClaim
	botsToAdd     []*nbot.Bot
	tickCommands  []tracefmt.Command
}

// New creates a State over grid with a single bot at the origin holding
// the full seed pool, matching the contest's initial condition.
func New(grid *voxel.Grid) *State {
	origin := geom.Coord{}
	seed := nbot.New(1, origin, nbot.DefaultSeeds())
	grid.ToggleBot(origin)
	return &State{
		Grid: grid,
		Bots: []*nbot.Bot{seed},
	}
}

// FindBot returns the bot with the given id, or nil if none matches.
func (s *State) FindBot(id int) *nbot.Bot {
	for _, b := range s.Bots {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// IsFinished reports whether the fleet has collapsed to the halted bot at
// the origin with the grid matching the target model.
func (s *State) IsFinished() bool {
	return s.Halted && s.Grid.MatchesModel()
}

// Step executes one tick: every bot with a pending action pops and runs
// it in ascending bot-id order, a per-tick energy cost is charged, and
// any Fission/Fusion choreography from this tick is reconciled. It
// returns (false, nil) if no bot had work (the caller's planner should
// replan before the next Step), and a non-nil error only for structural
// faults: an unmatched fusion or an invalid Halt.
func (s *State) Step() (bool, error) {
	if len(s.Bots) == 0 {
		return false, ErrNoBots
	}

	anyWork := false
	for _, b := range s.Bots {
		if b.HasWork() {
			anyWork = true
			break
		}
	}
	if !anyWork {
		return false, nil
	}

	s.currentMoves = make(map[geom.Coord]struct{})
	s.primaryFuse = nil
	s.secondaryFuse = nil
	s.botsToAdd = nil
	s.tickCommands = make([]tracefmt.Command, 0, len(s.Bots))
	removeSet := make(map[int]struct{})

	sort.Slice(s.Bots, func(i, j int) bool { return s.Bots[i].ID < s.Bots[j].ID })

	for _, b := range s.Bots {
		op, ok := b.PopFront()
		if !ok {
			op = nbot.Op{Kind: nbot.Wait}
		}
		if err := s.execute(b, op); err != nil {
			return false, err
		}
	}

	r := s.Grid.R
	tickCost := 3 * r * r * r
	if s.HarmonicsHigh {
		tickCost = 30 * r * r * r
	}
	s.Energy += tickCost + 20*len(s.Bots)

	if err := s.reconcileFusions(removeSet); err != nil {
		return false, err
	}
	if len(removeSet) > 0 {
		kept := s.Bots[:0]
		for _, b := range s.Bots {
			if _, gone := removeSet[b.ID]; !gone {
				kept = append(kept, b)
			}
		}
		s.Bots = kept
	}
	s.Bots = append(s.Bots, s.botsToAdd...)
	if len(s.Bots) > s.peakFleet {
		s.peakFleet = len(s.Bots)
	}

	s.Trace = append(s.Trace, s.tickCommands)
	s.Ticks++
	return true, nil
}

// reconcileFusions matches every primary claim against a secondary
// claiming the primary's own position, absorbing the secondary's seeds
// into the primary and marking it for removal. A claim left unmatched is
// a fatal InvalidFusionError.
func (s *State) reconcileFusions(removeSet map[int]struct{}) error {
	matchedSecondary := make([]bool, len(s.secondaryFuse))

	for _, p := range s.primaryFuse {
		matched := false
		for j, se := range s.secondaryFuse {
			if matchedSecondary[j] {
				continue
			}
			if se.bot.Pos == p.target && se.target == p.bot.Pos {
				p.bot.Seeds = append(p.bot.Seeds, se.bot.ID)
				p.bot.Seeds = append(p.bot.Seeds, se.bot.Seeds...)
				sort.Ints(p.bot.Seeds)
				s.Grid.ToggleBot(se.bot.Pos)
				removeSet[se.bot.ID] = struct{}{}
				s.Energy -= 24
				s.FusionCount++
				matchedSecondary[j] = true
				matched = true
				break
			}
		}
		if !matched {
			return &InvalidFusionError{BotID: p.bot.ID}
		}
	}
	for j, se := range s.secondaryFuse {
		if !matchedSecondary[j] {
			return &InvalidFusionError{BotID: se.bot.ID}
		}
	}
	return nil
}
