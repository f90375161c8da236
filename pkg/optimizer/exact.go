package optimizer

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"gonum.org/v1/gonum/floats"
)

// exactSolver models the lineup as a 0/1 assignment problem and solves it
// with branch and bound over fixed-point integer weights. Each slot takes
// exactly one player, each player fills at most one slot.
type exactSolver struct {
	timeBudget time.Duration
	workers    int
	scale      int
}

func newExactSolver(timeBudget time.Duration, workers, scale int) *exactSolver {
	if workers < 1 {
		workers = 1
	}
	if scale < 1 {
		scale = 1000
	}
	return &exactSolver{timeBudget: timeBudget, workers: workers, scale: scale}
}

// incumbent is the best complete assignment found so far, shared across
// search workers. score mirrors the locked state for cheap pruning reads.
type incumbent struct {
	mu     sync.Mutex
	score  atomic.Int64
	found  bool
	chosen []int
}

func (in *incumbent) update(score int64, chosen []int) {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.found && score < in.score.Load() {
		return
	}
	// Among equal scores, keep the lexicographically smallest assignment.
	if in.found && score == in.score.Load() && !lessChosen(chosen, in.chosen) {
		return
	}
	in.found = true
	in.score.Store(score)
	in.chosen = append(in.chosen[:0], chosen...)
}

func lessChosen(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

type bbSearch struct {
	players  []Player
	weights  []int64
	cands    [][]int // candidate player indices per slot
	order    []int   // slot visit order, fewest candidates first
	suffix   []int64 // optimistic remaining score from each depth
	deadline time.Time
	best     *incumbent
	expired  atomic.Bool
}

func (s *exactSolver) Solve(players []Player, slots []Slot) (*Result, error) {
	if len(players) < len(slots) {
		return nil, fmt.Errorf("assignment infeasible: %d players for %d slots", len(players), len(slots))
	}

	weights := make([]int64, len(players))
	for i, player := range players {
		weights[i] = int64(math.Round(player.ProjectedPoints * float64(s.scale)))
	}

	cands := buildCandidates(players, slots, weights)

	// Visit constrained slots first to fail fast.
	order := make([]int, len(slots))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return len(cands[order[a]]) < len(cands[order[b]])
	})

	suffix := make([]int64, len(slots)+1)
	for k := len(slots) - 1; k >= 0; k-- {
		suffix[k] = suffix[k+1] + weights[cands[order[k]][0]]
	}

	search := &bbSearch{
		players:  players,
		weights:  weights,
		cands:    cands,
		order:    order,
		suffix:   suffix,
		deadline: time.Now().Add(s.timeBudget),
		best:     &incumbent{},
	}
	search.best.score.Store(-1)

	s.run(search)

	if !search.best.found {
		if search.expired.Load() {
			return nil, fmt.Errorf("no feasible assignment found within %s budget", s.timeBudget)
		}
		return nil, fmt.Errorf("no feasible assignment exists")
	}

	return buildResult(players, slots, search.best.chosen), nil
}

// run fans the first slot's candidates out over a bounded worker pool. Each
// worker searches its branches depth first against the shared incumbent.
func (s *exactSolver) run(search *bbSearch) {
	firstSlot := search.order[0]
	firstCands := search.cands[firstSlot]

	workers := s.workers
	if workers > len(firstCands) {
		workers = len(firstCands)
	}

	var next int64 = -1
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			chosen := make([]int, len(search.cands))
			for i := range chosen {
				chosen[i] = -1
			}
			used := make([]bool, len(search.players))
			nodes := 0
			for {
				i := atomic.AddInt64(&next, 1)
				if int(i) >= len(firstCands) || search.expired.Load() {
					return
				}
				playerIdx := firstCands[i]
				chosen[firstSlot] = playerIdx
				used[playerIdx] = true
				search.dfs(1, search.weights[playerIdx], chosen, used, &nodes)
				used[playerIdx] = false
				chosen[firstSlot] = -1
			}
		}()
	}
	wg.Wait()
}

func (b *bbSearch) dfs(depth int, score int64, chosen []int, used []bool, nodes *int) {
	*nodes++
	if *nodes%512 == 0 && time.Now().After(b.deadline) {
		b.expired.Store(true)
	}
	if b.expired.Load() {
		return
	}

	if depth == len(b.order) {
		b.best.update(score, chosen)
		return
	}

	// Optimistic bound: even ignoring player reuse, the remaining slots
	// cannot beat the incumbent from here.
	if best := b.best.score.Load(); best >= 0 && score+b.suffix[depth] <= best {
		return
	}

	slotIdx := b.order[depth]
	for _, playerIdx := range b.cands[slotIdx] {
		if used[playerIdx] {
			continue
		}
		chosen[slotIdx] = playerIdx
		used[playerIdx] = true
		b.dfs(depth+1, score+b.weights[playerIdx], chosen, used, nodes)
		used[playerIdx] = false
		chosen[slotIdx] = -1
		if b.expired.Load() {
			return
		}
	}
}

// buildCandidates computes the eligible player indices for each slot. A slot
// with no eligible player in the pool accepts the whole pool so that no slot
// is ever starved. Candidates are ordered by scaled weight, ties by player
// id, for deterministic search.
func buildCandidates(players []Player, slots []Slot, weights []int64) [][]int {
	cands := make([][]int, len(slots))
	for slotIdx, slot := range slots {
		var eligible []int
		for playerIdx, player := range players {
			if player.Positions.Intersects(slot.Eligible) {
				eligible = append(eligible, playerIdx)
			}
		}
		if len(eligible) == 0 {
			eligible = make([]int, len(players))
			for i := range eligible {
				eligible[i] = i
			}
		}
		sort.SliceStable(eligible, func(a, b int) bool {
			if weights[eligible[a]] != weights[eligible[b]] {
				return weights[eligible[a]] > weights[eligible[b]]
			}
			return players[eligible[a]].ID < players[eligible[b]].ID
		})
		cands[slotIdx] = eligible
	}
	return cands
}

// buildResult converts a chosen player index per slot into assignments in the
// caller's slot order. A slot the solver left unresolved falls back to the
// highest projected eligible player still unused; this local pick is not
// re-propagated to other slots.
func buildResult(players []Player, slots []Slot, chosen []int) *Result {
	assignments := make([]Assignment, 0, len(slots))
	scores := make([]float64, 0, len(slots))

	used := make(map[int]bool, len(slots))
	for _, playerIdx := range chosen {
		if playerIdx >= 0 {
			used[playerIdx] = true
		}
	}

	for slotIdx, slot := range slots {
		playerIdx := chosen[slotIdx]
		if playerIdx < 0 {
			playerIdx = pickBestForSlot(players, slot, used)
			used[playerIdx] = true
		}
		player := players[playerIdx]
		assignments = append(assignments, Assignment{
			SlotID:          slot.ID,
			SlotName:        slot.DisplayName,
			PlayerID:        player.ID,
			ProjectedPoints: player.ProjectedPoints,
		})
		scores = append(scores, player.ProjectedPoints)
	}

	return &Result{
		Assignments: assignments,
		TotalPoints: floats.Sum(scores),
	}
}

// pickBestForSlot selects the highest projected unused player eligible for
// the slot, widening to the whole unused pool when no eligible player
// remains. Ties break on player id.
func pickBestForSlot(players []Player, slot Slot, used map[int]bool) int {
	best := -1
	pick := func(eligibleOnly bool) {
		for playerIdx, player := range players {
			if used[playerIdx] {
				continue
			}
			if eligibleOnly && !player.Positions.Intersects(slot.Eligible) {
				continue
			}
			if best < 0 ||
				player.ProjectedPoints > players[best].ProjectedPoints ||
				(player.ProjectedPoints == players[best].ProjectedPoints && player.ID < players[best].ID) {
				best = playerIdx
			}
		}
	}
	pick(true)
	if best < 0 {
		pick(false)
	}
	return best
}
