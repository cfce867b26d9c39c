package scenario

// DefaultStep is the default granularity of the optimizer's salary sweep, in
// francs. Finer steps can move the reported optimum slightly; the step is a
// tunable, not a contract.
const DefaultStep = 1000.0

// Optimizer performs a dense 1-D sweep over candidate salary levels. The
// objective is piecewise (the strict rule kicks in at the minimum salary and
// the tariffs are themselves piecewise), so a brute-force grid beats any
// closed-form approach that would have to special-case every bracket
// boundary.
type Optimizer struct {
	eval *Evaluator
	step float64
}

func NewOptimizer(eval *Evaluator, step float64) *Optimizer {
	if step <= 0 {
		step = DefaultStep
	}
	return &Optimizer{eval: eval, step: step}
}

// OptimalMix returns the salary/dividend split with the highest net proceeds
// under the strict minimum-salary rule. Candidates run from zero to the
// payout cap in fixed steps, plus the cap itself when it falls off the grid.
// Ties keep the first (lowest-salary) candidate, so the result is
// deterministic.
func (o *Optimizer) OptimalMix(p Params) Result {
	cap := p.payoutCap()

	best := o.eval.salaryDividendAt(p, 0)
	for salary := o.step; salary < cap; salary += o.step {
		if candidate := o.eval.salaryDividendAt(p, salary); candidate.NetToOwner > best.NetToOwner {
			best = candidate
		}
	}
	if cap > 0 {
		if candidate := o.eval.salaryDividendAt(p, cap); candidate.NetToOwner > best.NetToOwner {
			best = candidate
		}
	}
	return best
}
