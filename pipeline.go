package cambium

import "context"

// Pipeline is an ordered chain of actions where each stage consumes the
// previous stage's result. It exists only for the duration of the chained
// call: build it, run it once, discard it.
//
// The pipeline itself provides no atomicity across stages: every stage
// runs via WithoutTransaction, so each stage's own transactional
// discipline is independent. Wrap Run in Executor.InTransaction when the
// whole chain must commit or roll back together.
type Pipeline struct {
	exec    *Executor
	initial Action
	stages  []Factory
}

// StartWith begins a pipeline at the given action.
func (e *Executor) StartWith(a Action) *Pipeline {
	return &Pipeline{exec: e, initial: a}
}

// Pipe appends a stage. The factory receives the previous stage's result
// and is not invoked until every earlier stage has succeeded.
func (p *Pipeline) Pipe(f Factory) *Pipeline {
	p.stages = append(p.stages, f)
	return p
}

// Run executes the stages strictly left to right and returns the final
// result. The first failure (from a stage factory or a Handle) aborts
// immediately: no later stage is constructed or invoked, and the
// error propagates unmodified. Effects already committed by earlier
// stages are untouched.
func (p *Pipeline) Run(ctx context.Context) (any, error) {
	result, err := p.exec.WithoutTransaction(ctx, p.initial)
	if err != nil {
		return nil, err
	}

	for i, factory := range p.stages {
		next, err := factory(result)
		if err != nil {
			p.exec.logger.DebugContext(ctx, "pipeline aborted building stage", "stage", i+1, "err", err)
			return nil, err
		}
		result, err = p.exec.WithoutTransaction(ctx, next)
		if err != nil {
			p.exec.logger.DebugContext(ctx, "pipeline aborted", "stage", i+1, "err", err)
			return nil, err
		}
	}
	return result, nil
}
