package provisioning

import (
	"fmt"
	"time"
)

// Phase is one step of the provisioning pipeline.
type Phase interface {
	// Stage returns the stage this phase implements.
	Stage() Stage

	// Provision executes the phase. Returning an error aborts the pipeline;
	// best-effort phases record warnings on the state and return nil.
	Provision(ctx *Context) error
}

// Phases returns the full pipeline in execution order. Every phase strictly
// depends on its predecessor's output, so there is nothing to parallelize
// within one run.
func Phases() []Phase {
	return []Phase{
		&AuthPhase{},
		&ProjectPhase{},
		&AppPhase{},
		&DatabasePhase{},
		&RulesPhase{},
	}
}

// RunPhases executes the phases sequentially, stopping at the first fatal
// error. No compensating rollback is attempted for already-created
// resources.
func RunPhases(ctx *Context, phases []Phase) error {
	start := time.Now()
	ctx.Observer.Printf("starting provisioning with %d stages", len(phases))

	for _, phase := range phases {
		stageStart := time.Now()
		logStageStart(ctx.Observer, phase.Stage())

		if err := phase.Provision(ctx); err != nil {
			logStageFailed(ctx.Observer, phase.Stage(), err)
			return fmt.Errorf("%s stage failed: %w", phase.Stage(), err)
		}

		logStageComplete(ctx.Observer, phase.Stage(), time.Since(stageStart))
	}

	ctx.Observer.Printf("provisioning completed in %v", time.Since(start).Round(time.Millisecond))
	return nil
}
