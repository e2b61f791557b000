package provisioning

// defaultRules is the initial access policy: public read and write on all
// documents, everything else denied. A zero-friction default; production
// deployments are expected to tighten it.
const defaultRules = `rules_version = '2';
service cloud.firestore {
  match /databases/{database}/documents {
    match /{document=**} {
      allow read, write: if true;
    }
  }
}
`

// RulesPhase compiles the default ruleset and releases it as the active
// version for the document database. Best-effort with the same rationale as
// DatabasePhase; the two platform calls are independently best-effort.
type RulesPhase struct{}

// Stage implements the Phase interface.
func (p *RulesPhase) Stage() Stage { return StageRules }

// Provision implements the Phase interface. Never returns an error.
func (p *RulesPhase) Provision(ctx *Context) error {
	client := ctx.State.Client
	projectID := ctx.State.ProjectID

	rulesetName, err := client.CreateRuleset(ctx, projectID, defaultRules)
	if err != nil {
		ctx.State.Warn(ctx.Observer, StageRules, "creating ruleset: %v", err)
		return nil
	}

	if err := client.ReleaseRuleset(ctx, projectID, rulesetName); err != nil {
		ctx.State.Warn(ctx.Observer, StageRules, "releasing ruleset %s: %v", rulesetName, err)
		return nil
	}

	ctx.Observer.Event(Event{
		Type:     EventResourceCreated,
		Stage:    StageRules,
		Resource: rulesetName,
		Message:  "default rules released",
	})
	return nil
}
