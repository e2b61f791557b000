// Package provisioning implements the project provisioning pipeline.
//
// A pipeline run is a fixed linear sequence of phases: authenticate as the
// service account, create an isolated cloud project, activate the managed
// platform and register a web app, fetch the app's client configuration,
// then best-effort enable the document database and publish default access
// rules. Fatal phases short-circuit the run; best-effort phases record
// warnings on the shared state and never abort it.
//
// Runs are independent: each request holds its own token, state and client,
// there is no cross-request coordination and no rollback of partially
// created resources.
package provisioning
