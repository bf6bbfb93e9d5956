// Package services implements the driving port interfaces.
// Services contain the core business logic - the ingestion pipeline,
// federated search and answer composition - and orchestrate calls to
// driven ports (adapters).
//
// All collaborator handles are injected through constructors; nothing is
// looked up from ambient globals, so every service can be exercised with
// fakes in tests.
package services
