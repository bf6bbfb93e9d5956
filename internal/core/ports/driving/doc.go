// Package driving defines the interfaces through which external actors
// drive the core (primary/inbound ports).
//
// The CLI, the HTTP layer, the TUI and the MCP server all talk to the
// core exclusively through these interfaces, which makes them trivially
// substitutable with mocks in tests.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package, any driven port implementation
package driving
