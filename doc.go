// Package passport provides strategy-based authentication: pluggable
// credential strategies bound to a named registry, a session identity codec,
// and an orchestrator that exposes login and session restoration to the
// request pipeline.
//
// Strategies:
//   - LocalStrategy verifies an email/password pair against the user store.
//     Password comparison happens at the store boundary so the hashing scheme
//     stays a storage concern.
//   - OAuthStrategy resolves a verified federated Profile to an internal
//     user, provisioning one on the first login for an unseen provider id.
//     Providers that perform the code/token exchange live under providers/.
//
// Outcomes:
//   - Every attempt resolves to exactly one Outcome variant: Success carries
//     the user, Rejected carries a short user-facing reason, Errored carries
//     an infrastructure fault. Rejections are normal authentication failures
//     safe to show to the user; errors must be converted into generic failure
//     responses by the caller.
//
// Sessions:
//   - SessionCodec reduces a user to its internal id for storage in a session
//     and expands it back on subsequent requests. A restored identity is
//     either fully valid or an explicit error, never a partial object.
package passport
