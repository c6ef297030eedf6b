// Package models defines the core domain models for a tontine (rotating
// savings group).
//
// # Models
//
//   - Group: a tontine with a fixed per-cycle contribution amount
//   - Member: a participant of exactly one group, identified by email
//   - Cycle: one payout round of a group, numbered 1..N
//   - Payment: a member's contribution to one cycle
//   - Role: the caller's permission tier in a group (derived, never stored)
//
// # Design Principles
//
// 1. **IDs, not pointers**: relationships are expressed as ID strings
// 2. **Store owns persistence**: models carry no storage logic
// 3. **Derived state stays derived**: roles and ledgers are computed on demand
//
// # Cycle Lifecycle
//
// A cycle only ever moves forward:
//
//	upcoming -> active -> completed
//
// At most one cycle per group is active at any time.
package models
