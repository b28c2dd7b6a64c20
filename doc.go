// Package journal provides the types and logic of a single-user trading
// journal: it records discrete executions against capital accounts and
// derives performance statistics from them.
//
// The core functionalities include:
//   - Data Model: Account and Trade records with closed enumerations for
//     side, session, bias and setup tags, and a draft builder that only
//     yields complete, validated trades.
//   - Statistics Engine: a pure derivation from a trade set and an account
//     to a performance snapshot (win rate, expectancy, profit factor,
//     equity curve, per-setup R attribution).
//   - Data Persistence: two JSON-array documents replaced whole on every
//     mutation, plus a comma-separated export format.
//   - Coaching Client: a fail-soft request for a natural-language review of
//     recent trades from a text-generation provider.
//
// This package serves as the foundational logic for the `qej` command-line
// tool.
package journal
