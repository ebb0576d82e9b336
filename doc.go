// Package classwork gathers three small exercises written as a single
// module:
//   - rational: exact fractions on arbitrary precision integers, always
//     kept in lowest terms with a positive denominator.
//   - stock: a validated stock ledger of named, quantified and priced
//     products (Composition).
//   - academy: courses, teachers, rooms and topics persisted in SQL and
//     browsed from a text menu.
//
// This root package only holds the error kinds shared by all of them. Every
// error returned by the exercises wraps one of these sentinels so callers can
// test them with errors.Is.
//
// The `cw` command-line tool is the front door to all three.
package classwork
