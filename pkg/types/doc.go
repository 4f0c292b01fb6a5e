// Package types defines the public data model for layout planning: section
// descriptions, run parameters, and the resulting placements.
//
// This package only exposes plain data. The planning pipeline itself lives in
// layout/plan; text parsing and emission live in internal/laytext.
//
// Design goals:
//   - Flat, copyable records instead of object graphs.
//   - A distinguishable unknown-address sentinel (UnknownAddr) that is not a
//     valid address; zero is a valid address.
//   - No dependencies beyond the standard library.
package types
