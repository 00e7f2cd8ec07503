// Package conflict provides read-only access to the server-supplied
// conflict and history datasets, plus the duplicate-allocation scan used
// to flag double-booked adjudicators.
//
// Conflicts are precomputed by the serving view and never change during a
// session; the accessor only distinguishes "no conflicts recorded" from
// "conflict data not supplied", which callers need in order to avoid
// rendering a clean slate while the data is simply absent.
package conflict
