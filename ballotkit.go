// Package ballotkit tabulates election results from a corpus of ranked
// or single-choice ballots. A Question pairs election metadata with a
// voting method; the tabulate subpackage holds the counting engine the
// methods are built on, and pkg/ballot defines the ballot data model and
// the contract a ballot storage layer fulfils.
//
// Counting is resumable: it can be suspended at any ballot boundary and
// picked up later from a snapshot without re-processing a single ballot.
// See the tabulate package for the details of the snapshot contract.
package ballotkit
