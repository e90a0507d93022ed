// Package tabulate implements deterministic, auditable vote counting
// over ranked and single-choice ballots.
//
// The building block is the Counter, which accumulates how many ballots
// rank each choice in each position. Counting is crash-safe at ballot
// granularity: the State snapshot a counting call returns is committed
// only at ballot boundaries, so after any interruption a caller can
// resume from the last counted ballot without a single ballot being
// double-counted or skipped.
//
// On top of the Counter sit the voting rules. Plurality ranks choices by
// a single counting pass. InstantRunoff runs a multi-round elimination
// loop, striking the least supported choice each round and recounting
// with the grown removal set until the configured number of winners
// remains; its Run snapshot extends the same resumability across round
// boundaries. Positional is declared but unimplemented.
package tabulate
