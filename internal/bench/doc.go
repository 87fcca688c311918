// Package bench measures prepared corpora: chunk size distribution, how
// much noise a mistaker injects, and how closely two sentence splitters
// agree on boundaries.
package bench
