// Package builder provides deterministic topology constructors for core.Graph
// snapshots: fixtures for k-core tests and the generator behind `ctgcn synth`.
//
// The package offers:
//
//   - Constructor: a closure that adds edges to an already sized core.Graph.
//   - BuildGraph(n, opts, cons...): allocate n nodes, apply constructors in order.
//   - Topologies with well-known core numbers:
//     – Path(k):     P_k, every node core 1.
//     – Cycle(k):    C_k, every node core 2.
//     – Star(k):     hub 0 + k-1 leaves, every node core 1.
//     – Wheel(k):    C_{k-1} on 1..k-1 + hub 0, every node core 3.
//     – Complete(k): K_k, every node core k-1.
//     – RandomSparse(p): Erdős–Rényi G(n, p) over the whole node range.
//   - Options: WithSeed / WithRand (stochastic builders), WithWeightFn,
//     WithOffset (shift a topology onto nodes off..off+k-1).
//
// Guarantees:
//
//   - Constructors only touch nodes inside [offset, offset+k); asking for more
//     nodes than the graph holds returns ErrGraphTooSmall.
//   - Edge emission order is fixed, so a fixed seed yields a fixed graph.
//   - Option constructors panic on meaningless input; constructors never panic.
package builder
