// Package complexity scores door codes typed through nested keypads.
//
// Setup:
//
//	human -> directional x depth -> directional (first layer) -> numeric
//
// The numeric robot types the code. Its controls are the first directional
// layer, whose possible inputs are the rewrites of the code. Each further
// directional layer is priced with package minlen, depth layers in total.
//
// Score:
//
//	complexity(code) = ShortestLength(code, depth) * NumericValue(code)
//	total            = Σ complexity over all codes
//
// Strategies:
//
//   - StrategyEnumerate lists every first-layer rewrite and keeps the
//     cheapest. The number of rewrites is small for short codes.
//   - StrategyMinimize applies the minimizer recurrence to the numeric layer
//     too. Both strategies always agree; enumeration is kept as the direct
//     reading of the problem and as a cross-check.
package complexity
