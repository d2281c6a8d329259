// Package gogp is a parallel genetic-programming engine. It evolves
// symbolic expression trees against a caller-supplied fitness function
// using tournament selection with elitism inside each of N islands, and
// periodic migration between islands.
//
// The engine never interprets a tree itself: evaluation, compilation, and
// domain semantics belong entirely to the caller's fitness callback. gogp
// only builds, mutates, recombines, and selects trees.
package gogp
