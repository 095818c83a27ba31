// Package graphalign aligns weighted networks: it finds a one-to-one
// correspondence between the nodes of two graphs that maximizes the combined
// evidence of link, self-link and node similarity.
//
// 🚀 What is inside?
//
//	• binning/     – continuous weights → discrete bins via a lookup vector
//	• permutation/ – invert, compose and validate node mappings
//	• score/       – the score matrix M of a candidate alignment (ComputeM)
//	• lap/         – Jonker–Volgenant linear assignment solver with duals
//	• align/       – the M → cost → LAP → permutation loop, one round or to a fixed point
//	• matrix/      – dense real & integer containers, validators, gonum interop
//	• diag/, scratch/ – diagnostic sink and scratch-buffer allocator contracts
//
// The graphalign command (cmd/graphalign) exposes solve, score, align and
// encode over YAML/JSON files.
//
// Quick start:
//
//	in := score.Input{A: a, B: b, R: r, P: permutation.Identity(n), ...}
//	res, err := align.Iterate(in)
//	// res.Permutation[j] is the B-node matched to A-node j.
package graphalign
