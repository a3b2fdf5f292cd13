// Package offset implements two reconstruction flavors: replay the
// event log up to a distance d, walk the resulting active vertex queue,
// and assemble the output boundary — either with sharp miter corners
// (ApplyVertexQueue) or sampled rounded corners (ApplyVertexQueueRounded).
//
// Ring classification (exterior vs. hole, by signed area) and hole
// nesting (first containing exterior wins) follow a connected-region
// classification, specialized from grid cells to polygon rings, paired
// with a "for each candidate, find its container" search loop,
// specialized from a configurable spatial partition down to the fixed
// first-containing-exterior rule this package needs.
package offset
