// Package ioformat reads the two flat-text files that describe a
// solve: an edges file giving each arc's endpoints, cost and capacity,
// and a nodes file giving the non-zero productions. Node ids are
// inferred dense from the union of both files; an isolated vertex
// (named only in the nodes file) is rejected, since it could never
// receive or send the flow its production demands.
package ioformat
