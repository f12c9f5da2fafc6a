// Package instance parses Li & Lim style PDPTW benchmark text files into the
// node records the ges package's solver consumes. Instance I/O is
// deliberately kept out of the core ges package: the engine only ever
// operates on an already-validated ges.Instance, and a second file format
// should only ever require a new reader here, never a change to the search
// itself.
package instance
