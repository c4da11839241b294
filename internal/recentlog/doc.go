// Package recentlog finds the most recently modified yarp log file and reads it.
//
// The pipeline is linear: resolve a glob pattern for the host, list the
// matching files with their modification times, select the newest one and
// read it whole. Every step either succeeds or returns a structured error
// from internal/errors; nothing is printed until the read completes.
//
// When two files share the newest modification time, the lexicographically
// largest path wins.
package recentlog
