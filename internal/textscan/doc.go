// Package textscan provides the line-oriented text primitives shared by the
// audits: decoding file contents, splitting lines, locating pattern matches and
// cheaply rejecting files that cannot contain a match.
package textscan
