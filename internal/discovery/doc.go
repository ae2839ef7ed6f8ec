// Package discovery locates the source files an audit should read.
//
// FilesystemSourceDiscoverer walks a single root with filepath.WalkDir, keeps
// regular files whose extension appears in an allow-list and optionally honors
// the root .gitignore file. Unreadable entries are skipped rather than reported.
package discovery
