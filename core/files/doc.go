// Package files holds the file operations behind a gearset correction:
// the .bak copy taken before anything is modified, and the
// temp-file-then-rename write that replaces the gearset afterwards.
//
// Fingerprints (size and modification time) let caches notice when one of
// the source files changed on disk.
package files
