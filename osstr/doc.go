// Package osstr converts strings between UTF-8 and the OS-native wide
// (UTF-16) encoding used by Windows interfaces. Conversion is lossy
// only for malformed input, which becomes replacement characters; it
// never fails.
package osstr
