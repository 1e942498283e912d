// Package model holds the response shapes of the Spotify Web API. The types
// are plain deserialization targets: the client decodes into them and hands
// them to the caller unchanged, so field names and nesting mirror the wire
// format rather than any internal structure of the library.
package model
