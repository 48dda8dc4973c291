package partialjson

// ParseResult is the outcome of repairing a truncated document.
type ParseResult struct {
	// Repaired is a complete JSON document shaped like the schema.
	Repaired []byte

	// Incomplete lists the paths that were cut off or never started, in
	// document order. ["cities", "[1]"] is the second element of cities.
	Incomplete [][]string

	// TruncatedAt names the construct the input stopped in: "string",
	// "number", "array", "object", "key", "value", or "complete".
	TruncatedAt string
}
