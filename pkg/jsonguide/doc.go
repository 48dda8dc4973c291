// Package jsonguide keeps language-model output on a path toward a value that
// is valid for a JSON Schema.
//
// At each generation step the decoder passes everything generated so far to
// Complete, which answers with the legal continuations: literal fragments to
// append, the Open constraint while a string is being written, or End when
// the value is already complete. FindEnd locates where a value described by a
// schema node concludes inside a text that may be truncated anywhere.
//
// Both functions are pure: every answer is derived from the (text, schema)
// pair alone, so one schema can serve any number of concurrent sessions.
//
// Example:
//
//	node := schema.Object(
//	    schema.Prop("country", schema.String()),
//	    schema.Prop("capital", schema.String()),
//	)
//
//	c := jsonguide.Complete(`{"country":"France"`, node)
//	switch c.Mode() {
//	case jsonguide.ModeForce:
//	    // append c.Fragments()[0].Text() without sampling
//	case jsonguide.ModeBias:
//	    // boost vocabulary entries for which c.Accepts(piece) is true
//	case jsonguide.ModeDone:
//	    // stop generating
//	case jsonguide.ModeIncompatible:
//	    // the text can no longer become a valid value
//	}
package jsonguide
