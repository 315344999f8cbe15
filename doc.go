// Package redact turns raw, overlapping span detections over legal-hearing
// transcripts into consistently pseudonymized text.
//
// The pipeline has three layers:
//
//   - Conflict resolution: raw spans from multiple detectors are merged,
//     deduplicated, relabeled where label pairs conflict, and separated so the
//     surviving set is non-overlapping and sorted (package resolve), then
//     filtered against per-label validity rules (package validity).
//   - Pseudonymization: every surviving span gets a counter-based pseudonym
//     that is stable within the document, so the same person, place, or
//     identifier always maps to the same replacement (packages identity and
//     pseudonym).
//   - Text mutation: replacements and review markers are spliced into the
//     transcript right to left over rune offsets (package mutate).
//
// All span offsets everywhere in the module are half-open rune offsets.
//
// # Getting started
//
// Build a processor and feed it documents:
//
//	processor, err := document.NewProcessor(
//		document.WithLogger(logger),
//		document.WithClassifier(classifier),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := processor.Process(ctx, document.Document{
//		Name:  "hearing_smith.txt",
//		Text:  text,
//		Spans: spans,
//	})
//
// Or use the root convenience wrapper for one-off documents:
//
//	result, err := redact.Process(ctx, "hearing_smith.txt", text, spans)
//
// # Identity scope
//
// Pseudonym registries live and die with one document: "John" in two
// different hearings gets unrelated pseudonyms. Cross-document sharing is an
// explicit opt-in through identity.RedisStore and
// document.WithSharedStore.
//
// # Error handling
//
// The module uses sentinel errors with errors.Is:
//
//	if errors.Is(err, redact.ErrNoAnnotations) {
//		// document had nothing to redact
//	}
package redact
