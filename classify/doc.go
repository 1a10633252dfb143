// Package classify assigns taxonomy labels to generated Q&A pairs by
// prompting the text-generation service with the rendered hierarchy and
// few-shot examples. Classification failures never fail a pair; the
// defaults stand in. Labels are taken from the response as-is, without
// clamping to the loaded hierarchy.
package classify
