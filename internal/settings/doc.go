// Package settings holds the widget configuration record shared by the whole
// process.
//
// A [Store] owns exactly one current [Settings] record. [Store.Configure]
// shallow-merges a partial record into it (keys present in the options win,
// absent keys are kept) and [Store.UseConfig] hands back a copy of the current
// record. Reads and writes are serialised, so a reader always observes a
// complete record produced by some earlier merge.
//
// The package-level [Configure], [ConfigureAny] and [UseConfig] act on the
// process-wide store returned by [Default], whose initial sparcApi value comes
// from VITE_SPARC_API or falls back to [DefaultSparcAPI].
package settings
