// Package keypath provides composable, statically-typed references to struct
// fields: a key path names "the Value found by following a field (or chain of
// fields) starting at a Root", and can read and, for the writable variants,
// write that location without the caller passing extraction closures around.
//
// # Overview
//
// There are three capability variants:
//
//   - [KeyPath] — read-only.
//   - [WritableKeyPath] — read and write; Set returns the updated owner
//     value, so it works with value-typed roots.
//   - [ReferenceWritableKeyPath] — read and write in place through a *Root
//     handle, obtained from a writable path via ByReference.
//
// All three satisfy [Getter], which is what the sorted package consumes.
//
// Key paths are constructed from a field name and a getter (plus a setter for
// the writable variants). The closure fixes Root and Value statically, so a
// misspelled field or mismatched value type is rejected by the compiler:
//
//	calories := keypath.NewWritable("calories",
//	    func(f Food) float64 { return f.Calories },
//	    func(f Food, v float64) Food { f.Calories = v; return f },
//	)
//
// Paths compose end-to-end with [Append] and [AppendWritable]; composition is
// pure and associative:
//
//	catCalories := keypath.AppendWritable(favoriteFood, calories)
//	catCalories.Get(cat) // cat.FavoriteFood.Calories
//
// # Erasure
//
// For heterogeneous storage, a key path can be narrowed down to
// [PartialKeyPath] (value type erased) or [AnyKeyPath] (fully erased).
// Recovering the static types is always an explicit operation — [Narrow] and
// [NarrowAny] return an optional, and [ValueAs] returns an error on
// mismatch — never an implicit cast.
//
// # Parsing
//
// [Parse] and [ParseWritable] build key paths from bracket notation strings
// ("$['favoriteFood']['calories']") resolved against Root's exported struct
// fields via reflection. All structural errors are rejected at construction,
// so a successfully parsed path reads and writes without failure.
package keypath
