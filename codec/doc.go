// Package codec converts Range Series files between their binary form, the
// flat block sequence and the line-oriented text form.
//
// Decode direction:
//
//	seq, err := codec.NewDecoder().Decode(data)
//	text, err := codec.NewTextEncoder().Encode(seq)
//
// Encode direction:
//
//	seq, err := codec.NewTextDecoder().Decode(text)
//	err = block.Reconcile(seq)
//	data, err := codec.NewEncoder().Encode(seq)
//
// All four types accept the same Option values; options that do not apply
// to a type are ignored by it.
package codec
