// Package xpense provides the types and persistence for a small,
// local-first expense tracker. All records live in a single JSON file
// that is read and rewritten in full on every mutation, keeping the
// datastore human-readable and trivially inspectable.
//
// The core functionalities include:
//   - Book Management: an ordered, in-memory view of every recorded
//     expense, with identifier assignment and removal by id.
//   - Data Persistence: encoding and decoding the whole record set to
//     and from a JSON array, with the file overwrite as the only
//     update primitive.
//
// This package serves as the foundational logic for the `xt`
// command-line tool.
package xpense
