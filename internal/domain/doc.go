// Package domain defines the core business entities of the learner-progress
// engine: user accounts, the vocabulary and cultural catalogs, per-word
// progress records, and the append-only quiz, game, achievement, and chat
// ledgers. Entities validate themselves; identifier assignment belongs to the
// store layer.
package domain
