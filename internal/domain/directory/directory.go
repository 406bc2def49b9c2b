// Package directory holds the in-memory user store: per-user mailboxes,
// user records with their online flag, and the directory keyed by name.
// Lookups are lock-free via sync.Map; the login transition is a
// compare-and-set on the record's online flag, so two simultaneous
// logins of the same name resolve to exactly one SUCCESS.
package directory

import "sync"

// Outcome is the result of a login attempt.
type Outcome int

const (
	OutcomeInvalid Outcome = iota
	OutcomeAlready
	OutcomeSuccess
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAlready:
		return "ALREADY"
	case OutcomeSuccess:
		return "SUCCESS"
	}
	return "INVALID"
}

const (
	// Valid name code points span ASCII 'A' through 'z' inclusive,
	// which also admits the six punctuation characters between the
	// letter ranges. Bit-exact for wire interoperability.
	nameRuneMin = 65
	nameRuneMax = 122
)

// ValidName reports whether name is non-empty and every code point falls
// in the 65..122 range.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if r < nameRuneMin || r > nameRuneMax {
			return false
		}
	}
	return true
}

// Directory maps user names to records. Records are never removed before
// process exit.
type Directory struct {
	records      sync.Map // string -> *Record
	mailboxLimit int
}

func New(mailboxLimit int) *Directory {
	return &Directory{mailboxLimit: mailboxLimit}
}

// Login validates the name, then either creates a fresh online record or
// flips an existing offline record online. A record that is already
// online yields OutcomeAlready. The returned record is non-nil only on
// success.
func (d *Directory) Login(name string) (Outcome, *Record) {
	if !ValidName(name) {
		return OutcomeInvalid, nil
	}

	cand := newRecord(name, d.mailboxLimit)
	cand.online.Store(true)

	actual, loaded := d.records.LoadOrStore(name, cand)
	if !loaded {
		return OutcomeSuccess, cand
	}

	rec := actual.(*Record)
	if rec.online.CompareAndSwap(false, true) {
		return OutcomeSuccess, rec
	}
	return OutcomeAlready, nil
}

// Logout flips the named record offline. Unknown names and records that
// are already offline are no-ops; the mailbox is untouched either way.
func (d *Directory) Logout(name string) {
	if rec, ok := d.Lookup(name); ok {
		rec.online.Store(false)
	}
}

func (d *Directory) Lookup(name string) (*Record, bool) {
	v, ok := d.records.Load(name)
	if !ok {
		return nil, false
	}
	return v.(*Record), true
}

// SnapshotOnline returns the names of all currently online records, in
// unspecified order.
func (d *Directory) SnapshotOnline() []string {
	names := make([]string, 0, 8)
	d.records.Range(func(_, v any) bool {
		rec := v.(*Record)
		if rec.Online() {
			names = append(names, rec.Name())
		}
		return true
	})
	return names
}
