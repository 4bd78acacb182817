package profile

import (
	"slices"

	"github.com/google/uuid"
)

// SyncMode tags a family member as either owning all of its fields or
// mirroring the shared subset from the primary user.
type SyncMode string

const (
	SyncIndependent SyncMode = "independent"
	SyncWithPrimary SyncMode = "synced"
)

// Member is a family member's preference record with a stable identifier.
// A synced member owns only its local fields; the shared fields are resolved
// against the primary record at read time via SharedFields.
type Member struct {
	ID   string   `json:"id"`
	Mode SyncMode `json:"sync_mode"`
	Record
}

// Synced reports whether the member mirrors the primary user's shared fields.
func (m *Member) Synced() bool {
	return m.Mode == SyncWithPrimary
}

// SharedFields resolves the member's shared-field values. For a synced member
// the primary record is authoritative regardless of locally stored values.
func (m *Member) SharedFields(primary *Record) SharedFields {
	if m.Synced() {
		return primary.sharedFields()
	}
	return m.Record.sharedFields()
}

// Submission is one consolidated form submission: the primary user plus any
// family members included in the plan.
type Submission struct {
	Primary       Record   `json:"primary_user"`
	IncludeFamily bool     `json:"include_family"`
	Members       []Member `json:"family_members"`
}

// NewSubmission returns a Submission with a default primary record and no
// family members.
func NewSubmission() Submission {
	return Submission{Primary: NewRecord()}
}

// AddMember appends a family member with a fresh identifier and default
// field values, and returns a pointer to it.
func (s *Submission) AddMember() *Member {
	s.Members = append(s.Members, Member{
		ID:     uuid.NewString(),
		Mode:   SyncIndependent,
		Record: NewRecord(),
	})
	return &s.Members[len(s.Members)-1]
}

// RemoveMember filters out the member with the given identifier. It reports
// whether a member was removed.
func (s *Submission) RemoveMember(id string) bool {
	before := len(s.Members)
	s.Members = slices.DeleteFunc(s.Members, func(m Member) bool {
		return m.ID == id
	})
	return len(s.Members) != before
}

// Consolidate returns a copy of the submission in which every synced member's
// shared fields equal the primary user's current values. The receiver is not
// modified, so an already-consolidated copy is unaffected by later edits.
func (s *Submission) Consolidate() Submission {
	out := Submission{
		Primary:       s.Primary,
		IncludeFamily: s.IncludeFamily,
	}
	out.Primary.SelectedFoods = copyFoods(s.Primary.SelectedFoods)
	if !s.IncludeFamily {
		return out
	}
	out.Members = make([]Member, len(s.Members))
	for i := range s.Members {
		m := s.Members[i]
		m.applyShared(s.Members[i].SharedFields(&s.Primary))
		out.Members[i] = m
	}
	return out
}
