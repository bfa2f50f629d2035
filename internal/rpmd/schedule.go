package rpmd

// ContractionSchedule is the derived partition of the active force groups
// between the full-P evaluation and any contracted evaluations, built once
// at Initialize from the configuration's group->copies map.
type ContractionSchedule struct {
	// GroupsByCopies maps a contracted bead count P' to the bitmask of
	// force groups evaluated on P' beads instead of P.
	GroupsByCopies map[int]uint32

	// GroupsNotContracted is the mask of active force groups evaluated on
	// the full P beads.
	GroupsNotContracted uint32

	// MaxContractedCopies is the largest P' appearing in GroupsByCopies,
	// used to size the contracted position/force workspaces. Zero if
	// GroupsByCopies is empty.
	MaxContractedCopies int
}

// BuildContractionSchedule validates and derives the schedule from a
// group->copies map (the configuration's raw input, named the same way the
// reference kernel's RPMDIntegrator::getContractions does: key is the force
// group, value is the bead count it should be contracted to) and the
// integrator's active force-group mask.
//
// Validation order matches the reference kernel: a bad group number is
// reported before a bad copy count, so a caller with both wrong sees the
// more specific error.
func BuildContractionSchedule(numCopies int, contractions map[int]int, integrationForceGroups uint32) (*ContractionSchedule, error) {
	sched := &ContractionSchedule{
		GroupsByCopies:      make(map[int]uint32),
		GroupsNotContracted: ^uint32(0),
	}

	for group, copies := range contractions {
		if group < 0 || group > 31 {
			return nil, ErrInvalidForceGroup
		}
		if copies < 0 || copies > numCopies {
			return nil, ErrInvalidContractionCopies
		}
		if copies == numCopies {
			// No-op: evaluating a group on all P beads is the same as not
			// contracting it at all.
			continue
		}
		sched.GroupsByCopies[copies] |= 1 << uint(group)
		sched.GroupsNotContracted &^= 1 << uint(group)
		if copies > sched.MaxContractedCopies {
			sched.MaxContractedCopies = copies
		}
	}

	sched.GroupsNotContracted &= integrationForceGroups
	return sched, nil
}

// IsEmpty reports whether the schedule contracts no force groups at all —
// the state the open path requires.
func (s *ContractionSchedule) IsEmpty() bool {
	return len(s.GroupsByCopies) == 0
}
