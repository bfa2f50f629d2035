package rpmd

import "testing"

func TestBuildContractionScheduleScenario5(t *testing.T) {
	// P=8, two force groups {0,1}, integrationGroups = {0,1}, contraction
	// {1 -> 4 beads}: groupsNotContracted = {0}, groupsByCopies = {4: 1<<1}.
	integrationGroups := uint32(1<<0 | 1<<1)
	sched, err := BuildContractionSchedule(8, map[int]int{1: 4}, integrationGroups)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sched.GroupsNotContracted != 1<<0 {
		t.Errorf("expected groupsNotContracted = {0}, got %#x", sched.GroupsNotContracted)
	}
	mask, ok := sched.GroupsByCopies[4]
	if !ok || mask != 1<<1 {
		t.Errorf("expected groupsByCopies[4] = 1<<1, got %#x (present=%v)", mask, ok)
	}
	if sched.MaxContractedCopies != 4 {
		t.Errorf("expected max contracted copies 4, got %d", sched.MaxContractedCopies)
	}
}

func TestBuildContractionSchedulePartitionsActiveGroups(t *testing.T) {
	integrationGroups := uint32(0xFF)
	sched, err := BuildContractionSchedule(8, map[int]int{2: 4, 5: 2}, integrationGroups)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	union := sched.GroupsNotContracted
	for _, mask := range sched.GroupsByCopies {
		if union&mask != 0 {
			t.Errorf("expected groupsByCopies masks to be disjoint from groupsNotContracted, overlap %#x", union&mask)
		}
		union |= mask
	}
	if union != integrationGroups {
		t.Errorf("expected union of partition to equal active groups %#x, got %#x", integrationGroups, union)
	}
}

func TestBuildContractionScheduleRejectsBadGroup(t *testing.T) {
	_, err := BuildContractionSchedule(8, map[int]int{32: 4}, 0xFF)
	if err != ErrInvalidForceGroup {
		t.Errorf("expected ErrInvalidForceGroup, got %v", err)
	}
}

func TestBuildContractionScheduleRejectsBadCopies(t *testing.T) {
	_, err := BuildContractionSchedule(8, map[int]int{0: 9}, 0xFF)
	if err != ErrInvalidContractionCopies {
		t.Errorf("expected ErrInvalidContractionCopies, got %v", err)
	}
}

func TestBuildContractionScheduleValidatesGroupBeforeCopies(t *testing.T) {
	// Both the group and the copy count are invalid; the group error
	// must win, matching the reference kernel's check order.
	_, err := BuildContractionSchedule(8, map[int]int{40: 100}, 0xFF)
	if err != ErrInvalidForceGroup {
		t.Errorf("expected ErrInvalidForceGroup to take priority, got %v", err)
	}
}

func TestBuildContractionScheduleNoOpAtFullCopies(t *testing.T) {
	sched, err := BuildContractionSchedule(8, map[int]int{0: 8}, 0xFF)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sched.IsEmpty() {
		t.Error("expected no-op contraction entry to leave the schedule empty")
	}
	if sched.GroupsNotContracted != 0xFF {
		t.Errorf("expected groupsNotContracted unchanged, got %#x", sched.GroupsNotContracted)
	}
}
