package scenelink

import "github.com/google/uuid"

// linkSet is the shared cell behind a family of linked groups. Every group
// node references exactly one linkSet at all times; a freshly constructed
// group owns a private one with no connected members. The cell is shared by
// pointer, so every member observes membership updates immediately, and its
// lifetime is that of the longest-surviving member.
type linkSet struct {
	// members holds the currently connected groups in connection order.
	// A group is "linked" iff it appears here.
	members []*GroupNode

	// persistentID is shared by every group ever associated with this link
	// set, connected or not. It is written at most once: first writer wins.
	persistentID *uuid.UUID
}

func newLinkSet() *linkSet {
	return &linkSet{}
}

func (s *linkSet) contains(g *GroupNode) bool {
	for _, m := range s.members {
		if m == g {
			return true
		}
	}
	return false
}

func (s *linkSet) add(g *GroupNode) {
	s.members = append(s.members, g)
}

func (s *linkSet) remove(g *GroupNode) {
	for i, m := range s.members {
		if m == g {
			s.members = append(s.members[:i], s.members[i+1:]...)
			return
		}
	}
}
