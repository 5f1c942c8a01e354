package engine

// recentSet is a bounded, insertion-ordered set. Re-adding a member keeps its
// original position; the oldest member is evicted once capacity is exceeded.
type recentSet struct {
	capacity int
	order    []string
	members  map[string]struct{}
}

func newRecentSet(capacity int) *recentSet {
	return &recentSet{
		capacity: capacity,
		order:    make([]string, 0, capacity+1),
		members:  make(map[string]struct{}, capacity+1),
	}
}

func (r *recentSet) Contains(name string) bool {
	_, ok := r.members[name]
	return ok
}

func (r *recentSet) Add(names ...string) {
	for _, name := range names {
		if r.Contains(name) {
			continue
		}
		r.order = append(r.order, name)
		r.members[name] = struct{}{}

		for len(r.order) > r.capacity {
			oldest := r.order[0]
			r.order = r.order[1:]
			delete(r.members, oldest)
		}
	}
}

func (r *recentSet) Reset() {
	r.order = r.order[:0]
	r.members = make(map[string]struct{}, r.capacity+1)
}

func (r *recentSet) Len() int {
	return len(r.order)
}

// Items returns the members oldest first
func (r *recentSet) Items() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
