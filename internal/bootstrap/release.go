package bootstrap

type release struct {
	name string
	fn   func()
}

// releaseStack collects release obligations in acquisition order.
type releaseStack struct {
	releases []release
}

func (s *releaseStack) push(name string, fn func()) {
	s.releases = append(s.releases, release{name: name, fn: fn})
}

// unwind runs every release, newest first, and empties the stack. after is
// called with the release name once each release returns.
func (s *releaseStack) unwind(after func(name string)) {
	for len(s.releases) > 0 {
		last := len(s.releases) - 1
		r := s.releases[last]
		s.releases = s.releases[:last]

		r.fn()
		if after != nil {
			after(r.name)
		}
	}
}
