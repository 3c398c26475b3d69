package session

// Reduce is the pure transition function of a pagination session.
// Given the previous state and an event it returns the next state and the
// effect to run, or a nil effect when the transition is disabled or a no-op.
// It performs no I/O and never mutates its input.
//
// Transition table (states are page(n)):
//   - ParamsChanged: new shape -> page(0), ledger reset, re-count; a
//     same-shape change is a no-op
//   - NextPage: enabled iff the last fetch reported HasMore -> page(n+1)
//   - PrevPage: enabled iff n > 0 -> page(n-1)
//   - Refresh:  page(0), ledger reset, re-count (used after mutations)
func Reduce(s State, ev Event) (State, *FetchEffect) {
	switch ev := ev.(type) {
	case ParamsChanged:
		if s.Params.SameShape(ev.Params) {
			return s, nil
		}
		next := s
		next.Params = ev.Params
		next.Params.PageIndex = 0
		next.Generation++
		return next, &FetchEffect{
			Params:       next.Params,
			Generation:   next.Generation,
			ResetLedger:  true,
			RefreshTotal: true,
		}

	case NextPage:
		if !s.HasMore {
			return s, nil
		}
		next := s
		next.Params.PageIndex++
		next.Generation++
		return next, &FetchEffect{Params: next.Params, Generation: next.Generation}

	case PrevPage:
		if s.Params.PageIndex == 0 {
			return s, nil
		}
		next := s
		next.Params.PageIndex--
		next.Generation++
		return next, &FetchEffect{Params: next.Params, Generation: next.Generation}

	case Refresh:
		next := s
		next.Params.PageIndex = 0
		next.Generation++
		return next, &FetchEffect{
			Params:       next.Params,
			Generation:   next.Generation,
			ResetLedger:  true,
			RefreshTotal: true,
		}
	}

	return s, nil
}
