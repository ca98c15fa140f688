package settings

// Merge concatenates hook registrations across scopes, in the order the
// caller supplies them (ascending precedence, i.e. paths.Ascending order),
// and takes statusLine from the highest-precedence scope that defines it.
func Merge(scoped []*Settings) *Settings {
	out := newSettings()
	for _, s := range scoped {
		if s == nil {
			continue
		}
		for event, regs := range s.Hooks {
			out.Hooks[event] = append(out.Hooks[event], regs...)
		}
		if s.StatusLine != nil {
			out.StatusLine = s.StatusLine
		}
	}
	return out
}
