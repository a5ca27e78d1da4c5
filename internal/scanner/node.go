package scanner

// minNodeLen is the shortest input that can hold a node ("<a/>").
const minNodeLen = 4

// TryReadXMLNode extracts the balanced element starting at the cursor,
// e.g. "<A><B/></A>", and moves past it.
//
// Nested elements are counted; "<!...>" blocks are skipped whole without
// looking inside. The outermost closing tag must name the opening tag. On
// failure the cursor does not move.
func (s *Scanner) TryReadXMLNode() (string, bool) {
	if s.Remaining() < minNodeLen || s.Current() != '<' {
		return "", false
	}
	look := s.Clone()
	look.AdvanceOne()
	name, ok := look.TryReadWord()
	if !ok {
		return "", false
	}
	closing := "</" + name + ">"

	depth := 1
	for look.HasCurrent() {
		c := look.Current()
		switch {
		case c == '<' && look.HasNext() && look.PeekAt(1) == '!':
			// сырой блок: внутрь не смотрим
			look.SkipAfter('>')
		case c == '<' && look.HasNext() && look.PeekAt(1) == '/':
			depth--
			if depth == 0 {
				if !look.EatString(closing) {
					return "", false
				}
				return s.take(look.pos), true
			}
			look.Advance(2)
		case c == '<':
			depth++
			look.AdvanceOne()
		case c == '/' && look.HasNext() && look.PeekAt(1) == '>':
			depth--
			look.Advance(2)
			if depth == 0 {
				return s.take(look.pos), true
			}
		default:
			look.AdvanceOne()
		}
	}
	return "", false
}
