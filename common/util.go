package common

// IsValidIdentifier returns whether idstr would be a legal gg identifier
// (used to validate names pulled out of project configuration rather than
// lexed source, e.g. project names).
func IsValidIdentifier(idstr string) bool {
	if len(idstr) == 0 {
		return false
	}

	if idstr[0] == '_' || ('a' <= idstr[0] && idstr[0] <= 'z') || ('A' <= idstr[0] && idstr[0] <= 'Z') {
		for _, c := range idstr[1:] {
			if c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
				continue
			}

			return false
		}

		return true
	}

	return false
}
