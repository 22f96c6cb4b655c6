package token

// Kind classifies a lexical unit of the markup source.
type Kind int

const (
	// EOF signals that no further token could be produced. Scanning plain
	// non-markup text (for example JSON) yields EOF immediately.
	EOF Kind = iota
	// OPEN is the '<' symbol.
	OPEN
	// CLOSE is the '>' symbol.
	CLOSE
	// SLASH is the '/' symbol.
	SLASH
	// PROLOGUE is the '?' symbol of a declaration such as <?xml ... ?>.
	PROLOGUE
	// TEXT is a quoted or unquoted text run: a tag name, an attribute name
	// or value, or bare element content.
	TEXT
)

// String returns a printable name for the kind.
func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case OPEN:
		return "'<'"
	case CLOSE:
		return "'>'"
	case SLASH:
		return "'/'"
	case PROLOGUE:
		return "'?'"
	case TEXT:
		return "text"
	}
	return "unknown"
}

// Token is a classified span of the source. It references the source by
// byte offset and length only and owns no text of its own.
type Token struct {
	Kind Kind
	Pos  int
	Len  int

	// Quoted marks a text run that was enclosed in double quotes. The span
	// includes both quote characters; Text strips them again. Quoted runs
	// occur only inside tags and are valid as attribute values, not names.
	Quoted bool
}

// Text extracts the token's literal from src. Quoted runs are returned
// without their surrounding quotes; no entity references are decoded.
func (t Token) Text(src []byte) string {
	end := t.Pos + t.Len
	if t.Quoted && t.Len >= 2 {
		return string(src[t.Pos+1 : end-1])
	}
	return string(src[t.Pos:end])
}
