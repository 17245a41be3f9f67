package encode

type EncodeOption func(*EncState)

// EncodeIndent pretty-prints with n spaces per level. Zero keeps the
// canonical single-line wire form.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeDecl emits an XML declaration before the root element.
func EncodeDecl(v bool) EncodeOption {
	return func(es *EncState) { es.decl = v }
}

// Depth sets the starting indentation depth.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

// EncodeColors colorizes output for terminals.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
