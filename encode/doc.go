// Package encode serializes element trees to XML text.
//
// # Usage
//
//	el := xmltree.New("greeting").SetAttr("lang", "en").WithText("hi")
//	err := encode.Encode(el, os.Stdout)
//
//	// indented, with an XML declaration
//	err := encode.Encode(el, os.Stdout, encode.EncodeIndent(2), encode.EncodeDecl(true))
//
// The default output is the canonical wire form: double-quoted attributes,
// <a/> for empty elements, escaped text, no whitespace between elements.
// Encode never fails for trees produced by the parse package or by the
// structural mapper.
//
// # Related Packages
//
//   - github.com/signadot/xmlmap/xmltree - element tree representation
//   - github.com/signadot/xmlmap/parse - parse text into element trees
package encode
