// Package format names the document encodings the command line tools read
// and write.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//
// XML is the native encoding; YAML and JSON render the ordered mapping a
// document decodes to.
//
// # Related Packages
//
//   - github.com/signadot/xmlmap/parse - Parse XML text to a mapping
//   - github.com/signadot/xmlmap/gomap - Render mappings as YAML or JSON
package format
