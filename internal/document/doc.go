// Package document ties the scanner, the operation registry and the
// execution engine together for a single documentation file.
//
// A Document is parsed once: every well-formed magic tag whose command
// the registry knows becomes one entry, paired with the 1-based line
// number of its tag. Unknown commands are silently skipped. Running
// the document executes the entries in document order.
package document
