// Package markdown locates magic tags in documentation text.
//
// A magic tag is an HTML-comment line naming a command, immediately
// followed by a fenced code block carrying the command's content:
//
//	<!-- write hello.txt -->
//	```
//	hello
//	```
//
// The Scanner walks a document's lines front to back and yields one
// Match per well-formed tag-plus-fence pair. Malformed input is never
// an error: lines that fail the grammar are skipped and scanning
// continues with whatever remains.
//
// PARSE RECOVERY:
//
// Recovery is deliberately lossy in one case. When a tag line is
// accepted and a fence opens but no closing fence ever appears, every
// line consumed while searching for the closer stays consumed. The
// scanner does not rewind. This matches the long-observed behavior of
// the original tool and is relied upon by callers; see the Scanner
// documentation before "fixing" it.
package markdown
