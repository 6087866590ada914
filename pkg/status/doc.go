/*
Package status reads and persists file content and tracks what happened to each file.

	            +-------------+
	            |   Manager   |
	            +------+------+
	                   |
	      +------------+------------+
	      |                         |
	+------+------+          +------+-----+
	| FileManager |          |  Reporter  |
	| (read/write)|          | (outcomes) |
	+-------------+          +------------+

🎯 Purpose:
- Reads discovered files as UTF-8 text
- Overwrites existing files atomically, keeping their mode
- Records a per-file outcome in discovery order

🔄 Flow:
1. ReadFile loads the full content of a catalog.File
2. The caller transforms the content
3. WriteFile replaces the file when the content changed
4. TrackFile records the outcome (modified, unchanged, pending, skipped, failed)

⚡ Errors:
- ErrPermissionDenied and ErrReadFailed classify read failures
- ErrIsDirectory and ErrNotText reject entries that are not text files
- ErrWriteTargetMissing is returned when a file vanished before its rewrite

WriteFile never creates files. A missing target is an error, not a new file.
*/
package status
