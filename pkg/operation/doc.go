/*
Package operation runs the neatify pipeline over every file under a root.

	+-------------+
	|   Runner    |
	|  (run_id)   |
	+------+------+
	       |
	+------+------+
	|  Operation  |
	| (per file)  |
	+------+------+

🎯 Purpose:
- Builds the stage pipeline from a config snapshot
- Walks the root, reads each file, runs the pipeline, writes the result
- Records an outcome per file and returns a run-level error

🔄 Flow:
1. catalog.Walk lists the files in lexical order
2. status.FileManager reads each file as text
3. text.Pipeline applies the enabled stages
4. Changed files are written back through status.FileManager
5. status.StatusReporter records modified, unchanged, pending, skipped or failed

⚡ Stage order is fixed no matter which stages are enabled:

	remove-comments
	remove-empty-lines
	remove-trailing-spaces
	bracket-spacing
	quote-style
	indent

🚦 Failure policy:
A file that cannot be read is skipped and a file that cannot be written is
marked failed. The run continues and returns ErrFilesFailed at the end. With
failFast set the first failure stops the run. Check runs never write and
return ErrChangesRequired when any file would change.
*/
package operation
