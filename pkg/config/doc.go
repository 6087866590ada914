/*
Package config loads and validates the options a neatify run is performed with.

	            +-------------+
	            |   Config    |
	            | (Snapshot)  |
	            +------+------+
	                   |
	   +---------+-----+-----+---------+
	   |         |           |         |
	+--+---+  +--+---+   +---+--+  +---+--+
	| JSON |  | YAML |   | HCL  |  | TOML |
	+------+  +------+   +------+  +------+

🎯 Purpose:
- Parses the config file with the parser registered for its extension
- Rejects unknown fields in every format
- Validates indent size and quote style
- Locates .neatify.json when no config path is given

🔄 Flow:
1. Find walks the working tree for .neatify.json (when no path is given)
2. Load reads the file and picks a parser by extension
3. Validate checks ranges and defaults path to "."
4. The config file's own name is added to the ignore set

⚡ Options:
Every stage switch is optional. A nil field means the stage is skipped, the
same as an explicit false.

	{
	  "indent": 2,
	  "removeComments": true,
	  "removeEmptyLines": true,
	  "removeTrailingSpaces": true,
	  "quoteStyle": "double",
	  "bracketSpacing": true,
	  "ignore": ["vendor", "*.min.js"],
	  "path": ".",
	  "failFast": false,
	  "respectGitignore": false
	}

🔍 Example:

	cfg, err := config.Load(ctx, ".neatify.json")
	if errors.Is(err, config.ErrInvalidQuoteStyle) {
		return err
	}
*/
package config
