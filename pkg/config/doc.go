/*
Package config manages configuration parsing and validation for karacopy.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|   YAML    |           |   HCL   |
	| Parser    |           | Parser  |
	+-----------+           +---------+

🎯 Purpose:
- Manages configuration loading and parsing
- Validates configuration values (paths, year bounds)
- Converts year bounds into the library's filter type
- Supports multiple config formats

🔄 Flow:
1. Reads configuration from file
2. Parses format-specific syntax
3. Validates configuration values
4. Provides validated config to the operations

⚡ Key Responsibilities:
- Configuration parsing
- Year bound handling ("any" means unbounded)
- Default extension allow-lists
- Eager rejection of inverted year ranges

🤝 Interfaces:
- Parser: pluggable format support (YAML, HCL)
- Config: the single source of truth handed to the walker
*/
package config
