/*
Package operation implements the core business logic for planning and copying.

	+-------------+
	|  Operation  |
	| (Core Logic)|
	+------+------+
	       |
	+------+------+
	|   Select    |
	|  (Library)  |
	+------+------+
	       |
	+------+------+
	|    Copy     |
	| (Filesystem)|
	+------+------+

🎯 Purpose:
- Orchestrates selection, reporting, confirmation and copying
- Maps source paths under the library root to destination paths
- Executes the copy with parent-directory creation and timestamps

🔄 Flow:
1. Walks the library and computes the selection set
2. Reports every selected file plus totals
3. Asks the user before any mutation (twice when overwriting)
4. Copies file by file, sequentially

⚡ Key Responsibilities:
- Destination path mapping (ErrPathNotUnderRoot on inconsistency)
- Destination reset (recursive delete + recreate, post-confirmation)
- Error handling: every failure aborts the run, no partial-success mode
*/
package operation
