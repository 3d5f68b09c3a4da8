/*
Package shorthand recovers and parses tag shorthands typed next to a cursor.

🔍 Pipeline:
-----------

	line + cursor offset
	     |
	     v
	+-----------+   Window{Before, After}   +------------+
	|   Scan    | ------------------------> |  Sanitize  |
	+-----------+                           +------------+
	                                              |
	                           Token{Text, ConsumedAfterLength}
	                                              |
	                                              v
	                                        +------------+
	                                        |   Parse    | ---> Expr
	                                        +------------+

Scan stops at whitespace, '<' and '>'. Sanitize walks the window left to
right as a small state machine:

	Scanning  --'['-->  InBracket  --balanced ']'-->  Scanning
	Scanning  --byte outside [A-Za-z0-9_-.#[] at/after cursor-->  Terminated

An orphan ']' or an invalid byte before the cursor throws away everything
to its left, so `]div.card` recovers as `div.card`.

Grammar accepted by Parse:

	token := tag? ( '.' name? | '#' name? | '[' text ']'? )*
	tag   := [A-Za-z][A-Za-z0-9_-]*
	name  := [A-Za-z0-9_-]*

Every function in this package is pure and safe for concurrent use.
*/
package shorthand
