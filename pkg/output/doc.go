/*
Package output is the line-output collaborator used by commands, the
dispatcher and the shell.

A Printer owns one io.Writer and a Style. Style wraps a termenv colour
profile; Plain() disables every escape sequence, which is what tests use.
Table aligns cells by display width (go-runewidth), so wide runes line up.
*/
package output
