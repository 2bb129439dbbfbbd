// Package sysinfo reports facts about the host the tool runs on. Callers
// must tolerate a zero total-memory value on platforms where the query is
// unsupported or fails.
package sysinfo
