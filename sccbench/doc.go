// Package sccbench runs both SCC engines against the same graph and
// records comparative, observational timing and memory figures. It
// never influences which engine scc.Find picks; it exists so callers
// and the CLI surface can inspect the tradeoff the heuristic is
// making.
package sccbench
