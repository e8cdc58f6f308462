// meta/meta.go
package meta

// SearchDepth is the number of plies the minimax agent looks ahead.
const SearchDepth = 3

// MAX_TURNS caps the number of moves in a local game. A pawn game on an 8x8
// board cannot last longer than 2*8*6 moves, so the cap only guards loops
// fed by external players.
const MAX_TURNS = 200

// DefaultAddr is the listen address of the session server.
const DefaultAddr = ":8080"

// GAMES is the number of games per experiment matchup.
const GAMES = 20
