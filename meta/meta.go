// meta/meta.go
package meta

// BOARD_SIZE is the default board size (points along a triangle edge).
const BOARD_SIZE = 4

// MAX_ROUNDS caps the length of a headless game.
const MAX_ROUNDS = 100

// PLAYERS are the default player names, seated on triangles 0..5 in order.
var PLAYERS = []string{"Green", "Red", "Blue", "Yellow", "White", "Magenta"}
