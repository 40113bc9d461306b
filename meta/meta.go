// meta/meta.go
package meta

// PIECES_PER_PLAYER defines the number of pieces each side plays with.
const PIECES_PER_PLAYER = 5

// STEPS_IN_FUTURE defines the default exploration horizon in plies.
const STEPS_IN_FUTURE = 2

// ROSETTE_9_IS_SAFE protects pieces on the middle rosette from capture.
const ROSETTE_9_IS_SAFE = true

// ROSETTE_9_GRANTS_BONUS lets the middle rosette grant another throw like the others.
const ROSETTE_9_GRANTS_BONUS = true

// PLAYER_1_MIN marks player 1 as the minimizing side.
const PLAYER_1_MIN = true

// CONFIG_FILE is looked up relative to the XDG config directories.
const CONFIG_FILE = "ur/config.yaml"
