//go:build !race

package owned

const raceEnabled = false
