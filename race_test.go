//go:build race

package owned

const raceEnabled = true
