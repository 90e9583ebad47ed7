//go:build release

package event

const assertionsEnabled = false
