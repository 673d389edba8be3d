//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package main

func isTerminal(int) bool {
	return true
}
