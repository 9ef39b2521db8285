// Command aoc2025 runs the Advent of Code 2025 solutions.
package main

func main() {
	Execute()
}
