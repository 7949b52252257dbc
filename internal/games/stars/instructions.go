package stars

import "strings"

// Instructions is the static help text shown by the front-ends and the CLI.
var Instructions = []string{
	"Left/Right arrows move the ball.",
	"Up jumps, Space does a super jump.",
	"Collect the yellow stars for 10 points each.",
	"Avoid the red obstacles: each hit costs a life.",
	"Collect every star to reach the next level.",
	"Each level adds a star, an obstacle and a life (up to 3).",
	"The game ends when you run out of lives.",
}

// InstructionsText returns Instructions as one newline-separated block.
func InstructionsText() string {
	return strings.Join(Instructions, "\n")
}
