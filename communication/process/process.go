package process

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"tictactoe/communication"
	"tictactoe/game"
)

// Classifier runs Command with Args followed by the encoded board and reads
// the predicted cell index from its standard output.
type Classifier struct {
	Command string
	Args    []string
	Env     []string // Extra environment variables, appended to the parent's
}

func New(command string, args ...string) *Classifier {
	return &Classifier{Command: command, Args: args}
}

func (c *Classifier) Predict(ctx context.Context, board game.Board) (int, error) {
	args := append(append([]string{}, c.Args...), communication.Encode(board))
	cmd := exec.CommandContext(ctx, c.Command, args...)
	if len(c.Env) > 0 {
		cmd.Env = append(cmd.Environ(), c.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return 0, fmt.Errorf("failed to run classifier %s: %w (stderr: %s)", c.Command, err, bytes.TrimSpace(stderr.Bytes()))
	}

	return communication.ParseIndex(stdout.Bytes())
}

var _ communication.Classifier = (*Classifier)(nil)
