package cli

import (
	"bufio"
	"context"
	"io"
	"route-directions/internal/domain"
	"route-directions/internal/render"
	"route-directions/internal/services"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	ExitOK      = 0
	ExitFailure = 1

	originPrompt      = "Enter the origin address: "
	destinationPrompt = "Enter the destination address: "
)

// Addresses takes origin and destination from args when both are present.
// Otherwise both are prompted for on out and read from in, one per line;
// partially supplied arguments are ignored.
func Addresses(args []string, in io.Reader, out io.Writer) (origin, destination string, err error) {
	if len(args) >= 2 {
		return args[0], args[1], nil
	}

	br := bufio.NewReader(in)

	origin, err = prompt(br, out, originPrompt)
	if err != nil {
		return "", "", errors.Wrap(err, "read origin")
	}

	destination, err = prompt(br, out, destinationPrompt)
	if err != nil {
		return "", "", errors.Wrap(err, "read destination")
	}

	return origin, destination, nil
}

func prompt(br *bufio.Reader, out io.Writer, text string) (string, error) {
	if _, err := io.WriteString(out, text); err != nil {
		return "", err
	}

	line, err := br.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// Run executes one directions request and returns the process exit code.
// Only input and validation problems, or an aborted pipeline, yield ExitFailure;
// upstream API errors are rendered and still exit with ExitOK.
func Run(
	ctx context.Context,
	args []string,
	in io.Reader,
	out io.Writer,
	planner *services.Planner,
	logger *zap.Logger,
) int {
	origin, destination, err := Addresses(args, in, out)
	if err != nil {
		logger.Error("input failed", zap.Error(err))
		return ExitFailure
	}

	r := render.New(out)
	err = planner.Run(ctx, origin, destination, r)
	switch {
	case err == nil:
		return ExitOK
	case domain.IsValidationError(err):
		logger.Debug("validation failed", zap.Error(err))
		return ExitFailure
	default:
		logger.Error("directions failed", zap.Error(err))
		return ExitFailure
	}
}
