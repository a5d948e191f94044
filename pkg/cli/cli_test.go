package cli_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/bridgerisk/pkg/cli"
	"github.com/secmon-lab/bridgerisk/pkg/domain/types"
)

func TestRun_HumanOutput(t *testing.T) {
	err := cli.Run(context.Background(), []string{
		"bridgerisk", "--style", "aztec", "--zk", "--audits",
	}, "test")
	gt.NoError(t, err)
}

func TestRun_JSONOutput(t *testing.T) {
	err := cli.Run(context.Background(), []string{
		"bridgerisk", "--json", "--style", "zama", "--fhe", "--mpc-signers", "--tvl-rank", "50",
	}, "test")
	gt.NoError(t, err)
}

func TestRun_UnknownStyle(t *testing.T) {
	err := cli.Run(context.Background(), []string{
		"bridgerisk", "--style", "wormhole",
	}, "test")
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrUnknownStyle))
}

func TestRun_StylesCommand(t *testing.T) {
	err := cli.Run(context.Background(), []string{"bridgerisk", "styles"}, "test")
	gt.NoError(t, err)
}

func TestRun_InvalidLogLevel(t *testing.T) {
	err := cli.Run(context.Background(), []string{
		"bridgerisk", "--log-level", "verbose",
	}, "test")
	gt.Error(t, err)
}

func TestRun_InvalidLogFormat(t *testing.T) {
	err := cli.Run(context.Background(), []string{
		"bridgerisk", "--log-format", "xml",
	}, "test")
	gt.Error(t, err)
}

func TestRun_LogFileOutput(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "bridgerisk.log")
	err := cli.Run(context.Background(), []string{
		"bridgerisk", "--json", "--log-output", logPath, "--log-format", "json",
	}, "test")
	gt.NoError(t, err)

	_, err = os.Stat(logPath)
	gt.NoError(t, err)
}
