// Command incrhash computes and maintains incremental set digests.
//
// Elements are read one per line. Digests of named sets can be kept in a
// LevelDB database and updated by inserting and removing elements without
// rehashing the rest of the set.
package main

import (
	"fmt"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/urfave/cli"
	"io"
	"os"
	"sync"
)

var log = logger.GetOrCreate("incrhash")

const helpTemplate = `NAME:
   {{.Name}} - {{.Usage}}
USAGE:
   {{.HelpName}} {{if .VisibleFlags}}[global options]{{end}}{{if .Commands}} command [arguments...]{{end}}
   {{if .Commands}}
COMMANDS:
   {{range .VisibleCommands}}{{join .Names ", "}}{{"\t"}}{{.Usage}}
   {{end}}{{end}}{{if .VisibleFlags}}
GLOBAL OPTIONS:
   {{range .VisibleFlags}}{{.}}
   {{end}}{{end}}
VERSION:
   {{.Version}}
`

var (
	configFile = cli.StringFlag{
		Name:  "config",
		Usage: "Location of a YAML config file.",
	}
	algorithm = cli.StringFlag{
		Name:  "algorithm",
		Usage: "Digest algorithm used to map elements to the group, see the algorithms command.",
		Value: defaultAlgorithm,
	}
	database = cli.StringFlag{
		Name:  "database",
		Usage: "LevelDB directory holding set digests. Sets are not persisted when empty.",
	}
	workers = cli.IntFlag{
		Name:  "workers",
		Usage: "Number of goroutines hashing elements. Zero means one per CPU.",
	}
	logLevel = cli.StringFlag{
		Name:  "log-level",
		Usage: "Logger level(s), e.g. *:DEBUG or incrhash/store:TRACE.",
		Value: defaultLogLevel,
	}

	// stdin is read for elements when none are given as arguments.
	stdin io.Reader = os.Stdin
)

func main() {
	app := newApp(os.Stdout)
	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	app := cli.NewApp()
	cli.AppHelpTemplate = helpTemplate
	app.Name = "incrhash"
	app.Version = "v1.0.0"
	app.Usage = "Order-independent, incrementally updatable digests of collections"
	app.Writer = out
	app.Flags = []cli.Flag{configFile, algorithm, database, workers, logLevel}

	cmd := &commands{out: out}
	app.Before = cmd.setup
	app.Commands = []cli.Command{
		{
			Name:      "hash",
			Usage:     "Print the digest of the lines of the given files, or of stdin",
			ArgsUsage: "[files...]",
			Action:    cmd.hash,
		},
		{
			Name:      "insert",
			Usage:     "Insert elements into a stored set and print its digest",
			ArgsUsage: "<set> [elements...]",
			Action:    cmd.insert,
		},
		{
			Name:      "remove",
			Usage:     "Remove elements from a stored set and print its digest",
			ArgsUsage: "<set> [elements...]",
			Action:    cmd.remove,
		},
		{
			Name:      "show",
			Usage:     "Print the digest of a stored set",
			ArgsUsage: "<set>",
			Action:    cmd.show,
		},
		{
			Name:   "algorithms",
			Usage:  "List the digest algorithms",
			Action: cmd.algorithms,
		},
	}
	return app
}

var redirectLogs sync.Once

// setupLogger sends log output to stderr so it never mixes with digests
// printed on stdout.
func setupLogger(level string) error {
	err := logger.SetLogLevel(level)
	if err != nil {
		return err
	}
	redirectLogs.Do(func() {
		// The stdout observer is absent if it was already removed.
		_ = logger.RemoveLogObserver(os.Stdout)
		err = logger.AddLogObserver(os.Stderr, &logger.PlainFormatter{})
	})
	return err
}
