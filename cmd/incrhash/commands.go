package main

import (
	"bufio"
	"context"
	"fmt"
	"github.com/pkg/errors"
	"github.com/takakv/incrhash/digest"
	"github.com/takakv/incrhash/store"
	"github.com/takakv/incrhash/store/memory"
	"github.com/urfave/cli"
	"io"
	"os"
	"os/signal"
)

// maxElementSize bounds the length of one input line.
const maxElementSize = 64 << 20

type commands struct {
	out    io.Writer
	config *Config
	run    runner
}

// setup loads the config file, applies the global flags on top of it and
// configures logging.
func (cmd *commands) setup(c *cli.Context) error {
	config, err := ReadConfig(c.GlobalString(configFile.Name))
	if err != nil {
		return err
	}
	if c.GlobalIsSet(algorithm.Name) {
		config.Algorithm = c.GlobalString(algorithm.Name)
	}
	if c.GlobalIsSet(database.Name) {
		config.Database = c.GlobalString(database.Name)
	}
	if c.GlobalIsSet(workers.Name) {
		config.Workers = c.GlobalInt(workers.Name)
	}
	if c.GlobalIsSet(logLevel.Name) {
		config.LogLevel = c.GlobalString(logLevel.Name)
	}
	if err := config.validate(); err != nil {
		return err
	}

	if err := setupLogger(config.LogLevel); err != nil {
		return errors.Wrap(err, "setting up logger")
	}
	run, err := runnerFor(config.Algorithm)
	if err != nil {
		return err
	}
	cmd.config, cmd.run = config, run

	log.Debug("config loaded", "algorithm", config.Algorithm, "database", config.Database, "workers", config.Workers)
	return nil
}

func (cmd *commands) hash(c *cli.Context) error {
	var elements [][]byte
	if !c.Args().Present() {
		var err error
		elements, err = readElements(stdin)
		if err != nil {
			return errors.Wrap(err, "reading stdin")
		}
	}
	for _, name := range c.Args() {
		fileElements, err := readFile(name)
		if err != nil {
			return err
		}
		elements = append(elements, fileElements...)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := cmd.run.hash(ctx, elements, cmd.config.Workers)
	if err != nil {
		return err
	}
	log.Debug("collection hashed", "elements", len(elements))
	fmt.Fprintln(cmd.out, result)
	return nil
}

func (cmd *commands) insert(c *cli.Context) error {
	return cmd.update(c, true)
}

func (cmd *commands) remove(c *cli.Context) error {
	return cmd.update(c, false)
}

func (cmd *commands) update(c *cli.Context, insert bool) error {
	set, err := setName(c)
	if err != nil {
		return err
	}
	elements := make([][]byte, 0, len(c.Args().Tail()))
	for _, arg := range c.Args().Tail() {
		elements = append(elements, []byte(arg))
	}
	if len(elements) == 0 {
		elements, err = readElements(stdin)
		if err != nil {
			return errors.Wrap(err, "reading stdin")
		}
	}

	backend, err := cmd.openBackend()
	if err != nil {
		return err
	}
	defer closeBackend(backend)

	var result string
	if insert {
		result, err = cmd.run.apply(backend, set, elements, nil)
	} else {
		result, err = cmd.run.apply(backend, set, nil, elements)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.out, result)
	return nil
}

func (cmd *commands) show(c *cli.Context) error {
	set, err := setName(c)
	if err != nil {
		return err
	}
	backend, err := cmd.openBackend()
	if err != nil {
		return err
	}
	defer closeBackend(backend)

	result, err := cmd.run.show(backend, set)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.out, result)
	return nil
}

func (cmd *commands) algorithms(c *cli.Context) error {
	for _, name := range digest.Names() {
		fmt.Fprintln(cmd.out, name)
	}
	return nil
}

func (cmd *commands) openBackend() (store.Backend, error) {
	if cmd.config.Database == "" {
		log.Warn("no database configured, set changes are not persisted")
		return memory.New(), nil
	}
	backend, err := store.OpenLevelDB(cmd.config.Database)
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	return backend, nil
}

func closeBackend(backend store.Backend) {
	log.LogIfError(backend.Close())
}

func setName(c *cli.Context) (string, error) {
	set := c.Args().First()
	if set == "" {
		return "", errors.Errorf("%s: missing set name", c.Command.Name)
	}
	return set, nil
}

func readFile(name string) ([][]byte, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	elements, err := readElements(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return elements, nil
}

// readElements returns every line of r as one element. Lines may be empty.
func readElements(r io.Reader) ([][]byte, error) {
	var elements [][]byte
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxElementSize)
	for scanner.Scan() {
		elements = append(elements, append([]byte{}, scanner.Bytes()...))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return elements, nil
}
