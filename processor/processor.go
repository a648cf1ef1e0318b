/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package processor

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/jessevdk/go-flags"

	"github.com/suparena/aliasstore"
	"github.com/suparena/aliasstore/aliasmap"
	"github.com/suparena/aliasstore/errors"
	"github.com/suparena/aliasstore/registry"
	"github.com/suparena/aliasstore/seed/file"
)

// Options are the global command line options
type Options struct {
	Manifest string `short:"m" long:"manifest" env:"ALIASMAP_MANIFEST" value-name:"FILE" description:"Manifest to seed the alias map from"`
	Version  bool   `short:"v" long:"version" description:"Show version information"`
}

type app struct {
	opts   Options
	stdout io.Writer
}

// Main runs the command line tool against os.Args and exits on failure
func Main() {
	if err := Run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// Run parses args, executes the selected command and writes its output to stdout
func Run(args []string, stdout io.Writer) error {
	a := &app{stdout: stdout}

	parser := flags.NewNamedParser("aliasmap", flags.HelpFlag|flags.PassDoubleDash)
	parser.SubcommandsOptional = true
	if _, err := parser.AddGroup("Application Options", "", &a.opts); err != nil {
		return err
	}

	commands := []struct {
		name, short string
		cmd         flags.Commander
	}{
		{"keys", "List every key in insertion order", &keysCommand{a}},
		{"origins", "List origin keys", &originsCommand{a}},
		{"aliases", "List aliases and the origin each resolves to", &aliasesCommand{a}},
		{"groups", "List origin keys together with their aliases", &groupsCommand{a}},
		{"resolve", "Resolve keys to their origin and value", &resolveCommand{a}},
		{"inspect", "Dump the alias map or selected values", &inspectCommand{a}},
		{"formats", "List the registered manifest formats and codecs", &formatsCommand{a}},
	}
	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, "", c.cmd); err != nil {
			return err
		}
	}

	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		if cmd == nil {
			return nil
		}
		if a.opts.Version {
			return a.printVersion()
		}
		return cmd.Execute(args)
	}

	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if stderrors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, flagsErr.Message)
			return nil
		}
		return err
	}

	if parser.Active == nil {
		if a.opts.Version {
			return a.printVersion()
		}
		parser.WriteHelp(stdout)
		return errors.NewValidationError("command", "a command is required")
	}
	return nil
}

func (a *app) printVersion() error {
	info := aliasstore.GetVersionInfo()
	fmt.Fprintf(a.stdout, "AliasStore aliasmap version %s\n", info.Version)
	fmt.Fprintf(a.stdout, "Git commit: %s\n", info.GitCommit)
	fmt.Fprintf(a.stdout, "Build date: %s\n", info.BuildDate)
	fmt.Fprintf(a.stdout, "Go version: %s\n", info.GoVersion)
	return nil
}

func (a *app) loadStore() (*aliasstore.Store[any], error) {
	if a.opts.Manifest == "" {
		return nil, errors.NewValidationError("manifest", "no manifest given; use --manifest or ALIASMAP_MANIFEST")
	}
	return aliasstore.NewStoreFromSupplier[any](context.Background(), file.New[any](a.opts.Manifest))
}

type keysCommand struct{ app *app }

func (c *keysCommand) Execute(_ []string) error {
	store, err := c.app.loadStore()
	if err != nil {
		return err
	}
	for _, key := range store.Keys() {
		fmt.Fprintln(c.app.stdout, key)
	}
	return nil
}

type originsCommand struct{ app *app }

func (c *originsCommand) Execute(_ []string) error {
	store, err := c.app.loadStore()
	if err != nil {
		return err
	}
	for _, key := range store.OriginKeys() {
		fmt.Fprintln(c.app.stdout, key)
	}
	return nil
}

type aliasesCommand struct{ app *app }

func (c *aliasesCommand) Execute(_ []string) error {
	store, err := c.app.loadStore()
	if err != nil {
		return err
	}
	for _, alias := range store.Aliases() {
		origin, _ := store.OriginOf(alias)
		fmt.Fprintf(c.app.stdout, "%s -> %s\n", alias, origin)
	}
	return nil
}

type groupsCommand struct{ app *app }

func (c *groupsCommand) Execute(_ []string) error {
	store, err := c.app.loadStore()
	if err != nil {
		return err
	}
	for _, group := range store.AliasedKeys() {
		fmt.Fprintf(c.app.stdout, "%s: %s\n", group.Origin, strings.Join(group.Aliases, ", "))
	}
	return nil
}

type resolveCommand struct{ app *app }

// Execute prints every key it can resolve and reports the rest together
func (c *resolveCommand) Execute(args []string) error {
	if len(args) == 0 {
		return errors.NewValidationError("keys", "resolve needs at least one key")
	}
	store, err := c.app.loadStore()
	if err != nil {
		return err
	}

	var errs []error
	for _, key := range args {
		value, ok := store.Get(key)
		if !ok {
			errs = append(errs, errors.NewKeyNotFoundError(key))
			continue
		}
		origin, _ := store.OriginOf(key)
		fmt.Fprintf(c.app.stdout, "%s => %s: %v\n", key, origin, value)
	}
	return stderrors.Join(errs...)
}

type inspectCommand struct{ app *app }

type inspection struct {
	Items       []aliasmap.Pair[string, any]
	AliasedKeys []aliasmap.AliasGroup[string]
}

func (c *inspectCommand) Execute(args []string) error {
	store, err := c.app.loadStore()
	if err != nil {
		return err
	}

	dumper := spew.ConfigState{Indent: "  ", SortKeys: true, DisablePointerAddresses: true, DisableCapacities: true}
	if len(args) == 0 {
		dumper.Fdump(c.app.stdout, inspection{Items: store.Items(), AliasedKeys: store.AliasedKeys()})
		return nil
	}

	for _, key := range args {
		value, ok := store.Get(key)
		if !ok {
			return errors.NewKeyNotFoundError(key)
		}
		fmt.Fprintf(c.app.stdout, "%s: ", key)
		dumper.Fdump(c.app.stdout, value)
	}
	return nil
}

type formatsCommand struct{ app *app }

func (c *formatsCommand) Execute(_ []string) error {
	for _, section := range []struct {
		title   string
		entries []registry.Entry
	}{
		{"formats", registry.Formats()},
		{"codecs", registry.Codecs()},
	} {
		fmt.Fprintf(c.app.stdout, "%s:\n", section.title)
		for _, e := range section.entries {
			line := fmt.Sprintf("  %s\t%s", e.Ext, e.Name)
			if len(e.Aliases) > 0 {
				line += "\t(" + strings.Join(e.Aliases, ", ") + ")"
			}
			fmt.Fprintln(c.app.stdout, line)
		}
	}
	return nil
}
