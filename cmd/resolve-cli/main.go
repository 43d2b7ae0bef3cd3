package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"roomstudio/internal/config"
	"roomstudio/pkg/catalog"
	"roomstudio/pkg/logger"
	"roomstudio/pkg/resolver"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		logger.Fatalf("resolve-cli: %v", err)
	}
}

// run resolves labels given as arguments, or one per line on stdin when no
// arguments are given, printing label<TAB>key<TAB>known for each.
func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("resolve-cli", flag.ContinueOnError)
	var configPath string
	var quiet bool
	fs.StringVar(&configPath, "config", "", "Optional config file whose catalog.aliases extend the builtin vocabulary")
	fs.BoolVar(&quiet, "quiet", false, "Do not log unresolved labels")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cat := catalog.Default()
	aliases, err := resolver.NewAliasTable(cat, catalog.BuiltinAliases())
	if err != nil {
		return err
	}
	if configPath != "" {
		conf, err := config.LoadFile(configPath)
		if err != nil {
			return err
		}
		if aliases, err = aliases.Extend(cat, conf.Catalog.Aliases); err != nil {
			return fmt.Errorf("configured aliases: %w", err)
		}
	}

	var opts []resolver.Option
	if quiet {
		opts = append(opts, resolver.WithObserver(nil))
	}
	res := resolver.New(cat, aliases, opts...)

	w := bufio.NewWriter(stdout)
	defer w.Flush()
	emit := func(label string) {
		key, known := res.Lookup(label)
		fmt.Fprintf(w, "%s\t%s\t%t\n", label, key, known)
	}

	if fs.NArg() > 0 {
		for _, label := range fs.Args() {
			emit(label)
		}
		return nil
	}

	sc := bufio.NewScanner(stdin)
	for sc.Scan() {
		if label := strings.TrimRight(sc.Text(), "\r"); label != "" {
			emit(label)
		}
	}
	return sc.Err()
}
