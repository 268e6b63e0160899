// main.go - pwalk CLI front-end
//
// (c) 2026- Sudhi Herle <sudhi@herle.net>
//
// Licensing Terms: GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package main

import (
	"fmt"
	"os"
	"path"

	"github.com/opencoff/go-logger"
	flag "github.com/opencoff/pflag"
	"github.com/opencoff/pwalk"
)

var z = path.Base(os.Args[0])

func main() {
	var threads int
	var verbose, help bool

	fs := flag.NewFlagSet(z, flag.ExitOnError)
	fs.IntVarP(&threads, "threads", "j", 0, "Use `N` worker goroutines [NumCPU]")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics (directory read errors, fatal errors) to STDERR [False]")
	fs.BoolVarP(&help, "help", "h", false, "Show help and exit [False]")
	fs.SetOutput(os.Stdout)

	if err := fs.Parse(os.Args[1:]); err != nil {
		die("%s", err)
	}
	if help {
		usage(fs)
	}

	root := "."
	if args := fs.Args(); len(args) > 0 {
		root = args[0]
	}

	w := pwalk.NewWalker[bool](threads)
	if verbose {
		log, err := logger.NewLogger("STDERR", logger.LOG_WARNING, z, logger.Ldate|logger.Ltime)
		if err != nil {
			die("logger: %s", err)
		}
		w = w.WithLogger(log)
	}

	res, err := w.Walk(root, func(p string, isDir bool) bool {
		return isDir
	})
	if err != nil {
		die("%s", err)
	}

	for _, e := range res.SortedView() {
		if e.Value {
			fmt.Printf("%s%c\n", e.Path, os.PathSeparator)
		} else {
			fmt.Println(e.Path)
		}
	}
}

func usage(fs *flag.FlagSet) {
	fmt.Printf(usageStr, z, z)
	fs.PrintDefaults()
	os.Exit(0)
}

func die(f string, v ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", z, fmt.Sprintf(f, v...))
	os.Exit(1)
}

var usageStr = `%s - parallel file system tree walker.

Usage: %s [options] [root]

root defaults to the current directory. Output lists every visited
path, one per line, sorted byte-lexicographically; directories are
suffixed with the platform path separator.

Options:
`
