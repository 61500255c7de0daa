// Package cmd implements the fb command line application.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/finbook/finbook"
	"github.com/google/subcommands"
)

// Commands lists every subcommand of the application, for registration by the
// main package.
var Commands = []subcommands.Command{
	&importCmd{},
	&importGainsCmd{},
	&importDividendsCmd{},
	&xirrCmd{},
	&txCmd{},
	&assistCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bookFile = flag.String("book-file", "book.jsonl", "Path to the account book file (JSONL format)")
var defaultCurrency = flag.String("currency", "INR", "Currency used to render report amounts")

// DecodeBookFile loads the account book from the app book file.
func DecodeBookFile() (*finbook.Book, error) {
	f, err := os.Open(*bookFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, book file does not exist, starting from an empty book")
		return finbook.NewBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open book file %q: %w", *bookFile, err)
	}
	defer f.Close()
	return finbook.DecodeBook(f)
}

// AppendRecords appends records to the app book file, creating it if needed.
func AppendRecords(recs ...finbook.Record) subcommands.ExitStatus {
	f, err := os.OpenFile(*bookFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening book file %q: %v\n", *bookFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	for _, rec := range recs {
		if err := finbook.EncodeRecord(f, rec); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing to book file %q: %v\n", *bookFile, err)
			return subcommands.ExitFailure
		}
	}

	fmt.Printf("Appended %d records to %s\n", len(recs), *bookFile)
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
