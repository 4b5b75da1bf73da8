// boardgen converts a flat CSV word list into the board JSON document habla
// reads. Each CSV row is "category,word,image"; categories keep first-seen
// order, words keep row order.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"habla/internal/board"
)

const version = "v0.1.0"
const defaultInputFile = "words.csv"
const defaultOutputFile = "data_es_final.json"

func printCustomUsage() {
	fmt.Fprintf(os.Stderr, "boardgen (%s) - Converts a CSV word list to habla's board JSON document.\n\n", version)
	fmt.Fprintf(os.Stderr, "USAGE:\n")
	fmt.Fprintf(os.Stderr, "  boardgen [flags]\n")
	fmt.Fprintf(os.Stderr, "  cat words.csv | boardgen\n\n")
	fmt.Fprintf(os.Stderr, "By default, it reads '%s' and writes to '%s'.\n", defaultInputFile, defaultOutputFile)
	fmt.Fprintf(os.Stderr, "If '%s' is not found, it will attempt to read from standard input.\n\n", defaultInputFile)
	fmt.Fprintf(os.Stderr, "FLAGS:\n")
	flag.PrintDefaults()
}

func main() {
	fmt.Printf("boardgen (%s) - Board Document Converter\n\n", version)

	inputFile := flag.String("in", "", "Input CSV file. (default: words.csv or stdin)")
	outputFile := flag.String("out", defaultOutputFile, "Output JSON board document.")
	flag.Usage = printCustomUsage
	flag.Parse()

	var reader io.Reader
	var inputSourceName string

	// Priority: 1. -in flag, 2. Stdin pipe, 3. Default file
	if *inputFile != "" {
		file, err := os.Open(*inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening specified input file '%s': %v\n", *inputFile, err)
			os.Exit(1)
		}
		defer file.Close()
		reader = file
		inputSourceName = *inputFile
	} else {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) == 0 {
			reader = os.Stdin
			inputSourceName = "standard input"
		} else {
			file, err := os.Open(defaultInputFile)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error opening default input file '%s': %v\n", defaultInputFile, err)
				fmt.Fprintln(os.Stderr, "You can specify a file with -in or pipe data to the program.")
				os.Exit(1)
			}
			defer file.Close()
			reader = file
			inputSourceName = defaultInputFile
		}
	}

	fmt.Printf("Reading word list from %s...\n", inputSourceName)
	start := time.Now()

	b, rows, err := loadBoardFromCSV(reader)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error reading or parsing word list:", err)
		os.Exit(1)
	}
	fmt.Printf(" -> Loaded %d words across %d categories in %v.\n", rows, b.Len(), time.Since(start))

	fmt.Printf("Writing board document to %s...\n", *outputFile)
	start = time.Now()
	if err := board.Save(*outputFile, b); err != nil {
		fmt.Fprintln(os.Stderr, "Error writing board document:", err)
		os.Exit(1)
	}
	fmt.Printf(" -> Successfully wrote board document in %v.\n\n", time.Since(start))
	fmt.Println("Conversion complete.")
}

// loadBoardFromCSV reads "category,word,image" rows into a board, keeping
// first-seen category order. A leading header row is skipped.
func loadBoardFromCSV(r io.Reader) (*board.Board, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	b := board.New()
	rows := 0
	lineNum := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("error on line %d: %w", lineNum+1, err)
		}
		lineNum++
		if lineNum == 1 && len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "category") {
			continue
		}
		if len(record) < 2 {
			return nil, 0, fmt.Errorf("error on line %d: expected category,word[,image]", lineNum)
		}
		category := strings.TrimSpace(record[0])
		entry := board.Entry{Word: strings.TrimSpace(record[1])}
		if len(record) > 2 {
			entry.Image = strings.TrimSpace(record[2])
		}
		entries, _ := b.Entries(category)
		b.Set(category, append(entries, entry))
		rows++
	}
	return b, rows, nil
}
