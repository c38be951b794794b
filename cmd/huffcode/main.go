// Command huffcode is an interactive front end for the huffman package.
// It reads a string, prints the frequency and code tables, the encoded and
// decoded forms, a verification verdict, and the compression ratio, then
// offers to go again.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/Samreen555/huffman"
)

func main() {
	in := bufio.NewScanner(os.Stdin)
	out := os.Stdout

	for {
		fmt.Fprint(out, "Enter a string: ")
		if !in.Scan() {
			break
		}
		input := in.Text()
		if input == "" {
			fmt.Fprintln(out, "Nothing to encode.")
		} else {
			run(out, input)
		}

		fmt.Fprint(out, "\nWould you like to test another string? (y/n): ")
		if !in.Scan() {
			break
		}
		if ans := strings.ToLower(strings.TrimSpace(in.Text())); ans != "y" {
			break
		}
		fmt.Fprintln(out)
	}
	if err := in.Err(); err != nil {
		log.Fatal(err)
	}
	fmt.Fprintln(out, "\nThank you for using the Huffman encoding program!")
}

func run(out io.Writer, input string) {
	c, err := huffman.New(input)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Fprintln(out, "\nFrequency table:")
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "Character\tFrequency")
	for _, sym := range c.Frequencies().Symbols() {
		fmt.Fprintf(tw, "%c\t%d\n", sym, c.Frequencies().Of(sym))
	}
	tw.Flush()

	fmt.Fprintln(out, "\nHuffman codes:")
	tw = tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "Character\tFrequency\tCode")
	for _, sym := range c.Frequencies().Symbols() {
		fmt.Fprintf(tw, "%c\t%d\t%s\n", sym, c.Frequencies().Of(sym), c.Codes()[sym])
	}
	tw.Flush()

	decoded, err := c.RoundTrip()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Fprintf(out, "\nOriginal string: %s\n", input)
	fmt.Fprintf(out, "Encoded string: %s\n", c.Encoded())
	fmt.Fprintf(out, "Decoded string: %s\n", decoded)

	if c.Verify() {
		fmt.Fprintln(out, "\nVerification successful: decoded string matches the original.")
	} else {
		fmt.Fprintln(out, "\nVerification failed: decoded string does not match the original.")
	}

	fmt.Fprintf(out, "\nOriginal size: %d bits\n", c.OriginalBits())
	fmt.Fprintf(out, "Compressed size: %d bits\n", c.EncodedBits())
	fmt.Fprintf(out, "Compression ratio: %.2f\n", c.Ratio())
}
