// vtwidth is a utility to measure the width of a string as it will be rendered
// in the terminal
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"git.sr.ht/~rockorager/avada"
)

func main() {
	var verbose bool
	flag.BoolVar(&verbose, "v", false, "print verbose result")
	flag.BoolVar(&verbose, "verbose", false, "print verbose result")
	flag.Parse()

	var input string
	switch flag.NArg() {
	case 0:
		fmt.Print("Enter text: ")
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Scan()
		input = scanner.Text()
	case 1:
		input = flag.Arg(0)
	default:
		fmt.Println("multiple arguments not supported")
		os.Exit(1)
	}
	w := avada.StringWidth(input)
	fmt.Println(w)
	if verbose {
		fmt.Println("|" + strings.Repeat("-", w) + "|")
		fmt.Println("|" + input + "|")
	}
}
