package main

import (
	"fmt"
	"io"
)

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sitegen <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate    Render a page and save it as an HTML file")
	fmt.Fprintln(w, "  preview     Render a page and open it in the browser")
	fmt.Fprintln(w, "  serve       Serve a site definition over HTTP and reload on change")
	fmt.Fprintln(w, "  templates   List the available templates")
	fmt.Fprintln(w, "  palettes    List the accent palettes")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'sitegen <command> --help' for command flags.")
}
