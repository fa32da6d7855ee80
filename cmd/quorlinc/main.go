// Command quorlinc is the Quorlin compiler's CLI host: a thin cobra
// wrapper around internal/pipeline, grounded on the teacher's
// cmd/dwscript entry point.
package main

import "github.com/EmekaIwuagwu/quorlin-lang/cmd/quorlinc/cmd"

func main() {
	cmd.Execute()
}
