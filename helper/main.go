package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/speedata/optionparser"
)

func dothings() error {
	dir := "patterns"
	out := "backend/lang/hyphenationpatterns.go"
	languages := "ru,en"
	op := optionparser.NewOptionParser()
	op.On("--dir DIR", "Write the pattern files to DIR (download)", &dir)
	op.On("--out FILE", "Write the Go file FILE (genpatterns)", &out)
	op.On("--languages LIST", "Comma separated language codes", &languages)
	op.Command("genpatterns", "Create the built-in hyphenation patterns")
	op.Command("download", "Download hyphenation pattern files")
	err := op.Parse()
	if err != nil {
		return err
	}

	if len(op.Extra) != 1 {
		op.Help()
		return nil
	}
	switch op.Extra[0] {
	case "genpatterns":
		return createPatterns(out, strings.Split(languages, ","))
	case "download":
		return downloadPatterns(dir, strings.Split(languages, ","))
	}
	op.Help()
	return nil
}

func main() {
	if err := dothings(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}
