package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/superisaac/jsinspect"
	"github.com/superisaac/jsinspect/generator"
	"github.com/superisaac/jsinspect/schema"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: jsinspect validate|sanitize|generate [options] [values...]\n")
	os.Exit(1)
}

func setupLogger() {
	logLevel := os.Getenv("JSINSPECT_LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad log level %s\n", logLevel)
		os.Exit(1)
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)
}

func main() {
	setupLogger()
	if len(os.Args) < 2 {
		usage()
	}
	switch os.Args[1] {
	case "validate":
		runValidate(os.Args[2:])
	case "sanitize":
		runSanitize(os.Args[2:])
	case "generate":
		runGenerate(os.Args[2:])
	default:
		usage()
	}
}

type commonFlags struct {
	schemaPath    *string
	candidatePath *string
	dump          *bool
}

func newFlagSet(name string) (*flag.FlagSet, commonFlags) {
	cliFlags := flag.NewFlagSet("jsinspect-"+name, flag.ExitOnError)
	common := commonFlags{
		schemaPath:    cliFlags.String("schema", "", "schema file, JSON or YAML, can be in env JSINSPECT_SCHEMA"),
		candidatePath: cliFlags.String("f", "", "candidate JSON file, - for stdin"),
		dump:          cliFlags.Bool("dump", false, "dump the parsed schema and exit"),
	}
	return cliFlags, common
}

func loadSchema(common commonFlags) *schema.Schema {
	schemaPath := *common.schemaPath
	if schemaPath == "" {
		schemaPath = os.Getenv("JSINSPECT_SCHEMA")
	}
	if schemaPath == "" {
		log.Fatalf("no schema file given")
	}
	data, err := os.ReadFile(schemaPath)
	if err != nil {
		log.Fatalf("read schema %s: %s", schemaPath, err)
	}
	s, err := jsinspect.ParseSchema(data)
	if err != nil {
		log.Fatalf("schema error: %s", err)
	}
	if *common.dump {
		printPretty(s.Map())
		os.Exit(0)
	}
	return s
}

// loadCandidates returns the candidate read from -f, or the command
// line values guessed one by one.
func loadCandidates(common commonFlags, args []string) []any {
	if *common.candidatePath != "" {
		var data []byte
		var err error
		if *common.candidatePath == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(*common.candidatePath)
		}
		if err != nil {
			log.Fatalf("read candidate: %s", err)
		}
		candidate, err := jsinspect.ParseCandidate(data)
		if err != nil {
			log.Fatalf("candidate error: %s", err)
		}
		return []any{candidate}
	}
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "no candidate, use -f or give values\n")
		os.Exit(1)
	}
	candidates, err := jsinspect.GuessJsonArray(args)
	if err != nil {
		log.Fatalf("values error: %s", err)
	}
	return candidates
}

func printPretty(v any) {
	repr, err := jsinspect.EncodePretty(v)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%s\n", repr)
}

func runValidate(args []string) {
	cliFlags, common := newFlagSet("validate")
	pJson := cliFlags.Bool("json", false, "print results as JSON")
	cliFlags.Parse(args)

	s := loadSchema(common)
	invalid := false
	for _, candidate := range loadCandidates(common, cliFlags.Args()) {
		c := jsinspect.NewCandidate(candidate).Validate(s)
		if *pJson {
			printPretty(c.Validation)
		} else {
			fmt.Println(c.Validation.Format())
		}
		if !c.Validation.Valid {
			invalid = true
		}
	}
	if invalid {
		os.Exit(1)
	}
}

func runSanitize(args []string) {
	cliFlags, common := newFlagSet("sanitize")
	pReport := cliFlags.Bool("report", false, "print the sanitization report to stderr")
	cliFlags.Parse(args)

	s := loadSchema(common)
	for _, candidate := range loadCandidates(common, cliFlags.Args()) {
		c := jsinspect.NewCandidate(candidate).Sanitize(s)
		if *pReport && c.Sanitization.Changed() {
			fmt.Fprintln(os.Stderr, c.Sanitization.Format())
		}
		printPretty(c.Value())
	}
}

func runGenerate(args []string) {
	cliFlags, common := newFlagSet("generate")
	pCount := cliFlags.Int("n", 0, "generate a list of n values")
	pSeed := cliFlags.Int64("seed", 0, "random seed, 0 picks one")
	cliFlags.Parse(args)

	s := loadSchema(common)
	g := generator.New(generator.Options{Seed: *pSeed})
	if *pCount > 0 {
		printPretty(g.GenerateN(s, *pCount))
	} else {
		printPretty(g.Generate(s))
	}
}
