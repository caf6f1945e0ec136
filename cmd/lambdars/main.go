package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattnappo/lambdars/pkg/lambda"
	"github.com/mattnappo/lambdars/pkg/output"
)

func main() {
	budget := flag.Uint64("budget", 0, "maximum beta steps before giving up (0 = unlimited)")
	flag.Parse()

	var input []byte
	var err error

	if flag.NArg() > 0 {
		input, err = os.ReadFile(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
			os.Exit(1)
		}
	} else {
		input, err = io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(1)
		}
	}

	term, inputs, err := lambda.ParseProgram(string(input))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Parse error: %v\n", err)
		os.Exit(1)
	}

	eval := lambda.NewEvaluator()
	eval.SetBudget(*budget)
	if os.Getenv("LAMBDA_TRACE") != "" {
		eval.EnableTrace(1000)
	}

	start := time.Now()
	reduced, err := eval.Eval(term)
	elapsed := time.Since(start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Eval error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s --> %s\n", term, reduced)

	if len(inputs) > 0 {
		val, err := output.Construct(reduced, inputs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Output error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(val)
	}

	for _, ev := range eval.TraceSnapshot() {
		fmt.Fprintf(os.Stderr, "step %d: %s --> %s\n", ev.Step, ev.Redex, ev.Result)
	}

	stats := eval.Stats()
	seconds := elapsed.Seconds()

	fmt.Fprintf(os.Stderr, "\nStats:\n")
	fmt.Fprintf(os.Stderr, "Time: %v\n", elapsed)
	fmt.Fprintf(os.Stderr, "Beta steps: %d", stats.BetaSteps)
	if seconds > 0 {
		fmt.Fprintf(os.Stderr, " (%.2f ops/sec)", float64(stats.BetaSteps)/seconds)
	}
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "Substitutions: %d\n", stats.Substitutions)
}
