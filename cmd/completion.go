package cmd

import (
	"flag"
	"io"
	"strings"

	"github.com/etnz/savings/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the commands and flags of the application for shell
// completion.
func Completion() *complete.Command {
	c := &complete.Command{
		Sub: make(map[string]*complete.Command),
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.csv"),
			"currency":    predict.Something,
			"v":           predict.Nothing,
		},
	}
	for _, cmd := range Commands {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		cmd.SetFlags(fs)

		sub := &complete.Command{Flags: make(map[string]complete.Predictor)}
		fs.VisitAll(func(f *flag.Flag) {
			sub.Flags[f.Name] = flagPredictor(cmd.Name(), f)
		})
		if cmd.Name() == "topic" {
			sub.Args = topicPredictor
		}
		c.Sub[cmd.Name()] = sub
	}
	return c
}

// flagPredictor returns the predictor for the flag 'f' of command 'name'.
func flagPredictor(name string, f *flag.Flag) complete.Predictor {
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	switch {
	case f.Name == "name" && name == "update":
		return accountPredictor
	case f.Name == "f" || f.Name == "o":
		return predict.Or(predict.Files("*.csv"), predict.Files("*.json"))
	case f.Name == "format":
		return predict.Set{"csv", "json"}
	}
	return predict.Something
}

// accountPredictor suggests the account names of the ledger file.
var accountPredictor = complete.PredictFunc(func(prefix string) []string {
	ledger, err := DecodeLedger()
	if err != nil {
		return nil
	}
	var names []string
	for _, a := range ledger.Accounts() {
		if strings.HasPrefix(a.Name(), prefix) {
			names = append(names, a.Name())
		}
	}
	return names
})

// topicPredictor suggests documentation topics.
var topicPredictor = complete.PredictFunc(func(prefix string) []string {
	topics, err := docs.GetAllTopics()
	if err != nil {
		return nil
	}
	return append(topics, "readme")
})
