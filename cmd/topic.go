package cmd

import (
	"context"
	"errors"
	"flag"
	"strings"

	"github.com/etnz/bank/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read the manual" }
func (*topicCmd) Usage() string {
	return `topic [<topic>...]

Print the manual pages of the given topics, "*" for all of them. Without a
topic, prints the index of the manual.
`
}

func (*topicCmd) SetFlags(*flag.FlagSet) {}

func (*topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{docs.Readme}
	}

	page, err := docs.GetTopics(topics...)
	if errors.Is(err, docs.ErrUnknownTopic) {
		known, _ := docs.GetAllTopics()
		return usage("%v, known topics are: %s", err, strings.Join(known, ", "))
	}
	if err != nil {
		return fail(err)
	}
	printMarkdown(page)
	return subcommands.ExitSuccess
}
