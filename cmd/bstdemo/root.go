package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/e11jah/bst"
)

const (
	cfgOrder   = "order"
	cfgDelete  = "delete"
	cfgVerbose = "verbose"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:           "bstdemo [flags] ELEMENT...",
		Short:         "Insert integers into a binary search tree and print its traversals",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), v, args)
		},
	}
	registerFlags(cmd, v)
	return cmd
}

// registerFlags registers the configuration flags with the provided
// command and binds them to v. BSTDEMO_* environment variables override
// the defaults.
func registerFlags(cmd *cobra.Command, v *viper.Viper) {
	if !cmd.Flags().Parsed() {
		cmd.Flags().StringSlice(cfgOrder, []string{
			bst.Inorder.String(),
			bst.Preorder.String(),
			bst.Postorder.String(),
		}, "Traversals to print")
		cmd.Flags().StringSlice(cfgDelete, nil, "Elements to delete after all inserts")
		cmd.Flags().BoolP(cfgVerbose, "v", false, "Log every structural change")
	}

	_ = v.BindPFlags(cmd.Flags())
	v.SetEnvPrefix("bstdemo")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

func run(out, errOut io.Writer, v *viper.Viper, args []string) error {
	log := logrus.New()
	log.SetOutput(errOut)
	if v.GetBool(cfgVerbose) {
		log.SetLevel(logrus.DebugLevel)
		bst.Log.SetOutput(errOut)
		bst.Log.SetLevel(logrus.DebugLevel)
	}

	elems, err := parseInts(args)
	if err != nil {
		return err
	}
	deletes, err := parseInts(splitList(v.GetStringSlice(cfgDelete)))
	if err != nil {
		return err
	}
	orders := make([]bst.Order, 0, 3)
	for _, s := range splitList(v.GetStringSlice(cfgOrder)) {
		o, err := bst.ParseOrder(s)
		if err != nil {
			return err
		}
		orders = append(orders, o)
	}

	t := bst.New[int]()
	for _, e := range elems {
		if !t.Insert(e) {
			log.WithField("elem", e).Warn("duplicate element ignored")
		}
	}
	for _, e := range deletes {
		if !t.Delete(e) {
			log.WithField("elem", e).Warn("element not found")
		}
	}
	log.WithField("size", t.Size()).Debug("tree built")

	for _, o := range orders {
		if err := bst.Fprint(out, t, o); err != nil {
			return err
		}
	}
	return nil
}

func parseInts(args []string) ([]int, error) {
	ints := make([]int, 0, len(args))
	for _, arg := range args {
		i, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			return nil, fmt.Errorf("invalid element %q: %w", arg, err)
		}
		ints = append(ints, i)
	}
	return ints, nil
}

// splitList flattens comma separated entries. Flags arrive already split,
// BSTDEMO_* environment values arrive whitespace separated.
func splitList(entries []string) []string {
	list := make([]string, 0, len(entries))
	for _, entry := range entries {
		for _, s := range strings.Split(entry, ",") {
			if s = strings.TrimSpace(s); s != "" {
				list = append(list, s)
			}
		}
	}
	return list
}
