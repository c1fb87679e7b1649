package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/tuido/internal/form"
	"github.com/idilsaglam/tuido/internal/model"
	"github.com/idilsaglam/tuido/internal/ui"
)

func newAddCmd(opts *Options) *cobra.Command {
	var description, status string
	cmd := &cobra.Command{
		Use:     "add <title...>",
		Short:   "Add a new item (title can be multiple words)",
		Example: `  tuido add Buy milk -d "2L, semi-skimmed"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usagef("usage: tuido add <title...> -d <description>")
			}
			st, err := model.ParseStatus(status)
			if err != nil {
				return usagef("add: %v", err)
			}

			s, err := openSession(opts)
			if err != nil {
				return err
			}
			defer s.Close()

			f := form.New(nil)
			rec := f.Record()
			rec.Title = strings.Join(args, " ")
			rec.Description = description
			rec.Status = st
			f.Load(rec)
			if !f.IsComplete() {
				return usagef("add: title and description are required")
			}

			s.list.Insert(f.Record())
			if err := s.save(); err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), "added")
			return nil
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "item description (required)")
	cmd.Flags().StringVarP(&status, "status", "s", model.Pending.String(), "Pending, InProgress or Completed")
	return cmd
}

func newListCmd(opts *Options) *cobra.Command {
	var group bool
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List items",
		Args:    noArgs("ls"),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts)
			if err != nil {
				return err
			}
			defer s.Close()
			printList(cmd.OutOrStdout(), s.list, group)
			return nil
		},
	}
	cmd.Flags().BoolVar(&group, "group", false, "group output by pending/done")
	return cmd
}

func newDoneCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "done <index>",
		Short: "Toggle done for the item at a 1-based index",
		Args:  oneIndex("done"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withIndex(opts, args[0], func(s *session) string {
				s.list.ToggleCompleted()
				return "toggled"
			}, cmd)
		},
	}
}

func newRemoveCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <index>",
		Short: "Remove the item at a 1-based index",
		Args:  oneIndex("rm"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withIndex(opts, args[0], func(s *session) string {
				s.list.RemoveSelected()
				return "removed"
			}, cmd)
		},
	}
}

// withIndex selects the item at the 1-based index arg, applies op and saves.
func withIndex(opts *Options, arg string, op func(*session) string, cmd *cobra.Command) error {
	n, _ := strconv.Atoi(arg) // validated by oneIndex
	s, err := openSession(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	if n < 1 || n > s.list.Len() {
		return usagef("index out of range: have %d, got %d (run `tuido ls` to see valid indexes)", s.list.Len(), n)
	}
	s.list.Select(n - 1)
	msg := op(s)
	if err := s.save(); err != nil {
		return err
	}
	ui.OK(cmd.OutOrStdout(), msg)
	return nil
}

func noArgs(name string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 {
			return usagef("usage: tuido %s", name)
		}
		return nil
	}
}

func oneIndex(name string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return usagef("usage: tuido %s <index>", name)
		}
		if _, err := strconv.Atoi(args[0]); err != nil {
			return usagef("%s: not a number: %s", name, args[0])
		}
		return nil
	}
}
