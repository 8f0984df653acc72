package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"datecourse/internal/course"
	"datecourse/internal/model"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// errInvalid makes the process exit non-zero after the result is printed.
var errInvalid = errors.New("course is invalid")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "coursectl",
		Short:         "Inspect date course documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newValidateCmd(), newDiffCmd(), newSuggestCmd())
	return root
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <course-file>",
		Short: "Check a course against place count and duration bounds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCourse(args[0])
			if err != nil {
				return err
			}
			res := course.Validate(c)
			if err := writeJSON(cmd.OutOrStdout(), res); err != nil {
				return err
			}
			if !res.IsValid {
				return errInvalid
			}
			return nil
		},
	}
}

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <original-file> <edited-file>",
		Short: "Show what changed between two versions of a course",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			original, err := loadCourse(args[0])
			if err != nil {
				return err
			}
			edited, err := loadCourse(args[1])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), course.Diff(original, edited))
		},
	}
}

func newSuggestCmd() *cobra.Command {
	var (
		maxDuration int
		budget      int
		required    []string
	)
	cmd := &cobra.Command{
		Use:   "suggest <course-file>",
		Short: "Print edit suggestions for a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCourse(args[0])
			if err != nil {
				return err
			}
			cons := course.Constraints{RequiredPlaceIDs: required}
			if cmd.Flags().Changed("max-duration") {
				cons.MaxDurationMinutes = &maxDuration
			}
			if cmd.Flags().Changed("budget") {
				cons.Budget = &budget
			}
			return writeJSON(cmd.OutOrStdout(), map[string][]string{"suggestions": course.Suggest(c, cons)})
		},
	}
	cmd.Flags().IntVar(&maxDuration, "max-duration", 0, "maximum total duration in minutes")
	cmd.Flags().IntVar(&budget, "budget", 0, "budget for the whole course")
	cmd.Flags().StringSliceVar(&required, "require", nil, "place IDs the course must include")
	return cmd
}

func loadCourse(path string) (model.Course, error) {
	var c model.Course
	data, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
