package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/brickster241/repoversion/plumbing"
	"github.com/brickster241/repoversion/utils/types"
)

// newCatFileCommand shows type, size or content of a loose object, useful when a count fails on a missing object.
func newCatFileCommand(out io.Writer) *cobra.Command {
	var repoPath string
	var showType, showSize, pretty, raw bool

	cmd := &cobra.Command{
		Use:   "cat-file (-t | -s | -p | -r) <object>",
		Short: "Show type, size or content of a loose object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {

			// Check only a single flag is present
			selected := 0
			for _, set := range []bool{showType, showSize, pretty, raw} {
				if set {
					selected++
				}
			}
			if selected != 1 {
				return errors.New("exactly one of -t, -s, -p or -r is required")
			}

			gitDir, err := plumbing.LocateMetadataDir(repoPath)
			if err != nil {
				return err
			}
			commonDir := plumbing.ResolveCommonDir(gitDir)

			// Raw output is the inflated file, header included
			if raw {
				text, err := plumbing.ReadObjectText(commonDir, args[0])
				if err != nil {
					return err
				}
				_, err = io.WriteString(out, text)
				return err
			}

			format, err := plumbing.ReadObjectFormat(commonDir)
			if err != nil {
				return fmt.Errorf("unable to read object format: %w", err)
			}

			objType, content, err := plumbing.NewLooseObjectStore(commonDir, format).ReadObject(args[0])
			if err != nil {
				return err
			}

			switch {
			case showType:
				_, err = fmt.Fprintln(out, objType)
			case showSize:
				_, err = fmt.Fprintln(out, len(content))
			case objType == types.TreeObject:
				// Tree entries hold binary hashes
				return fmt.Errorf("%s is a %s, use -t, -s or -r", args[0], objType)
			default:
				_, err = out.Write(content)
			}
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&repoPath, "repo", "C", ".", "Path of the repository.")
	flags.BoolVarP(&showType, "type", "t", false, "Show the object type.")
	flags.BoolVarP(&showSize, "size", "s", false, "Show the object size.")
	flags.BoolVarP(&pretty, "print", "p", false, "Print the object content.")
	flags.BoolVarP(&raw, "raw", "r", false, "Print the inflated object, header included.")
	return cmd
}
